package azurecontainers

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerinstance/armcontainerinstance/v2"
	azureconfig "github.com/lxman/mcp-cloudtools/service/azure/config"
)

type service struct {
	subscriptionID   string
	groupsClient     *armcontainerinstance.ContainerGroupsClient
	containersClient *armcontainerinstance.ContainersClient
}

type Credential = azureconfig.Credential

type ContainersService interface {
	ListContainerGroups(ctx context.Context) ([]ContainerGroup, error)
	GetContainerGroup(ctx context.Context, resourceGroup, name string) (*ContainerGroup, error)
	GetContainerLogs(ctx context.Context, resourceGroup, group, container string, tail int32) (string, error)
	RestartContainerGroup(ctx context.Context, resourceGroup, name string) error
}

// Container is one container inside a group.
type Container struct {
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	State        string  `json:"state,omitempty"`
	RestartCount int32   `json:"restart_count"`
	CPUCores     float64 `json:"cpu_cores"`
	MemoryGB     float64 `json:"memory_gb"`
}

// ContainerGroup is an ACI container group.
type ContainerGroup struct {
	Name              string      `json:"name"`
	ResourceGroup     string      `json:"resource_group,omitempty"`
	Location          string      `json:"location"`
	ProvisioningState string      `json:"provisioning_state,omitempty"`
	OSType            string      `json:"os_type,omitempty"`
	IPAddress         string      `json:"ip_address,omitempty"`
	Containers        []Container `json:"containers"`
}
