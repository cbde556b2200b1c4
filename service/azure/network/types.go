package azurenetwork

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v5"
	azureconfig "github.com/lxman/mcp-cloudtools/service/azure/config"
)

type service struct {
	subscriptionID string
	vnetClient     *armnetwork.VirtualNetworksClient
	nsgClient      *armnetwork.SecurityGroupsClient
	publicIPClient *armnetwork.PublicIPAddressesClient
}

type Credential = azureconfig.Credential

type NetworkService interface {
	ListVirtualNetworks(ctx context.Context) ([]VirtualNetwork, error)
	ListSecurityGroups(ctx context.Context) ([]SecurityGroup, error)
	ListPublicIPs(ctx context.Context) ([]PublicIP, error)
}

// Subnet is one subnet with its address prefix.
type Subnet struct {
	Name          string `json:"name"`
	AddressPrefix string `json:"address_prefix,omitempty"`
}

// VirtualNetwork is a VNet with its address space and subnets.
type VirtualNetwork struct {
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	AddressSpace  []string `json:"address_space,omitempty"`
	Subnets       []Subnet `json:"subnets,omitempty"`
	ResourceGroup string   `json:"resource_group,omitempty"`
}

// SecurityRule is a summary of one NSG rule.
type SecurityRule struct {
	Name      string `json:"name"`
	Priority  int32  `json:"priority"`
	Direction string `json:"direction"`
	Access    string `json:"access"`
	Protocol  string `json:"protocol"`
	DestPorts string `json:"destination_ports,omitempty"`
}

// SecurityGroup is an NSG with its rule summaries.
type SecurityGroup struct {
	Name          string         `json:"name"`
	Location      string         `json:"location"`
	ResourceGroup string         `json:"resource_group,omitempty"`
	Rules         []SecurityRule `json:"rules,omitempty"`
}

// PublicIP is a public IP address with its association state.
type PublicIP struct {
	Name       string `json:"name"`
	Address    string `json:"address,omitempty"`
	Location   string `json:"location"`
	Associated bool   `json:"associated"`
	SKU        string `json:"sku,omitempty"`
}
