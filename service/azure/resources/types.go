package azureresources

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	azureconfig "github.com/lxman/mcp-cloudtools/service/azure/config"
)

type service struct {
	subscriptionID string
	groupsClient   *armresources.ResourceGroupsClient
	resourceClient *armresources.Client
	subsClient     *armsubscriptions.Client
}

// Credential re-exported for callers that construct services directly.
type Credential = azureconfig.Credential

type ResourcesService interface {
	GetSubscription(ctx context.Context) (*Subscription, error)
	ListResourceGroups(ctx context.Context) ([]ResourceGroup, error)
	CreateResourceGroup(ctx context.Context, name, location string) (*ResourceGroup, error)
	DeleteResourceGroup(ctx context.Context, name string) error
	ListResources(ctx context.Context, resourceGroup string) ([]Resource, error)
}

// Subscription is the identity of the configured subscription.
type Subscription struct {
	ID          string `json:"subscription_id"`
	DisplayName string `json:"display_name"`
	State       string `json:"state"`
	TenantID    string `json:"tenant_id,omitempty"`
}

// ResourceGroup is an ARM resource group.
type ResourceGroup struct {
	Name              string            `json:"name"`
	Location          string            `json:"location"`
	ProvisioningState string            `json:"provisioning_state,omitempty"`
	Tags              map[string]string `json:"tags,omitempty"`
}

// Resource is a summary of one ARM resource.
type Resource struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
	ID       string `json:"id"`
}
