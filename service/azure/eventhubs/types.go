package azureeventhubs

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/eventhub/armeventhub"
	azureconfig "github.com/lxman/mcp-cloudtools/service/azure/config"
)

type service struct {
	subscriptionID       string
	namespacesClient     *armeventhub.NamespacesClient
	hubsClient           *armeventhub.EventHubsClient
	consumerGroupsClient *armeventhub.ConsumerGroupsClient
}

type Credential = azureconfig.Credential

type EventHubsService interface {
	ListNamespaces(ctx context.Context) ([]Namespace, error)
	ListEventHubs(ctx context.Context, resourceGroup, namespace string) ([]EventHub, error)
	ListConsumerGroups(ctx context.Context, resourceGroup, namespace, hub string) ([]ConsumerGroup, error)
}

// Namespace is an Event Hubs namespace summary.
type Namespace struct {
	Name          string `json:"name"`
	ResourceGroup string `json:"resource_group,omitempty"`
	Location      string `json:"location"`
	SKU           string `json:"sku,omitempty"`
	Endpoint      string `json:"endpoint,omitempty"`
	Status        string `json:"status,omitempty"`
}

// EventHub is one hub with its partition layout.
type EventHub struct {
	Name            string `json:"name"`
	Status          string `json:"status,omitempty"`
	PartitionCount  int64  `json:"partition_count"`
	RetentionInDays int64  `json:"retention_days"`
}

// ConsumerGroup is one consumer group of a hub.
type ConsumerGroup struct {
	Name         string `json:"name"`
	UserMetadata string `json:"user_metadata,omitempty"`
}
