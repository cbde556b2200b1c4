package azureservicebus

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/servicebus/armservicebus"
	azureconfig "github.com/lxman/mcp-cloudtools/service/azure/config"
)

type service struct {
	subscriptionID      string
	namespacesClient    *armservicebus.NamespacesClient
	queuesClient        *armservicebus.QueuesClient
	topicsClient        *armservicebus.TopicsClient
	subscriptionsClient *armservicebus.SubscriptionsClient
}

type Credential = azureconfig.Credential

type ServiceBusService interface {
	ListNamespaces(ctx context.Context) ([]Namespace, error)
	ListQueues(ctx context.Context, resourceGroup, namespace string) ([]Queue, error)
	ListTopics(ctx context.Context, resourceGroup, namespace string) ([]Topic, error)
	ListSubscriptions(ctx context.Context, resourceGroup, namespace, topic string) ([]Subscription, error)
}

// Namespace is a Service Bus namespace summary.
type Namespace struct {
	Name          string `json:"name"`
	ResourceGroup string `json:"resource_group,omitempty"`
	Location      string `json:"location"`
	SKU           string `json:"sku,omitempty"`
	Endpoint      string `json:"endpoint,omitempty"`
	Status        string `json:"status,omitempty"`
}

// Queue is a queue with its counts.
type Queue struct {
	Name               string `json:"name"`
	Status             string `json:"status,omitempty"`
	ActiveMessages     int64  `json:"active_messages"`
	DeadLetterMessages int64  `json:"dead_letter_messages"`
	SizeBytes          int64  `json:"size_bytes"`
}

// Topic is a topic with its counts.
type Topic struct {
	Name              string `json:"name"`
	Status            string `json:"status,omitempty"`
	SubscriptionCount int32  `json:"subscription_count"`
	SizeBytes         int64  `json:"size_bytes"`
}

// Subscription is a subscription on a topic.
type Subscription struct {
	Name               string `json:"name"`
	Status             string `json:"status,omitempty"`
	ActiveMessages     int64  `json:"active_messages"`
	DeadLetterMessages int64  `json:"dead_letter_messages"`
}
