package azureeventhubs

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/eventhub/armeventhub"
)

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	namespacesClient, err := armeventhub.NewNamespacesClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create namespaces client: %w", err)
	}
	hubsClient, err := armeventhub.NewEventHubsClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create event hubs client: %w", err)
	}
	consumerGroupsClient, err := armeventhub.NewConsumerGroupsClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer groups client: %w", err)
	}

	return &service{
		subscriptionID:       subscriptionID,
		namespacesClient:     namespacesClient,
		hubsClient:           hubsClient,
		consumerGroupsClient: consumerGroupsClient,
	}, nil
}

func (s *service) ListNamespaces(ctx context.Context) ([]Namespace, error) {
	var namespaces []Namespace
	pager := s.namespacesClient.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, ns := range page.Value {
			namespace := Namespace{
				Name:          deref(ns.Name),
				ResourceGroup: resourceGroupFromID(deref(ns.ID)),
			}
			if ns.Location != nil {
				namespace.Location = *ns.Location
			}
			if ns.SKU != nil && ns.SKU.Name != nil {
				namespace.SKU = string(*ns.SKU.Name)
			}
			if ns.Properties != nil {
				namespace.Endpoint = deref(ns.Properties.ServiceBusEndpoint)
				namespace.Status = deref(ns.Properties.Status)
			}
			namespaces = append(namespaces, namespace)
		}
	}

	return namespaces, nil
}

func (s *service) ListEventHubs(ctx context.Context, resourceGroup, namespace string) ([]EventHub, error) {
	var hubs []EventHub
	pager := s.hubsClient.NewListByNamespacePager(resourceGroup, namespace, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, h := range page.Value {
			hub := EventHub{Name: deref(h.Name)}
			if h.Properties != nil {
				if h.Properties.Status != nil {
					hub.Status = string(*h.Properties.Status)
				}
				if h.Properties.PartitionCount != nil {
					hub.PartitionCount = *h.Properties.PartitionCount
				}
				if h.Properties.MessageRetentionInDays != nil {
					hub.RetentionInDays = *h.Properties.MessageRetentionInDays
				}
			}
			hubs = append(hubs, hub)
		}
	}

	return hubs, nil
}

func (s *service) ListConsumerGroups(ctx context.Context, resourceGroup, namespace, hub string) ([]ConsumerGroup, error) {
	var groups []ConsumerGroup
	pager := s.consumerGroupsClient.NewListByEventHubPager(resourceGroup, namespace, hub, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, g := range page.Value {
			group := ConsumerGroup{Name: deref(g.Name)}
			if g.Properties != nil {
				group.UserMetadata = deref(g.Properties.UserMetadata)
			}
			groups = append(groups, group)
		}
	}

	return groups, nil
}

func resourceGroupFromID(id string) string {
	parts := strings.Split(id, "/")
	for i := 0; i < len(parts)-1; i++ {
		if strings.EqualFold(parts[i], "resourceGroups") {
			return parts[i+1]
		}
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
