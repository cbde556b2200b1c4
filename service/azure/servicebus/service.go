package azureservicebus

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/servicebus/armservicebus"
)

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	namespacesClient, err := armservicebus.NewNamespacesClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create namespaces client: %w", err)
	}
	queuesClient, err := armservicebus.NewQueuesClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create queues client: %w", err)
	}
	topicsClient, err := armservicebus.NewTopicsClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create topics client: %w", err)
	}
	subscriptionsClient, err := armservicebus.NewSubscriptionsClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriptions client: %w", err)
	}

	return &service{
		subscriptionID:      subscriptionID,
		namespacesClient:    namespacesClient,
		queuesClient:        queuesClient,
		topicsClient:        topicsClient,
		subscriptionsClient: subscriptionsClient,
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

func (s *service) ListQueues(ctx context.Context, resourceGroup, namespace string) ([]Queue, error) {
	var queues []Queue
	pager := s.queuesClient.NewListByNamespacePager(resourceGroup, namespace, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, q := range page.Value {
			queue := Queue{Name: deref(q.Name)}
			if q.Properties != nil {
				if q.Properties.Status != nil {
					queue.Status = string(*q.Properties.Status)
				}
				if q.Properties.SizeInBytes != nil {
					queue.SizeBytes = *q.Properties.SizeInBytes
				}
				if cd := q.Properties.CountDetails; cd != nil {
					if cd.ActiveMessageCount != nil {
						queue.ActiveMessages = *cd.ActiveMessageCount
					}
					if cd.DeadLetterMessageCount != nil {
						queue.DeadLetterMessages = *cd.DeadLetterMessageCount
					}
				}
			}
			queues = append(queues, queue)
		}
	}

	return queues, nil
}

func (s *service) ListTopics(ctx context.Context, resourceGroup, namespace string) ([]Topic, error) {
	var topics []Topic
	pager := s.topicsClient.NewListByNamespacePager(resourceGroup, namespace, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, t := range page.Value {
			topic := Topic{Name: deref(t.Name)}
			if t.Properties != nil {
				if t.Properties.Status != nil {
					topic.Status = string(*t.Properties.Status)
				}
				if t.Properties.SubscriptionCount != nil {
					topic.SubscriptionCount = *t.Properties.SubscriptionCount
				}
				if t.Properties.SizeInBytes != nil {
					topic.SizeBytes = *t.Properties.SizeInBytes
				}
			}
			topics = append(topics, topic)
		}
	}

	return topics, nil
}

func (s *service) ListSubscriptions(ctx context.Context, resourceGroup, namespace, topic string) ([]Subscription, error) {
	var subscriptions []Subscription
	pager := s.subscriptionsClient.NewListByTopicPager(resourceGroup, namespace, topic, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, sub := range page.Value {
			subscription := Subscription{Name: deref(sub.Name)}
			if sub.Properties != nil {
				if sub.Properties.Status != nil {
					subscription.Status = string(*sub.Properties.Status)
				}
				if cd := sub.Properties.CountDetails; cd != nil {
					if cd.ActiveMessageCount != nil {
						subscription.ActiveMessages = *cd.ActiveMessageCount
					}
					if cd.DeadLetterMessageCount != nil {
						subscription.DeadLetterMessages = *cd.DeadLetterMessageCount
					}
				}
			}
			subscriptions = append(subscriptions, subscription)
		}
	}

	return subscriptions, nil
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
