package azureresources

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
)

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	groupsClient, err := armresources.NewResourceGroupsClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource groups client: %w", err)
	}
	resourceClient, err := armresources.NewClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create resources client: %w", err)
	}
	subsClient, err := armsubscriptions.NewClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriptions client: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		groupsClient:   groupsClient,
		resourceClient: resourceClient,
		subsClient:     subsClient,
	}, nil
}

func (s *service) GetSubscription(ctx context.Context) (*Subscription, error) {
	resp, err := s.subsClient.Get(ctx, s.subscriptionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription info: %w", err)
	}

	sub := &Subscription{
		ID:          s.subscriptionID,
		DisplayName: s.subscriptionID,
	}
	if resp.DisplayName != nil {
		sub.DisplayName = *resp.DisplayName
	}
	if resp.State != nil {
		sub.State = string(*resp.State)
	}
	if resp.TenantID != nil {
		sub.TenantID = *resp.TenantID
	}

	return sub, nil
}

func (s *service) ListResourceGroups(ctx context.Context) ([]ResourceGroup, error) {
	var groups []ResourceGroup
	pager := s.groupsClient.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, g := range page.Value {
			groups = append(groups, convertGroup(g))
		}
	}

	return groups, nil
}

func (s *service) CreateResourceGroup(ctx context.Context, name, location string) (*ResourceGroup, error) {
	resp, err := s.groupsClient.CreateOrUpdate(ctx, name, armresources.ResourceGroup{
		Location: to.Ptr(location),
	}, nil)
	if err != nil {
		return nil, err
	}

	group := convertGroup(&resp.ResourceGroup)
	return &group, nil
}

func (s *service) DeleteResourceGroup(ctx context.Context, name string) error {
	poller, err := s.groupsClient.BeginDelete(ctx, name, nil)
	if err != nil {
		return err
	}

	_, err = poller.PollUntilDone(ctx, nil)
	return err
}

func (s *service) ListResources(ctx context.Context, resourceGroup string) ([]Resource, error) {
	var resources []Resource

	appendPage := func(values []*armresources.GenericResourceExpanded) {
		for _, r := range values {
			resources = append(resources, Resource{
				Name:     deref(r.Name),
				Type:     deref(r.Type),
				Location: deref(r.Location),
				ID:       deref(r.ID),
			})
		}
	}

	if resourceGroup != "" {
		scoped := s.resourceClient.NewListByResourceGroupPager(resourceGroup, nil)
		for scoped.More() {
			page, err := scoped.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			appendPage(page.Value)
		}
		return resources, nil
	}

	pager := s.resourceClient.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		appendPage(page.Value)
	}

	return resources, nil
}

func convertGroup(g *armresources.ResourceGroup) ResourceGroup {
	group := ResourceGroup{
		Name:     deref(g.Name),
		Location: deref(g.Location),
	}
	if g.Properties != nil {
		group.ProvisioningState = deref(g.Properties.ProvisioningState)
	}
	if len(g.Tags) > 0 {
		group.Tags = make(map[string]string, len(g.Tags))
		for k, v := range g.Tags {
			group.Tags[k] = deref(v)
		}
	}
	return group
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
