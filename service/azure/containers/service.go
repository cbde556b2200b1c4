package azurecontainers

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerinstance/armcontainerinstance/v2"
)

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	groupsClient, err := armcontainerinstance.NewContainerGroupsClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create container groups client: %w", err)
	}
	containersClient, err := armcontainerinstance.NewContainersClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create containers client: %w", err)
	}

	return &service{
		subscriptionID:   subscriptionID,
		groupsClient:     groupsClient,
		containersClient: containersClient,
	}, nil
}

func (s *service) ListContainerGroups(ctx context.Context) ([]ContainerGroup, error) {
	var groups []ContainerGroup
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

func (s *service) GetContainerGroup(ctx context.Context, resourceGroup, name string) (*ContainerGroup, error) {
	resp, err := s.groupsClient.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, err
	}

	group := convertGroup(&resp.ContainerGroup)
	group.ResourceGroup = resourceGroup
	return &group, nil
}

func (s *service) GetContainerLogs(ctx context.Context, resourceGroup, group, container string, tail int32) (string, error) {
	options := &armcontainerinstance.ContainersClientListLogsOptions{}
	if tail > 0 {
		options.Tail = to.Ptr(tail)
	}

	resp, err := s.containersClient.ListLogs(ctx, resourceGroup, group, container, options)
	if err != nil {
		return "", err
	}
	if resp.Content == nil {
		return "", nil
	}

	return *resp.Content, nil
}

func (s *service) RestartContainerGroup(ctx context.Context, resourceGroup, name string) error {
	poller, err := s.groupsClient.BeginRestart(ctx, resourceGroup, name, nil)
	if err != nil {
		return err
	}

	_, err = poller.PollUntilDone(ctx, nil)
	return err
}

func convertGroup(g *armcontainerinstance.ContainerGroup) ContainerGroup {
	group := ContainerGroup{
		Name: deref(g.Name),
	}
	if g.Location != nil {
		group.Location = *g.Location
	}
	if g.Properties == nil {
		return group
	}

	group.ProvisioningState = deref(g.Properties.ProvisioningState)
	if g.Properties.OSType != nil {
		group.OSType = string(*g.Properties.OSType)
	}
	if g.Properties.IPAddress != nil {
		group.IPAddress = deref(g.Properties.IPAddress.IP)
	}
	for _, c := range g.Properties.Containers {
		container := Container{
			Name: deref(c.Name),
		}
		if c.Properties != nil {
			container.Image = deref(c.Properties.Image)
			if c.Properties.InstanceView != nil {
				if c.Properties.InstanceView.RestartCount != nil {
					container.RestartCount = *c.Properties.InstanceView.RestartCount
				}
				if c.Properties.InstanceView.CurrentState != nil {
					container.State = deref(c.Properties.InstanceView.CurrentState.State)
				}
			}
			if c.Properties.Resources != nil && c.Properties.Resources.Requests != nil {
				if c.Properties.Resources.Requests.CPU != nil {
					container.CPUCores = *c.Properties.Resources.Requests.CPU
				}
				if c.Properties.Resources.Requests.MemoryInGB != nil {
					container.MemoryGB = *c.Properties.Resources.Requests.MemoryInGB
				}
			}
		}
		group.Containers = append(group.Containers, container)
	}

	return group
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
