package azurenetwork

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v5"
)

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	vnetClient, err := armnetwork.NewVirtualNetworksClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual networks client: %w", err)
	}
	nsgClient, err := armnetwork.NewSecurityGroupsClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create security groups client: %w", err)
	}
	publicIPClient, err := armnetwork.NewPublicIPAddressesClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create public IP client: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		vnetClient:     vnetClient,
		nsgClient:      nsgClient,
		publicIPClient: publicIPClient,
	}, nil
}

func (s *service) ListVirtualNetworks(ctx context.Context) ([]VirtualNetwork, error) {
	var vnets []VirtualNetwork
	pager := s.vnetClient.NewListAllPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list virtual networks: %w", err)
		}
		for _, v := range page.Value {
			vnet := VirtualNetwork{
				Name:          deref(v.Name),
				ResourceGroup: resourceGroupFromID(deref(v.ID)),
			}
			if v.Location != nil {
				vnet.Location = *v.Location
			}
			if v.Properties != nil {
				if v.Properties.AddressSpace != nil {
					for _, prefix := range v.Properties.AddressSpace.AddressPrefixes {
						if prefix != nil {
							vnet.AddressSpace = append(vnet.AddressSpace, *prefix)
						}
					}
				}
				for _, sn := range v.Properties.Subnets {
					subnet := Subnet{Name: deref(sn.Name)}
					if sn.Properties != nil {
						subnet.AddressPrefix = deref(sn.Properties.AddressPrefix)
					}
					vnet.Subnets = append(vnet.Subnets, subnet)
				}
			}
			vnets = append(vnets, vnet)
		}
	}

	return vnets, nil
}

func (s *service) ListSecurityGroups(ctx context.Context) ([]SecurityGroup, error) {
	var groups []SecurityGroup
	pager := s.nsgClient.NewListAllPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list security groups: %w", err)
		}
		for _, g := range page.Value {
			group := SecurityGroup{
				Name:          deref(g.Name),
				ResourceGroup: resourceGroupFromID(deref(g.ID)),
			}
			if g.Location != nil {
				group.Location = *g.Location
			}
			if g.Properties != nil {
				for _, r := range g.Properties.SecurityRules {
					rule := SecurityRule{Name: deref(r.Name)}
					if r.Properties != nil {
						if r.Properties.Priority != nil {
							rule.Priority = *r.Properties.Priority
						}
						if r.Properties.Direction != nil {
							rule.Direction = string(*r.Properties.Direction)
						}
						if r.Properties.Access != nil {
							rule.Access = string(*r.Properties.Access)
						}
						if r.Properties.Protocol != nil {
							rule.Protocol = string(*r.Properties.Protocol)
						}
						rule.DestPorts = deref(r.Properties.DestinationPortRange)
					}
					group.Rules = append(group.Rules, rule)
				}
			}
			groups = append(groups, group)
		}
	}

	return groups, nil
}

func (s *service) ListPublicIPs(ctx context.Context) ([]PublicIP, error) {
	var ips []PublicIP
	pager := s.publicIPClient.NewListAllPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list public IPs: %w", err)
		}
		for _, ip := range page.Value {
			item := PublicIP{Name: deref(ip.Name)}
			if ip.Location != nil {
				item.Location = *ip.Location
			}
			if ip.SKU != nil && ip.SKU.Name != nil {
				item.SKU = string(*ip.SKU.Name)
			}
			if ip.Properties != nil {
				item.Address = deref(ip.Properties.IPAddress)
				// Associated when an IP configuration references it.
				item.Associated = ip.Properties.IPConfiguration != nil
			}
			ips = append(ips, item)
		}
	}

	return ips, nil
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
