package tools

import (
	"context"

	"github.com/lxman/mcp-cloudtools/internal/response"
	azureconfig "github.com/lxman/mcp-cloudtools/service/azure/config"
	azurenetwork "github.com/lxman/mcp-cloudtools/service/azure/network"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterNetworkTools registers virtual network inspection tools
func RegisterNetworkTools(s *server.MCPServer, subscriptionID string) {
	s.AddTool(
		mcp.NewTool("azure_network_list_vnets",
			mcp.WithDescription("List virtual networks with their address spaces and subnets"),
		),
		makeListVNetsHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_network_list_security_groups",
			mcp.WithDescription("List network security groups with their rules"),
		),
		makeListNSGsHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_network_list_public_ips",
			mcp.WithDescription("List public IP addresses and whether each is associated with a resource"),
		),
		makeListPublicIPsHandler(subscriptionID),
	)
}

func networkService(subscriptionID string) (azurenetwork.NetworkService, error) {
	cfg, err := azureconfig.NewService(subscriptionID)
	if err != nil {
		return nil, err
	}
	return azurenetwork.NewService(cfg.GetSubscriptionID(), cfg.GetCredential())
}

func makeListVNetsHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := networkService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		vnets, err := svc.ListVirtualNetworks(ctx)
		if err != nil {
			return response.Err("list virtual networks", err), nil
		}
		return response.OK(vnets), nil
	}
}

func makeListNSGsHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := networkService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		groups, err := svc.ListSecurityGroups(ctx)
		if err != nil {
			return response.Err("list security groups", err), nil
		}
		return response.OK(groups), nil
	}
}

func makeListPublicIPsHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := networkService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		ips, err := svc.ListPublicIPs(ctx)
		if err != nil {
			return response.Err("list public IPs", err), nil
		}
		return response.OK(ips), nil
	}
}
