package tools

import (
	"context"

	"github.com/lxman/mcp-cloudtools/internal/remediation"
	"github.com/lxman/mcp-cloudtools/internal/response"
	azureconfig "github.com/lxman/mcp-cloudtools/service/azure/config"
	azureresources "github.com/lxman/mcp-cloudtools/service/azure/resources"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterResourceTools registers subscription and resource group tools
func RegisterResourceTools(s *server.MCPServer, subscriptionID string) {
	s.AddTool(
		mcp.NewTool("azure_get_subscription_info",
			mcp.WithDescription("Get Azure subscription details including ID, display name and state"),
		),
		makeSubscriptionInfoHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_list_resource_groups",
			mcp.WithDescription("List resource groups in the subscription"),
		),
		makeListResourceGroupsHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_create_resource_group",
			mcp.WithDescription("Create a resource group in the given location"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Resource group name")),
			mcp.WithString("location", mcp.Required(), mcp.Description("Azure region, e.g. eastus")),
		),
		makeCreateResourceGroupHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_delete_resource_group",
			mcp.WithDescription("Delete a resource group and everything in it"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Resource group name")),
		),
		makeDeleteResourceGroupHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_list_resources",
			mcp.WithDescription("List resources in the subscription, optionally scoped to one resource group"),
			mcp.WithString("resource_group", mcp.Description("Resource group to scope the listing to")),
		),
		makeListResourcesHandler(subscriptionID),
	)
}

func resourcesService(subscriptionID string) (azureresources.ResourcesService, error) {
	cfg, err := azureconfig.NewService(subscriptionID)
	if err != nil {
		return nil, err
	}
	return azureresources.NewService(cfg.GetSubscriptionID(), cfg.GetCredential())
}

func makeSubscriptionInfoHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := resourcesService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		sub, err := svc.GetSubscription(ctx)
		if err != nil {
			return response.Err("get subscription", err), nil
		}
		return response.OK(sub), nil
	}
}

func makeListResourceGroupsHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := resourcesService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		groups, err := svc.ListResourceGroups(ctx)
		if err != nil {
			return response.Err("list resource groups", err), nil
		}
		return response.OK(groups), nil
	}
}

func makeCreateResourceGroupHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("name", "resource group name")), nil
		}
		location, err := request.RequireString("location")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("location", "Azure region such as eastus")), nil
		}

		svc, err := resourcesService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		group, err := svc.CreateResourceGroup(ctx, name, location)
		if err != nil {
			return response.Err("create resource group", err), nil
		}
		return response.OK(group), nil
	}
}

func makeDeleteResourceGroupHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("name", "resource group name")), nil
		}

		svc, err := resourcesService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		if err := svc.DeleteResourceGroup(ctx, name); err != nil {
			return response.Err("delete resource group", err), nil
		}
		return response.OK(map[string]string{"deleted": name}), nil
	}
}

func makeListResourcesHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := resourcesService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		resources, err := svc.ListResources(ctx, request.GetString("resource_group", ""))
		if err != nil {
			return response.Err("list resources", err), nil
		}
		return response.OK(resources), nil
	}
}
