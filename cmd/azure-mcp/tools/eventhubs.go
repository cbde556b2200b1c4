package tools

import (
	"context"

	"github.com/lxman/mcp-cloudtools/internal/remediation"
	"github.com/lxman/mcp-cloudtools/internal/response"
	azureconfig "github.com/lxman/mcp-cloudtools/service/azure/config"
	azureeventhubs "github.com/lxman/mcp-cloudtools/service/azure/eventhubs"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterEventHubsTools registers Event Hubs namespace and hub tools
func RegisterEventHubsTools(s *server.MCPServer, subscriptionID string) {
	s.AddTool(
		mcp.NewTool("azure_eventhubs_list_namespaces",
			mcp.WithDescription("List Event Hubs namespaces in the subscription"),
		),
		makeListEHNamespacesHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_eventhubs_list_hubs",
			mcp.WithDescription("List event hubs in a namespace with partition counts and retention"),
			mcp.WithString("resource_group", mcp.Required(), mcp.Description("Resource group name")),
			mcp.WithString("namespace", mcp.Required(), mcp.Description("Event Hubs namespace name")),
		),
		makeListEventHubsHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_eventhubs_list_consumer_groups",
			mcp.WithDescription("List consumer groups of an event hub"),
			mcp.WithString("resource_group", mcp.Required(), mcp.Description("Resource group name")),
			mcp.WithString("namespace", mcp.Required(), mcp.Description("Event Hubs namespace name")),
			mcp.WithString("hub", mcp.Required(), mcp.Description("Event hub name")),
		),
		makeListConsumerGroupsHandler(subscriptionID),
	)
}

func eventHubsService(subscriptionID string) (azureeventhubs.EventHubsService, error) {
	cfg, err := azureconfig.NewService(subscriptionID)
	if err != nil {
		return nil, err
	}
	return azureeventhubs.NewService(cfg.GetSubscriptionID(), cfg.GetCredential())
}

func makeListEHNamespacesHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := eventHubsService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		namespaces, err := svc.ListNamespaces(ctx)
		if err != nil {
			return response.Err("list namespaces", err), nil
		}
		return response.OK(namespaces), nil
	}
}

func makeListEventHubsHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		group, namespace, perr := requireGroupAndNamespace(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}

		svc, err := eventHubsService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		hubs, err := svc.ListEventHubs(ctx, group, namespace)
		if err != nil {
			return response.Err("list event hubs", err), nil
		}
		return response.OK(hubs), nil
	}
}

func makeListConsumerGroupsHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		group, namespace, perr := requireGroupAndNamespace(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}
		hub, err := request.RequireString("hub")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("hub", "event hub name")), nil
		}

		svc, err := eventHubsService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		groups, err := svc.ListConsumerGroups(ctx, group, namespace, hub)
		if err != nil {
			return response.Err("list consumer groups", err), nil
		}
		return response.OK(groups), nil
	}
}
