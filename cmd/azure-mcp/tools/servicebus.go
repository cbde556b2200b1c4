package tools

import (
	"context"

	"github.com/lxman/mcp-cloudtools/internal/remediation"
	"github.com/lxman/mcp-cloudtools/internal/response"
	azureconfig "github.com/lxman/mcp-cloudtools/service/azure/config"
	azureservicebus "github.com/lxman/mcp-cloudtools/service/azure/servicebus"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterServiceBusTools registers Service Bus namespace and entity tools
func RegisterServiceBusTools(s *server.MCPServer, subscriptionID string) {
	s.AddTool(
		mcp.NewTool("azure_servicebus_list_namespaces",
			mcp.WithDescription("List Service Bus namespaces in the subscription"),
		),
		makeListSBNamespacesHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_servicebus_list_queues",
			mcp.WithDescription("List queues in a Service Bus namespace with message counts"),
			mcp.WithString("resource_group", mcp.Required(), mcp.Description("Resource group name")),
			mcp.WithString("namespace", mcp.Required(), mcp.Description("Service Bus namespace name")),
		),
		makeListQueuesHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_servicebus_list_topics",
			mcp.WithDescription("List topics in a Service Bus namespace"),
			mcp.WithString("resource_group", mcp.Required(), mcp.Description("Resource group name")),
			mcp.WithString("namespace", mcp.Required(), mcp.Description("Service Bus namespace name")),
		),
		makeListTopicsHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_servicebus_list_subscriptions",
			mcp.WithDescription("List subscriptions of a Service Bus topic with message counts"),
			mcp.WithString("resource_group", mcp.Required(), mcp.Description("Resource group name")),
			mcp.WithString("namespace", mcp.Required(), mcp.Description("Service Bus namespace name")),
			mcp.WithString("topic", mcp.Required(), mcp.Description("Topic name")),
		),
		makeListTopicSubscriptionsHandler(subscriptionID),
	)
}

func serviceBusService(subscriptionID string) (azureservicebus.ServiceBusService, error) {
	cfg, err := azureconfig.NewService(subscriptionID)
	if err != nil {
		return nil, err
	}
	return azureservicebus.NewService(cfg.GetSubscriptionID(), cfg.GetCredential())
}

func requireGroupAndNamespace(request mcp.CallToolRequest) (string, string, *remediation.Classified) {
	group, err := request.RequireString("resource_group")
	if err != nil {
		return "", "", remediation.MissingParameter("resource_group", "resource group name")
	}
	namespace, err := request.RequireString("namespace")
	if err != nil {
		return "", "", remediation.MissingParameter("namespace", "namespace name")
	}
	return group, namespace, nil
}

func makeListSBNamespacesHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := serviceBusService(subscriptionID)
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

func makeListQueuesHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		group, namespace, perr := requireGroupAndNamespace(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}

		svc, err := serviceBusService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		queues, err := svc.ListQueues(ctx, group, namespace)
		if err != nil {
			return response.Err("list queues", err), nil
		}
		return response.OK(queues), nil
	}
}

func makeListTopicsHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		group, namespace, perr := requireGroupAndNamespace(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}

		svc, err := serviceBusService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		topics, err := svc.ListTopics(ctx, group, namespace)
		if err != nil {
			return response.Err("list topics", err), nil
		}
		return response.OK(topics), nil
	}
}

func makeListTopicSubscriptionsHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		group, namespace, perr := requireGroupAndNamespace(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}
		topic, err := request.RequireString("topic")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("topic", "topic name")), nil
		}

		svc, err := serviceBusService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		subs, err := svc.ListSubscriptions(ctx, group, namespace, topic)
		if err != nil {
			return response.Err("list topic subscriptions", err), nil
		}
		return response.OK(subs), nil
	}
}
