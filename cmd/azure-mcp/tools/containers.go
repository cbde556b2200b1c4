package tools

import (
	"context"

	"github.com/lxman/mcp-cloudtools/internal/response"
	azureconfig "github.com/lxman/mcp-cloudtools/service/azure/config"
	azurecontainers "github.com/lxman/mcp-cloudtools/service/azure/containers"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterContainerTools registers Container Instances tools
func RegisterContainerTools(s *server.MCPServer, subscriptionID string) {
	s.AddTool(
		mcp.NewTool("azure_containers_list_groups",
			mcp.WithDescription("List container groups in the subscription with their containers and state"),
		),
		makeListContainerGroupsHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_containers_get_group",
			mcp.WithDescription("Get details of a container group"),
			mcp.WithString("resource_group", mcp.Required(), mcp.Description("Resource group name")),
			mcp.WithString("name", mcp.Required(), mcp.Description("Container group name")),
		),
		makeGetContainerGroupHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_containers_get_logs",
			mcp.WithDescription("Get logs from a container in a container group"),
			mcp.WithString("resource_group", mcp.Required(), mcp.Description("Resource group name")),
			mcp.WithString("group", mcp.Required(), mcp.Description("Container group name")),
			mcp.WithString("container", mcp.Required(), mcp.Description("Container name within the group")),
			mcp.WithNumber("tail", mcp.Description("Number of trailing log lines (default 100)")),
		),
		makeContainerLogsHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_containers_restart_group",
			mcp.WithDescription("Restart all containers in a container group"),
			mcp.WithString("resource_group", mcp.Required(), mcp.Description("Resource group name")),
			mcp.WithString("name", mcp.Required(), mcp.Description("Container group name")),
		),
		makeRestartContainerGroupHandler(subscriptionID),
	)
}

func containersService(subscriptionID string) (azurecontainers.ContainersService, error) {
	cfg, err := azureconfig.NewService(subscriptionID)
	if err != nil {
		return nil, err
	}
	return azurecontainers.NewService(cfg.GetSubscriptionID(), cfg.GetCredential())
}

func makeListContainerGroupsHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := containersService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		groups, err := svc.ListContainerGroups(ctx)
		if err != nil {
			return response.Err("list container groups", err), nil
		}
		return response.OK(groups), nil
	}
}

func makeGetContainerGroupHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		group, name, perr := requireGroupAndName(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}

		svc, err := containersService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		containerGroup, err := svc.GetContainerGroup(ctx, group, name)
		if err != nil {
			return response.Err("get container group", err), nil
		}
		return response.OK(containerGroup), nil
	}
}

func makeContainerLogsHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		resourceGroup, err := request.RequireString("resource_group")
		if err != nil {
			return response.Err("read parameters", err), nil
		}
		group, err := request.RequireString("group")
		if err != nil {
			return response.Err("read parameters", err), nil
		}
		container, err := request.RequireString("container")
		if err != nil {
			return response.Err("read parameters", err), nil
		}

		svc, err := containersService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		logs, err := svc.GetContainerLogs(ctx, resourceGroup, group, container, int32(request.GetInt("tail", 100)))
		if err != nil {
			return response.Err("get container logs", err), nil
		}
		return response.OK(map[string]string{"container": container, "logs": logs}), nil
	}
}

func makeRestartContainerGroupHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		group, name, perr := requireGroupAndName(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}

		svc, err := containersService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		if err := svc.RestartContainerGroup(ctx, group, name); err != nil {
			return response.Err("restart container group", err), nil
		}
		return response.OK(map[string]string{"restarted": name}), nil
	}
}
