package tools

import (
	"context"

	"github.com/lxman/mcp-cloudtools/internal/remediation"
	"github.com/lxman/mcp-cloudtools/internal/response"
	awsconfig "github.com/lxman/mcp-cloudtools/service/aws/config"
	awsecs "github.com/lxman/mcp-cloudtools/service/aws/ecs"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterECSTools registers container orchestration tools
func RegisterECSTools(s *server.MCPServer, region, profile string) {
	s.AddTool(
		mcp.NewTool("aws_ecs_list_clusters",
			mcp.WithDescription("List ECS clusters with service and task counts"),
		),
		makeListClustersHandler(region, profile),
	)

	s.AddTool(
		mcp.NewTool("aws_ecs_list_services",
			mcp.WithDescription("List services in an ECS cluster with desired/running counts"),
			mcp.WithString("cluster", mcp.Required(), mcp.Description("Cluster name or ARN")),
		),
		makeListServicesHandler(region, profile),
	)

	s.AddTool(
		mcp.NewTool("aws_ecs_list_tasks",
			mcp.WithDescription("List tasks in an ECS cluster, optionally for one service"),
			mcp.WithString("cluster", mcp.Required(), mcp.Description("Cluster name or ARN")),
			mcp.WithString("service", mcp.Description("Service name to filter by")),
		),
		makeListTasksHandler(region, profile),
	)

	s.AddTool(
		mcp.NewTool("aws_ecs_scale_service",
			mcp.WithDescription("Change the desired task count of an ECS service"),
			mcp.WithString("cluster", mcp.Required(), mcp.Description("Cluster name or ARN")),
			mcp.WithString("service", mcp.Required(), mcp.Description("Service name")),
			mcp.WithNumber("desired_count", mcp.Required(), mcp.Description("New desired task count")),
		),
		makeScaleServiceHandler(region, profile),
	)

	s.AddTool(
		mcp.NewTool("aws_ecs_stop_task",
			mcp.WithDescription("Stop a running ECS task"),
			mcp.WithString("cluster", mcp.Required(), mcp.Description("Cluster name or ARN")),
			mcp.WithString("task", mcp.Required(), mcp.Description("Task ARN or ID")),
			mcp.WithString("reason", mcp.Description("Reason recorded on the stopped task")),
		),
		makeStopTaskHandler(region, profile),
	)
}

func ecsService(ctx context.Context, region, profile string) (awsecs.ECSService, error) {
	awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, region, profile)
	if err != nil {
		return nil, err
	}
	return awsecs.NewService(awsCfg), nil
}

func makeListClustersHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := ecsService(ctx, region, profile)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		clusters, err := svc.ListClusters(ctx)
		if err != nil {
			return response.Err("list clusters", err), nil
		}
		return response.OK(clusters), nil
	}
}

func makeListServicesHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cluster, err := request.RequireString("cluster")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("cluster", "ECS cluster name or ARN")), nil
		}

		svc, err := ecsService(ctx, region, profile)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		services, err := svc.ListServices(ctx, cluster)
		if err != nil {
			return response.Err("list services", err), nil
		}
		return response.OK(services), nil
	}
}

func makeListTasksHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cluster, err := request.RequireString("cluster")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("cluster", "ECS cluster name or ARN")), nil
		}

		svc, err := ecsService(ctx, region, profile)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		tasks, err := svc.ListTasks(ctx, cluster, request.GetString("service", ""))
		if err != nil {
			return response.Err("list tasks", err), nil
		}
		return response.OK(tasks), nil
	}
}

func makeScaleServiceHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cluster, err := request.RequireString("cluster")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("cluster", "ECS cluster name or ARN")), nil
		}
		serviceName, err := request.RequireString("service")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("service", "ECS service name")), nil
		}
		desired := request.GetInt("desired_count", -1)
		if desired < 0 {
			return response.Err("read parameters", remediation.MissingParameter("desired_count", "non-negative task count")), nil
		}

		svc, err := ecsService(ctx, region, profile)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		updated, err := svc.ScaleService(ctx, cluster, serviceName, int32(desired))
		if err != nil {
			return response.Err("scale service", err), nil
		}
		return response.OK(updated), nil
	}
}

func makeStopTaskHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cluster, err := request.RequireString("cluster")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("cluster", "ECS cluster name or ARN")), nil
		}
		task, err := request.RequireString("task")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("task", "ECS task ARN or ID")), nil
		}

		svc, err := ecsService(ctx, region, profile)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		stopped, err := svc.StopTask(ctx, cluster, task, request.GetString("reason", "stopped via aws-mcp"))
		if err != nil {
			return response.Err("stop task", err), nil
		}
		return response.OK(stopped), nil
	}
}
