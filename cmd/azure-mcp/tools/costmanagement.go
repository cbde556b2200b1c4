package tools

import (
	"context"

	"github.com/lxman/mcp-cloudtools/internal/response"
	azureconfig "github.com/lxman/mcp-cloudtools/service/azure/config"
	azurecostmanagement "github.com/lxman/mcp-cloudtools/service/azure/costmanagement"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterCostTools registers Cost Management tools
func RegisterCostTools(s *server.MCPServer, subscriptionID string) {
	s.AddTool(
		mcp.NewTool("azure_get_current_month_costs",
			mcp.WithDescription("Get Azure costs for the current month, broken down by service"),
		),
		makeCurrentMonthCostsHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_get_last_month_costs",
			mcp.WithDescription("Get Azure costs for the previous month, broken down by service"),
		),
		makeLastMonthCostsHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_get_cost_trend",
			mcp.WithDescription("Get the monthly Azure cost trend with summary statistics"),
			mcp.WithNumber("months", mcp.Description("Number of past months to include (default 6)")),
		),
		makeCostTrendHandler(subscriptionID),
	)
}

func costService(subscriptionID string) (azurecostmanagement.CostService, error) {
	cfg, err := azureconfig.NewService(subscriptionID)
	if err != nil {
		return nil, err
	}
	return azurecostmanagement.NewService(cfg.GetSubscriptionID(), cfg.GetCredential())
}

func makeCurrentMonthCostsHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := costService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		costs, err := svc.GetCurrentMonthCostsByService(ctx)
		if err != nil {
			return response.Err("get current month costs", err), nil
		}
		return response.OK(costs), nil
	}
}

func makeLastMonthCostsHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := costService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		costs, err := svc.GetLastMonthCostsByService(ctx)
		if err != nil {
			return response.Err("get last month costs", err), nil
		}
		return response.OK(costs), nil
	}
}

func makeCostTrendHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := costService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		trend, err := svc.GetCostTrend(ctx, request.GetInt("months", 6))
		if err != nil {
			return response.Err("get cost trend", err), nil
		}
		return response.OK(trend), nil
	}
}
