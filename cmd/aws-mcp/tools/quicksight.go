package tools

import (
	"context"

	"github.com/lxman/mcp-cloudtools/internal/remediation"
	"github.com/lxman/mcp-cloudtools/internal/response"
	awsconfig "github.com/lxman/mcp-cloudtools/service/aws/config"
	awsquicksight "github.com/lxman/mcp-cloudtools/service/aws/quicksight"
	awssts "github.com/lxman/mcp-cloudtools/service/aws/sts"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterQuickSightTools registers dashboard and dataset tools.
// accountID may be empty, in which case each call resolves the
// account from the caller identity.
func RegisterQuickSightTools(s *server.MCPServer, region, profile, accountID string) {
	s.AddTool(
		mcp.NewTool("aws_quicksight_list_dashboards",
			mcp.WithDescription("List QuickSight dashboards in the account"),
		),
		makeListDashboardsHandler(region, profile, accountID),
	)

	s.AddTool(
		mcp.NewTool("aws_quicksight_describe_dashboard",
			mcp.WithDescription("Get details of a QuickSight dashboard including its datasets"),
			mcp.WithString("dashboard_id", mcp.Required(), mcp.Description("Dashboard ID")),
		),
		makeDescribeDashboardHandler(region, profile, accountID),
	)

	s.AddTool(
		mcp.NewTool("aws_quicksight_list_datasets",
			mcp.WithDescription("List QuickSight datasets in the account"),
		),
		makeListDataSetsHandler(region, profile, accountID),
	)

	s.AddTool(
		mcp.NewTool("aws_quicksight_list_analyses",
			mcp.WithDescription("List QuickSight analyses in the account"),
		),
		makeListAnalysesHandler(region, profile, accountID),
	)
}

func quicksightService(ctx context.Context, region, profile, accountID string) (awsquicksight.QuickSightService, error) {
	awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, region, profile)
	if err != nil {
		return nil, err
	}
	accountID, err = resolveAccountID(ctx, accountID, awssts.NewService(awsCfg))
	if err != nil {
		return nil, err
	}
	return awsquicksight.NewService(awsCfg, accountID), nil
}

// resolveAccountID returns the configured account ID, falling back to
// the caller identity when none is configured.
func resolveAccountID(ctx context.Context, accountID string, identity awssts.STSService) (string, error) {
	if accountID != "" {
		return accountID, nil
	}
	info, err := identity.GetAccountInfo(ctx)
	if err != nil {
		return "", err
	}
	return info.AccountID, nil
}

func makeListDashboardsHandler(region, profile, accountID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := quicksightService(ctx, region, profile, accountID)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		dashboards, err := svc.ListDashboards(ctx)
		if err != nil {
			return response.Err("list dashboards", err), nil
		}
		return response.OK(dashboards), nil
	}
}

func makeDescribeDashboardHandler(region, profile, accountID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dashboardID, err := request.RequireString("dashboard_id")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("dashboard_id", "QuickSight dashboard ID")), nil
		}

		svc, err := quicksightService(ctx, region, profile, accountID)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		detail, err := svc.DescribeDashboard(ctx, dashboardID)
		if err != nil {
			return response.Err("describe dashboard", err), nil
		}
		return response.OK(detail), nil
	}
}

func makeListDataSetsHandler(region, profile, accountID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := quicksightService(ctx, region, profile, accountID)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		datasets, err := svc.ListDataSets(ctx)
		if err != nil {
			return response.Err("list datasets", err), nil
		}
		return response.OK(datasets), nil
	}
}

func makeListAnalysesHandler(region, profile, accountID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := quicksightService(ctx, region, profile, accountID)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		analyses, err := svc.ListAnalyses(ctx)
		if err != nil {
			return response.Err("list analyses", err), nil
		}
		return response.OK(analyses), nil
	}
}
