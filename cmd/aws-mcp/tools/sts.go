package tools

import (
	"context"

	"github.com/lxman/mcp-cloudtools/internal/response"
	awsconfig "github.com/lxman/mcp-cloudtools/service/aws/config"
	awssts "github.com/lxman/mcp-cloudtools/service/aws/sts"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterSTSTools registers caller identity tools
func RegisterSTSTools(s *server.MCPServer, region, profile string) {
	s.AddTool(
		mcp.NewTool("aws_get_account_info",
			mcp.WithDescription("Get the account ID, caller ARN and user ID for the configured AWS credentials"),
		),
		makeGetAccountInfoHandler(region, profile),
	)
}

func stsService(ctx context.Context, region, profile string) (awssts.STSService, error) {
	awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, region, profile)
	if err != nil {
		return nil, err
	}
	return awssts.NewService(awsCfg), nil
}

func makeGetAccountInfoHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := stsService(ctx, region, profile)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		info, err := svc.GetAccountInfo(ctx)
		if err != nil {
			return response.Err("get account info", err), nil
		}
		return response.OK(info), nil
	}
}
