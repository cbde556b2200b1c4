package tools

import (
	"context"

	"github.com/lxman/mcp-cloudtools/internal/remediation"
	"github.com/lxman/mcp-cloudtools/internal/response"
	awsconfig "github.com/lxman/mcp-cloudtools/service/aws/config"
	awsecr "github.com/lxman/mcp-cloudtools/service/aws/ecr"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterECRTools registers container registry tools
func RegisterECRTools(s *server.MCPServer, region, profile string) {
	s.AddTool(
		mcp.NewTool("aws_ecr_list_repositories",
			mcp.WithDescription("List ECR container image repositories"),
		),
		makeListRepositoriesHandler(region, profile),
	)

	s.AddTool(
		mcp.NewTool("aws_ecr_list_images",
			mcp.WithDescription("List images in an ECR repository with tags and sizes"),
			mcp.WithString("repository", mcp.Required(), mcp.Description("Repository name")),
		),
		makeListImagesHandler(region, profile),
	)

	s.AddTool(
		mcp.NewTool("aws_ecr_get_scan_findings",
			mcp.WithDescription("Get vulnerability scan findings for a tagged image in an ECR repository"),
			mcp.WithString("repository", mcp.Required(), mcp.Description("Repository name")),
			mcp.WithString("tag", mcp.Required(), mcp.Description("Image tag, e.g. latest")),
		),
		makeScanFindingsHandler(region, profile),
	)
}

func ecrService(ctx context.Context, region, profile string) (awsecr.ECRService, error) {
	awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, region, profile)
	if err != nil {
		return nil, err
	}
	return awsecr.NewService(awsCfg), nil
}

func makeListRepositoriesHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := ecrService(ctx, region, profile)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		repos, err := svc.ListRepositories(ctx)
		if err != nil {
			return response.Err("list repositories", err), nil
		}
		return response.OK(repos), nil
	}
}

func makeListImagesHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		repository, err := request.RequireString("repository")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("repository", "ECR repository name")), nil
		}

		svc, err := ecrService(ctx, region, profile)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		images, err := svc.ListImages(ctx, repository)
		if err != nil {
			return response.Err("list images", err), nil
		}
		return response.OK(images), nil
	}
}

func makeScanFindingsHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		repository, err := request.RequireString("repository")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("repository", "ECR repository name")), nil
		}
		tag, err := request.RequireString("tag")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("tag", "image tag such as latest")), nil
		}

		svc, err := ecrService(ctx, region, profile)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		findings, err := svc.GetScanFindings(ctx, repository, tag)
		if err != nil {
			return response.Err("get scan findings", err), nil
		}
		return response.OK(findings), nil
	}
}
