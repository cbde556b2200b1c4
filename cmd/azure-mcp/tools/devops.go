package tools

import (
	"context"

	"github.com/lxman/mcp-cloudtools/internal/remediation"
	"github.com/lxman/mcp-cloudtools/internal/response"
	azuredevopssvc "github.com/lxman/mcp-cloudtools/service/azure/devops"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterDevOpsTools registers Azure DevOps tools.
// Only called when AZURE_DEVOPS_ORG_URL is configured; a missing PAT
// is reported per call.
func RegisterDevOpsTools(s *server.MCPServer, orgURL, pat string) {
	s.AddTool(
		mcp.NewTool("azure_devops_list_projects",
			mcp.WithDescription("List projects in the Azure DevOps organization"),
		),
		makeListProjectsHandler(orgURL, pat),
	)

	s.AddTool(
		mcp.NewTool("azure_devops_list_repositories",
			mcp.WithDescription("List Git repositories in an Azure DevOps project"),
			mcp.WithString("project", mcp.Required(), mcp.Description("Project name or ID")),
		),
		makeListReposHandler(orgURL, pat),
	)

	s.AddTool(
		mcp.NewTool("azure_devops_list_builds",
			mcp.WithDescription("List recent builds in an Azure DevOps project"),
			mcp.WithString("project", mcp.Required(), mcp.Description("Project name or ID")),
			mcp.WithNumber("top", mcp.Description("Maximum builds to return (default 20)")),
		),
		makeListBuildsHandler(orgURL, pat),
	)

	s.AddTool(
		mcp.NewTool("azure_devops_query_work_items",
			mcp.WithDescription("Run a WIQL query against work items in an Azure DevOps project"),
			mcp.WithString("project", mcp.Required(), mcp.Description("Project name or ID")),
			mcp.WithString("wiql", mcp.Required(), mcp.Description("WIQL query, e.g. SELECT [System.Id] FROM WorkItems WHERE [System.State] = 'Active'")),
		),
		makeQueryWorkItemsHandler(orgURL, pat),
	)
}

func devopsService(orgURL, pat string) (azuredevopssvc.DevOpsService, *remediation.Classified) {
	if pat == "" {
		return nil, remediation.NotConfigured("Azure DevOps access", "AZURE_DEVOPS_PAT")
	}
	return azuredevopssvc.NewService(orgURL, pat), nil
}

func makeListProjectsHandler(orgURL, pat string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, cerr := devopsService(orgURL, pat)
		if cerr != nil {
			return response.Err("connect to Azure DevOps", cerr), nil
		}

		projects, err := svc.ListProjects(ctx)
		if err != nil {
			return response.Err("list projects", err), nil
		}
		return response.OK(projects), nil
	}
}

func makeListReposHandler(orgURL, pat string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		project, err := request.RequireString("project")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("project", "Azure DevOps project name or ID")), nil
		}

		svc, cerr := devopsService(orgURL, pat)
		if cerr != nil {
			return response.Err("connect to Azure DevOps", cerr), nil
		}
		repos, err := svc.ListRepositories(ctx, project)
		if err != nil {
			return response.Err("list repositories", err), nil
		}
		return response.OK(repos), nil
	}
}

func makeListBuildsHandler(orgURL, pat string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		project, err := request.RequireString("project")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("project", "Azure DevOps project name or ID")), nil
		}

		svc, cerr := devopsService(orgURL, pat)
		if cerr != nil {
			return response.Err("connect to Azure DevOps", cerr), nil
		}
		builds, err := svc.ListBuilds(ctx, project, request.GetInt("top", 20))
		if err != nil {
			return response.Err("list builds", err), nil
		}
		return response.OK(builds), nil
	}
}

func makeQueryWorkItemsHandler(orgURL, pat string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		project, err := request.RequireString("project")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("project", "Azure DevOps project name or ID")), nil
		}
		wiql, err := request.RequireString("wiql")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("wiql", "WIQL query text")), nil
		}

		svc, cerr := devopsService(orgURL, pat)
		if cerr != nil {
			return response.Err("connect to Azure DevOps", cerr), nil
		}
		items, err := svc.QueryWorkItems(ctx, project, wiql)
		if err != nil {
			return response.Err("query work items", err), nil
		}
		return response.OK(items), nil
	}
}
