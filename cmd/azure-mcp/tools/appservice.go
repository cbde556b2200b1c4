package tools

import (
	"context"

	"github.com/lxman/mcp-cloudtools/internal/remediation"
	"github.com/lxman/mcp-cloudtools/internal/response"
	azureappservice "github.com/lxman/mcp-cloudtools/service/azure/appservice"
	azureconfig "github.com/lxman/mcp-cloudtools/service/azure/config"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterAppServiceTools registers App Service web app tools
func RegisterAppServiceTools(s *server.MCPServer, subscriptionID string) {
	s.AddTool(
		mcp.NewTool("azure_appservice_list_webapps",
			mcp.WithDescription("List App Service web apps in the subscription"),
		),
		makeListWebAppsHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_appservice_get_webapp",
			mcp.WithDescription("Get details of an App Service web app"),
			mcp.WithString("resource_group", mcp.Required(), mcp.Description("Resource group name")),
			mcp.WithString("name", mcp.Required(), mcp.Description("Web app name")),
		),
		makeGetWebAppHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_appservice_restart_webapp",
			mcp.WithDescription("Restart an App Service web app"),
			mcp.WithString("resource_group", mcp.Required(), mcp.Description("Resource group name")),
			mcp.WithString("name", mcp.Required(), mcp.Description("Web app name")),
		),
		makeRestartWebAppHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_appservice_get_app_settings",
			mcp.WithDescription("Get the application settings of an App Service web app"),
			mcp.WithString("resource_group", mcp.Required(), mcp.Description("Resource group name")),
			mcp.WithString("name", mcp.Required(), mcp.Description("Web app name")),
		),
		makeGetAppSettingsHandler(subscriptionID),
	)
}

func appServiceService(subscriptionID string) (azureappservice.AppServiceService, error) {
	cfg, err := azureconfig.NewService(subscriptionID)
	if err != nil {
		return nil, err
	}
	return azureappservice.NewService(cfg.GetSubscriptionID(), cfg.GetCredential())
}

func requireGroupAndName(request mcp.CallToolRequest) (string, string, *remediation.Classified) {
	group, err := request.RequireString("resource_group")
	if err != nil {
		return "", "", remediation.MissingParameter("resource_group", "resource group name")
	}
	name, err := request.RequireString("name")
	if err != nil {
		return "", "", remediation.MissingParameter("name", "resource name")
	}
	return group, name, nil
}

func makeListWebAppsHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := appServiceService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		apps, err := svc.ListWebApps(ctx)
		if err != nil {
			return response.Err("list web apps", err), nil
		}
		return response.OK(apps), nil
	}
}

func makeGetWebAppHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		group, name, perr := requireGroupAndName(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}

		svc, err := appServiceService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		app, err := svc.GetWebApp(ctx, group, name)
		if err != nil {
			return response.Err("get web app", err), nil
		}
		return response.OK(app), nil
	}
}

func makeRestartWebAppHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		group, name, perr := requireGroupAndName(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}

		svc, err := appServiceService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		if err := svc.RestartWebApp(ctx, group, name); err != nil {
			return response.Err("restart web app", err), nil
		}
		return response.OK(map[string]string{"restarted": name}), nil
	}
}

func makeGetAppSettingsHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		group, name, perr := requireGroupAndName(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}

		svc, err := appServiceService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		settings, err := svc.GetAppSettings(ctx, group, name)
		if err != nil {
			return response.Err("get app settings", err), nil
		}
		return response.OK(settings), nil
	}
}
