package tools

import (
	"context"

	"github.com/lxman/mcp-cloudtools/internal/remediation"
	"github.com/lxman/mcp-cloudtools/internal/response"
	azureconfig "github.com/lxman/mcp-cloudtools/service/azure/config"
	azuresql "github.com/lxman/mcp-cloudtools/service/azure/sql"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterSQLTools registers Azure SQL server and database tools
func RegisterSQLTools(s *server.MCPServer, subscriptionID string) {
	s.AddTool(
		mcp.NewTool("azure_sql_list_servers",
			mcp.WithDescription("List Azure SQL logical servers in the subscription"),
		),
		makeListSQLServersHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_sql_list_databases",
			mcp.WithDescription("List databases on an Azure SQL server"),
			mcp.WithString("resource_group", mcp.Required(), mcp.Description("Resource group name")),
			mcp.WithString("server", mcp.Required(), mcp.Description("SQL server name")),
		),
		makeListDatabasesHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_sql_get_database",
			mcp.WithDescription("Get details of a database on an Azure SQL server"),
			mcp.WithString("resource_group", mcp.Required(), mcp.Description("Resource group name")),
			mcp.WithString("server", mcp.Required(), mcp.Description("SQL server name")),
			mcp.WithString("database", mcp.Required(), mcp.Description("Database name")),
		),
		makeGetDatabaseHandler(subscriptionID),
	)
}

func sqlService(subscriptionID string) (azuresql.SQLService, error) {
	cfg, err := azureconfig.NewService(subscriptionID)
	if err != nil {
		return nil, err
	}
	return azuresql.NewService(cfg.GetSubscriptionID(), cfg.GetCredential())
}

func makeListSQLServersHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := sqlService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		servers, err := svc.ListServers(ctx)
		if err != nil {
			return response.Err("list SQL servers", err), nil
		}
		return response.OK(servers), nil
	}
}

func makeListDatabasesHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		group, err := request.RequireString("resource_group")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("resource_group", "resource group name")), nil
		}
		serverName, err := request.RequireString("server")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("server", "SQL server name")), nil
		}

		svc, err := sqlService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		databases, err := svc.ListDatabases(ctx, group, serverName)
		if err != nil {
			return response.Err("list databases", err), nil
		}
		return response.OK(databases), nil
	}
}

func makeGetDatabaseHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		group, err := request.RequireString("resource_group")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("resource_group", "resource group name")), nil
		}
		serverName, err := request.RequireString("server")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("server", "SQL server name")), nil
		}
		database, err := request.RequireString("database")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("database", "database name")), nil
		}

		svc, err := sqlService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		db, err := svc.GetDatabase(ctx, group, serverName, database)
		if err != nil {
			return response.Err("get database", err), nil
		}
		return response.OK(db), nil
	}
}
