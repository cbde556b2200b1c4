package tools

import (
	"context"
	"time"

	"github.com/lxman/mcp-cloudtools/internal/remediation"
	"github.com/lxman/mcp-cloudtools/internal/response"
	azureconfig "github.com/lxman/mcp-cloudtools/service/azure/config"
	azuremonitor "github.com/lxman/mcp-cloudtools/service/azure/monitor"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterMonitorTools registers Azure Monitor metric and activity log tools
func RegisterMonitorTools(s *server.MCPServer, subscriptionID string) {
	s.AddTool(
		mcp.NewTool("azure_monitor_get_resource_metrics",
			mcp.WithDescription("Get platform metrics for an Azure resource over a time window"),
			mcp.WithString("resource_uri", mcp.Required(), mcp.Description("Full ARM resource ID to query metrics for")),
			mcp.WithString("metric_names", mcp.Description("Comma separated metric names, empty for the resource default")),
			mcp.WithNumber("hours", mcp.Description("How many hours back to query (default 1)")),
			mcp.WithString("interval", mcp.Description("ISO 8601 sampling interval, e.g. PT5M")),
			mcp.WithString("aggregation", mcp.Description("Aggregation: Average, Total, Minimum, Maximum or Count")),
		),
		makeResourceMetricsHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_monitor_get_activity_log",
			mcp.WithDescription("Get subscription activity log events for a recent time window"),
			mcp.WithNumber("hours", mcp.Description("How many hours back to query (default 24)")),
			mcp.WithNumber("max_events", mcp.Description("Maximum events to return (default 50)")),
		),
		makeActivityLogHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_monitor_list_metric_alerts",
			mcp.WithDescription("List metric alert rules configured in the subscription"),
		),
		makeMetricAlertsHandler(subscriptionID),
	)
}

func monitorService(subscriptionID string) (azuremonitor.MonitorService, error) {
	cfg, err := azureconfig.NewService(subscriptionID)
	if err != nil {
		return nil, err
	}
	return azuremonitor.NewService(cfg.GetSubscriptionID(), cfg.GetCredential())
}

func makeResourceMetricsHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		resourceURI, err := request.RequireString("resource_uri")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("resource_uri", "full ARM resource ID")), nil
		}

		svc, err := monitorService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		hours := request.GetFloat("hours", 1)
		now := time.Now().UTC()
		metrics, err := svc.GetResourceMetrics(ctx, azuremonitor.MetricsRequest{
			ResourceURI: resourceURI,
			MetricNames: request.GetString("metric_names", ""),
			Start:       now.Add(-time.Duration(hours * float64(time.Hour))),
			End:         now,
			Interval:    request.GetString("interval", ""),
			Aggregation: request.GetString("aggregation", ""),
		})
		if err != nil {
			return response.Err("get resource metrics", err), nil
		}
		return response.OK(metrics), nil
	}
}

func makeActivityLogHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := monitorService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		hours := request.GetFloat("hours", 24)
		now := time.Now().UTC()
		events, err := svc.GetActivityLog(ctx, now.Add(-time.Duration(hours*float64(time.Hour))), now, request.GetInt("max_events", 50))
		if err != nil {
			return response.Err("get activity log", err), nil
		}
		return response.OK(events), nil
	}
}

func makeMetricAlertsHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := monitorService(subscriptionID)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		alerts, err := svc.ListMetricAlerts(ctx)
		if err != nil {
			return response.Err("list metric alerts", err), nil
		}
		return response.OK(alerts), nil
	}
}
