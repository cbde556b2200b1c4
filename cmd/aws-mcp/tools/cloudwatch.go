package tools

import (
	"context"
	"time"

	"github.com/lxman/mcp-cloudtools/internal/remediation"
	"github.com/lxman/mcp-cloudtools/internal/response"
	awscloudwatch "github.com/lxman/mcp-cloudtools/service/aws/cloudwatch"
	awsconfig "github.com/lxman/mcp-cloudtools/service/aws/config"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterCloudWatchTools registers CloudWatch metric, alarm and log tools
func RegisterCloudWatchTools(s *server.MCPServer, region, profile string) {
	s.AddTool(
		mcp.NewTool("aws_cloudwatch_list_metrics",
			mcp.WithDescription("List CloudWatch metrics, optionally filtered by namespace and metric name"),
			mcp.WithString("namespace", mcp.Description("Metric namespace, e.g. AWS/EC2")),
			mcp.WithString("metric_name", mcp.Description("Metric name, e.g. CPUUtilization")),
		),
		makeListMetricsHandler(region, profile),
	)

	s.AddTool(
		mcp.NewTool("aws_cloudwatch_get_metric_statistics",
			mcp.WithDescription("Get aggregated statistics for a CloudWatch metric over a time window"),
			mcp.WithString("namespace", mcp.Required(), mcp.Description("Metric namespace, e.g. AWS/EC2")),
			mcp.WithString("metric_name", mcp.Required(), mcp.Description("Metric name, e.g. CPUUtilization")),
			mcp.WithString("statistic", mcp.Description("Statistic to aggregate: Average, Sum, Minimum, Maximum or SampleCount (default Average)")),
			mcp.WithNumber("hours", mcp.Description("How many hours back to query (default 3)")),
			mcp.WithNumber("period_seconds", mcp.Description("Aggregation period in seconds (default 300)")),
			mcp.WithString("dimension_name", mcp.Description("Optional dimension name, e.g. InstanceId")),
			mcp.WithString("dimension_value", mcp.Description("Optional dimension value, paired with dimension_name")),
		),
		makeMetricStatisticsHandler(region, profile),
	)

	s.AddTool(
		mcp.NewTool("aws_cloudwatch_describe_alarms",
			mcp.WithDescription("List CloudWatch alarms, optionally filtered by state (OK, ALARM, INSUFFICIENT_DATA)"),
			mcp.WithString("state", mcp.Description("Alarm state filter: OK, ALARM or INSUFFICIENT_DATA")),
		),
		makeDescribeAlarmsHandler(region, profile),
	)

	s.AddTool(
		mcp.NewTool("aws_cloudwatch_list_log_groups",
			mcp.WithDescription("List CloudWatch Logs log groups, optionally filtered by name prefix"),
			mcp.WithString("prefix", mcp.Description("Log group name prefix filter")),
		),
		makeListLogGroupsHandler(region, profile),
	)

	s.AddTool(
		mcp.NewTool("aws_cloudwatch_filter_log_events",
			mcp.WithDescription("Search log events in a CloudWatch Logs log group within a time window"),
			mcp.WithString("log_group", mcp.Required(), mcp.Description("Log group name")),
			mcp.WithString("pattern", mcp.Description("CloudWatch Logs filter pattern, e.g. ERROR")),
			mcp.WithNumber("hours", mcp.Description("How many hours back to search (default 1)")),
			mcp.WithNumber("limit", mcp.Description("Maximum events to return (default 100)")),
		),
		makeFilterLogEventsHandler(region, profile),
	)
}

func cloudwatchService(ctx context.Context, region, profile string) (awscloudwatch.CloudWatchService, error) {
	awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, region, profile)
	if err != nil {
		return nil, err
	}
	return awscloudwatch.NewService(awsCfg), nil
}

func makeListMetricsHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := cloudwatchService(ctx, region, profile)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		metrics, err := svc.ListMetrics(ctx, request.GetString("namespace", ""), request.GetString("metric_name", ""))
		if err != nil {
			return response.Err("list CloudWatch metrics", err), nil
		}
		return response.OK(metrics), nil
	}
}

func makeMetricStatisticsHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		namespace, err := request.RequireString("namespace")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("namespace", "metric namespace such as AWS/EC2")), nil
		}
		metricName, err := request.RequireString("metric_name")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("metric_name", "metric name such as CPUUtilization")), nil
		}

		svc, err := cloudwatchService(ctx, region, profile)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		hours := request.GetFloat("hours", 3)
		now := time.Now().UTC()
		req := awscloudwatch.StatisticsRequest{
			Namespace:  namespace,
			MetricName: metricName,
			Start:      now.Add(-time.Duration(hours * float64(time.Hour))),
			End:        now,
			Period:     time.Duration(request.GetInt("period_seconds", 300)) * time.Second,
			Statistic:  request.GetString("statistic", "Average"),
		}
		if name := request.GetString("dimension_name", ""); name != "" {
			req.Dimensions = map[string]string{name: request.GetString("dimension_value", "")}
		}

		stats, err := svc.GetMetricStatistics(ctx, req)
		if err != nil {
			return response.Err("get metric statistics", err), nil
		}
		return response.OK(stats), nil
	}
}

func makeDescribeAlarmsHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := cloudwatchService(ctx, region, profile)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		alarms, err := svc.DescribeAlarms(ctx, request.GetString("state", ""))
		if err != nil {
			return response.Err("describe alarms", err), nil
		}
		return response.OK(alarms), nil
	}
}

func makeListLogGroupsHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := cloudwatchService(ctx, region, profile)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		groups, err := svc.ListLogGroups(ctx, request.GetString("prefix", ""))
		if err != nil {
			return response.Err("list log groups", err), nil
		}
		return response.OK(groups), nil
	}
}

func makeFilterLogEventsHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		group, err := request.RequireString("log_group")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("log_group", "CloudWatch Logs log group name")), nil
		}

		svc, err := cloudwatchService(ctx, region, profile)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		hours := request.GetFloat("hours", 1)
		now := time.Now().UTC()
		events, err := svc.FilterLogEvents(ctx, awscloudwatch.LogEventsRequest{
			GroupName: group,
			Pattern:   request.GetString("pattern", ""),
			Start:     now.Add(-time.Duration(hours * float64(time.Hour))),
			End:       now,
			Limit:     int32(request.GetInt("limit", 100)),
		})
		if err != nil {
			return response.Err("filter log events", err), nil
		}
		return response.OK(events), nil
	}
}
