package awscloudwatch

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
)

type service struct {
	client     *cloudwatch.Client
	logsClient *cloudwatchlogs.Client
}

type CloudWatchService interface {
	ListMetrics(ctx context.Context, namespace, metricName string) ([]Metric, error)
	GetMetricStatistics(ctx context.Context, req StatisticsRequest) (*MetricStatistics, error)
	DescribeAlarms(ctx context.Context, stateValue string) ([]Alarm, error)
	ListLogGroups(ctx context.Context, prefix string) ([]LogGroup, error)
	FilterLogEvents(ctx context.Context, req LogEventsRequest) (*LogEvents, error)
}

// Metric identifies a CloudWatch metric with its dimensions.
type Metric struct {
	Namespace  string            `json:"namespace"`
	Name       string            `json:"name"`
	Dimensions map[string]string `json:"dimensions,omitempty"`
}

// StatisticsRequest describes a statistics query window.
type StatisticsRequest struct {
	Namespace  string
	MetricName string
	Dimensions map[string]string
	Start      time.Time
	End        time.Time
	Period     time.Duration
	Statistic  string
}

// Datapoint is one aggregated sample.
type Datapoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
	Unit      string    `json:"unit,omitempty"`
}

// MetricStatistics is the ordered result of a statistics query.
type MetricStatistics struct {
	Label      string      `json:"label"`
	Statistic  string      `json:"statistic"`
	Datapoints []Datapoint `json:"datapoints"`
}

// Alarm is a CloudWatch alarm with its current state.
type Alarm struct {
	Name         string  `json:"name"`
	State        string  `json:"state"`
	StateReason  string  `json:"state_reason,omitempty"`
	MetricName   string  `json:"metric_name,omitempty"`
	Namespace    string  `json:"namespace,omitempty"`
	Threshold    float64 `json:"threshold,omitempty"`
	ComparisonOp string  `json:"comparison_operator,omitempty"`
}

// LogGroup is a CloudWatch Logs log group.
type LogGroup struct {
	Name          string `json:"name"`
	RetentionDays int32  `json:"retention_days,omitempty"`
	StoredBytes   int64  `json:"stored_bytes"`
}

// LogEventsRequest describes a log filter query.
type LogEventsRequest struct {
	GroupName string
	Pattern   string
	Start     time.Time
	End       time.Time
	Limit     int32
}

// LogEvent is one matched log line.
type LogEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Stream    string    `json:"stream"`
	Message   string    `json:"message"`
}

// LogEvents is a page of matched events.
type LogEvents struct {
	GroupName string     `json:"group_name"`
	Events    []LogEvent `json:"events"`
	Truncated bool       `json:"truncated"`
}
