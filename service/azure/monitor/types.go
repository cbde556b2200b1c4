package azuremonitor

import (
	"context"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/monitor/armmonitor"
	azureconfig "github.com/lxman/mcp-cloudtools/service/azure/config"
)

type service struct {
	subscriptionID   string
	metricsClient    *armmonitor.MetricsClient
	activityClient   *armmonitor.ActivityLogsClient
	alertRulesClient *armmonitor.MetricAlertsClient
}

type Credential = azureconfig.Credential

type MonitorService interface {
	GetResourceMetrics(ctx context.Context, req MetricsRequest) ([]ResourceMetric, error)
	GetActivityLog(ctx context.Context, start, end time.Time, maxEvents int) ([]ActivityEvent, error)
	ListMetricAlerts(ctx context.Context) ([]MetricAlert, error)
}

// MetricsRequest describes a resource metrics query.
type MetricsRequest struct {
	ResourceURI string
	MetricNames string // comma separated, empty for the resource default
	Start       time.Time
	End         time.Time
	Interval    string // ISO 8601 duration, e.g. PT5M
	Aggregation string
}

// MetricValue is one timestamped aggregated value.
type MetricValue struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// ResourceMetric is one metric series for a resource.
type ResourceMetric struct {
	Name   string        `json:"name"`
	Unit   string        `json:"unit,omitempty"`
	Values []MetricValue `json:"values"`
}

// ActivityEvent is one subscription activity log entry.
type ActivityEvent struct {
	Timestamp     time.Time `json:"timestamp"`
	OperationName string    `json:"operation_name"`
	Status        string    `json:"status,omitempty"`
	Level         string    `json:"level,omitempty"`
	ResourceID    string    `json:"resource_id,omitempty"`
	Caller        string    `json:"caller,omitempty"`
}

// MetricAlert is one configured metric alert rule.
type MetricAlert struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Severity    int32    `json:"severity"`
	Enabled     bool     `json:"enabled"`
	Scopes      []string `json:"scopes,omitempty"`
}
