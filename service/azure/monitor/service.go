package azuremonitor

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/monitor/armmonitor"
)

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	metricsClient, err := armmonitor.NewMetricsClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics client: %w", err)
	}
	activityClient, err := armmonitor.NewActivityLogsClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity logs client: %w", err)
	}
	alertRulesClient, err := armmonitor.NewMetricAlertsClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create metric alerts client: %w", err)
	}

	return &service{
		subscriptionID:   subscriptionID,
		metricsClient:    metricsClient,
		activityClient:   activityClient,
		alertRulesClient: alertRulesClient,
	}, nil
}

func (s *service) GetResourceMetrics(ctx context.Context, req MetricsRequest) ([]ResourceMetric, error) {
	timespan := fmt.Sprintf("%s/%s",
		req.Start.UTC().Format(time.RFC3339),
		req.End.UTC().Format(time.RFC3339))

	options := &armmonitor.MetricsClientListOptions{
		Timespan: to.Ptr(timespan),
	}
	if req.MetricNames != "" {
		options.Metricnames = to.Ptr(req.MetricNames)
	}
	if req.Interval != "" {
		options.Interval = to.Ptr(req.Interval)
	}
	if req.Aggregation != "" {
		options.Aggregation = to.Ptr(req.Aggregation)
	}

	resp, err := s.metricsClient.List(ctx, req.ResourceURI, options)
	if err != nil {
		return nil, err
	}

	aggregation := req.Aggregation
	if aggregation == "" {
		aggregation = "Average"
	}

	var metrics []ResourceMetric
	for _, m := range resp.Value {
		metric := ResourceMetric{}
		if m.Name != nil && m.Name.Value != nil {
			metric.Name = *m.Name.Value
		}
		if m.Unit != nil {
			metric.Unit = string(*m.Unit)
		}
		for _, ts := range m.Timeseries {
			for _, v := range ts.Data {
				if v.TimeStamp == nil {
					continue
				}
				value, ok := aggregatedValue(v, aggregation)
				if !ok {
					continue
				}
				metric.Values = append(metric.Values, MetricValue{
					Timestamp: *v.TimeStamp,
					Value:     value,
				})
			}
		}
		metrics = append(metrics, metric)
	}

	return metrics, nil
}

func (s *service) GetActivityLog(ctx context.Context, start, end time.Time, maxEvents int) ([]ActivityEvent, error) {
	filter := fmt.Sprintf("eventTimestamp ge '%s' and eventTimestamp le '%s'",
		start.UTC().Format(time.RFC3339),
		end.UTC().Format(time.RFC3339))

	var events []ActivityEvent
	pager := s.activityClient.NewListPager(filter, nil)
	for pager.More() && (maxEvents <= 0 || len(events) < maxEvents) {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, e := range page.Value {
			event := ActivityEvent{}
			if e.EventTimestamp != nil {
				event.Timestamp = *e.EventTimestamp
			}
			if e.OperationName != nil && e.OperationName.Value != nil {
				event.OperationName = *e.OperationName.Value
			}
			if e.Status != nil && e.Status.Value != nil {
				event.Status = *e.Status.Value
			}
			if e.Level != nil {
				event.Level = string(*e.Level)
			}
			if e.ResourceID != nil {
				event.ResourceID = *e.ResourceID
			}
			if e.Caller != nil {
				event.Caller = *e.Caller
			}
			events = append(events, event)
			if maxEvents > 0 && len(events) >= maxEvents {
				break
			}
		}
	}

	return events, nil
}

func (s *service) ListMetricAlerts(ctx context.Context) ([]MetricAlert, error) {
	var alerts []MetricAlert
	pager := s.alertRulesClient.NewListBySubscriptionPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, a := range page.Value {
			alert := MetricAlert{}
			if a.Name != nil {
				alert.Name = *a.Name
			}
			if a.Properties != nil {
				if a.Properties.Description != nil {
					alert.Description = *a.Properties.Description
				}
				if a.Properties.Severity != nil {
					alert.Severity = *a.Properties.Severity
				}
				if a.Properties.Enabled != nil {
					alert.Enabled = *a.Properties.Enabled
				}
				for _, scope := range a.Properties.Scopes {
					if scope != nil {
						alert.Scopes = append(alert.Scopes, *scope)
					}
				}
			}
			alerts = append(alerts, alert)
		}
	}

	return alerts, nil
}

func aggregatedValue(v *armmonitor.MetricValue, aggregation string) (float64, bool) {
	var p *float64
	switch aggregation {
	case "Total":
		p = v.Total
	case "Minimum":
		p = v.Minimum
	case "Maximum":
		p = v.Maximum
	case "Count":
		p = v.Count
	default:
		p = v.Average
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}
