package awscloudwatch

import (
	"context"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
)

func NewService(awsconfig aws.Config) *service {
	return &service{
		client:     cloudwatch.NewFromConfig(awsconfig),
		logsClient: cloudwatchlogs.NewFromConfig(awsconfig),
	}
}

func (s *service) ListMetrics(ctx context.Context, namespace, metricName string) ([]Metric, error) {
	input := &cloudwatch.ListMetricsInput{}
	if namespace != "" {
		input.Namespace = aws.String(namespace)
	}
	if metricName != "" {
		input.MetricName = aws.String(metricName)
	}

	var metrics []Metric
	paginator := cloudwatch.NewListMetricsPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, m := range page.Metrics {
			metric := Metric{
				Namespace: aws.ToString(m.Namespace),
				Name:      aws.ToString(m.MetricName),
			}
			if len(m.Dimensions) > 0 {
				metric.Dimensions = make(map[string]string, len(m.Dimensions))
				for _, d := range m.Dimensions {
					metric.Dimensions[aws.ToString(d.Name)] = aws.ToString(d.Value)
				}
			}
			metrics = append(metrics, metric)
		}
	}

	return metrics, nil
}

func (s *service) GetMetricStatistics(ctx context.Context, req StatisticsRequest) (*MetricStatistics, error) {
	input := &cloudwatch.GetMetricStatisticsInput{
		Namespace:  aws.String(req.Namespace),
		MetricName: aws.String(req.MetricName),
		StartTime:  aws.Time(req.Start),
		EndTime:    aws.Time(req.End),
		Period:     aws.Int32(int32(req.Period / time.Second)),
		Statistics: []cwtypes.Statistic{cwtypes.Statistic(req.Statistic)},
	}
	for name, value := range req.Dimensions {
		input.Dimensions = append(input.Dimensions, cwtypes.Dimension{
			Name:  aws.String(name),
			Value: aws.String(value),
		})
	}

	output, err := s.client.GetMetricStatistics(ctx, input)
	if err != nil {
		return nil, err
	}

	stats := &MetricStatistics{
		Label:     aws.ToString(output.Label),
		Statistic: req.Statistic,
	}
	for _, dp := range output.Datapoints {
		stats.Datapoints = append(stats.Datapoints, Datapoint{
			Timestamp: aws.ToTime(dp.Timestamp),
			Value:     datapointValue(dp, req.Statistic),
			Unit:      string(dp.Unit),
		})
	}

	// CloudWatch returns datapoints unordered.
	sortDatapoints(stats.Datapoints)

	return stats, nil
}

func (s *service) DescribeAlarms(ctx context.Context, stateValue string) ([]Alarm, error) {
	input := &cloudwatch.DescribeAlarmsInput{}
	if stateValue != "" {
		input.StateValue = cwtypes.StateValue(stateValue)
	}

	output, err := s.client.DescribeAlarms(ctx, input)
	if err != nil {
		return nil, err
	}

	var alarms []Alarm
	for _, a := range output.MetricAlarms {
		alarms = append(alarms, Alarm{
			Name:         aws.ToString(a.AlarmName),
			State:        string(a.StateValue),
			StateReason:  aws.ToString(a.StateReason),
			MetricName:   aws.ToString(a.MetricName),
			Namespace:    aws.ToString(a.Namespace),
			Threshold:    aws.ToFloat64(a.Threshold),
			ComparisonOp: string(a.ComparisonOperator),
		})
	}

	return alarms, nil
}

func (s *service) ListLogGroups(ctx context.Context, prefix string) ([]LogGroup, error) {
	input := &cloudwatchlogs.DescribeLogGroupsInput{}
	if prefix != "" {
		input.LogGroupNamePrefix = aws.String(prefix)
	}

	var groups []LogGroup
	paginator := cloudwatchlogs.NewDescribeLogGroupsPaginator(s.logsClient, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, g := range page.LogGroups {
			groups = append(groups, LogGroup{
				Name:          aws.ToString(g.LogGroupName),
				RetentionDays: aws.ToInt32(g.RetentionInDays),
				StoredBytes:   aws.ToInt64(g.StoredBytes),
			})
		}
	}

	return groups, nil
}

func (s *service) FilterLogEvents(ctx context.Context, req LogEventsRequest) (*LogEvents, error) {
	input := &cloudwatchlogs.FilterLogEventsInput{
		LogGroupName: aws.String(req.GroupName),
		StartTime:    aws.Int64(req.Start.UnixMilli()),
		EndTime:      aws.Int64(req.End.UnixMilli()),
		Limit:        aws.Int32(req.Limit),
	}
	if req.Pattern != "" {
		input.FilterPattern = aws.String(req.Pattern)
	}

	output, err := s.logsClient.FilterLogEvents(ctx, input)
	if err != nil {
		return nil, err
	}

	result := &LogEvents{
		GroupName: req.GroupName,
		Truncated: output.NextToken != nil,
	}
	for _, e := range output.Events {
		result.Events = append(result.Events, LogEvent{
			Timestamp: time.UnixMilli(aws.ToInt64(e.Timestamp)),
			Stream:    aws.ToString(e.LogStreamName),
			Message:   aws.ToString(e.Message),
		})
	}

	return result, nil
}

func datapointValue(dp cwtypes.Datapoint, statistic string) float64 {
	switch statistic {
	case "Sum":
		return aws.ToFloat64(dp.Sum)
	case "Minimum":
		return aws.ToFloat64(dp.Minimum)
	case "Maximum":
		return aws.ToFloat64(dp.Maximum)
	case "SampleCount":
		return aws.ToFloat64(dp.SampleCount)
	default:
		return aws.ToFloat64(dp.Average)
	}
}

func sortDatapoints(points []Datapoint) {
	sort.Slice(points, func(i, j int) bool {
		return points[i].Timestamp.Before(points[j].Timestamp)
	})
}
