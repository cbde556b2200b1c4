package awsquicksight

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/quicksight"
)

func NewService(awsconfig aws.Config, accountID string) *service {
	return &service{
		accountID: accountID,
		client:    quicksight.NewFromConfig(awsconfig),
	}
}

func (s *service) ListDashboards(ctx context.Context) ([]Dashboard, error) {
	var dashboards []Dashboard
	paginator := quicksight.NewListDashboardsPaginator(s.client, &quicksight.ListDashboardsInput{
		AwsAccountId: aws.String(s.accountID),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, d := range page.DashboardSummaryList {
			dashboards = append(dashboards, Dashboard{
				ID:          aws.ToString(d.DashboardId),
				Name:        aws.ToString(d.Name),
				ARN:         aws.ToString(d.Arn),
				Created:     aws.ToTime(d.CreatedTime),
				LastUpdated: aws.ToTime(d.LastUpdatedTime),
				Published:   aws.ToInt64(d.PublishedVersionNumber),
			})
		}
	}

	return dashboards, nil
}

func (s *service) DescribeDashboard(ctx context.Context, dashboardID string) (*DashboardDetail, error) {
	output, err := s.client.DescribeDashboard(ctx, &quicksight.DescribeDashboardInput{
		AwsAccountId: aws.String(s.accountID),
		DashboardId:  aws.String(dashboardID),
	})
	if err != nil {
		return nil, err
	}

	d := output.Dashboard
	detail := &DashboardDetail{
		Dashboard: Dashboard{
			ID:          aws.ToString(d.DashboardId),
			Name:        aws.ToString(d.Name),
			ARN:         aws.ToString(d.Arn),
			Created:     aws.ToTime(d.CreatedTime),
			LastUpdated: aws.ToTime(d.LastUpdatedTime),
		},
	}
	if d.Version != nil {
		detail.Status = string(d.Version.Status)
		detail.VersionARN = aws.ToString(d.Version.Arn)
		detail.DataSetARNs = d.Version.DataSetArns
		for _, e := range d.Version.Errors {
			detail.Errors = append(detail.Errors, aws.ToString(e.Message))
		}
	}

	return detail, nil
}

func (s *service) ListDataSets(ctx context.Context) ([]DataSet, error) {
	var dataSets []DataSet
	paginator := quicksight.NewListDataSetsPaginator(s.client, &quicksight.ListDataSetsInput{
		AwsAccountId: aws.String(s.accountID),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, ds := range page.DataSetSummaries {
			dataSets = append(dataSets, DataSet{
				ID:         aws.ToString(ds.DataSetId),
				Name:       aws.ToString(ds.Name),
				ARN:        aws.ToString(ds.Arn),
				ImportMode: string(ds.ImportMode),
				Created:    aws.ToTime(ds.CreatedTime),
			})
		}
	}

	return dataSets, nil
}

func (s *service) ListAnalyses(ctx context.Context) ([]Analysis, error) {
	var analyses []Analysis
	paginator := quicksight.NewListAnalysesPaginator(s.client, &quicksight.ListAnalysesInput{
		AwsAccountId: aws.String(s.accountID),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, a := range page.AnalysisSummaryList {
			analyses = append(analyses, Analysis{
				ID:      aws.ToString(a.AnalysisId),
				Name:    aws.ToString(a.Name),
				ARN:     aws.ToString(a.Arn),
				Status:  string(a.Status),
				Created: aws.ToTime(a.CreatedTime),
			})
		}
	}

	return analyses, nil
}
