package awsquicksight

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/quicksight"
)

type service struct {
	accountID string
	client    *quicksight.Client
}

type QuickSightService interface {
	ListDashboards(ctx context.Context) ([]Dashboard, error)
	DescribeDashboard(ctx context.Context, dashboardID string) (*DashboardDetail, error)
	ListDataSets(ctx context.Context) ([]DataSet, error)
	ListAnalyses(ctx context.Context) ([]Analysis, error)
}

// Dashboard is a QuickSight dashboard summary.
type Dashboard struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ARN         string    `json:"arn"`
	Created     time.Time `json:"created"`
	LastUpdated time.Time `json:"last_updated"`
	Published   int64     `json:"published_version"`
}

// DashboardDetail is a dashboard with its version and source metadata.
type DashboardDetail struct {
	Dashboard
	Status      string   `json:"status"`
	VersionARN  string   `json:"version_arn,omitempty"`
	DataSetARNs []string `json:"data_set_arns,omitempty"`
	Errors      []string `json:"errors,omitempty"`
}

// DataSet is a QuickSight data set summary.
type DataSet struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ARN        string    `json:"arn"`
	ImportMode string    `json:"import_mode"`
	Created    time.Time `json:"created"`
}

// Analysis is a QuickSight analysis summary.
type Analysis struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	ARN     string    `json:"arn"`
	Status  string    `json:"status"`
	Created time.Time `json:"created"`
}
