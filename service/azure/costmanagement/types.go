package azurecostmanagement

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/costmanagement/armcostmanagement"
	azureconfig "github.com/lxman/mcp-cloudtools/service/azure/config"
)

type service struct {
	subscriptionID string
	client         *armcostmanagement.QueryClient
}

type Credential = azureconfig.Credential

type CostService interface {
	GetCurrentMonthCostsByService(ctx context.Context) (*CostInfo, error)
	GetLastMonthCostsByService(ctx context.Context) (*CostInfo, error)
	GetCostTrend(ctx context.Context, months int) (*CostTrend, error)
}

// ServiceCost is cost attributed to one Azure service.
type ServiceCost struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// CostInfo is cost data for one period, sorted descending by amount.
type CostInfo struct {
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Services  []ServiceCost `json:"services,omitempty"`
	Total     float64       `json:"total"`
	Currency  string        `json:"currency"`
}

// CostTrend is a month-by-month total with summary statistics.
type CostTrend struct {
	Months         []CostInfo `json:"months"`
	TotalSpend     float64    `json:"total_spend"`
	AverageMonthly float64    `json:"average_monthly"`
	HighestMonth   string     `json:"highest_month,omitempty"`
	HighestAmount  float64    `json:"highest_amount"`
}
