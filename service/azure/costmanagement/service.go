package azurecostmanagement

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/costmanagement/armcostmanagement"
)

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	client, err := armcostmanagement.NewQueryClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cost management client: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		client:         client,
	}, nil
}

func (s *service) GetCurrentMonthCostsByService(ctx context.Context) (*CostInfo, error) {
	return s.getMonthCostsByService(ctx, time.Now())
}

func (s *service) GetLastMonthCostsByService(ctx context.Context) (*CostInfo, error) {
	return s.getMonthCostsByService(ctx, time.Now().AddDate(0, -1, 0))
}

func (s *service) getMonthCostsByService(ctx context.Context, endDate time.Time) (*CostInfo, error) {
	startDate := firstDayOfMonth(endDate)

	queryDefinition := armcostmanagement.QueryDefinition{
		Type:      to.Ptr(armcostmanagement.ExportTypeActualCost),
		Timeframe: to.Ptr(armcostmanagement.TimeframeTypeCustom),
		TimePeriod: &armcostmanagement.QueryTimePeriod{
			From: to.Ptr(startDate),
			To:   to.Ptr(endDate),
		},
		Dataset: &armcostmanagement.QueryDataset{
			Granularity: to.Ptr(armcostmanagement.GranularityTypeDaily),
			Aggregation: map[string]*armcostmanagement.QueryAggregation{
				"totalCost": {
					Name:     to.Ptr("Cost"),
					Function: to.Ptr(armcostmanagement.FunctionTypeSum),
				},
			},
			Grouping: []*armcostmanagement.QueryGrouping{
				{
					Type: to.Ptr(armcostmanagement.QueryColumnTypeDimension),
					Name: to.Ptr("ServiceName"),
				},
			},
		},
	}

	resp, err := s.client.Usage(ctx, s.scope(), queryDefinition, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query costs: %w", err)
	}

	// Daily granularity: aggregate rows per service. Row format is
	// [cost, date, serviceName, currency] but date may be omitted, so
	// only positions 0 (cost) and the first string cell are trusted.
	byService := make(map[string]float64)
	if resp.Properties != nil {
		for _, row := range resp.Properties.Rows {
			cost, name, ok := parseRow(row)
			if !ok || cost <= 0 {
				continue
			}
			byService[name] += cost
		}
	}

	info := &CostInfo{
		StartDate: startDate.Format("2006-01-02"),
		EndDate:   endDate.Format("2006-01-02"),
		Currency:  "USD",
	}
	for name, amount := range byService {
		info.Services = append(info.Services, ServiceCost{Name: name, Amount: amount, Unit: "USD"})
		info.Total += amount
	}
	sort.Slice(info.Services, func(i, j int) bool {
		return info.Services[i].Amount > info.Services[j].Amount
	})

	return info, nil
}

func (s *service) GetCostTrend(ctx context.Context, months int) (*CostTrend, error) {
	if months <= 0 {
		months = 6
	}

	trend := &CostTrend{}
	for i := months; i >= 1; i-- {
		monthDate := time.Now().AddDate(0, -i, 0)
		startDate := firstDayOfMonth(monthDate)
		endDate := lastDayOfMonth(monthDate)

		queryDefinition := armcostmanagement.QueryDefinition{
			Type:      to.Ptr(armcostmanagement.ExportTypeActualCost),
			Timeframe: to.Ptr(armcostmanagement.TimeframeTypeCustom),
			TimePeriod: &armcostmanagement.QueryTimePeriod{
				From: to.Ptr(startDate),
				To:   to.Ptr(endDate),
			},
			Dataset: &armcostmanagement.QueryDataset{
				Granularity: to.Ptr(armcostmanagement.GranularityTypeDaily),
				Aggregation: map[string]*armcostmanagement.QueryAggregation{
					"totalCost": {
						Name:     to.Ptr("Cost"),
						Function: to.Ptr(armcostmanagement.FunctionTypeSum),
					},
				},
			},
		}

		resp, err := s.client.Usage(ctx, s.scope(), queryDefinition, nil)
		if err != nil {
			// A month without data keeps the trend going with zero.
			continue
		}

		var total float64
		if resp.Properties != nil {
			for _, row := range resp.Properties.Rows {
				if len(row) >= 1 {
					if cost, ok := row[0].(float64); ok {
						total += cost
					}
				}
			}
		}

		month := CostInfo{
			StartDate: startDate.Format("2006-01-02"),
			EndDate:   endDate.Format("2006-01-02"),
			Total:     total,
			Currency:  "USD",
		}
		trend.Months = append(trend.Months, month)
		trend.TotalSpend += total
		if total > trend.HighestAmount {
			trend.HighestAmount = total
			trend.HighestMonth = startDate.Format("2006-01")
		}
	}

	if len(trend.Months) > 0 {
		trend.AverageMonthly = trend.TotalSpend / float64(len(trend.Months))
	}

	return trend, nil
}

func (s *service) scope() string {
	return fmt.Sprintf("/subscriptions/%s", s.subscriptionID)
}

func parseRow(row []any) (float64, string, bool) {
	if len(row) < 2 {
		return 0, "", false
	}
	cost, ok := row[0].(float64)
	if !ok {
		return 0, "", false
	}
	for _, cell := range row[1:] {
		if name, ok := cell.(string); ok && name != "" {
			return cost, name, true
		}
	}
	return 0, "", false
}

func firstDayOfMonth(month time.Time) time.Time {
	return time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func lastDayOfMonth(month time.Time) time.Time {
	return time.Date(month.Year(), month.Month()+1, 0, 23, 59, 59, 0, time.UTC)
}
