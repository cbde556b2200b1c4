package azurecostmanagement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		in        time.Time
		wantFirst time.Time
		wantLast  time.Time
	}{
		{
			name:      "mid month",
			in:        time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC),
			wantFirst: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantLast:  time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "february leap year",
			in:        time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
			wantFirst: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantLast:  time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "december wraps year",
			in:        time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
			wantFirst: time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
			wantLast:  time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantFirst, firstDayOfMonth(tt.in))
			assert.Equal(t, tt.wantLast, lastDayOfMonth(tt.in))
		})
	}
}

func TestParseRow(t *testing.T) {
	tests := []struct {
		name     string
		row      []any
		wantCost float64
		wantSvc  string
		wantOK   bool
	}{
		{
			name:     "cost then service name",
			row:      []any{12.5, "Virtual Machines", "USD"},
			wantCost: 12.5,
			wantSvc:  "Virtual Machines",
			wantOK:   true,
		},
		{
			name:     "service name after date column",
			row:      []any{3.25, float64(20250301), "Storage", "USD"},
			wantCost: 3.25,
			wantSvc:  "Storage",
			wantOK:   true,
		},
		{name: "too short", row: []any{1.0}, wantOK: false},
		{name: "cost not a number", row: []any{"oops", "Storage"}, wantOK: false},
		{name: "no string cell", row: []any{1.0, 2.0, 3.0}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, svc, ok := parseRow(tt.row)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantCost, cost)
				assert.Equal(t, tt.wantSvc, svc)
			}
		})
	}
}
