package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/de-tools/metric-atlas/pkg/models/domain"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		def      domain.MetricDefinition
		expected string
	}{
		{
			name:     "income statement by input namespace",
			def:      domain.MetricDefinition{Name: "revenue", Inputs: []string{"is.NetRevenue"}},
			expected: CategoryIncomeStatement,
		},
		{
			name:     "income statement by name",
			def:      domain.MetricDefinition{Name: "gross_profit", Inputs: []string{"revenue", "cogs"}},
			expected: CategoryIncomeStatement,
		},
		{
			name:     "balance sheet by input namespace",
			def:      domain.MetricDefinition{Name: "cash", Inputs: []string{"bs.Cash"}},
			expected: CategoryBalanceSheet,
		},
		{
			name:     "cash flow by name",
			def:      domain.MetricDefinition{Name: "free_cash_flow", Inputs: []string{"cfo", "capex"}},
			expected: CategoryCashFlow,
		},
		{
			name:     "percent suffix wins over growth keyword",
			def:      domain.MetricDefinition{Name: "revenue_growth_pct", Inputs: []string{"revenue_t", "revenue_t-1"}},
			expected: CategoryRatiosMargins,
		},
		{
			name:     "ratio keyword",
			def:      domain.MetricDefinition{Name: "current_ratio", Inputs: []string{"a", "b"}},
			expected: CategoryRatiosMargins,
		},
		{
			name:     "growth keyword",
			def:      domain.MetricDefinition{Name: "revenue_growth", Inputs: []string{"revenue_t", "revenue_t-1"}},
			expected: CategoryGrowth,
		},
		{
			name:     "per share",
			def:      domain.MetricDefinition{Name: "book_value_per_share", Inputs: []string{"a", "b"}},
			expected: CategoryPerShare,
		},
		{
			name:     "returns",
			def:      domain.MetricDefinition{Name: "total_shareholder_return", Inputs: []string{"a", "b"}},
			expected: CategoryReturns,
		},
		{
			name:     "fallback",
			def:      domain.MetricDefinition{Name: "market_cap", Inputs: []string{"price", "shares_out"}},
			expected: CategoryOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Categorize(tt.def))
		})
	}
}

func TestIsRatio(t *testing.T) {
	assert.True(t, IsRatio("gross_margin_pct"))
	assert.True(t, IsRatio("current_ratio"))
	assert.True(t, IsRatio("fcf_margin_pct"))
	assert.False(t, IsRatio("revenue"))
	assert.False(t, IsRatio("free_cash_flow"))
}
