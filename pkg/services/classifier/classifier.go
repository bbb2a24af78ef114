// Package classifier buckets metric definitions into display categories.
// Classification is a presentation heuristic over names and input namespaces;
// it is deliberately kept out of the catalog so it can be swapped freely.
package classifier

import (
	"strings"

	"github.com/de-tools/metric-atlas/pkg/models/domain"
)

const (
	CategoryIncomeStatement = "Income Statement"
	CategoryBalanceSheet    = "Balance Sheet"
	CategoryCashFlow        = "Cash Flow"
	CategoryRatiosMargins   = "Ratios & Margins"
	CategoryGrowth          = "Growth Metrics"
	CategoryPerShare        = "Per Share Metrics"
	CategoryReturns         = "Return Metrics"
	CategoryOther           = "Other Metrics"
)

var incomeStatementNames = map[string]struct{}{
	"revenue": {}, "cogs": {}, "gross_profit": {}, "rnd": {}, "sga": {},
	"operating_income": {}, "ebit": {}, "interest_expense": {}, "ebt": {},
	"tax_expense": {}, "net_income": {},
}

var balanceSheetNames = map[string]struct{}{
	"cash": {}, "short_term_investments": {}, "accounts_receivable": {},
	"inventory": {}, "total_assets": {}, "accounts_payable": {},
	"total_liabilities": {}, "shareholders_equity": {},
}

var cashFlowNames = map[string]struct{}{
	"cfo": {}, "capex": {}, "free_cash_flow": {}, "cfi": {}, "cff": {},
}

// Categorize returns the display category for a definition.
func Categorize(def domain.MetricDefinition) string {
	switch {
	case hasPrefixedInput(def, domain.PrefixIncomeStatement) || contains(incomeStatementNames, def.Name):
		return CategoryIncomeStatement
	case hasPrefixedInput(def, domain.PrefixBalanceSheet) || contains(balanceSheetNames, def.Name):
		return CategoryBalanceSheet
	case hasPrefixedInput(def, domain.PrefixCashFlow) || contains(cashFlowNames, def.Name):
		return CategoryCashFlow
	case strings.HasSuffix(def.Name, domain.PercentSuffix),
		strings.Contains(def.Name, "margin"),
		strings.Contains(def.Name, "ratio"):
		return CategoryRatiosMargins
	case strings.Contains(def.Name, "growth"):
		return CategoryGrowth
	case strings.Contains(def.Name, "per_share"), def.Name == "eps_basic", def.Name == "eps_diluted":
		return CategoryPerShare
	case strings.Contains(def.Name, "return"):
		return CategoryReturns
	default:
		return CategoryOther
	}
}

// IsRatio reports whether a metric is displayed as a ratio or percentage.
func IsRatio(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, domain.PercentSuffix) ||
		strings.Contains(lower, "ratio") ||
		strings.Contains(lower, "margin")
}

func hasPrefixedInput(def domain.MetricDefinition, prefix string) bool {
	for _, inp := range def.Inputs {
		if strings.HasPrefix(inp, prefix) {
			return true
		}
	}
	return false
}

func contains(set map[string]struct{}, name string) bool {
	_, ok := set[name]
	return ok
}
