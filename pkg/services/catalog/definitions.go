package catalog

import (
	"github.com/de-tools/metric-atlas/pkg/models/domain"
)

// Definitions returns the built-in metric table. Inputs reference either raw
// financial-statement line items (is. / bs. / cf. / 10K. namespaces) or other
// metrics by name; formulas are pure arithmetic over those inputs.
func Definitions() []domain.MetricDefinition {
	return []domain.MetricDefinition{
		// Core income statement
		{Name: "revenue", Inputs: []string{"is.NetRevenue"}, Formula: "is.NetRevenue", Description: "Total top-line sales"},
		{Name: "cogs", Inputs: []string{"is.CostOfRevenue"}, Formula: "is.CostOfRevenue", Description: "Cost of goods / services"},
		{Name: "gross_profit", Inputs: []string{"revenue", "cogs"}, Formula: "revenue - cogs", Description: "Revenue minus COGS"},
		{Name: "rnd", Inputs: []string{"is.RD"}, Formula: "is.RD", Description: "Research & development exp."},
		{Name: "sga", Inputs: []string{"is.SG&A"}, Formula: "is.SG&A", Description: "Selling, general & admin"},
		{Name: "operating_income", Inputs: []string{"is.OperatingIncome"}, Formula: "is.OperatingIncome", Description: "EBIT; income from operations"},
		{Name: "ebit", Inputs: []string{"operating_income"}, Formula: "operating_income", Description: "Synonym for operating income"},
		{Name: "interest_expense", Inputs: []string{"is.InterestExpense"}, Formula: "is.InterestExpense", Description: "Net interest cost"},
		{Name: "ebt", Inputs: []string{"is.IncomeBeforeTax"}, Formula: "is.IncomeBeforeTax", Description: "Earnings before tax"},
		{Name: "tax_expense", Inputs: []string{"is.IncomeTax"}, Formula: "is.IncomeTax", Description: "Provision for income taxes"},
		{Name: "net_income", Inputs: []string{"is.NetIncome"}, Formula: "is.NetIncome", Description: "Bottom-line profit"},
		{Name: "eps_basic", Inputs: []string{"is.EPSBasic"}, Formula: "is.EPSBasic", Description: "Earnings per share, basic"},
		{Name: "eps_diluted", Inputs: []string{"is.EPSDiluted"}, Formula: "is.EPSDiluted", Description: "Earnings per share, diluted"},

		// Balance-sheet essentials
		{Name: "cash", Inputs: []string{"bs.CashAndEquivalents"}, Formula: "bs.CashAndEquivalents", Description: "Cash & cash equivalents"},
		{Name: "short_term_investments", Inputs: []string{"bs.ShortTermInvestments"}, Formula: "bs.ShortTermInvestments", Description: "Marketable securities"},
		{Name: "accounts_receivable", Inputs: []string{"bs.AccountsReceivable"}, Formula: "bs.AccountsReceivable", Description: "Trade receivables"},
		{Name: "inventory", Inputs: []string{"bs.Inventory"}, Formula: "bs.Inventory", Description: "Inventories"},
		{Name: "current_assets", Inputs: []string{"bs.TotalCurrentAssets"}, Formula: "bs.TotalCurrentAssets", Description: "Total current assets"},
		{Name: "pp&e", Inputs: []string{"bs.PP&E"}, Formula: "bs.PP&E", Description: "Property, plant & equipment"},
		{Name: "goodwill", Inputs: []string{"bs.Goodwill"}, Formula: "bs.Goodwill", Description: "Goodwill intangible"},
		{Name: "total_assets", Inputs: []string{"bs.TotalAssets"}, Formula: "bs.TotalAssets", Description: "Sum of assets"},
		{Name: "accounts_payable", Inputs: []string{"bs.AccountsPayable"}, Formula: "bs.AccountsPayable", Description: "Trade accounts payable"},
		{Name: "deferred_revenue", Inputs: []string{"bs.DeferredRevenue"}, Formula: "bs.DeferredRevenue", Description: "Contract liabilities"},
		{Name: "current_liabilities", Inputs: []string{"bs.TotalCurrentLiabilities"}, Formula: "bs.TotalCurrentLiabilities", Description: "Due within 12 mo."},
		{Name: "long_term_debt", Inputs: []string{"bs.LongTermDebt"}, Formula: "bs.LongTermDebt", Description: "Borrowings >1 year"},
		{Name: "total_liabilities", Inputs: []string{"bs.TotalLiabilities"}, Formula: "bs.TotalLiabilities", Description: "All liabilities"},
		{Name: "shareholders_equity", Inputs: []string{"bs.TotalEquity"}, Formula: "bs.TotalEquity", Description: "Book value of equity"},

		// Cash flow
		{Name: "cfo", Inputs: []string{"cf.CashFromOperations"}, Formula: "cf.CashFromOperations", Description: "Net cash from ops"},
		{Name: "capex", Inputs: []string{"cf.CapEx"}, Formula: "cf.CapEx", Description: "Capital expenditures"},
		{Name: "free_cash_flow", Inputs: []string{"cfo", "capex"}, Formula: "cfo - capex", Description: "CFO minus capex"},
		{Name: "cff", Inputs: []string{"cf.CashFromFinancing"}, Formula: "cf.CashFromFinancing", Description: "Cash from financing"},
		{Name: "cfi", Inputs: []string{"cf.CashFromInvesting"}, Formula: "cf.CashFromInvesting", Description: "Cash from investing"},

		// Margins & ratios
		{Name: "gross_margin_pct", Inputs: []string{"gross_profit", "revenue"}, Formula: "gross_profit / revenue", Description: "Gross profit / revenue"},
		{Name: "operating_margin_pct", Inputs: []string{"operating_income", "revenue"}, Formula: "operating_income / revenue", Description: "EBIT margin"},
		{Name: "net_margin_pct", Inputs: []string{"net_income", "revenue"}, Formula: "net_income / revenue", Description: "Net profit margin"},
		{Name: "rd_pct", Inputs: []string{"rnd", "revenue"}, Formula: "rnd / revenue", Description: "R&D as % of sales"},
		{Name: "sga_pct", Inputs: []string{"sga", "revenue"}, Formula: "sga / revenue", Description: "SG&A as % of sales"},
		{Name: "fcf_margin_pct", Inputs: []string{"free_cash_flow", "revenue"}, Formula: "free_cash_flow / revenue", Description: "FCF margin"},
		{Name: "ebitda", Inputs: []string{"operating_income", "is.D&A"}, Formula: "operating_income + is.D&A", Description: "EBIT + depreciation & amort."},
		{Name: "ebitda_margin_pct", Inputs: []string{"ebitda", "revenue"}, Formula: "ebitda / revenue", Description: "EBITDA margin"},
		{Name: "eps_growth_pct", Inputs: []string{"eps_diluted_t", "eps_diluted_t-1"}, Formula: "(eps_diluted_t/eps_diluted_t-1) - 1", Description: "YoY EPS growth"},
		{Name: "revenue_growth_pct", Inputs: []string{"revenue_t", "revenue_t-1"}, Formula: "(revenue_t/revenue_t-1) - 1", Description: "YoY top-line growth"},

		// Per-share & market
		{Name: "shares_out", Inputs: []string{"is.WeightedAvgSharesDiluted"}, Formula: "is.WeightedAvgSharesDiluted", Description: "Diluted share count"},
		{Name: "market_cap", Inputs: []string{"price", "shares_out"}, Formula: "price * shares_out", Description: "Price x diluted shares"},
		{Name: "enterprise_value", Inputs: []string{"market_cap", "total_liabilities", "cash"}, Formula: "market_cap + total_liabilities - cash", Description: "EV = Mcap + debt - cash"},
		{Name: "ev_ebitda", Inputs: []string{"enterprise_value", "ebitda"}, Formula: "enterprise_value / ebitda", Description: "EV / EBITDA multiple"},
		{Name: "price_sales", Inputs: []string{"market_cap", "revenue"}, Formula: "market_cap / revenue", Description: "P/S ratio"},
		{Name: "price_earnings", Inputs: []string{"price", "eps_diluted"}, Formula: "price / eps_diluted", Description: "Trailing P/E"},
		{Name: "dividend_yield_pct", Inputs: []string{"dividend_per_share", "price"}, Formula: "dividend_per_share / price", Description: "Dividends / price"},

		// Return metrics
		{Name: "roic_pct", Inputs: []string{"nopat", "invested_capital"}, Formula: "nopat / invested_capital", Description: "Return on invested capital"},
		{Name: "roe_pct", Inputs: []string{"net_income", "shareholders_equity"}, Formula: "net_income / shareholders_equity", Description: "Return on equity"},
		{Name: "roa_pct", Inputs: []string{"net_income", "total_assets"}, Formula: "net_income / total_assets", Description: "Return on assets"},

		// Leverage & liquidity
		{Name: "current_ratio", Inputs: []string{"current_assets", "current_liabilities"}, Formula: "current_assets / current_liabilities", Description: "Liquidity ratio"},
		{Name: "quick_ratio", Inputs: []string{"cash", "short_term_investments", "accounts_receivable", "current_liabilities"}, Formula: "(cash + short_term_investments + accounts_receivable) / current_liabilities", Description: "Acid-test ratio"},
		{Name: "debt_equity", Inputs: []string{"long_term_debt", "shareholders_equity"}, Formula: "long_term_debt / shareholders_equity", Description: "Leverage ratio"},
		{Name: "debt_ebitda", Inputs: []string{"long_term_debt", "ebitda"}, Formula: "long_term_debt / ebitda", Description: "Debt / EBITDA"},
		{Name: "interest_coverage", Inputs: []string{"ebit", "interest_expense"}, Formula: "ebit / abs(interest_expense)", Description: "EBIT / Interest"},

		// Cash efficiency
		{Name: "ocf_conversion_pct", Inputs: []string{"cfo", "net_income"}, Formula: "cfo / net_income", Description: "Cash conversion (ops)"},
		{Name: "capex_sales_pct", Inputs: []string{"capex", "revenue"}, Formula: "capex / revenue", Description: "Capex intensity"},
		{Name: "dividend_payout_pct", Inputs: []string{"dividend_per_share", "eps_diluted"}, Formula: "dividend_per_share / eps_diluted", Description: "Payout ratio"},

		// Valuation extras
		{Name: "ev_sales", Inputs: []string{"enterprise_value", "revenue"}, Formula: "enterprise_value / revenue", Description: "EV / Sales"},
		{Name: "ev_ebit", Inputs: []string{"enterprise_value", "ebit"}, Formula: "enterprise_value / ebit", Description: "EV / EBIT"},
		{Name: "fcf_yield_pct", Inputs: []string{"free_cash_flow", "market_cap"}, Formula: "free_cash_flow / market_cap", Description: "FCF / market cap"},

		// Growth tailwinds
		{Name: "rd_growth_pct", Inputs: []string{"rnd_t", "rnd_t-1"}, Formula: "(rnd_t/rnd_t-1) - 1", Description: "YoY R&D growth"},
		{Name: "capex_growth_pct", Inputs: []string{"capex_t", "capex_t-1"}, Formula: "(capex_t/capex_t-1) - 1", Description: "YoY CapEx growth"},
		{Name: "employees", Inputs: []string{"10K.Employees"}, Formula: "10K.Employees", Description: "Full-time headcount"},
		{Name: "revenue_per_employee", Inputs: []string{"revenue", "employees"}, Formula: "revenue / employees", Description: "Efficiency metric"},

		// Market performance
		{Name: "total_return_1y_pct", Inputs: []string{"price_t", "price_t-252"}, Formula: "(price_t/price_t-252) - 1", Description: "1-year price return"},

		// ESG / other
		{Name: "carbon_intensity", Inputs: []string{"ghg_scope1", "revenue"}, Formula: "ghg_scope1 / revenue", Description: "tCO2e / $ revenue"},
		{Name: "board_independence_pct", Inputs: []string{"board_independent", "board_total"}, Formula: "board_independent / board_total", Description: "Governance metric"},

		// Working capital & coverage
		{Name: "preferred_dividends", Inputs: []string{"is.PreferredDividends"}, Formula: "is.PreferredDividends", Description: "Preferred payouts"},
		{Name: "tangible_book_value", Inputs: []string{"shareholders_equity", "goodwill"}, Formula: "shareholders_equity - goodwill", Description: "Equity less intangibles"},
		{Name: "price_book", Inputs: []string{"price", "tangible_book_value_per_share"}, Formula: "price / tangible_book_value_per_share", Description: "P/B on tangible BV"},
		{Name: "working_capital", Inputs: []string{"current_assets", "current_liabilities"}, Formula: "current_assets - current_liabilities", Description: "Operational liquidity"},
		{Name: "days_sales_outstanding", Inputs: []string{"accounts_receivable", "revenue"}, Formula: "(accounts_receivable / revenue) * 365", Description: "Receivables / sales days"},
		{Name: "days_inventory", Inputs: []string{"inventory", "cogs"}, Formula: "(inventory / cogs) * 365", Description: "Inventory days"},
		{Name: "days_payables", Inputs: []string{"accounts_payable", "cogs"}, Formula: "(accounts_payable / cogs) * 365", Description: "Payables days"},
		{Name: "cash_conversion_cycle", Inputs: []string{"days_inventory", "days_sales_outstanding", "days_payables"}, Formula: "days_inventory + days_sales_outstanding - days_payables", Description: "Supply-chain cash cycle"},
		{Name: "interest_bearing_debt", Inputs: []string{"long_term_debt", "bs.ShortTermDebt"}, Formula: "long_term_debt + bs.ShortTermDebt", Description: "All debt obligations"},
		{Name: "ltm_revenue", Inputs: []string{"revenue_t", "revenue_t-1", "revenue_t-2", "revenue_t-3"}, Formula: "revenue_t + revenue_t-1 + revenue_t-2 + revenue_t-3", Description: "Trailing-12-month revenue"},
	}
}

// Aliases returns the built-in alias table. Aliases map directly onto
// canonical names; chains are rejected at construction.
func Aliases() map[string]string {
	return map[string]string{
		"sales":                    "revenue",
		"top_line":                 "revenue",
		"profits":                  "net_income",
		"earnings":                 "net_income",
		"bottom_line":              "net_income",
		"r&d":                      "rnd",
		"research_and_development": "rnd",
		"operating_profit":         "operating_income",
		"ebit_margin":              "operating_margin_pct",
		"profit_margin":            "net_margin_pct",
		"net_profit_margin":        "net_margin_pct",
		"gross_margin":             "gross_margin_pct",
		"fcf":                      "free_cash_flow",
		"operating_cash_flow":      "cfo",
		"ppe":                      "pp&e",
		"property_plant_equipment": "pp&e",
		"debt":                     "long_term_debt",
		"equity":                   "shareholders_equity",
		"book_value":               "shareholders_equity",
		"assets":                   "total_assets",
		"liabilities":              "total_liabilities",
		"ar":                       "accounts_receivable",
		"ap":                       "accounts_payable",
		"pe_ratio":                 "price_earnings",
		"pe":                       "price_earnings",
		"ps":                       "price_sales",
		"ps_ratio":                 "price_sales",
	}
}
