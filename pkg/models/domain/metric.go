package domain

// Statement namespace prefixes for raw financial-statement line items.
// An input carrying one of these prefixes is never treated as a metric name.
const (
	PrefixIncomeStatement = "is."
	PrefixBalanceSheet    = "bs."
	PrefixCashFlow        = "cf."
)

// PercentSuffix marks metrics whose evaluated value is scaled x100 for
// display. The scaling is applied after evaluation, never inside a formula.
const PercentSuffix = "_pct"

// MetricDefinition describes a single catalog entry. Immutable once the
// catalog is constructed.
type MetricDefinition struct {
	Name        string
	Inputs      []string // direct required inputs, in declaration order
	Formula     string
	Description string
}

// Dataset is a caller-owned mapping from input identifier to value.
// The core only ever reads it.
type Dataset map[string]float64

// ErrorKind classifies a failed calculation.
type ErrorKind string

const (
	ErrUnknownMetric ErrorKind = "unknown_metric"
	ErrMissingInputs ErrorKind = "missing_inputs"
	ErrEvaluation    ErrorKind = "evaluation_error"
)

// CalculationResult is the structured outcome of a single metric calculation.
// Failures are reported through Success/ErrorKind/Error, never as a Go error.
type CalculationResult struct {
	Success       bool
	Metric        string
	Value         float64
	Formula       string
	Description   string
	InputsUsed    Dataset
	ErrorKind     ErrorKind
	Error         string
	MissingInputs []string
}

// Requirements is the transitive input closure of a metric, bucketed by
// source statement.
type Requirements struct {
	Metric          string
	Description     string
	Formula         string
	DirectInputs    []string
	AllInputs       []string
	IncomeStatement []string
	BalanceSheet    []string
	CashFlow        []string
	Derived         []string
}

// MetricSummary is the listing/search view of a definition.
type MetricSummary struct {
	Name        string
	Description string
	Formula     string
	Category    string
	IsRatio     bool
	Inputs      []string
}
