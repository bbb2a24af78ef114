package api

type MetricDefinition struct {
	Name        string   `json:"name" yaml:"name"`
	Inputs      []string `json:"inputs" yaml:"inputs"`
	Formula     string   `json:"formula" yaml:"formula"`
	Description string   `json:"description" yaml:"description"`
	Aliases     []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

type MetricSummary struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Formula     string   `json:"formula" yaml:"formula"`
	Category    string   `json:"category" yaml:"category"`
	IsRatio     bool     `json:"is_ratio" yaml:"is_ratio"`
	Inputs      []string `json:"inputs" yaml:"inputs"`
}

type CalculationResult struct {
	Success       bool               `json:"success" yaml:"success"`
	Metric        string             `json:"metric" yaml:"metric"`
	Value         *float64           `json:"value,omitempty" yaml:"value,omitempty"`
	Formula       string             `json:"formula,omitempty" yaml:"formula,omitempty"`
	Description   string             `json:"description,omitempty" yaml:"description,omitempty"`
	InputsUsed    map[string]float64 `json:"inputs_used,omitempty" yaml:"inputs_used,omitempty"`
	Error         string             `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorKind     string             `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
	MissingInputs []string           `json:"missing_inputs,omitempty" yaml:"missing_inputs,omitempty"`
}

type Requirements struct {
	Metric          string   `json:"metric" yaml:"metric"`
	Description     string   `json:"description" yaml:"description"`
	Formula         string   `json:"formula" yaml:"formula"`
	DirectInputs    []string `json:"direct_inputs" yaml:"direct_inputs"`
	AllInputs       []string `json:"all_required_inputs" yaml:"all_required_inputs"`
	IncomeStatement []string `json:"income_statement_inputs,omitempty" yaml:"income_statement_inputs,omitempty"`
	BalanceSheet    []string `json:"balance_sheet_inputs,omitempty" yaml:"balance_sheet_inputs,omitempty"`
	CashFlow        []string `json:"cash_flow_inputs,omitempty" yaml:"cash_flow_inputs,omitempty"`
	Derived         []string `json:"derived_inputs,omitempty" yaml:"derived_inputs,omitempty"`
}
