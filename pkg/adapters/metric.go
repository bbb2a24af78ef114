package adapters

import (
	"github.com/de-tools/metric-atlas/pkg/models/api"
	"github.com/de-tools/metric-atlas/pkg/models/domain"
)

func MapMetricDefinitionDomainToApi(def domain.MetricDefinition, aliases []string) api.MetricDefinition {
	return api.MetricDefinition{
		Name:        def.Name,
		Inputs:      append([]string(nil), def.Inputs...),
		Formula:     def.Formula,
		Description: def.Description,
		Aliases:     aliases,
	}
}

func MapMetricSummaryDomainToApi(summary domain.MetricSummary) api.MetricSummary {
	return api.MetricSummary{
		Name:        summary.Name,
		Description: summary.Description,
		Formula:     summary.Formula,
		Category:    summary.Category,
		IsRatio:     summary.IsRatio,
		Inputs:      append([]string(nil), summary.Inputs...),
	}
}

func MapCalculationResultDomainToApi(res domain.CalculationResult) api.CalculationResult {
	out := api.CalculationResult{
		Success:       res.Success,
		Metric:        res.Metric,
		Formula:       res.Formula,
		Description:   res.Description,
		Error:         res.Error,
		ErrorKind:     string(res.ErrorKind),
		MissingInputs: append([]string(nil), res.MissingInputs...),
	}
	if res.Success {
		value := res.Value
		out.Value = &value
		out.InputsUsed = res.InputsUsed
	}
	return out
}

func MapRequirementsDomainToApi(req domain.Requirements) api.Requirements {
	return api.Requirements{
		Metric:          req.Metric,
		Description:     req.Description,
		Formula:         req.Formula,
		DirectInputs:    append([]string(nil), req.DirectInputs...),
		AllInputs:       append([]string(nil), req.AllInputs...),
		IncomeStatement: append([]string(nil), req.IncomeStatement...),
		BalanceSheet:    append([]string(nil), req.BalanceSheet...),
		CashFlow:        append([]string(nil), req.CashFlow...),
		Derived:         append([]string(nil), req.Derived...),
	}
}
