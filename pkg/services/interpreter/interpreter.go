// Package interpreter orchestrates metric calculation: alias resolution,
// input validation, formula evaluation and percentage scaling, plus the
// transitive requirement closure and catalog search.
package interpreter

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/de-tools/metric-atlas/pkg/models/domain"
	"github.com/de-tools/metric-atlas/pkg/services/catalog"
	"github.com/de-tools/metric-atlas/pkg/services/classifier"
	"github.com/de-tools/metric-atlas/pkg/services/dataset"
	"github.com/de-tools/metric-atlas/pkg/services/formula"
	"github.com/rs/zerolog"
)

type Interpreter struct {
	catalog *catalog.Catalog
}

func New(c *catalog.Catalog) *Interpreter {
	return &Interpreter{catalog: c}
}

// Calculate resolves a metric name (or alias) and evaluates it against the
// dataset. Failures come back as structured results, never as Go errors.
func (i *Interpreter) Calculate(ctx context.Context, name string, data domain.Dataset) domain.CalculationResult {
	canonical := i.catalog.Resolve(name)

	def, ok := i.catalog.Lookup(canonical)
	if !ok {
		zerolog.Ctx(ctx).Debug().Str("metric", name).Msg("unknown metric")
		return domain.CalculationResult{
			Metric:    name,
			ErrorKind: domain.ErrUnknownMetric,
			Error:     fmt.Sprintf("unknown metric %q", name),
		}
	}

	var missing []string
	used := make(domain.Dataset, len(def.Inputs))
	for _, inp := range def.Inputs {
		value, present := data[inp]
		if !present {
			missing = append(missing, inp)
			continue
		}
		used[inp] = value
	}
	if len(missing) > 0 {
		zerolog.Ctx(ctx).Debug().Str("metric", canonical).Strs("missing", missing).Msg("missing inputs")
		return domain.CalculationResult{
			Metric:        canonical,
			Formula:       def.Formula,
			ErrorKind:     domain.ErrMissingInputs,
			Error:         fmt.Sprintf("missing data for inputs: %s", strings.Join(missing, ", ")),
			MissingInputs: missing,
		}
	}

	value, err := i.evaluate(def, used)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Str("metric", canonical).Err(err).Msg("evaluation failed")
		return domain.CalculationResult{
			Metric:    canonical,
			Formula:   def.Formula,
			ErrorKind: domain.ErrEvaluation,
			Error:     fmt.Sprintf("error evaluating formula %q: %v", def.Formula, err),
		}
	}

	// Display-unit convention, applied uniformly after evaluation.
	if strings.HasSuffix(canonical, domain.PercentSuffix) {
		value *= 100
	}

	return domain.CalculationResult{
		Success:     true,
		Metric:      canonical,
		Value:       value,
		Formula:     def.Formula,
		Description: def.Description,
		InputsUsed:  used,
	}
}

// evaluate runs the formula engine, short-circuiting metrics whose formula is
// an exact single direct reference. The shortcut is an optimization only: the
// engine would produce the same value.
func (i *Interpreter) evaluate(def domain.MetricDefinition, used domain.Dataset) (float64, error) {
	if len(def.Inputs) == 1 && def.Formula == def.Inputs[0] {
		return used[def.Inputs[0]], nil
	}
	return formula.Evaluate(def.Formula, used)
}

// Definition is the alias-resolving lookup used for documentation display.
func (i *Interpreter) Definition(name string) (domain.MetricDefinition, bool) {
	return i.catalog.Lookup(name)
}

// Requirements walks a metric's inputs recursively, accumulating the
// deduplicated closure of everything it transitively needs. Inputs without a
// statement-namespace prefix that name another metric are expanded; a
// self-referential or cyclic entry simply stops that branch.
func (i *Interpreter) Requirements(name string) (domain.Requirements, bool) {
	canonical := i.catalog.Resolve(name)
	def, ok := i.catalog.Lookup(canonical)
	if !ok {
		return domain.Requirements{}, false
	}

	all := make(map[string]struct{})
	visited := make(map[string]struct{})

	var collect func(metric string)
	collect = func(metric string) {
		if _, seen := visited[metric]; seen {
			return
		}
		visited[metric] = struct{}{}

		d, found := i.catalog.Lookup(metric)
		if !found {
			return
		}
		for _, inp := range d.Inputs {
			all[inp] = struct{}{}
			if isDerivedInput(inp) {
				collect(inp)
			}
		}
	}

	visited[canonical] = struct{}{}
	for _, inp := range def.Inputs {
		all[inp] = struct{}{}
		if isDerivedInput(inp) {
			collect(inp)
		}
	}

	req := domain.Requirements{
		Metric:       canonical,
		Description:  def.Description,
		Formula:      def.Formula,
		DirectInputs: append([]string(nil), def.Inputs...),
	}
	for inp := range all {
		req.AllInputs = append(req.AllInputs, inp)
		switch {
		case strings.HasPrefix(inp, domain.PrefixIncomeStatement):
			req.IncomeStatement = append(req.IncomeStatement, inp)
		case strings.HasPrefix(inp, domain.PrefixBalanceSheet):
			req.BalanceSheet = append(req.BalanceSheet, inp)
		case strings.HasPrefix(inp, domain.PrefixCashFlow):
			req.CashFlow = append(req.CashFlow, inp)
		default:
			req.Derived = append(req.Derived, inp)
		}
	}
	sort.Strings(req.AllInputs)
	sort.Strings(req.IncomeStatement)
	sort.Strings(req.BalanceSheet)
	sort.Strings(req.CashFlow)
	sort.Strings(req.Derived)

	return req, true
}

// Summaries lists the catalog, optionally filtered by category
// (case-insensitive match on the classifier's category names).
func (i *Interpreter) Summaries(category string) []domain.MetricSummary {
	var out []domain.MetricSummary
	for _, def := range i.catalog.Definitions() {
		summary := summarize(def)
		if category != "" && !strings.EqualFold(category, summary.Category) {
			continue
		}
		out = append(out, summary)
	}
	sortSummaries(out)
	return out
}

// Find matches a keyword case-insensitively against metric names,
// descriptions and inputs.
func (i *Interpreter) Find(keyword string) []domain.MetricSummary {
	keyword = strings.ToLower(keyword)

	var out []domain.MetricSummary
	for _, def := range i.catalog.Definitions() {
		if matchesKeyword(def, keyword) {
			out = append(out, summarize(def))
		}
	}
	sortSummaries(out)
	return out
}

// DeriveAll computes every non-time-series metric whose inputs become
// available, iterating to a fixpoint so compound metrics pick up values
// derived in earlier passes. The input dataset is not mutated.
func (i *Interpreter) DeriveAll(ctx context.Context, data domain.Dataset) domain.Dataset {
	out := make(domain.Dataset, len(data))
	for key, value := range data {
		out[key] = value
	}

	for changed := true; changed; {
		changed = false
		for _, def := range i.catalog.Definitions() {
			if _, done := out[def.Name]; done {
				continue
			}
			if isTimeSeries(def) {
				continue
			}
			if res := i.Calculate(ctx, def.Name, out); res.Success {
				out[def.Name] = res.Value
				changed = true
			}
		}
	}
	return out
}

// DeriveWithPrior derives both periods independently, then computes
// time-series metrics over the merged _t/_t-1 dataset and folds them into the
// current period's results.
func (i *Interpreter) DeriveWithPrior(ctx context.Context, current, prior domain.Dataset) domain.Dataset {
	out := i.DeriveAll(ctx, current)
	merged := dataset.MergePeriods(out, i.DeriveAll(ctx, prior))

	for _, def := range i.catalog.Definitions() {
		if _, done := out[def.Name]; done {
			continue
		}
		if !isTimeSeries(def) {
			continue
		}
		if res := i.Calculate(ctx, def.Name, merged); res.Success {
			out[def.Name] = res.Value
		}
	}
	return out
}

// isDerivedInput reports whether an input may name another metric rather
// than a raw statement line item.
func isDerivedInput(inp string) bool {
	return !strings.HasPrefix(inp, domain.PrefixIncomeStatement) &&
		!strings.HasPrefix(inp, domain.PrefixBalanceSheet) &&
		!strings.HasPrefix(inp, domain.PrefixCashFlow)
}

func isTimeSeries(def domain.MetricDefinition) bool {
	for _, inp := range def.Inputs {
		if strings.HasSuffix(inp, dataset.CurrentSuffix) || strings.Contains(inp, dataset.CurrentSuffix+"-") {
			return true
		}
	}
	return false
}

func matchesKeyword(def domain.MetricDefinition, keyword string) bool {
	if strings.Contains(strings.ToLower(def.Name), keyword) ||
		strings.Contains(strings.ToLower(def.Description), keyword) {
		return true
	}
	for _, inp := range def.Inputs {
		if strings.Contains(strings.ToLower(inp), keyword) {
			return true
		}
	}
	return false
}

func summarize(def domain.MetricDefinition) domain.MetricSummary {
	return domain.MetricSummary{
		Name:        def.Name,
		Description: def.Description,
		Formula:     def.Formula,
		Category:    classifier.Categorize(def),
		IsRatio:     classifier.IsRatio(def.Name),
		Inputs:      append([]string(nil), def.Inputs...),
	}
}

func sortSummaries(summaries []domain.MetricSummary) {
	sort.Slice(summaries, func(a, b int) bool {
		if summaries[a].Category != summaries[b].Category {
			return summaries[a].Category < summaries[b].Category
		}
		return summaries[a].Name < summaries[b].Name
	})
}
