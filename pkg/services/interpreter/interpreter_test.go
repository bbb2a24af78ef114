package interpreter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/metric-atlas/pkg/models/domain"
	"github.com/de-tools/metric-atlas/pkg/services/catalog"
)

func newInterpreter(t *testing.T) *Interpreter {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return New(c)
}

func TestCalculate_Passthrough(t *testing.T) {
	i := newInterpreter(t)
	ctx := context.Background()

	res := i.Calculate(ctx, "revenue", domain.Dataset{"is.NetRevenue": 383_285.0})
	require.True(t, res.Success)
	assert.Equal(t, "revenue", res.Metric)
	assert.Equal(t, 383_285.0, res.Value)
	assert.Equal(t, domain.Dataset{"is.NetRevenue": 383_285.0}, res.InputsUsed)

	// Passthrough is exact, sign included.
	res = i.Calculate(ctx, "capex", domain.Dataset{"cf.CapEx": -10_959.0})
	require.True(t, res.Success)
	assert.Equal(t, -10_959.0, res.Value)
}

func TestCalculate_Derived(t *testing.T) {
	i := newInterpreter(t)

	res := i.Calculate(context.Background(), "gross_profit", domain.Dataset{
		"revenue": 100.0,
		"cogs":    40.0,
	})
	require.True(t, res.Success)
	assert.Equal(t, 60.0, res.Value)
	assert.Equal(t, "revenue - cogs", res.Formula)
}

func TestCalculate_PercentScaling(t *testing.T) {
	i := newInterpreter(t)

	res := i.Calculate(context.Background(), "net_margin_pct", domain.Dataset{
		"net_income": 20.0,
		"revenue":    100.0,
	})
	require.True(t, res.Success)
	assert.InDelta(t, 20.0, res.Value, 1e-9)
}

func TestCalculate_AliasEquivalence(t *testing.T) {
	i := newInterpreter(t)
	ctx := context.Background()
	data := domain.Dataset{"is.NetRevenue": 500.0}

	viaAlias := i.Calculate(ctx, "sales", data)
	canonical := i.Calculate(ctx, "revenue", data)

	require.True(t, viaAlias.Success)
	assert.Equal(t, canonical, viaAlias)
	assert.Equal(t, "revenue", viaAlias.Metric)
}

func TestCalculate_UnknownMetric(t *testing.T) {
	i := newInterpreter(t)

	res := i.Calculate(context.Background(), "unknown_metric_xyz", domain.Dataset{})
	assert.False(t, res.Success)
	assert.Equal(t, domain.ErrUnknownMetric, res.ErrorKind)
	assert.Equal(t, "unknown_metric_xyz", res.Metric)
	assert.Contains(t, res.Error, "unknown_metric_xyz")
}

func TestCalculate_MissingInputs(t *testing.T) {
	i := newInterpreter(t)

	res := i.Calculate(context.Background(), "gross_profit", domain.Dataset{"revenue": 100.0})
	assert.False(t, res.Success)
	assert.Equal(t, domain.ErrMissingInputs, res.ErrorKind)
	assert.Equal(t, []string{"cogs"}, res.MissingInputs)
	assert.Contains(t, res.Error, "cogs")
}

func TestCalculate_MissingInputsDeclarationOrder(t *testing.T) {
	i := newInterpreter(t)

	res := i.Calculate(context.Background(), "gross_profit", domain.Dataset{})
	assert.False(t, res.Success)
	assert.Equal(t, []string{"revenue", "cogs"}, res.MissingInputs)
}

func TestCalculate_DivisionByZero(t *testing.T) {
	i := newInterpreter(t)

	res := i.Calculate(context.Background(), "net_margin_pct", domain.Dataset{
		"net_income": 10.0,
		"revenue":    0.0,
	})
	assert.False(t, res.Success)
	assert.Equal(t, domain.ErrEvaluation, res.ErrorKind)
	assert.Contains(t, res.Error, "division by zero")
}

func TestCalculate_TimeSeries(t *testing.T) {
	i := newInterpreter(t)

	res := i.Calculate(context.Background(), "revenue_growth_pct", domain.Dataset{
		"revenue_t":   110.0,
		"revenue_t-1": 100.0,
	})
	require.True(t, res.Success)
	assert.InDelta(t, 10.0, res.Value, 1e-9)
}

func TestRequirements_Closure(t *testing.T) {
	i := newInterpreter(t)

	req, ok := i.Requirements("free_cash_flow")
	require.True(t, ok)

	assert.Equal(t, "free_cash_flow", req.Metric)
	assert.Equal(t, []string{"cfo", "capex"}, req.DirectInputs)
	assert.Equal(t, []string{"capex", "cf.CapEx", "cf.CashFromOperations", "cfo"}, req.AllInputs)
	assert.Equal(t, []string{"cf.CapEx", "cf.CashFromOperations"}, req.CashFlow)
	assert.Equal(t, []string{"capex", "cfo"}, req.Derived)
	assert.Empty(t, req.IncomeStatement)
	assert.Empty(t, req.BalanceSheet)
}

func TestRequirements_AliasAndUnknown(t *testing.T) {
	i := newInterpreter(t)

	viaAlias, ok := i.Requirements("fcf")
	require.True(t, ok)
	assert.Equal(t, "free_cash_flow", viaAlias.Metric)

	_, ok = i.Requirements("unknown_metric_xyz")
	assert.False(t, ok)
}

func TestRequirements_CycleTerminates(t *testing.T) {
	// A catalog with mutually recursive metrics still yields a finite closure.
	c, err := catalog.New([]domain.MetricDefinition{
		{Name: "alpha", Inputs: []string{"beta"}, Formula: "beta"},
		{Name: "beta", Inputs: []string{"alpha"}, Formula: "alpha"},
	}, nil)
	require.NoError(t, err)

	req, ok := New(c).Requirements("alpha")
	require.True(t, ok)
	assert.Equal(t, []string{"alpha", "beta"}, req.AllInputs)
}

func TestSummaries(t *testing.T) {
	i := newInterpreter(t)

	all := i.Summaries("")
	assert.NotEmpty(t, all)

	income := i.Summaries("income statement")
	require.NotEmpty(t, income)
	for _, s := range income {
		assert.Equal(t, "Income Statement", s.Category)
	}
	assert.Less(t, len(income), len(all))

	assert.Empty(t, i.Summaries("no such category"))
}

func TestFind(t *testing.T) {
	i := newInterpreter(t)

	matches := i.Find("margin")
	require.NotEmpty(t, matches)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.Name)
	}
	assert.Contains(t, names, "gross_margin_pct")
	assert.Contains(t, names, "net_margin_pct")

	// Keyword matching also covers inputs.
	matches = i.Find("cf.capex")
	require.NotEmpty(t, matches)

	assert.Empty(t, i.Find("zzz_no_match"))
}

func TestDeriveAll_Fixpoint(t *testing.T) {
	i := newInterpreter(t)

	derived := i.DeriveAll(context.Background(), domain.Dataset{
		"is.NetRevenue":    100.0,
		"is.CostOfRevenue": 40.0,
		"is.NetIncome":     20.0,
	})

	// First pass resolves the passthroughs, later passes the compounds.
	assert.Equal(t, 100.0, derived["revenue"])
	assert.Equal(t, 40.0, derived["cogs"])
	assert.Equal(t, 60.0, derived["gross_profit"])
	assert.InDelta(t, 60.0, derived["gross_margin_pct"], 1e-9)
	assert.InDelta(t, 20.0, derived["net_margin_pct"], 1e-9)

	// Metrics whose inputs never appear stay absent.
	_, ok := derived["free_cash_flow"]
	assert.False(t, ok)

	// Time-series metrics are not computed from a single period.
	_, ok = derived["revenue_growth_pct"]
	assert.False(t, ok)
}

func TestDeriveAll_DoesNotMutateInput(t *testing.T) {
	i := newInterpreter(t)
	data := domain.Dataset{"is.NetRevenue": 100.0}

	_ = i.DeriveAll(context.Background(), data)
	assert.Equal(t, domain.Dataset{"is.NetRevenue": 100.0}, data)
}

func TestDeriveWithPrior(t *testing.T) {
	i := newInterpreter(t)

	derived := i.DeriveWithPrior(context.Background(),
		domain.Dataset{"is.NetRevenue": 110.0},
		domain.Dataset{"is.NetRevenue": 100.0},
	)

	assert.Equal(t, 110.0, derived["revenue"])
	assert.InDelta(t, 10.0, derived["revenue_growth_pct"], 1e-9)
}
