package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/metric-atlas/pkg/models/domain"
)

func TestDefault_Valid(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, len(Definitions()), len(c.Names()))
	assert.True(t, c.Contains("revenue"))
	assert.True(t, c.Contains("gross_margin_pct"))
}

func TestResolve(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "revenue", c.Resolve("sales"))
	assert.Equal(t, "free_cash_flow", c.Resolve("fcf"))
	assert.Equal(t, "pp&e", c.Resolve("ppe"))

	// Canonical names and unknown names resolve to themselves.
	assert.Equal(t, "revenue", c.Resolve("revenue"))
	assert.Equal(t, "not_a_metric", c.Resolve("not_a_metric"))
}

func TestLookup_ThroughAlias(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	direct, ok := c.Lookup("revenue")
	require.True(t, ok)

	viaAlias, ok := c.Lookup("sales")
	require.True(t, ok)

	assert.Equal(t, direct, viaAlias)

	_, ok = c.Lookup("unknown_metric_xyz")
	assert.False(t, ok)
}

func TestAliasesFor(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	aliases := c.AliasesFor("revenue")
	assert.Contains(t, aliases, "sales")

	assert.Empty(t, c.AliasesFor("not_a_metric"))
}

func TestNew_RejectsBadDefinitions(t *testing.T) {
	base := domain.MetricDefinition{
		Name:    "gross_profit",
		Inputs:  []string{"revenue", "cogs"},
		Formula: "revenue - cogs",
	}

	tests := []struct {
		name    string
		defs    []domain.MetricDefinition
		wantErr string
	}{
		{
			name:    "empty name",
			defs:    []domain.MetricDefinition{{Inputs: []string{"a"}, Formula: "a"}},
			wantErr: "empty name",
		},
		{
			name:    "duplicate name",
			defs:    []domain.MetricDefinition{base, base},
			wantErr: "duplicate metric",
		},
		{
			name:    "no inputs",
			defs:    []domain.MetricDefinition{{Name: "constant", Formula: "42"}},
			wantErr: "declares no inputs",
		},
		{
			name: "formula references undeclared identifier",
			defs: []domain.MetricDefinition{{
				Name:    "gross_profit",
				Inputs:  []string{"revenue"},
				Formula: "revenue - cogs",
			}},
			wantErr: "not a declared input",
		},
		{
			name: "formula does not parse",
			defs: []domain.MetricDefinition{{
				Name:    "broken",
				Inputs:  []string{"revenue"},
				Formula: "revenue +",
			}},
			wantErr: "broken",
		},
		{
			name: "unsupported function",
			defs: []domain.MetricDefinition{{
				Name:    "volatility",
				Inputs:  []string{"price"},
				Formula: "std(price)",
			}},
			wantErr: "not supported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.defs, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNew_RejectsBadAliases(t *testing.T) {
	defs := []domain.MetricDefinition{
		{Name: "revenue", Inputs: []string{"is.NetRevenue"}, Formula: "is.NetRevenue"},
	}

	_, err := New(defs, map[string]string{"sales": "turnover"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown metric")

	_, err = New(defs, map[string]string{"revenue": "revenue"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shadows")

	_, err = New(defs, map[string]string{"sales": "revenue", "turnover": "sales"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chains")
}

func TestDefinitions_Sorted(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	defs := c.Definitions()
	require.NotEmpty(t, defs)
	for i := 1; i < len(defs); i++ {
		assert.Less(t, defs[i-1].Name, defs[i].Name)
	}
}
