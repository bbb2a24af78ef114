package terminal

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/metric-atlas/pkg/models/api"
	"github.com/de-tools/metric-atlas/pkg/services/catalog"
)

func newTestCLI(t *testing.T) (*CLI, *bytes.Buffer) {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)

	var buf bytes.Buffer
	return NewCLI(Options{Catalog: cat, Output: &buf}), &buf
}

func writeDataset(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(t *testing.T, cli *CLI, args ...string) error {
	t.Helper()
	cli.rootCmd.SetArgs(args)
	return cli.Execute(context.Background())
}

func TestCalcCommand(t *testing.T) {
	cli, buf := newTestCLI(t)
	data := writeDataset(t, "fy2023.json", `{"revenue": 100, "cogs": 40}`)

	require.NoError(t, runCLI(t, cli, "calc", "gross_profit", "--data", data))
	assert.Contains(t, buf.String(), "gross_profit = 60.0000")
}

func TestCalcCommand_JSON(t *testing.T) {
	cli, buf := newTestCLI(t)
	data := writeDataset(t, "fy2023.json", `{"net_income": 20, "revenue": 100}`)

	require.NoError(t, runCLI(t, cli, "calc", "net_margin_pct", "--data", data, "--json"))

	var res api.CalculationResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.True(t, res.Success)
	require.NotNil(t, res.Value)
	assert.InDelta(t, 20.0, *res.Value, 1e-9)
}

func TestCalcCommand_MissingInput(t *testing.T) {
	cli, buf := newTestCLI(t)
	data := writeDataset(t, "fy2023.json", `{"revenue": 100}`)

	require.NoError(t, runCLI(t, cli, "calc", "gross_profit", "--data", data))
	assert.Contains(t, buf.String(), "calculation failed (missing_inputs)")
	assert.Contains(t, buf.String(), "cogs")
}

func TestCalcCommand_WithPrior(t *testing.T) {
	cli, buf := newTestCLI(t)
	current := writeDataset(t, "fy2023.json", `{"revenue": 110}`)
	prior := writeDataset(t, "fy2022.json", `{"revenue": 100}`)

	require.NoError(t, runCLI(t, cli, "calc", "revenue_growth_pct", "--data", current, "--prior", prior))
	assert.Contains(t, buf.String(), "revenue_growth_pct = 10.0000")
}

func TestListCommand(t *testing.T) {
	cli, buf := newTestCLI(t)

	require.NoError(t, runCLI(t, cli, "list", "--category", "Cash Flow"))
	assert.Contains(t, buf.String(), "free_cash_flow")
	assert.NotContains(t, buf.String(), "gross_margin_pct")
}

func TestFindCommand(t *testing.T) {
	cli, buf := newTestCLI(t)

	require.NoError(t, runCLI(t, cli, "find", "margin"))
	assert.Contains(t, buf.String(), "gross_margin_pct")
}

func TestInfoCommand(t *testing.T) {
	cli, buf := newTestCLI(t)

	require.NoError(t, runCLI(t, cli, "info", "fcf"))
	assert.Contains(t, buf.String(), "Requirements for free_cash_flow")

	err := runCLI(t, cli, "info", "unknown_metric_xyz")
	require.Error(t, err)
}

func TestDeriveCommand(t *testing.T) {
	cli, buf := newTestCLI(t)
	data := writeDataset(t, "fy2023.yaml", "is.NetRevenue: 100\nis.CostOfRevenue: 40\n")

	require.NoError(t, runCLI(t, cli, "derive", "--data", data))
	assert.Contains(t, buf.String(), "gross_profit")
	assert.Contains(t, buf.String(), "60.0000")
}

func TestExportCommand_ToFile(t *testing.T) {
	cli, _ := newTestCLI(t)
	out := filepath.Join(t.TempDir(), "catalog.json")

	require.NoError(t, runCLI(t, cli, "export", "--format", "json", "--output", out))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	var decoded []api.MetricSummary
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotEmpty(t, decoded)
}

func TestProfileFlag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fy2023.json"), []byte(`{"revenue": 100, "cogs": 40}`), 0o644))

	profile := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(profile, []byte("dataset_dir: "+dir+"\n"), 0o644))

	cli, buf := newTestCLI(t)
	require.NoError(t, runCLI(t, cli, "--profile", profile, "calc", "gross_profit", "--data", "fy2023.json"))
	assert.Contains(t, buf.String(), "gross_profit = 60.0000")
}
