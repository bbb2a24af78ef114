package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/de-tools/metric-atlas/pkg/adapters"
	"github.com/de-tools/metric-atlas/pkg/models/domain"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Catalog export formats.
const (
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
)

// Reporter renders calculation results, catalog listings and exports to the
// console (or any writer).
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

const resultTmpl = `
{{.Metric}} = {{printf "%.4f" .Value}}
  Formula:     {{.Formula}}
  Description: {{.Description}}
  Inputs used:
{{- range .Inputs}}
    {{.Name}} = {{printf "%.4f" .Value}}
{{- end}}
`

const failureTmpl = `
{{.Metric}}: calculation failed ({{.ErrorKind}})
  {{.Error}}
{{- if .MissingInputs}}
  Missing inputs: {{join .MissingInputs ", "}}
{{- end}}
`

// Result renders a single calculation outcome, success or failure.
func (r *Reporter) Result(res domain.CalculationResult) error {
	if !res.Success {
		t, err := template.New("failure").
			Funcs(template.FuncMap{"join": strings.Join}).
			Parse(failureTmpl)
		if err != nil {
			return fmt.Errorf("failed to parse template: %w", err)
		}
		return t.Execute(r.writer, res)
	}

	type binding struct {
		Name  string
		Value float64
	}
	view := struct {
		Metric      string
		Value       float64
		Formula     string
		Description string
		Inputs      []binding
	}{
		Metric:      res.Metric,
		Value:       res.Value,
		Formula:     res.Formula,
		Description: res.Description,
	}
	for name, value := range res.InputsUsed {
		view.Inputs = append(view.Inputs, binding{Name: name, Value: value})
	}
	sort.Slice(view.Inputs, func(a, b int) bool { return view.Inputs[a].Name < view.Inputs[b].Name })

	t, err := template.New("result").Parse(resultTmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(r.writer, view)
}

// Summaries renders a catalog listing as a terminal table.
func (r *Reporter) Summaries(summaries []domain.MetricSummary) error {
	t := table.NewWriter()
	t.SetOutputMirror(r.writer)
	t.AppendHeader(table.Row{"Metric", "Category", "Description", "Formula"})
	for _, s := range summaries {
		t.AppendRow(table.Row{s.Name, s.Category, s.Description, s.Formula})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

// Values renders a derived dataset, metric values sorted by name.
func (r *Reporter) Values(title string, values domain.Dataset) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	t := table.NewWriter()
	t.SetOutputMirror(r.writer)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Name", "Value"})
	for _, name := range names {
		t.AppendRow(table.Row{name, fmt.Sprintf("%.4f", values[name])})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

const requirementsTmpl = `
Requirements for {{.Metric}}
  Description:   {{.Description}}
  Formula:       {{.Formula}}
  Direct inputs: {{join .DirectInputs ", "}}
{{- if .IncomeStatement}}
  Income statement: {{join .IncomeStatement ", "}}
{{- end}}
{{- if .BalanceSheet}}
  Balance sheet:    {{join .BalanceSheet ", "}}
{{- end}}
{{- if .CashFlow}}
  Cash flow:        {{join .CashFlow ", "}}
{{- end}}
{{- if .Derived}}
  Derived:          {{join .Derived ", "}}
{{- end}}
`

// Requirements renders a metric's transitive input closure.
func (r *Reporter) Requirements(req domain.Requirements) error {
	t, err := template.New("requirements").
		Funcs(template.FuncMap{"join": strings.Join}).
		Parse(requirementsTmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(r.writer, req)
}

// Catalog serializes metric summaries in the requested format.
func (r *Reporter) Catalog(format string, summaries []domain.MetricSummary) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		return r.catalogJSON(summaries)
	case FormatYAML:
		return r.catalogYAML(summaries)
	case FormatCSV:
		return r.catalogCSV(summaries)
	case FormatMarkdown:
		return r.catalogMarkdown(summaries)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func (r *Reporter) catalogJSON(summaries []domain.MetricSummary) error {
	out := make([]any, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, adapters.MapMetricSummaryDomainToApi(s))
	}
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func (r *Reporter) catalogYAML(summaries []domain.MetricSummary) error {
	out := make([]any, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, adapters.MapMetricSummaryDomainToApi(s))
	}
	enc := yaml.NewEncoder(r.writer)
	defer enc.Close()
	return enc.Encode(out)
}

func (r *Reporter) catalogCSV(summaries []domain.MetricSummary) error {
	t := table.NewWriter()
	t.SetOutputMirror(r.writer)
	t.AppendHeader(table.Row{"name", "category", "description", "formula", "is_ratio", "inputs"})
	for _, s := range summaries {
		t.AppendRow(table.Row{s.Name, s.Category, s.Description, s.Formula, s.IsRatio, strings.Join(s.Inputs, "; ")})
	}
	t.RenderCSV()
	return nil
}

// catalogMarkdown writes a metric dictionary grouped by category.
func (r *Reporter) catalogMarkdown(summaries []domain.MetricSummary) error {
	if _, err := fmt.Fprintf(r.writer, "# Financial Metrics Dictionary\n"); err != nil {
		return err
	}

	var categories []string
	grouped := make(map[string][]domain.MetricSummary)
	for _, s := range summaries {
		if _, seen := grouped[s.Category]; !seen {
			categories = append(categories, s.Category)
		}
		grouped[s.Category] = append(grouped[s.Category], s)
	}
	sort.Strings(categories)

	for _, category := range categories {
		if _, err := fmt.Fprintf(r.writer, "\n## %s\n\n", category); err != nil {
			return err
		}
		t := table.NewWriter()
		t.SetOutputMirror(r.writer)
		t.AppendHeader(table.Row{"Metric", "Description", "Formula", "Inputs"})
		for _, s := range grouped[category] {
			t.AppendRow(table.Row{s.Name, s.Description, s.Formula, strings.Join(s.Inputs, ", ")})
		}
		t.RenderMarkdown()
	}
	return nil
}
