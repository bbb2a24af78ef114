package commands

import (
	"fmt"
	"os"

	"github.com/de-tools/metric-atlas/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

type ExportCmd struct {
	format     string
	outputFile string
	deps       *Deps
}

func NewExportCmd(deps *Deps) *cobra.Command {
	ec := &ExportCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the metric catalog (json, yaml, csv, markdown)",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.format, "format", "", "Output format (default json, or the profile's format)")
	cmd.Flags().StringVar(&ec.outputFile, "output", "", "Write to a file instead of stdout")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, args []string) error {
	format := ec.format
	if format == "" && ec.deps.Profile != nil {
		format = ec.deps.Profile.Format
	}
	if format == "" {
		format = export.FormatJSON
	}

	reporter := ec.deps.Reporter
	if ec.outputFile != "" {
		f, err := os.Create(ec.outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		reporter = export.NewReporter(f)
	}

	return reporter.Catalog(format, ec.deps.Interpreter.Summaries(""))
}
