package commands

import (
	"encoding/json"
	"fmt"

	"github.com/de-tools/metric-atlas/pkg/adapters"
	"github.com/spf13/cobra"
)

type InfoCmd struct {
	asJSON bool
	deps   *Deps
}

func NewInfoCmd(deps *Deps) *cobra.Command {
	ic := &InfoCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "info <metric>",
		Short: "Show what data a metric requires, including transitive inputs",
		Args:  cobra.ExactArgs(1),
		RunE:  ic.run,
	}

	cmd.Flags().BoolVar(&ic.asJSON, "json", false, "Emit the requirements as JSON")

	return cmd
}

func (ic *InfoCmd) run(cmd *cobra.Command, args []string) error {
	req, ok := ic.deps.Interpreter.Requirements(args[0])
	if !ok {
		return fmt.Errorf("unknown metric %q", args[0])
	}

	if ic.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(adapters.MapRequirementsDomainToApi(req))
	}
	return ic.deps.Reporter.Requirements(req)
}
