package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type FindCmd struct {
	deps *Deps
}

func NewFindCmd(deps *Deps) *cobra.Command {
	fc := &FindCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "find <keyword>",
		Short: "Search metrics by keyword over names, descriptions and inputs",
		Args:  cobra.ExactArgs(1),
		RunE:  fc.run,
	}

	return cmd
}

func (fc *FindCmd) run(cmd *cobra.Command, args []string) error {
	matches := fc.deps.Interpreter.Find(args[0])
	fmt.Fprintf(cmd.OutOrStdout(), "Found %d metrics matching %q:\n", len(matches), args[0])
	if len(matches) == 0 {
		return nil
	}
	return fc.deps.Reporter.Summaries(matches)
}
