package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type ListCmd struct {
	category string
	deps     *Deps
}

func NewListCmd(deps *Deps) *cobra.Command {
	lc := &ListCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available metrics, optionally filtered by category",
		RunE:  lc.run,
	}

	cmd.Flags().StringVar(&lc.category, "category", "", "Category to filter by (e.g. \"Income Statement\")")

	return cmd
}

func (lc *ListCmd) run(cmd *cobra.Command, args []string) error {
	summaries := lc.deps.Interpreter.Summaries(lc.category)
	if len(summaries) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No metrics found for category: %s\n", lc.category)
		return nil
	}
	return lc.deps.Reporter.Summaries(summaries)
}
