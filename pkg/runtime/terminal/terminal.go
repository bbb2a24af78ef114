package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/metric-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/metric-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/metric-atlas/pkg/services/catalog"
	"github.com/de-tools/metric-atlas/pkg/services/interpreter"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	deps        *commands.Deps
	profilePath string
	rootCmd     *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Catalog *catalog.Catalog
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		deps: &commands.Deps{
			Interpreter: interpreter.New(opts.Catalog),
			Reporter:    export.NewReporter(opts.Output),
			Profile:     &commands.Profile{},
		},
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metric-atlas",
		Short: "Financial metric lookup and calculation tool",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cli.profilePath == "" {
				return nil
			}
			profile, err := commands.LoadProfile(cli.profilePath)
			if err != nil {
				return err
			}
			*cli.deps.Profile = *profile
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cli.profilePath, "profile", "", "Path to a profile file with per-user defaults")

	cmd.AddCommand(commands.NewCalcCmd(cli.deps))
	cmd.AddCommand(commands.NewListCmd(cli.deps))
	cmd.AddCommand(commands.NewFindCmd(cli.deps))
	cmd.AddCommand(commands.NewInfoCmd(cli.deps))
	cmd.AddCommand(commands.NewDeriveCmd(cli.deps))
	cmd.AddCommand(commands.NewExportCmd(cli.deps))

	return cmd
}
