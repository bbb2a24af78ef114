package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/de-tools/metric-atlas/pkg/models/domain"
	"github.com/de-tools/metric-atlas/pkg/services/dataset"
	"github.com/spf13/cobra"
)

type DeriveCmd struct {
	dataPath  string
	priorPath string
	deps      *Deps
}

func NewDeriveCmd(deps *Deps) *cobra.Command {
	dc := &DeriveCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Calculate every metric the dataset can support",
		RunE:  dc.run,
	}

	cmd.Flags().StringVar(&dc.dataPath, "data", "", "Path to the dataset file (.json, .yaml)")
	cmd.Flags().StringVar(&dc.priorPath, "prior", "", "Prior-period dataset, enables growth metrics")

	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func (dc *DeriveCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	data, err := dataset.Load(dc.deps.Profile.ResolvePath(dc.dataPath))
	if err != nil {
		return err
	}

	var derived domain.Dataset
	if dc.priorPath != "" {
		prior, err := dataset.Load(dc.deps.Profile.ResolvePath(dc.priorPath))
		if err != nil {
			return err
		}
		derived = dc.deps.Interpreter.DeriveWithPrior(ctx, data, prior)
	} else {
		derived = dc.deps.Interpreter.DeriveAll(ctx, data)
	}

	title := fmt.Sprintf("Derived metrics (%s)", strings.TrimSuffix(filepath.Base(dc.dataPath), filepath.Ext(dc.dataPath)))
	return dc.deps.Reporter.Values(title, derived)
}
