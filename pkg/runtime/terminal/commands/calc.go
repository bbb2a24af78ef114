package commands

import (
	"encoding/json"

	"github.com/de-tools/metric-atlas/pkg/adapters"
	"github.com/de-tools/metric-atlas/pkg/services/dataset"
	"github.com/spf13/cobra"
)

type CalcCmd struct {
	dataPath  string
	priorPath string
	asJSON    bool
	deps      *Deps
}

func NewCalcCmd(deps *Deps) *cobra.Command {
	cc := &CalcCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "calc <metric>",
		Short: "Calculate a metric from a dataset",
		Args:  cobra.ExactArgs(1),
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.dataPath, "data", "", "Path to the dataset file (.json, .yaml)")
	cmd.Flags().StringVar(&cc.priorPath, "prior", "", "Prior-period dataset for time-series metrics")
	cmd.Flags().BoolVar(&cc.asJSON, "json", false, "Emit the result as JSON")

	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func (cc *CalcCmd) run(cmd *cobra.Command, args []string) error {
	data, err := dataset.Load(cc.deps.Profile.ResolvePath(cc.dataPath))
	if err != nil {
		return err
	}

	if cc.priorPath != "" {
		prior, err := dataset.Load(cc.deps.Profile.ResolvePath(cc.priorPath))
		if err != nil {
			return err
		}
		// Keep the unsuffixed keys alongside the _t/_t-1 view so both plain
		// and time-series metrics resolve.
		for key, value := range dataset.MergePeriods(data, prior) {
			data[key] = value
		}
	}

	res := cc.deps.Interpreter.Calculate(cmd.Context(), args[0], data)

	if cc.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(adapters.MapCalculationResultDomainToApi(res))
	}
	return cc.deps.Reporter.Result(res)
}
