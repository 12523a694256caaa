package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gatelab/gatebench-cli/internal/compare"
	"github.com/gatelab/gatebench-cli/internal/theory"
)

var (
	cplxSeriesDir string
	cplxModels    []string
)

var complexityCmd = &cobra.Command{
	Use:   "complexity <dir>",
	Short: "Evaluate theoretical complexity models against generated nodes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, err := collectRunSets(args[0])
		if err != nil {
			return err
		}
		fmt.Println(compare.RenderPerfSummary(sets))

		models := cplxModels
		if len(models) == 0 {
			models = []string{theory.ModelIWComplexity, theory.ModelCombined, theory.ModelExponentialWidth}
		}
		known := make(map[string]bool, len(theory.AuxModels))
		for _, m := range theory.AuxModels {
			known[m] = true
		}
		var series []compare.Series
		for _, model := range models {
			if !known[model] {
				return fmt.Errorf("unknown model %q (available: %v)", model, theory.AuxModels)
			}
			series = append(series, compare.ModelSeries(sets, model)...)
		}
		return exportSeries(resolveSeriesDir(cplxSeriesDir), series)
	},
}

func init() {
	rootCmd.AddCommand(complexityCmd)
	complexityCmd.Flags().StringVar(&cplxSeriesDir, "series-dir", "", "directory for exported series CSVs (default from config)")
	complexityCmd.Flags().StringSliceVar(&cplxModels, "models", nil, "theoretical models to export (default: iw_complexity,combined,exponential_width)")
}
