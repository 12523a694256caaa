package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gatelab/gatebench-cli/internal/compare"
)

var spaceSeriesDir string

var spaceCmd = &cobra.Command{
	Use:   "space <dir>",
	Short: "Analyze space complexity against the theoretical space models",
	Long: `Compares each variant's actual space usage (expanded nodes plus a
node-equivalent of auxiliary memory) with its theoretical space model,
and exports the joined theoretical-vs-actual series for charting.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, err := collectRunSets(args[0])
		if err != nil {
			return err
		}
		c := activeConstants()
		fmt.Println(compare.RenderSpaceSummary(sets, c.BytesPerNode))

		series := compare.JoinedSpaceSeries(sets, c.BytesPerNode)
		return exportSeries(resolveSeriesDir(spaceSeriesDir), series)
	},
}

func init() {
	rootCmd.AddCommand(spaceCmd)
	spaceCmd.Flags().StringVar(&spaceSeriesDir, "series-dir", "", "directory for exported series CSVs (default from config)")
}
