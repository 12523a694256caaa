package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gatelab/gatebench-cli/internal/compare"
	"github.com/gatelab/gatebench-cli/internal/utils"
)

var sumOutputPath string

var summaryCmd = &cobra.Command{
	Use:   "summary <dir>",
	Short: "Produce the per-algorithm statistical summary report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, err := collectRunSets(args[0])
		if err != nil {
			return err
		}
		out := compare.RenderSummary(sets, uuid.NewString())
		if sumOutputPath != "" {
			if err := utils.SafeWriteFile(sumOutputPath, []byte(out)); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote summary to %s\n", sumOutputPath)
			return nil
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringVarP(&sumOutputPath, "output", "o", "", "optional path to write the summary report")
}
