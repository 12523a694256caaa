package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/gatelab/gatebench-cli/internal/config"
	"github.com/gatelab/gatebench-cli/internal/theory"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "gatebench",
	Short: "gatebench: analyze sliding-puzzle solver benchmark reports",
	Long: `gatebench ingests the text reports emitted by the three puzzle solver
variants, computes per-algorithm statistics, evaluates theoretical
complexity models against observed behavior, and exports the numeric
series consumed by the chart tooling.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.gatebench/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in constants
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// activeConstants returns the configured model constants, or the defaults
// when no config could be loaded.
func activeConstants() theory.Constants {
	if cfg == nil {
		return theory.DefaultConstants()
	}
	return cfg.Constants()
}
