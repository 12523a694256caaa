package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/gatelab/gatebench-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set gatebench configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("depth_cap: %g\n", cfg.DepthCap)
		fmt.Printf("state_space_cap: %g\n", cfg.StateSpaceCap)
		fmt.Printf("depth_limit: %d\n", cfg.DepthLimit)
		fmt.Printf("full_dedup_factor: %g\n", cfg.FullDedupFactor)
		fmt.Printf("width_factor: %g\n", cfg.WidthFactor)
		fmt.Printf("bytes_per_node: %g\n", cfg.BytesPerNode)
		fmt.Printf("branch_directions: %d\n", cfg.BranchDirections)
		fmt.Printf("series_dir: %s\n", cfg.SeriesDir)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "depth_cap":
			f, err := parsePositiveFloat(val)
			if err != nil {
				return fmt.Errorf("invalid value for depth_cap: %w", err)
			}
			cfg.DepthCap = f
		case "state_space_cap":
			f, err := parsePositiveFloat(val)
			if err != nil {
				return fmt.Errorf("invalid value for state_space_cap: %w", err)
			}
			cfg.StateSpaceCap = f
		case "depth_limit":
			i, err := parsePositiveInt(val)
			if err != nil {
				return fmt.Errorf("invalid value for depth_limit: %w", err)
			}
			cfg.DepthLimit = i
		case "full_dedup_factor":
			f, err := parsePositiveFloat(val)
			if err != nil {
				return fmt.Errorf("invalid value for full_dedup_factor: %w", err)
			}
			cfg.FullDedupFactor = f
		case "width_factor":
			f, err := parsePositiveFloat(val)
			if err != nil {
				return fmt.Errorf("invalid value for width_factor: %w", err)
			}
			cfg.WidthFactor = f
		case "bytes_per_node":
			f, err := parsePositiveFloat(val)
			if err != nil {
				return fmt.Errorf("invalid value for bytes_per_node: %w", err)
			}
			cfg.BytesPerNode = f
		case "branch_directions":
			i, err := parsePositiveInt(val)
			if err != nil {
				return fmt.Errorf("invalid value for branch_directions: %w", err)
			}
			cfg.BranchDirections = i
		case "series_dir":
			if val == "" {
				return fmt.Errorf("series_dir must not be empty")
			}
			cfg.SeriesDir = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func parsePositiveFloat(val string) (float64, error) {
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, err
	}
	if f <= 0 {
		return 0, fmt.Errorf("must be positive, got %v", f)
	}
	return f, nil
}

func parsePositiveInt(val string) (int64, error) {
	i, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, err
	}
	if i <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", i)
	}
	return i, nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
