package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/gatelab/gatebench-cli/internal/theory"
)

// Global configuration structure. The model constants are empirical; the
// config exists so they can be overridden without rebuilding.
type Global struct {
	// Theoretical model constants
	DepthCap         float64 `mapstructure:"depth_cap" yaml:"depth_cap"`
	StateSpaceCap    float64 `mapstructure:"state_space_cap" yaml:"state_space_cap"`
	DepthLimit       int64   `mapstructure:"depth_limit" yaml:"depth_limit"`
	FullDedupFactor  float64 `mapstructure:"full_dedup_factor" yaml:"full_dedup_factor"`
	WidthFactor      float64 `mapstructure:"width_factor" yaml:"width_factor"`
	BytesPerNode     float64 `mapstructure:"bytes_per_node" yaml:"bytes_per_node"`
	BranchDirections int64   `mapstructure:"branch_directions" yaml:"branch_directions"`

	// Output
	SeriesDir string `mapstructure:"series_dir" yaml:"series_dir"`
}

// Constants maps the configuration onto the evaluator's constants.
func (g *Global) Constants() theory.Constants {
	return theory.Constants{
		DepthCap:         g.DepthCap,
		StateSpaceCap:    g.StateSpaceCap,
		DepthLimit:       g.DepthLimit,
		FullDedupFactor:  g.FullDedupFactor,
		WidthFactor:      g.WidthFactor,
		BytesPerNode:     g.BytesPerNode,
		BranchDirections: g.BranchDirections,
	}
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.gatebench/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".gatebench")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("GATEBENCH")
	v.AutomaticEnv()

	def := theory.DefaultConstants()
	v.SetDefault("depth_cap", def.DepthCap)
	v.SetDefault("state_space_cap", def.StateSpaceCap)
	v.SetDefault("depth_limit", def.DepthLimit)
	v.SetDefault("full_dedup_factor", def.FullDedupFactor)
	v.SetDefault("width_factor", def.WidthFactor)
	v.SetDefault("bytes_per_node", def.BytesPerNode)
	v.SetDefault("branch_directions", def.BranchDirections)
	v.SetDefault("series_dir", "series")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".gatebench")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
