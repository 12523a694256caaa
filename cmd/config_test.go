package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	cfgpkg "github.com/gatelab/gatebench-cli/internal/config"
)

// runConfigSet drives the set subcommand against an isolated config file.
func runConfigSet(t *testing.T, path, key, val string) error {
	t.Helper()
	prevCfg, prevFile := cfg, cfgFile
	t.Cleanup(func() { cfg, cfgFile = prevCfg, prevFile })
	cfg = nil
	cfgFile = path
	return configSetCmd.RunE(configSetCmd, []string{key, val})
}

func TestConfigSetPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := runConfigSet(t, path, "depth_cap", "1e8"); err != nil {
		t.Fatalf("set depth_cap: %v", err)
	}
	if err := runConfigSet(t, path, "bytes_per_node", "64"); err != nil {
		t.Fatalf("set bytes_per_node: %v", err)
	}
	if err := runConfigSet(t, path, "series_dir", "out/series"); err != nil {
		t.Fatalf("set series_dir: %v", err)
	}

	loaded, err := cfgpkg.Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.DepthCap != 1e8 {
		t.Fatalf("depth_cap not persisted: %v", loaded.DepthCap)
	}
	if loaded.BytesPerNode != 64 {
		t.Fatalf("bytes_per_node not persisted: %v", loaded.BytesPerNode)
	}
	if loaded.SeriesDir != "out/series" {
		t.Fatalf("series_dir not persisted: %q", loaded.SeriesDir)
	}
	// Untouched keys keep their defaults.
	if loaded.WidthFactor != 1.5 {
		t.Fatalf("width_factor default lost: %v", loaded.WidthFactor)
	}
}

func TestConfigSetRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cases := []struct{ key, val string }{
		{"depth_cap", "-1"},
		{"depth_limit", "0"},
		{"depth_limit", "2.5"},
		{"width_factor", "fast"},
		{"series_dir", ""},
		{"no_such_key", "1"},
	}
	for _, c := range cases {
		if err := runConfigSet(t, path, c.key, c.val); err == nil {
			t.Fatalf("set %s=%q: expected error", c.key, c.val)
		}
	}
	if err := runConfigSet(t, path, "unknown", "x"); err == nil || !strings.Contains(err.Error(), "unknown key") {
		t.Fatalf("expected unknown-key error, got %v", err)
	}
}
