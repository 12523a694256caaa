package config_test

import (
	"path/filepath"
	"testing"

	"github.com/gatelab/gatebench-cli/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	// Point at a non-existent file path inside a temp dir: viper treats a
	// missing optional config as defaults-only.
	c, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.DepthCap != 1e10 || c.StateSpaceCap != 1e15 || c.DepthLimit != 10 {
		t.Fatalf("default caps wrong: %+v", c)
	}
	if c.FullDedupFactor != 2 || c.WidthFactor != 1.5 || c.BytesPerNode != 32 {
		t.Fatalf("default factors wrong: %+v", c)
	}
	k := c.Constants()
	if k.DepthCap != c.DepthCap || k.BytesPerNode != c.BytesPerNode {
		t.Fatalf("constants mapping wrong: %+v", k)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &config.Global{
		DepthCap:         1e8,
		StateSpaceCap:    1e12,
		DepthLimit:       6,
		FullDedupFactor:  3,
		WidthFactor:      1.25,
		BytesPerNode:     64,
		BranchDirections: 4,
		SeriesDir:        "out/series",
	}
	if err := config.Save(in, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.DepthCap != 1e8 || out.DepthLimit != 6 || out.WidthFactor != 1.25 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if out.SeriesDir != "out/series" {
		t.Fatalf("series dir: %q", out.SeriesDir)
	}
}
