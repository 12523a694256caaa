package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gatelab/gatebench-cli/internal/compare"
	"github.com/gatelab/gatebench-cli/internal/report"
	"github.com/gatelab/gatebench-cli/internal/theory"
	"github.com/gatelab/gatebench-cli/internal/utils"
)

// ErrNoInput marks an empty report collection. Per-file failures are
// recovered by skipping the file; an empty collection is the only fatal
// input condition.
var ErrNoInput = errors.New("no solver reports found")

// collectRunSets scans dir for algoN_*.txt reports, parses them, drops
// records with parse failures (with a diagnostic naming file and field),
// and returns the annotated run sets.
func collectRunSets(dir string) ([]compare.RunSet, error) {
	files, err := utils.ListReportFiles(dir)
	if err != nil {
		return nil, err
	}

	ev := theory.NewEvaluator(activeConstants())
	var records []*report.Record
	for _, path := range files {
		algo, puzzle, ok := report.FromFilename(path)
		if !ok {
			if debug {
				fmt.Fprintf(os.Stderr, "skipping %s: no algorithm prefix\n", filepath.Base(path))
			}
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "⚠ Warning: skipping %s: %v\n", filepath.Base(path), err)
			continue
		}
		rec, err := report.Parse(string(data), algo, puzzle)
		if err != nil {
			fmt.Fprintf(os.Stderr, "⚠ Warning: skipping %s: %v\n", filepath.Base(path), err)
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoInput, dir)
	}
	if debug {
		fmt.Fprintf(os.Stderr, "loaded %d puzzle results\n", len(records))
	}
	return compare.Group(compare.Annotate(records, ev)), nil
}

// exportSeries writes each series as a CSV file under dir, dropping
// non-positive points the downstream log-scale charts cannot represent.
func exportSeries(dir string, all []compare.Series) error {
	if err := utils.EnsureDir(dir); err != nil {
		return fmt.Errorf("create series dir: %w", err)
	}
	for _, s := range all {
		kept, dropped := compare.PositiveOnly(s)
		if dropped > 0 {
			fmt.Fprintf(os.Stderr, "⚠ Warning: %s: dropped %d non-positive point(s)\n", s.FileName(), dropped)
		}
		if len(kept.Points) == 0 {
			continue
		}
		b, err := kept.CSV()
		if err != nil {
			return fmt.Errorf("encode %s: %w", s.FileName(), err)
		}
		path := filepath.Join(dir, s.FileName())
		if err := utils.SafeWriteFile(path, b); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("✓ Wrote %s (%d points)\n", path, len(kept.Points))
	}
	return nil
}

// resolveSeriesDir prefers the flag, then the config, then a local
// default.
func resolveSeriesDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg != nil && cfg.SeriesDir != "" {
		return cfg.SeriesDir
	}
	return "series"
}
