package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gatelab/gatebench-cli/internal/report"
)

func writeReport(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

const validReport = `Solution path: R1 D2
Execution time: 0.5
Expanded nodes: 100
Generated nodes: 400
Duplicated nodes: 50
Auxiliary memory usage (bytes): 3200
Number of pieces in the puzzle: 3
Number of steps in solution: 8
Number of empty spaces: 4
`

func TestCollectRunSets(t *testing.T) {
	dir := t.TempDir()
	writeReport(t, dir, "algo1_gate_a.txt", validReport)
	writeReport(t, dir, "algo2_gate_a.txt", validReport)
	writeReport(t, dir, "algo2_gate_b.txt", validReport)
	writeReport(t, dir, "algo3_gate_a.txt", validReport+"Solved by IW(2)\n")
	// Broken report: missing generated nodes. Dropped, not fatal.
	writeReport(t, dir, "algo3_gate_b.txt", "Execution time: 0.5\nExpanded nodes: 1\n")
	// Not a solver report at all.
	writeReport(t, dir, "notes.txt", "unrelated")

	sets, err := collectRunSets(dir)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(sets) != 3 {
		t.Fatalf("expected 3 run sets, got %d", len(sets))
	}
	counts := map[report.Algorithm]int{}
	for _, rs := range sets {
		counts[rs.Algorithm] = len(rs.Records)
	}
	if counts[report.AlgoNoDedup] != 1 || counts[report.AlgoFullDedup] != 2 || counts[report.AlgoWidthLimited] != 1 {
		t.Fatalf("record counts: %v", counts)
	}
}

func TestCollectRunSetsEmptyDirIsFatal(t *testing.T) {
	dir := t.TempDir()
	_, err := collectRunSets(dir)
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}

	// A directory holding only unparsable files is just as empty.
	writeReport(t, dir, "algo1_gate_a.txt", "garbage\n")
	_, err = collectRunSets(dir)
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput for all-invalid input, got %v", err)
	}
}
