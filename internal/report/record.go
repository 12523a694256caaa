package report

import (
	"path/filepath"
	"strings"
)

// Algorithm identifies one of the three solver variants whose reports we
// analyze.
type Algorithm string

const (
	// AlgoNoDedup is the breadth-first variant without duplicate detection.
	AlgoNoDedup Algorithm = "algo1"
	// AlgoFullDedup tracks every visited state in a radix tree.
	AlgoFullDedup Algorithm = "algo2"
	// AlgoWidthLimited is the iterative-widening variant; it tracks visited
	// states only up to a novelty-width bound.
	AlgoWidthLimited Algorithm = "algo3"
)

// Algorithms lists all known variants in presentation order.
var Algorithms = []Algorithm{AlgoNoDedup, AlgoFullDedup, AlgoWidthLimited}

// DisplayName returns the human-readable name used in rendered reports.
func (a Algorithm) DisplayName() string {
	switch a {
	case AlgoNoDedup:
		return "Algorithm 1 (No Duplicate Detection)"
	case AlgoFullDedup:
		return "Algorithm 2 (Radix Tree)"
	case AlgoWidthLimited:
		return "Algorithm 3 (Iterative Widening)"
	}
	return string(a)
}

// TracksDuplicates reports whether the variant performs duplicate
// detection. Only these variants have a meaningful efficiency ratio and
// participate in the comparative join universe.
func (a Algorithm) TracksDuplicates() bool {
	return a == AlgoFullDedup || a == AlgoWidthLimited
}

// FromFilename derives the algorithm and puzzle name from a report file
// name following the "algoN_<puzzle>.txt" convention. The second return is
// the puzzle name; ok is false for files that do not follow the convention.
func FromFilename(path string) (algo Algorithm, puzzle string, ok bool) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	for _, a := range Algorithms {
		prefix := string(a) + "_"
		if strings.HasPrefix(stem, prefix) {
			return a, strings.TrimPrefix(stem, prefix), true
		}
	}
	return "", "", false
}

// Record is one fully parsed solver report. A Record is only constructed
// by Parse and is immutable afterwards; derived data (theoretical
// estimates) is attached externally, never written back.
type Record struct {
	PuzzleName string
	Algorithm  Algorithm

	// Required fields: present in every valid report.
	ExecutionTime   float64 // seconds
	ExpandedNodes   int64
	GeneratedNodes  int64
	DuplicatedNodes int64
	MemoryBytes     int64 // auxiliary memory usage
	NumPieces       int64
	SolutionSteps   int64
	EmptySpaces     int64

	// Optional fields: nil when the report omits the line.
	SolutionPath   *string
	SolvedByWidth  *int64
	NodesPerSecond *float64
}
