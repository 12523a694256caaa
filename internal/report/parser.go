package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseFailure reports a required field that was missing or undecodable.
// The whole record is rejected; no partial record is ever returned.
type ParseFailure struct {
	Field  string
	Reason string
}

func (e *ParseFailure) Error() string {
	return fmt.Sprintf("required field %q: %s", e.Field, e.Reason)
}

type fieldKind int

const (
	kindInt fieldKind = iota
	kindFloat
	kindText
)

// fieldSpec declares one labeled line of the report grammar. Each field is
// located independently by its label; unknown lines are ignored.
type fieldSpec struct {
	name     string
	label    string
	closer   string // optional trailing delimiter, e.g. ")" for the width marker
	kind     fieldKind
	required bool
	assign   func(*Record, string, float64, int64)
}

var grammar = []fieldSpec{
	{
		name: "execution_time", label: "Execution time:", kind: kindFloat, required: true,
		assign: func(r *Record, _ string, f float64, _ int64) { r.ExecutionTime = f },
	},
	{
		name: "expanded_nodes", label: "Expanded nodes:", kind: kindInt, required: true,
		assign: func(r *Record, _ string, _ float64, n int64) { r.ExpandedNodes = n },
	},
	{
		name: "generated_nodes", label: "Generated nodes:", kind: kindInt, required: true,
		assign: func(r *Record, _ string, _ float64, n int64) { r.GeneratedNodes = n },
	},
	{
		name: "duplicated_nodes", label: "Duplicated nodes:", kind: kindInt, required: true,
		assign: func(r *Record, _ string, _ float64, n int64) { r.DuplicatedNodes = n },
	},
	{
		name: "memory_usage", label: "Auxiliary memory usage (bytes):", kind: kindInt, required: true,
		assign: func(r *Record, _ string, _ float64, n int64) { r.MemoryBytes = n },
	},
	{
		name: "num_pieces", label: "Number of pieces in the puzzle:", kind: kindInt, required: true,
		assign: func(r *Record, _ string, _ float64, n int64) { r.NumPieces = n },
	},
	{
		name: "solution_steps", label: "Number of steps in solution:", kind: kindInt, required: true,
		assign: func(r *Record, _ string, _ float64, n int64) { r.SolutionSteps = n },
	},
	{
		name: "empty_spaces", label: "Number of empty spaces:", kind: kindInt, required: true,
		assign: func(r *Record, _ string, _ float64, n int64) { r.EmptySpaces = n },
	},
	{
		name: "solution_path", label: "Solution path:", kind: kindText,
		assign: func(r *Record, s string, _ float64, _ int64) { r.SolutionPath = &s },
	},
	{
		name: "solved_by_width", label: "Solved by IW(", closer: ")", kind: kindInt,
		assign: func(r *Record, _ string, _ float64, n int64) { r.SolvedByWidth = &n },
	},
	{
		name: "nodes_per_second", label: "Number of nodes expanded per second:", kind: kindFloat,
		assign: func(r *Record, _ string, f float64, _ int64) { r.NodesPerSecond = &f },
	},
}

// Parse converts the full text of one solver report into a Record. It is a
// pure function: no I/O, no shared state. A required field that cannot be
// located, or whose value fails to decode, rejects the whole record with a
// *ParseFailure. Optional fields that are absent stay nil.
func Parse(text string, algo Algorithm, puzzleName string) (*Record, error) {
	lines := strings.Split(text, "\n")
	rec := &Record{PuzzleName: puzzleName, Algorithm: algo}

	for _, spec := range grammar {
		raw, found := locate(lines, spec)
		if !found {
			if spec.required {
				return nil, &ParseFailure{Field: spec.name, Reason: "label not found"}
			}
			continue
		}
		var (
			f float64
			n int64
		)
		switch spec.kind {
		case kindInt:
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				if spec.required {
					return nil, &ParseFailure{Field: spec.name, Reason: fmt.Sprintf("invalid integer %q", raw)}
				}
				continue
			}
			if v < 0 {
				if spec.required {
					return nil, &ParseFailure{Field: spec.name, Reason: fmt.Sprintf("negative value %d", v)}
				}
				continue
			}
			n = v
		case kindFloat:
			// ParseFloat accepts "NaN" and "Inf"; those are not values a
			// solver can report, so they reject the record like any other
			// malformed number.
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				if spec.required {
					return nil, &ParseFailure{Field: spec.name, Reason: fmt.Sprintf("invalid number %q", raw)}
				}
				continue
			}
			f = v
		case kindText:
			if raw == "" {
				continue
			}
		}
		spec.assign(rec, raw, f, n)
	}
	return rec, nil
}

// locate finds the first line carrying the field's label and returns the
// trimmed value portion, which may be empty; deciding whether an empty
// value is acceptable is the decoder's job, so a bare label reads as a
// decode failure rather than a missing label.
func locate(lines []string, spec fieldSpec) (string, bool) {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, spec.label) {
			continue
		}
		raw := line[len(spec.label):]
		if spec.closer != "" {
			idx := strings.Index(raw, spec.closer)
			if idx < 0 {
				continue
			}
			raw = raw[:idx]
		}
		return strings.TrimSpace(raw), true
	}
	return "", false
}
