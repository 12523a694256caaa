// Package compare groups parsed solver records by algorithm, joins them
// across variants by puzzle identity, and renders the comparative summary
// blocks consumed by the reporting layer.
package compare

import (
	"sort"

	"github.com/gatelab/gatebench-cli/internal/report"
	"github.com/gatelab/gatebench-cli/internal/theory"
)

// Annotated pairs an immutable record with its computed theoretical
// estimates. The record itself is never written back.
type Annotated struct {
	*report.Record
	Estimates map[string]float64
}

// Annotate computes estimate maps for all records.
func Annotate(recs []*report.Record, ev *theory.Evaluator) []Annotated {
	out := make([]Annotated, 0, len(recs))
	for _, r := range recs {
		out = append(out, Annotated{Record: r, Estimates: ev.Estimate(r)})
	}
	return out
}

// RunSet is the set of valid records sharing one algorithm.
type RunSet struct {
	Algorithm report.Algorithm
	Records   []Annotated
}

// Group buckets records per algorithm. Output ordering is deterministic:
// sets sorted by algorithm name, records sorted by puzzle name, so reports
// are reproducible regardless of input file order.
func Group(recs []Annotated) []RunSet {
	byAlgo := make(map[report.Algorithm][]Annotated)
	for _, r := range recs {
		byAlgo[r.Algorithm] = append(byAlgo[r.Algorithm], r)
	}
	sets := make([]RunSet, 0, len(byAlgo))
	for algo, rs := range byAlgo {
		sort.Slice(rs, func(i, j int) bool { return rs[i].PuzzleName < rs[j].PuzzleName })
		sets = append(sets, RunSet{Algorithm: algo, Records: rs})
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].Algorithm < sets[j].Algorithm })
	return sets
}

// Sample extracts the metric's numeric sample, skipping records where an
// optional metric is absent.
func (rs RunSet) Sample(m Metric) []float64 {
	vals := make([]float64, 0, len(rs.Records))
	for _, r := range rs.Records {
		if v, ok := m.Extract(r); ok {
			vals = append(vals, v)
		}
	}
	return vals
}

// WidthCount is one bucket of the solved-by-width distribution.
type WidthCount struct {
	Width   int64
	Count   int
	Percent float64 // over the algorithm's total valid record count
}

// WidthDistribution counts records per observed solved-by width, sorted by
// width.
func (rs RunSet) WidthDistribution() []WidthCount {
	counts := make(map[int64]int)
	for _, r := range rs.Records {
		if r.SolvedByWidth != nil {
			counts[*r.SolvedByWidth]++
		}
	}
	out := make([]WidthCount, 0, len(counts))
	for w, c := range counts {
		pct := 0.0
		if len(rs.Records) > 0 {
			pct = float64(c) / float64(len(rs.Records)) * 100
		}
		out = append(out, WidthCount{Width: w, Count: c, Percent: pct})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Width < out[j].Width })
	return out
}

// Metric describes one tracked numeric field of a record.
type Metric struct {
	Key     string
	Label   string
	Extract func(Annotated) (float64, bool)

	style     metricStyle
	showTotal bool
}

type metricStyle int

const (
	styleSeconds metricStyle = iota // fixed six decimals, no grouping
	styleCount                      // grouped integers, grouped decimals for mean/stdev
	stylePlain                      // small integers, no grouping
	styleRate                       // grouped two-decimal floats
)

// TrackedMetrics are the fields summarized per algorithm, in presentation
// order.
var TrackedMetrics = []Metric{
	{
		Key: "execution_time", Label: "EXECUTION TIME (seconds)", style: styleSeconds, showTotal: true,
		Extract: func(r Annotated) (float64, bool) { return r.ExecutionTime, true },
	},
	{
		Key: "expanded_nodes", Label: "EXPANDED NODES", style: styleCount, showTotal: true,
		Extract: func(r Annotated) (float64, bool) { return float64(r.ExpandedNodes), true },
	},
	{
		Key: "generated_nodes", Label: "GENERATED NODES", style: styleCount, showTotal: true,
		Extract: func(r Annotated) (float64, bool) { return float64(r.GeneratedNodes), true },
	},
	{
		Key: "duplicated_nodes", Label: "DUPLICATED NODES", style: styleCount, showTotal: true,
		Extract: func(r Annotated) (float64, bool) { return float64(r.DuplicatedNodes), true },
	},
	{
		Key: "memory_usage", Label: "AUXILIARY MEMORY USAGE (bytes)", style: styleCount, showTotal: true,
		Extract: func(r Annotated) (float64, bool) { return float64(r.MemoryBytes), true },
	},
	{
		Key: "solution_steps", Label: "SOLUTION STEPS", style: stylePlain,
		Extract: func(r Annotated) (float64, bool) { return float64(r.SolutionSteps), true },
	},
	{
		Key: "nodes_per_second", Label: "NODES EXPANDED PER SECOND", style: styleRate,
		Extract: func(r Annotated) (float64, bool) {
			if r.NodesPerSecond == nil {
				return 0, false
			}
			return *r.NodesPerSecond, true
		},
	},
}

// metricByKey returns the tracked metric with the given key.
func metricByKey(key string) (Metric, bool) {
	for _, m := range TrackedMetrics {
		if m.Key == key {
			return m, true
		}
	}
	return Metric{}, false
}
