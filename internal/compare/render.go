package compare

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/gatelab/gatebench-cli/internal/stats"
	"github.com/gatelab/gatebench-cli/internal/theory"
)

const rule = "================================================================================"

// ComparisonMetrics is the fixed metric subset of the cross-algorithm
// comparison block.
var ComparisonMetrics = []string{"execution_time", "expanded_nodes", "memory_usage"}

// RenderSummary produces the full statistical summary report: one block
// per algorithm with per-metric statistics and the solved-by-width
// distribution, followed by the cross-algorithm comparison.
func RenderSummary(sets []RunSet, runID string) string {
	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("STATISTICAL SUMMARY OF PUZZLE SOLVER RESULTS\n")
	if runID != "" {
		fmt.Fprintf(&b, "Run ID: %s\n", runID)
	}
	b.WriteString(rule + "\n")

	for _, rs := range sets {
		b.WriteString("\n" + rule + "\n")
		b.WriteString(rs.Algorithm.DisplayName() + "\n")
		b.WriteString(rule + "\n")
		fmt.Fprintf(&b, "Total test cases: %d\n\n", len(rs.Records))

		for _, m := range TrackedMetrics {
			b.WriteString(m.Label + ":\n")
			writeStatBlock(&b, m, rs.Sample(m))
			b.WriteString("\n")
		}

		b.WriteString("SOLVED BY IW WIDTH:\n")
		for _, wc := range rs.WidthDistribution() {
			fmt.Fprintf(&b, "  IW(%d): %d puzzles (%.1f%%)\n", wc.Width, wc.Count, wc.Percent)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + rule + "\n")
	b.WriteString("CROSS-ALGORITHM COMPARISON\n")
	b.WriteString(rule + "\n\n")
	for _, key := range ComparisonMetrics {
		m, ok := metricByKey(key)
		if !ok {
			continue
		}
		b.WriteString(strings.ToUpper(strings.ReplaceAll(key, "_", " ")) + ":\n")
		for _, rs := range sets {
			mean, ok := stats.Mean(rs.Sample(m))
			if !ok {
				continue
			}
			switch key {
			case "execution_time":
				fmt.Fprintf(&b, "  %s: %.6f seconds (mean)\n", rs.Algorithm.DisplayName(), mean)
			case "memory_usage":
				fmt.Fprintf(&b, "  %s: %s bytes (mean)\n", rs.Algorithm.DisplayName(), groupFloat(mean, 2))
			default:
				fmt.Fprintf(&b, "  %s: %s (mean)\n", rs.Algorithm.DisplayName(), groupFloat(mean, 2))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(rule + "\n")
	return b.String()
}

// writeStatBlock writes the six-line min/max/mean/median/stdev/total block
// with metric-appropriate precision, or an explicit no-data line for an
// empty sample.
func writeStatBlock(b *strings.Builder, m Metric, sample []float64) {
	s, ok := stats.Summarize(sample)
	if !ok {
		b.WriteString("  No data available\n")
		return
	}
	switch m.style {
	case styleSeconds:
		fmt.Fprintf(b, "  Min:    %.6f\n", s.Min)
		fmt.Fprintf(b, "  Max:    %.6f\n", s.Max)
		fmt.Fprintf(b, "  Mean:   %.6f\n", s.Mean)
		fmt.Fprintf(b, "  Median: %.6f\n", s.Median)
		fmt.Fprintf(b, "  StdDev: %.6f\n", s.Stdev)
		if m.showTotal {
			fmt.Fprintf(b, "  Total:  %.6f\n", s.Total)
		}
	case styleCount:
		fmt.Fprintf(b, "  Min:    %s\n", groupInt(s.Min))
		fmt.Fprintf(b, "  Max:    %s\n", groupInt(s.Max))
		fmt.Fprintf(b, "  Mean:   %s\n", groupFloat(s.Mean, 2))
		fmt.Fprintf(b, "  Median: %s\n", groupInt(s.Median))
		fmt.Fprintf(b, "  StdDev: %s\n", groupFloat(s.Stdev, 2))
		if m.showTotal {
			if m.Key == "memory_usage" {
				fmt.Fprintf(b, "  Total:  %s (%.2f KB)\n", groupInt(s.Total), s.Total/1024)
			} else {
				fmt.Fprintf(b, "  Total:  %s\n", groupInt(s.Total))
			}
		}
	case stylePlain:
		fmt.Fprintf(b, "  Min:    %.0f\n", s.Min)
		fmt.Fprintf(b, "  Max:    %.0f\n", s.Max)
		fmt.Fprintf(b, "  Mean:   %.2f\n", s.Mean)
		fmt.Fprintf(b, "  Median: %.0f\n", s.Median)
		fmt.Fprintf(b, "  StdDev: %.2f\n", s.Stdev)
		if m.showTotal {
			fmt.Fprintf(b, "  Total:  %.0f\n", s.Total)
		}
	case styleRate:
		fmt.Fprintf(b, "  Min:    %s\n", groupFloat(s.Min, 2))
		fmt.Fprintf(b, "  Max:    %s\n", groupFloat(s.Max, 2))
		fmt.Fprintf(b, "  Mean:   %s\n", groupFloat(s.Mean, 2))
		fmt.Fprintf(b, "  Median: %s\n", groupFloat(s.Median, 2))
		fmt.Fprintf(b, "  StdDev: %s\n", groupFloat(s.Stdev, 2))
		if m.showTotal {
			fmt.Fprintf(b, "  Total:  %s\n", groupFloat(s.Total, 2))
		}
	}
}

// RenderSpaceSummary reports actual against theoretical space usage per
// algorithm, including the actual/theoretical ratio spread.
func RenderSpaceSummary(sets []RunSet, bytesPerNode float64) string {
	var b strings.Builder
	b.WriteString("\n" + rule + "\n")
	b.WriteString("SPACE COMPLEXITY ANALYSIS SUMMARY\n")
	b.WriteString(rule + "\n")

	for _, rs := range sets {
		if len(rs.Records) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", rs.Algorithm.DisplayName())
		fmt.Fprintf(&b, "  Total puzzles: %d\n", len(rs.Records))

		var expanded, memoryMB, theoretical, ratios []float64
		for _, r := range rs.Records {
			expanded = append(expanded, float64(r.ExpandedNodes))
			memoryMB = append(memoryMB, float64(r.MemoryBytes)/(1024*1024))
			est, ok := r.Estimates[theory.ModelSpace]
			if !ok {
				continue
			}
			theoretical = append(theoretical, est)
			if est > 0 {
				ratios = append(ratios, float64(r.ExpandedNodes)/est)
			} else {
				ratios = append(ratios, 0)
			}
		}

		if s, ok := stats.Summarize(expanded); ok {
			fmt.Fprintf(&b, "  Expanded nodes: min=%s, max=%s, avg=%s\n",
				groupInt(s.Min), groupInt(s.Max), groupInt(s.Mean))
		}
		if s, ok := stats.Summarize(memoryMB); ok {
			fmt.Fprintf(&b, "  Auxiliary memory (MB): min=%.2f, max=%.2f, avg=%.2f\n",
				s.Min, s.Max, s.Mean)
		}
		if s, ok := stats.Summarize(theoretical); ok {
			fmt.Fprintf(&b, "  Theoretical space: min=%s, max=%s, avg=%s\n",
				groupInt(s.Min), groupInt(s.Max), groupInt(s.Mean))
		}
		if s, ok := stats.Summarize(ratios); ok {
			fmt.Fprintf(&b, "  Actual/Theoretical ratio: min=%.4f, max=%.4f, avg=%.4f\n",
				s.Min, s.Max, s.Mean)
		}
	}
	return b.String()
}

// RenderPerfSummary reports node-generation behavior per algorithm,
// including the duplicate-pruning efficiency of the variants that track
// duplicates.
func RenderPerfSummary(sets []RunSet) string {
	var b strings.Builder
	b.WriteString("\n" + rule + "\n")
	b.WriteString("PERFORMANCE ANALYSIS SUMMARY\n")
	b.WriteString(rule + "\n")

	for _, rs := range sets {
		if len(rs.Records) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", rs.Algorithm.DisplayName())
		fmt.Fprintf(&b, "  Total puzzles: %d\n", len(rs.Records))

		var generated, expanded, duplicated, execTime, efficiency []float64
		for _, r := range rs.Records {
			generated = append(generated, float64(r.GeneratedNodes))
			expanded = append(expanded, float64(r.ExpandedNodes))
			duplicated = append(duplicated, float64(r.DuplicatedNodes))
			execTime = append(execTime, r.ExecutionTime)
			efficiency = append(efficiency, Efficiency(r.Record))
		}

		if s, ok := stats.Summarize(generated); ok {
			fmt.Fprintf(&b, "  Generated nodes: min=%s, max=%s, avg=%s\n",
				groupInt(s.Min), groupInt(s.Max), groupInt(s.Mean))
		}
		if s, ok := stats.Summarize(expanded); ok {
			fmt.Fprintf(&b, "  Expanded nodes:  min=%s, max=%s, avg=%s\n",
				groupInt(s.Min), groupInt(s.Max), groupInt(s.Mean))
		}
		if s, ok := stats.Summarize(duplicated); ok {
			fmt.Fprintf(&b, "  Duplicated nodes: min=%s, max=%s, avg=%s\n",
				groupInt(s.Min), groupInt(s.Max), groupInt(s.Mean))
		}
		if s, ok := stats.Summarize(execTime); ok {
			fmt.Fprintf(&b, "  Execution time (s): min=%.6f, max=%.2f, avg=%.3f\n",
				s.Min, s.Max, s.Mean)
		}
		if rs.Algorithm.TracksDuplicates() {
			if s, ok := stats.Summarize(efficiency); ok {
				fmt.Fprintf(&b, "  Efficiency %%: min=%.1f%%, max=%.1f%%, avg=%.1f%%\n",
					s.Min, s.Max, s.Mean)
			}
		}
	}
	return b.String()
}

func groupInt(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

func groupFloat(v float64, decimals int) string {
	pattern := "#,###." + strings.Repeat("#", decimals)
	return humanize.FormatFloat(pattern, v)
}
