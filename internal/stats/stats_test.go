package stats_test

import (
	"testing"

	"github.com/gatelab/gatebench-cli/internal/stats"
)

func TestSummarizeEmpty(t *testing.T) {
	if _, ok := stats.Summarize(nil); ok {
		t.Fatal("empty sample must signal absence, not a zero-filled summary")
	}
	if _, ok := stats.Summarize([]float64{}); ok {
		t.Fatal("empty sample must signal absence")
	}
}

func TestSummarizeSingleton(t *testing.T) {
	s, ok := stats.Summarize([]float64{5})
	if !ok {
		t.Fatal("expected summary")
	}
	if s.Min != 5 || s.Max != 5 || s.Mean != 5 || s.Median != 5 || s.Total != 5 {
		t.Fatalf("singleton stats wrong: %+v", s)
	}
	if s.Stdev != 0 {
		t.Fatalf("stdev of a single element must be 0, got %v", s.Stdev)
	}
}

func TestSummarizeEvenSample(t *testing.T) {
	s, ok := stats.Summarize([]float64{1, 2, 3, 4})
	if !ok {
		t.Fatal("expected summary")
	}
	if s.Mean != 2.5 {
		t.Fatalf("mean: got %v", s.Mean)
	}
	if s.Median != 2.5 {
		t.Fatalf("median of even sample: got %v", s.Median)
	}
	if s.Total != 10 {
		t.Fatalf("total: got %v", s.Total)
	}
	if s.Min != 1 || s.Max != 4 {
		t.Fatalf("min/max: %+v", s)
	}
}

func TestSummarizeOrderIndependent(t *testing.T) {
	a, _ := stats.Summarize([]float64{3, 1, 4, 1, 5, 9, 2, 6})
	b, _ := stats.Summarize([]float64{9, 6, 5, 4, 3, 2, 1, 1})
	if a != b {
		t.Fatalf("summaries differ by input order: %+v vs %+v", a, b)
	}
}

func TestSummarizeDoesNotMutateInput(t *testing.T) {
	in := []float64{3, 1, 2}
	if _, ok := stats.Summarize(in); !ok {
		t.Fatal("expected summary")
	}
	if in[0] != 3 || in[1] != 1 || in[2] != 2 {
		t.Fatalf("input mutated: %v", in)
	}
}
