// Package stats computes descriptive statistics over numeric samples.
package stats

import (
	"math"
	"sort"
)

// Summary holds the six descriptive statistics of a non-empty sample.
// Values are kept at full precision; rounding is a rendering concern.
type Summary struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Stdev  float64
	Total  float64
}

// Summarize computes a Summary over the sample. The second return is false
// for an empty sample; callers must branch on it instead of formatting a
// zero-filled summary. Stdev is the Bessel-corrected sample standard
// deviation and is exactly 0 for a single-element sample. The input slice
// is not modified, and its order does not affect any statistic.
func Summarize(values []float64) (Summary, bool) {
	n := len(values)
	if n == 0 {
		return Summary{}, false
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var total float64
	for _, v := range sorted {
		total += v
	}
	mean := total / float64(n)

	var stdev float64
	if n > 1 {
		var ss float64
		for _, v := range sorted {
			d := v - mean
			ss += d * d
		}
		stdev = math.Sqrt(ss / float64(n-1))
	}

	return Summary{
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   mean,
		Median: median(sorted),
		Stdev:  stdev,
		Total:  total,
	}, true
}

// Mean returns the arithmetic mean, or false for an empty sample.
func Mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values)), true
}

// median of an even-length sorted sample is the average of the two middle
// order statistics.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
