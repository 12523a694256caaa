package compare

import (
	"github.com/gatelab/gatebench-cli/internal/report"
	"github.com/gatelab/gatebench-cli/internal/theory"
)

// ActualSpace approximates a record's real space usage in node
// equivalents: the expanded-node count plus auxiliary memory converted at
// bytesPerNode, when any auxiliary memory was reported.
func ActualSpace(rec *report.Record, bytesPerNode float64) float64 {
	actual := float64(rec.ExpandedNodes)
	if rec.MemoryBytes > 0 {
		actual += float64(rec.MemoryBytes) / bytesPerNode
	}
	return actual
}

// Efficiency is the share of generated successors that were not
// duplicates, as a percentage. Defined as 0 when nothing was generated.
func Efficiency(rec *report.Record) float64 {
	total := rec.GeneratedNodes + rec.DuplicatedNodes
	if total == 0 {
		return 0
	}
	return float64(rec.GeneratedNodes) / float64(total) * 100
}

// Point is one (theoretical, actual) pair of a series.
type Point struct {
	Puzzle string
	X, Y   float64
}

// Series is a named sequence of points for one algorithm, destined for an
// external chart renderer.
type Series struct {
	Algorithm report.Algorithm
	Model     string
	Points    []Point
}

// JoinedSpaceSeries builds the comparative theoretical-vs-actual space
// series. The join universe is the union of puzzle names solved by the two
// duplicate-tracking variants; the no-dedup variant frequently fails to
// terminate on larger puzzles, so it only contributes as a baseline where
// available. The x-value for every point is the no-dedup variant's space
// estimate for that puzzle when it exists, otherwise the record's own
// estimate. The y-value is ActualSpace.
func JoinedSpaceSeries(sets []RunSet, bytesPerNode float64) []Series {
	universe := make(map[string]bool)
	baseline := make(map[string]float64)
	for _, rs := range sets {
		for _, r := range rs.Records {
			if rs.Algorithm.TracksDuplicates() {
				universe[r.PuzzleName] = true
			}
			if rs.Algorithm == report.AlgoNoDedup {
				if est, ok := r.Estimates[theory.ModelSpace]; ok {
					baseline[r.PuzzleName] = est
				}
			}
		}
	}

	out := make([]Series, 0, len(sets))
	for _, rs := range sets {
		s := Series{Algorithm: rs.Algorithm, Model: theory.ModelSpace}
		for _, r := range rs.Records {
			if !universe[r.PuzzleName] {
				continue
			}
			x, ok := baseline[r.PuzzleName]
			if !ok {
				x, ok = r.Estimates[theory.ModelSpace]
			}
			if !ok {
				continue
			}
			s.Points = append(s.Points, Point{
				Puzzle: r.PuzzleName,
				X:      x,
				Y:      ActualSpace(r.Record, bytesPerNode),
			})
		}
		out = append(out, s)
	}
	return out
}

// ModelSeries builds per-algorithm series plotting a theoretical model
// against observed generated nodes. Records lacking the model (unmet
// precondition) contribute no point.
func ModelSeries(sets []RunSet, model string) []Series {
	out := make([]Series, 0, len(sets))
	for _, rs := range sets {
		s := Series{Algorithm: rs.Algorithm, Model: model}
		for _, r := range rs.Records {
			est, ok := r.Estimates[model]
			if !ok {
				continue
			}
			s.Points = append(s.Points, Point{
				Puzzle: r.PuzzleName,
				X:      est,
				Y:      float64(r.GeneratedNodes),
			})
		}
		out = append(out, s)
	}
	return out
}

// PositiveOnly filters out points with non-positive coordinates, which
// downstream log-scale rendering cannot represent. The second return is
// the number of dropped points.
func PositiveOnly(s Series) (Series, int) {
	kept := Series{Algorithm: s.Algorithm, Model: s.Model}
	dropped := 0
	for _, p := range s.Points {
		if p.X > 0 && p.Y > 0 {
			kept.Points = append(kept.Points, p)
		} else {
			dropped++
		}
	}
	return kept, dropped
}
