// Package theory computes closed-form complexity estimates for solver
// records. Estimates are upper-bound approximations used as baselines when
// comparing observed node counts across algorithm variants.
package theory

import (
	"math"

	"github.com/gatelab/gatebench-cli/internal/report"
)

// Model names as they appear in estimate maps and exported series.
const (
	ModelSpace            = "space" // primary per-variant space model
	ModelStateSpace       = "state_space"
	ModelDepthBranching   = "depth_branching"
	ModelIWComplexity     = "iw_complexity"
	ModelCombined         = "combined"
	ModelExponentialWidth = "exponential_width"
)

// AuxModels lists the variant-independent models in presentation order.
var AuxModels = []string{
	ModelStateSpace,
	ModelDepthBranching,
	ModelIWComplexity,
	ModelCombined,
	ModelExponentialWidth,
}

// Constants are the empirically chosen caps and multipliers of the
// estimate formulas. They have no derivation beyond "worked well on the
// benchmark set"; keep them overridable rather than re-deriving them.
type Constants struct {
	// DepthCap bounds the no-dedup queue-growth estimate.
	DepthCap float64
	// StateSpaceCap bounds the raw configuration-space estimates.
	StateSpaceCap float64
	// DepthLimit caps the exponent of the no-dedup model so large
	// solutions cannot overflow the estimate.
	DepthLimit int64
	// FullDedupFactor scales observed generated nodes into the practical
	// bound of the full-duplicate-detection model.
	FullDedupFactor float64
	// WidthFactor is the same for the width-limited model.
	WidthFactor float64
	// BytesPerNode approximates the per-node cost of auxiliary memory
	// when converting bytes into node equivalents.
	BytesPerNode float64
	// BranchDirections is the number of moves available per piece.
	BranchDirections int64
}

// DefaultConstants returns the canonical constants.
func DefaultConstants() Constants {
	return Constants{
		DepthCap:         1e10,
		StateSpaceCap:    1e15,
		DepthLimit:       10,
		FullDedupFactor:  2,
		WidthFactor:      1.5,
		BytesPerNode:     32,
		BranchDirections: 4,
	}
}

// Evaluator computes estimate maps for records under a fixed set of
// constants.
type Evaluator struct {
	c Constants
}

// NewEvaluator returns an Evaluator; zero-valued constants fall back to
// defaults so a partially populated config cannot divide or cap by zero.
func NewEvaluator(c Constants) *Evaluator {
	def := DefaultConstants()
	if c.DepthCap <= 0 {
		c.DepthCap = def.DepthCap
	}
	if c.StateSpaceCap <= 0 {
		c.StateSpaceCap = def.StateSpaceCap
	}
	if c.DepthLimit <= 0 {
		c.DepthLimit = def.DepthLimit
	}
	if c.FullDedupFactor <= 0 {
		c.FullDedupFactor = def.FullDedupFactor
	}
	if c.WidthFactor <= 0 {
		c.WidthFactor = def.WidthFactor
	}
	if c.BytesPerNode <= 0 {
		c.BytesPerNode = def.BytesPerNode
	}
	if c.BranchDirections <= 0 {
		c.BranchDirections = def.BranchDirections
	}
	return &Evaluator{c: c}
}

// Constants returns the constants the evaluator runs with.
func (e *Evaluator) Constants() Constants { return e.c }

// Estimate computes every applicable model for the record. Models whose
// required fields are absent (the width-dependent ones for records not
// solved by the width-limited variant) are omitted from the map, never
// defaulted to zero. All returned values are finite and within their caps.
func (e *Evaluator) Estimate(rec *report.Record) map[string]float64 {
	c := e.c
	pieces := float64(rec.NumPieces)
	steps := float64(rec.SolutionSteps)
	empty := float64(rec.EmptySpaces)
	generated := float64(rec.GeneratedNodes)
	branching := pieces * float64(c.BranchDirections)

	out := make(map[string]float64, 6)

	if v := e.spaceModel(rec, branching, empty, generated); !math.IsNaN(v) {
		out[ModelSpace] = v
	}

	out[ModelStateSpace] = math.Min(math.Pow(empty, pieces), c.StateSpaceCap)
	out[ModelDepthBranching] = steps * branching

	if rec.SolvedByWidth != nil {
		width := float64(*rec.SolvedByWidth)
		out[ModelIWComplexity] = pieces * empty * width
		out[ModelCombined] = pieces * steps * empty * width
		out[ModelExponentialWidth] = math.Min(math.Pow(empty, width), c.StateSpaceCap)
	}

	return out
}

// spaceModel is the primary per-variant space estimate. NaN marks a model
// whose precondition is unmet.
func (e *Evaluator) spaceModel(rec *report.Record, branching, empty, generated float64) float64 {
	c := e.c
	switch rec.Algorithm {
	case report.AlgoNoDedup:
		// Queue growth is exponential in depth without duplicate pruning;
		// the exponent is limited so the estimate stays representable.
		depth := rec.SolutionSteps
		if depth > c.DepthLimit {
			depth = c.DepthLimit
		}
		return math.Min(math.Pow(branching, float64(depth)), c.DepthCap)
	case report.AlgoFullDedup:
		// Upper bound is the whole configuration space; the practical
		// bound follows the observed generation count.
		return math.Min(math.Pow(empty, float64(rec.NumPieces)), generated*c.FullDedupFactor)
	case report.AlgoWidthLimited:
		if rec.SolvedByWidth == nil {
			return math.NaN()
		}
		return math.Min(math.Pow(empty, float64(*rec.SolvedByWidth)), generated*c.WidthFactor)
	}
	return math.NaN()
}
