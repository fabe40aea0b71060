package cost

import (
	"fmt"
	"math"

	"github.com/torvenlabs/terrainroute/terrain"
)

// Model holds the validated traversal-cost parameters. It is immutable
// after New and safe for concurrent use.
type Model struct {
	speeds     []float64 // indexed by terrain.Terrain; all entries > 0
	slopeLimit float64   // > 0
	minStep    float64   // min over variants of 1/speed, precomputed
}

// New builds a Model from the defaults overridden by opts.
//
// Validation (ConfigurationError taxonomy, in order):
//  1. Every declared terrain variant has a multiplier (ErrMissingSpeed).
//  2. Every multiplier is strictly positive (ErrNonPositiveSpeed).
//  3. The slope limit is strictly positive (ErrBadSlopeLimit).
//
// All failures carry the offending variant or value as context.
func New(opts ...Option) (*Model, error) {
	// 1) Build options from defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate and flatten the multiplier table into a dense arena
	//    indexed by the terrain byte, so Step never hashes.
	variants := terrain.Terrains()
	speeds := make([]float64, len(variants))
	minStep := math.Inf(1)
	for _, t := range variants {
		mult, ok := cfg.Speeds[t]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingSpeed, t)
		}
		if mult <= 0 {
			return nil, fmt.Errorf("%w: %v = %v", ErrNonPositiveSpeed, t, mult)
		}
		speeds[t] = mult
		if step := 1 / mult; step < minStep {
			minStep = step
		}
	}

	// 3) Validate the slope normalization constant.
	if cfg.SlopeLimit <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadSlopeLimit, cfg.SlopeLimit)
	}

	return &Model{
		speeds:     speeds,
		slopeLimit: cfg.SlopeLimit,
		minStep:    minStep,
	}, nil
}

// Step returns the cost of moving from current into neighbor:
//
//	distance × (1 / speed[neighbor.Terrain]) × (1 + |Δheight| / slopeLimit)
//
// Pure function of its two inputs and the fixed parameters; finite and
// strictly positive for all valid cells.
// Complexity: O(1).
func (m *Model) Step(current, neighbor terrain.Cell) float64 {
	dx := float64(neighbor.X - current.X)
	dy := float64(neighbor.Y - current.Y)
	distance := math.Sqrt(dx*dx + dy*dy)

	terrainCost := 1 / m.speeds[neighbor.Terrain]
	slopeCost := 1 + math.Abs(neighbor.Height-current.Height)/m.slopeLimit

	return distance * terrainCost * slopeCost
}

// Speed returns the configured multiplier for t.
func (m *Model) Speed(t terrain.Terrain) float64 { return m.speeds[t] }

// SlopeLimit returns the configured slope normalization constant.
func (m *Model) SlopeLimit() float64 { return m.slopeLimit }

// MinStepCost returns the cheapest possible cost per unit of distance:
// the minimum of 1/speed over all variants. Since the slope factor never
// drops below 1, Euclidean distance × MinStepCost never overestimates the
// true cost of any route — it is the admissible heuristic floor used by
// informed search.
func (m *Model) MinStepCost() float64 { return m.minStep }

// Admissible reports whether the raw (unscaled) Euclidean heuristic is
// admissible for this model, i.e. whether every multiplier is ≤ 1. With a
// multiplier above 1 a step can cost less than its geometric length, and an
// unscaled heuristic may overestimate.
func (m *Model) Admissible() bool { return m.minStep >= 1 }
