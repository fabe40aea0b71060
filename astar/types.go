// Package astar defines core types, configuration options and sentinel
// errors for the grid search.
//
// Options:
//
//   - WithoutHeuristic():  uninformed mode (Dijkstra-equivalent ordering).
//   - WithContext(ctx):    cancellation checked once per frontier pop.
//   - WithMaxStepCost(t):  steps costing ≥ t are treated as impassable.
//   - WithMaxCost(x):      stop exploring once the cheapest frontier entry
//     exceeds x.
//
// Errors (sentinel):
//
//   - ErrNilGrid           if the grid is nil.
//   - ErrNilModel          if the cost model is nil.
//   - ErrStartOutOfBounds  if the start coordinate is outside the grid.
//   - ErrTargetOutOfBounds if the target coordinate is outside the grid.
//   - ErrCanceled          if the search context was canceled mid-query.
//   - ErrNoPath            if no predecessor chain connects target to start.
//   - ErrNilResult         if Reconstruct was given a nil Result.
//   - ErrBadStepLimit      if WithMaxStepCost received a value ≤ 0.
//   - ErrBadCostLimit      if WithMaxCost received a negative value.
package astar

import (
	"context"
	"errors"
	"math"

	"github.com/torvenlabs/terrainroute/terrain"
)

// Sentinel errors returned by Search, Reconstruct and FindPath.
var (
	// ErrNilGrid indicates a nil *terrain.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNilModel indicates a nil *cost.Model was passed to Search.
	ErrNilModel = errors.New("astar: cost model is nil")

	// ErrStartOutOfBounds indicates the start coordinate lies outside the grid.
	ErrStartOutOfBounds = errors.New("astar: start coordinate out of bounds")

	// ErrTargetOutOfBounds indicates the target coordinate lies outside the grid.
	ErrTargetOutOfBounds = errors.New("astar: target coordinate out of bounds")

	// ErrCanceled indicates the search context was canceled before the
	// frontier was exhausted or the target reached.
	ErrCanceled = errors.New("astar: search canceled")

	// ErrNoPath indicates the predecessor map holds no chain from target
	// back to start — the target was never reached by the search.
	ErrNoPath = errors.New("astar: no path between start and target")

	// ErrNilResult indicates Reconstruct was given a nil Result.
	ErrNilResult = errors.New("astar: result is nil")

	// ErrBadStepLimit indicates WithMaxStepCost was given a value ≤ 0,
	// which would make every step impassable.
	ErrBadStepLimit = errors.New("astar: MaxStepCost must be positive")

	// ErrBadCostLimit indicates WithMaxCost was given a negative value,
	// which is not meaningful for a cost budget.
	ErrBadCostLimit = errors.New("astar: MaxCost must be non-negative")
)

// Options configures a single Search query.
//
// Informed    – if true (default), order the frontier by cost-so-far plus
// the scaled Euclidean heuristic; if false, by cost-so-far alone.
// Ctx         – optional context checked once per frontier pop.
// MaxStepCost – steps with cost ≥ this threshold are not taken (impassable).
// MaxCost     – frontier entries beyond this total cost are not explored.
type Options struct {
	Informed    bool
	Ctx         context.Context
	MaxStepCost float64
	MaxCost     float64
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithoutHeuristic disables the heuristic term, degrading the search to a
// uniform-cost (Dijkstra-equivalent) expansion. Useful as a baseline when
// auditing route optimality.
func WithoutHeuristic() Option {
	return func(o *Options) {
		o.Informed = false
	}
}

// WithContext installs a cancellation context, checked once per frontier
// pop. A canceled context aborts the query with ErrCanceled wrapping the
// context's own error. A nil ctx restores the default (no cancellation).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithMaxStepCost marks any single step costing ≥ threshold as impassable.
// This is how callers carve walls into an otherwise fully connected grid.
// Must pass a positive value; zero or negative panics with ErrBadStepLimit.
// Default is +Inf (every step passable).
func WithMaxStepCost(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadStepLimit.Error())
		}
		o.MaxStepCost = threshold
	}
}

// WithMaxCost caps the total cost explored: moves whose cumulative cost
// would exceed the cap are never taken, so cells beyond the budget stay
// unreached and the frontier drains naturally at the boundary.
// Must pass a non-negative value; negative panics with ErrBadCostLimit.
// Default is +Inf (no cap).
func WithMaxCost(limit float64) Option {
	return func(o *Options) {
		if limit < 0 {
			panic(ErrBadCostLimit.Error())
		}
		o.MaxCost = limit
	}
}

// DefaultOptions returns the query defaults: informed ordering, no
// cancellation, no step threshold, no cost cap.
func DefaultOptions() Options {
	return Options{
		Informed:    true,
		Ctx:         nil,
		MaxStepCost: math.Inf(1),
		MaxCost:     math.Inf(1),
	}
}

// Result is the transient per-query state, returned once the frontier is
// exhausted, the target reached, or the query canceled. The flat arrays are
// parallel to the grid's row-major cell arena.
type Result struct {
	n        int       // grid side length
	cost     []float64 // best known cost per cell; +Inf = never reached
	prev     []int32   // predecessor cell index; -1 = none
	expanded int       // pops that survived the stale check
}

// CostTo returns the lowest known cumulative cost to reach c and whether
// the search ever reached it at all.
func (r *Result) CostTo(c terrain.Coord) (float64, bool) {
	if !r.inBounds(c) {
		return math.Inf(1), false
	}
	v := r.cost[c.Index(r.n)]

	return v, !math.IsInf(v, 1)
}

// CameFrom returns the coordinate c was most cheaply reached from and
// whether a predecessor is recorded. The start cell has none.
func (r *Result) CameFrom(c terrain.Coord) (terrain.Coord, bool) {
	if !r.inBounds(c) {
		return terrain.Coord{}, false
	}
	p := r.prev[c.Index(r.n)]
	if p < 0 {
		return terrain.Coord{}, false
	}

	return r.coord(int(p)), true
}

// Reached reports whether the search recorded a finite cost for c.
func (r *Result) Reached(c terrain.Coord) bool {
	_, ok := r.CostTo(c)

	return ok
}

// Expanded returns how many cells the search actually expanded. An informed
// search on the same query should expand no more cells than an uninformed one.
func (r *Result) Expanded() int { return r.expanded }

// inBounds reports whether c indexes into the result's arrays.
func (r *Result) inBounds(c terrain.Coord) bool {
	return c.X >= 0 && c.X < r.n && c.Y >= 0 && c.Y < r.n
}

// coord converts a flat row-major index back into a coordinate.
func (r *Result) coord(idx int) terrain.Coord {
	return terrain.Coord{X: idx % r.n, Y: idx / r.n}
}

// Route is an ordered start→target traversal with its total cost,
// produced by FindPath and owned by the caller.
type Route struct {
	Coords []terrain.Coord
	Cost   float64
}
