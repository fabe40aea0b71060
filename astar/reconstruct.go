package astar

import (
	"fmt"

	"github.com/torvenlabs/terrainroute/cost"
	"github.com/torvenlabs/terrainroute/terrain"
)

// Reconstruct walks the predecessor map of r from target back to start and
// returns the route in start→target order, both endpoints inclusive.
//
// Returns ErrNilResult for a nil result, ErrStartOutOfBounds /
// ErrTargetOutOfBounds for coordinates outside the result's grid, and
// ErrNoPath when the chain never reaches start — either because the search
// did not reach target, or because the map is malformed. A depth bound of
// N² hops guarantees termination on any input; a well-formed route cannot
// visit a cell twice, so exceeding the bound is itself proof of corruption.
//
// start == target yields the single-element route [start].
//
// Complexity: O(L) time and memory, L = route length ≤ N².
func Reconstruct(r *Result, start, target terrain.Coord) ([]terrain.Coord, error) {
	// 1) Validate inputs.
	if r == nil {
		return nil, ErrNilResult
	}
	if !r.inBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if !r.inBounds(target) {
		return nil, fmt.Errorf("%w: %v", ErrTargetOutOfBounds, target)
	}

	// 2) The trivial route: already there.
	if start == target {
		return []terrain.Coord{start}, nil
	}

	// 3) Fail fast when the search never reached the target at all.
	if !r.Reached(target) {
		return nil, fmt.Errorf("%w: target %v never reached", ErrNoPath, target)
	}

	// 4) Collect target→start, bounded by the cell count.
	maxHops := r.n * r.n
	route := make([]terrain.Coord, 0, r.n)
	cur := target
	for cur != start {
		if len(route) >= maxHops {
			return nil, fmt.Errorf("%w: predecessor chain exceeds %d hops", ErrNoPath, maxHops)
		}
		route = append(route, cur)
		p, ok := r.CameFrom(cur)
		if !ok {
			return nil, fmt.Errorf("%w: chain breaks at %v", ErrNoPath, cur)
		}
		cur = p
	}
	route = append(route, start)

	// 5) Reverse in place so the route runs start→target.
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route, nil
}

// FindPath is the convenience wrapper most callers want: Search followed by
// Reconstruct, returning the ordered route and its total traversal cost.
//
// Errors are exactly those of Search and Reconstruct; an unreachable target
// surfaces here as ErrNoPath.
func FindPath(g *terrain.Grid, m *cost.Model, start, target terrain.Coord, opts ...Option) (Route, error) {
	res, err := Search(g, m, start, target, opts...)
	if err != nil {
		return Route{}, err
	}

	coords, err := Reconstruct(res, start, target)
	if err != nil {
		return Route{}, err
	}

	total, _ := res.CostTo(target)

	return Route{Coords: coords, Cost: total}, nil
}
