// Package terrainroute plans minimum-cost routes for a mobile agent
// crossing a synthetic terrain grid, where the price of every step depends
// on the surface being entered and the local slope.
//
// Everything is organized under four subpackages plus two demo binaries:
//
//	terrain/ — the immutable N×N grid (cells, terrain classes, heights)
//	           and its deterministic procedural generator
//	cost/    — the validated traversal-cost model:
//	           distance × 1/speed[terrain] × (1 + |Δheight|/slopeLimit)
//	astar/   — informed frontier search with an admissible scaled-Euclidean
//	           heuristic, plus path reconstruction from predecessors
//	render/  — PNG rasterization of grid and route (pure consumer)
//
//	cmd/terrainroute — generate → plan → render, with structured logging
//	cmd/routeview    — the same pipeline shown interactively in a terminal
//
// Quick example:
//
//	grid, _ := terrain.Generate(100, terrain.WithSeed(7))
//	model, _ := cost.New()
//	route, err := astar.FindPath(grid, model,
//	    terrain.Coord{X: 0, Y: 0}, terrain.Coord{X: 50, Y: 50})
//	if err != nil {
//	    // errors.Is(err, astar.ErrNoPath) means the grid is partitioned,
//	    // not that anything crashed
//	}
//	fmt.Println(len(route.Coords), route.Cost)
//
// The grid and model are read-only after construction and safe to share
// across concurrent queries; each query owns its own search state.
package terrainroute
