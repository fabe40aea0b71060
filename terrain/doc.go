// Package terrain models the synthetic N×N grid a route is planned over,
// together with a deterministic procedural generator for it.
//
// What:
//
//   - Cell: immutable value carrying coordinates, a Terrain class
//     (Sand | Mud | Asphalt) and a signed height.
//   - Grid: a fixed-size N×N collection of Cells in flat row-major storage,
//     built once from a Producer and never mutated afterwards.
//   - Generate: seeded random Producer drawing a uniform terrain class per
//     cell and a noisy height ramp growing toward the far corner.
//
// Why:
//
//   - Route planning: the grid is the read-only input of cost.Model and
//     astar.Search; O(1) cell lookup by coordinate keeps relaxation cheap.
//   - Reproducibility: the generator is fully determined by its seed, so a
//     (size, seed) pair names a grid exactly.
//
// Complexity:
//
//   - New / Generate: O(N²) time and memory.
//   - At / InBounds:  O(1).
//
// Options (Generate only):
//
//   - WithSeed(s):         RNG seed; 0 selects the fixed default seed.
//   - WithHeightSpread(v): half-width of the per-cell height distribution.
//
// Errors:
//
//   - ErrEmptyGrid:       requested size is below one cell per side.
//   - ErrNilProducer:     New was given a nil Producer.
//   - ErrUnknownTerrain:  a Producer yielded a class outside the enum.
//   - ErrOutOfBounds:     At was asked for a coordinate outside [0,N)×[0,N).
//   - ErrBadHeightSpread: WithHeightSpread received a non-positive value.
//
// Concurrency: a Grid is safe for any number of concurrent readers; there
// are no writers after construction.
package terrain
