package terrain

import "fmt"

// conn4Offsets lists the 4-connectivity neighbor offsets in fixed
// N, E, S, W order. The order is part of the package contract: search
// determinism depends on neighbors being visited the same way every run.
var conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// New constructs an n×n Grid by invoking p once per coordinate in row-major
// order. The resulting grid is immutable.
//
// Returns ErrEmptyGrid if n < 1, ErrNilProducer if p is nil, and
// ErrUnknownTerrain (with coordinate context) if p yields a class outside
// the enum.
//
// Complexity: O(n²) time and memory.
func New(n int, p Producer) (*Grid, error) {
	// 1) Validate inputs early; no partial work.
	if n < 1 {
		return nil, ErrEmptyGrid
	}
	if p == nil {
		return nil, ErrNilProducer
	}

	// 2) Materialize every cell in deterministic row-major order.
	cells := make([]Cell, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			t, h := p(x, y)
			if !t.Valid() {
				return nil, fmt.Errorf("%w: %v at %v", ErrUnknownTerrain, t, Coord{X: x, Y: y})
			}
			cells[y*n+x] = Cell{X: x, Y: y, Terrain: t, Height: h}
		}
	}

	return &Grid{
		n:               n,
		cells:           cells,
		neighborOffsets: conn4Offsets,
	}, nil
}

// Size returns the side length N of the grid.
func (g *Grid) Size() int { return g.n }

// InBounds reports whether c lies within [0,N)×[0,N).
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.n && c.Y >= 0 && c.Y < g.n
}

// At returns the cell at c, or ErrOutOfBounds (with coordinate context)
// when c lies outside the grid.
// Complexity: O(1).
func (g *Grid) At(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Cell{}, fmt.Errorf("%w: %v on %d×%d grid", ErrOutOfBounds, c, g.n, g.n)
	}

	return g.cells[c.Index(g.n)], nil
}

// Cells returns the grid's backing cell arena in row-major order
// (cells[y*N+x]). The slice is shared, not copied: treat it as read-only.
// Search keeps per-cell bookkeeping in flat arrays parallel to this arena.
func (g *Grid) Cells() []Cell { return g.cells }

// NeighborOffsets returns the precomputed 4-connectivity offsets in fixed
// N, E, S, W order. Should be used in all adjacency traversals; treat the
// slice as read-only.
// Complexity: O(1).
func (g *Grid) NeighborOffsets() [][2]int { return g.neighborOffsets }
