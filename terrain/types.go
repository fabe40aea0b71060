// Package terrain defines the core types, sentinel errors and generator
// options for the terrain grid.
package terrain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors returned by grid construction and lookup.
var (
	// ErrEmptyGrid indicates the requested grid size is below one cell per side.
	ErrEmptyGrid = errors.New("terrain: grid must be at least 1×1")

	// ErrNilProducer indicates New was called with a nil Producer.
	ErrNilProducer = errors.New("terrain: producer is nil")

	// ErrUnknownTerrain indicates a Producer yielded a terrain class that is
	// not one of the declared variants.
	ErrUnknownTerrain = errors.New("terrain: unknown terrain class")

	// ErrOutOfBounds indicates a coordinate outside [0,N)×[0,N).
	ErrOutOfBounds = errors.New("terrain: coordinate out of bounds")

	// ErrBadHeightSpread indicates WithHeightSpread received a value ≤ 0,
	// which would collapse or invert the height distribution.
	ErrBadHeightSpread = errors.New("terrain: height spread must be positive")

	// ErrBadCoord indicates a coordinate string that is not "x,y" with two
	// integer components.
	ErrBadCoord = errors.New(`terrain: coordinate must be "x,y"`)
)

// Terrain classifies the surface of a single cell.
// The zero value is Sand.
type Terrain byte

const (
	// Sand is loose ground; moderately slow to cross.
	Sand Terrain = iota
	// Mud is the slowest surface.
	Mud
	// Asphalt is paved and fastest.
	Asphalt

	numTerrains = 3
)

// Terrains returns all terrain variants in declaration order.
// The slice is freshly allocated; callers may modify it.
func Terrains() []Terrain {
	return []Terrain{Sand, Mud, Asphalt}
}

// Valid reports whether t is one of the declared variants.
func (t Terrain) Valid() bool { return t < numTerrains }

// String returns the lowercase name of the terrain class,
// or "terrain(N)" for values outside the enum.
func (t Terrain) String() string {
	switch t {
	case Sand:
		return "sand"
	case Mud:
		return "mud"
	case Asphalt:
		return "asphalt"
	default:
		return fmt.Sprintf("terrain(%d)", byte(t))
	}
}

// Coord identifies a cell by its integer grid coordinates.
// It is the natural key of a cell: no two cells of one grid share a Coord.
type Coord struct {
	X, Y int
}

// Index maps the coordinate to its row-major position in a flat N×N arena:
// y*n + x. The result is meaningful only for in-bounds coordinates.
func (c Coord) Index(n int) int { return c.Y*n + c.X }

// String renders the coordinate as "(x,y)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// ParseCoord parses "x,y" (no spaces, both components base-10 integers)
// into a Coord. The whole string must be consumed; trailing characters
// yield ErrBadCoord. Bounds are not checked here; grids do that.
func ParseCoord(s string) (Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}

	return Coord{X: x, Y: y}, nil
}

// Cell is one grid cell. Cells are immutable once the grid is built.
type Cell struct {
	X, Y    int     // grid coordinates, duplicated from the cell's Coord
	Terrain Terrain // surface class
	Height  float64 // signed elevation
}

// Coord returns the cell's coordinate key.
func (c Cell) Coord() Coord { return Coord{X: c.X, Y: c.Y} }

// Producer yields the (terrain, height) pair for every coordinate of a grid
// under construction. It must be total over [0,N)×[0,N) and is called exactly
// once per coordinate, in row-major order.
type Producer func(x, y int) (Terrain, float64)

// Grid is an immutable N×N collection of Cells in flat row-major storage.
// It is owned by whoever built it and safe to share across concurrent
// read-only search queries.
type Grid struct {
	n               int
	cells           []Cell   // cells[y*n+x]
	neighborOffsets [][2]int // precomputed 4-connectivity offsets
}

// GenOptions contains tunable parameters for procedural generation.
//
// Seed         – RNG seed; 0 selects the fixed default seed so that the
// zero options value is still fully deterministic.
// HeightSpread – half-width of the uniform height distribution; the height
// of cell (x,y) is uniform(-HeightSpread, +HeightSpread) · (x+y) / (2N).
type GenOptions struct {
	Seed         int64
	HeightSpread float64
}

// GenOption represents a functional option for configuring Generate.
type GenOption func(*GenOptions)

// WithSeed fixes the generator's RNG seed. Seed 0 selects the package
// default seed (same policy as passing no option at all).
func WithSeed(seed int64) GenOption {
	return func(o *GenOptions) {
		o.Seed = seed
	}
}

// WithHeightSpread sets the half-width of the per-cell height distribution.
// The value is validated in Generate; non-positive values yield
// ErrBadHeightSpread.
func WithHeightSpread(spread float64) GenOption {
	return func(o *GenOptions) {
		o.HeightSpread = spread
	}
}

// DefaultGenOptions returns the generator defaults:
//
//   - Seed:         0 (mapped to the fixed default seed)
//   - HeightSpread: 0.2
func DefaultGenOptions() GenOptions {
	return GenOptions{
		Seed:         0,
		HeightSpread: defaultHeightSpread,
	}
}
