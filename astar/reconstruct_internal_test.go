// White-box reconstruction tests: the depth bound must stop a walk over a
// corrupted predecessor map that a black-box search can never produce.
package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/torvenlabs/terrainroute/terrain"
)

// TestReconstruct_CyclicChainTerminates hand-builds a Result whose
// predecessor map contains a cycle that never reaches the start. The walk
// must hit the N² hop bound and fail with ErrNoPath, not spin forever.
func TestReconstruct_CyclicChainTerminates(t *testing.T) {
	// 2×2 arena: 1 → 3 → 1 cycle, target "reached" with a finite cost.
	r := &Result{
		n:    2,
		cost: []float64{0, 1, 1, 1},
		prev: []int32{-1, 3, -1, 1},
	}

	_, err := Reconstruct(r, terrain.Coord{X: 0, Y: 0}, terrain.Coord{X: 1, Y: 1})
	assert.ErrorIs(t, err, ErrNoPath)
}

// TestReconstruct_SelfLoopTerminates covers the degenerate one-cell cycle.
func TestReconstruct_SelfLoopTerminates(t *testing.T) {
	r := &Result{
		n:    2,
		cost: []float64{0, 1, 1, 1},
		prev: []int32{-1, 1, -1, 1},
	}

	_, err := Reconstruct(r, terrain.Coord{X: 0, Y: 0}, terrain.Coord{X: 1, Y: 0})
	assert.ErrorIs(t, err, ErrNoPath)
}
