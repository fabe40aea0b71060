// Package cost_test contains unit tests for cost model construction and
// the per-step cost formula.
package cost_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torvenlabs/terrainroute/cost"
	"github.com/torvenlabs/terrainroute/terrain"
)

const delta = 1e-12

// cell is a shorthand for building test cells in place.
func cell(x, y int, t terrain.Terrain, h float64) terrain.Cell {
	return terrain.Cell{X: x, Y: y, Terrain: t, Height: h}
}

func TestNew_Defaults(t *testing.T) {
	m, err := cost.New()
	require.NoError(t, err)

	assert.Equal(t, cost.DefaultSandSpeed, m.Speed(terrain.Sand))
	assert.Equal(t, cost.DefaultMudSpeed, m.Speed(terrain.Mud))
	assert.Equal(t, cost.DefaultAsphaltSpeed, m.Speed(terrain.Asphalt))
	assert.Equal(t, cost.DefaultSlopeLimit, m.SlopeLimit())
}

func TestNew_MissingSpeed(t *testing.T) {
	_, err := cost.New(cost.WithSpeeds(map[terrain.Terrain]float64{
		terrain.Sand:    1,
		terrain.Asphalt: 1,
		// Mud deliberately absent.
	}))
	assert.ErrorIs(t, err, cost.ErrMissingSpeed)
}

func TestNew_NonPositiveSpeed(t *testing.T) {
	for _, mult := range []float64{0, -0.5} {
		_, err := cost.New(cost.WithSpeed(terrain.Sand, mult))
		assert.ErrorIs(t, err, cost.ErrNonPositiveSpeed, "multiplier %v", mult)
	}
}

func TestNew_BadSlopeLimit(t *testing.T) {
	for _, limit := range []float64{0, -1} {
		_, err := cost.New(cost.WithSlopeLimit(limit))
		assert.ErrorIs(t, err, cost.ErrBadSlopeLimit, "limit %v", limit)
	}
}

func TestStep_Formula(t *testing.T) {
	m, err := cost.New()
	require.NoError(t, err)

	tests := []struct {
		name     string
		from, to terrain.Cell
		want     float64
	}{
		{
			name: "flat asphalt unit move",
			from: cell(0, 0, terrain.Asphalt, 0),
			to:   cell(1, 0, terrain.Asphalt, 0),
			want: 1.0 / 1.5,
		},
		{
			name: "uphill into mud",
			from: cell(0, 0, terrain.Asphalt, 0),
			to:   cell(0, 1, terrain.Mud, 0.1),
			// 1 × (1/0.4) × (1 + 0.1/0.2)
			want: 2.5 * 1.5,
		},
		{
			name: "downhill penalized like uphill",
			from: cell(0, 1, terrain.Mud, 0.1),
			to:   cell(0, 0, terrain.Mud, 0),
			want: 2.5 * 1.5,
		},
		{
			name: "diagonal costs √2 times as much",
			from: cell(0, 0, terrain.Sand, 0),
			to:   cell(1, 1, terrain.Sand, 0),
			want: math.Sqrt2 / 0.7,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, m.Step(tc.from, tc.to), delta)
		})
	}
}

// TestStep_SlopeSymmetry checks that the slope term is direction-symmetric:
// stripping the terrain factor (which legitimately depends on the cell
// being entered) must leave identical values both ways.
func TestStep_SlopeSymmetry(t *testing.T) {
	m, err := cost.New()
	require.NoError(t, err)

	a := cell(3, 3, terrain.Sand, -0.4)
	b := cell(3, 4, terrain.Asphalt, 0.25)

	forward := m.Step(a, b) * m.Speed(b.Terrain)
	backward := m.Step(b, a) * m.Speed(a.Terrain)
	assert.InDelta(t, forward, backward, delta)
}

func TestStep_FiniteAndPositive(t *testing.T) {
	m, err := cost.New()
	require.NoError(t, err)

	heights := []float64{-100, -0.3, 0, 0.3, 100}
	for _, tf := range terrain.Terrains() {
		for _, tt := range terrain.Terrains() {
			for _, hf := range heights {
				for _, ht := range heights {
					got := m.Step(cell(0, 0, tf, hf), cell(0, 1, tt, ht))
					assert.True(t, got > 0 && !math.IsInf(got, 0) && !math.IsNaN(got),
						"%v→%v heights %v→%v gave %v", tf, tt, hf, ht, got)
				}
			}
		}
	}
}

func TestMinStepCostAndAdmissible(t *testing.T) {
	// Defaults: asphalt 1.5 ⇒ cheapest unit step is 1/1.5 and the raw
	// Euclidean heuristic is not admissible.
	m, err := cost.New()
	require.NoError(t, err)
	assert.InDelta(t, 1/1.5, m.MinStepCost(), delta)
	assert.False(t, m.Admissible())

	// All multipliers ≤ 1 ⇒ unit steps cost at least 1.
	slow, err := cost.New(cost.WithSpeed(terrain.Asphalt, 1.0))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, slow.MinStepCost(), delta)
	assert.True(t, slow.Admissible())
}
