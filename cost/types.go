// Package cost defines options and sentinel errors for the traversal-cost model.
package cost

import (
	"errors"

	"github.com/torvenlabs/terrainroute/terrain"
)

// Sentinel errors reported by Model construction.
var (
	// ErrMissingSpeed indicates a terrain variant has no speed multiplier.
	ErrMissingSpeed = errors.New("cost: terrain variant lacks a speed multiplier")

	// ErrNonPositiveSpeed indicates a speed multiplier ≤ 0, which would make
	// the terrain factor non-positive or undefined.
	ErrNonPositiveSpeed = errors.New("cost: speed multiplier must be positive")

	// ErrBadSlopeLimit indicates a slope normalization constant ≤ 0.
	ErrBadSlopeLimit = errors.New("cost: slope limit must be positive")
)

// Default multipliers and slope normalization. Asphalt above 1 makes the raw Euclidean heuristic of an
// informed search inadmissible; astar.Search compensates by scaling the
// heuristic with Model.MinStepCost.
const (
	DefaultSandSpeed    = 0.7
	DefaultMudSpeed     = 0.4
	DefaultAsphaltSpeed = 1.5
	DefaultSlopeLimit   = 0.2
)

// Options configures Model construction.
//
// Speeds     – terrain class → positive speed multiplier; every declared
// variant must be present (missing entries fail validation, they are not
// silently defaulted once the caller replaces the map).
// SlopeLimit – positive normalization constant for the slope penalty.
type Options struct {
	Speeds     map[terrain.Terrain]float64
	SlopeLimit float64
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// WithSpeed overrides the multiplier of a single terrain class.
// The value is validated in New; non-positive values yield ErrNonPositiveSpeed.
func WithSpeed(t terrain.Terrain, mult float64) Option {
	return func(o *Options) {
		o.Speeds[t] = mult
	}
}

// WithSpeeds replaces the whole multiplier table. Variants absent from the
// map fail validation with ErrMissingSpeed; this is how tests and callers
// deliberately mis-configure a model to exercise the error path.
func WithSpeeds(speeds map[terrain.Terrain]float64) Option {
	return func(o *Options) {
		o.Speeds = speeds
	}
}

// WithSlopeLimit overrides the slope normalization constant.
// The value is validated in New; non-positive values yield ErrBadSlopeLimit.
func WithSlopeLimit(limit float64) Option {
	return func(o *Options) {
		o.SlopeLimit = limit
	}
}

// DefaultOptions returns the default model parameters:
// sand 0.7, mud 0.4, asphalt 1.5, slope limit 0.2.
func DefaultOptions() Options {
	return Options{
		Speeds: map[terrain.Terrain]float64{
			terrain.Sand:    DefaultSandSpeed,
			terrain.Mud:     DefaultMudSpeed,
			terrain.Asphalt: DefaultAsphaltSpeed,
		},
		SlopeLimit: DefaultSlopeLimit,
	}
}
