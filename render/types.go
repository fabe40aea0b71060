// Package render defines options and sentinel errors for grid rasterization.
package render

import "errors"

// Sentinel errors returned by Image and WritePNG.
var (
	// ErrNilGrid indicates a nil *terrain.Grid was passed in.
	ErrNilGrid = errors.New("render: grid is nil")

	// ErrBadScale indicates a cell scale below one pixel.
	ErrBadScale = errors.New("render: scale must be at least 1 pixel per cell")

	// ErrRouteOffGrid indicates a route coordinate outside the grid bounds.
	ErrRouteOffGrid = errors.New("render: route coordinate out of grid bounds")
)

// defaultScale is the default cell side length in pixels.
const defaultScale = 6

// Options configures rasterization.
//
// Scale – side length of one grid cell in pixels; the output image is
// N·Scale pixels square.
type Options struct {
	Scale int
}

// Option represents a functional option for configuring Image and WritePNG.
type Option func(*Options)

// WithScale sets the cell side length in pixels. The value is validated at
// render time; values below 1 yield ErrBadScale.
func WithScale(px int) Option {
	return func(o *Options) {
		o.Scale = px
	}
}

// DefaultOptions returns the rendering defaults: Scale 6.
func DefaultOptions() Options {
	return Options{Scale: defaultScale}
}
