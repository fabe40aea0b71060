// Package render rasterizes a terrain grid and a computed route into an
// image: sand in yellow, mud in
// dark goldenrod, asphalt in black, the route in red, with per-cell
// brightness shaded by normalized height in place of contour lines.
//
// The package is a pure consumer of the planner's outputs — it reads the
// grid and the ordered route and never feeds anything back into the search.
//
// Options:
//
//   - WithScale(px): side length of one cell in pixels (default 6).
//
// Errors:
//
//   - ErrNilGrid:      the grid is nil.
//   - ErrBadScale:     WithScale received a value below 1.
//   - ErrRouteOffGrid: a route coordinate lies outside the grid.
package render
