package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/colornames"

	"github.com/torvenlabs/terrainroute/terrain"
)

// Image rasterizes g with route overlaid on top. Each cell becomes a
// Scale×Scale block colored by its terrain class and lightened in
// proportion to its normalized height; route cells are painted red, the
// route's first cell green and its last cell blue.
//
// A nil or empty route renders the bare grid. Returns ErrNilGrid,
// ErrBadScale or ErrRouteOffGrid (with coordinate context) on bad input.
//
// Complexity: O(N²·Scale²) time, one RGBA allocation of the same size.
func Image(g *terrain.Grid, route []terrain.Coord, opts ...Option) (image.Image, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if cfg.Scale < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadScale, cfg.Scale)
	}
	for _, c := range route {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v", ErrRouteOffGrid, c)
		}
	}

	// 2) Height range for brightness shading.
	cells := g.Cells()
	minH, maxH := heightRange(cells)

	// 3) Paint the terrain layer.
	n := g.Size()
	img := image.NewRGBA(image.Rect(0, 0, n*cfg.Scale, n*cfg.Scale))
	for _, cell := range cells {
		col := shade(terrainColor(cell.Terrain), normalize(cell.Height, minH, maxH))
		fillCell(img, cell.X, cell.Y, cfg.Scale, col)
	}

	// 4) Overlay the route, endpoints last so they stay visible on short routes.
	for _, c := range route {
		fillCell(img, c.X, c.Y, cfg.Scale, colornames.Red)
	}
	if len(route) > 0 {
		fillCell(img, route[0].X, route[0].Y, cfg.Scale, colornames.Green)
		last := route[len(route)-1]
		fillCell(img, last.X, last.Y, cfg.Scale, colornames.Blue)
	}

	return img, nil
}

// WritePNG renders g and route as Image does and PNG-encodes the result to w.
func WritePNG(w io.Writer, g *terrain.Grid, route []terrain.Coord, opts ...Option) error {
	img, err := Image(g, route, opts...)
	if err != nil {
		return err
	}

	return png.Encode(w, img)
}

// terrainColor maps a terrain class to its display color.
func terrainColor(t terrain.Terrain) color.RGBA {
	switch t {
	case terrain.Mud:
		return colornames.Darkgoldenrod
	case terrain.Asphalt:
		return colornames.Black
	default:
		return colornames.Yellow
	}
}

// heightRange returns the minimum and maximum cell height.
func heightRange(cells []terrain.Cell) (float64, float64) {
	minH, maxH := cells[0].Height, cells[0].Height
	for _, c := range cells[1:] {
		if c.Height < minH {
			minH = c.Height
		}
		if c.Height > maxH {
			maxH = c.Height
		}
	}

	return minH, maxH
}

// normalize maps h into [0,1] over the grid's height range.
// A flat grid maps everything to 0 (no shading).
func normalize(h, minH, maxH float64) float64 {
	if maxH <= minH {
		return 0
	}

	return (h - minH) / (maxH - minH)
}

// shadeMax caps how far shading lightens a cell toward white, keeping the
// terrain classes distinguishable at the highest elevations.
const shadeMax = 0.35

// shade lightens c toward white by t·shadeMax, t in [0,1].
func shade(c color.RGBA, t float64) color.RGBA {
	f := t * shadeMax
	lighten := func(v uint8) uint8 {
		return v + uint8(f*float64(255-v))
	}

	return color.RGBA{R: lighten(c.R), G: lighten(c.G), B: lighten(c.B), A: 255}
}

// fillCell paints the Scale×Scale block of cell (x,y).
func fillCell(img *image.RGBA, x, y, scale int, col color.RGBA) {
	for py := y * scale; py < (y+1)*scale; py++ {
		for px := x * scale; px < (x+1)*scale; px++ {
			img.SetRGBA(px, py, col)
		}
	}
}
