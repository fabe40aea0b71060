// Command routeview displays a generated terrain grid and its planned
// route in the terminal: one colored cell per grid cell, route in red,
// 'S' and 'T' marking the endpoints.
//
// Keys: arrows pan across grids larger than the window, q or ESC quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/torvenlabs/terrainroute/astar"
	"github.com/torvenlabs/terrainroute/cost"
	"github.com/torvenlabs/terrainroute/terrain"
)

type viewer struct {
	screen tcell.Screen
	grid   *terrain.Grid
	onPath map[terrain.Coord]bool
	start  terrain.Coord
	target terrain.Coord
	// top-left grid cell currently shown
	offX, offY int
}

func main() {
	var (
		size     = flag.Int("size", 60, "grid side length")
		startArg = flag.String("start", "0,0", `start cell as "x,y"`)
		endArg   = flag.String("target", "30,30", `target cell as "x,y"`)
		seed     = flag.Int64("seed", 0, "terrain seed (0 = fixed default)")
	)
	flag.Parse()

	if err := run(*size, *startArg, *endArg, *seed); err != nil {
		fmt.Fprintln(os.Stderr, "routeview:", err)
		os.Exit(1)
	}
}

func run(size int, startArg, endArg string, seed int64) error {
	start, err := terrain.ParseCoord(startArg)
	if err != nil {
		return err
	}
	target, err := terrain.ParseCoord(endArg)
	if err != nil {
		return err
	}

	grid, err := terrain.Generate(size, terrain.WithSeed(seed))
	if err != nil {
		return err
	}
	model, err := cost.New()
	if err != nil {
		return err
	}

	onPath := make(map[terrain.Coord]bool)
	route, err := astar.FindPath(grid, model, start, target)
	switch {
	case errors.Is(err, astar.ErrNoPath):
		// Show the bare grid; the viewer is still useful without a route.
	case err != nil:
		return err
	default:
		for _, c := range route.Coords {
			onPath[c] = true
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := &viewer{
		screen: screen,
		grid:   grid,
		onPath: onPath,
		start:  start,
		target: target,
	}
	v.loop()

	return nil
}

// loop redraws after every event until the user quits.
func (v *viewer) loop() {
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey pans the view or quits; returns true to exit.
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return true
	case tcell.KeyLeft:
		v.pan(-1, 0)
	case tcell.KeyRight:
		v.pan(1, 0)
	case tcell.KeyUp:
		v.pan(0, -1)
	case tcell.KeyDown:
		v.pan(0, 1)
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return true
		}
	}

	return false
}

// pan shifts the viewport, clamped so it never leaves the grid.
func (v *viewer) pan(dx, dy int) {
	w, h := v.screen.Size()
	maxX := v.grid.Size() - w
	maxY := v.grid.Size() - h
	v.offX = clamp(v.offX+dx, 0, maxX)
	v.offY = clamp(v.offY+dy, 0, maxY)
}

func clamp(val, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}

	return val
}

func (v *viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	n := v.grid.Size()
	for sy := 0; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			c := terrain.Coord{X: v.offX + sx, Y: v.offY + sy}
			if c.X >= n || c.Y >= n {
				continue
			}
			cell, err := v.grid.At(c)
			if err != nil {
				continue
			}

			style := tcell.StyleDefault.Background(terrainBG(cell.Terrain))
			ch := ' '
			switch {
			case c == v.start:
				style = style.Foreground(tcell.ColorWhite).Background(tcell.ColorGreen)
				ch = 'S'
			case c == v.target:
				style = style.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue)
				ch = 'T'
			case v.onPath[c]:
				style = style.Background(tcell.ColorRed)
			}
			v.screen.SetContent(sx, sy, ch, nil, style)
		}
	}
	v.screen.Show()
}

// terrainBG maps terrain classes to their display colors.
func terrainBG(t terrain.Terrain) tcell.Color {
	switch t {
	case terrain.Mud:
		return tcell.ColorDarkGoldenrod
	case terrain.Asphalt:
		return tcell.ColorBlack
	default:
		return tcell.ColorYellow
	}
}
