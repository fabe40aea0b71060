// Command terrainroute generates a synthetic terrain grid, plans the
// cheapest route across it and optionally renders the result to a PNG.
//
// Usage:
//
//	terrainroute -size 100 -start 0,0 -target 50,50 -seed 7 -out route.png
//
// The three coordinates knobs (-size, -start, -target) plus -seed fully
// determine the run; the same flags always produce the same route.
package main

import (
	"errors"
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/torvenlabs/terrainroute/astar"
	"github.com/torvenlabs/terrainroute/cost"
	"github.com/torvenlabs/terrainroute/render"
	"github.com/torvenlabs/terrainroute/terrain"
)

func main() {
	var (
		size     = flag.Int("size", 100, "grid side length")
		startArg = flag.String("start", "0,0", `start cell as "x,y"`)
		endArg   = flag.String("target", "50,50", `target cell as "x,y"`)
		seed     = flag.Int64("seed", 0, "terrain seed (0 = fixed default)")
		out      = flag.String("out", "", "PNG output path (empty = no render)")
		uninf    = flag.Bool("dijkstra", false, "disable the heuristic (uniform-cost search)")
	)
	flag.Parse()

	start, err := terrain.ParseCoord(*startArg)
	if err != nil {
		log.WithError(err).Fatal("bad -start")
	}
	target, err := terrain.ParseCoord(*endArg)
	if err != nil {
		log.WithError(err).Fatal("bad -target")
	}

	grid, err := terrain.Generate(*size, terrain.WithSeed(*seed))
	if err != nil {
		log.WithError(err).Fatal("terrain generation failed")
	}
	model, err := cost.New()
	if err != nil {
		log.WithError(err).Fatal("cost model rejected")
	}

	var opts []astar.Option
	if *uninf {
		opts = append(opts, astar.WithoutHeuristic())
	}

	route, err := astar.FindPath(grid, model, start, target, opts...)
	switch {
	case errors.Is(err, astar.ErrNoPath):
		// A missing route is an answer, not a failure.
		log.WithFields(log.Fields{"start": start, "target": target}).Warn("no route exists")

		return
	case err != nil:
		log.WithError(err).Fatal("search failed")
	}

	log.WithFields(log.Fields{
		"size":   *size,
		"seed":   *seed,
		"start":  start,
		"target": target,
		"steps":  len(route.Coords) - 1,
		"cost":   route.Cost,
	}).Info("route found")

	if *out == "" {
		return
	}
	f, err := os.Create(*out)
	if err != nil {
		log.WithError(err).Fatal("cannot create output file")
	}
	defer f.Close()
	if err := render.WritePNG(f, grid, route.Coords); err != nil {
		log.WithError(err).Fatal("render failed")
	}
	log.WithField("out", *out).Info("rendered")
}
