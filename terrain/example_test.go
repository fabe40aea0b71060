package terrain_test

import (
	"fmt"

	"github.com/torvenlabs/terrainroute/terrain"
)

// ExampleNew builds a tiny grid from an explicit producer and looks a cell up.
func ExampleNew() {
	g, err := terrain.New(2, func(x, y int) (terrain.Terrain, float64) {
		return terrain.Asphalt, float64(y)
	})
	if err != nil {
		panic(err)
	}

	cell, _ := g.At(terrain.Coord{X: 1, Y: 1})
	fmt.Println(g.Size(), cell.Terrain, cell.Height)
	// Output: 2 asphalt 1
}

// ExampleGenerate shows that a (size, seed) pair names a grid exactly.
func ExampleGenerate() {
	a, _ := terrain.Generate(50, terrain.WithSeed(7))
	b, _ := terrain.Generate(50, terrain.WithSeed(7))

	same := true
	for i, cell := range a.Cells() {
		if b.Cells()[i] != cell {
			same = false
			break
		}
	}
	fmt.Println(same)
	// Output: true
}
