package maze_test

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/astar"
	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/maze"
)

// ExampleCarve carves a small perfect maze. Whatever the seed, an
// unbraided carve on 7×7 opens exactly the 9 rooms, the 8 spanning-tree
// walls between them, and keeps the two flag cells.
func ExampleCarve() {
	g, _ := grid.New(7, 7)
	_ = maze.Carve(g, maze.WithSeed(3))

	open := 0
	g.ForEach(func(c *grid.Cell) {
		if c.Walkable() {
			open++
		}
	})
	fmt.Println("open cells:", open)
	// Output:
	// open cells: 19
}

// ExampleCarve_solve carves and immediately searches the terrain.
func ExampleCarve_solve() {
	g, _ := grid.New(15, 15)
	_ = maze.Carve(g, maze.WithSeed(42), maze.WithBraiding(0.2))

	res, err := astar.FindPath(g)
	fmt.Println("found:", res.Found, "err:", err)
	// Output:
	// found: true err: <nil>
}
