package astar_test

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/astar"
	"github.com/katalvlaran/pathgrid/grid"
)

// ExampleFindPath solves a 3×3 field with a blocked center: the route
// slides around the obstacle through the east side.
func ExampleFindPath() {
	g, _ := grid.New(3, 3)
	_ = g.SetWalkable(1, 1, false)

	res, _ := astar.FindPath(g)

	fmt.Println("found:", res.Found)
	fmt.Println("path:", res.Path)
	fmt.Println("cost:", res.Cost)
	// Output:
	// found: true
	// path: [(0,0) (0,1) (1,2) (2,2)]
	// cost: 3
}

// ExampleFinder_FindPath watches a run through the OnStep hook and reads
// the finder's terminal state afterwards.
func ExampleFinder_FindPath() {
	g, _ := grid.New(3, 3)
	_ = g.SetWalkable(1, 1, false)
	f, _ := astar.NewFinder(g)

	visited := 0
	res, _ := f.FindPath(astar.WithOnStep(func(_ *grid.Cell, kind grid.Mark) {
		if kind == grid.MarkVisited {
			visited++
		}
	}))

	fmt.Println("state:", f.State())
	fmt.Println("visited:", visited)
	fmt.Println("path cells:", len(res.Path))
	// Output:
	// state: Found
	// visited: 4
	// path cells: 4
}

// ExampleFindPath_exhausted shows the no-path outcome: a sealed end
// produces a plain result, not an error.
func ExampleFindPath_exhausted() {
	g, _ := grid.New(3, 3)
	_ = g.SetWalkable(1, 1, false)
	_ = g.SetWalkable(1, 2, false)
	_ = g.SetWalkable(2, 1, false)

	res, err := astar.FindPath(g)

	fmt.Println("found:", res.Found)
	fmt.Println("err:", err)
	// Output:
	// found: false
	// err: <nil>
}
