package grid_test

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/grid"
)

// ExampleGrid_Neighbors blocks the center of a 3×3 field and lists the
// start cell's remaining neighbors in probe order.
func ExampleGrid_Neighbors() {
	g, _ := grid.New(3, 3)
	_ = g.SetWalkable(1, 1, false)

	for _, n := range g.Neighbors(g.Start()) {
		fmt.Println(n.Coord())
	}
	// Output:
	// (0,1)
	// (1,0)
}

// ExampleGrid_MoveStart shows the walkability memory of flag cells: a flag
// forces its cell open and the old block returns when the flag leaves.
func ExampleGrid_MoveStart() {
	g, _ := grid.New(4, 4)
	_ = g.SetWalkable(2, 2, false)

	_ = g.MoveStart(2, 2)
	fmt.Println(g.Start().Coord(), g.Start().Walkable())

	_ = g.MoveStart(0, 0)
	c, _ := g.At(2, 2)
	fmt.Println(c.Walkable())
	// Output:
	// (2,2) true
	// false
}
