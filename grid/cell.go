package grid

import (
	"fmt"
	"math"
)

// Weighted movement costs between adjacent cells: orthogonal = 10,
// diagonal = 14 (≈ 10·√2). Used only by cost models that charge StepCost.
const (
	costOrthogonal = 10
	costDiagonal   = 14
)

// Cell is the atomic grid unit: an immutable (Row, Col) identity plus
// walkability, an optional flag role, and per-search bookkeeping.
//
// Cells are created once by New and live in stable storage for the grid's
// whole lifetime, so *Cell pointers remain valid across searches and
// edits. Walkability and role change only through Grid editing operations;
// scores, predecessor, and mark are written by the search engine during a
// run and cleared by Grid.Reset.
type Cell struct {
	// Row and Col identify the cell's fixed position on its grid.
	Row, Col int

	walkable   bool
	wasBlocked bool // walkability remembered while a flag role is held
	role       Role

	gScore float64
	fScore float64
	prev   *Cell
	mark   Mark
}

// Walkable reports whether a search may traverse this cell.
func (c *Cell) Walkable() bool { return c.walkable }

// Role returns the flag role currently held by the cell.
func (c *Cell) Role() Role { return c.role }

// Mark returns the most recent search observation stamped on the cell.
func (c *Cell) Mark() Mark { return c.mark }

// SetMark stamps a search observation on the cell.
func (c *Cell) SetMark(m Mark) { c.mark = m }

// GScore returns the best known cost from the start cell, +Inf while the
// cell is unreached in the current run.
func (c *Cell) GScore() float64 { return c.gScore }

// FScore returns GScore plus the heuristic estimate to the end cell: the
// cell's priority in the search frontier. +Inf while unreached.
func (c *Cell) FScore() float64 { return c.fScore }

// SetScores overwrites both search scores at once.
func (c *Cell) SetScores(gScore, fScore float64) {
	c.gScore, c.fScore = gScore, fScore
}

// Predecessor returns the previous cell on the best known path from the
// start: nil for the start cell and for unreached cells.
func (c *Cell) Predecessor() *Cell { return c.prev }

// SetPredecessor records the previous cell on the best known path.
func (c *Cell) SetPredecessor(p *Cell) { c.prev = p }

// Coord returns the cell's position as a Coord value.
func (c *Cell) Coord() Coord { return Coord{Row: c.Row, Col: c.Col} }

// String formats the cell as "Cell(row,col)".
func (c *Cell) String() string {
	return fmt.Sprintf("Cell(%d,%d)", c.Row, c.Col)
}

// OrthogonalTo reports whether other is exactly one row or one column away
// but not both: a 4-directional neighbor of c.
func (c *Cell) OrthogonalTo(other *Cell) bool {
	dr, dc := c.Row-other.Row, c.Col-other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// StepCost returns the weighted movement cost from c to an adjacent cell:
// 10 for orthogonal moves, 14 for diagonal moves. Only meaningful for the
// eight cells adjacent to c.
func (c *Cell) StepCost(other *Cell) float64 {
	if c.OrthogonalTo(other) {
		return costOrthogonal
	}
	return costDiagonal
}

// ClearSearchState resets both scores to +Inf and drops the predecessor
// link and mark, returning the cell to its pre-search bookkeeping state.
// Walkability and role are untouched.
func (c *Cell) ClearSearchState() {
	c.gScore = math.Inf(1)
	c.fScore = math.Inf(1)
	c.prev = nil
	c.mark = MarkNone
}

// setRole performs a role transition while keeping the walkability
// contract: taking a flag role remembers the current walkability and
// forces the cell walkable; returning to RolePlain restores the
// remembered value. Grid guarantees transitions only happen between
// RolePlain and a flag role.
func (c *Cell) setRole(r Role) {
	if c.role == r {
		return
	}
	if r == RolePlain {
		c.walkable = !c.wasBlocked
		c.wasBlocked = false
	} else {
		c.wasBlocked = !c.walkable
		c.walkable = true
	}
	c.role = r
}
