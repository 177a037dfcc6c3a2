package grid

import "fmt"

// neighborOffsets is the fixed probe order for 8-directional adjacency,
// as (row delta, col delta) pairs: SE, E, W, NE, N, S, SW, NW. The order
// is part of the engine's determinism contract and is pinned by tests.
var neighborOffsets = [8][2]int{
	{1, 1},   // SE
	{0, 1},   // E
	{0, -1},  // W
	{-1, 1},  // NE
	{-1, 0},  // N
	{1, 0},   // S
	{1, -1},  // SW
	{-1, -1}, // NW
}

// Grid owns a fixed-size 2D field of cells plus the start and end flags.
// Dimensions are set at construction and never change; a session edits
// walkability and flag positions in place and re-runs searches over the
// same storage.
//
// Grid is not safe for concurrent use. An interactive session owns it
// exclusively; the search engine serializes runs on top of that.
type Grid struct {
	// Rows and Cols are the fixed grid dimensions.
	Rows, Cols int

	cells []Cell // row-major; addresses are stable for the grid's lifetime
	start *Cell
	end   *Cell
}

// New constructs a rows×cols grid with every cell walkable, the start flag
// on (0,0) and the end flag on (rows-1, cols-1).
//
// Returns ErrBadDimensions unless rows > 0, cols > 0, and rows×cols ≥ 2.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 || rows*cols < 2 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, rows, cols)
	}
	g := &Grid{
		Rows:  rows,
		Cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			c := g.at(r, col)
			c.Row, c.Col = r, col
			c.walkable = true
			c.ClearSearchState()
		}
	}
	g.start = g.at(0, 0)
	g.end = g.at(rows-1, cols-1)
	g.start.setRole(RoleStart)
	g.end.setRole(RoleEnd)
	return g, nil
}

// at returns the cell at (row, col) without bounds checking.
func (g *Grid) at(row, col int) *Cell {
	return &g.cells[row*g.Cols+col]
}

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns the cell at (row, col), or ErrOutOfBounds when the coordinate
// lies outside the grid.
func (g *Grid) At(row, col int) (*Cell, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d) on %d×%d", ErrOutOfBounds, row, col, g.Rows, g.Cols)
	}
	return g.at(row, col), nil
}

// Start returns the cell currently holding RoleStart.
func (g *Grid) Start() *Cell { return g.start }

// End returns the cell currently holding RoleEnd.
func (g *Grid) End() *Cell { return g.end }

// MoveStart re-homes the start flag onto (row, col).
//
// Moving the flag onto its current cell is a no-op. Moving it onto the
// cell holding the end flag returns ErrFlagConflict and changes nothing.
// Otherwise the old start cell returns to RolePlain (restoring the
// walkability it had before taking the flag) strictly before the target
// takes RoleStart, so no two cells ever hold the same flag.
func (g *Grid) MoveStart(row, col int) error {
	return g.moveFlag(row, col, RoleStart)
}

// MoveEnd re-homes the end flag onto (row, col), with the same no-op,
// conflict, and ordering rules as MoveStart.
func (g *Grid) MoveEnd(row, col int) error {
	return g.moveFlag(row, col, RoleEnd)
}

// moveFlag implements both flag moves. role is RoleStart or RoleEnd.
func (g *Grid) moveFlag(row, col int, role Role) error {
	target, err := g.At(row, col)
	if err != nil {
		return err
	}
	holder := &g.start
	if role == RoleEnd {
		holder = &g.end
	}
	if target == *holder {
		return nil // moving a flag onto itself changes nothing
	}
	if target.role != RolePlain {
		return fmt.Errorf("%w: (%d,%d) already holds %s", ErrFlagConflict, row, col, target.role)
	}
	(*holder).setRole(RolePlain)
	target.setRole(role)
	*holder = target
	return nil
}

// SetWalkable sets walkability on the cell at (row, col).
//
// Flag cells are rejected with ErrFlagConflict: start and end stay
// walkable for as long as they hold their role. Blocking a cell that is
// already blocked, or clearing one already walkable, is a no-op.
func (g *Grid) SetWalkable(row, col int, walkable bool) error {
	c, err := g.At(row, col)
	if err != nil {
		return err
	}
	if c.role != RolePlain {
		return fmt.Errorf("%w: (%d,%d) holds %s", ErrFlagConflict, row, col, c.role)
	}
	c.walkable = walkable
	return nil
}

// Neighbors returns the walkable in-bounds cells adjacent to c in all
// eight compass directions, probed in the fixed order SE, E, W, NE, N, S,
// SW, NW. Off-grid and blocked positions are skipped; the relative order
// of the survivors is preserved, which keeps search expansion
// deterministic.
func (g *Grid) Neighbors(c *Cell) []*Cell {
	neighbors := make([]*Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nr, nc := c.Row+d[0], c.Col+d[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		if n := g.at(nr, nc); n.walkable {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// Reset clears search bookkeeping (scores, predecessor, mark) on every
// cell. With clearBlocks set, every plain cell is additionally made
// walkable again, wiping painted obstacles. Flag cells keep their role and
// forced walkability either way.
//
// Reset is idempotent: calling it twice with the same argument leaves the
// grid exactly as one call does. Complexity: O(rows×cols).
func (g *Grid) Reset(clearBlocks bool) {
	for i := range g.cells {
		c := &g.cells[i]
		c.ClearSearchState()
		if clearBlocks && c.role == RolePlain {
			c.walkable = true
		}
	}
}

// ForEach invokes fn for every cell in row-major order: the enumeration
// surface renderers draw from. Complexity: O(rows×cols).
func (g *Grid) ForEach(fn func(*Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}
