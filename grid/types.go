// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/katalvlaran/pathgrid.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a grid was requested with a non-positive
	// dimension or with fewer than two cells; a grid must host distinct
	// start and end cells.
	ErrBadDimensions = errors.New("grid: dimensions must be positive and yield at least two cells")
	// ErrOutOfBounds indicates a (row, col) pair outside [0,rows)×[0,cols).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrFlagConflict indicates an operation that would corrupt the flag
	// invariant: blocking a flag cell, or moving one flag onto the cell
	// currently holding the other.
	ErrFlagConflict = errors.New("grid: operation conflicts with start/end flags")
)

// Role labels the special function a cell plays on the grid. Exactly one
// cell holds RoleStart and exactly one holds RoleEnd at all times.
type Role uint8

const (
	// RolePlain marks an ordinary cell with no special function.
	RolePlain Role = iota
	// RoleStart marks the cell a search departs from.
	RoleStart
	// RoleEnd marks the cell a search aims for.
	RoleEnd
)

// String returns the human-readable role name.
func (r Role) String() string {
	switch r {
	case RoleStart:
		return "Start"
	case RoleEnd:
		return "End"
	default:
		return "Plain"
	}
}

// Mark records the most recent search observation on a cell, for rendering
// and inspection. The search engine stamps marks as it progresses;
// Grid.Reset clears them.
type Mark uint8

const (
	// MarkNone is the default mark of a cell untouched by the search.
	MarkNone Mark = iota
	// MarkFrontier marks a cell discovered and queued but not yet expanded.
	MarkFrontier
	// MarkVisited marks a cell popped from the frontier and expanded.
	MarkVisited
	// MarkPath marks a cell on the reconstructed start-to-end path.
	MarkPath
)

// String returns the human-readable mark name.
func (m Mark) String() string {
	switch m {
	case MarkFrontier:
		return "Frontier"
	case MarkVisited:
		return "Visited"
	case MarkPath:
		return "Path"
	default:
		return "None"
	}
}

// Coord is a bare (row, col) grid position, the element type of search
// paths.
type Coord struct {
	Row, Col int
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
