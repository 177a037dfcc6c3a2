package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/grid"
)

// cellAt is a test helper that fails fast on bad coordinates.
func cellAt(t *testing.T, g *grid.Grid, row, col int) *grid.Cell {
	t.Helper()
	c, err := g.At(row, col)
	require.NoError(t, err)
	return c
}

// TestCellOrthogonalTo distinguishes 4-directional neighbors from diagonal
// and distant cells.
func TestCellOrthogonalTo(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)
	center := cellAt(t, g, 2, 2)

	cases := []struct {
		name     string
		row, col int
		want     bool
	}{
		{"East", 2, 3, true},
		{"West", 2, 1, true},
		{"North", 1, 2, true},
		{"South", 3, 2, true},
		{"DiagonalSE", 3, 3, false},
		{"DiagonalNW", 1, 1, false},
		{"TwoAway", 2, 4, false},
		{"Self", 2, 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other := cellAt(t, g, tc.row, tc.col)
			assert.Equal(t, tc.want, center.OrthogonalTo(other))
			assert.Equal(t, tc.want, other.OrthogonalTo(center), "orthogonality must be symmetric")
		})
	}
}

// TestCellStepCost pins the 10/14 weighted move costs.
func TestCellStepCost(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)
	c := cellAt(t, g, 1, 1)

	assert.Equal(t, 10.0, c.StepCost(cellAt(t, g, 1, 2)), "orthogonal move")
	assert.Equal(t, 10.0, c.StepCost(cellAt(t, g, 0, 1)), "orthogonal move")
	assert.Equal(t, 14.0, c.StepCost(cellAt(t, g, 2, 2)), "diagonal move")
	assert.Equal(t, 14.0, c.StepCost(cellAt(t, g, 0, 0)), "diagonal move")
}

// TestCellClearSearchState drops scores, predecessor, and mark while
// leaving identity, walkability, and role alone.
func TestCellClearSearchState(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	c := cellAt(t, g, 1, 2)
	p := cellAt(t, g, 0, 1)

	c.SetScores(7, 9.5)
	c.SetPredecessor(p)
	c.SetMark(grid.MarkFrontier)

	c.ClearSearchState()

	assert.True(t, math.IsInf(c.GScore(), 1))
	assert.True(t, math.IsInf(c.FScore(), 1))
	assert.Nil(t, c.Predecessor())
	assert.Equal(t, grid.MarkNone, c.Mark())
	assert.True(t, c.Walkable())
	assert.Equal(t, grid.RolePlain, c.Role())
	assert.Equal(t, grid.Coord{Row: 1, Col: 2}, c.Coord())
}

// TestCellStrings covers the display forms used in diagnostics.
func TestCellStrings(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	assert.Equal(t, "Cell(1,2)", cellAt(t, g, 1, 2).String())
	assert.Equal(t, "(1,2)", (grid.Coord{Row: 1, Col: 2}).String())
	assert.Equal(t, "Start", grid.RoleStart.String())
	assert.Equal(t, "End", grid.RoleEnd.String())
	assert.Equal(t, "Plain", grid.RolePlain.String())
	assert.Equal(t, "Frontier", grid.MarkFrontier.String())
	assert.Equal(t, "Visited", grid.MarkVisited.String())
	assert.Equal(t, "Path", grid.MarkPath.String())
	assert.Equal(t, "None", grid.MarkNone.String())
}
