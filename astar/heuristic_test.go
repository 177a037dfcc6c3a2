package astar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/astar"
	"github.com/katalvlaran/pathgrid/grid"
)

const epsilon = 1e-9

// TestDiagonalDistance checks the min(dx,dy)·√2 + |dx−dy| form across
// straight, diagonal, and mixed displacements.
func TestDiagonalDistance(t *testing.T) {
	g, err := grid.New(6, 6)
	require.NoError(t, err)
	at := func(r, c int) *grid.Cell {
		cell, err := g.At(r, c)
		require.NoError(t, err)
		return cell
	}

	cases := []struct {
		name string
		a, b *grid.Cell
		want float64
	}{
		{"Same", at(2, 2), at(2, 2), 0},
		{"EastOnly", at(0, 0), at(0, 4), 4},
		{"SouthOnly", at(0, 0), at(3, 0), 3},
		{"PureDiagonal", at(0, 0), at(4, 4), 4 * math.Sqrt2},
		{"Mixed", at(0, 0), at(2, 5), 2*math.Sqrt2 + 3},
		{"MixedFlipped", at(5, 1), at(1, 2), math.Sqrt2 + 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, astar.DiagonalDistance(tc.a, tc.b), epsilon)
			assert.InDelta(t, tc.want, astar.DiagonalDistance(tc.b, tc.a), epsilon, "must be symmetric")
		})
	}
}

// TestManhattanDistance checks the |dx| + |dy| form and its known
// overestimate across diagonals.
func TestManhattanDistance(t *testing.T) {
	g, err := grid.New(6, 6)
	require.NoError(t, err)
	a, err := g.At(0, 0)
	require.NoError(t, err)
	b, err := g.At(4, 4)
	require.NoError(t, err)
	c, err := g.At(0, 3)
	require.NoError(t, err)

	assert.InDelta(t, 8, astar.ManhattanDistance(a, b), epsilon)
	assert.InDelta(t, 3, astar.ManhattanDistance(a, c), epsilon)

	// Along a pure diagonal Manhattan exceeds the true 8-way distance.
	assert.Greater(t, astar.ManhattanDistance(a, b), astar.DiagonalDistance(a, b))
}
