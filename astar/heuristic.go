package astar

import (
	"math"

	"github.com/katalvlaran/pathgrid/grid"
)

// weightScale aligns heuristic units with the weighted step costs
// (orthogonal 10, diagonal 14 ≈ 10·√2).
const weightScale = 10

// Heuristic estimates the remaining cost from cell a to cell b. To
// guarantee lowest-cost paths the estimate must never exceed the true
// remaining cost under the active cost model.
type Heuristic func(a, b *grid.Cell) float64

// DiagonalDistance is the 8-directional straight-line distance with unit
// orthogonal moves and √2 diagonal moves:
//
//	dx = |a.Row − b.Row|,  dy = |a.Col − b.Col|
//	min(dx, dy)·√2 + |dx − dy|
//
// On an obstacle-free field this is the exact remaining distance, which
// makes it (scaled) admissible and consistent for WeightedSteps. It is
// the paired default of both cost models.
func DiagonalDistance(a, b *grid.Cell) float64 {
	dx := math.Abs(float64(a.Row - b.Row))
	dy := math.Abs(float64(a.Col - b.Col))
	return math.Min(dx, dy)*math.Sqrt2 + math.Abs(dx-dy)
}

// weightedDiagonalDistance is DiagonalDistance scaled to the 10/14 step
// weights; the WeightedSteps default.
func weightedDiagonalDistance(a, b *grid.Cell) float64 {
	return DiagonalDistance(a, b) * weightScale
}

// ManhattanDistance is the 4-directional distance |dx| + |dy|. On an
// 8-directional field it overestimates across diagonals and therefore
// forfeits path optimality; it is kept for experimentation via
// WithHeuristic and is not a default of any cost model.
func ManhattanDistance(a, b *grid.Cell) float64 {
	dx := math.Abs(float64(a.Row - b.Row))
	dy := math.Abs(float64(a.Col - b.Col))
	return dx + dy
}
