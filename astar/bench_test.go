package astar_test

import (
	"testing"

	"github.com/katalvlaran/pathgrid/astar"
	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/maze"
)

// BenchmarkFindPath_Open measures a corner-to-corner run on an open M×M
// field, the best case for the diagonal heuristic.
func BenchmarkFindPath_Open(b *testing.B) {
	const M = 100
	g, err := grid.New(M, M)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(M * M))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.FindPath(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFindPath_Walled forces a long detour: a wall across the field
// with a single gap at the far edge.
func BenchmarkFindPath_Walled(b *testing.B) {
	const M = 100
	g, err := grid.New(M, M)
	if err != nil {
		b.Fatal(err)
	}
	for col := 0; col < M-1; col++ {
		if err := g.SetWalkable(M/2, col, false); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportAllocs()
	b.SetBytes(int64(M * M))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.FindPath(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFindPath_Maze runs through carved corridors, the worst case for
// straight-line guidance.
func BenchmarkFindPath_Maze(b *testing.B) {
	const M = 101
	g, err := grid.New(M, M)
	if err != nil {
		b.Fatal(err)
	}
	if err := maze.Carve(g, maze.WithSeed(42), maze.WithBraiding(0.1)); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(M * M))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.FindPath(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFindPath_Weighted measures the 10/14 cost model on the open
// field.
func BenchmarkFindPath_Weighted(b *testing.B) {
	const M = 100
	g, err := grid.New(M, M)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(M * M))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.FindPath(g, astar.WithCostModel(astar.WeightedSteps)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFindPath_HookOverhead compares a silent run against one with a
// busy OnStep hook.
func BenchmarkFindPath_HookOverhead(b *testing.B) {
	const M = 64
	g, err := grid.New(M, M)
	if err != nil {
		b.Fatal(err)
	}

	b.Run("NoHook", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = astar.FindPath(g)
		}
	})

	b.Run("BusyHook", func(b *testing.B) {
		busy := func(_ *grid.Cell, _ grid.Mark) {
			sum := 0
			for i := 0; i < 100; i++ {
				sum += i
			}
			_ = sum
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = astar.FindPath(g, astar.WithOnStep(busy))
		}
	})
}
