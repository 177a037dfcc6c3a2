package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathgrid/grid"
)

// BenchmarkNeighbors measures the 8-way neighbor probe on an interior cell
// of an open field.
func BenchmarkNeighbors(b *testing.B) {
	const M = 100
	g, err := grid.New(M, M)
	if err != nil {
		b.Fatal(err)
	}
	c, err := g.At(M/2, M/2)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(c)
	}
}

// BenchmarkNeighbors_HalfBlocked measures the probe on terrain where about
// half the cells are blocked.
func BenchmarkNeighbors_HalfBlocked(b *testing.B) {
	const M = 100
	g, err := grid.New(M, M)
	if err != nil {
		b.Fatal(err)
	}
	rnd := rand.New(rand.NewSource(42))
	g.ForEach(func(c *grid.Cell) {
		if c.Role() == grid.RolePlain && rnd.Intn(2) == 0 {
			_ = g.SetWalkable(c.Row, c.Col, false)
		}
	})
	c, err := g.At(M/2, M/2)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(c)
	}
}

// BenchmarkReset measures the full-field bookkeeping wipe between runs.
func BenchmarkReset(b *testing.B) {
	const M = 256
	g, err := grid.New(M, M)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(M * M))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Reset(false)
	}
}
