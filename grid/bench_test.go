package grid_test

import (
	"testing"

	"github.com/katalvlaran/beamgrid/grid"
)

// BenchmarkNeighbors measures Conn8 neighbour enumeration over a 1000×1000 grid.
// Complexity: O(W×H×d)
func BenchmarkNeighbors(b *testing.B) {
	const n = 1000
	rows := make([][]uint8, n)
	for y := range rows {
		rows[y] = make([]uint8, n)
	}
	g, err := grid.New(rows)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for idx := 0; idx < g.Size(); idx++ {
			_ = g.Neighbors(g.Coordinate(idx), grid.Conn8)
		}
	}
}
