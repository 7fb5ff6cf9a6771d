package core_test

import (
	"testing"

	"github.com/katalvlaran/planarsep/core"
)

// gridAdjacency returns the rows×cols grid with rotations right, up, left, down.
func gridAdjacency(rows, cols int) [][]int {
	adj := make([][]int, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := r*cols + c
			if c+1 < cols {
				adj[v] = append(adj[v], v+1)
			}
			if r+1 < rows {
				adj[v] = append(adj[v], v+cols)
			}
			if c > 0 {
				adj[v] = append(adj[v], v-1)
			}
			if r > 0 {
				adj[v] = append(adj[v], v-cols)
			}
		}
	}
	return adj
}

// BenchmarkFromOrderedAdjacencies_Grid measures construction on a 100×100 grid.
func BenchmarkFromOrderedAdjacencies_Grid(b *testing.B) {
	adj := gridAdjacency(100, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.FromOrderedAdjacencies(adj)
	}
}

// BenchmarkSubgraph_Grid measures subgraph extraction dropping every 3rd edge.
func BenchmarkSubgraph_Grid(b *testing.B) {
	g, err := core.FromOrderedAdjacencies(gridAdjacency(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	vMask := core.Filled(true, g.Size())
	eMask := alternatingMask(g.EdgesCount(), 3)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = g.Subgraph(vMask, eMask)
	}
}
