package pathfind_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pathfind"
)

func benchmarkOpenGrid(b *testing.B, mode pathfind.Mode) {
	const n = 100
	g, err := gridgraph.New(n, 6)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	_ = g.SetStart(0, 0)
	_ = g.AddEnd(n-1, n-1)
	g.RefreshNeighbors(mode.Connectivity())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pathfind.Search(g, g.Start(), g.End(0), pathfind.WithMode(mode)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSearch_Dijkstra expands nearly all 10⁴ cells.
func BenchmarkSearch_Dijkstra(b *testing.B) { benchmarkOpenGrid(b, pathfind.Dijkstra) }

// BenchmarkSearch_AStar walks the diagonal directly.
func BenchmarkSearch_AStar(b *testing.B) { benchmarkOpenGrid(b, pathfind.AStar) }
