// Package dijkstra_test provides runnable examples and benchmarks.
package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
)

// ExampleDijkstra computes distances on an undirected triangle.
func ExampleDijkstra() {
	g, _ := core.NewGraph(3, []core.Edge{
		{From: 0, To: 1, Length: 1},
		{From: 1, To: 2, Length: 2},
		{From: 0, To: 2, Length: 5},
	}, false)

	dist, prev, err := dijkstra.Dijkstra(g.OutgoingAdjacency(), 0, dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist, prev)
	// Output: [0 1 3] [-1 0 1]
}

// ExampleDijkstraWithReweighting runs over lengths reweighted by p and
// reports distances in the original, partly negative, lengths.
func ExampleDijkstraWithReweighting() {
	// Original lengths: 0→1 = -2, 1→2 = 3, 0→2 = 2.
	g, _ := core.NewGraph(3, []core.Edge{
		{From: 0, To: 1, Length: -2},
		{From: 1, To: 2, Length: 3},
		{From: 0, To: 2, Length: 2},
	}, true)
	p := []int64{0, -2, 0}
	_ = g.Reweight(p) // 0→1 = 0, 1→2 = 1, 0→2 = 2

	dist, _, err := dijkstra.DijkstraWithReweighting(g.OutgoingAdjacency(), 0, p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)
	// Output: [0 -2 1]
}

func BenchmarkDijkstra_RandomSparse(b *testing.B) {
	g, err := builder.BuildGraph(true,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeightFn(builder.UniformWeightFn(1, 100))},
		builder.RandomSparse(500, 0.02))
	if err != nil {
		b.Fatal(err)
	}
	adj := g.OutgoingAdjacency()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err = dijkstra.Dijkstra(adj, i%500); err != nil {
			b.Fatal(err)
		}
	}
}
