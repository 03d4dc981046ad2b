package pqueue_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/shortpath/pqueue"
)

// ExampleQueue shows the Fill → DecreaseKey → PopMin cycle Dijkstra relies on.
func ExampleQueue() {
	q := pqueue.New[string](4)
	q.Fill() // every index starts at +∞

	q.DecreaseKey(2, 7, "via 0")
	q.DecreaseKey(1, 3, "via 0")
	q.DecreaseKey(2, 4, "via 1") // improves 7 → 4
	q.DecreaseKey(2, 9, "via 3") // ignored: not smaller

	for i := 0; i < 2; i++ {
		it, _ := q.PopMin()
		fmt.Printf("%d key=%d %s\n", it.Index, it.Key, it.Payload)
	}
	// Output:
	// 1 key=3 via 0
	// 2 key=4 via 1
}

// BenchmarkQueue_FillDecreasePop measures a full Dijkstra-like cycle over n indices.
func BenchmarkQueue_FillDecreasePop(b *testing.B) {
	const n = 4096
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := pqueue.New[int](n)
		q.Fill()
		for j := 0; j < n; j++ {
			q.DecreaseKey(j, int64((j*7919)%n), j)
		}
		for q.Len() > 0 {
			if _, err := q.PopMin(); err != nil {
				b.Fatal(err)
			}
		}
	}
}
