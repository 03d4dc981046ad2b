// File: impl_adjacency.go
// Role: one-hop distance matrix of a core.Graph.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// FromGraph returns the initial all-pairs matrix of g: 0 on the diagonal,
// the shortest parallel edge for every connected pair, core.Infinity
// elsewhere. Undirected edges fill both (u,v) and (v,u).
//
// A negative self-loop is kept on the diagonal so that FloydWarshall
// reports it as a negative cycle.
//
// Complexity: O(V² + E).
func FromGraph(g *core.Graph) (*Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGraph: %w", ErrGraphNil)
	}

	n := g.Size()
	d := NewDistances(n)
	directed := g.Directed()
	for _, e := range g.Edges() {
		d.relax(e.From, e.To, e.Length)
		if !directed {
			d.relax(e.To, e.From, e.Length)
		}
	}

	return d, nil
}

// relax lowers (i,j) to v when v is smaller. Indices are trusted.
func (m *Dense) relax(i, j int, v int64) {
	if idx := i*m.c + j; v < m.data[idx] {
		m.data[idx] = v
	}
}
