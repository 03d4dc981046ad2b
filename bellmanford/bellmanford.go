package bellmanford

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// Sentinel errors returned by the Bellman-Ford implementation.
var (
	// ErrNilGraph indicates a nil adjacency or graph argument.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrWrongProjection indicates that the adjacency is not grouped by
	// incoming arcs, which the relaxation walks per target vertex.
	ErrWrongProjection = errors.New("bellmanford: incoming adjacency required")

	// ErrSourceOutOfRange indicates a source vertex outside 0..Size()-1.
	ErrSourceOutOfRange = errors.New("bellmanford: source vertex out of range")

	// ErrNegativeCycle indicates a negative-length cycle reachable from the
	// source; no distance vector is meaningful in that case.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle detected")
)

// BellmanFord returns the shortest distance from source to every vertex of
// the Incoming projection g. Unreachable vertices hold core.Infinity.
//
// Returns ErrNegativeCycle if distances have not converged after g.Size
// rounds.
//
// Complexity: O(V · (V + E)) time, O(V) space.
func BellmanFord(g *core.Adjacency, source int) ([]int64, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Direction != core.Incoming {
		return nil, fmt.Errorf("%w: got %s", ErrWrongProjection, g.Direction)
	}
	n := g.Size
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source=%d, size=%d", ErrSourceOutOfRange, source, n)
	}

	// 2) Two rows, selected by round parity: state[i%2] is the previous round,
	//    state[(i+1)%2] receives the current one.
	var state [2][]int64
	state[0] = make([]int64, n)
	state[1] = make([]int64, n)
	for v := 0; v < n; v++ {
		state[0][v] = core.Infinity
	}
	state[0][source] = 0

	// 3) At most n rounds. A simple path has at most n-1 arcs, so a graph
	//    without reachable negative cycles is stable by round n.
	for i := 0; i < n; i++ {
		prev, next := state[i%2], state[(i+1)%2]
		changed := false

		for s := 0; s < n; s++ {
			best := prev[s] // own distance is always a candidate
			for _, arc := range g.Lists[s] {
				if prev[arc.Vertex] == core.Infinity {
					continue
				}
				if cand := core.SatAdd(prev[arc.Vertex], arc.Length); cand < best {
					best = cand
				}
			}
			next[s] = best
			if best < prev[s] {
				changed = true
			}
		}

		if !changed {
			return next, nil
		}
	}

	// 4) Still improving after n rounds: a reachable negative cycle exists.
	return nil, ErrNegativeCycle
}

// Potentials computes a feasible potential vector for g, one entry per
// vertex, by running BellmanFord from a virtual vertex joined to every vertex
// with a zero-length arc. g itself is not modified.
//
// Every entry is <= 0, and for every edge (u,v,w): p[v] <= p[u] + w.
// Undirected graphs are treated as their directed equivalent.
//
// Returns ErrNegativeCycle if g contains any negative cycle.
// Complexity: O(V · (V + E)).
func Potentials(g *core.Graph) ([]int64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	aug := g.Directize()
	n := aug.Size()
	aug.Grow(1)
	for v := 0; v < n; v++ {
		if err := aug.AddEdge(core.Edge{From: n, To: v, Length: 0}); err != nil {
			return nil, fmt.Errorf("Potentials: %w", err)
		}
	}

	dist, err := BellmanFord(aug.IncomingAdjacency(), n)
	if err != nil {
		return nil, err
	}

	return dist[:n:n], nil
}
