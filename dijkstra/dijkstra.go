// Package dijkstra implements Dijkstra's shortest-path algorithm on dense
// integer-indexed graphs, optionally over reweighted edge lengths.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is popped at most once: V extractions from the indexed heap.
//   - Each arc relaxation is one DecreaseKey: up to E O(log V) updates.
//   - Space: O(V); the heap never holds more than V entries (no lazy duplicates).
//
// Notes on implementation choices:
//
//   - The plain variant scans all arcs (O(E)) for negative lengths and fails fast.
//   - The queue is pre-filled with every vertex at +∞, so relaxation never inserts.
//   - Popping a +∞ key ends the run: the rest of the heap is unreachable.
//   - Finalized keys must be non-decreasing; a decrease aborts with ErrMonotonicity.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/pqueue"
)

// Dijkstra computes shortest distances from source over the Outgoing
// projection g, whose arc lengths must be non-negative.
//
// Returns:
//
//   - dist: dist[v] = minimum distance from source, core.Infinity if unreachable.
//   - prev: predecessor slice if ReturnPath is set (nil otherwise).
//     prev[v] == u means the shortest path to v ends with u→v; the source and
//     unreachable vertices hold NoPredecessor.
//   - err:  validation error, ErrNegativeWeight, or ErrMonotonicity.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must be an Outgoing projection (ErrWrongProjection).
//  3. source must lie in 0..g.Size-1 (ErrSourceOutOfRange).
//  4. No arc may have negative length (ErrNegativeWeight).
//
// Complexity: O((V + E) log V) time, O(V) space.
func Dijkstra(g *core.Adjacency, source int, opts ...Option) ([]int64, []int, error) {
	if err := validate(g, source); err != nil {
		return nil, nil, err
	}

	// Pre-scan all arcs to detect negative lengths. Fail fast with context.
	for u, arcs := range g.Lists {
		for _, a := range arcs {
			if a.Length < 0 {
				return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, a.Vertex, a.Length)
			}
		}
	}

	r := newRunner(g, source, nil, opts)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.result()
}

// DijkstraWithReweighting runs Dijkstra over arc lengths that were reweighted
// by potentials p, i.e. w'(u,v) = w(u,v) + p[u] - p[v], and returns the
// distances under the ORIGINAL lengths w.
//
// The queue is ordered by reweighted keys, which are non-negative when p is
// feasible. True distances are accumulated separately: when v is finalized
// through u, dist[v] = dist[u] + (w'(u,v) - p[u] + p[v]).
//
// Returns ErrBadPotentials if len(p) != g.Size or any p[v] is core.Infinity.
// A negative reweighted arc that reaches the queue out of order is reported
// as ErrMonotonicity; no pre-scan is performed.
//
// Complexity: O((V + E) log V) time, O(V) space.
func DijkstraWithReweighting(g *core.Adjacency, source int, p []int64, opts ...Option) ([]int64, []int, error) {
	if err := validate(g, source); err != nil {
		return nil, nil, err
	}
	if len(p) != g.Size {
		return nil, nil, fmt.Errorf("%w: len=%d, size=%d", ErrBadPotentials, len(p), g.Size)
	}
	for v, pv := range p {
		if pv == core.Infinity {
			return nil, nil, fmt.Errorf("%w: p[%d] is infinite", ErrBadPotentials, v)
		}
	}

	r := newRunner(g, source, p, opts)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.result()
}

// validate applies the checks shared by both variants.
func validate(g *core.Adjacency, source int) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.Direction != core.Outgoing {
		return fmt.Errorf("%w: got %s", ErrWrongProjection, g.Direction)
	}
	if source < 0 || source >= g.Size {
		return fmt.Errorf("%w: source=%d, size=%d", ErrSourceOutOfRange, source, g.Size)
	}

	return nil
}

// hop is the queue payload: the vertex a key was relaxed from and the arc
// length (as seen by the queue) that produced it.
type hop struct {
	from   int
	length int64
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Adjacency    // read-only within a run
	options Options            // ReturnPath, MaxDistance, OnFinalize
	source  int                // start vertex
	pot     []int64            // potentials; nil for the plain variant
	dist    []int64            // true distances, core.Infinity until finalized
	prev    []int              // predecessors, nil unless ReturnPath
	pq      *pqueue.Queue[hop] // indexed heap over all vertices
}

func newRunner(g *core.Adjacency, source int, p []int64, opts []Option) *runner {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{
		g:       g,
		options: cfg,
		source:  source,
		pot:     p,
		dist:    make([]int64, g.Size),
		pq:      pqueue.New[hop](g.Size),
	}
	for v := range r.dist {
		r.dist[v] = core.Infinity
	}
	if cfg.ReturnPath {
		r.prev = make([]int, g.Size)
		for v := range r.prev {
			r.prev[v] = NoPredecessor
		}
	}

	// Every vertex gets a slot at +∞; the source then drops to 0.
	r.pq.Fill()
	r.pq.DecreaseKey(source, 0, hop{from: source})

	return r
}

// process pops one vertex per iteration, finalizes it and relaxes its arcs.
//
// Loop termination conditions:
//
//   - The heap becomes empty (every vertex finalized).
//   - The minimum key is +∞ (every remaining vertex is unreachable).
//   - The minimum key exceeds MaxDistance.
func (r *runner) process() error {
	var last int64 // keys start at 0 for the source
	for r.pq.Len() > 0 {
		// 1) Stop before finalizing anything unreachable or beyond the cap.
		top, _ := r.pq.Peek()
		if top.Key == core.Infinity || top.Key > r.options.MaxDistance {
			break
		}

		item, err := r.pq.PopMin()
		if err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}

		// 2) Finalized keys must never go backwards.
		if item.Key < last {
			return fmt.Errorf("%w: key %d after %d at vertex %d", ErrMonotonicity, item.Key, last, item.Index)
		}
		last = item.Key

		// 3) Record the true distance and predecessor.
		v := item.Index
		if v == r.source {
			r.dist[v] = 0
		} else {
			u := item.Payload.from
			r.dist[v] = r.dist[u] + r.original(u, v, item.Payload.length)
			if r.prev != nil {
				r.prev[v] = u
			}
		}
		if r.options.OnFinalize != nil {
			r.options.OnFinalize(v, item.Key)
		}

		// 4) Relax outgoing arcs; popped vertices ignore DecreaseKey.
		for _, a := range r.g.Lists[v] {
			r.pq.DecreaseKey(a.Vertex, core.SatAdd(item.Key, a.Length), hop{from: v, length: a.Length})
		}
	}

	return nil
}

// original recovers w(u,v) from the queue-side length of arc u→v.
func (r *runner) original(u, v int, length int64) int64 {
	if r.pot == nil {
		return length
	}

	return length - r.pot[u] + r.pot[v]
}

func (r *runner) result() ([]int64, []int, error) {
	if !r.options.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}
