// File: methods_edges.go
// Role: Edge and vertex-range mutations: AddEdge, Grow, Shrink, Reweight.
// Determinism:
//   - Edge order is insertion order; Shrink keeps the relative order of survivors.
// Concurrency:
//   - All mutations run under the write lock.

package core

import "fmt"

// AddEdge appends e to the edge list.
//
// Returns ErrInvalidEdge if an endpoint is outside 0..Size()-1 or if
// |e.Length| > MaxLength. Self-loops and parallel edges are accepted;
// parallel edges simply accumulate as independent entries.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e Edge) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.validate(e); err != nil {
		return fmt.Errorf("AddEdge: %w", err)
	}
	g.edges = append(g.edges, e)

	return nil
}

// Grow adds by fresh, isolated vertices with IDs Size()..Size()+by-1.
// Existing edges are unaffected. Panics if by < 0.
// Complexity: O(1).
func (g *Graph) Grow(by int) {
	if by < 0 {
		panic(fmt.Sprintf("core: Grow(%d): negative growth", by))
	}
	g.mu.Lock()
	g.size += by
	g.mu.Unlock()
}

// Shrink removes the by highest-numbered vertices together with every edge
// that references one of them. The remaining edges keep their relative order.
// Shrinking below zero clamps to an empty graph. Panics if by < 0.
//
// Complexity: O(E), single compaction pass without reallocation.
func (g *Graph) Shrink(by int) {
	if by < 0 {
		panic(fmt.Sprintf("core: Shrink(%d): negative shrink", by))
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.size -= by
	if g.size < 0 {
		g.size = 0
	}

	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.From < g.size && e.To < g.size {
			kept = append(kept, e)
		}
	}
	// Zero the tail so dropped edges do not linger in the backing array.
	clear(g.edges[len(kept):])
	g.edges = kept
}

// Reweight replaces every edge length w(u,v) with w(u,v) + p[u] - p[v].
//
// When p is a feasible potential (p[v] <= p[u] + w(u,v) for every edge) all
// resulting lengths are non-negative. Reweight does not check feasibility and
// does not enforce MaxLength on the results.
//
// Returns ErrPotentialsLength if len(p) != Size().
// Complexity: O(E).
func (g *Graph) Reweight(p []int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(p) != g.size {
		return fmt.Errorf("Reweight: len(p)=%d, size=%d: %w", len(p), g.size, ErrPotentialsLength)
	}
	for i := range g.edges {
		e := &g.edges[i]
		e.Length += p[e.From] - p[e.To]
	}

	return nil
}
