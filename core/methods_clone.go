// File: methods_clone.go
// Role: Copying graphs: Clone (same orientation) and Directize (undirected → directed).
// Concurrency:
//   - Read lock on the source only; the copy is fresh and unshared.

package core

// Clone returns a deep copy of g: size, orientation and edge list.
// Complexity: O(E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)

	return &Graph{size: g.size, directed: g.directed, edges: edges}
}

// Directize returns a directed copy of g. Each undirected edge {u,v} becomes
// the pair u→v, v→u (a self-loop stays single); directed graphs are cloned.
//
// The result has the same shortest-path distances as g, and per-direction
// lengths can be rewritten independently (as Reweight requires).
// Complexity: O(E).
func (g *Graph) Directize() *Graph {
	if g.Directed() {
		return g.Clone()
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, 0, 2*len(g.edges))
	for _, e := range g.edges {
		edges = append(edges, e)
		if e.From != e.To {
			edges = append(edges, Edge{From: e.To, To: e.From, Length: e.Length})
		}
	}

	return &Graph{size: g.size, directed: true, edges: edges}
}
