// File: api.go
// Role: Read-only getters over Graph state.
// Concurrency:
//   - Every getter takes the read lock and returns a value or a copy.

package core

// Size returns the number of vertices; valid IDs are 0..Size()-1.
// Complexity: O(1).
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.size
}

// Directed reports whether edges are one-way.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// EdgeCount returns the number of stored edges. An undirected edge counts once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
