// File: adjacency_list.go
// Role: Adjacency projections of an edge-list Graph (outgoing and incoming).
// Determinism:
//   - Lists[v] preserves the Graph's edge order; for undirected edges the
//     forward insertion precedes the mirrored one.

package core

import "fmt"

// Direction tells which endpoint an Adjacency groups arcs by.
type Direction int

const (
	// Outgoing groups arcs by source: Lists[u] holds heads of u→v.
	Outgoing Direction = iota

	// Incoming groups arcs by target: Lists[v] holds tails of u→v.
	Incoming
)

// String returns "outgoing" or "incoming".
func (d Direction) String() string {
	switch d {
	case Outgoing:
		return "outgoing"
	case Incoming:
		return "incoming"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Arc is one adjacency entry: the vertex on the other end of an edge and the
// edge length. In an Outgoing projection Vertex is the head, in an Incoming
// projection it is the tail.
type Arc struct {
	Vertex int
	Length int64
}

// Adjacency is a read-only per-vertex arc list derived from a Graph.
type Adjacency struct {
	Direction Direction
	Size      int
	Directed  bool
	Lists     [][]Arc
}

// OutgoingAdjacency projects g by source vertex. Dijkstra consumes this form.
// Complexity: O(V + E).
func (g *Graph) OutgoingAdjacency() *Adjacency {
	return g.project(Outgoing)
}

// IncomingAdjacency projects g by target vertex. Bellman-Ford consumes this form.
// Complexity: O(V + E).
func (g *Graph) IncomingAdjacency() *Adjacency {
	return g.project(Incoming)
}

// project builds either projection in one pass over the edge list.
func (g *Graph) project(dir Direction) *Adjacency {
	g.mu.RLock()
	defer g.mu.RUnlock()

	a := &Adjacency{
		Direction: dir,
		Size:      g.size,
		Directed:  g.directed,
		Lists:     make([][]Arc, g.size),
	}

	for _, e := range g.edges {
		key, other := e.From, e.To
		if dir == Incoming {
			key, other = e.To, e.From
		}
		a.Lists[key] = append(a.Lists[key], Arc{Vertex: other, Length: e.Length})
		if !g.directed && key != other {
			// Mirror: the other endpoint sees this one as well.
			a.Lists[other] = append(a.Lists[other], Arc{Vertex: key, Length: e.Length})
		}
	}

	return a
}

// Edges reconstructs the directed arcs of the projection as From→To edges,
// ordered by list index, then by position within the list. Undirected
// graphs yield both orientations of every non-loop edge.
// Complexity: O(V + E).
func (a *Adjacency) Edges() []Edge {
	var out []Edge
	for v, arcs := range a.Lists {
		for _, arc := range arcs {
			if a.Direction == Incoming {
				out = append(out, Edge{From: arc.Vertex, To: v, Length: arc.Length})
			} else {
				out = append(out, Edge{From: v, To: arc.Vertex, Length: arc.Length})
			}
		}
	}

	return out
}

// ArcCount returns the total number of arcs across all lists.
func (a *Adjacency) ArcCount() int {
	n := 0
	for _, arcs := range a.Lists {
		n += len(arcs)
	}

	return n
}
