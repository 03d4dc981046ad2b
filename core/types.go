// Package core defines the central Graph, Edge and Adjacency types,
// the Infinity sentinel and sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrBadSize          - vertex count is negative.
//	ErrInvalidEdge      - edge endpoint out of range or length out of bounds.
//	ErrPotentialsLength - potential vector does not match the vertex count.
package core

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadSize indicates a negative vertex count.
	ErrBadSize = errors.New("core: vertex count must be non-negative")

	// ErrInvalidEdge indicates an edge whose endpoint is outside 0..Size()-1,
	// or whose length magnitude exceeds MaxLength.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrPotentialsLength indicates a potential vector whose length differs
	// from the number of vertices it is applied to.
	ErrPotentialsLength = errors.New("core: potentials length mismatch")
)

const (
	// Infinity marks an unreachable vertex in every distance vector and matrix.
	Infinity int64 = math.MaxInt64

	// MaxLength bounds |Edge.Length| at insertion. Any simple path over fewer
	// than 2^31 vertices then sums to well under Infinity.
	MaxLength int64 = math.MaxInt32
)

// SatAdd returns a+b, or Infinity when either operand is Infinity.
func SatAdd(a, b int64) int64 {
	if a == Infinity || b == Infinity {
		return Infinity
	}

	return a + b
}

// Edge is a connection From→To with a signed Length.
// In undirected graphs the orientation carries no meaning.
type Edge struct {
	From   int
	To     int
	Length int64
}

// Less orders edges by Length only; endpoints are ignored.
func (e Edge) Less(o Edge) bool { return e.Length < o.Length }

// String renders the edge as "u→v(w)".
func (e Edge) String() string {
	return fmt.Sprintf("%d→%d(%d)", e.From, e.To, e.Length)
}

// Graph is an edge-list graph over the dense vertex range 0..size-1.
//
// Invariant: every stored edge has both endpoints < size.
type Graph struct {
	mu sync.RWMutex // guards size and edges

	size     int    // vertex count
	directed bool   // one-way edges when true
	edges    []Edge // insertion order is preserved
}

// NewGraph creates a Graph over size vertices holding a copy of edges.
// Every edge is validated as by AddEdge; the first invalid edge aborts
// construction.
// Complexity: O(E).
func NewGraph(size int, edges []Edge, directed bool) (*Graph, error) {
	if size < 0 {
		return nil, fmt.Errorf("NewGraph: size=%d: %w", size, ErrBadSize)
	}

	g := &Graph{
		size:     size,
		directed: directed,
		edges:    make([]Edge, 0, len(edges)),
	}
	for i, e := range edges {
		if err := g.validate(e); err != nil {
			return nil, fmt.Errorf("NewGraph: edge #%d: %w", i, err)
		}
		g.edges = append(g.edges, e)
	}

	return g, nil
}

// validate checks e against the current size. Caller holds g.mu.
func (g *Graph) validate(e Edge) error {
	if e.From < 0 || e.From >= g.size || e.To < 0 || e.To >= g.size {
		return fmt.Errorf("%w: %s outside 0..%d", ErrInvalidEdge, e, g.size-1)
	}
	if e.Length > MaxLength || e.Length < -MaxLength {
		return fmt.Errorf("%w: %s length exceeds ±%d", ErrInvalidEdge, e, MaxLength)
	}

	return nil
}
