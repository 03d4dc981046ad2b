// Package core provides the edge-list Graph used by the shortest-path
// algorithms of this module, together with the two adjacency projections
// they consume.
//
// A Graph G = (V,E) identifies its vertices by dense integers 0..Size()-1
// and stores its edges as an ordered slice of Edge values:
//
//   - Directed vs. undirected graphs (the directed flag of NewGraph)
//   - Signed integer lengths, bounded by ±MaxLength at insertion
//   - Growing and shrinking the vertex range (Grow, Shrink); shrinking drops
//     every edge that references a removed vertex, preserving edge order
//   - In-place reweighting by a potential vector (Reweight)
//
// Projections:
//
//	OutgoingAdjacency() – Lists[u] holds (v, w) for every edge u→v.
//	                      Dijkstra walks these from the vertex it finalizes.
//	IncomingAdjacency() – Lists[v] holds (u, w) for every edge u→v.
//	                      Bellman-Ford relaxes each target over these.
//
// For undirected graphs every edge is inserted symmetrically in both
// projections. Building either projection costs O(V + E); the result is a
// read-only snapshot that does not observe later mutations of the Graph.
//
// Infinity:
//
//	Infinity (math.MaxInt64) is the "unreachable" sentinel shared by every
//	package of the module. It is absorbing: SatAdd(Infinity, w) == Infinity
//	for any w, so relaxation code never performs raw arithmetic on it.
//
// Errors:
//
//	ErrBadSize          - negative vertex count.
//	ErrInvalidEdge      - endpoint outside 0..Size()-1 or |length| > MaxLength.
//	ErrPotentialsLength - potential vector length differs from Size().
//
// Concurrency:
//
//	Graph methods are guarded by a sync.RWMutex; mutations take the write
//	lock, queries and projections take the read lock. Adjacency values are
//	immutable after construction and may be shared between goroutines.
package core
