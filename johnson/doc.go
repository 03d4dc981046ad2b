// Package johnson computes all-pairs shortest paths on sparse graphs that may
// carry negative edge lengths, using Johnson's algorithm.
//
// The run is three strictly sequential phases over a private directed copy of
// the input graph:
//
//  1. Augment: grow by one virtual vertex joined to every vertex by a
//     zero-length edge, then run Bellman-Ford from it over the incoming
//     projection. A negative cycle anywhere aborts with ErrNegativeCycle.
//  2. Reweight: drop the virtual vertex and replace every length w(u,v) with
//     w(u,v) + p[u] - p[v], which is non-negative for the potentials p.
//  3. Resolve: build the outgoing projection and run reweighted Dijkstra from
//     every source, one row of the result per source.
//
// The caller's graph is never modified, so repeated calls on the same graph
// return equal matrices. Undirected graphs are solved as their directed
// equivalent; an undirected negative edge is therefore a negative cycle.
//
// Key features:
//
//   - WithWorkers(n): resolve rows on up to n goroutines (errgroup).
//   - WithContext(ctx): stop between rows once ctx is done.
//   - WithLogger(l): phase logging via log/slog.
//
// Performance and complexity:
//
//   - Augment: O(V · (V + E)).
//   - Resolve: O(V · (V + E) log V), divided across workers.
//   - Space:   O(V²) for the result plus O(V + E) working state.
//
// Thread safety:
//
//   - Johnson holds no package state. Workers share the read-only projection
//     and write disjoint rows of the result.
package johnson
