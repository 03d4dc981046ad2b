// Package bellmanford implements single-source shortest paths on graphs with
// possibly negative edge lengths, and the potential computation that Johnson's
// algorithm builds on.
//
// Overview:
//
//   - BellmanFord runs over an Incoming adjacency projection: each round
//     recomputes every vertex s as the minimum of its own previous distance
//     and prev[u] + w over all incoming arcs (u→s, w).
//   - Two distance arrays are ping-ponged by round parity, so a round reads
//     only the previous round's values and never its own partial writes.
//   - A round without any change means the distances have converged; they are
//     returned immediately, usually well before the worst case.
//   - If distances still change in round Size(), some negative cycle is
//     reachable from the source and ErrNegativeCycle is returned instead of
//     a distance vector.
//
// Infinity handling:
//
//	core.Infinity is absorbing: an arc leaving an unreached vertex contributes
//	nothing. No arithmetic is ever performed on the sentinel itself.
//
// Potentials:
//
//	Potentials(g) adds a virtual vertex with zero-length arcs to every vertex
//	of g and runs BellmanFord from it on a clone of g. The result p satisfies
//	p[v] <= p[u] + w for every edge (u,v,w), so w + p[u] - p[v] >= 0.
//
// Complexity:
//
//   - Time:  O(V · (V + E)) worst case; O(k · (V + E)) for k rounds to converge.
//   - Space: O(V) beyond the projection (two distance arrays).
//
// Errors (sentinel):
//
//   - ErrNilGraph:          nil adjacency or graph.
//   - ErrWrongProjection:   an Outgoing projection was passed.
//   - ErrSourceOutOfRange:  source outside 0..Size()-1.
//   - ErrNegativeCycle:     no convergence after Size() rounds.
package bellmanford
