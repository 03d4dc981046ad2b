// Package dijkstra provides Dijkstra's shortest-path algorithm on graphs with
// dense integer vertex IDs, in two flavours:
//
//   - Dijkstra: plain single-source shortest paths over non-negative lengths.
//   - DijkstraWithReweighting: the per-source step of Johnson's algorithm. The
//     queue runs on lengths reweighted by a potential vector while the returned
//     distances are expressed in the graph's original lengths.
//
// Overview:
//
//   - Both variants consume a core.Adjacency built with OutgoingAdjacency().
//   - They use pqueue's indexed heap with decrease-key: the heap is filled with
//     every vertex at +∞ up front, relaxations lower keys in place, and each pop
//     finalizes exactly one vertex.
//   - The sequence of finalized keys is checked to be non-decreasing. A
//     violation means a negative arc slipped through and is reported as
//     ErrMonotonicity rather than silently producing wrong distances.
//
// Reweighting identity:
//
//	w'(u,v) = w(u,v) + p[u] - p[v]      (queue side, ≥ 0 for feasible p)
//	w(u,v)  = w'(u,v) - p[u] + p[v]     (recovered on finalization)
//
// Every path s⇝t changes by the same p[s] - p[t] under reweighting, so the
// queue finalizes vertices along true shortest paths.
//
// Key features:
//
//   - WithReturnPath(): predecessor slice for path reconstruction.
//   - WithMaxDistance(d): stop once the smallest queue key exceeds d.
//   - WithOnFinalize(fn): observe the finalization order (tests, tracing).
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V) for the heap, distances and optional predecessors.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrWrongProjection, ErrSourceOutOfRange: invalid arguments.
//   - ErrNegativeWeight: plain variant found a negative arc (O(E) pre-scan).
//   - ErrBadPotentials: reweighted variant got a mis-sized or infinite vector.
//   - ErrMonotonicity: internal consistency failure, see above.
//
// Thread safety:
//
//   - A run only reads the adjacency, so concurrent runs over one shared
//     *core.Adjacency are safe; each run owns its own queue and outputs.
package dijkstra
