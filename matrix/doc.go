// Package matrix offers the dense distance matrix used for all-pairs results,
// plus the matrix-side operations that work on it.
//
// The matrix package provides:
//
//   - Dense: a row-major int64 matrix with bounds-checked At/Set and row copies.
//   - NewDistances(n): the all-pairs identity (0 on the diagonal, +∞ elsewhere).
//   - FromGraph(g): the one-hop distance matrix of a core.Graph.
//   - FloydWarshall(d): in-place all-pairs shortest paths, O(V³), used as a
//     reference for sparse algorithms and for small dense graphs.
//
// Unreachable pairs hold core.Infinity; every addition saturates there.
//
// Matrices are best for dense or small graphs where O(V²) memory is acceptable.
package matrix
