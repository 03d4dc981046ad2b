// Package builder provides functional-options style constructors that emit
// deterministic graph topologies into a *core.Graph with dense integer IDs.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG and the edge-length function.
//   - Constructors (Constructor implementations):
//     – Path(n):                 0→1→…→n-1.
//     – Cycle(n):                Path(n) closed by n-1→0.
//     – Complete(n):             every ordered (directed) or unordered pair.
//     – RandomSparse(n, p):      Erdős–Rényi G(n,p), no self-loops.
//     – RandomFeasible(n, p, s): directed G(n,p) with negative lengths but
//     no negative cycle, for exercising reweighting.
//   - Edge-length distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value (may be negative).
//     – UniformWeightFn:   uniform over the closed range [min,max].
//
// Vertex IDs:
//
//   - Constructors address vertices 0..n-1 and grow the graph when it is
//     smaller, so several constructors passed to BuildGraph share IDs.
//
// Guarantees:
//
//   - Deterministic output for a fixed seed and option set.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime validation errors are sentinel-wrapped with the method name.
package builder
