// Package shortpath computes all-pairs shortest paths on sparse directed or
// undirected graphs whose edge lengths may be negative, using Johnson's
// algorithm.
//
// What is in the box:
//
//	core/        — dense-ID Graph, Edge, incoming/outgoing adjacency projections
//	pqueue/      — indexed binary min-heap with decrease-key
//	bellmanford/ — single-source Bellman-Ford with negative-cycle detection
//	dijkstra/    — Dijkstra, plain and over reweighted lengths
//	johnson/     — the all-pairs orchestrator (augment → reweight → resolve)
//	matrix/      — dense int64 distance matrix and Floyd–Warshall
//	builder/     — deterministic graph constructors for tests and benchmarks
//	edgelist/    — "n m" / "u v w" edge-list reader and writer
//	config/      — HCL job files for the apsp command
//	cmd/apsp     — command-line front end
//
// Distances are int64; core.Infinity marks unreachable pairs and every
// addition saturates there. Edge lengths are bounded by ±core.MaxLength.
//
// Quick example:
//
//	g, _ := core.NewGraph(3, []core.Edge{
//		{From: 0, To: 1, Length: 3},
//		{From: 1, To: 2, Length: -2},
//	}, true)
//	m, err := johnson.Johnson(g, johnson.WithWorkers(4))
//	if errors.Is(err, johnson.ErrNegativeCycle) { ... }
//
//	go get github.com/katalvlaran/shortpath
package shortpath
