// Package app wires a validated config.Config to the solver: it builds the
// logger, reads every edge list, runs Johnson's algorithm and reports one
// result line per graph.
package app
