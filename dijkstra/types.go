// Package dijkstra defines sentinel errors and configuration options
// for Dijkstra's shortest-path algorithm on dense integer-indexed graphs.
//
// Options:
//
//	– ReturnPath:  if true, return the predecessor slice for path reconstruction.
//	– MaxDistance: optional cap on keys to finalize; vertices beyond stay +∞.
//	– OnFinalize:  hook invoked once per finalized vertex, in pop order.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the adjacency pointer is nil.
//	– ErrWrongProjection   if the adjacency is not an Outgoing projection.
//	– ErrSourceOutOfRange  if the source is outside 0..Size()-1.
//	– ErrNegativeWeight    if a negative arc is found by the plain variant.
//	– ErrBadPotentials     if the potential vector is mis-sized or infinite.
//	– ErrMonotonicity      if a popped key is smaller than its predecessor.
//	– ErrBadMaxDistance    if MaxDistance < 0 (raised via panic).
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/shortpath/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Adjacency was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrWrongProjection indicates an adjacency not grouped by outgoing arcs.
	ErrWrongProjection = errors.New("dijkstra: outgoing adjacency required")

	// ErrSourceOutOfRange indicates a source vertex outside 0..Size()-1.
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates that a negative arc length was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadPotentials indicates a potential vector of the wrong length or
	// holding core.Infinity entries.
	ErrBadPotentials = errors.New("dijkstra: invalid potentials")

	// ErrMonotonicity indicates that a finalized key was smaller than the one
	// finalized before it. This is an internal consistency failure: it means a
	// negative (reweighted) arc reached the queue.
	ErrMonotonicity = errors.New("dijkstra: finalized keys are not monotone")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// NoPredecessor marks the source and unreachable vertices in the
// predecessor slice.
const NoPredecessor = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath – if true, return the predecessor slice; otherwise it is nil.
// MaxDistance – keys greater than this are never finalized.
//
//	Must be ≥ 0. Default is core.Infinity (no cap).
//
// OnFinalize – optional hook called with (vertex, key) when a vertex is
// popped and finalized. key is the queue key, i.e. the reweighted distance
// in DijkstraWithReweighting.
type Options struct {
	ReturnPath  bool
	MaxDistance int64
	OnFinalize  func(v int, key int64)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum key to finalize.
// Panics with ErrBadMaxDistance on negative values.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithOnFinalize registers a hook called for every finalized vertex.
// Panics on nil.
func WithOnFinalize(fn func(v int, key int64)) Option {
	if fn == nil {
		panic("dijkstra: WithOnFinalize(nil)")
	}
	return func(o *Options) {
		o.OnFinalize = fn
	}
}

// DefaultOptions returns Options with no path tracking, no distance cap and
// no hook.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: core.Infinity,
	}
}
