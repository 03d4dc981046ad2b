// Package johnson defines sentinel errors and functional options for the
// all-pairs orchestrator.
//
// Options:
//
//	– Workers: number of goroutines resolving rows (default 1).
//	– Context: cancellation observed between rows (default background).
//	– Logger:  phase logging sink (default discards).
package johnson

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/shortpath/bellmanford"
)

// Sentinel errors returned by Johnson.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("johnson: graph is nil")

	// ErrNegativeCycle is bellmanford.ErrNegativeCycle, so errors.Is matches
	// either name.
	ErrNegativeCycle = bellmanford.ErrNegativeCycle

	// ErrBadWorkers indicates a worker count below 1 (raised via panic).
	ErrBadWorkers = errors.New("johnson: workers must be at least 1")
)

// Options configures a Johnson run.
type Options struct {
	Workers int
	Context context.Context
	Logger  *slog.Logger
}

// Option represents a functional option for configuring Johnson.
type Option func(*Options)

// WithWorkers resolves up to n rows concurrently.
// Panics with ErrBadWorkers if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(ErrBadWorkers.Error())
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithContext makes the run observe ctx between rows. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("johnson: WithContext(nil)")
	}
	return func(o *Options) {
		o.Context = ctx
	}
}

// WithLogger sends phase logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("johnson: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns a single-worker, uncancellable, silent configuration.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Context: context.Background(),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
