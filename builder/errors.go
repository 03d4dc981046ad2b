// File: errors.go
// Role: sentinel errors for the builder package.
// Policy:
//   - Callers branch with errors.Is; sentinels are wrapped with %w and method context.
//   - Validation panics are confined to option constructors (WithX, XWeightFn).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG; supply one with WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates that the constructor cannot honor its
// guarantees on the graph's mode (e.g. RandomFeasible on an undirected graph).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates a nil constructor or a core insertion failure.
var ErrConstructFailed = errors.New("builder: construction failed")
