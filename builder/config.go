// File: config.go
// Role: resolved builder configuration shared by all constructors.

package builder

import "math/rand"

// builderConfig is immutable once resolved by newBuilderConfig.
type builderConfig struct {
	// rng drives stochastic constructors; nil unless WithSeed/WithRand.
	rng *rand.Rand
	// weightFn yields the length of every emitted edge.
	weightFn WeightFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// length draws the next edge length.
func (c builderConfig) length() int64 {
	return c.weightFn(c.rng)
}
