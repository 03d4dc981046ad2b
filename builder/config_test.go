// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption).
package builder

import (
	"math/rand"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil")
	}
	if got := cfg.length(); got != DefaultEdgeWeight {
		t.Errorf("default length: expected %d, got %d", DefaultEdgeWeight, got)
	}
}

// TestOptionsOverride verifies that later options win and that seeded RNGs
// are reproducible.
func TestOptionsOverride(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithWeightFn(ConstantWeightFn(3)), WithWeightFn(ConstantWeightFn(-4)))
	if got := cfg.length(); got != -4 {
		t.Errorf("last WithWeightFn: expected -4, got %d", got)
	}

	a := newBuilderConfig(WithSeed(7))
	b := newBuilderConfig(WithRand(rand.New(rand.NewSource(7))))
	for i := 0; i < 10; i++ {
		if x, y := a.rng.Int63(), b.rng.Int63(); x != y {
			t.Fatalf("draw %d: WithSeed and WithRand diverge: %d vs %d", i, x, y)
		}
	}
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func(){
		"WithRand(nil)":     func() { WithRand(nil) },
		"WithWeightFn(nil)": func() { WithWeightFn(nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
