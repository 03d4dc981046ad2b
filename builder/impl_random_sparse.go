// File: impl_random_sparse.go
// Role: RandomSparse(n,p) constructor, Erdős–Rényi G(n,p).
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   - 0 < p < 1 requires an RNG (ErrNeedRandSource). p=0 and p=1 are
//     deterministic and need none.
//   - Directed: every ordered pair i≠j is a trial. Undirected: every i<j.
//   - No self-loops.
// Complexity: O(n²) trials.
// Determinism: trial order is (i asc, j asc); one RNG draw per trial, then
// one length draw per emitted edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that includes each candidate edge
// independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ensureSize(g, n)

		directed := g.Directed()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !trial(cfg, p) {
					continue
				}
				if err := emit(methodRandomSparse, g, i, j, cfg.length()); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial reports whether a candidate edge is kept.
func trial(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
