// File: impl_random_feasible.go
// Role: RandomFeasible(n,p,shift) constructor.
// Contract:
//   - Directed graphs only (else ErrUnsupportedGraphMode).
//   - Same trial scheme and parameter checks as RandomSparse; always needs an RNG.
//   - A hidden potential h[v] ∈ [0,shift] is drawn per vertex; each kept
//     edge gets length |c| + h[u] - h[v], c drawn from the WeightFn.
//   - Every cycle therefore sums to Σ|c| ≥ 0: lengths may be negative but
//     no negative cycle exists.
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const methodRandomFeasible = "RandomFeasible"

// RandomFeasible returns a Constructor for a random directed graph with
// negative lengths and no negative cycle. shift must satisfy
// 0 ≤ shift ≤ core.MaxLength/2 so that lengths stay in range when the
// WeightFn does.
func RandomFeasible(n int, p float64, shift int64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if !g.Directed() {
			return fmt.Errorf("%s: %w: directed graph required", methodRandomFeasible, ErrUnsupportedGraphMode)
		}
		if err := validateMin(methodRandomFeasible, n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomFeasible, p); err != nil {
			return err
		}
		if shift < 0 || shift > core.MaxLength/2 {
			return fmt.Errorf("%s: shift=%d not in [0,%d]: %w", methodRandomFeasible, shift, core.MaxLength/2, ErrConstructFailed)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomFeasible, ErrNeedRandSource)
		}
		ensureSize(g, n)

		h := make([]int64, n)
		for v := range h {
			h[v] = cfg.rng.Int63n(shift + 1)
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || !trial(cfg, p) {
					continue
				}
				c := cfg.length()
				if c < 0 {
					c = -c
				}
				w := c + h[i] - h[j]
				if w > core.MaxLength {
					w = core.MaxLength
				}
				if err := emit(methodRandomFeasible, g, i, j, w); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
