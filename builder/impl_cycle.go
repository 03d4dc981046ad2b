// File: impl_cycle.go
// Role: Cycle(n) constructor.
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i→(i+1)%n for i=0..n-1; the closing edge n-1→0 comes last.
// Complexity: O(n).

package builder

import "github.com/katalvlaran/shortpath/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the cycle C_n over vertices 0..n-1.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		ensureSize(g, n)

		for i := 0; i < n; i++ {
			if err := emit(methodCycle, g, i, (i+1)%n, cfg.length()); err != nil {
				return err
			}
		}

		return nil
	}
}
