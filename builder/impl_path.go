// File: impl_path.go
// Role: Path(n) constructor.
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits (i-1)→i for i=1..n-1 in increasing order.
// Complexity: O(n).

package builder

import "github.com/katalvlaran/shortpath/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the path P_n over vertices 0..n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		ensureSize(g, n)

		for i := 1; i < n; i++ {
			if err := emit(methodPath, g, i-1, i, cfg.length()); err != nil {
				return err
			}
		}

		return nil
	}
}
