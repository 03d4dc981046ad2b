// File: impl_complete.go
// Role: Complete(n) constructor.
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Undirected: each pair {i,j}, i<j, exactly once.
//   - Directed: both i→j and j→i, drawn independently.
//   - Pair order is lexicographic by (i,j).
// Complexity: O(n²).

package builder

import "github.com/katalvlaran/shortpath/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n over vertices 0..n-1.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		ensureSize(g, n)

		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := emit(methodComplete, g, i, j, cfg.length()); err != nil {
					return err
				}
				if !directed {
					continue
				}
				if err := emit(methodComplete, g, j, i, cfg.length()); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
