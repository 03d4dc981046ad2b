// File: validators.go
// Role: parameter checks and emission helpers shared by constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	probMin = 0.0
	probMax = 1.0
)

func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

func validateProbability(method string, p float64) error {
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}

// ensureSize grows g so that vertices 0..n-1 exist.
func ensureSize(g *core.Graph, n int) {
	if d := n - g.Size(); d > 0 {
		g.Grow(d)
	}
}

// emit adds u→v with length w, wrapping failures with method context.
func emit(method string, g *core.Graph, u, v int, w int64) error {
	if err := g.AddEdge(core.Edge{From: u, To: v, Length: w}); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return nil
}
