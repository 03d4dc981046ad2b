// File: api.go
// Role: public entry point for composing constructors into a graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// Constructor emits a topology into g using the resolved configuration.
// It grows g as needed so that vertices 0..n-1 exist.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty graph, resolves the builder options once and
// applies every constructor in order. The first failure aborts the build.
//
// Complexity: sum of the constructors' costs.
func BuildGraph(directed bool, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(0, nil, directed)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
