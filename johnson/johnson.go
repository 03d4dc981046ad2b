package johnson

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/shortpath/bellmanford"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/matrix"
)

// Johnson returns the size×size matrix of shortest distances of g:
// result[i][j] is the length of a shortest path i⇝j, core.Infinity when j is
// unreachable from i, and the diagonal is 0.
//
// Returns ErrNilGraph, ErrNegativeCycle (no partial result), the context's
// error if the run was cancelled, or a wrapped dijkstra error.
//
// g is not modified.
func Johnson(g *core.Graph, opts ...Option) (*matrix.Dense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{options: cfg, work: g.Directize()}
	r.n = r.work.Size()

	if err := r.augment(); err != nil {
		return nil, err
	}
	if err := r.reweight(); err != nil {
		return nil, err
	}

	return r.resolve()
}

// runner holds the state of one Johnson execution.
type runner struct {
	options Options
	work    *core.Graph // private directed copy; grown, shrunk and reweighted
	n       int         // real vertex count; the virtual vertex is n
	pot     []int64     // potentials of the real vertices
}

// augment adds the virtual vertex and computes potentials from it.
func (r *runner) augment() error {
	log := r.options.Logger
	log.Debug("johnson: augment", "vertices", r.n, "edges", r.work.EdgeCount())

	r.work.Grow(1)
	for v := 0; v < r.n; v++ {
		if err := r.work.AddEdge(core.Edge{From: r.n, To: v, Length: 0}); err != nil {
			return fmt.Errorf("johnson: augment: %w", err)
		}
	}

	dist, err := bellmanford.BellmanFord(r.work.IncomingAdjacency(), r.n)
	if err != nil {
		log.Warn("johnson: aborted", "phase", "augment", "error", err)
		return fmt.Errorf("johnson: augment: %w", err)
	}
	r.pot = dist[:r.n:r.n]

	return nil
}

// reweight removes the virtual vertex and makes every length non-negative.
func (r *runner) reweight() error {
	r.options.Logger.Debug("johnson: reweight", "potentials", len(r.pot))

	r.work.Shrink(1)
	if err := r.work.Reweight(r.pot); err != nil {
		return fmt.Errorf("johnson: reweight: %w", err)
	}

	return nil
}

// resolve runs reweighted Dijkstra from every source and assembles the rows.
func (r *runner) resolve() (*matrix.Dense, error) {
	log := r.options.Logger
	log.Debug("johnson: resolve", "sources", r.n, "workers", r.options.Workers)

	out, err := matrix.NewDense(r.n, r.n)
	if err != nil {
		return nil, fmt.Errorf("johnson: resolve: %w", err)
	}
	adj := r.work.OutgoingAdjacency()

	eg, ctx := errgroup.WithContext(r.options.Context)
	eg.SetLimit(r.options.Workers)
	for s := 0; s < r.n; s++ {
		s := s
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row, _, err := dijkstra.DijkstraWithReweighting(adj, s, r.pot)
			if err != nil {
				return fmt.Errorf("johnson: resolve source %d: %w", s, err)
			}

			return out.SetRow(s, row)
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	log.Debug("johnson: done", "sources", r.n)

	return out, nil
}

// MinDistance returns the smallest finite entry of m, diagonal included.
// ok is false when m has no finite entry.
func MinDistance(m *matrix.Dense) (best int64, ok bool) {
	if m == nil {
		return 0, false
	}
	best = core.Infinity
	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		if err != nil {
			return 0, false
		}
		for _, v := range row {
			if v < best {
				best = v
			}
		}
	}
	if best == core.Infinity {
		return 0, false
	}

	return best, true
}
