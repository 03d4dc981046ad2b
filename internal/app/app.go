package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/shortpath/config"
	"github.com/katalvlaran/shortpath/edgelist"
	"github.com/katalvlaran/shortpath/johnson"
)

// App solves every graph of a job.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *config.Config
}

// NewApp returns an App that writes results to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *config.Config) *App {
	return &App{
		outW:   outW,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, logW),
		cfg:    cfg,
	}
}

// Run processes the graphs in order. A negative cycle is a result, not a
// failure; unreadable input or a solver error stops the run.
func (a *App) Run(ctx context.Context) error {
	for _, job := range a.cfg.Graphs {
		if err := a.solve(ctx, job); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) solve(ctx context.Context, job config.Graph) error {
	log := a.logger.With("graph", job.Name)
	log.Info("Loading graph.", "path", job.Path, "directed", job.Directed)

	g, err := edgelist.ReadFile(job.Path, job.Directed)
	if err != nil {
		return fmt.Errorf("graph %q: %w", job.Name, err)
	}

	start := time.Now()
	m, err := johnson.Johnson(g,
		johnson.WithWorkers(a.cfg.Workers),
		johnson.WithContext(ctx),
		johnson.WithLogger(log),
	)
	switch {
	case errors.Is(err, johnson.ErrNegativeCycle):
		fmt.Fprintf(a.outW, "%s: negative cycle\n", job.Name)
		return nil
	case err != nil:
		return fmt.Errorf("graph %q: %w", job.Name, err)
	}
	log.Info("Graph solved.", "vertices", g.Size(), "edges", g.EdgeCount(), "elapsed", time.Since(start))

	best, ok := johnson.MinDistance(m)
	if !ok {
		fmt.Fprintf(a.outW, "%s: empty graph\n", job.Name)
		return nil
	}
	fmt.Fprintf(a.outW, "%s: %d\n", job.Name, best)

	return nil
}
