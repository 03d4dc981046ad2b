package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/shortpath/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a validated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Flags given explicitly override the job file; positional paths are
// appended to the job file's graphs, each named by its path as given. A job
// file may therefore carry settings only.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("apsp", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
apsp - all-pairs shortest paths with negative edge lengths (Johnson's algorithm).

Usage:
  apsp [options] [EDGE_LIST...]

Arguments:
  EDGE_LIST
    Edge-list file: header "n m", then m lines "u v w" with 1-based vertices.

For every graph, prints the smallest shortest-path distance or "negative cycle".

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL job file.")
	cFlag := flagSet.String("c", "", "Path to an HCL job file (shorthand).")
	undirectedFlag := flagSet.Bool("undirected", false, "Treat positional edge lists as undirected.")
	workersFlag := flagSet.Int("workers", config.DefaultWorkers, "Number of goroutines resolving rows.")
	logFormatFlag := flagSet.String("log-format", config.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", config.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	cfgPath := *configFlag
	if cfgPath == "" {
		cfgPath = *cFlag
	}

	cfg := &config.Config{
		LogLevel:  config.DefaultLogLevel,
		LogFormat: config.DefaultLogFormat,
		Workers:   config.DefaultWorkers,
	}
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
		slog.Debug("Job file loaded.", "path", cfgPath, "graphs", len(cfg.Graphs))
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "workers":
			cfg.Workers = *workersFlag
		case "log-level":
			cfg.LogLevel = strings.ToLower(*logLevelFlag)
		case "log-format":
			cfg.LogFormat = strings.ToLower(*logFormatFlag)
		}
	})

	for _, p := range flagSet.Args() {
		cfg.Graphs = append(cfg.Graphs, config.Graph{
			Name:     p,
			Path:     p,
			Directed: !*undirectedFlag,
		})
	}

	if len(cfg.Graphs) == 0 {
		slog.Debug("No graphs provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "graphs", len(cfg.Graphs))
	return cfg, false, nil
}
