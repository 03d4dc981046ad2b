// Package config loads the HCL job file read by the apsp command.
//
// A job file names the graphs to solve and the run settings:
//
//	log_level  = "info"   # debug | info | warn | error
//	log_format = "text"   # text | json
//	workers    = 4
//
//	graph "first" {
//	  path     = "first_graph.txt"
//	  directed = true
//	}
//
// Every top-level attribute is optional and a job file may hold no graph
// blocks at all, leaving the graphs to the command line. Graph paths are
// resolved against the directory of the job file; directed defaults to true.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Defaults applied to absent attributes.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultWorkers   = 1
)

// Sentinel errors returned by Load, Parse and Validate.
var (
	ErrNoGraphs       = errors.New("config: no graph blocks")
	ErrDuplicateGraph = errors.New("config: duplicate graph name")
	ErrBadLogLevel    = errors.New("config: unknown log level")
	ErrBadLogFormat   = errors.New("config: unknown log format")
	ErrBadWorkers     = errors.New("config: workers must be at least 1")
	ErrEmptyGraphPath = errors.New("config: graph path is empty")
)

// Config is a resolved job file.
type Config struct {
	LogLevel  string
	LogFormat string
	Workers   int
	Graphs    []Graph
}

// Graph is one edge-list input.
type Graph struct {
	Name     string
	Path     string // absolute or relative to the working directory
	Directed bool
}

// hclJobFile mirrors the file layout for gohcl decoding.
type hclJobFile struct {
	LogLevel  *string     `hcl:"log_level,optional"`
	LogFormat *string     `hcl:"log_format,optional"`
	Workers   *int        `hcl:"workers,optional"`
	Graphs    []*hclGraph `hcl:"graph,block"`
}

type hclGraph struct {
	Name     string `hcl:"name,label"`
	Path     string `hcl:"path"`
	Directed *bool  `hcl:"directed,optional"`
}

// Load parses and validates the job file at path.
func Load(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	return decode(file.Body, path)
}

// Parse parses and validates src as if it were read from filename.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	return decode(file.Body, filename)
}

func decode(body hcl.Body, filename string) (*Config, error) {
	var raw hclJobFile
	if diags := gohcl.DecodeBody(body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	cfg := &Config{
		LogLevel:  valueOr(raw.LogLevel, DefaultLogLevel),
		LogFormat: valueOr(raw.LogFormat, DefaultLogFormat),
		Workers:   valueOr(raw.Workers, DefaultWorkers),
		Graphs:    make([]Graph, 0, len(raw.Graphs)),
	}
	base := filepath.Dir(filename)
	for _, g := range raw.Graphs {
		p := g.Path
		if p != "" && !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		}
		cfg.Graphs = append(cfg.Graphs, Graph{
			Name:     g.Name,
			Path:     p,
			Directed: valueOr(g.Directed, true),
		})
	}

	if err := cfg.validateSettings(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return cfg, nil
}

// Validate checks a complete run: the settings, every graph, and that there
// is at least one graph to solve.
func (c *Config) Validate() error {
	if err := c.validateSettings(); err != nil {
		return err
	}
	if len(c.Graphs) == 0 {
		return ErrNoGraphs
	}

	return nil
}

// validateSettings checks everything but the graph count.
func (c *Config) validateSettings() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrBadLogLevel, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrBadLogFormat, c.LogFormat)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrBadWorkers, c.Workers)
	}

	seen := make(map[string]bool, len(c.Graphs))
	for _, g := range c.Graphs {
		if seen[g.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateGraph, g.Name)
		}
		seen[g.Name] = true
		if g.Path == "" {
			return fmt.Errorf("%w: graph %q", ErrEmptyGraphPath, g.Name)
		}
	}

	return nil
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}

	return *p
}
