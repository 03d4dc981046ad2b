package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/config"
)

func TestLoad_Full(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.hcl")
	src := `
log_level  = "debug"
log_format = "json"
workers    = 4

graph "first" {
  path     = "first_graph.txt"
  directed = true
}

graph "roads" {
  path     = "/data/roads.txt"
  directed = false
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	want := &config.Config{
		LogLevel:  "debug",
		LogFormat: "json",
		Workers:   4,
		Graphs: []config.Graph{
			{Name: "first", Path: filepath.Join(dir, "first_graph.txt"), Directed: true},
			{Name: "roads", Path: "/data/roads.txt", Directed: false},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`graph "g" { path = "g.txt" }`), filepath.Join("jobs", "job.hcl"))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, config.DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, config.DefaultWorkers, cfg.Workers)
	require.Len(t, cfg.Graphs, 1)
	assert.Equal(t, filepath.Join("jobs", "g.txt"), cfg.Graphs[0].Path)
	assert.True(t, cfg.Graphs[0].Directed)
}

func TestParse_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"bad level", `log_level = "loud"
graph "g" { path = "g.txt" }`, config.ErrBadLogLevel},
		{"bad format", `log_format = "xml"
graph "g" { path = "g.txt" }`, config.ErrBadLogFormat},
		{"zero workers", `workers = 0
graph "g" { path = "g.txt" }`, config.ErrBadWorkers},
		{"duplicate", `graph "g" { path = "a.txt" }
graph "g" { path = "b.txt" }`, config.ErrDuplicateGraph},
		{"empty path", `graph "g" { path = "" }`, config.ErrEmptyGraphPath},
	}
	for _, tc := range cases {
		_, err := config.Parse([]byte(tc.src), "job.hcl")
		assert.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestParse_SettingsOnly(t *testing.T) {
	cfg, err := config.Parse([]byte(`workers = 4`), "job.hcl")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
	assert.Empty(t, cfg.Graphs)

	require.ErrorIs(t, cfg.Validate(), config.ErrNoGraphs)

	cfg.Graphs = append(cfg.Graphs, config.Graph{Name: "g", Path: "g.txt", Directed: true})
	require.NoError(t, cfg.Validate())
}

func TestParse_HCLErrors(t *testing.T) {
	_, err := config.Parse([]byte(`graph "g" {`), "job.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse HCL file job.hcl")

	// Missing required attribute and unknown attribute are decode errors.
	_, err = config.Parse([]byte(`graph "g" { directed = true }`), "job.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode HCL file")

	_, err = config.Parse([]byte(`colour = "red"`), "job.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode HCL file")
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
}
