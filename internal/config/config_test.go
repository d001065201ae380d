package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degdiam/distmat"
	"github.com/katalvlaran/degdiam/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	m, err := cfg.Base()
	require.NoError(t, err)
	assert.Equal(t, 5, m.N())
	assert.Equal(t, 6, m.Edges())
}

func TestLoad_Seed(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `
max_degree: 4
seed:
  name: cycle
  size: 7
report: all
log_level: debug
metrics: true
check_invariants: true
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.RunConfig{
		MaxDegree: 4,
		Seed:      config.SeedConfig{Name: "cycle", Size: 7},
		Report:    config.ReportAll,
		LogLevel:  "debug",
		Metrics:   true,
		Check:     true,
	}, cfg)

	m, err := cfg.Base()
	require.NoError(t, err)
	assert.Equal(t, 3, m.Diameter())
}

func TestLoad_ExplicitEdges(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `
vertices: 4
edges: [[0, 1], [0, 2], [1, 3]]
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxDegree, "defaults survive partial files")

	m, err := cfg.Base()
	require.NoError(t, err)
	assert.Equal(t, 3, m.Diameter())
	assert.Equal(t, 10, m.SumOfDistances())
}

func TestLoad_BadEdge(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "vertices: 2\nedges: [[0, 0]]\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	_, err = cfg.Base()
	require.ErrorIs(t, err, distmat.ErrSelfLoop)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "max_degree: [\n"))
	require.Error(t, err)

	cases := map[string]string{
		"degree":       "max_degree: 0\n",
		"report":       "report: everything\n",
		"level":        "log_level: loud\n",
		"seed":         "seed: {name: hypercube}\n",
		"orphan edges": "edges: [[0, 1]]\n",
		"vertices":     "vertices: -1\n",
	}
	for name, body := range cases {
		_, err = config.Load(writeFile(t, body))
		require.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]slog.Level{
		"DEBUG": slog.LevelDebug,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"Error": slog.LevelError,
	} {
		got, err := config.ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}
