// Package config loads the YAML run file of the ddsearch command.
//
// A run file names the base graph (a built-in seed, or an explicit edge
// list), the degree bound and how candidates are reported:
//
//	max_degree: 3
//	seed:
//	  name: cycle
//	  size: 7
//	report: best
//	log_level: info
//	metrics: true
//
// or, with an explicit base graph instead of a seed:
//
//	max_degree: 3
//	vertices: 5
//	edges: [[0, 1], [0, 2], [1, 2], [1, 4], [2, 3], [3, 4]]
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/degdiam/distmat"
	"github.com/katalvlaran/degdiam/seed"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid run configuration")

// Report modes.
const (
	ReportBest = "best"
	ReportAll  = "all"
	ReportNone = "none"
)

// SeedConfig selects a built-in seed graph.
type SeedConfig struct {
	Name string `yaml:"name"`
	Size int    `yaml:"size"`
}

// RunConfig is the content of a run file.
type RunConfig struct {
	MaxDegree int        `yaml:"max_degree"`
	Seed      SeedConfig `yaml:"seed"`

	// Vertices and Edges describe an explicit base graph. When Vertices is
	// positive they take precedence over Seed.
	Vertices int      `yaml:"vertices"`
	Edges    [][2]int `yaml:"edges"`

	Report   string `yaml:"report"`
	LogLevel string `yaml:"log_level"`
	Metrics  bool   `yaml:"metrics"`
	Check    bool   `yaml:"check_invariants"`
}

// Default returns the configuration used without a run file: the sample
// seed, degree bound 3, best-candidate reporting at info level.
func Default() RunConfig {
	return RunConfig{
		MaxDegree: 3,
		Seed:      SeedConfig{Name: "sample"},
		Report:    ReportBest,
		LogLevel:  "info",
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (RunConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return RunConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value domains. It does not build the base graph.
func (c RunConfig) Validate() error {
	if c.MaxDegree < 1 {
		return fmt.Errorf("max_degree=%d must be >= 1: %w", c.MaxDegree, ErrInvalidConfig)
	}
	switch c.Report {
	case ReportBest, ReportAll, ReportNone:
	default:
		return fmt.Errorf("report=%q not in {best, all, none}: %w", c.Report, ErrInvalidConfig)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Vertices < 0 {
		return fmt.Errorf("vertices=%d: %w", c.Vertices, ErrInvalidConfig)
	}
	if c.Vertices == 0 {
		if len(c.Edges) > 0 {
			return fmt.Errorf("edges given without vertices: %w", ErrInvalidConfig)
		}
		if !contains(seed.Names(), c.Seed.Name) {
			return fmt.Errorf("seed=%q not in %v: %w", c.Seed.Name, seed.Names(), ErrInvalidConfig)
		}
	}

	return nil
}

// Base builds the base graph the configuration describes.
func (c RunConfig) Base() (*distmat.Matrix, error) {
	if c.Vertices > 0 {
		m, err := distmat.FromEdges(c.Vertices, c.Edges)
		if err != nil {
			return nil, fmt.Errorf("config: explicit base graph: %w", err)
		}

		return m, nil
	}

	return seed.Build(c.Seed.Name, c.Seed.Size)
}

// ParseLevel maps debug, info, warn and error (any case) to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("log_level=%q: %w", s, ErrInvalidConfig)
}

func contains(xs []string, x string) bool {
	for _, s := range xs {
		if s == x {
			return true
		}
	}

	return false
}
