// SPDX-License-Identifier: MIT
// Package: report
//
// log.go — structured log record per candidate.

package report

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/degdiam/search"
)

// Log writes one record per candidate at Level (Debug by default).
type Log struct {
	Logger *slog.Logger
	Level  slog.Level
}

// NewLog returns a Log emitting debug records to l.
func NewLog(l *slog.Logger) *Log {
	return &Log{Logger: l, Level: slog.LevelDebug}
}

// Report implements search.Reporter. Besides the candidate statistics it
// records the eccentricity of the new vertex and whether it reaches every
// other vertex.
func (l *Log) Report(c search.Candidate) {
	if l.Logger == nil || !l.Logger.Enabled(context.Background(), l.Level) {
		return
	}
	n := c.Graph.N()
	ecc, reachesAll := c.Graph.Eccentricity(n - 1)
	l.Logger.LogAttrs(context.Background(), l.Level, "candidate",
		slog.Any("neighbors", c.Neighbors),
		slog.Int("vertices", n),
		slog.Int("eccentricity", ecc),
		slog.Bool("reaches_all", reachesAll),
		slog.Int("edges", c.Edges),
		slog.Int("max_degree", c.MaxDegree),
		slog.Int("diameter", c.Diameter),
		slog.Int("sum", c.SumOfDistances),
		slog.Bool("connected", c.Connected),
	)
}
