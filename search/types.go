// SPDX-License-Identifier: MIT
// Package: search
//
// types.go — options, candidates, reporters and statistics.

package search

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/degdiam/distmat"
)

// DefaultMaxDegree is the degree bound used when WithMaxDegree is not given.
const DefaultMaxDegree = 3

// Candidate is one completed extension: the new (last) vertex attached to
// Neighbors, with the resulting statistics.
//
// Graph and Neighbors are live views of the search state and are valid only
// during the Report call. Call Retain to keep a candidate afterwards.
type Candidate struct {
	// Graph is the extended graph with shortest paths resolved.
	Graph *distmat.Matrix

	// Neighbors lists the existing vertices attached to the new vertex,
	// in ascending order. Its length is the new vertex's degree.
	Neighbors []int

	// Depth is the degree of the new vertex, len(Neighbors).
	Depth int

	// MaxDegree is the largest vertex degree of Graph.
	MaxDegree int

	// Diameter is the largest finite distance of Graph.
	Diameter int

	// SumOfDistances sums the finite distances over unordered pairs.
	SumOfDistances int

	// Edges is the edge count of Graph.
	Edges int

	// Connected is false when some pair is still at infinite distance;
	// Diameter and SumOfDistances then cover finite pairs only.
	Connected bool
}

// Retain returns a copy of c that owns its graph and neighbour slice.
func (c Candidate) Retain() Candidate {
	out := c
	out.Graph = c.Graph.Clone()
	out.Neighbors = append([]int(nil), c.Neighbors...)

	return out
}

// Reporter receives every completed extension. Implementations must not
// mutate c.Graph.
type Reporter interface {
	Report(c Candidate)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(c Candidate)

// Report calls f(c).
func (f ReporterFunc) Report(c Candidate) { f(c) }

// Stats summarises one search.
type Stats struct {
	// Nodes counts visited attachment sets, the empty root set included.
	Nodes int

	// Candidates counts reported extensions (Nodes-1).
	Candidates int

	// SaturatedPrunes counts nodes whose remaining candidates were abandoned
	// because the new vertex reached the bound.
	SaturatedPrunes int

	// TargetPrunes counts skipped target vertices that were already at the bound.
	TargetPrunes int

	// MaxDepth is the largest attachment set size reached.
	MaxDepth int
}

// Option configures a search.
type Option func(*Options)

// Options holds the search configuration.
type Options struct {
	// MaxDegree bounds every vertex degree, the new vertex included.
	MaxDegree int

	// Reporter receives candidates; nil discards them.
	Reporter Reporter

	// Logger receives one debug record when the search starts and one
	// info record with Stats when it ends. Nothing is logged per node.
	Logger *slog.Logger

	// CheckInvariants rejects input whose distances are not shortest paths,
	// validates the matrix after every rollback and compares the final state
	// with a clone taken before the search. Violations during the search panic.
	CheckInvariants bool
}

// DefaultOptions returns MaxDegree = DefaultMaxDegree, no reporter, a
// discarding logger and no invariant checks.
func DefaultOptions() Options {
	return Options{
		MaxDegree: DefaultMaxDegree,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithMaxDegree sets the degree bound.
func WithMaxDegree(d int) Option {
	return func(o *Options) { o.MaxDegree = d }
}

// WithReporter installs r as the candidate sink.
func WithReporter(r Reporter) Option {
	return func(o *Options) { o.Reporter = r }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithInvariantChecks enables per-node invariant validation. It multiplies
// the cost of every node by a full O(n²) scan; use it in tests.
func WithInvariantChecks() Option {
	return func(o *Options) { o.CheckInvariants = true }
}
