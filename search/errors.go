// SPDX-License-Identifier: MIT
// Package: search
//
// errors.go — sentinel errors for the search package.
//
// Input problems are returned as errors and matched with errors.Is.
// ErrInvariantViolated is only ever the payload of a panic.

package search

import "errors"

var (
	// ErrNilGraph is returned when a nil matrix is passed to Search or Extend.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrInvalidMaxDegree indicates a degree bound below 1.
	ErrInvalidMaxDegree = errors.New("search: max degree must be >= 1")

	// ErrTooFewVertices indicates an extended matrix with fewer than two
	// vertices, i.e. nothing for the new vertex to attach to.
	ErrTooFewVertices = errors.New("search: extended graph needs at least 2 vertices")

	// ErrNotIsolated indicates that the last vertex of the matrix passed to
	// Search already has edges or finite distances.
	ErrNotIsolated = errors.New("search: last vertex is not isolated")

	// ErrDegreeBound indicates a base vertex whose degree already exceeds
	// the bound.
	ErrDegreeBound = errors.New("search: base graph exceeds max degree")

	// ErrInvariantViolated signals that mutate/undo pairing broke the graph
	// state. It is raised with panic when invariant checks are enabled.
	ErrInvariantViolated = errors.New("search: invariant violated")
)
