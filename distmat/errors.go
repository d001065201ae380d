// SPDX-License-Identifier: MIT
// Package: distmat
//
// errors.go — sentinel errors for the distmat package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Constructors wrap sentinels with the operation name and indices via %w.
//   • Hot-path index violations are programmer errors and panic instead.

package distmat

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a matrix is empty or not square, or when a
	// parallel degree array does not match the vertex count.
	ErrBadShape = errors.New("distmat: invalid shape")

	// ErrOutOfRange indicates that a vertex index is outside [0, n).
	ErrOutOfRange = errors.New("distmat: vertex index out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide; graphs are simple.
	ErrSelfLoop = errors.New("distmat: self-loop not allowed")

	// ErrDuplicateEdge indicates an edge that is already present; graphs are simple.
	ErrDuplicateEdge = errors.New("distmat: duplicate edge")

	// ErrBadDistance indicates a cell that is negative or above Infinity.
	ErrBadDistance = errors.New("distmat: invalid distance value")

	// ErrAsymmetry indicates dist[i][j] != dist[j][i] for some pair.
	ErrAsymmetry = errors.New("distmat: matrix is not symmetric")

	// ErrNonZeroDiagonal indicates dist[i][i] != 0 for some vertex.
	ErrNonZeroDiagonal = errors.New("distmat: diagonal not zero")

	// ErrDegreeMismatch indicates a degree counter that disagrees with the
	// number of unit cells in its row.
	ErrDegreeMismatch = errors.New("distmat: degree counter out of sync")

	// ErrEdgeCountMismatch indicates an edge counter != (Σ degree)/2.
	ErrEdgeCountMismatch = errors.New("distmat: edge count out of sync")

	// ErrNotResolved indicates a cell that is not the shortest-path length
	// over the matrix's unit cells.
	ErrNotResolved = errors.New("distmat: distances are not shortest paths")

	// ErrMaxDegreeMismatch indicates the running maximum degree != max(degree).
	ErrMaxDegreeMismatch = errors.New("distmat: max degree out of sync")
)

// opErrorf tags err with the operation name, keeping errors.Is semantics.
func opErrorf(op string, format string, args ...any) error {
	return fmt.Errorf(op+": "+format, args...)
}
