// SPDX-License-Identifier: MIT
// Package: seed
//
// errors.go — sentinel errors for the seed package.

package seed

import "errors"

var (
	// ErrTooFewVertices indicates a size below the constructor's minimum.
	ErrTooFewVertices = errors.New("seed: parameter too small")

	// ErrUnknownSeed indicates a name that Build does not know.
	ErrUnknownSeed = errors.New("seed: unknown seed")
)
