// SPDX-License-Identifier: MIT
// Package: search
//
// binomial.go — counting attachment sets.
//
// A base vertex can receive at most one edge from the new vertex, so it is
// eligible exactly when its degree is below the bound, independently of the
// other choices. With f eligible vertices a search therefore reports
// Σ_{k=1..min(d,f)} C(f,k) candidates.

package search

import (
	"math"

	"github.com/katalvlaran/degdiam/distmat"
)

// pascal returns rows 0..n of Pascal's triangle. Entries saturate at
// math.MaxUint64 instead of wrapping.
func pascal(n int) [][]uint64 {
	rows := make([][]uint64, n+1)
	for i := 0; i <= n; i++ {
		rows[i] = make([]uint64, i+1)
		rows[i][0], rows[i][i] = 1, 1
		for k := 1; k < i; k++ {
			a, b := rows[i-1][k-1], rows[i-1][k]
			if a > math.MaxUint64-b {
				rows[i][k] = math.MaxUint64
				continue
			}
			rows[i][k] = a + b
		}
	}

	return rows
}

// Binomial returns C(n, k), 0 when k is outside [0, n], and
// math.MaxUint64 when the value does not fit.
func Binomial(n, k int) uint64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}

	return pascal(n)[n][k]
}

// CountExtensions returns the number of candidates Extend(base) reports
// with the given degree bound. It returns 0 whenever Extend would reject
// the input: a nil base, a bound below 1, or a base vertex already above
// the bound.
func CountExtensions(base *distmat.Matrix, maxDegree int) uint64 {
	if base == nil || maxDegree < 1 || base.MaxDegree() > maxDegree {
		return 0
	}

	var f int
	for v := 0; v < base.N(); v++ {
		if base.Degree(v) < maxDegree {
			f++
		}
	}

	row := pascal(f)[f]
	var total uint64
	for k := 1; k <= min(maxDegree, f); k++ {
		if total > math.MaxUint64-row[k] {
			return math.MaxUint64
		}
		total += row[k]
	}

	return total
}
