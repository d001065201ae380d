// SPDX-License-Identifier: MIT
// Package: distmat
//
// validators.go — invariant checks.
//
// Every check is a pure O(n²) scan of the upper triangle; nothing allocates.
// The order is fixed: diagonal → symmetry → degrees → edge count → max degree,
// so the same broken matrix always yields the same sentinel.

package distmat

const (
	opValidate         = "distmat.Validate"
	opValidateResolved = "distmat.ValidateResolved"
)

// Validate checks every structural invariant of m:
//
//   - dist[i][i] == 0 (ErrNonZeroDiagonal)
//   - dist[i][j] == dist[j][i] (ErrAsymmetry)
//   - deg[i] == |{j≠i : dist[i][j] == 1}| (ErrDegreeMismatch)
//   - edges == Σdeg/2 (ErrEdgeCountMismatch)
//   - maxDeg == max(deg) (ErrMaxDegreeMismatch)
func (m *Matrix) Validate() error {
	if err := m.validateShape(); err != nil {
		return opErrorf(opValidate, "%w", err)
	}

	var (
		sum, maxK int
		i, j, k   int
	)
	for i = 0; i < m.n; i++ {
		k = 0
		for j = 0; j < m.n; j++ {
			if j != i && m.dist[i*m.n+j] == 1 {
				k++
			}
		}
		if k != m.deg[i] {
			return opErrorf(opValidate, "vertex %d: counter=%d, unit cells=%d: %w", i, m.deg[i], k, ErrDegreeMismatch)
		}
		sum += k
		if k > maxK {
			maxK = k
		}
	}
	if sum%2 != 0 || m.edges != sum/2 {
		return opErrorf(opValidate, "edges=%d, degree sum=%d: %w", m.edges, sum, ErrEdgeCountMismatch)
	}
	if m.maxDeg != maxK {
		return opErrorf(opValidate, "maxDeg=%d, max(deg)=%d: %w", m.maxDeg, maxK, ErrMaxDegreeMismatch)
	}

	return nil
}

// validateShape checks the zero diagonal and symmetry.
func (m *Matrix) validateShape() error {
	var i, j int
	for i = 0; i < m.n; i++ {
		if d := m.dist[i*m.n+i]; d != 0 {
			return opErrorf("diagonal", "(%d,%d)=%d: %w", i, i, d, ErrNonZeroDiagonal)
		}
		for j = i + 1; j < m.n; j++ {
			if m.dist[i*m.n+j] != m.dist[j*m.n+i] {
				return opErrorf("symmetry", "(%d,%d)=%d, (%d,%d)=%d: %w",
					i, j, m.dist[i*m.n+j], j, i, m.dist[j*m.n+i], ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateResolved checks that every cell is the shortest-path length over
// the unit cells of m:
//
//   - no cell exceeds a two-hop sum through any vertex (closure)
//   - every finite cell above 1 has a neighbour one step closer (tightness)
//
// Together they force dist == BFS distance. Time: O(n³).
func (m *Matrix) ValidateResolved() error {
	n := m.n
	var (
		i, j, k    int
		ij, ik, kj int
		tight      bool
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			ij = m.dist[i*n+j]
			for k = 0; k < n; k++ {
				ik, kj = m.dist[i*n+k], m.dist[k*n+j]
				if ik != Infinity && kj != Infinity && ik+kj < ij {
					return opErrorf(opValidateResolved, "(%d,%d)=%d, via %d is %d: %w", i, j, ij, k, ik+kj, ErrNotResolved)
				}
			}
			if ij == 1 || ij == Infinity {
				continue
			}
			tight = false
			for k = 0; k < n && !tight; k++ {
				tight = k != i && m.dist[i*n+k] == 1 && m.dist[k*n+j] == ij-1
			}
			if !tight {
				return opErrorf(opValidateResolved, "(%d,%d)=%d has no neighbour of %d at %d: %w", i, j, ij, i, ij-1, ErrNotResolved)
			}
		}
	}

	return nil
}
