// SPDX-License-Identifier: MIT
// Package: distmat
//
// statistics.go — derived statistics, one O(n²) scan each.
// Callers evaluate them at candidate-acceptance points only.

package distmat

// Diameter returns the largest finite distance between two distinct
// vertices, or 0 for a graph without any finite off-diagonal distance.
// Infinite cells are ignored; check Connected when that matters.
func (m *Matrix) Diameter() int {
	var diam int
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if d := m.dist[i*m.n+j]; d != Infinity && d > diam {
				diam = d
			}
		}
	}

	return diam
}

// SumOfDistances returns the sum of finite distances over unordered pairs.
func (m *Matrix) SumOfDistances() int {
	var sum int
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if d := m.dist[i*m.n+j]; d != Infinity {
				sum += d
			}
		}
	}

	return sum
}

// Connected reports whether every pair of vertices is joined by a path.
func (m *Matrix) Connected() bool {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.dist[i*m.n+j] == Infinity {
				return false
			}
		}
	}

	return true
}

// Eccentricity returns the largest finite distance from v, and whether v
// reaches every other vertex.
func (m *Matrix) Eccentricity(v int) (int, bool) {
	m.mustIndex(v)
	var ecc int
	all := true
	for _, d := range m.dist[v*m.n : (v+1)*m.n] {
		if d == Infinity {
			all = false
			continue
		}
		if d > ecc {
			ecc = d
		}
	}

	return ecc, all
}
