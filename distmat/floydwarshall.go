// SPDX-License-Identifier: MIT
// Package: distmat
//
// floydwarshall.go — full all-pairs shortest paths.
//
// Contract:
//   • Unit cells are edges, Infinity means "no path", diagonal is 0.
//   • Loop order is fixed (k → i → j) for deterministic results.
//   • Only the upper triangle is relaxed; each improvement is mirrored, so
//     symmetry holds after every single write.

package distmat

// FloydWarshall resolves all shortest paths of m in place.
// Partially resolved inputs are fine: cells only ever decrease.
//
// Time: O(n³). Extra space: O(1).
func (m *Matrix) FloydWarshall() {
	n := m.n
	data := m.dist

	var (
		k, i, j    int
		baseK      int
		ik, kj, ij int
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == Infinity || i == k {
				continue // no path i→k, or k adds nothing to row k
			}
			for j = i + 1; j < n; j++ {
				kj = data[baseK+j]
				if kj == Infinity {
					continue
				}
				ij = data[i*n+j]
				if ik+kj < ij {
					m.setPair(i, j, ik+kj)
				}
			}
		}
	}
}
