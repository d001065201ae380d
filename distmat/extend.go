// SPDX-License-Identifier: MIT
// Package: distmat
//
// extend.go — one-vertex growth: Extend, Connect and RecomputeLast.
//
// The search attaches the last vertex to a growing subset of the existing
// vertices. After each Connect(i, last) only paths through last can change,
// so RecomputeLast restores exact shortest paths in two O(n²) passes instead
// of a full O(n³) FloydWarshall:
//
//  1. Row of last: for every existing vertex i that is not a neighbour of
//     last, dist(last,i) = min over neighbours j of last of dist(j,i)+1.
//     A shortest path from last leaves through some neighbour j and never
//     returns to last, so this minimum is exact. The whole row is derived,
//     not only its infinite cells, since an earlier attachment may have
//     left a finite but now too long value.
//  2. Existing pairs: dist(i,j) = min(dist(i,j), dist(i,last)+dist(last,j)).

package distmat

const opConnect = "distmat.Connect"

// Extend returns a copy of m with one extra, isolated vertex appended at
// index n. Existing distances and degrees are copied unchanged, every
// distance to the new vertex is Infinity and its degree is 0. The edge
// count and the running maximum degree carry over from m.
func (m *Matrix) Extend() *Matrix {
	n := m.n
	x := newIsolated(n + 1)
	for i := 0; i < n; i++ {
		copy(x.dist[i*(n+1):i*(n+1)+n], m.dist[i*n:(i+1)*n])
	}
	copy(x.deg, m.deg)
	x.edges = m.edges
	x.maxDeg = m.maxDeg

	return x
}

// Connect adds the undirected edge u–v: both cells become 1 and the degree,
// edge and maximum-degree counters are updated. Other distances are not
// touched; call RecomputeLast (v == N()-1) or FloydWarshall afterwards.
func (m *Matrix) Connect(u, v int) error {
	if u < 0 || u >= m.n || v < 0 || v >= m.n {
		return opErrorf(opConnect, "%d-%d with n=%d: %w", u, v, m.n, ErrOutOfRange)
	}
	if u == v {
		return opErrorf(opConnect, "%d-%d: %w", u, v, ErrSelfLoop)
	}
	if m.dist[u*m.n+v] == 1 {
		return opErrorf(opConnect, "%d-%d: %w", u, v, ErrDuplicateEdge)
	}

	m.setPair(u, v, 1)
	m.setDegree(u, m.deg[u]+1)
	m.setDegree(v, m.deg[v]+1)
	m.setEdges(m.edges + 1)
	if k := max(m.deg[u], m.deg[v]); k > m.maxDeg {
		m.setMaxDegree(k)
	}

	return nil
}

// RecomputeLast restores exact shortest paths after edges were attached to
// the last vertex only. Every other part of m must already be resolved.
//
// Time: O(n²). Scratch: the neighbour list of last, reused across calls.
func (m *Matrix) RecomputeLast() {
	n := m.n
	last := n - 1
	data := m.dist

	m.nbrs = m.Neighbors(m.nbrs[:0], last)
	if len(m.nbrs) == 0 {
		return
	}

	var (
		i, j       int
		best, d    int
		di, dj, ij int
	)

	// Pass 1: distances between last and every existing vertex.
	for i = 0; i < last; i++ {
		if data[i*n+last] == 1 {
			continue
		}
		best = Infinity
		for _, j = range m.nbrs {
			d = data[j*n+i]
			if d != Infinity && d+1 < best {
				best = d + 1
			}
		}
		if best != data[i*n+last] {
			m.setPair(i, last, best)
		}
	}

	// Pass 2: one Floyd–Warshall round with k = last over existing pairs.
	for i = 0; i < last; i++ {
		di = data[i*n+last]
		if di == Infinity {
			continue
		}
		for j = i + 1; j < last; j++ {
			dj = data[last*n+j]
			if dj == Infinity {
				continue
			}
			ij = data[i*n+j]
			if di+dj < ij {
				m.setPair(i, j, di+dj)
			}
		}
	}
}
