// SPDX-License-Identifier: MIT
// Package: distmat
//
// types.go — the Matrix type and its basic accessors.
//
// Storage:
//   • dist is a flat row-major buffer of n*n ints; dist[i*n+j] is the
//     shortest-path length between i and j, Infinity when none is known.
//   • deg, edges and maxDeg are maintained incrementally by Connect and
//     restored by Rollback; they are never rescanned on the hot path.

package distmat

import "math"

// Infinity is the distance sentinel for "no path". It is large enough that
// no simple graph handled here reaches it, and small enough that a single
// addition of a finite distance cannot overflow int.
const Infinity = math.MaxInt32

// Matrix is the graph state of the extension search: an all-pairs
// shortest-path matrix plus degree bookkeeping.
//
// A Matrix is owned by one goroutine; none of its methods lock.
type Matrix struct {
	n      int   // vertex count
	dist   []int // row-major n×n distances
	deg    []int // deg[i] = number of unit cells in row i
	edges  int   // Σdeg/2
	maxDeg int   // max(deg), maintained incrementally

	// Undo journal. Writes are logged only while journaling is true.
	journaling bool
	journal    []undo

	// nbrs is scratch for RecomputeLast, reused across calls.
	nbrs []int
}

// undoKind selects which field an undo record restores.
type undoKind uint8

const (
	undoCell   undoKind = iota // symmetric distance pair (i,j)
	undoDegree                 // deg[i]
	undoEdges                  // edges
	undoMaxDeg                 // maxDeg
)

// undo is one journal record: the value a field held before a write.
type undo struct {
	kind undoKind
	i, j int
	old  int
}

// N returns the vertex count.
func (m *Matrix) N() int { return m.n }

// At returns the distance between i and j (Infinity if disconnected).
// It panics if i or j is out of range.
func (m *Matrix) At(i, j int) int {
	m.mustIndex(i)
	m.mustIndex(j)

	return m.dist[i*m.n+j]
}

// Degree returns the degree of vertex v. It panics if v is out of range.
func (m *Matrix) Degree(v int) int {
	m.mustIndex(v)

	return m.deg[v]
}

// Degrees returns a copy of the degree array.
func (m *Matrix) Degrees() []int {
	out := make([]int, m.n)
	copy(out, m.deg)

	return out
}

// MaxDegree returns the largest vertex degree.
func (m *Matrix) MaxDegree() int { return m.maxDeg }

// Edges returns the number of edges.
func (m *Matrix) Edges() int { return m.edges }

// Rows returns the distances as a freshly allocated n×n slice.
func (m *Matrix) Rows() [][]int {
	out := make([][]int, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = make([]int, m.n)
		copy(out[i], m.dist[i*m.n:(i+1)*m.n])
	}

	return out
}

// Adjacent reports whether u and v share an edge.
func (m *Matrix) Adjacent(u, v int) bool { return u != v && m.At(u, v) == 1 }

// Neighbors appends the neighbours of v in ascending order to dst and
// returns the extended slice.
func (m *Matrix) Neighbors(dst []int, v int) []int {
	m.mustIndex(v)
	row := m.dist[v*m.n : (v+1)*m.n]
	for j, d := range row {
		if d == 1 && j != v {
			dst = append(dst, j)
		}
	}

	return dst
}

// Clone returns a deep copy of m. The copy has journaling disabled and
// an empty journal.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{
		n:      m.n,
		dist:   make([]int, len(m.dist)),
		deg:    make([]int, len(m.deg)),
		edges:  m.edges,
		maxDeg: m.maxDeg,
	}
	copy(c.dist, m.dist)
	copy(c.deg, m.deg)

	return c
}

// Equal reports whether m and o hold identical distances, degrees, edge
// counts and maximum degrees. Journal state is ignored.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n || m.edges != o.edges || m.maxDeg != o.maxDeg {
		return false
	}
	for i, d := range m.dist {
		if o.dist[i] != d {
			return false
		}
	}
	for i, k := range m.deg {
		if o.deg[i] != k {
			return false
		}
	}

	return true
}

func (m *Matrix) mustIndex(v int) {
	if v < 0 || v >= m.n {
		panic(opErrorf("distmat", "index %d not in [0,%d): %w", v, m.n, ErrOutOfRange))
	}
}
