// SPDX-License-Identifier: MIT
// Package: distmat
//
// builder.go — constructors.
//
// Contract:
//   • New(n): n isolated vertices.
//   • FromEdges(n, edges): unit adjacency, then FloydWarshall.
//   • FromDistances(rows): an already resolved matrix; degree bookkeeping is
//     derived from its unit cells.
//   • FromState(rows, deg, edges): as FromDistances, but the caller's degree
//     array and edge count are cross-checked against the matrix.
//   • All constructors copy their input; callers keep ownership of slices.

package distmat

const (
	opNew           = "distmat.New"
	opFromEdges     = "distmat.FromEdges"
	opFromDistances = "distmat.FromDistances"
	opFromState     = "distmat.FromState"
)

// New returns a matrix of n isolated vertices: zero diagonal, Infinity elsewhere.
func New(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, opErrorf(opNew, "n=%d: %w", n, ErrBadShape)
	}

	return newIsolated(n), nil
}

func newIsolated(n int) *Matrix {
	m := &Matrix{
		n:    n,
		dist: make([]int, n*n),
		deg:  make([]int, n),
	}
	for i := range m.dist {
		m.dist[i] = Infinity
	}
	for i := 0; i < n; i++ {
		m.dist[i*n+i] = 0
	}

	return m
}

// FromEdges builds the n-vertex graph with the given undirected edges and
// resolves all shortest paths with FloydWarshall.
func FromEdges(n int, edges [][2]int) (*Matrix, error) {
	if n <= 0 {
		return nil, opErrorf(opFromEdges, "n=%d: %w", n, ErrBadShape)
	}

	m := newIsolated(n)
	for _, e := range edges {
		if err := m.Connect(e[0], e[1]); err != nil {
			return nil, opErrorf(opFromEdges, "edge %d-%d: %w", e[0], e[1], err)
		}
	}
	m.FloydWarshall()

	return m, nil
}

// FromDistances wraps a resolved distance matrix. Degrees, the edge count
// and the maximum degree are derived from the cells equal to 1.
func FromDistances(rows [][]int) (*Matrix, error) {
	m, err := fromRows(rows)
	if err != nil {
		return nil, opErrorf(opFromDistances, "%w", err)
	}
	m.deriveDegrees()

	return m, nil
}

// FromState wraps a resolved distance matrix together with the caller's
// degree array and edge count, and rejects any disagreement between them.
func FromState(rows [][]int, deg []int, edges int) (*Matrix, error) {
	m, err := fromRows(rows)
	if err != nil {
		return nil, opErrorf(opFromState, "%w", err)
	}
	if len(deg) != m.n {
		return nil, opErrorf(opFromState, "degree array len=%d, n=%d: %w", len(deg), m.n, ErrBadShape)
	}
	copy(m.deg, deg)
	m.edges = edges
	for _, k := range deg {
		if k > m.maxDeg {
			m.maxDeg = k
		}
	}
	if err = m.Validate(); err != nil {
		return nil, opErrorf(opFromState, "%w", err)
	}

	return m, nil
}

// fromRows copies rows into a fresh Matrix after shape, domain, diagonal and
// symmetry checks. Degree bookkeeping is left zero.
func fromRows(rows [][]int) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrBadShape
	}
	m := &Matrix{n: n, dist: make([]int, n*n), deg: make([]int, n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, opErrorf("row", "%d has len=%d, want %d: %w", i, len(row), n, ErrBadShape)
		}
		for j, d := range row {
			if d < 0 || d > Infinity {
				return nil, opErrorf("cell", "(%d,%d)=%d: %w", i, j, d, ErrBadDistance)
			}
			m.dist[i*n+j] = d
		}
	}
	if err := m.validateShape(); err != nil {
		return nil, err
	}

	return m, nil
}

// deriveDegrees recounts deg, edges and maxDeg from the unit cells.
func (m *Matrix) deriveDegrees() {
	var sum int
	m.maxDeg = 0
	for i := 0; i < m.n; i++ {
		k := 0
		row := m.dist[i*m.n : (i+1)*m.n]
		for j, d := range row {
			if d == 1 && j != i {
				k++
			}
		}
		m.deg[i] = k
		sum += k
		if k > m.maxDeg {
			m.maxDeg = k
		}
	}
	m.edges = sum / 2
}
