package distmat_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degdiam/distmat"
)

const inf = distmat.Infinity

// randomEdges returns a deterministic random simple graph on n vertices
// where each pair is an edge with probability p.
func randomEdges(r *rand.Rand, n int, p float64) [][2]int {
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.Float64() < p {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return edges
}

// mustFromEdges builds a matrix or fails the test.
func mustFromEdges(t *testing.T, n int, edges [][2]int) *distmat.Matrix {
	t.Helper()
	m, err := distmat.FromEdges(n, edges)
	require.NoError(t, err)

	return m
}

// requireSymmetricZeroDiag checks the two structural matrix invariants.
func requireSymmetricZeroDiag(t *testing.T, m *distmat.Matrix) {
	t.Helper()
	for i := 0; i < m.N(); i++ {
		require.Equal(t, 0, m.At(i, i), "diagonal %d", i)
		for j := i + 1; j < m.N(); j++ {
			require.Equal(t, m.At(i, j), m.At(j, i), "pair %d,%d", i, j)
		}
	}
}
