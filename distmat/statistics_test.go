package distmat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degdiam/distmat"
)

func TestStatistics(t *testing.T) {
	t.Parallel()

	// Petersen graph: 3-regular, diameter 2, 15 edges.
	petersen := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
		{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5},
	}
	m := mustFromEdges(t, 10, petersen)
	assert.Equal(t, 2, m.Diameter())
	assert.Equal(t, 3, m.MaxDegree())
	assert.Equal(t, 15, m.Edges())
	// 15 pairs at distance 1, the other 30 at distance 2.
	assert.Equal(t, 15+30*2, m.SumOfDistances())
	assert.True(t, m.Connected())

	ecc, all := m.Eccentricity(4)
	assert.Equal(t, 2, ecc)
	assert.True(t, all)
}

func TestStatistics_IgnoreInfinity(t *testing.T) {
	t.Parallel()

	m, err := distmat.New(3)
	require.NoError(t, err)
	require.NoError(t, m.Connect(0, 1))
	m.FloydWarshall()

	assert.Equal(t, 1, m.Diameter())
	assert.Equal(t, 1, m.SumOfDistances())
	assert.False(t, m.Connected())

	ecc, all := m.Eccentricity(2)
	assert.Equal(t, 0, ecc)
	assert.False(t, all)
}

func TestValidate_DetectsDesync(t *testing.T) {
	t.Parallel()

	rows := [][]int{
		{0, 1, 2},
		{1, 0, 1},
		{2, 1, 0},
	}
	_, err := distmat.FromState(rows, []int{1, 2, 1}, 2)
	require.NoError(t, err)

	_, err = distmat.FromState(rows, []int{1, 1, 1}, 2)
	require.ErrorIs(t, err, distmat.ErrDegreeMismatch)
}
