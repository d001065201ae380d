package distmat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degdiam/distmat"
)

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := distmat.New(0)
	require.ErrorIs(t, err, distmat.ErrBadShape)

	m, err := distmat.New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, m.N())
	assert.Equal(t, 0, m.Edges())
	assert.Equal(t, 0, m.MaxDegree())
	assert.Equal(t, inf, m.At(0, 2))
	assert.False(t, m.Connected())
	require.NoError(t, m.Validate())
}

func TestFromEdges_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		n     int
		edges [][2]int
		want  error
	}{
		{"zero vertices", 0, nil, distmat.ErrBadShape},
		{"self loop", 3, [][2]int{{1, 1}}, distmat.ErrSelfLoop},
		{"duplicate", 3, [][2]int{{0, 1}, {1, 0}}, distmat.ErrDuplicateEdge},
		{"out of range", 3, [][2]int{{0, 3}}, distmat.ErrOutOfRange},
		{"negative", 3, [][2]int{{-1, 2}}, distmat.ErrOutOfRange},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := distmat.FromEdges(tc.n, tc.edges)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromEdges_Path(t *testing.T) {
	t.Parallel()

	m := mustFromEdges(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	assert.Equal(t, [][]int{
		{0, 1, 2, 3},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{3, 2, 1, 0},
	}, m.Rows())
	assert.Equal(t, []int{1, 2, 2, 1}, m.Degrees())
	assert.Equal(t, 3, m.Edges())
	assert.Equal(t, 2, m.MaxDegree())
	require.NoError(t, m.Validate())
}

func TestFromDistances(t *testing.T) {
	t.Parallel()

	// The five-vertex graph 0-1,0-2,1-2,1-4,2-3,3-4.
	rows := [][]int{
		{0, 1, 1, 2, 2},
		{1, 0, 1, 2, 1},
		{1, 1, 0, 1, 2},
		{2, 2, 1, 0, 1},
		{2, 1, 2, 1, 0},
	}
	m, err := distmat.FromDistances(rows)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 3, 2, 2}, m.Degrees())
	assert.Equal(t, 6, m.Edges())
	assert.Equal(t, 3, m.MaxDegree())

	// Input is copied.
	rows[0][1] = 7
	assert.Equal(t, 1, m.At(0, 1))
}

func TestFromDistances_Errors(t *testing.T) {
	t.Parallel()

	_, err := distmat.FromDistances(nil)
	require.ErrorIs(t, err, distmat.ErrBadShape)

	_, err = distmat.FromDistances([][]int{{0, 1}, {1}})
	require.ErrorIs(t, err, distmat.ErrBadShape)

	_, err = distmat.FromDistances([][]int{{0, 1}, {2, 0}})
	require.ErrorIs(t, err, distmat.ErrAsymmetry)

	_, err = distmat.FromDistances([][]int{{1, 1}, {1, 0}})
	require.ErrorIs(t, err, distmat.ErrNonZeroDiagonal)

	_, err = distmat.FromDistances([][]int{{0, -1}, {-1, 0}})
	require.ErrorIs(t, err, distmat.ErrBadDistance)
}

func TestFromState(t *testing.T) {
	t.Parallel()

	rows := [][]int{
		{0, 1, 1},
		{1, 0, 2},
		{1, 2, 0},
	}
	m, err := distmat.FromState(rows, []int{2, 1, 1}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, m.MaxDegree())

	_, err = distmat.FromState(rows, []int{2, 1}, 2)
	require.ErrorIs(t, err, distmat.ErrBadShape)

	_, err = distmat.FromState(rows, []int{2, 2, 1}, 2)
	require.ErrorIs(t, err, distmat.ErrDegreeMismatch)

	_, err = distmat.FromState(rows, []int{2, 1, 1}, 3)
	require.ErrorIs(t, err, distmat.ErrEdgeCountMismatch)
}

func TestCloneEqual(t *testing.T) {
	t.Parallel()

	m := mustFromEdges(t, 4, [][2]int{{0, 1}, {1, 2}})
	c := m.Clone()
	require.True(t, m.Equal(c))

	require.NoError(t, c.Connect(2, 3))
	assert.False(t, m.Equal(c))
	assert.Equal(t, 2, m.Edges(), "clone must not alias the original")

	var nilM *distmat.Matrix
	assert.True(t, nilM.Equal(nil))
	assert.False(t, m.Equal(nil))
}

func TestAccessorsPanicOutOfRange(t *testing.T) {
	t.Parallel()

	m := mustFromEdges(t, 2, [][2]int{{0, 1}})
	assert.Panics(t, func() { m.At(0, 2) })
	assert.Panics(t, func() { m.Degree(-1) })
	assert.Panics(t, func() { m.Neighbors(nil, 5) })
}
