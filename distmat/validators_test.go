package distmat_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degdiam/distmat"
)

func TestValidateResolved(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]int
		ok   bool
	}{
		{"path", [][]int{{0, 1, 2}, {1, 0, 1}, {2, 1, 0}}, true},
		{"isolated vertex", [][]int{{0, 1, inf}, {1, 0, inf}, {inf, inf, 0}}, true},
		// 0 is adjacent to 1 and 2, but 1–2 is still infinite.
		{"not closed", [][]int{{0, 1, 1}, {1, 0, inf}, {1, inf, 0}}, false},
		// 1–2 is 3 while the path through 0 has length 2.
		{"too long", [][]int{{0, 1, 1}, {1, 0, 3}, {1, 3, 0}}, false},
		// 0–1 is 2 without any edge to walk along.
		{"too short", [][]int{{0, 2, inf}, {2, 0, inf}, {inf, inf, 0}}, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := distmat.FromDistances(tc.rows)
			require.NoError(t, err)
			require.NoError(t, m.Validate())

			err = m.ValidateResolved()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, distmat.ErrNotResolved)
		})
	}
}

func TestValidateResolved_AfterFloydWarshall(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 20; trial++ {
		n := 2 + r.Intn(9)
		m := mustFromEdges(t, n, randomEdges(r, n, 0.3))
		require.NoError(t, m.ValidateResolved(), "trial %d", trial)

		// An extension attached through RecomputeLast stays resolved.
		x := m.Extend()
		require.NoError(t, x.Connect(r.Intn(n), n))
		x.RecomputeLast()
		require.NoError(t, x.ValidateResolved(), "trial %d", trial)
	}
}
