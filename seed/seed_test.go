package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degdiam/seed"
)

func TestConstructors_Statistics(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		size     int
		n        int
		edges    int
		maxDeg   int
		diameter int
	}{
		{"path", 1, 1, 0, 0, 0},
		{"path", 5, 5, 4, 2, 4},
		{"cycle", 7, 7, 7, 2, 3},
		{"star", 6, 6, 5, 5, 2},
		{"complete", 5, 5, 10, 4, 1},
		{"wheel", 6, 6, 10, 5, 2},
		{"cube", 0, 8, 12, 3, 3},
		{"petersen", 0, 10, 15, 3, 2},
		{"sample", 0, 5, 6, 3, 2},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := seed.Build(tc.name, tc.size)
			require.NoError(t, err)
			assert.Equal(t, tc.n, m.N())
			assert.Equal(t, tc.edges, m.Edges())
			assert.Equal(t, tc.maxDeg, m.MaxDegree())
			assert.Equal(t, tc.diameter, m.Diameter())
			assert.True(t, m.Connected())
			require.NoError(t, m.Validate())
		})
	}
}

func TestConstructors_Minimums(t *testing.T) {
	t.Parallel()

	_, err := seed.Path(0)
	require.ErrorIs(t, err, seed.ErrTooFewVertices)
	_, err = seed.Cycle(2)
	require.ErrorIs(t, err, seed.ErrTooFewVertices)
	_, err = seed.Star(1)
	require.ErrorIs(t, err, seed.ErrTooFewVertices)
	_, err = seed.Complete(0)
	require.ErrorIs(t, err, seed.ErrTooFewVertices)
	_, err = seed.Wheel(3)
	require.ErrorIs(t, err, seed.ErrTooFewVertices)
}

func TestEdgesAreOrderedPairs(t *testing.T) {
	t.Parallel()

	for _, name := range seed.Names() {
		s, err := seed.Lookup(name, 6)
		require.NoError(t, err, name)
		seen := make(map[[2]int]bool)
		for _, e := range s.Edges {
			assert.Less(t, e[0], e[1], "%s edge %v", name, e)
			assert.False(t, seen[e], "%s duplicate edge %v", name, e)
			seen[e] = true
		}
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"complete", "cube", "cycle", "path", "petersen", "sample", "star", "wheel"}, seed.Names())
	assert.True(t, seed.Fixed("petersen"))
	assert.False(t, seed.Fixed("cycle"))

	_, err := seed.Build("hypercube", 4)
	require.ErrorIs(t, err, seed.ErrUnknownSeed)

	_, err = seed.Build("cycle", 2)
	require.ErrorIs(t, err, seed.ErrTooFewVertices)
}

func TestPetersen_IsThreeRegular(t *testing.T) {
	t.Parallel()

	m, err := seed.Petersen().Matrix()
	require.NoError(t, err)
	for _, k := range m.Degrees() {
		assert.Equal(t, 3, k)
	}
}
