package permutation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cvmatch/permutation"
)

func TestIdentity(t *testing.T) {
	p := permutation.Identity(4)

	for i := 0; i < 4; i++ {
		require.Equal(t, i, p.GoesTo(i))
		require.Equal(t, i, p.ComesFrom(i))
	}
	require.Empty(t, p.Cycles())
}

func TestFromCyclesRoundTrip(t *testing.T) {
	p, err := permutation.FromCycles(5, [][]int{{1, 2, 3}})
	require.NoError(t, err)

	require.Equal(t, 2, p.GoesTo(1))
	require.Equal(t, 3, p.GoesTo(2))
	require.Equal(t, 1, p.GoesTo(3))
	require.Equal(t, 0, p.GoesTo(0))
	require.Equal(t, 4, p.GoesTo(4))

	require.Equal(t, 3, p.ComesFrom(1))
	require.Equal(t, 1, p.ComesFrom(2))
	require.Equal(t, 2, p.ComesFrom(3))

	require.Equal(t, [][]int{{1, 2, 3}}, p.Cycles())
}

func TestFromComesFromIsInverseOfGoesTo(t *testing.T) {
	goesTo, err := permutation.FromGoesTo([]int{1, 2, 0})
	require.NoError(t, err)

	comesFrom, err := permutation.FromComesFrom([]int{2, 0, 1})
	require.NoError(t, err)

	require.True(t, goesTo.Equal(comesFrom))
}

func TestFromGoesToRejectsNonBijection(t *testing.T) {
	_, err := permutation.FromGoesTo([]int{0, 0})
	require.ErrorIs(t, err, permutation.ErrNotBijective)

	_, err = permutation.FromGoesTo([]int{0, 5})
	require.ErrorIs(t, err, permutation.ErrOutOfRange)
}

func TestMinimalReturnsDenseMapping(t *testing.T) {
	p, err := permutation.FromCycles(3, [][]int{{0, 1}})
	require.NoError(t, err)

	require.Equal(t, []int{1, 0, 2}, p.Minimal())
}

func TestCyclesSkipFixedPoints(t *testing.T) {
	p, err := permutation.FromCycles(6, [][]int{{0, 1}, {3, 4, 5}})
	require.NoError(t, err)

	cycles := p.Cycles()
	require.Len(t, cycles, 2)
	require.Contains(t, cycles, []int{0, 1})
	require.Contains(t, cycles, []int{3, 4, 5})
}
