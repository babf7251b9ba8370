package matchutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cvmatch/matchutil"
)

func f(v float64) *float64 { return &v }

func value(costs [][]*float64, matching []int) float64 {
	var sum float64
	for i, j := range matching {
		sum += *costs[i][j]
	}

	return sum
}

func TestMaximumMatchingSanity(t *testing.T) {
	costs := [][]*float64{
		{f(-8), f(-4), f(-7)},
		{f(-6), f(-2), f(-3)},
		{f(-9), f(-4), f(-8)},
	}

	matching, err := matchutil.MaximumMatching(costs)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 1}, matching)
	require.Equal(t, -15., value(costs, matching))
}

func TestMaximumMatchingDisallowedEdgeFeasible(t *testing.T) {
	costs := [][]*float64{
		{nil, f(-4), f(-7)},
		{f(-6), f(-2), f(-3)},
		{f(-9), f(-4), f(-8)},
	}

	matching, err := matchutil.MaximumMatching(costs)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 0}, matching)
	require.Equal(t, -16., value(costs, matching))
}

func TestMaximumMatchingDisallowedEdgeInfeasible(t *testing.T) {
	costs := [][]*float64{
		{nil, f(-4), f(-7)},
		{nil, f(-2), f(-3)},
		{nil, f(-4), f(-8)},
	}

	matching, err := matchutil.MaximumMatching(costs)
	require.NoError(t, err)
	require.Nil(t, matching)
}

func TestMaximumMatchingPositiveCosts(t *testing.T) {
	costs := [][]*float64{
		{f(100), f(110), f(90)},
		{f(95), f(130), f(75)},
		{f(95), f(140), f(65)},
	}

	matching, err := matchutil.MaximumMatching(costs)
	require.NoError(t, err)
	require.Equal(t, []int{2, 0, 1}, matching)
}

func TestMaximumMatchingEmpty(t *testing.T) {
	matching, err := matchutil.MaximumMatching(nil)
	require.NoError(t, err)
	require.Empty(t, matching)
}

func TestMaximumMatchingNonSquare(t *testing.T) {
	costs := [][]*float64{
		{f(1), f(2)},
		{f(1)},
	}

	matching, err := matchutil.MaximumMatching(costs)
	require.ErrorIs(t, err, matchutil.ErrNonSquare)
	require.Nil(t, matching)
}
