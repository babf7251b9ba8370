package orbitmatch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cvmatch/colorid"
	"github.com/katalvlaran/cvmatch/geometry"
	"github.com/katalvlaran/cvmatch/group"
	"github.com/katalvlaran/cvmatch/orbitmatch"
	"github.com/katalvlaran/cvmatch/permutation"
)

// twoSwappablePieces builds a 4-facelet group of two 2-sticker pieces that
// can swap places: piece 0 holds stickers {0,1}, piece 1 holds stickers
// {2,3}, each internally twistable, and a single generator swaps the pieces
// with no relative twist.
func twoSwappablePieces(t *testing.T) (*group.PermutationGroup, geometry.Orbit, []geometry.OrientationNumber) {
	t.Helper()

	var interner colorid.Interner
	red := interner.Intern("red")
	blue := interner.Intern("blue")

	twist, err := permutation.FromCycles(4, [][]int{{0, 1}})
	require.NoError(t, err)
	twist2, err := permutation.FromCycles(4, [][]int{{2, 3}})
	require.NoError(t, err)

	orbit := geometry.Orbit{
		Pieces: []geometry.Piece{
			{Stickers: []geometry.Sticker{0, 1}, Twist: twist},
			{Stickers: []geometry.Sticker{2, 3}, Twist: twist2},
		},
		OrientationCount: 2,
	}

	swap, err := permutation.FromCycles(4, [][]int{{0, 2}, {1, 3}})
	require.NoError(t, err)

	g, err := group.New(4, []colorid.Color{red, blue, red, blue}, []int{0, 0, 1, 1}, map[string]permutation.Permutation{
		"swap": swap,
	})
	require.NoError(t, err)

	orientationNumbers := []geometry.OrientationNumber{0, 1, 0, 1}

	return g, orbit, orientationNumbers
}

func TestOrbitMatcherFirstResultIsGroupMember(t *testing.T) {
	g, orbit, orientationNumbers := twoSwappablePieces(t)

	m, err := orbitmatch.NewOrbitMatcher(g, orbit, orientationNumbers)
	require.NoError(t, err)

	logLikelihoods := make([]map[colorid.Color]float64, 4)
	red := g.FaceletColors()[0]
	blue := g.FaceletColors()[1]
	logLikelihoods[0] = map[colorid.Color]float64{red: 0, blue: -5}
	logLikelihoods[1] = map[colorid.Color]float64{blue: 0, red: -5}
	logLikelihoods[2] = map[colorid.Color]float64{red: 0, blue: -5}
	logLikelihoods[3] = map[colorid.Color]float64{blue: 0, red: -5}

	iter := m.MostLikelyMatchings(logLikelihoods)

	first, firstLL, ok := iter.Next()
	require.True(t, ok)
	require.True(t, group.NewStabilizerChain(g).IsMember(first))

	_, secondLL, ok := iter.Next()
	if ok {
		require.GreaterOrEqual(t, firstLL, secondLL)
	}
}

func TestOrbitMatcherExhaustsEventually(t *testing.T) {
	g, orbit, orientationNumbers := twoSwappablePieces(t)

	m, err := orbitmatch.NewOrbitMatcher(g, orbit, orientationNumbers)
	require.NoError(t, err)

	logLikelihoods := make([]map[colorid.Color]float64, 4)
	red := g.FaceletColors()[0]
	blue := g.FaceletColors()[1]
	for i := range logLikelihoods {
		logLikelihoods[i] = map[colorid.Color]float64{red: -1, blue: -1}
	}

	iter := m.MostLikelyMatchings(logLikelihoods)

	count := 0
	for i := 0; i < 1000; i++ {
		_, _, ok := iter.Next()
		if !ok {
			break
		}
		count++
	}
	require.Less(t, count, 1000, "orbit search should exhaust for a 2-piece orbit")
}
