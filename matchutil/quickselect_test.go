package matchutil_test

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cvmatch/matchutil"
)

// descending sorts greatest-first, matching the matcher's percentile usage.
func descending(a, b float64) int { return cmp.Compare(b, a) }

func verifyQuickselect(t *testing.T, rng *rand.Rand, pos int, data []float64) {
	t.Helper()

	s := append([]float64(nil), data...)
	matchutil.Quickselect(rng, s, descending, pos)

	for i := 0; i < pos; i++ {
		require.GreaterOrEqualf(t, s[i], s[pos], "pos=%d i=%d slice=%v", pos, i, s)
	}
	for i := pos + 1; i < len(s); i++ {
		require.LessOrEqualf(t, s[i], s[pos], "pos=%d i=%d slice=%v", pos, i, s)
	}

	want := append([]float64(nil), data...)
	slices.SortFunc(want, descending)
	require.Equal(t, want[pos], s[pos])
}

func TestQuickselect(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	verifyQuickselect(t, rng, 2, []float64{5, 4, 3, 2, 1})
	verifyQuickselect(t, rng, 2, []float64{1, 2, 3, 4, 5})
	verifyQuickselect(t, rng, 3, []float64{1, 2, 1, 4, 3})
}

func TestQuickselectRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 1; n <= 100; n++ {
		data := make([]float64, n)
		for i := range data {
			data[i] = rng.Float64()
		}
		pos := rng.Intn(n)
		verifyQuickselect(t, rng, pos, data)
	}
}
