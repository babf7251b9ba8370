package matchutil

import "math/rand"

// Quickselect partitions s in place so that, using cmp as the ordering
// (cmp(a, b) < 0 means a sorts before b), s[k] holds the value it would
// have at index k in a fully sorted copy of s: every element at an index
// less than k sorts no later than s[k], and every element at an index
// greater than k sorts no earlier. This is the standard randomized
// quickselect, generalized with Go generics so every caller shares one
// implementation instead of hand-rolling a per-type percentile pass.
//
// cmp should order s the way the caller wants index k to mean "the k-th
// element in that order" — e.g. pass a reversed comparator to select the
// k-th largest.
func Quickselect[T any](rng *rand.Rand, s []T, cmp func(a, b T) int, k int) {
	for {
		n := len(s)
		if n < 2 {
			return
		}

		spot := partition(rng, s, cmp)

		switch {
		case k < spot:
			s = s[:spot]
		case k == spot:
			return
		default:
			s = s[spot+1:]
			k = k - spot - 1
		}
	}
}

// partition is a Hoare-style partition around a randomly chosen pivot
// (swapped into index 0), grounded on the collaborator's own quickselect
// partition routine. It returns the pivot's final resting index.
func partition[T any](rng *rand.Rand, s []T, cmp func(a, b T) int) int {
	pivot := rng.Intn(len(s))
	s[0], s[pivot] = s[pivot], s[0]

	i, j := 1, len(s)-1

	for {
		for i < len(s) && cmp(s[i], s[0]) <= 0 {
			i++
		}
		for cmp(s[j], s[0]) > 0 {
			j--
		}

		if i > j {
			s[0], s[j] = s[j], s[0]
			return j
		}

		s[i], s[j] = s[j], s[i]
		i++
	}
}
