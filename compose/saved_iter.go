package compose

import "github.com/katalvlaran/cvmatch/permutation"

// OrbitIter is a lazy, already-filtered stream of one orbit's candidate
// permutations in decreasing log-likelihood order. orbitmatch.MatchIter
// satisfies this.
type OrbitIter interface {
	Next() (permutation.Permutation, float64, bool)
}

type savedEntry struct {
	perm permutation.Permutation
	ll   float64
}

// savedIter wraps an OrbitIter so results already produced can be re-read
// by index without re-running the underlying search.
type savedIter struct {
	iter  OrbitIter
	saved []savedEntry
}

// get returns the i-th result this iterator has ever produced, pulling
// from the underlying iterator as many times as needed. ok is false if the
// iterator is exhausted before reaching index i.
func (s *savedIter) get(i int) (permutation.Permutation, float64, bool) {
	for len(s.saved) <= i {
		perm, ll, ok := s.iter.Next()
		if !ok {
			return permutation.Permutation{}, 0, false
		}
		s.saved = append(s.saved, savedEntry{perm: perm, ll: ll})
	}

	e := s.saved[i]

	return e.perm, e.ll, true
}
