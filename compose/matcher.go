package compose

import (
	"github.com/katalvlaran/cvmatch/colorid"
	"github.com/katalvlaran/cvmatch/geometry"
	"github.com/katalvlaran/cvmatch/group"
	"github.com/katalvlaran/cvmatch/orbitmatch"
	"github.com/katalvlaran/cvmatch/permutation"
)

// Matcher is the whole-puzzle inference entry point: one OrbitMatcher per
// orbit, merged lazily by PuzzleIter and filtered to the puzzle's full
// permutation group.
type Matcher struct {
	puzzle        geometry.Puzzle
	stabChain     *group.StabilizerChain
	orbitMatchers []*orbitmatch.OrbitMatcher
}

// NewMatcher builds a Matcher for puzzle's geometry and permutation group.
func NewMatcher(puzzle geometry.Puzzle) (*Matcher, error) {
	g := puzzle.PermutationGroup()
	orientationNumbers := puzzle.OrientationNumbers()

	orbitMatchers := make([]*orbitmatch.OrbitMatcher, 0, len(puzzle.Orbits()))
	for _, orbit := range puzzle.Orbits() {
		om, err := orbitmatch.NewOrbitMatcher(g, orbit, orientationNumbers)
		if err != nil {
			return nil, err
		}
		orbitMatchers = append(orbitMatchers, om)
	}

	return &Matcher{
		puzzle:        puzzle,
		stabChain:     group.NewStabilizerChain(g),
		orbitMatchers: orbitMatchers,
	}, nil
}

// MostLikely returns the single most likely whole-puzzle permutation
// consistent with logLikelihoods and the puzzle's full permutation group,
// or ok=false if no orbit combination is ever a group member.
func (m *Matcher) MostLikely(logLikelihoods []map[colorid.Color]float64) (permutation.Permutation, float64, bool) {
	orbitIters := make([]OrbitIter, len(m.orbitMatchers))
	for i, om := range m.orbitMatchers {
		orbitIters[i] = om.MostLikelyMatchings(logLikelihoods)
	}

	puzzleIter := NewPuzzleIter(m.puzzle.FaceletCount(), orbitIters)

	for {
		perm, ll, ok := puzzleIter.Next()
		if !ok {
			return permutation.Permutation{}, 0, false
		}
		if m.stabChain.IsMember(perm) {
			return perm, ll, true
		}
	}
}
