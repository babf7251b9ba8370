package orbitmatch

import (
	"container/heap"

	"github.com/katalvlaran/cvmatch/colorid"
	"github.com/katalvlaran/cvmatch/geometry"
	"github.com/katalvlaran/cvmatch/group"
	"github.com/katalvlaran/cvmatch/permutation"
)

// stickerColorKey indexes which (piece, orientation) candidates are
// consistent with observing a given color at a given orientation number.
type stickerColorKey struct {
	orientationNumber geometry.OrientationNumber
	color             colorid.Color
}

// OrbitMatcher searches one puzzle orbit for its most likely piece
// permutations, grounded on the qvis core's OrbitMatcher.
type OrbitMatcher struct {
	stabChain          *group.StabilizerChain
	stickerColorPiece  map[stickerColorKey][]pieceOri
	orbit              geometry.Orbit
	orientationNumbers []geometry.OrientationNumber
	faceletCount       int
}

// NewOrbitMatcher builds a matcher for orbit within a puzzle whose full
// permutation group is g, using orientationNumbers to align stickers of
// different pieces that occupy the same orientation slot.
func NewOrbitMatcher(g *group.PermutationGroup, orbit geometry.Orbit, orientationNumbers []geometry.OrientationNumber) (*OrbitMatcher, error) {
	faceletCount := g.FaceletCount()
	stickerInOrbit := make([]bool, faceletCount)
	stickerColorPiece := map[stickerColorKey][]pieceOri{}
	faceletColors := g.FaceletColors()

	for pieceIdx, piece := range orbit.Pieces {
		for _, sticker := range piece.Stickers {
			stickerInOrbit[sticker] = true

			currentSticker := sticker
			for ori := 0; ori < orbit.OrientationCount; ori++ {
				key := stickerColorKey{
					orientationNumber: orientationNumbers[currentSticker],
					color:             faceletColors[sticker],
				}
				stickerColorPiece[key] = append(stickerColorPiece[key], pieceOri{piece: pieceIdx, ori: ori})
				currentSticker = piece.Twist.GoesTo(currentSticker)
			}
		}
	}

	restricted, err := g.RestrictToOrbit(stickerInOrbit)
	if err != nil {
		return nil, err
	}

	return &OrbitMatcher{
		stabChain:          group.NewStabilizerChain(restricted),
		stickerColorPiece:  stickerColorPiece,
		orbit:              orbit,
		orientationNumbers: orientationNumbers,
		faceletCount:       faceletCount,
	}, nil
}

// MostLikelyMatchings returns a lazy iterator over this orbit's candidate
// permutations, in non-increasing order of log-likelihood, filtered to
// permutations the orbit's restricted subgroup admits.
func (m *OrbitMatcher) MostLikelyMatchings(logLikelihoods []map[colorid.Color]float64) *MatchIter {
	spots := len(m.orbit.Pieces)
	cost3D := make([][][]float64, spots)
	for i := range cost3D {
		cost3D[i] = make([][]float64, spots)
		for j := range cost3D[i] {
			cost3D[i][j] = make([]float64, m.orbit.OrientationCount)
		}
	}

	for spotIdx, piece := range m.orbit.Pieces {
		for _, sticker := range piece.Stickers {
			orientationNumber := m.orientationNumbers[sticker]
			for color, ll := range logLikelihoods[sticker] {
				key := stickerColorKey{orientationNumber: orientationNumber, color: color}
				for _, po := range m.stickerColorPiece[key] {
					cost3D[spotIdx][po.piece][po.ori] += ll
				}
			}
		}
	}

	h := &nodeHeap{}
	if root, ok := newNode(cost3D); ok {
		*h = append(*h, root)
	}
	heap.Init(h)

	return &MatchIter{matcher: m, cost3D: cost3D, heap: h}
}

// MatchIter lazily yields candidate permutations for one orbit. Each call
// to Next pops the heap's best remaining node, defers splitting it until
// the following call, and skips any node whose permutation is not a member
// of the orbit's restricted subgroup.
type MatchIter struct {
	matcher *OrbitMatcher
	cost3D  [][][]float64
	heap    *nodeHeap
	cache   *node
}

// Next returns the next most likely permutation and its log-likelihood, or
// ok=false once the search space is exhausted.
func (it *MatchIter) Next() (permutation.Permutation, float64, bool) {
	for {
		if it.cache != nil {
			for _, child := range it.cache.split(it.cost3D) {
				heap.Push(it.heap, child)
			}
			it.cache = nil
		}

		if it.heap.Len() == 0 {
			return permutation.Permutation{}, 0, false
		}

		item := heap.Pop(it.heap).(*node)
		key := allowedKey(item.allowed)
		for it.heap.Len() > 0 && allowedKey((*it.heap)[0].allowed) == key {
			heap.Pop(it.heap)
		}

		perm := it.matcher.buildPermutation(item)
		it.cache = item

		if it.matcher.stabChain.IsMember(perm) {
			return perm, item.logLikelihood, true
		}
	}
}

// buildPermutation translates a search node's (piece, orientation) matching
// into a facelet-level permutation: for every sticker of every orbit piece,
// it finds which sticker of the matched candidate piece now occupies the
// same orientation slot.
func (m *OrbitMatcher) buildPermutation(n *node) permutation.Permutation {
	comesFrom := make([]int, m.faceletCount)
	for i := range comesFrom {
		comesFrom[i] = i
	}

	for spot, po := range n.matching {
		for _, stickerSpot := range m.orbit.Pieces[spot].Stickers {
			targetOrientation := (m.orientationNumbers[stickerSpot] + po.ori) % m.orbit.OrientationCount

			for _, candidate := range m.orbit.Pieces[po.piece].Stickers {
				if m.orientationNumbers[candidate] == targetOrientation {
					comesFrom[stickerSpot] = candidate

					break
				}
			}
		}
	}

	perm, _ := permutation.FromComesFrom(comesFrom)

	return perm
}
