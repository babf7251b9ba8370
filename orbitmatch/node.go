package orbitmatch

import "github.com/katalvlaran/cvmatch/matchutil"

// pieceOri names which candidate piece (and at which orientation offset)
// a piece spot is currently matched to.
type pieceOri struct {
	piece int
	ori   int
}

// node is one Murty search node: a 3-D allowed mask over (spot, piece,
// orientation), the best 2-D cost this mask admits, the orientation each
// cell's best cost was chosen at, and the Hungarian-optimal matching under
// that 2-D cost.
type node struct {
	allowed       [][][]bool
	cost2D        [][]*float64
	oriChosen     [][]int
	logLikelihood float64
	matching      []pieceOri
}

// newNode builds the root search node from a full 3-D cost tensor
// [spot][piece][orientation], with nothing yet forbidden.
func newNode(cost3D [][][]float64) (*node, bool) {
	spots := len(cost3D)
	allowed := make([][][]bool, spots)
	cost2D := make([][]*float64, spots)
	oriChosen := make([][]int, spots)

	for i := range cost3D {
		pieces := len(cost3D[i])
		allowed[i] = make([][]bool, pieces)
		cost2D[i] = make([]*float64, pieces)
		oriChosen[i] = make([]int, pieces)

		for j := range cost3D[i] {
			oris := len(cost3D[i][j])
			allowed[i][j] = make([]bool, oris)
			for o := range allowed[i][j] {
				allowed[i][j][o] = true
			}

			bestOri, bestVal := argmax(cost3D[i][j])
			v := bestVal
			cost2D[i][j] = &v
			oriChosen[i][j] = bestOri
		}
	}

	matching, ll, ok := mkMatching(cost2D, oriChosen)
	if !ok {
		return nil, false
	}

	return &node{
		allowed:       allowed,
		cost2D:        cost2D,
		oriChosen:     oriChosen,
		logLikelihood: ll,
		matching:      matching,
	}, true
}

func argmax(values []float64) (int, float64) {
	bestIdx := 0
	bestVal := values[0]
	for i, v := range values[1:] {
		if v > bestVal {
			bestVal = v
			bestIdx = i + 1
		}
	}

	return bestIdx, bestVal
}

// mkMatching runs maximum-weight bipartite matching over cost2D (nil entry
// forbids the edge) and attaches each matched cell's chosen orientation.
func mkMatching(cost2D [][]*float64, oriChosen [][]int) ([]pieceOri, float64, bool) {
	rowMatch, err := matchutil.MaximumMatching(cost2D)
	if err != nil || rowMatch == nil {
		return nil, 0, false
	}

	matching := make([]pieceOri, len(rowMatch))
	var ll float64
	for i, j := range rowMatch {
		matching[i] = pieceOri{piece: j, ori: oriChosen[i][j]}
		ll += *cost2D[i][j]
	}

	return matching, ll, true
}

// split produces one child node per cell of the current matching, each with
// that exact (spot, piece, orientation) newly forbidden and its 2-D cost
// cell recomputed from whatever orientations remain allowed. A child whose
// recomputed 2-D cost no longer admits a perfect matching is dropped.
func (n *node) split(cost3D [][][]float64) []*node {
	children := make([]*node, 0, len(n.matching))

	for spot, po := range n.matching {
		allowed := cloneAllowed(n.allowed)
		cost2D := cloneCost2D(n.cost2D)
		oriChosen := cloneOriChosen(n.oriChosen)

		allowed[spot][po.piece][po.ori] = false

		found := false
		var bestOri int
		var bestVal float64
		for o, v := range cost3D[spot][po.piece] {
			if !allowed[spot][po.piece][o] {
				continue
			}
			if !found || v > bestVal {
				bestVal, bestOri, found = v, o, true
			}
		}

		if found {
			v := bestVal
			cost2D[spot][po.piece] = &v
			oriChosen[spot][po.piece] = bestOri
		} else {
			cost2D[spot][po.piece] = nil
			oriChosen[spot][po.piece] = -1
		}

		matching, ll, ok := mkMatching(cost2D, oriChosen)
		if !ok {
			continue
		}

		children = append(children, &node{
			allowed:       allowed,
			cost2D:        cost2D,
			oriChosen:     oriChosen,
			logLikelihood: ll,
			matching:      matching,
		})
	}

	return children
}

func cloneAllowed(a [][][]bool) [][][]bool {
	out := make([][][]bool, len(a))
	for i := range a {
		out[i] = make([][]bool, len(a[i]))
		for j := range a[i] {
			out[i][j] = append([]bool(nil), a[i][j]...)
		}
	}

	return out
}

func cloneCost2D(c [][]*float64) [][]*float64 {
	out := make([][]*float64, len(c))
	for i := range c {
		out[i] = append([]*float64(nil), c[i]...)
	}

	return out
}

func cloneOriChosen(o [][]int) [][]int {
	out := make([][]int, len(o))
	for i := range o {
		out[i] = append([]int(nil), o[i]...)
	}

	return out
}
