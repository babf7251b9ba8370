package compose

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/cvmatch/permutation"
)

// puzzleHeapElt is one index vector, one index per orbit, naming which
// saved result of each orbit's stream this combination draws from.
type puzzleHeapElt struct {
	idxs          []int
	logLikelihood float64
}

func idxsKey(idxs []int) string { return fmt.Sprint(idxs) }

func newPuzzleHeapElt(idxs []int, iters []*savedIter) (*puzzleHeapElt, bool) {
	var ll float64
	for i, idx := range idxs {
		_, entryLL, ok := iters[i].get(idx)
		if !ok {
			return nil, false
		}
		ll += entryLL
	}

	return &puzzleHeapElt{idxs: append([]int(nil), idxs...), logLikelihood: ll}, true
}

func (e *puzzleHeapElt) split(iters []*savedIter) []*puzzleHeapElt {
	children := make([]*puzzleHeapElt, 0, len(e.idxs))
	for i := range e.idxs {
		idxs := append([]int(nil), e.idxs...)
		idxs[i]++

		if child, ok := newPuzzleHeapElt(idxs, iters); ok {
			children = append(children, child)
		}
	}

	return children
}

type puzzleHeap []*puzzleHeapElt

func (h puzzleHeap) Len() int           { return len(h) }
func (h puzzleHeap) Less(i, j int) bool { return h[i].logLikelihood > h[j].logLikelihood }
func (h puzzleHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *puzzleHeap) Push(x any)        { *h = append(*h, x.(*puzzleHeapElt)) }
func (h *puzzleHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// PuzzleIter lazily merges every orbit's candidate stream into one
// whole-puzzle stream of (permutation, log-likelihood) pairs, in
// non-increasing likelihood order.
type PuzzleIter struct {
	facelets int
	iters    []*savedIter
	heap     *puzzleHeap
	cache    *puzzleHeapElt
}

// NewPuzzleIter builds a merged iterator over facelets-many stickers from
// one OrbitIter per orbit.
func NewPuzzleIter(facelets int, orbitIters []OrbitIter) *PuzzleIter {
	iters := make([]*savedIter, len(orbitIters))
	for i, it := range orbitIters {
		iters[i] = &savedIter{iter: it}
	}

	h := &puzzleHeap{}
	if root, ok := newPuzzleHeapElt(make([]int, len(iters)), iters); ok {
		*h = append(*h, root)
	}
	heap.Init(h)

	return &PuzzleIter{facelets: facelets, iters: iters, heap: h}
}

// Next returns the next most likely whole-puzzle permutation and its
// log-likelihood, or ok=false once every orbit combination is exhausted.
func (p *PuzzleIter) Next() (permutation.Permutation, float64, bool) {
	if p.cache != nil {
		for _, child := range p.cache.split(p.iters) {
			heap.Push(p.heap, child)
		}
		p.cache = nil
	}

	if p.heap.Len() == 0 {
		return permutation.Permutation{}, 0, false
	}

	item := heap.Pop(p.heap).(*puzzleHeapElt)
	key := idxsKey(item.idxs)
	for p.heap.Len() > 0 && idxsKey((*p.heap)[0].idxs) == key {
		heap.Pop(p.heap)
	}

	var cycles [][]int
	for i, idx := range item.idxs {
		perm, _, _ := p.iters[i].get(idx)
		cycles = append(cycles, perm.Cycles()...)
	}

	perm, _ := permutation.FromCycles(p.facelets, cycles)
	ll := item.logLikelihood
	p.cache = item

	return perm, ll, true
}
