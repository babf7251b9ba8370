package orbitmatch

import (
	"container/heap"
	"fmt"
	"strings"
)

// allowedKey flattens a node's allowed mask into a comparable string, used
// only to detect and drop duplicate nodes the heap would otherwise yield
// twice (the same mask can be reached by two different split paths).
func allowedKey(allowed [][][]bool) string {
	var b strings.Builder
	for i := range allowed {
		for j := range allowed[i] {
			for _, v := range allowed[i][j] {
				if v {
					b.WriteByte('1')
				} else {
					b.WriteByte('0')
				}
			}
		}
	}

	return b.String()
}

// nodeHeap is a max-heap of search nodes ordered by log-likelihood, the
// same container/heap-backed priority queue shape used throughout this
// module's teacher lineage.
type nodeHeap []*node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].logLikelihood > h[j].logLikelihood }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)         { *h = append(*h, x.(*node)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

var _ heap.Interface = (*nodeHeap)(nil)

func (n *node) String() string {
	return fmt.Sprintf("node{ll=%v, key=%s}", n.logLikelihood, allowedKey(n.allowed))
}
