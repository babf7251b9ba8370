package density

import "container/heap"

// point3 is a calibration sample in [0,1]³.
type point3 [3]float64

func squaredDistance(a, b point3) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]

	return dx*dx + dy*dy + dz*dz
}

// kdNode is one node of a k-d tree over 3-D points, split on depth%3.
type kdNode struct {
	point       point3
	axis        int
	left, right *kdNode
}

// kdTree is an incrementally-built k-d tree supporting bounded k-NN
// queries. The zero value is an empty tree.
type kdTree struct {
	root *kdNode
	size int
}

// Insert adds p to the tree. Unlike a build-once tree, this never
// rebalances — calibration is append-only across the estimator's lifetime,
// the same invariant the spatial index relies on.
func (t *kdTree) Insert(p point3) {
	t.root = insertNode(t.root, p, 0)
	t.size++
}

func insertNode(n *kdNode, p point3, depth int) *kdNode {
	if n == nil {
		return &kdNode{point: p, axis: depth % 3}
	}

	if p[n.axis] < n.point[n.axis] {
		n.left = insertNode(n.left, p, depth+1)
	} else {
		n.right = insertNode(n.right, p, depth+1)
	}

	return n
}

// Size reports how many points have been inserted.
func (t *kdTree) Size() int { return t.size }

// neighborCandidate pairs a point with its squared distance to a query.
type neighborCandidate struct {
	point           point3
	squaredDistance float64
}

// maxHeapBySquaredDistance is a bounded max-heap: the farthest candidate is
// always at the root, so a new closer candidate can evict it in O(log k).
// This is the same container/heap-bounded-k-NN shape
// wbrown-img2ansi/kdtree.go uses, adapted to the continuous domain with
// proper k-d tree branch-and-bound instead of a full linear scan.
type maxHeapBySquaredDistance []neighborCandidate

func (h maxHeapBySquaredDistance) Len() int { return len(h) }
func (h maxHeapBySquaredDistance) Less(i, j int) bool {
	return h[i].squaredDistance > h[j].squaredDistance
}
func (h maxHeapBySquaredDistance) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *maxHeapBySquaredDistance) Push(x any) {
	*h = append(*h, x.(neighborCandidate))
}
func (h *maxHeapBySquaredDistance) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// NearestN returns the n points nearest to query, in ascending order of
// distance, or fewer than n if the tree holds fewer points.
func (t *kdTree) NearestN(query point3, n int) []neighborCandidate {
	if n <= 0 || t.root == nil {
		return nil
	}

	h := &maxHeapBySquaredDistance{}
	heap.Init(h)

	var search func(node *kdNode)
	search = func(node *kdNode) {
		if node == nil {
			return
		}

		d := squaredDistance(node.point, query)
		switch {
		case h.Len() < n:
			heap.Push(h, neighborCandidate{point: node.point, squaredDistance: d})
		case d < (*h)[0].squaredDistance:
			heap.Pop(h)
			heap.Push(h, neighborCandidate{point: node.point, squaredDistance: d})
		}

		axis := node.axis
		diff := query[axis] - node.point[axis]

		near, far := node.left, node.right
		if diff >= 0 {
			near, far = node.right, node.left
		}

		search(near)
		if h.Len() < n || diff*diff < (*h)[0].squaredDistance {
			search(far)
		}
	}
	search(t.root)

	result := make([]neighborCandidate, h.Len())
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = heap.Pop(h).(neighborCandidate)
	}

	return result
}
