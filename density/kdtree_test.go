package density

import (
	"math"
	"math/rand"
	"testing"
)

func TestKDTreeNearestNMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	tree := &kdTree{}
	var points []point3
	for i := 0; i < 200; i++ {
		p := point3{rng.Float64(), rng.Float64(), rng.Float64()}
		points = append(points, p)
		tree.Insert(p)
	}

	query := point3{0.5, 0.5, 0.5}
	const n = 5

	got := tree.NearestN(query, n)
	if len(got) != n {
		t.Fatalf("NearestN returned %d results, want %d", len(got), n)
	}

	linear := append([]point3(nil), points...)
	dist := func(p point3) float64 { return squaredDistance(p, query) }
	for i := 0; i < len(linear); i++ {
		for j := i + 1; j < len(linear); j++ {
			if dist(linear[j]) < dist(linear[i]) {
				linear[i], linear[j] = linear[j], linear[i]
			}
		}
	}

	for i := 0; i < n; i++ {
		wantDist := dist(linear[i])
		if math.Abs(wantDist-got[i].squaredDistance) > 1e-12 {
			t.Fatalf("rank %d: got dist %v, want %v", i, got[i].squaredDistance, wantDist)
		}
	}
}

func TestKDTreeNearestNFewerThanRequested(t *testing.T) {
	tree := &kdTree{}
	tree.Insert(point3{0, 0, 0})
	tree.Insert(point3{1, 1, 1})

	got := tree.NearestN(point3{0, 0, 0}, 10)
	if len(got) != 2 {
		t.Fatalf("got %d neighbors, want 2", len(got))
	}
	if got[0].squaredDistance != 0 {
		t.Fatalf("closest point should be exact match, got dist %v", got[0].squaredDistance)
	}
}

func TestKDTreeNearestNEmptyTree(t *testing.T) {
	tree := &kdTree{}
	got := tree.NearestN(point3{0, 0, 0}, 3)
	if got != nil {
		t.Fatalf("expected nil result from empty tree, got %v", got)
	}
}

func TestKDTreeAscendingOrder(t *testing.T) {
	tree := &kdTree{}
	tree.Insert(point3{0, 0, 0})
	tree.Insert(point3{0.5, 0, 0})
	tree.Insert(point3{1, 0, 0})
	tree.Insert(point3{2, 0, 0})

	got := tree.NearestN(point3{0, 0, 0}, 4)
	for i := 1; i < len(got); i++ {
		if got[i].squaredDistance < got[i-1].squaredDistance {
			t.Fatalf("result not ascending: %v", got)
		}
	}
}
