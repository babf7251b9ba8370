package matchutil

import "math"

// node tracks one bipartite-graph side's dual potential, match, and BFS
// bookkeeping. elt packs the left and right roles for a given index i so
// that left node i and right node i share storage, mirroring the
// collaborator's own Element layout.
type node struct {
	potential    float64
	matchesWith  int // -1 means unmatched
	bfsComesFrom int // -1 means root / not visited via an edge
	visited      bool
}

type elt struct {
	left, right node
}

// MaximumMatching returns a maximum-weight perfect matching over an n×n
// bipartite cost table: result[i] is the index i is matched with.
// costs[i][j] == nil means matching i with j is disallowed. Returns
// ErrNonSquare if costs is not square. Returns (nil, nil) if costs is
// square but no perfect matching exists among the defined edges —
// infeasibility is a normal search outcome, not an error.
//
// This is a dual-variable (Hungarian) algorithm: left potentials seed to
// the maximum defined cost so every reduced cost starts non-positive,
// augmenting paths are found by BFS over tight edges (|pL+pR-c| < Epsilon),
// and potentials relax by the minimum slack across the BFS frontier when no
// augmenting path exists yet.
func MaximumMatching(costs [][]*float64) ([]int, error) {
	if len(costs) == 0 {
		return []int{}, nil
	}

	n := len(costs)
	for _, row := range costs {
		if len(row) != n {
			return nil, ErrNonSquare
		}
	}

	maxCost, anyDefined := math.Inf(-1), false
	for _, row := range costs {
		for _, c := range row {
			if c != nil && *c > maxCost {
				maxCost = *c
				anyDefined = true
			}
		}
	}
	if !anyDefined {
		return nil, nil
	}

	data := make([]elt, n)
	for i := range data {
		data[i].left.potential = maxCost
		data[i].left.matchesWith = -1
		data[i].right.matchesWith = -1
	}

	for {
		unmatched := -1
		for i, e := range data {
			if e.left.matchesWith == -1 {
				unmatched = i
				break
			}
		}
		if unmatched == -1 {
			break
		}

		if endpoint, ok := findAugmentingPath(unmatched, data, costs); ok {
			toggleAugmentingPath(endpoint, data)
		} else if !relaxPotentials(data, costs) {
			return nil, nil
		}
	}

	result := make([]int, n)
	for i, e := range data {
		result[i] = e.left.matchesWith
	}

	return result, nil
}

// findAugmentingPath searches for an alternating path from startFrom (a
// left node) to an unmatched right node, following only tight edges.
// Visitation and BFS-parent data are left in data for relaxPotentials to
// use on failure.
func findAugmentingPath(startFrom int, data []elt, costs [][]*float64) (int, bool) {
	n := len(costs)

	for i := range data {
		data[i].left.bfsComesFrom = -1
		data[i].left.visited = false
		data[i].right.bfsComesFrom = -1
		data[i].right.visited = false
	}

	currentLevel := []int{startFrom}
	data[startFrom].left.visited = true

	for len(currentLevel) > 0 {
		var nextLevel []int

		for _, leftIdx := range currentLevel {
			for rightIdx := 0; rightIdx < n; rightIdx++ {
				cost := costs[leftIdx][rightIdx]
				if cost == nil || data[rightIdx].right.visited {
					continue
				}
				if math.Abs(data[leftIdx].left.potential+data[rightIdx].right.potential-*cost) >= Epsilon {
					continue
				}

				data[rightIdx].right.bfsComesFrom = leftIdx
				data[rightIdx].right.visited = true

				if matched := data[rightIdx].right.matchesWith; matched != -1 {
					if !data[matched].left.visited {
						data[matched].left.bfsComesFrom = rightIdx
						data[matched].left.visited = true
						nextLevel = append(nextLevel, matched)
					}
				} else {
					return rightIdx, true
				}
			}
		}

		currentLevel = nextLevel
	}

	return -1, false
}

// toggleAugmentingPath flips the matching along the path ending at the
// unmatched right node endpoint, walking BFS parents back to the root.
func toggleAugmentingPath(endpoint int, data []elt) {
	for {
		leftSide := data[endpoint].right.bfsComesFrom
		data[endpoint].right.matchesWith = leftSide
		data[leftSide].left.matchesWith = endpoint

		if next := data[leftSide].left.bfsComesFrom; next != -1 {
			endpoint = next
		} else {
			return
		}
	}
}

// relaxPotentials tightens at least one more edge between the visited-left
// and unvisited-right frontier. Returns false (infeasible) when no edge can
// be tightened.
func relaxPotentials(data []elt, costs [][]*float64) bool {
	n := len(costs)
	delta := math.Inf(1)
	found := false

	for i := 0; i < n; i++ {
		if !data[i].left.visited {
			continue
		}
		for j := 0; j < n; j++ {
			if data[j].right.visited {
				continue
			}
			cost := costs[i][j]
			if cost == nil {
				continue
			}
			slack := data[i].left.potential + data[j].right.potential - *cost
			if slack < delta {
				delta = slack
				found = true
			}
		}
	}

	if !found || math.Abs(delta) < Epsilon {
		return false
	}

	for i := range data {
		if data[i].left.visited {
			data[i].left.potential -= delta
		}
		if data[i].right.visited {
			data[i].right.potential += delta
		}
	}

	return true
}
