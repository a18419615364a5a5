package services

import (
	"jump-route-service/internal/domain"
	"math"
)

// NearestNeighborTour builds the initial visiting order by repeated greedy
// selection: from the last visited system, move to the closest unvisited one.
//
// Ties are broken by lowest catalogue index so construction is deterministic.
// Jump feasibility is deliberately not a constructive constraint: a leg
// longer than the jump range is absorbed later as a multi-hop leg rather
// than rejected here.
//
// fixedEnd, when >= 0, is held out of the candidate pool and appended once
// every other system has been visited. Runs in O(n^2) over the precomputed
// matrix and always yields a valid permutation.
func NearestNeighborTour(m *domain.CostMatrix, start, fixedEnd int) []int {
	n := m.Len()

	tour := make([]int, 0, n)
	visited := make([]bool, n)

	tour = append(tour, start)
	visited[start] = true

	held := 0
	if fixedEnd >= 0 && fixedEnd != start {
		visited[fixedEnd] = true
		held = 1
	}

	current := start
	for len(tour) < n-held {
		next := -1
		nextDist := math.MaxFloat64
		// Strict < keeps the lowest catalogue index on equal distances.
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if d := m.Distance(current, j); d < nextDist {
				nextDist = d
				next = j
			}
		}
		tour = append(tour, next)
		visited[next] = true
		current = next
	}

	if held == 1 {
		tour = append(tour, fixedEnd)
	}
	return tour
}
