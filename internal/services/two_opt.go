package services

import (
	"context"
	"jump-route-service/internal/domain"
)

// Tuning defaults for the 2-opt search. The sweep cap keeps termination
// bounded even for near-degenerate collinear catalogues.
const (
	DefaultMaxSweeps = 200
	DefaultEps       = 1e-9
)

// Improver is a pluggable local-search strategy applied to a constructed
// tour. Alternative searches (e.g. Or-opt) can be substituted without
// touching construction or evaluation.
type Improver interface {
	// Improve mutates tour in place and must preserve the permutation
	// invariant. It never mutates the cost matrix.
	Improve(ctx context.Context, tour []int, m *domain.CostMatrix, mode domain.RouteMode) error
}

// TwoOptImprover removes tour edge crossings by reversing the segment
// between two non-adjacent edges. Each sweep scans all candidate pairs and
// applies the single best exchange found; sweeps repeat until none improves
// total distance by more than Eps or MaxSweeps is reached.
//
// The search is loop-aware: for a looped tour the wrap-around edge from the
// last system back to the first is a valid candidate. In end-at-last mode
// the terminal edge into the fixed final system is never reversed away.
type TwoOptImprover struct {
	MaxSweeps int     // 0 means DefaultMaxSweeps
	Eps       float64 // 0 means DefaultEps
}

func (t *TwoOptImprover) Improve(ctx context.Context, tour []int, m *domain.CostMatrix, mode domain.RouteMode) error {
	n := len(tour)
	if n < 3 {
		return nil
	}

	maxSweeps := t.MaxSweeps
	if maxSweeps <= 0 {
		maxSweeps = DefaultMaxSweeps
	}
	eps := t.Eps
	if eps <= 0 {
		eps = DefaultEps
	}

	closed := mode == domain.RouteModeLoop
	jMax := n - 1
	if mode == domain.RouteModeEndAtLast {
		// Keep the fixed final system on the terminal edge.
		jMax = n - 2
	}

	for sweep := 0; sweep < maxSweeps; sweep++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Best-improvement policy: one full scan, then apply the winner.
		// Scan order makes the lowest (i, j) win on equal deltas.
		bestDelta := -eps
		bestI, bestJ := -1, -1
		for i := 1; i <= n-2; i++ {
			for j := i + 1; j <= jMax; j++ {
				if delta := exchangeDelta(tour, m, i, j, closed); delta < bestDelta {
					bestDelta = delta
					bestI, bestJ = i, j
				}
			}
		}

		if bestI < 0 {
			// Local optimum under the 2-opt neighborhood.
			return nil
		}
		reverseSegment(tour, bestI, bestJ)
	}
	return nil
}

// exchangeDelta returns the change in total tour distance from reversing
// tour[i..j]. The affected edges are (i-1, i) and (j, j+1); for a closed
// tour the latter wraps to the first system, and for an open tour a suffix
// reversal only rewires the leading edge.
func exchangeDelta(tour []int, m *domain.CostMatrix, i, j int, closed bool) float64 {
	n := len(tour)
	a, b := tour[i-1], tour[i]
	c := tour[j]

	if j == n-1 && !closed {
		return m.Distance(a, c) - m.Distance(a, b)
	}

	d := tour[(j+1)%n]
	return m.Distance(a, c) + m.Distance(b, d) - m.Distance(a, b) - m.Distance(c, d)
}

func reverseSegment(tour []int, i, j int) {
	for i < j {
		tour[i], tour[j] = tour[j], tour[i]
		i++
		j--
	}
}
