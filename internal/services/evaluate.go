package services

import (
	"jump-route-service/internal/domain"
	"math"
)

// EvaluateRoute freezes a finished tour into a RouteResult: the realized
// system sequence, the per-leg breakdown in visitation order, and totals for
// distance and jump count. For a looped tour the closing leg back to the
// start is included.
//
// Pure function: nothing is mutated. Feasibility is false only when a leg
// distance is non-finite; zero-length legs between co-located systems are
// valid degenerate legs.
func EvaluateRoute(systems []*domain.System, tour []int, m *domain.CostMatrix, mode domain.RouteMode) *domain.RouteResult {
	seq := tour
	if mode == domain.RouteModeLoop && len(tour) > 1 {
		seq = make([]int, 0, len(tour)+1)
		seq = append(seq, tour...)
		seq = append(seq, tour[0])
	}

	ordered := make([]*domain.System, len(seq))
	for k, idx := range seq {
		ordered[k] = systems[idx]
	}

	legs := make([]domain.RouteLeg, 0, len(seq)-1)
	totalDistance := 0.0
	totalJumps := 0
	feasible := true

	for k := 0; k+1 < len(seq); k++ {
		i, j := seq[k], seq[k+1]
		d := m.Distance(i, j)
		jumps := m.Jumps(i, j)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			feasible = false
		}

		legs = append(legs, domain.RouteLeg{
			From:     systems[i],
			To:       systems[j],
			Distance: d,
			Jumps:    jumps,
		})
		totalDistance += d
		totalJumps += jumps
	}

	return &domain.RouteResult{
		Systems:       ordered,
		Legs:          legs,
		TotalDistance: totalDistance,
		TotalJumps:    totalJumps,
		Feasible:      feasible,
	}
}
