package services

import (
	"context"
	"jump-route-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlanRouteCollinearScenario(t *testing.T) {
	systems := []*domain.System{
		{Name: "A", X: 0},
		{Name: "B", X: 10},
		{Name: "C", X: 20},
	}

	plan, err := PlanRoute(context.Background(), systems, 15, domain.RouteModeOpen)
	require.NoError(t, err)

	require.Equal(t, []string{"A", "B", "C"}, systemNames(plan))
	require.InDelta(t, 20, plan.TotalDistance, 1e-9)
	require.Equal(t, 2, plan.TotalJumps)
	require.Len(t, plan.Legs, 2)
	require.Equal(t, 1, plan.Legs[0].Jumps, "A->B is within one jump")
	require.Equal(t, 1, plan.Legs[1].Jumps, "B->C is within one jump")
	require.True(t, plan.Feasible)
}

func TestPlanRouteSingleSystem(t *testing.T) {
	systems := []*domain.System{{Name: "Sol"}}

	plan, err := PlanRoute(context.Background(), systems, 65, domain.RouteModeLoop)
	require.NoError(t, err)

	require.Equal(t, []string{"Sol"}, systemNames(plan))
	require.Empty(t, plan.Legs)
	require.Zero(t, plan.TotalDistance)
	require.Zero(t, plan.TotalJumps)
	require.True(t, plan.Feasible)
}

func TestPlanRouteValidation(t *testing.T) {
	valid := []*domain.System{
		{Name: "A"},
		{Name: "B", X: 5},
	}

	_, err := PlanRoute(context.Background(), nil, 65, domain.RouteModeOpen)
	require.ErrorIs(t, err, ErrInvalidInput, "empty catalogue")

	dup := []*domain.System{
		{Name: "A"},
		{Name: "A", X: 5},
	}
	_, err = PlanRoute(context.Background(), dup, 65, domain.RouteModeOpen)
	require.ErrorIs(t, err, ErrInvalidInput, "duplicate names")

	_, err = PlanRoute(context.Background(), valid, 0, domain.RouteModeOpen)
	require.ErrorIs(t, err, ErrInvalidConfiguration, "zero jump range")

	_, err = PlanRoute(context.Background(), valid, -4, domain.RouteModeOpen)
	require.ErrorIs(t, err, ErrInvalidConfiguration, "negative jump range")

	_, err = PlanRoute(context.Background(), valid, 65, domain.RouteMode("sideways"))
	require.ErrorIs(t, err, ErrInvalidInput, "unknown mode")
}

func TestPlanRouteVisitsEverySystemOnce(t *testing.T) {
	systems := []*domain.System{
		{Name: "Sol"},
		{Name: "Alpha Centauri", X: 4.4},
		{Name: "Barnard's Star", X: 5.1, Y: 3.2},
		{Name: "Wolf 359", X: -2.4, Y: 7.3, Z: 1.1},
		{Name: "Sirius", X: 8.6, Y: -1.3, Z: -0.5},
		{Name: "Procyon", X: 11.4, Y: 2.2, Z: 3.9},
	}

	for _, mode := range []domain.RouteMode{domain.RouteModeLoop, domain.RouteModeEndAtLast, domain.RouteModeOpen} {
		plan, err := PlanRoute(context.Background(), systems, 10, mode)
		require.NoError(t, err)

		names := systemNames(plan)
		if mode == domain.RouteModeLoop {
			require.Equal(t, names[0], names[len(names)-1], "loop repeats the start")
			names = names[:len(names)-1]
		}

		require.Len(t, names, len(systems))
		seen := make(map[string]bool, len(names))
		for _, n := range names {
			require.False(t, seen[n], "mode %s: %q visited twice", mode, n)
			seen[n] = true
		}
	}
}

func TestPlanRouteTotalsMatchRecomputedLegs(t *testing.T) {
	systems := []*domain.System{
		{Name: "A", X: 3, Y: -2, Z: 9},
		{Name: "B", X: -11, Y: 6, Z: 2},
		{Name: "C", X: 20, Y: 20, Z: -5},
		{Name: "D", X: 7, Y: -14, Z: 12},
		{Name: "E", X: -3, Y: 3, Z: -3},
	}

	plan, err := PlanRoute(context.Background(), systems, 18, domain.RouteModeLoop)
	require.NoError(t, err)

	recomputed := 0.0
	for i := 0; i+1 < len(plan.Systems); i++ {
		recomputed += plan.Systems[i].DistanceTo(plan.Systems[i+1])
	}
	require.InDelta(t, recomputed, plan.TotalDistance, 1e-9)

	jumps := 0
	for _, leg := range plan.Legs {
		require.GreaterOrEqual(t, leg.Jumps, 1, "distinct systems always cost at least one jump")
		jumps += leg.Jumps
	}
	require.Equal(t, jumps, plan.TotalJumps)
}

func TestPlanRouteEndAtLastPlacesDesignatedEndLast(t *testing.T) {
	// The last-catalogued system sits right next to the start; it must
	// still come last in the planned route.
	systems := []*domain.System{
		{Name: "Start", X: 0},
		{Name: "Far", X: 100},
		{Name: "Farther", X: 130},
		{Name: "Neighbor", X: 2},
	}

	plan, err := PlanRoute(context.Background(), systems, 65, domain.RouteModeEndAtLast)
	require.NoError(t, err)

	names := systemNames(plan)
	require.Equal(t, "Neighbor", names[len(names)-1])
}

func TestPlanRouteCustomStartIndex(t *testing.T) {
	systems := []*domain.System{
		{Name: "A", X: 0},
		{Name: "B", X: 10},
		{Name: "C", X: 20},
	}

	plan, err := PlanRouteWithOptions(context.Background(), systems, PlanOptions{
		JumpRange:  65,
		Mode:       domain.RouteModeOpen,
		StartIndex: 2,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"C", "B", "A"}, systemNames(plan))

	_, err = PlanRouteWithOptions(context.Background(), systems, PlanOptions{
		JumpRange:  65,
		Mode:       domain.RouteModeOpen,
		StartIndex: 3,
	})
	require.ErrorIs(t, err, ErrInvalidInput, "out-of-range start index")
}

type recordingImprover struct {
	calls int
}

func (r *recordingImprover) Improve(ctx context.Context, tour []int, m *domain.CostMatrix, mode domain.RouteMode) error {
	r.calls++
	return nil
}

func TestPlanRouteUsesInjectedImprover(t *testing.T) {
	systems := []*domain.System{
		{Name: "A", X: 0},
		{Name: "B", X: 30},
		{Name: "C", X: 10},
	}

	improver := &recordingImprover{}
	plan, err := PlanRouteWithOptions(context.Background(), systems, PlanOptions{
		JumpRange: 65,
		Mode:      domain.RouteModeOpen,
		Improver:  improver,
	})
	require.NoError(t, err)
	require.Equal(t, 1, improver.calls)

	// A no-op improver leaves the nearest-neighbor order intact.
	require.Equal(t, []string{"A", "C", "B"}, systemNames(plan))
}

func systemNames(plan *domain.RouteResult) []string {
	names := make([]string, 0, len(plan.Systems))
	for _, s := range plan.Systems {
		names = append(names, s.Name)
	}
	return names
}
