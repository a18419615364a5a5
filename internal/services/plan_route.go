package services

import (
	"context"
	"fmt"
	"jump-route-service/internal/domain"
	"jump-route-service/internal/platform/obs"
	"math"
)

// PlanOptions carries per-invocation tuning for the planning pipeline.
// Everything is explicit; there is no shared state between invocations.
type PlanOptions struct {
	JumpRange  float64
	Mode       domain.RouteMode
	StartIndex int      // catalogue index of the starting system
	MaxSweeps  int      // 2-opt sweep cap; 0 means DefaultMaxSweeps
	Eps        float64  // 2-opt convergence tolerance; 0 means DefaultEps
	Improver   Improver // nil means the default TwoOptImprover
}

// PlanRoute plans a visiting order over the catalogue that approximately
// minimizes total distance and hop count for the given jump range.
func PlanRoute(ctx context.Context, systems []*domain.System, jumpRange float64, mode domain.RouteMode) (*domain.RouteResult, error) {
	return PlanRouteWithOptions(ctx, systems, PlanOptions{JumpRange: jumpRange, Mode: mode})
}

// PlanRouteWithOptions is the planning facade: it validates inputs, builds
// the cost matrix, constructs a nearest-neighbor tour, improves it with the
// configured local search, and evaluates the final route.
func PlanRouteWithOptions(ctx context.Context, systems []*domain.System, opts PlanOptions) (_ *domain.RouteResult, err error) {
	defer obs.Time(ctx, "planner.PlanRoute")(&err)

	if len(systems) == 0 {
		return nil, fmt.Errorf("plan route: empty system catalogue: %w", ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(systems))
	for _, s := range systems {
		if _, ok := seen[s.Name]; ok {
			return nil, fmt.Errorf("plan route: duplicate system name %q: %w", s.Name, ErrInvalidInput)
		}
		seen[s.Name] = struct{}{}
	}

	switch opts.Mode {
	case domain.RouteModeLoop, domain.RouteModeEndAtLast, domain.RouteModeOpen:
	default:
		return nil, fmt.Errorf("plan route: unknown routing mode %q: %w", opts.Mode, ErrInvalidInput)
	}

	if opts.JumpRange <= 0 || math.IsNaN(opts.JumpRange) || math.IsInf(opts.JumpRange, 0) {
		return nil, fmt.Errorf("plan route: jump range must be a positive finite number, got %v: %w", opts.JumpRange, ErrInvalidConfiguration)
	}

	if opts.StartIndex < 0 || opts.StartIndex >= len(systems) {
		return nil, fmt.Errorf("plan route: start index %d out of range for %d systems: %w", opts.StartIndex, len(systems), ErrInvalidInput)
	}

	// Single-system catalogue: trivial tour, nothing to construct or improve.
	if len(systems) == 1 {
		return &domain.RouteResult{
			Systems:  []*domain.System{systems[0]},
			Legs:     []domain.RouteLeg{},
			Feasible: true,
		}, nil
	}

	m, err := BuildCostMatrix(ctx, systems, opts.JumpRange)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	fixedEnd := -1
	if opts.Mode == domain.RouteModeEndAtLast {
		fixedEnd = len(systems) - 1
	}
	tour := NearestNeighborTour(m, opts.StartIndex, fixedEnd)

	improver := opts.Improver
	if improver == nil {
		improver = &TwoOptImprover{MaxSweeps: opts.MaxSweeps, Eps: opts.Eps}
	}
	if err := improver.Improve(ctx, tour, m, opts.Mode); err != nil {
		return nil, fmt.Errorf("plan route: improve tour: %w", err)
	}

	return EvaluateRoute(systems, tour, m, opts.Mode), nil
}
