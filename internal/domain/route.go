package domain

import "fmt"

// RouteMode selects how a planned tour terminates.
type RouteMode string

const (
	// RouteModeLoop closes the tour back to the starting system.
	RouteModeLoop RouteMode = "loop"
	// RouteModeEndAtLast fixes the last catalogued system as the final stop.
	RouteModeEndAtLast RouteMode = "end_at_last"
	// RouteModeOpen leaves the final stop wherever the search ends.
	RouteModeOpen RouteMode = "open"
)

func ParseRouteMode(s string) (RouteMode, error) {
	switch RouteMode(s) {
	case RouteModeLoop, RouteModeEndAtLast, RouteModeOpen:
		return RouteMode(s), nil
	}
	return "", fmt.Errorf("parse route mode: unknown mode %q", s)
}

// RouteLeg is one directed edge between consecutively visited systems.
type RouteLeg struct {
	From     *System
	To       *System
	Distance float64
	Jumps    int
}

// RouteResult is the immutable outcome of a planning run: the realized
// visiting order, the per-leg breakdown, and aggregate metrics. When the
// tour is looped, Systems repeats the start as its final entry and Legs
// includes the closing leg.
type RouteResult struct {
	Systems       []*System
	Legs          []RouteLeg
	TotalDistance float64
	TotalJumps    int
	Feasible      bool
}
