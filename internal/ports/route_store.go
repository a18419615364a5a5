package ports

import (
	"context"
	"jump-route-service/internal/domain"
)

// Port: persistence boundary for planned routes.
type RouteStore interface {
	// Persist a planned route and its legs; returns the stored route id.
	SaveRoute(ctx context.Context, plan *domain.RouteResult, jumpRange float64, mode domain.RouteMode) (int64, error)
}
