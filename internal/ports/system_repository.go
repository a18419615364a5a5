package ports

import (
	"context"
	"jump-route-service/internal/domain"
)

// Port: a boundary for retrieving the system catalogue from a data source.
type SystemRepository interface {
	// Retrieve all systems in original catalogue order.
	ListSystems(ctx context.Context) ([]*domain.System, error)
}
