package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"jump-route-service/internal/domain"
	"time"
)

// SQLite-backed implementation of the RouteStore port. Planned routes and
// their legs are archived in a single transaction.
type SqliteRouteStore struct{ DB *sql.DB }

func NewSqliteRouteStore(db *sql.DB) *SqliteRouteStore {
	return &SqliteRouteStore{DB: db}
}

func (s *SqliteRouteStore) SaveRoute(ctx context.Context, plan *domain.RouteResult, jumpRange float64, mode domain.RouteMode) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("sqlite route store: DB is nil")
	}
	if plan == nil {
		return 0, errors.New("save route: plan is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("save route: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	feasible := 0
	if plan.Feasible {
		feasible = 1
	}

	insertRouteQuery := `
	INSERT INTO routes (
		mode,
		jump_range,
		total_distance,
		total_jumps,
		feasible,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	res, err := tx.ExecContext(ctx, insertRouteQuery,
		string(mode),
		jumpRange,
		plan.TotalDistance,
		plan.TotalJumps,
		feasible,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("save route: insert route: %w", err)
	}

	routeID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("save route: last insert id: %w", err)
	}

	insertLegQuery := `
	INSERT INTO route_legs (
		route_id,
		leg_index,
		from_system,
		to_system,
		distance,
		jumps
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.PrepareContext(ctx, insertLegQuery)
	if err != nil {
		return 0, fmt.Errorf("save route: prepare leg insert: %w", err)
	}
	defer stmt.Close()

	for i, leg := range plan.Legs {
		if _, err := stmt.ExecContext(ctx, routeID, i, leg.From.Name, leg.To.Name, leg.Distance, leg.Jumps); err != nil {
			return 0, fmt.Errorf("save route: insert leg %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("save route: commit tx: %w", err)
	}

	return routeID, nil
}
