package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"jump-route-service/internal/domain"
)

// SQLite-backed implementation of the SystemRepository port.
type SqliteSystemRepository struct{ DB *sql.DB }

func NewSqliteSystemRepository(db *sql.DB) *SqliteSystemRepository {
	return &SqliteSystemRepository{DB: db}
}

// Return all systems in catalogue order.
func (s *SqliteSystemRepository) ListSystems(ctx context.Context) ([]*domain.System, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite system repository: DB is nil")
	}

	query := `
	SELECT
		name,
		x,
		y,
		z
	FROM systems
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list systems: query systems table: %w", err)
	}
	defer rows.Close()

	systems := make([]*domain.System, 0, 64)
	for rows.Next() {
		var name string
		var x, y, z float64
		if err := rows.Scan(&name, &x, &y, &z); err != nil {
			return nil, fmt.Errorf("list systems: scan row: %w", err)
		}
		systems = append(systems, &domain.System{Name: name, X: x, Y: y, Z: z})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list systems: row iteration: %w", err)
	}

	return systems, nil
}
