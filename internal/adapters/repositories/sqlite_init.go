package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"jump-route-service/internal/adapters/catalog"
)

// InitSchema initializes the SQLite schema: the system catalogue plus the
// archive of planned routes and their legs.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSystemsQuery := `
	CREATE TABLE IF NOT EXISTS systems (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		x REAL NOT NULL,
		y REAL NOT NULL,
		z REAL NOT NULL
	);
	`

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS routes (
		route_id INTEGER PRIMARY KEY AUTOINCREMENT,
		mode TEXT NOT NULL,
		jump_range REAL NOT NULL,
		total_distance REAL NOT NULL,
		total_jumps INTEGER NOT NULL,
		feasible INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	createRouteLegsQuery := `
	CREATE TABLE IF NOT EXISTS route_legs (
		route_id INTEGER NOT NULL,
		leg_index INTEGER NOT NULL,
		from_system TEXT NOT NULL,
		to_system TEXT NOT NULL,
		distance REAL NOT NULL,
		jumps INTEGER NOT NULL,
		PRIMARY KEY (route_id, leg_index)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_route_legs_route
	ON route_legs(route_id);
	`

	statements := []string{
		createSystemsQuery,
		createRoutesQuery,
		createRouteLegsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// SeedFromCSV populates the system catalogue from a CSV file, preserving the
// file order as catalogue order. Existing rows at the same position are
// replaced, so re-seeding with an updated file is safe.
func SeedFromCSV(db *sql.DB, csvPath string) error {
	systems, err := catalog.LoadSystems(csvPath)
	if err != nil {
		return fmt.Errorf("seed systems: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed systems: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO systems (
		position,
		name,
		x,
		y,
		z
	)
	VALUES (?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed systems: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range systems {
		if _, err := stmt.Exec(i, s.Name, s.X, s.Y, s.Z); err != nil {
			return fmt.Errorf("seed systems: insert %q: %w", s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed systems: commit tx: %w", err)
	}

	return nil
}
