package main

import (
	"database/sql"
	"fmt"
	"jump-route-service/internal/adapters/catalog"
	"jump-route-service/internal/config"
	"jump-route-service/internal/platform/db"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool initializes the Postgres schema and seeds the system catalogue
// from a CSV file. The server keeps its own local SQLite store; this tool
// targets a shared Postgres catalogue.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/sys_coor.csv")

	log.Println("Initializing database schema...")
	if err := initSchemaPG(db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding system catalogue...")
	if err := seedFromCSVPG(db, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}

// Postgres DDL differs from the server's SQLite schema (identity columns,
// booleans), so the tool carries its own statements.
func initSchemaPG(db *sql.DB) error {
	statements := []string{
		`
		CREATE TABLE IF NOT EXISTS systems (
			position INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			x DOUBLE PRECISION NOT NULL,
			y DOUBLE PRECISION NOT NULL,
			z DOUBLE PRECISION NOT NULL
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS routes (
			route_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			mode TEXT NOT NULL,
			jump_range DOUBLE PRECISION NOT NULL,
			total_distance DOUBLE PRECISION NOT NULL,
			total_jumps INTEGER NOT NULL,
			feasible BOOLEAN NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS route_legs (
			route_id BIGINT NOT NULL,
			leg_index INTEGER NOT NULL,
			from_system TEXT NOT NULL,
			to_system TEXT NOT NULL,
			distance DOUBLE PRECISION NOT NULL,
			jumps INTEGER NOT NULL,
			PRIMARY KEY (route_id, leg_index)
		);
		`,
	}

	for i, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}
	return nil
}

func seedFromCSVPG(db *sql.DB, csvPath string) error {
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
	INSERT INTO systems (position, name, x, y, z)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (position) DO UPDATE
	SET name = EXCLUDED.name, x = EXCLUDED.x, y = EXCLUDED.y, z = EXCLUDED.z;
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

	log.Printf("seeded %d systems from %q", len(systems), csvPath)
	return nil
}
