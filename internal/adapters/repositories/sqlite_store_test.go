package repositories

import (
	"context"
	"database/sql"
	"jump-route-service/internal/domain"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestSeedFromCSVAndListSystems(t *testing.T) {
	db := openTestDB(t)

	csvPath := filepath.Join(t.TempDir(), "seed.csv")
	content := `"Sol",0,0,0
"Alpha Centauri",3.03125,-0.09375,3.15625
"Barnard's Star",-0.375,6.46875,4.375
`
	if err := os.WriteFile(csvPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := SeedFromCSV(db, csvPath); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := NewSqliteSystemRepository(db)
	systems, err := repo.ListSystems(context.Background())
	if err != nil {
		t.Fatalf("list systems: %v", err)
	}

	if len(systems) != 3 {
		t.Fatalf("expected 3 systems, got %d", len(systems))
	}
	if systems[0].Name != "Sol" {
		t.Fatalf("catalogue order lost: first = %q", systems[0].Name)
	}
	if systems[1].X != 3.03125 {
		t.Fatalf("coordinates lost: %v", systems[1].X)
	}

	// Re-seeding is idempotent.
	if err := SeedFromCSV(db, csvPath); err != nil {
		t.Fatalf("re-seed: %v", err)
	}
	systems, err = repo.ListSystems(context.Background())
	if err != nil {
		t.Fatalf("list systems after re-seed: %v", err)
	}
	if len(systems) != 3 {
		t.Fatalf("re-seed duplicated rows: got %d", len(systems))
	}
}

func TestSaveRoute(t *testing.T) {
	db := openTestDB(t)

	a := &domain.System{Name: "A"}
	b := &domain.System{Name: "B", X: 10}
	plan := &domain.RouteResult{
		Systems: []*domain.System{a, b},
		Legs: []domain.RouteLeg{
			{From: a, To: b, Distance: 10, Jumps: 1},
		},
		TotalDistance: 10,
		TotalJumps:    1,
		Feasible:      true,
	}

	store := NewSqliteRouteStore(db)
	routeID, err := store.SaveRoute(context.Background(), plan, 65, domain.RouteModeOpen)
	if err != nil {
		t.Fatalf("save route: %v", err)
	}
	if routeID <= 0 {
		t.Fatalf("route id = %d, want > 0", routeID)
	}

	var mode string
	var totalJumps int
	row := db.QueryRow(`SELECT mode, total_jumps FROM routes WHERE route_id = ?`, routeID)
	if err := row.Scan(&mode, &totalJumps); err != nil {
		t.Fatalf("scan route: %v", err)
	}
	if mode != "open" || totalJumps != 1 {
		t.Fatalf("stored route = (%q, %d), want (open, 1)", mode, totalJumps)
	}

	var legCount int
	row = db.QueryRow(`SELECT COUNT(*) FROM route_legs WHERE route_id = ?`, routeID)
	if err := row.Scan(&legCount); err != nil {
		t.Fatalf("scan legs: %v", err)
	}
	if legCount != 1 {
		t.Fatalf("leg count = %d, want 1", legCount)
	}
}
