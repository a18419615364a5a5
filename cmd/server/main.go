package main

import (
	"database/sql"
	"fmt"
	"jump-route-service/internal/adapters/repositories"
	"jump-route-service/internal/api"
	"jump-route-service/internal/config"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite catalogue, route archive) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/sys_coor.csv")
	port := config.Get("PORT", "8080")

	jumpRange, err := strconv.ParseFloat(config.Get("DEFAULT_JUMP_RANGE", "65"), 64)
	if err != nil || jumpRange <= 0 {
		log.Fatal("DEFAULT_JUMP_RANGE must be a positive number")
	}

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed the catalogue on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSqliteSystemRepository(db)
	store := repositories.NewSqliteRouteStore(db)
	router := api.NewRouter(repo, store, jumpRange)

	// Write timeout covers 2-opt convergence on large catalogues.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if _, err := os.Stat(seedPath); os.IsNotExist(err) {
		log.Printf("seed file %q not found, keeping existing catalogue", seedPath)
		return nil
	}

	if err := repositories.SeedFromCSV(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
