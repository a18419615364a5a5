package api

import (
	"jump-route-service/internal/api/handlers"
	"jump-route-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(repo ports.SystemRepository, store ports.RouteStore, defaultJumpRange float64) http.Handler {
	mux := http.NewServeMux()

	systemHandler := &handlers.SystemHandler{Repo: repo}
	planHandler := &handlers.PlanHandler{
		Repo:             repo,
		Store:            store,
		DefaultJumpRange: defaultJumpRange,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/systems", systemHandler.List)
	mux.HandleFunc("/plans", planHandler.Plan)

	return loggingMiddleware(mux)
}
