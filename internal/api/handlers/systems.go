package handlers

import (
	"jump-route-service/internal/api/dto"
	"jump-route-service/internal/ports"
	"log"
	"net/http"
)

// SystemHandler exposes read-only catalogue retrieval endpoints.
type SystemHandler struct {
	Repo ports.SystemRepository
}

func (h *SystemHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	systems, err := h.Repo.ListSystems(r.Context())
	if err != nil {
		log.Printf("list systems failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListSystemsResponse{
		Systems: make([]dto.SystemResponse, 0, len(systems)),
	}
	for _, s := range systems {
		res.Systems = append(res.Systems, dto.SystemResponse{
			Name: s.Name,
			X:    s.X,
			Y:    s.Y,
			Z:    s.Z,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
