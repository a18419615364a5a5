package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"jump-route-service/internal/api/dto"
	"jump-route-service/internal/domain"
	"jump-route-service/internal/ports"
	"jump-route-service/internal/services"
	"log"
	"net/http"
)

type PlanHandler struct {
	Repo             ports.SystemRepository
	Store            ports.RouteStore
	DefaultJumpRange float64
}

// Plan computes a jump route for the stored catalogue, or for an inline
// catalogue supplied in the request, and archives the result.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	jumpRange := req.JumpRange
	if jumpRange == 0 {
		jumpRange = h.DefaultJumpRange
	}

	mode := domain.RouteModeEndAtLast
	if req.Mode != "" {
		var err error
		mode, err = domain.ParseRouteMode(req.Mode)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "mode must be one of loop, end_at_last, open")
			return
		}
	}

	var systems []*domain.System
	if len(req.Systems) > 0 {
		systems = make([]*domain.System, 0, len(req.Systems))
		for _, s := range req.Systems {
			systems = append(systems, &domain.System{Name: s.Name, X: s.X, Y: s.Y, Z: s.Z})
		}
	} else {
		var err error
		systems, err = h.Repo.ListSystems(r.Context())
		if err != nil {
			log.Printf("list systems failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	plan, err := services.PlanRoute(r.Context(), systems, jumpRange, mode)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) || errors.Is(err, services.ErrInvalidConfiguration) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("plan route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	var routeID int64
	if h.Store != nil {
		// Archive failures are logged, not surfaced: the client still gets
		// its plan.
		routeID, err = h.Store.SaveRoute(r.Context(), plan, jumpRange, mode)
		if err != nil {
			log.Printf("route archive write failed: %v", err)
			routeID = 0
		}
	}

	res := dto.PlanResponse{
		RouteID:         routeID,
		Mode:            string(mode),
		JumpRange:       jumpRange,
		Systems:         make([]string, 0, len(plan.Systems)),
		Legs:            make([]dto.PlanLegResponse, 0, len(plan.Legs)),
		TotalDistanceLy: plan.TotalDistance,
		TotalJumps:      plan.TotalJumps,
		Feasible:        plan.Feasible,
	}
	for _, s := range plan.Systems {
		res.Systems = append(res.Systems, s.Name)
	}
	for _, leg := range plan.Legs {
		res.Legs = append(res.Legs, dto.PlanLegResponse{
			From:       leg.From.Name,
			To:         leg.To.Name,
			DistanceLy: leg.Distance,
			Jumps:      leg.Jumps,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
