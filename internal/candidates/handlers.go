// Package candidates serves the read-only candidate comparison catalog.
package candidates

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/votify/votify-backend/internal/store"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

type Handler struct {
	Store store.Store
}

func NewHandler(st store.Store) *Handler {
	return &Handler{Store: st}
}

// ByRaceType handles GET /api/candidates/{raceType}. An invalid race type
// is rejected before any catalog access, so it is distinguishable from a
// valid race type with no candidates (200 with an empty array).
func (h *Handler) ByRaceType(w http.ResponseWriter, r *http.Request) {
	raceType := chi.URLParam(r, "raceType")
	if raceType != store.RaceTypeLocal && raceType != store.RaceTypeNational {
		http.Error(w, "Invalid race type. Must be 'local' or 'national'", http.StatusBadRequest)
		return
	}

	cands, err := h.Store.CandidatesByRaceType(raceType)
	if err != nil {
		http.Error(w, "Failed to fetch candidates", http.StatusInternalServerError)
		return
	}
	if cands == nil {
		cands = []store.Candidate{}
	}
	writeJSON(w, cands)
}
