package elections

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts under /api/elections.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.ListElections)
	r.Get("/{jurisdiction}", h.ElectionsByJurisdiction)
	return r
}

// VoterInfoRoutes mounts under /api/voterinfo.
func (h *Handler) VoterInfoRoutes() http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.GetVoterInfo)
	return r
}
