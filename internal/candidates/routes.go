package candidates

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the candidate catalog router, mounted under /api/candidates.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/{raceType}", h.ByRaceType)
	return r
}
