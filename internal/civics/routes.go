package civics

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts under /api/representatives.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/search", h.SearchRepresentatives)
	return r
}

// SearchRoutes mounts under /api/searches.
func (h *Handler) SearchRoutes() http.Handler {
	r := chi.NewRouter()
	r.Get("/recent", h.RecentSearches)
	return r
}
