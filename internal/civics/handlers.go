package civics

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/votify/votify-backend/internal/address"
	"github.com/votify/votify-backend/internal/store"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// Handler serves the representative search and recent-search endpoints.
type Handler struct {
	Store      store.Store
	Assembler  *Assembler
	Normalizer *address.Normalizer
}

func NewHandler(st store.Store, asm *Assembler, norm *address.Normalizer) *Handler {
	return &Handler{Store: st, Assembler: asm, Normalizer: norm}
}

type searchRequest struct {
	Address string `json:"address"`
}

type searchResponse struct {
	Federal          []store.Representative `json:"federal"`
	State            []store.Representative `json:"state"`
	Local            []store.Representative `json:"local"`
	FormattedAddress string                 `json:"formattedAddress"`
	Jurisdiction     string                 `json:"jurisdiction"`
}

// SearchRepresentatives handles POST /api/representatives/search.
func (h *Handler) SearchRepresentatives(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Address) == "" {
		http.Error(w, "Address is required", http.StatusBadRequest)
		return
	}

	res := h.Normalizer.Resolve(r.Context(), req.Address)
	jurisdiction := address.ResolveJurisdiction(res.Address)

	log.Printf("[SearchRepresentatives] address=%q jurisdiction=%q", req.Address, jurisdiction)

	buckets, err := h.Assembler.Assemble(r.Context(), jurisdiction, res, req.Address)
	if err != nil {
		http.Error(w, "Representative lookup failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, searchResponse{
		Federal:          buckets.Federal,
		State:            buckets.State,
		Local:            buckets.Local,
		FormattedAddress: FormatAddress(res.Address),
		Jurisdiction:     jurisdiction,
	})
}

// RecentSearches handles GET /api/searches/recent.
func (h *Handler) RecentSearches(w http.ResponseWriter, r *http.Request) {
	searches, err := h.Store.RecentAddressSearches(store.DefaultRecentSearches)
	if err != nil {
		http.Error(w, "Failed to fetch recent searches", http.StatusInternalServerError)
		return
	}
	if searches == nil {
		searches = []store.AddressSearch{}
	}
	writeJSON(w, searches)
}
