package elections

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/votify/votify-backend/internal/provider"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeUpstreamError maps gateway failures onto the error taxonomy:
// missing credential -> 503, upstream HTTP failure -> 502 with the
// provider's status and body surfaced, anything else -> 500.
func writeUpstreamError(w http.ResponseWriter, err error) {
	if errors.Is(err, provider.ErrMissingCivicKey) {
		http.Error(w, "Election data service is not configured: set GOOGLE_CIVIC_API_KEY", http.StatusServiceUnavailable)
		return
	}
	var apiErr *provider.APIError
	if errors.As(err, &apiErr) {
		http.Error(w, "Election data provider failed: "+apiErr.Error(), http.StatusBadGateway)
		return
	}
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// Handler serves the election listing and voter-info endpoints.
type Handler struct {
	Gateway *Gateway
}

func NewHandler(g *Gateway) *Handler {
	return &Handler{Gateway: g}
}

// ListElections handles GET /api/elections?userState=&userCity=.
func (h *Handler) ListElections(w http.ResponseWriter, r *http.Request) {
	filter := Filter{
		State: strings.TrimSpace(r.URL.Query().Get("userState")),
		City:  strings.TrimSpace(r.URL.Query().Get("userCity")),
	}

	elections, err := h.Gateway.ListElections(r.Context(), filter)
	if err != nil {
		log.Printf("[ListElections] err=%v", err)
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, elections)
}

// ElectionsByJurisdiction handles GET /api/elections/{jurisdiction}.
func (h *Handler) ElectionsByJurisdiction(w http.ResponseWriter, r *http.Request) {
	jurisdiction := chi.URLParam(r, "jurisdiction")
	if decoded, err := url.PathUnescape(jurisdiction); err == nil {
		jurisdiction = decoded
	}
	if jurisdiction == "" {
		http.Error(w, "Jurisdiction is required", http.StatusBadRequest)
		return
	}

	elections, err := h.Gateway.ElectionsForJurisdiction(r.Context(), jurisdiction)
	if err != nil {
		log.Printf("[ElectionsByJurisdiction] jurisdiction=%q err=%v", jurisdiction, err)
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, elections)
}

type voterInfoRequest struct {
	Address    string `json:"address"`
	ElectionID string `json:"electionId"`
}

// GetVoterInfo handles POST /api/voterinfo.
func (h *Handler) GetVoterInfo(w http.ResponseWriter, r *http.Request) {
	var req voterInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Address) == "" {
		http.Error(w, "Address is required", http.StatusBadRequest)
		return
	}

	info, err := h.Gateway.GetVoterInfo(r.Context(), req.Address, req.ElectionID)
	if err != nil {
		log.Printf("[GetVoterInfo] address=%q electionId=%q err=%v", req.Address, req.ElectionID, err)
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, info)
}
