package elections

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/votify/votify-backend/internal/provider"
	"github.com/votify/votify-backend/internal/store"
)

// A missing credential is a 503, not a 500: the service is degraded by
// configuration, not broken.
func TestListElectionsUnconfigured(t *testing.T) {
	h := NewHandler(NewGateway(store.NewMemoryStore(), nil, testOffices(t)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "GOOGLE_CIVIC_API_KEY") {
		t.Errorf("body should name the missing credential: %q", rec.Body.String())
	}
}

// Upstream HTTP failures become 502 with the provider's status and body
// surfaced for diagnosis.
func TestListElectionsUpstreamFailure(t *testing.T) {
	p := &mockCivic{electionsErr: &provider.APIError{Provider: "mock", StatusCode: 403, Body: "quota exceeded"}}
	h := NewHandler(NewGateway(store.NewMemoryStore(), p, testOffices(t)))

	req := httptest.NewRequest(http.MethodGet, "/?userState=ca", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "quota exceeded") {
		t.Errorf("upstream body not surfaced: %q", rec.Body.String())
	}
}

func TestListElectionsNearbyFlag(t *testing.T) {
	p := &mockCivic{elections: []provider.ElectionSummary{
		{ID: "2000", Name: "California General Election", State: "CA", DivisionID: "ocd-division/country:us/state:ca"},
		{ID: "2001", Name: "New York General Election", State: "NY", DivisionID: "ocd-division/country:us/state:ny"},
	}}
	h := NewHandler(NewGateway(store.NewMemoryStore(), p, testOffices(t)))

	req := httptest.NewRequest(http.MethodGet, "/?userState=ca", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	var got []store.Election
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d", len(got))
	}
	if !got[0].IsNearby || got[1].IsNearby {
		t.Errorf("nearby flags wrong: %+v", got)
	}
	// The flag is serialized even when false.
	if !strings.Contains(body, `"isNearby":true`) || !strings.Contains(body, `"isNearby":false`) {
		t.Errorf("isNearby not always present: %s", body)
	}
}

func TestElectionsByJurisdictionRoute(t *testing.T) {
	st := store.NewMemoryStore()
	if err := st.CreateElection(&store.Election{
		Name: "San Jose City Council District 3 Special Runoff",
		Date: "2025-06-24", Type: "special", Jurisdiction: "san jose, ca",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	h := NewHandler(NewGateway(st, nil, testOffices(t)))

	req := httptest.NewRequest(http.MethodGet, "/san%20jose,%20ca", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var got []store.Election
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Type != "special" {
		t.Errorf("got %+v", got)
	}
}

func TestGetVoterInfoRequiresAddress(t *testing.T) {
	h := NewHandler(NewGateway(store.NewMemoryStore(), &mockCivic{}, testOffices(t)))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"electionId":"2000"}`))
	rec := httptest.NewRecorder()
	h.VoterInfoRoutes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// The no-data path is a 200 with a message, distinguishable from both
// errors and populated results.
func TestGetVoterInfoNoData(t *testing.T) {
	p := &mockCivic{
		elections: []provider.ElectionSummary{},
		voterInfoFn: func(addr, electionID string) (*provider.VoterInfoResult, error) {
			return &provider.VoterInfoResult{}, nil
		},
	}
	h := NewHandler(NewGateway(store.NewMemoryStore(), p, testOffices(t)))

	body := `{"address":"1 Dr Carlton B Goodlett Pl, San Francisco, CA 94102"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.VoterInfoRoutes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var info VoterInfo
	if err := json.NewDecoder(rec.Body).Decode(&info); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info.Message == "" {
		t.Error("expected explanatory message")
	}
	if info.PollingLocations == nil {
		t.Error("pollingLocations should be an empty array, not null")
	}
}
