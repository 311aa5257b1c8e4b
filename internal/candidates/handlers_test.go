package candidates

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/votify/votify-backend/internal/seeds"
	"github.com/votify/votify-backend/internal/store"
)

func seededHandler(t *testing.T) *Handler {
	t.Helper()
	st := store.NewMemoryStore()
	if err := seeds.SeedStore(st); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return NewHandler(st)
}

// Unknown race types are rejected up front; they never reach the catalog.
func TestCandidatesInvalidRaceType(t *testing.T) {
	h := seededHandler(t)

	for _, raceType := range []string{"federal", "LOCAL", "statewide", "x"} {
		req := httptest.NewRequest(http.MethodGet, "/"+raceType, nil)
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("raceType %q: status = %d, want 400", raceType, rec.Code)
		}
	}
}

func TestCandidatesByRaceType(t *testing.T) {
	h := seededHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/local", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got []store.Candidate
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("no local candidates from seeds")
	}
	for _, c := range got {
		if c.RaceType != store.RaceTypeLocal {
			t.Errorf("candidate %q has race type %q", c.Name, c.RaceType)
		}
	}
}

// A valid race type with no candidates is still a 200 with an empty array.
func TestCandidatesEmptyIsArray(t *testing.T) {
	h := NewHandler(store.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/national", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("body = %q, want empty array", body)
	}
}
