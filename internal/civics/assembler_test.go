package civics

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/votify/votify-backend/internal/address"
	"github.com/votify/votify-backend/internal/provider"
	"github.com/votify/votify-backend/internal/seeds"
	"github.com/votify/votify-backend/internal/store"
)

// mockProvider scripts the civic-data provider for assembler tests.
type mockProvider struct {
	roster *provider.OfficialRoster
	err    error
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) OfficialsByAddress(ctx context.Context, addr string) (*provider.OfficialRoster, error) {
	return m.roster, m.err
}

func (m *mockProvider) Elections(ctx context.Context) ([]provider.ElectionSummary, error) {
	return nil, m.err
}

func (m *mockProvider) VoterInfo(ctx context.Context, addr, electionID string) (*provider.VoterInfoResult, error) {
	return nil, m.err
}

func (m *mockProvider) HealthCheck(ctx context.Context) error { return m.err }

func testDirectory(t *testing.T) *seeds.Directory {
	t.Helper()
	dir, err := seeds.LoadDirectory()
	if err != nil {
		t.Fatalf("load directory: %v", err)
	}
	return dir
}

func sfResolved() address.Resolved {
	return address.Resolved{Address: address.NormalizedAddress{
		Line1: "1 Dr Carlton B Goodlett Pl", City: "San Francisco", State: "CA", Zip: "94102",
	}}
}

// Without a provider the static tables always produce a non-empty federal
// bucket and a local mayor for a known city.
func TestAssembleStatic(t *testing.T) {
	st := store.NewMemoryStore()
	a := NewAssembler(st, testDirectory(t), nil)

	buckets, err := a.Assemble(context.Background(), "san francisco, ca", sfResolved(), "1 Dr Carlton B Goodlett Pl, San Francisco, CA 94102")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if len(buckets.Federal) == 0 {
		t.Fatal("federal bucket empty")
	}
	if len(buckets.State) == 0 {
		t.Fatal("state bucket empty")
	}

	foundMayor := false
	for _, rep := range buckets.Local {
		if rep.Office == "Mayor of San Francisco" {
			foundMayor = true
		}
	}
	if !foundMayor {
		t.Errorf("local bucket missing mayor, got %+v", buckets.Local)
	}
}

// Ids are assigned per response, consecutively from 1 across all buckets.
func TestAssembleResponseIDs(t *testing.T) {
	st := store.NewMemoryStore()
	a := NewAssembler(st, testDirectory(t), nil)

	buckets, err := a.Assemble(context.Background(), "san francisco, ca", sfResolved(), "sf")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	seen := make(map[int]bool)
	total := 0
	for _, bucket := range [][]store.Representative{buckets.Federal, buckets.State, buckets.Local} {
		for _, rep := range bucket {
			if rep.ID < 1 {
				t.Errorf("%q has id %d", rep.Name, rep.ID)
			}
			if seen[rep.ID] {
				t.Errorf("duplicate id %d", rep.ID)
			}
			seen[rep.ID] = true
			total++
		}
	}
	if !seen[1] || !seen[total] {
		t.Errorf("ids not consecutive from 1: %v", seen)
	}
}

// The same address yields the same buckets, and each call records one
// search.
func TestAssembleDeterministicAndRecorded(t *testing.T) {
	st := store.NewMemoryStore()
	a := NewAssembler(st, testDirectory(t), nil)

	raw := "1 Dr Carlton B Goodlett Pl, San Francisco, CA 94102"
	first, err := a.Assemble(context.Background(), "san francisco, ca", sfResolved(), raw)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	second, err := a.Assemble(context.Background(), "san francisco, ca", sfResolved(), raw)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical searches produced different buckets")
	}

	searches, err := st.RecentAddressSearches(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(searches) != 2 {
		t.Fatalf("recorded %d searches, want 2", len(searches))
	}
	if searches[0].Address != raw {
		t.Errorf("recorded address %q, want original input", searches[0].Address)
	}
}

// An unknown city gets a synthesized mayor placeholder so the local bucket
// is never silently empty.
func TestAssemblePlaceholderMayor(t *testing.T) {
	st := store.NewMemoryStore()
	a := NewAssembler(st, testDirectory(t), nil)

	res := address.Resolved{Address: address.NormalizedAddress{
		Line1: "10 Elm St", City: "Springfield", State: "IL", Zip: "62704",
	}}
	buckets, err := a.Assemble(context.Background(), "springfield, il", res, "10 Elm St, Springfield, IL 62704")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	found := false
	for _, rep := range buckets.Local {
		if rep.Name == "Office of the Mayor" && rep.Office == "Mayor of Springfield" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing placeholder mayor, local = %+v", buckets.Local)
	}
}

// A provider failure degrades silently to the static tables when
// DegradeOnError is set.
func TestAssembleProviderFailureDegrades(t *testing.T) {
	st := store.NewMemoryStore()
	a := NewAssembler(st, testDirectory(t), &mockProvider{err: errors.New("upstream down")})

	buckets, err := a.Assemble(context.Background(), "san francisco, ca", sfResolved(), "sf")
	if err != nil {
		t.Fatalf("expected silent degradation, got %v", err)
	}
	if len(buckets.Federal) == 0 {
		t.Error("static fallback not used")
	}
}

func TestAssembleProviderFailurePropagates(t *testing.T) {
	st := store.NewMemoryStore()
	a := NewAssembler(st, testDirectory(t), &mockProvider{err: errors.New("upstream down")})
	a.DegradeOnError = false

	if _, err := a.Assemble(context.Background(), "san francisco, ca", sfResolved(), "sf"); err == nil {
		t.Fatal("expected error to propagate")
	}

	// The failed search is still recorded.
	searches, err := st.RecentAddressSearches(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(searches) != 1 {
		t.Errorf("recorded %d searches, want 1", len(searches))
	}
}

// Provider officials replace the static tables entirely and are partitioned
// by their pre-mapped level.
func TestAssembleFromProvider(t *testing.T) {
	st := store.NewMemoryStore()
	p := &mockProvider{roster: &provider.OfficialRoster{Officials: []provider.Official{
		{Name: "Pat Senator", Office: "U.S. Senator", Level: store.LevelFederal,
			Phones: []string{"(202) 555-0100"}, URLs: []string{"https://example.senate.gov"}},
		{Name: "Lee Governor", Office: "Governor", Level: store.LevelState},
		{Name: "Sam Mayor", Office: "Mayor", Level: store.LevelLocal},
	}}}
	a := NewAssembler(st, testDirectory(t), p)

	buckets, err := a.Assemble(context.Background(), "san francisco, ca", sfResolved(), "sf")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(buckets.Federal) != 1 || buckets.Federal[0].Name != "Pat Senator" {
		t.Fatalf("federal = %+v", buckets.Federal)
	}
	if buckets.Federal[0].Phone != "(202) 555-0100" {
		t.Errorf("primary phone not lifted: %q", buckets.Federal[0].Phone)
	}
	if buckets.Federal[0].Website != "https://example.senate.gov" {
		t.Errorf("primary website not lifted: %q", buckets.Federal[0].Website)
	}
	if len(buckets.State) != 1 || len(buckets.Local) != 1 {
		t.Errorf("state = %+v local = %+v", buckets.State, buckets.Local)
	}
}

// Records with an unrecognized level are dropped rather than guessed into a
// bucket.
func TestPartitionDropsUnknownLevel(t *testing.T) {
	got := partition([]store.Representative{
		{Name: "ok", Level: store.LevelFederal},
		{Name: "bogus", Level: "galactic"},
	})
	if len(got.Federal) != 1 {
		t.Errorf("federal = %+v", got.Federal)
	}
	if len(got.State) != 0 || len(got.Local) != 0 {
		t.Errorf("unknown level leaked: %+v", got)
	}
}
