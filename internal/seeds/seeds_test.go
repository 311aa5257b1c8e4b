package seeds

import (
	"strings"
	"testing"

	"github.com/votify/votify-backend/internal/store"
)

// Every embedded seed file parses and carries the fields the rest of the
// backend assumes are present.
func TestLoadDirectory(t *testing.T) {
	dir, err := LoadDirectory()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if dir.HeadOfState.Name == "" || dir.HeadOfState.Level != store.LevelFederal {
		t.Errorf("head of state malformed: %+v", dir.HeadOfState)
	}
	if len(dir.Senators["CA"]) != 2 {
		t.Errorf("CA senators = %d, want 2", len(dir.Senators["CA"]))
	}
	for state, sens := range dir.Senators {
		for _, s := range sens {
			if s.Level != store.LevelFederal {
				t.Errorf("%s senator %q has level %q", state, s.Name, s.Level)
			}
		}
	}
	for state, gov := range dir.Governors {
		if gov.Level != store.LevelState {
			t.Errorf("%s governor %q has level %q", state, gov.Name, gov.Level)
		}
	}
	for city, mayor := range dir.Mayors {
		if mayor.Level != store.LevelLocal {
			t.Errorf("mayor of %q has level %q", city, mayor.Level)
		}
		if city != strings.ToLower(city) {
			t.Errorf("mayor key %q not lowercase", city)
		}
	}
}

func TestLoadCandidates(t *testing.T) {
	cands, err := LoadCandidates()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cands) == 0 {
		t.Fatal("no candidates")
	}
	for _, c := range cands {
		if c.RaceType != store.RaceTypeLocal && c.RaceType != store.RaceTypeNational {
			t.Errorf("candidate %q has race type %q", c.Name, c.RaceType)
		}
	}
}

func TestLoadElections(t *testing.T) {
	elections, err := LoadElections()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(elections) == 0 {
		t.Fatal("no fallback elections")
	}
	for _, e := range elections {
		if e.Jurisdiction == "" || e.Date == "" {
			t.Errorf("election %q missing jurisdiction or date", e.Name)
		}
	}
}

func TestLoadElectionOffices(t *testing.T) {
	offices, err := LoadElectionOffices()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, state := range []string{"CA", "TX", "NY", "DC"} {
		office, ok := offices[state]
		if !ok {
			t.Errorf("no office for %s", state)
			continue
		}
		if office.Name == "" || office.ElectionInfoURL == "" {
			t.Errorf("%s office malformed: %+v", state, office)
		}
	}
}

func TestSeedStore(t *testing.T) {
	st := store.NewMemoryStore()
	if err := SeedStore(st); err != nil {
		t.Fatalf("seed: %v", err)
	}

	local, err := st.CandidatesByRaceType(store.RaceTypeLocal)
	if err != nil {
		t.Fatalf("candidates: %v", err)
	}
	if len(local) == 0 {
		t.Error("no local candidates seeded")
	}

	elections, err := st.ElectionsByJurisdiction("san jose, ca")
	if err != nil {
		t.Fatalf("elections: %v", err)
	}
	if len(elections) == 0 {
		t.Error("no san jose fallback election seeded")
	}

	reps, err := st.RepresentativesByJurisdiction("san francisco, ca")
	if err != nil {
		t.Fatalf("representatives: %v", err)
	}
	if len(reps) == 0 {
		t.Error("no stored demo representatives seeded")
	}
}
