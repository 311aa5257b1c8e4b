// Package seeds loads the hand-authored fallback and demo data shipped with
// the backend: the static representative directory, the candidate catalog,
// fallback election records, and state election-office contacts.
package seeds

import (
	"embed"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/votify/votify-backend/internal/store"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Directory is the static representative directory the assembler falls back
// to when the civic-data provider is unavailable. Senators and governors are
// keyed by 2-letter state code, mayors by lowercase city name.
type Directory struct {
	HeadOfState store.Representative              `yaml:"head_of_state"`
	Senators    map[string][]store.Representative `yaml:"senators"`
	Governors   map[string]store.Representative   `yaml:"governors"`
	Mayors      map[string]store.Representative   `yaml:"mayors"`
	Stored      []store.Representative            `yaml:"stored"`
}

// ElectionOffice is a state election-administration contact.
type ElectionOffice struct {
	Name            string `yaml:"name" json:"name"`
	Phone           string `yaml:"phone" json:"phone,omitempty"`
	ElectionInfoURL string `yaml:"election_info_url" json:"electionInfoUrl,omitempty"`
	RegistrationURL string `yaml:"registration_url" json:"registrationUrl,omitempty"`
	Address         string `yaml:"address" json:"address,omitempty"`
}

func load(name string, out any) error {
	raw, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("read seed %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse seed %s: %w", name, err)
	}
	return nil
}

// LoadDirectory parses the static representative directory.
func LoadDirectory() (*Directory, error) {
	var dir Directory
	if err := load("representatives.yaml", &dir); err != nil {
		return nil, err
	}
	return &dir, nil
}

// LoadCandidates parses the candidate catalog.
func LoadCandidates() ([]store.Candidate, error) {
	var doc struct {
		Candidates []store.Candidate `yaml:"candidates"`
	}
	if err := load("candidates.yaml", &doc); err != nil {
		return nil, err
	}
	return doc.Candidates, nil
}

// LoadElections parses the fallback election records.
func LoadElections() ([]store.Election, error) {
	var doc struct {
		Elections []store.Election `yaml:"elections"`
	}
	if err := load("elections.yaml", &doc); err != nil {
		return nil, err
	}
	return doc.Elections, nil
}

// LoadElectionOffices parses state election-office contacts, keyed by
// 2-letter state code.
func LoadElectionOffices() (map[string]ElectionOffice, error) {
	var doc struct {
		Offices map[string]ElectionOffice `yaml:"offices"`
	}
	if err := load("election_offices.yaml", &doc); err != nil {
		return nil, err
	}
	return doc.Offices, nil
}

// SeedStore writes candidates, stored demo representatives, and fallback
// elections into s. Safe to call once at startup on an empty store.
func SeedStore(s store.Store) error {
	dir, err := LoadDirectory()
	if err != nil {
		return err
	}
	for i := range dir.Stored {
		rep := dir.Stored[i]
		if err := s.CreateRepresentative(&rep); err != nil {
			return fmt.Errorf("seed representative %q: %w", rep.Name, err)
		}
	}

	candidates, err := LoadCandidates()
	if err != nil {
		return err
	}
	for i := range candidates {
		c := candidates[i]
		if err := s.CreateCandidate(&c); err != nil {
			return fmt.Errorf("seed candidate %q: %w", c.Name, err)
		}
	}

	elections, err := LoadElections()
	if err != nil {
		return err
	}
	for i := range elections {
		e := elections[i]
		if err := s.CreateElection(&e); err != nil {
			return fmt.Errorf("seed election %q: %w", e.Name, err)
		}
	}

	return nil
}
