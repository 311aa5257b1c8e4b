// Package store owns every persisted entity. Both implementations satisfy
// Store: a seedable in-memory map store and a gorm/postgres store, selected
// at startup by whether DATABASE_URL is set.
package store

import "errors"

// ErrNotFound is returned by lookups that matched no record.
var ErrNotFound = errors.New("store: record not found")

// DefaultRecentSearches is the page size for RecentAddressSearches when the
// caller passes n <= 0.
const DefaultRecentSearches = 10

type Store interface {
	GetUser(id int) (*User, error)
	GetUserByUsername(username string) (*User, error)
	// CreateUser stores a user with a bcrypt hash of password.
	CreateUser(username, password string) (*User, error)

	RepresentativesByJurisdiction(jurisdiction string) ([]Representative, error)
	CreateRepresentative(rep *Representative) error

	CandidatesByRaceType(raceType string) ([]Candidate, error)
	CreateCandidate(c *Candidate) error

	ElectionsByJurisdiction(jurisdiction string) ([]Election, error)
	CreateElection(e *Election) error

	// CreateAddressSearch assigns a monotonic id and createdAt timestamp.
	CreateAddressSearch(s *AddressSearch) error
	// RecentAddressSearches returns the n most recent searches, newest first.
	RecentAddressSearches(n int) ([]AddressSearch, error)
}
