package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MemoryStore keeps everything in process. Lost on restart; that is the
// documented durability contract for searches.
type MemoryStore struct {
	mu sync.Mutex

	users           map[int]User
	representatives map[int]Representative
	candidates      map[int]Candidate
	elections       map[int]Election
	searches        map[int]AddressSearch

	nextUserID     int
	nextRepID      int
	nextCandID     int
	nextElectionID int
	nextSearchID   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:           make(map[int]User),
		representatives: make(map[int]Representative),
		candidates:      make(map[int]Candidate),
		elections:       make(map[int]Election),
		searches:        make(map[int]AddressSearch),
		nextUserID:      1,
		nextRepID:       1,
		nextCandID:      1,
		nextElectionID:  1,
		nextSearchID:    1,
	}
}

func (m *MemoryStore) GetUser(id int) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *MemoryStore) GetUserByUsername(username string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) CreateUser(username, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	u := User{
		ID:           m.nextUserID,
		Username:     username,
		PasswordHash: string(hash),
	}
	m.nextUserID++
	m.users[u.ID] = u
	return &u, nil
}

func (m *MemoryStore) RepresentativesByJurisdiction(jurisdiction string) ([]Representative, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	want := strings.ToLower(jurisdiction)
	var out []Representative
	for _, rep := range m.representatives {
		if strings.ToLower(rep.Jurisdiction) == want {
			out = append(out, rep)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) CreateRepresentative(rep *Representative) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rep.ID = m.nextRepID
	m.nextRepID++
	m.representatives[rep.ID] = *rep
	return nil
}

func (m *MemoryStore) CandidatesByRaceType(raceType string) ([]Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Candidate
	for _, c := range m.candidates {
		if c.RaceType == raceType {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) CreateCandidate(c *Candidate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c.ID = m.nextCandID
	m.nextCandID++
	m.candidates[c.ID] = *c
	return nil
}

func (m *MemoryStore) ElectionsByJurisdiction(jurisdiction string) ([]Election, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	want := strings.ToLower(jurisdiction)
	var out []Election
	for _, e := range m.elections {
		if strings.ToLower(e.Jurisdiction) == want {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) CreateElection(e *Election) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e.ID = m.nextElectionID
	m.nextElectionID++
	m.elections[e.ID] = *e
	return nil
}

func (m *MemoryStore) CreateAddressSearch(s *AddressSearch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// id assignment and insert happen under one lock so ids stay monotonic
	// and are never reused
	s.ID = m.nextSearchID
	m.nextSearchID++
	if s.ReferenceID == "" {
		s.ReferenceID = uuid.NewString()
	}
	s.CreatedAt = time.Now()
	m.searches[s.ID] = *s
	return nil
}

func (m *MemoryStore) RecentAddressSearches(n int) ([]AddressSearch, error) {
	if n <= 0 {
		n = DefaultRecentSearches
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]AddressSearch, 0, len(m.searches))
	for _, s := range m.searches {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}
