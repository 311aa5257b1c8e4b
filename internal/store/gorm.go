package store

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/votify/votify-backend/internal/db"
)

// GormStore is the postgres-backed Store used when DATABASE_URL is set.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the votify schema and returns a ready store.
func NewGormStore(gdb *gorm.DB) (*GormStore, error) {
	if err := db.EnsureSchema(gdb, "votify"); err != nil {
		return nil, err
	}

	if err := gdb.AutoMigrate(
		&User{},
		&Representative{},
		&Candidate{},
		&Election{},
		&AddressSearch{},
	); err != nil {
		return nil, err
	}

	return &GormStore{db: gdb}, nil
}

func (g *GormStore) GetUser(id int) (*User, error) {
	var u User
	if err := g.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (g *GormStore) GetUserByUsername(username string) (*User, error) {
	var u User
	if err := g.db.First(&u, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (g *GormStore) CreateUser(username, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := User{Username: username, PasswordHash: string(hash)}
	if err := g.db.Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (g *GormStore) RepresentativesByJurisdiction(jurisdiction string) ([]Representative, error) {
	var reps []Representative
	err := g.db.
		Where("LOWER(jurisdiction) = LOWER(?)", jurisdiction).
		Order("id").
		Find(&reps).Error
	return reps, err
}

func (g *GormStore) CreateRepresentative(rep *Representative) error {
	return g.db.Create(rep).Error
}

func (g *GormStore) CandidatesByRaceType(raceType string) ([]Candidate, error) {
	var cands []Candidate
	err := g.db.
		Where("race_type = ?", raceType).
		Order("id").
		Find(&cands).Error
	return cands, err
}

func (g *GormStore) CreateCandidate(c *Candidate) error {
	return g.db.Create(c).Error
}

func (g *GormStore) ElectionsByJurisdiction(jurisdiction string) ([]Election, error) {
	var elections []Election
	err := g.db.
		Where("LOWER(jurisdiction) = LOWER(?)", jurisdiction).
		Order("id").
		Find(&elections).Error
	return elections, err
}

func (g *GormStore) CreateElection(e *Election) error {
	return g.db.Create(e).Error
}

func (g *GormStore) CreateAddressSearch(s *AddressSearch) error {
	if s.ReferenceID == "" {
		s.ReferenceID = uuid.NewString()
	}
	// CreatedAt is filled by gorm; the serial primary key keeps ids monotonic.
	return g.db.Create(s).Error
}

func (g *GormStore) RecentAddressSearches(n int) ([]AddressSearch, error) {
	if n <= 0 {
		n = DefaultRecentSearches
	}

	var searches []AddressSearch
	err := g.db.
		Order("created_at DESC, id DESC").
		Limit(n).
		Find(&searches).Error
	return searches, err
}
