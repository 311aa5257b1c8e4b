package store

import (
	"time"

	"github.com/lib/pq"
)

// Representative levels. Level determines which response bucket a record
// lands in, so it must be exactly one of these three values.
const (
	LevelFederal = "federal"
	LevelState   = "state"
	LevelLocal   = "local"
)

// Candidate race types.
const (
	RaceTypeLocal    = "local"
	RaceTypeNational = "national"
)

// SocialLink is a typed link to an official's social profile.
type SocialLink struct {
	Type string `json:"type" yaml:"type"`
	URL  string `json:"url" yaml:"url"`
}

// BillPosition records an official's position on a recent bill.
type BillPosition struct {
	Title       string `json:"title" yaml:"title"`
	Position    string `json:"position" yaml:"position"`
	Description string `json:"description" yaml:"description"`
}

// CandidateAction records a candidate's recent public action or stance.
type CandidateAction struct {
	Title       string `json:"title" yaml:"title"`
	Position    string `json:"position" yaml:"position"`
	Description string `json:"description" yaml:"description"`
}

type Representative struct {
	ID           int               `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string            `json:"name" yaml:"name" gorm:"not null"`
	Office       string            `json:"office" yaml:"office" gorm:"not null"`
	Party        string            `json:"party,omitempty" yaml:"party"`
	Phone        string            `json:"phone,omitempty" yaml:"phone"`
	Email        string            `json:"email,omitempty" yaml:"email"`
	Website      string            `json:"website,omitempty" yaml:"website"`
	PhotoURL     string            `json:"photoUrl,omitempty" yaml:"photo_url"`
	Address      string            `json:"address,omitempty" yaml:"address"`
	Jurisdiction string            `json:"jurisdiction" yaml:"jurisdiction" gorm:"index;not null"`
	Level        string            `json:"level" yaml:"level" gorm:"not null"`
	Phones       pq.StringArray    `json:"-" yaml:"-" gorm:"type:text[]"`
	URLs         pq.StringArray    `json:"-" yaml:"-" gorm:"type:text[]"`
	Emails       pq.StringArray    `json:"-" yaml:"-" gorm:"type:text[]"`
	SocialLinks  []SocialLink      `json:"socialLinks,omitempty" yaml:"social_links" gorm:"type:jsonb;serializer:json"`
	Stances      map[string]string `json:"stances,omitempty" yaml:"stances" gorm:"type:jsonb;serializer:json"`
	RecentBills  []BillPosition    `json:"recentBills,omitempty" yaml:"recent_bills" gorm:"type:jsonb;serializer:json"`
}

func (Representative) TableName() string { return "votify.representatives" }

type Candidate struct {
	ID            int               `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string            `json:"name" yaml:"name" gorm:"not null"`
	Office        string            `json:"office" yaml:"office" gorm:"not null"`
	RaceType      string            `json:"raceType" yaml:"race_type" gorm:"index;not null"`
	Party         string            `json:"party,omitempty" yaml:"party"`
	Phone         string            `json:"phone,omitempty" yaml:"phone"`
	Email         string            `json:"email,omitempty" yaml:"email"`
	Website       string            `json:"website,omitempty" yaml:"website"`
	PhotoURL      string            `json:"photoUrl,omitempty" yaml:"photo_url"`
	Age           int               `json:"age,omitempty" yaml:"age"`
	Background    string            `json:"background,omitempty" yaml:"background"`
	Positions     map[string]string `json:"positions,omitempty" yaml:"positions" gorm:"type:jsonb;serializer:json"`
	RecentActions []CandidateAction `json:"recentActions,omitempty" yaml:"recent_actions" gorm:"type:jsonb;serializer:json"`
}

func (Candidate) TableName() string { return "votify.candidates" }

type Election struct {
	ID                   int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name                 string `json:"name" yaml:"name" gorm:"not null"`
	Date                 string `json:"date" yaml:"date" gorm:"not null"`
	Type                 string `json:"type" yaml:"type" gorm:"not null"`
	Jurisdiction         string `json:"jurisdiction" yaml:"jurisdiction" gorm:"index;not null"`
	RegistrationDeadline string `json:"registrationDeadline,omitempty" yaml:"registration_deadline"`
	EarlyVotingStart     string `json:"earlyVotingStart,omitempty" yaml:"early_voting_start"`
	EarlyVotingEnd       string `json:"earlyVotingEnd,omitempty" yaml:"early_voting_end"`
	ElectionOfficeURL    string `json:"electionOfficeUrl,omitempty" yaml:"election_office_url"`
	IsNearby             bool   `json:"isNearby" gorm:"-"`
}

func (Election) TableName() string { return "votify.elections" }

// AddressSearch is one recorded representative search. Immutable once
// created; retained only for the "recent searches" feature.
type AddressSearch struct {
	ID                int       `json:"id" gorm:"primaryKey;autoIncrement"`
	ReferenceID       string    `json:"referenceId" gorm:"type:uuid"`
	Address           string    `json:"address" gorm:"not null"`
	NormalizedAddress string    `json:"normalizedAddress"`
	Latitude          string    `json:"latitude,omitempty"`
	Longitude         string    `json:"longitude,omitempty"`
	Jurisdiction      string    `json:"jurisdiction"`
	CreatedAt         time.Time `json:"createdAt"`
}

func (AddressSearch) TableName() string { return "votify.address_searches" }

type User struct {
	ID           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
}

func (User) TableName() string { return "votify.users" }
