package elections

import (
	"github.com/votify/votify-backend/internal/provider"
	"github.com/votify/votify-backend/internal/seeds"
	"github.com/votify/votify-backend/internal/store"
)

// PollingPlace is a polling location, early-vote site, or drop-off site in
// presentational form.
type PollingPlace struct {
	Name         string `json:"name,omitempty"`
	Address      string `json:"address"`
	PollingHours string `json:"pollingHours,omitempty"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

type ContestCandidate struct {
	Name        string             `json:"name"`
	Party       string             `json:"party,omitempty"`
	Website     string             `json:"website,omitempty"`
	Phone       string             `json:"phone,omitempty"`
	Email       string             `json:"email,omitempty"`
	SocialLinks []store.SocialLink `json:"socialLinks,omitempty"`
}

type Contest struct {
	Type       string             `json:"type"`
	Office     string             `json:"office,omitempty"`
	District   string             `json:"district,omitempty"`
	Candidates []ContestCandidate `json:"candidates,omitempty"`
	Referendum string             `json:"referendum,omitempty"`
}

// Administration is an election-administration contact, sourced from the
// provider or from the static state election-office table.
type Administration struct {
	Name                    string `json:"name"`
	Phone                   string `json:"phone,omitempty"`
	ElectionInfoURL         string `json:"electionInfoUrl,omitempty"`
	RegistrationURL         string `json:"registrationUrl,omitempty"`
	AbsenteeVotingInfoURL   string `json:"absenteeVotingInfoUrl,omitempty"`
	VotingLocationFinderURL string `json:"votingLocationFinderUrl,omitempty"`
	BallotInfoURL           string `json:"ballotInfoUrl,omitempty"`
	Address                 string `json:"address,omitempty"`
}

// VoterInfo is the per-address voter logistics response. Message is set
// whenever no authoritative data could be resolved, so callers can tell
// "nothing found" from "lookup failed".
type VoterInfo struct {
	Election               *store.Election `json:"election,omitempty"`
	NormalizedAddress      string          `json:"normalizedAddress,omitempty"`
	PollingLocations       []PollingPlace  `json:"pollingLocations"`
	EarlyVoteSites         []PollingPlace  `json:"earlyVoteSites"`
	DropOffLocations       []PollingPlace  `json:"dropOffLocations"`
	Contests               []Contest       `json:"contests"`
	ElectionAdministration *Administration `json:"electionAdministration,omitempty"`
	Message                string          `json:"message,omitempty"`
}

func emptyVoterInfo() *VoterInfo {
	return &VoterInfo{
		PollingLocations: []PollingPlace{},
		EarlyVoteSites:   []PollingPlace{},
		DropOffLocations: []PollingPlace{},
		Contests:         []Contest{},
	}
}

func fromProviderPlaces(places []provider.PollingPlace) []PollingPlace {
	out := make([]PollingPlace, 0, len(places))
	for _, p := range places {
		out = append(out, PollingPlace{
			Name:         p.Address.LocationName,
			Address:      p.Address.String(),
			PollingHours: p.PollingHours,
			StartDate:    p.StartDate,
			EndDate:      p.EndDate,
			Notes:        p.Notes,
		})
	}
	return out
}

func fromProviderContests(contests []provider.Contest) []Contest {
	out := make([]Contest, 0, len(contests))
	for _, c := range contests {
		contest := Contest{
			Type:       c.Type,
			Office:     c.Office,
			District:   c.District,
			Referendum: c.Referendum,
		}
		for _, cand := range c.Candidates {
			cc := ContestCandidate{
				Name:    cand.Name,
				Party:   cand.Party,
				Website: cand.CandidateURL,
				Phone:   cand.Phone,
				Email:   cand.Email,
			}
			for _, link := range cand.SocialLinks {
				cc.SocialLinks = append(cc.SocialLinks, store.SocialLink{Type: link.Type, URL: link.URL})
			}
			contest.Candidates = append(contest.Candidates, cc)
		}
		out = append(out, contest)
	}
	return out
}

func fromProviderAdmin(body *provider.AdminBody) *Administration {
	if body == nil {
		return nil
	}
	admin := &Administration{
		Name:                    body.Name,
		ElectionInfoURL:         body.ElectionInfoURL,
		RegistrationURL:         body.ElectionRegistrationURL,
		AbsenteeVotingInfoURL:   body.AbsenteeVotingInfoURL,
		VotingLocationFinderURL: body.VotingLocationFinderURL,
		BallotInfoURL:           body.BallotInfoURL,
	}
	if body.CorrespondenceAddress != nil {
		admin.Address = body.CorrespondenceAddress.String()
	}
	return admin
}

func fromElectionOffice(office seeds.ElectionOffice) *Administration {
	return &Administration{
		Name:            office.Name,
		Phone:           office.Phone,
		ElectionInfoURL: office.ElectionInfoURL,
		RegistrationURL: office.RegistrationURL,
		Address:         office.Address,
	}
}
