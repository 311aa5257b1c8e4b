package provider

// This file is the provider-neutral intermediate representation between raw
// provider responses and votify's own models. Concrete provider packages
// transform into these shapes.

// Address is a structured postal address as a provider reports it.
type Address struct {
	LocationName string `json:"location_name,omitempty"`
	Line1        string `json:"line1"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
}

func (a Address) String() string {
	out := a.Line1
	if a.City != "" {
		out += ", " + a.City
	}
	if a.State != "" {
		out += ", " + a.State
	}
	if a.Zip != "" {
		out += " " + a.Zip
	}
	return out
}

// SocialLink is a typed profile URL derived from a provider channel.
type SocialLink struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Official is one elected official, already mapped onto votify's
// federal/state/local level taxonomy.
type Official struct {
	Name        string       `json:"name"`
	Office      string       `json:"office"`
	Party       string       `json:"party"`
	Level       string       `json:"level"` // federal, state, local
	Phones      []string     `json:"phones"`
	Emails      []string     `json:"emails"`
	URLs        []string     `json:"urls"`
	PhotoURL    string       `json:"photo_url"`
	Address     *Address     `json:"address,omitempty"`
	SocialLinks []SocialLink `json:"social_links"`
}

// OfficialRoster is the full officials-by-address result.
type OfficialRoster struct {
	NormalizedAddress Address    `json:"normalized_address"`
	Officials         []Official `json:"officials"`
}

// ElectionSummary is one entry of the provider's election listing.
type ElectionSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ElectionDay string `json:"election_day"`
	DivisionID  string `json:"division_id"`
	// State parsed out of DivisionID; "" when the division is nationwide or
	// unparseable. Best-effort only; the division format is not
	// contractually guaranteed.
	State string `json:"state"`
}

// PollingPlace is a polling location, early-vote site, or drop-off site.
type PollingPlace struct {
	Address      Address `json:"address"`
	PollingHours string  `json:"polling_hours,omitempty"`
	StartDate    string  `json:"start_date,omitempty"`
	EndDate      string  `json:"end_date,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

// ContestCandidate is one candidate inside a contest.
type ContestCandidate struct {
	Name         string       `json:"name"`
	Party        string       `json:"party"`
	CandidateURL string       `json:"candidate_url,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	Email        string       `json:"email,omitempty"`
	SocialLinks  []SocialLink `json:"social_links,omitempty"`
}

// Contest is one race or referendum on the ballot.
type Contest struct {
	Type       string             `json:"type"`
	Office     string             `json:"office,omitempty"`
	District   string             `json:"district,omitempty"`
	Candidates []ContestCandidate `json:"candidates,omitempty"`
	Referendum string             `json:"referendum,omitempty"`
}

// AdminBody is an election-administration contact (state or local).
type AdminBody struct {
	Name                    string   `json:"name"`
	ElectionInfoURL         string   `json:"election_info_url,omitempty"`
	ElectionRegistrationURL string   `json:"election_registration_url,omitempty"`
	AbsenteeVotingInfoURL   string   `json:"absentee_voting_info_url,omitempty"`
	VotingLocationFinderURL string   `json:"voting_location_finder_url,omitempty"`
	BallotInfoURL           string   `json:"ballot_info_url,omitempty"`
	CorrespondenceAddress   *Address `json:"correspondence_address,omitempty"`
}

// VoterInfoResult is a per-election voter information response.
type VoterInfoResult struct {
	Election          *ElectionSummary `json:"election,omitempty"`
	NormalizedAddress *Address         `json:"normalized_address,omitempty"`
	// State of the normalized input; the relevance filter compares this
	// against the request address's state.
	State            string         `json:"state"`
	PollingLocations []PollingPlace `json:"polling_locations"`
	EarlyVoteSites   []PollingPlace `json:"early_vote_sites"`
	DropOffLocations []PollingPlace `json:"drop_off_locations"`
	Contests         []Contest      `json:"contests"`
	Administration   *AdminBody     `json:"administration,omitempty"`
}

// HasUsableData reports whether the result carries at least one of polling
// locations, contests, or state-level administration info.
func (v *VoterInfoResult) HasUsableData() bool {
	if v == nil {
		return false
	}
	return len(v.PollingLocations) > 0 || len(v.Contests) > 0 || v.Administration != nil
}
