package googlecivic

// Wire types for the Google Civic Information API v2. Field sets follow the
// published JSON shapes; only what votify consumes is declared.

type electionsResponse struct {
	Kind      string         `json:"kind"`
	Elections []wireElection `json:"elections"`
}

type wireElection struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ElectionDay   string `json:"electionDay"`
	OCDDivisionID string `json:"ocdDivisionId"`
}

type wireAddress struct {
	LocationName string `json:"locationName"`
	Line1        string `json:"line1"`
	Line2        string `json:"line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
}

type wireChannel struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type representativesResponse struct {
	NormalizedInput wireAddress             `json:"normalizedInput"`
	Offices         []wireOffice            `json:"offices"`
	Officials       []wireOfficial          `json:"officials"`
	Divisions       map[string]wireDivision `json:"divisions"`
}

type wireDivision struct {
	Name          string `json:"name"`
	OfficeIndices []int  `json:"officeIndices"`
}

type wireOffice struct {
	Name            string   `json:"name"`
	DivisionID      string   `json:"divisionId"`
	Levels          []string `json:"levels"`
	Roles           []string `json:"roles"`
	OfficialIndices []int    `json:"officialIndices"`
}

type wireOfficial struct {
	Name     string        `json:"name"`
	Address  []wireAddress `json:"address"`
	Party    string        `json:"party"`
	Phones   []string      `json:"phones"`
	URLs     []string      `json:"urls"`
	PhotoURL string        `json:"photoUrl"`
	Emails   []string      `json:"emails"`
	Channels []wireChannel `json:"channels"`
}

type voterInfoResponse struct {
	Election         *wireElection         `json:"election"`
	NormalizedInput  *wireAddress          `json:"normalizedInput"`
	PollingLocations []wirePollingLocation `json:"pollingLocations"`
	EarlyVoteSites   []wirePollingLocation `json:"earlyVoteSites"`
	DropOffLocations []wirePollingLocation `json:"dropOffLocations"`
	Contests         []wireContest         `json:"contests"`
	State            []wireStateInfo       `json:"state"`
}

type wirePollingLocation struct {
	Address      wireAddress `json:"address"`
	PollingHours string      `json:"pollingHours"`
	StartDate    string      `json:"startDate"`
	EndDate      string      `json:"endDate"`
	Notes        string      `json:"notes"`
}

type wireContest struct {
	Type               string                 `json:"type"`
	Office             string                 `json:"office"`
	District           *wireContestDistrict   `json:"district"`
	Candidates         []wireContestCandidate `json:"candidates"`
	ReferendumTitle    string                 `json:"referendumTitle"`
	ReferendumSubtitle string                 `json:"referendumSubtitle"`
}

type wireContestDistrict struct {
	Name  string `json:"name"`
	Scope string `json:"scope"`
}

type wireContestCandidate struct {
	Name         string        `json:"name"`
	Party        string        `json:"party"`
	CandidateURL string        `json:"candidateUrl"`
	Phone        string        `json:"phone"`
	Email        string        `json:"email"`
	Channels     []wireChannel `json:"channels"`
}

type wireStateInfo struct {
	Name                       string                      `json:"name"`
	ElectionAdministrationBody *wireElectionAdministration `json:"electionAdministrationBody"`
}

type wireElectionAdministration struct {
	Name                    string       `json:"name"`
	ElectionInfoURL         string       `json:"electionInfoUrl"`
	ElectionRegistrationURL string       `json:"electionRegistrationUrl"`
	AbsenteeVotingInfoURL   string       `json:"absenteeVotingInfoUrl"`
	VotingLocationFinderURL string       `json:"votingLocationFinderUrl"`
	BallotInfoURL           string       `json:"ballotInfoUrl"`
	CorrespondenceAddress   *wireAddress `json:"correspondenceAddress"`
}

// apiError is the error envelope Google APIs return on non-200 responses.
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
