package googlecivic

import (
	"fmt"
	"strings"

	"github.com/votify/votify-backend/internal/provider"
)

// channelURLTemplates maps Civic API channel types to profile URL templates.
// Unknown channel types are dropped rather than guessed.
var channelURLTemplates = map[string]string{
	"Facebook":  "https://www.facebook.com/%s",
	"Twitter":   "https://twitter.com/%s",
	"YouTube":   "https://www.youtube.com/%s",
	"Instagram": "https://www.instagram.com/%s",
	"LinkedIn":  "https://www.linkedin.com/in/%s",
}

func transformChannels(channels []wireChannel) []provider.SocialLink {
	var out []provider.SocialLink
	for _, ch := range channels {
		tmpl, ok := channelURLTemplates[ch.Type]
		if !ok || ch.ID == "" {
			continue
		}
		out = append(out, provider.SocialLink{
			Type: strings.ToLower(ch.Type),
			URL:  fmt.Sprintf(tmpl, ch.ID),
		})
	}
	return out
}

// levelFor maps Civic API office levels to votify's three-level taxonomy:
// country offices are federal, first-tier administrative areas are state,
// everything below (counties, localities, districts) is local.
func levelFor(levels []string) string {
	for _, l := range levels {
		switch l {
		case "country":
			return "federal"
		case "administrativeArea1":
			return "state"
		}
	}
	return "local"
}

func transformAddress(a wireAddress) provider.Address {
	line1 := a.Line1
	if line1 == "" {
		line1 = a.Line2
	}
	return provider.Address{
		LocationName: a.LocationName,
		Line1:        line1,
		City:         a.City,
		State:        strings.ToUpper(a.State),
		Zip:          a.Zip,
	}
}

// parseDivisionState extracts the 2-letter state from an OCD division id
// such as "ocd-division/country:us/state:ca/place:san_francisco".
// Best-effort: the format is provider-specific, not contractually fixed.
func parseDivisionState(divisionID string) string {
	for _, seg := range strings.Split(divisionID, "/") {
		if rest, ok := strings.CutPrefix(seg, "state:"); ok && len(rest) == 2 {
			return strings.ToUpper(rest)
		}
		// DC appears as district:dc in OCD ids.
		if rest, ok := strings.CutPrefix(seg, "district:"); ok && rest == "dc" {
			return "DC"
		}
	}
	return ""
}

func transformElection(e wireElection) provider.ElectionSummary {
	return provider.ElectionSummary{
		ID:          e.ID,
		Name:        e.Name,
		ElectionDay: e.ElectionDay,
		DivisionID:  e.OCDDivisionID,
		State:       parseDivisionState(e.OCDDivisionID),
	}
}

func transformRoster(resp *representativesResponse) *provider.OfficialRoster {
	roster := &provider.OfficialRoster{
		NormalizedAddress: transformAddress(resp.NormalizedInput),
	}

	for _, office := range resp.Offices {
		level := levelFor(office.Levels)
		for _, idx := range office.OfficialIndices {
			if idx < 0 || idx >= len(resp.Officials) {
				continue
			}
			w := resp.Officials[idx]

			official := provider.Official{
				Name:        w.Name,
				Office:      office.Name,
				Party:       w.Party,
				Level:       level,
				Phones:      w.Phones,
				Emails:      w.Emails,
				URLs:        w.URLs,
				PhotoURL:    w.PhotoURL,
				SocialLinks: transformChannels(w.Channels),
			}
			if len(w.Address) > 0 {
				addr := transformAddress(w.Address[0])
				official.Address = &addr
			}
			roster.Officials = append(roster.Officials, official)
		}
	}
	return roster
}

func transformPollingLocations(locs []wirePollingLocation) []provider.PollingPlace {
	var out []provider.PollingPlace
	for _, l := range locs {
		out = append(out, provider.PollingPlace{
			Address:      transformAddress(l.Address),
			PollingHours: l.PollingHours,
			StartDate:    l.StartDate,
			EndDate:      l.EndDate,
			Notes:        l.Notes,
		})
	}
	return out
}

func transformContests(contests []wireContest) []provider.Contest {
	var out []provider.Contest
	for _, c := range contests {
		contest := provider.Contest{
			Type:       c.Type,
			Office:     c.Office,
			Referendum: c.ReferendumTitle,
		}
		if c.District != nil {
			contest.District = c.District.Name
		}
		for _, cand := range c.Candidates {
			contest.Candidates = append(contest.Candidates, provider.ContestCandidate{
				Name:         cand.Name,
				Party:        cand.Party,
				CandidateURL: cand.CandidateURL,
				Phone:        cand.Phone,
				Email:        cand.Email,
				SocialLinks:  transformChannels(cand.Channels),
			})
		}
		out = append(out, contest)
	}
	return out
}

func transformVoterInfo(resp *voterInfoResponse) *provider.VoterInfoResult {
	out := &provider.VoterInfoResult{
		PollingLocations: transformPollingLocations(resp.PollingLocations),
		EarlyVoteSites:   transformPollingLocations(resp.EarlyVoteSites),
		DropOffLocations: transformPollingLocations(resp.DropOffLocations),
		Contests:         transformContests(resp.Contests),
	}

	if resp.Election != nil {
		e := transformElection(*resp.Election)
		out.Election = &e
	}
	if resp.NormalizedInput != nil {
		addr := transformAddress(*resp.NormalizedInput)
		out.NormalizedAddress = &addr
		out.State = addr.State
	}
	if len(resp.State) > 0 && resp.State[0].ElectionAdministrationBody != nil {
		body := resp.State[0].ElectionAdministrationBody
		admin := &provider.AdminBody{
			Name:                    body.Name,
			ElectionInfoURL:         body.ElectionInfoURL,
			ElectionRegistrationURL: body.ElectionRegistrationURL,
			AbsenteeVotingInfoURL:   body.AbsenteeVotingInfoURL,
			VotingLocationFinderURL: body.VotingLocationFinderURL,
			BallotInfoURL:           body.BallotInfoURL,
		}
		if body.CorrespondenceAddress != nil {
			addr := transformAddress(*body.CorrespondenceAddress)
			admin.CorrespondenceAddress = &addr
		}
		out.Administration = admin
	}
	return out
}
