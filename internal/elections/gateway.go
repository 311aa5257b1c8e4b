// Package elections fetches and reshapes upcoming-election listings and
// per-address voter logistics from the civic-data provider, guarding every
// result with a geographic relevance filter.
package elections

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/votify/votify-backend/internal/address"
	"github.com/votify/votify-backend/internal/provider"
	"github.com/votify/votify-backend/internal/seeds"
	"github.com/votify/votify-backend/internal/store"
)

// noDataMessage explains a degraded VoterInfo result.
const noDataMessage = "Specific voter information is not available for this address yet. Contact your state election office for polling place and registration details."

// Filter narrows the election listing to a visitor's area.
type Filter struct {
	State string
	City  string
}

// Gateway wraps the provider's election and voter-info endpoints.
type Gateway struct {
	store    store.Store
	provider provider.CivicProvider // nil when unconfigured
	offices  map[string]seeds.ElectionOffice

	// DegradeOnError controls what an upstream failure does: false (the
	// default for these endpoints, unlike the representative search)
	// propagates the error with its status and body, true logs it and
	// serves stored records and the static fallback instead. A missing
	// credential is a configuration error and propagates either way.
	DegradeOnError bool
}

func NewGateway(st store.Store, p provider.CivicProvider, offices map[string]seeds.ElectionOffice) *Gateway {
	return &Gateway{
		store:          st,
		provider:       p,
		offices:        offices,
		DegradeOnError: false,
	}
}

// classify derives the election type from its name: case-insensitive
// substring match, special when neither keyword appears.
func classify(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "primary"):
		return "primary"
	case strings.Contains(lower, "general"):
		return "general"
	default:
		return "special"
	}
}

func (g *Gateway) toElection(summary provider.ElectionSummary, filter Filter) store.Election {
	id, err := strconv.Atoi(summary.ID)
	if err != nil {
		id = 0
	}

	jurisdiction := "us"
	if summary.State != "" {
		jurisdiction = strings.ToLower(summary.State)
	}

	e := store.Election{
		ID:           id,
		Name:         summary.Name,
		Date:         summary.ElectionDay,
		Type:         classify(summary.Name),
		Jurisdiction: jurisdiction,
	}
	if office, ok := g.offices[summary.State]; ok {
		e.ElectionOfficeURL = office.ElectionInfoURL
	}
	if filter.State != "" &&
		strings.Contains(strings.ToLower(summary.DivisionID), strings.ToLower(filter.State)) {
		e.IsNearby = true
	}
	return e
}

// ListElections fetches the provider's upcoming elections, reshaped and
// flagged with isNearby when a state filter matches the division id.
func (g *Gateway) ListElections(ctx context.Context, filter Filter) ([]store.Election, error) {
	if g.provider == nil {
		return nil, provider.ErrMissingCivicKey
	}

	summaries, err := g.provider.Elections(ctx)
	if err != nil {
		if g.DegradeOnError {
			provider.LogError(g.provider.Name(), "elections", err)
			return []store.Election{}, nil
		}
		return nil, err
	}

	out := make([]store.Election, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, g.toElection(s, filter))
	}
	return out, nil
}

// ElectionsForJurisdiction serves GET /api/elections/{jurisdiction}: stored
// records for the jurisdiction, augmented with provider elections for the
// jurisdiction's state when a provider is configured.
func (g *Gateway) ElectionsForJurisdiction(ctx context.Context, jurisdiction string) ([]store.Election, error) {
	stored, err := g.store.ElectionsByJurisdiction(jurisdiction)
	if err != nil {
		return nil, err
	}
	out := stored
	if out == nil {
		out = []store.Election{}
	}

	if g.provider == nil {
		return out, nil
	}

	state := address.StateOf(jurisdiction)
	if state == "" {
		return out, nil
	}

	summaries, err := g.provider.Elections(ctx)
	if err != nil {
		if g.DegradeOnError {
			provider.LogError(g.provider.Name(), "elections", err)
			return out, nil
		}
		return nil, err
	}
	for _, s := range summaries {
		if s.State != state {
			continue
		}
		e := g.toElection(s, Filter{State: state})
		out = append(out, e)
	}
	return out, nil
}

// GetVoterInfo resolves voter logistics for an address. When electionID is
// empty it discovers a relevant election itself; every accepted response
// must pass the state-match relevance filter. The upstream endpoint has
// returned wrong-jurisdiction elections before, so the filter is a
// correctness guard and runs even when it discards everything.
func (g *Gateway) GetVoterInfo(ctx context.Context, rawAddr, electionID string) (*VoterInfo, error) {
	if g.provider == nil {
		return nil, provider.ErrMissingCivicKey
	}

	wantState := address.ExtractState(rawAddr)

	if electionID != "" {
		result, err := g.provider.VoterInfo(ctx, rawAddr, electionID)
		if err != nil {
			if g.DegradeOnError {
				provider.LogError(g.provider.Name(), "voterinfo election="+electionID, err)
				return g.fallback(wantState), nil
			}
			return nil, err
		}
		if accepted := g.accept(result, wantState); accepted != nil {
			return accepted, nil
		}
		return g.fallback(wantState), nil
	}

	summaries, err := g.provider.Elections(ctx)
	if err != nil {
		if g.DegradeOnError {
			provider.LogError(g.provider.Name(), "elections", err)
			return g.fallback(wantState), nil
		}
		return nil, err
	}

	tried, discarded, rejected := 0, 0, 0
	for _, s := range summaries {
		// Skip elections whose own division-encoded state differs from the
		// address's state. Unparseable divisions pass through.
		if wantState != "" && s.State != "" && s.State != wantState {
			discarded++
			continue
		}
		tried++

		result, err := g.provider.VoterInfo(ctx, rawAddr, s.ID)
		if err != nil {
			// A per-election query failing (election closed, address out of
			// range) just means this candidate is unusable.
			provider.LogError(g.provider.Name(), "voterinfo election="+s.ID, err)
			continue
		}
		if accepted := g.accept(result, wantState); accepted != nil {
			return accepted, nil
		}
		rejected++
	}
	// Reaching here means nothing was accepted; surface the filter's work
	// whether candidates were discarded up front or rejected after a query.
	if rejected > 0 || (discarded > 0 && tried == 0) {
		provider.LogFiltered(g.provider.Name(), wantState, discarded+rejected, len(summaries))
	}

	// Last provider attempt: no election id at all.
	if result, err := g.provider.VoterInfo(ctx, rawAddr, ""); err == nil {
		if accepted := g.accept(result, wantState); accepted != nil {
			return accepted, nil
		}
	}

	return g.fallback(wantState), nil
}

// accept applies the relevance filter and the usable-data requirement,
// returning the reshaped VoterInfo or nil when the result is rejected.
func (g *Gateway) accept(result *provider.VoterInfoResult, wantState string) *VoterInfo {
	if !result.HasUsableData() {
		return nil
	}
	if wantState != "" && result.State != "" && result.State != wantState {
		return nil
	}

	out := emptyVoterInfo()
	out.PollingLocations = fromProviderPlaces(result.PollingLocations)
	out.EarlyVoteSites = fromProviderPlaces(result.EarlyVoteSites)
	out.DropOffLocations = fromProviderPlaces(result.DropOffLocations)
	out.Contests = fromProviderContests(result.Contests)
	out.ElectionAdministration = fromProviderAdmin(result.Administration)
	if result.NormalizedAddress != nil {
		out.NormalizedAddress = result.NormalizedAddress.String()
	}
	if result.Election != nil {
		e := g.toElection(*result.Election, Filter{})
		out.Election = &e
	}
	return out
}

// fallback is the no-data result: empty arrays, an explanatory message, and
// the static state election office when one is known.
func (g *Gateway) fallback(state string) *VoterInfo {
	out := emptyVoterInfo()
	out.Message = noDataMessage
	if office, ok := g.offices[state]; ok {
		out.ElectionAdministration = fromElectionOffice(office)
		out.Message = fmt.Sprintf("Specific voter information is not available for this address yet. Contact the %s for polling place and registration details.", office.Name)
	}
	return out
}
