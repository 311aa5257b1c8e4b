// Package googlecivic implements provider.CivicProvider on top of the
// Google Civic Information API v2.
package googlecivic

import (
	"context"
	"net/url"

	"github.com/votify/votify-backend/internal/provider"
)

func init() {
	provider.RegisterProvider(provider.ProviderGoogleCivic, func(cfg provider.Config) (provider.CivicProvider, error) {
		return &civicProvider{client: NewClient(cfg.CivicKey, cfg.CivicEndpoint)}, nil
	})
}

type civicProvider struct {
	client *Client
}

func (p *civicProvider) Name() string { return providerName }

func (p *civicProvider) OfficialsByAddress(ctx context.Context, addr string) (*provider.OfficialRoster, error) {
	resp, err := p.client.fetchRepresentatives(ctx, addr)
	if err != nil {
		return nil, err
	}
	return transformRoster(resp), nil
}

func (p *civicProvider) Elections(ctx context.Context) ([]provider.ElectionSummary, error) {
	resp, err := p.client.fetchElections(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]provider.ElectionSummary, 0, len(resp.Elections))
	for _, e := range resp.Elections {
		out = append(out, transformElection(e))
	}
	return out, nil
}

func (p *civicProvider) VoterInfo(ctx context.Context, addr, electionID string) (*provider.VoterInfoResult, error) {
	resp, err := p.client.fetchVoterInfo(ctx, addr, electionID)
	if err != nil {
		return nil, err
	}
	return transformVoterInfo(resp), nil
}

// HealthCheck hits the election listing, the cheapest authenticated call.
func (p *civicProvider) HealthCheck(ctx context.Context) error {
	var out electionsResponse
	return p.client.get(ctx, "/elections", url.Values{}, &out)
}
