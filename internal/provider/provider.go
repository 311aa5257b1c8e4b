// Package provider abstracts the external civic-information service. The
// backend only assumes request -> JSON body | HTTP error; everything
// provider-specific lives behind CivicProvider.
package provider

import (
	"context"
	"errors"
	"fmt"
)

// Common errors
var (
	ErrMissingCivicKey = errors.New("GOOGLE_CIVIC_API_KEY environment variable is required for the googlecivic provider")
	ErrUnknownProvider = errors.New("unknown provider type")
)

// APIError carries an upstream HTTP failure with enough context to diagnose
// it from the caller's side. Not retried.
type APIError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: upstream status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// CivicProvider is the interface all civic-data providers implement.
type CivicProvider interface {
	// Name returns the provider name for logging purposes.
	Name() string

	// OfficialsByAddress fetches elected officials for an address, already
	// reshaped into the normalized Official form.
	OfficialsByAddress(ctx context.Context, addr string) (*OfficialRoster, error)

	// Elections fetches the provider's upcoming-election listing.
	Elections(ctx context.Context) ([]ElectionSummary, error)

	// VoterInfo fetches polling / contest / administration data for an
	// address, scoped to electionID when non-empty.
	VoterInfo(ctx context.Context, addr, electionID string) (*VoterInfoResult, error)

	// HealthCheck verifies the provider can reach its data source.
	HealthCheck(ctx context.Context) error
}

// providerRegistry holds registered provider constructors so new providers
// can be added without touching this file.
var providerRegistry = make(map[ProviderType]func(Config) (CivicProvider, error))

// RegisterProvider registers a constructor for a provider type. Called from
// init() in each provider package.
func RegisterProvider(providerType ProviderType, constructor func(Config) (CivicProvider, error)) {
	providerRegistry[providerType] = constructor
}

// NewProvider creates a CivicProvider from config. A missing credential is a
// configuration error reported here, before any network call.
func NewProvider(cfg Config) (CivicProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	constructor, ok := providerRegistry[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}

	return constructor(cfg)
}
