package provider

import (
	"os"
	"strings"
)

// ProviderType identifies which data provider to use.
type ProviderType string

const (
	ProviderGoogleCivic ProviderType = "googlecivic"
)

// Config holds configuration for the civic data provider.
type Config struct {
	Provider ProviderType

	// Google Civic Information API config
	CivicKey      string
	CivicEndpoint string
}

// DefaultCivicEndpoint is the Google Civic Information API base URL.
const DefaultCivicEndpoint = "https://www.googleapis.com/civicinfo/v2"

// LoadFromEnv loads provider configuration from environment variables.
//
// Environment variables:
//   - CIVIC_PROVIDER: provider type (default: "googlecivic")
//   - GOOGLE_CIVIC_API_KEY: API key (required)
//   - GOOGLE_CIVIC_ENDPOINT: base URL override (default: the public API)
func LoadFromEnv() Config {
	providerStr := strings.ToLower(strings.TrimSpace(os.Getenv("CIVIC_PROVIDER")))

	var p ProviderType
	switch providerStr {
	default:
		p = ProviderGoogleCivic
	}

	endpoint := strings.TrimSpace(os.Getenv("GOOGLE_CIVIC_ENDPOINT"))
	if endpoint == "" {
		endpoint = DefaultCivicEndpoint
	}

	return Config{
		Provider:      p,
		CivicKey:      os.Getenv("GOOGLE_CIVIC_API_KEY"),
		CivicEndpoint: endpoint,
	}
}

// Validate checks that the configuration is valid for the selected provider.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGoogleCivic:
		if c.CivicKey == "" {
			return ErrMissingCivicKey
		}
	}
	return nil
}
