package provider

import (
	"errors"
	"testing"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CIVIC_PROVIDER", "")
	t.Setenv("GOOGLE_CIVIC_API_KEY", "test-key")
	t.Setenv("GOOGLE_CIVIC_ENDPOINT", "")

	cfg := LoadFromEnv()
	if cfg.Provider != ProviderGoogleCivic {
		t.Errorf("provider = %q, want default googlecivic", cfg.Provider)
	}
	if cfg.CivicEndpoint != DefaultCivicEndpoint {
		t.Errorf("endpoint = %q, want default", cfg.CivicEndpoint)
	}
	if cfg.CivicKey != "test-key" {
		t.Errorf("key = %q", cfg.CivicKey)
	}
}

// A missing key fails Validate, so NewProvider reports the configuration
// error before any network call.
func TestValidateMissingKey(t *testing.T) {
	cfg := Config{Provider: ProviderGoogleCivic}
	if err := cfg.Validate(); !errors.Is(err, ErrMissingCivicKey) {
		t.Fatalf("err = %v, want ErrMissingCivicKey", err)
	}

	if _, err := NewProvider(cfg); err == nil {
		t.Fatal("NewProvider accepted an invalid config")
	}
}

func TestNewProviderUnknownType(t *testing.T) {
	cfg := Config{Provider: ProviderType("carrier-pigeon"), CivicKey: "k"}
	if _, err := NewProvider(cfg); !errors.Is(err, ErrUnknownProvider) {
		t.Fatalf("err = %v, want ErrUnknownProvider", err)
	}
}
