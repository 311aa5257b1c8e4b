package geocode

import "testing"

// An unset key is graceful degradation, not an error.
func TestNewClientWithoutKey(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "")
	c, err := NewClient()
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if c != nil {
		t.Fatal("expected nil client without a key")
	}
}

func TestNewClientWithKey(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "k")
	c, err := NewClient()
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if c == nil {
		t.Fatal("expected a client")
	}
}

func TestFormatLatLng(t *testing.T) {
	if got := FormatLatLng(37.77926); got != "37.779260" {
		t.Errorf("got %q", got)
	}
	if got := FormatLatLng(-122.41924); got != "-122.419240" {
		t.Errorf("got %q", got)
	}
}
