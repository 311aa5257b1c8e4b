// Package geocode wraps the Google Maps Geocoding API. A configured client
// acts as the address normalizer's first tier; when no key is set the
// heuristic chain runs alone.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/votify/votify-backend/internal/address"
)

// Result holds the structured fields of a geocoding response.
type Result struct {
	Line1     string  `json:"line1"`
	City      string  `json:"city"`
	State     string  `json:"state"` // 2-letter abbreviation
	Zip       string  `json:"zip"`
	Formatted string  `json:"formatted"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

type Client struct {
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a geocoding client from the GOOGLE_MAPS_API_KEY env var.
// Returns nil, nil if the key is not set (graceful degradation).
func NewClient() (*Client, error) {
	key := os.Getenv("GOOGLE_MAPS_API_KEY")
	if key == "" {
		return nil, nil
	}
	return &Client{
		apiKey: key,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}, nil
}

type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
	Status  string          `json:"status"`
}

type geocodeResult struct {
	AddressComponents []addressComponent `json:"address_components"`
	FormattedAddress  string             `json:"formatted_address"`
	Geometry          geometry           `json:"geometry"`
}

type addressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type geometry struct {
	Location latLng `json:"location"`
}

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geocode converts a free-form address string into structured fields.
func (c *Client) Geocode(ctx context.Context, raw string) (*Result, error) {
	u := fmt.Sprintf("https://maps.googleapis.com/maps/api/geocode/json?address=%s&key=%s",
		url.QueryEscape(raw), c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API returned HTTP %d", resp.StatusCode)
	}

	var geoResp geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&geoResp); err != nil {
		return nil, fmt.Errorf("decoding geocode response: %w", err)
	}

	if geoResp.Status != "OK" || len(geoResp.Results) == 0 {
		return nil, fmt.Errorf("geocoding failed: status=%s results=%d", geoResp.Status, len(geoResp.Results))
	}

	first := geoResp.Results[0]
	out := &Result{
		Formatted: first.FormattedAddress,
		Lat:       first.Geometry.Location.Lat,
		Lng:       first.Geometry.Location.Lng,
	}

	var streetNumber, route string
	for _, comp := range first.AddressComponents {
		for _, t := range comp.Types {
			switch t {
			case "street_number":
				streetNumber = comp.ShortName
			case "route":
				route = comp.ShortName
			case "postal_code":
				out.Zip = comp.ShortName
			case "administrative_area_level_1":
				out.State = comp.ShortName
			case "locality":
				out.City = comp.LongName
			}
		}
	}
	if route != "" {
		out.Line1 = route
		if streetNumber != "" {
			out.Line1 = streetNumber + " " + route
		}
	}

	if out.City == "" || out.State == "" {
		return nil, fmt.Errorf("geocoding result missing city or state for: %s", raw)
	}

	return out, nil
}

// LookupAddress implements address.Lookup so a geocoding client can be
// plugged straight into the normalizer.
func (c *Client) LookupAddress(ctx context.Context, raw string) (*address.Resolved, error) {
	res, err := c.Geocode(ctx, raw)
	if err != nil {
		return nil, err
	}
	return &address.Resolved{
		Address: address.NormalizedAddress{
			Line1: res.Line1,
			City:  res.City,
			State: res.State,
			Zip:   res.Zip,
		},
		Lat: FormatLatLng(res.Lat),
		Lng: FormatLatLng(res.Lng),
	}, nil
}

// FormatLatLng renders a coordinate for storage on a search record.
func FormatLatLng(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
