package googlecivic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/votify/votify-backend/internal/provider"
)

const providerName = "googlecivic"

// Outbound quota guard. The Civic Information API enforces per-project QPS,
// so the client paces itself instead of burning quota on bursts.
const (
	requestsPerSecond = 5
	requestBurst      = 5
)

// Client is an HTTP client for the Google Civic Information API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a Civic Information API client. baseURL is overridable
// for tests; pass "" for the public endpoint.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = provider.DefaultCivicEndpoint
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
	}
}

// get performs one paced GET against path with params, decoding a 200 body
// into out. Non-200 responses become a provider.APIError carrying the
// upstream status and body. No retries, no backoff.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	params.Set("key", c.apiKey)
	fullURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	start := time.Now()
	provider.LogRequest(providerName, "GET", c.baseURL+path, nil)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		provider.LogError(providerName, "fetch", err)
		return fmt.Errorf("civic api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		apiErr := &provider.APIError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       compactErrorBody(body),
		}
		provider.LogError(providerName, "fetch", apiErr)
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		provider.LogError(providerName, "decode", err)
		return fmt.Errorf("decode civic api response: %w", err)
	}

	provider.LogResponse(providerName, resp.StatusCode, time.Since(start), 1)
	return nil
}

// compactErrorBody extracts the message from a Google API error envelope,
// falling back to the raw body when it isn't one.
func compactErrorBody(body []byte) string {
	var envelope apiError
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return string(body)
}

func (c *Client) fetchElections(ctx context.Context) (*electionsResponse, error) {
	var out electionsResponse
	if err := c.get(ctx, "/elections", url.Values{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) fetchRepresentatives(ctx context.Context, addr string) (*representativesResponse, error) {
	params := url.Values{}
	params.Set("address", addr)

	var out representativesResponse
	if err := c.get(ctx, "/representatives", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) fetchVoterInfo(ctx context.Context, addr, electionID string) (*voterInfoResponse, error) {
	params := url.Values{}
	params.Set("address", addr)
	if electionID != "" {
		params.Set("electionId", electionID)
	}

	var out voterInfoResponse
	if err := c.get(ctx, "/voterinfo", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
