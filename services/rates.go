package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// DefaultRateFeedURL is the public feed the shop refreshes rates from.
// The feed reports foreign currency per 1 TL, so the TL-per-foreign rates
// used by the pricing engine are the reciprocals.
const DefaultRateFeedURL = "https://open.er-api.com/v6/latest/TRY"

// RateProvider supplies the two exchange rates the pricing engine consumes.
// Fetch failures are advisory: callers keep whatever rates they already hold.
type RateProvider interface {
	FetchRates(ctx context.Context) (Rates, error)
}

// FeedClient fetches rates from an open.er-api.com style JSON feed.
type FeedClient struct {
	URL        string
	HTTPClient *http.Client
}

// NewFeedClient returns a FeedClient against the default public feed.
func NewFeedClient() *FeedClient {
	return &FeedClient{
		URL:        DefaultRateFeedURL,
		HTTPClient: http.DefaultClient,
	}
}

// FetchRates performs one GET against the feed and converts the USD and EUR
// entries into TL-per-foreign rates. Any shape deviation, a non-2xx status or
// a non-positive rate is reported as an error; no retry is attempted.
func (c *FeedClient) FetchRates(ctx context.Context) (Rates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return Rates{}, fmt.Errorf("rate feed: build request: %w", err)
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return Rates{}, fmt.Errorf("rate feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Rates{}, fmt.Errorf("rate feed: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Rates{}, fmt.Errorf("rate feed: decode response: %w", err)
	}

	usd, okUSD := payload.Rates["USD"]
	eur, okEUR := payload.Rates["EUR"]
	if !okUSD || !okEUR {
		return Rates{}, fmt.Errorf("rate feed: response missing USD or EUR rate")
	}
	if usd <= 0 || eur <= 0 {
		return Rates{}, fmt.Errorf("rate feed: non-positive rate (USD=%v EUR=%v)", usd, eur)
	}

	return Rates{USD: 1 / usd, EUR: 1 / eur}, nil
}
