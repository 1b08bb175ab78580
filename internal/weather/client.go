package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"agrivoice/internal/cache"
)

const (
	defaultBaseURL = "https://api.openweathermap.org/data/2.5"
	defaultCity    = "Antananarivo"

	forecastIntervals = 3
	forecastCacheTTL  = 10 * time.Minute
)

// Client fetches short-term forecasts from OpenWeatherMap. Any provider
// failure degrades to an empty bundle; the caller never sees an error for
// this dependency.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cache      *cache.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the provider endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithCache attaches a forecast cache.
func WithCache(cc *cache.Client) Option {
	return func(c *Client) { c.cache = cc }
}

// NewClient creates a forecast client with a bounded request timeout.
func NewClient(apiKey string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// forecastResponse is the subset of the provider payload we read.
type forecastResponse struct {
	List []ForecastEntry `json:"list"`
}

// Forecast returns the first three forecast intervals for a region,
// defaulting to Antananarivo when the region is empty. It never returns an
// error: network failures, provider errors and malformed payloads all yield
// a degraded empty bundle with a success level.
func (c *Client) Forecast(ctx context.Context, region string) Bundle {
	city := region
	if city == "" {
		city = defaultCity
	}

	cacheKey := "forecast:" + city
	if data, _ := c.cache.Get(ctx, cacheKey); data != nil {
		var cached []ForecastEntry
		if err := json.Unmarshal(data, &cached); err == nil {
			return Bundle{Previsions: cached, Niveau: Level(cached)}
		}
	}

	entries, err := c.fetch(ctx, city)
	if err != nil {
		return Bundle{Previsions: []ForecastEntry{}, Niveau: LevelSuccess, Degraded: true}
	}

	if payload, err := json.Marshal(entries); err == nil {
		_ = c.cache.Set(ctx, cacheKey, payload, forecastCacheTTL)
	}
	return Bundle{Previsions: entries, Niveau: Level(entries)}
}

func (c *Client) fetch(ctx context.Context, city string) ([]ForecastEntry, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	params.Set("lang", "fr")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/forecast?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var payload forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode forecast: %w", err)
	}
	if len(payload.List) == 0 {
		return nil, fmt.Errorf("empty forecast list")
	}

	entries := payload.List
	if len(entries) > forecastIntervals {
		entries = entries[:forecastIntervals]
	}
	return entries, nil
}
