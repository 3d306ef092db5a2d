package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org"

// Sentinel errors for TMDB responses.
var (
	ErrNotFound      = errors.New("series not found")
	ErrMissingAPIKey = errors.New("tmdb api key is missing")
)

// Client is a TMDB API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *cache // nil disables the find cache
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithCacheTTL enables caching of IMDb id lookups for ttl.
// A zero ttl leaves caching off.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl > 0 {
			c.cache = newCache(ttl)
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// FindByIMDB maps an IMDb id to a TMDB tv series id.
// Returns ErrNotFound if TMDB knows no series for it.
func (c *Client) FindByIMDB(ctx context.Context, imdbID string) (int64, error) {
	if c.cache != nil {
		if id, ok := c.cache.get(imdbID); ok {
			return id, nil
		}
	}

	var resp findResponse
	path := fmt.Sprintf("/3/find/%s?api_key=%s&external_source=imdb_id", url.PathEscape(imdbID), c.apiKey)
	if err := c.get(ctx, path, &resp); err != nil {
		return 0, err
	}
	if len(resp.TVResults) == 0 || resp.TVResults[0].ID == 0 {
		return 0, ErrNotFound
	}

	id := resp.TVResults[0].ID
	if c.cache != nil {
		c.cache.set(imdbID, id)
	}
	return id, nil
}

// GetSeries fetches series metadata by TMDB id.
func (c *Client) GetSeries(ctx context.Context, tvID int64) (*Series, error) {
	var series Series
	path := fmt.Sprintf("/3/tv/%d?api_key=%s", tvID, c.apiKey)
	if err := c.get(ctx, path, &series); err != nil {
		return nil, err
	}
	return &series, nil
}

// GetSeason fetches one season with its episode list.
func (c *Client) GetSeason(ctx context.Context, tvID int64, seasonNumber int) (*Season, error) {
	var season Season
	path := fmt.Sprintf("/3/tv/%d/season/%d?api_key=%s", tvID, seasonNumber, c.apiKey)
	if err := c.get(ctx, path, &season); err != nil {
		return nil, err
	}
	return &season, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	// Build request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	// Execute
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// the URL carries the API key
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Handle errors
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TMDB API error: %s", resp.Status)
	}

	// Decode
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
