// Package omdb provides a client for the Open Movie Database API.
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://www.omdbapi.com"

// Sentinel errors for OMDb responses.
var (
	ErrNotFound      = errors.New("title not found")
	ErrMissingAPIKey = errors.New("omdb api key is missing")
)

// Client is an OMDb API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLimiter paces outbound requests. Requests wait for a token; they are
// never retried.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "omdb")
	}
}

// New creates a new OMDb client. An empty apiKey yields a client whose calls
// fail with ErrMissingAPIKey.
func New(apiKey string, opts ...Option) *Client {
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

// GetByID fetches the full record of a title by IMDb id.
func (c *Client) GetByID(ctx context.Context, imdbID string) (*Title, error) {
	params := url.Values{}
	params.Set("i", imdbID)
	params.Set("plot", "full")

	var title Title
	if err := c.get(ctx, params, &title); err != nil {
		return nil, err
	}
	if title.Response != "True" {
		if c.log != nil {
			c.log.Debug("title not found", "imdb_id", imdbID, "error", title.Error)
		}
		return nil, ErrNotFound
	}
	return &title, nil
}

// Search runs a free-text title search. No match yields an empty slice.
func (c *Client) Search(ctx context.Context, query string) ([]SearchItem, error) {
	params := url.Values{}
	params.Set("s", query)

	var resp searchResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, err
	}
	if resp.Response != "True" {
		if c.log != nil {
			c.log.Debug("search returned no results", "query", query, "error", resp.Error)
		}
		return []SearchItem{}, nil
	}
	return resp.Search, nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	params.Set("apikey", c.apiKey)
	reqURL := c.baseURL + "/?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

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

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("OMDb API error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
