package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vmunix/frameflux/internal/catalog"
	"github.com/vmunix/frameflux/internal/content"
	"github.com/vmunix/frameflux/internal/watch"
)

// Client wraps HTTP calls to the FrameFlux server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new FrameFlux API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server error %d (%s): %s", e.Status, e.Code, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal error: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{Status: resp.StatusCode}
		if json.Unmarshal(raw, apiErr) != nil || apiErr.Message == "" {
			apiErr.Code = ""
			apiErr.Message = string(bytes.TrimSpace(raw))
		}
		return apiErr
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	return c.do(ctx, http.MethodGet, path, nil, result)
}

// API response types (mirror server types)

type StatusResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Titles   int    `json:"titles"`
	Searcher bool   `json:"searcher"`
}

type CatalogResponse struct {
	Filter  catalog.Filter       `json:"filter"`
	Genres  []catalog.GenreCount `json:"genres"`
	Years   []string             `json:"years"`
	Hero    []*content.Item      `json:"hero"`
	Popular []*content.Item      `json:"popular"`
	Latest  catalog.Page         `json:"latest"`
}

type ContentResponse struct {
	Item         *content.Item   `json:"item"`
	Rating       float64         `json:"rating"`
	SchemaRating float64         `json:"schema_rating"`
	DetailPath   string          `json:"detail_path"`
	WatchPath    string          `json:"watch_path"`
	Related      []*content.Item `json:"related"`
}

type SearchResponse struct {
	Query  string          `json:"query"`
	Local  []*content.Item `json:"local"`
	Remote []*content.Item `json:"remote"`
}

type ProgressResponse struct {
	Key      string  `json:"key"`
	Position float64 `json:"position"`
	Found    bool    `json:"found"`
}

// Status returns server health.
func (c *Client) Status(ctx context.Context) (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get(ctx, "/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Catalog lists one page of the catalog matching filter.
func (c *Client) Catalog(ctx context.Context, filter catalog.Filter, page int) (*CatalogResponse, error) {
	params := url.Values{}
	if filter.Type != "" {
		params.Set("type", filter.Type)
	}
	if filter.Genre != "" {
		params.Set("genre", filter.Genre)
	}
	if filter.Year != "" {
		params.Set("year", filter.Year)
	}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}

	path := "/api/v1/catalog"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	var resp CatalogResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Content returns one title with related titles.
func (c *Client) Content(ctx context.Context, slug string) (*ContentResponse, error) {
	var resp ContentResponse
	if err := c.get(ctx, "/api/v1/content/"+url.PathEscape(slug), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search searches the catalog and the remote source.
func (c *Client) Search(ctx context.Context, query string) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	var resp SearchResponse
	if err := c.get(ctx, "/api/v1/search?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Watch returns the watch document for a title. season and episode may be
// nil.
func (c *Client) Watch(ctx context.Context, typ content.Type, slug string, season, episode *int) (*watch.Document, error) {
	params := url.Values{}
	if season != nil {
		params.Set("season", strconv.Itoa(*season))
	}
	if episode != nil {
		params.Set("episode", strconv.Itoa(*episode))
	}

	path := fmt.Sprintf("/api/v1/watch/%s/%s", typ.Segment(), url.PathEscape(slug))
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	var doc watch.Document
	if err := c.get(ctx, path, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Progress reads a resume position.
func (c *Client) Progress(ctx context.Context, key string) (*ProgressResponse, error) {
	var resp ProgressResponse
	if err := c.get(ctx, "/api/v1/progress/"+url.PathEscape(key), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetProgress stores a resume position.
func (c *Client) SetProgress(ctx context.Context, key string, seconds float64) error {
	body := map[string]float64{"position": seconds}
	return c.do(ctx, http.MethodPut, "/api/v1/progress/"+url.PathEscape(key), body, nil)
}

// remoteStore is a playback.PositionStore backed by the server.
type remoteStore struct {
	client *Client
}

func (s remoteStore) Get(ctx context.Context, key string) (float64, bool, error) {
	resp, err := s.client.Progress(ctx, key)
	if err != nil {
		return 0, false, err
	}
	return resp.Position, resp.Found, nil
}

func (s remoteStore) Set(ctx context.Context, key string, seconds float64) error {
	return s.client.SetProgress(ctx, key, seconds)
}
