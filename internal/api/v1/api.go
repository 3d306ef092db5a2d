// Package v1 implements the native REST API.
package v1

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// Server is the v1 API server.
type Server struct {
	deps    ServerDeps
	log     *slog.Logger
	version string
	limiter *clientLimiter
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithVersion sets the version reported by /status.
func WithVersion(v string) Option {
	return func(s *Server) { s.version = v }
}

// WithRateLimit throttles each client address to rps requests per second
// with the given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		if rps > 0 && burst > 0 {
			s.limiter = newClientLimiter(rps, burst)
		}
	}
}

// New creates a new v1 API server with the given dependencies.
func New(deps ServerDeps, opts ...Option) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingDependency, err)
	}
	s := &Server{
		deps:    deps,
		log:     slog.Default(),
		version: "dev",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Browse
	mux.HandleFunc("GET /api/v1/catalog", s.getCatalog)
	mux.HandleFunc("GET /api/v1/content/{slug}", s.getContent)
	mux.HandleFunc("GET /api/v1/search", s.search)

	// Playback
	mux.HandleFunc("GET /api/v1/watch/{type}/{slug}", s.getWatch)
	mux.HandleFunc("GET /api/v1/progress/{key}", s.getProgress)
	mux.HandleFunc("PUT /api/v1/progress/{key}", s.putProgress)

	// System
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
}

// Handler returns the routes wrapped in the request id, logging and rate
// limiting middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)

	var h http.Handler = mux
	if s.limiter != nil {
		h = s.limiter.middleware(h)
	}
	h = logRequests(h, s.log)
	return requestID(h)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// queryInt extracts an optional integer from the query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

// queryIntPtr is queryInt for optional selectors; unparseable values are
// treated as absent.
func queryIntPtr(r *http.Request, name string) *int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return nil
	}
	return &i
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Status:   "ok",
		Version:  s.version,
		Titles:   len(s.deps.Catalog.Items(r.Context())),
		Searcher: s.deps.Searcher != nil,
	})
}
