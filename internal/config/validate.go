// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// Upstreams
	if c.OMDb.BaseURL != "" && !validURL(c.OMDb.BaseURL) {
		errs = append(errs, fmt.Sprintf("omdb.base_url: invalid URL %q", c.OMDb.BaseURL))
	}
	if c.OMDb.RequestsPerSecond < 0 {
		errs = append(errs, "omdb.requests_per_second: must not be negative")
	}
	if c.TMDB.BaseURL != "" && !validURL(c.TMDB.BaseURL) {
		errs = append(errs, fmt.Sprintf("tmdb.base_url: invalid URL %q", c.TMDB.BaseURL))
	}
	if c.TMDB.FindCacheTTL < 0 {
		errs = append(errs, "tmdb.find_cache_ttl: must not be negative")
	}

	// Catalog validation
	if c.OMDb.APIKey == "" && !c.Catalog.Fallback {
		errs = append(errs, "omdb.api_key: required when catalog.fallback is disabled")
	}
	for _, id := range c.Catalog.IDs {
		if !strings.HasPrefix(id, "tt") || len(id) < 3 {
			errs = append(errs, fmt.Sprintf("catalog.ids: %q is not an IMDb id", id))
		}
	}
	if c.Catalog.Concurrency < 0 {
		errs = append(errs, "catalog.concurrency: must not be negative")
	}
	if c.Catalog.RelatedCount < 0 {
		errs = append(errs, "catalog.related_count: must not be negative")
	}

	// Cache validation
	if c.Cache.ContentTTL < 0 {
		errs = append(errs, "cache.content_ttl: must not be negative")
	}
	if c.Cache.SearchTTL < 0 {
		errs = append(errs, "cache.search_ttl: must not be negative")
	}
	if c.Cache.PruneInterval < 0 {
		errs = append(errs, "cache.prune_interval: must not be negative")
	}

	// Rate limit validation
	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 {
			errs = append(errs, "ratelimit.requests_per_second: must be positive when ratelimit is enabled")
		}
		if c.RateLimit.Burst < 1 {
			errs = append(errs, "ratelimit.burst: must be at least 1 when ratelimit is enabled")
		}
	}

	return errs
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
