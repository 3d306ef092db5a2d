package metadata

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/vmunix/frameflux/internal/content"
)

// Cache key prefixes
const (
	keyPrefixContent = "content:"
	keyPrefixSearch  = "search:"
)

// Source is the uncached resolver.
type Source interface {
	Resolve(ctx context.Context, id string) (*content.Item, error)
	Search(ctx context.Context, query string) []*content.Item
}

// TTLs configures a CachedResolver. A zero TTL disables that cache.
type TTLs struct {
	Content time.Duration
	Search  time.Duration
}

// CachedResolver puts the SQLite cache in front of a Source. Only
// successful lookups and non-empty searches are stored; cache failures are
// logged and never fail the lookup.
type CachedResolver struct {
	src   Source
	cache *Cache
	ttls  TTLs
	log   *slog.Logger
}

// NewCachedResolver creates a cached resolver.
func NewCachedResolver(src Source, cache *Cache, ttls TTLs, log *slog.Logger) *CachedResolver {
	if log == nil {
		log = slog.Default()
	}
	return &CachedResolver{src: src, cache: cache, ttls: ttls, log: log}
}

// Resolve returns the item for id (cached).
func (r *CachedResolver) Resolve(ctx context.Context, id string) (*content.Item, error) {
	if r.ttls.Content <= 0 {
		return r.src.Resolve(ctx, id)
	}
	key := keyPrefixContent + id

	var item content.Item
	if ok, err := r.cache.getJSON(ctx, key, &item); err != nil {
		r.log.Warn("content cache read failed", "id", id, "error", err)
	} else if ok {
		r.log.Debug("cache hit for content", "id", id)
		return &item, nil
	}

	r.log.Debug("cache miss for content, resolving", "id", id)
	resolved, err := r.src.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.cache.setJSON(ctx, key, resolved, r.ttls.Content); err != nil {
		r.log.Warn("failed to cache content", "id", id, "error", err)
	}
	return resolved, nil
}

// Search runs a remote search (cached by normalized query).
func (r *CachedResolver) Search(ctx context.Context, query string) []*content.Item {
	normalized := strings.ToLower(strings.Join(strings.Fields(query), " "))
	if r.ttls.Search <= 0 || normalized == "" {
		return r.src.Search(ctx, query)
	}
	key := keyPrefixSearch + normalized

	var items []*content.Item
	if ok, err := r.cache.getJSON(ctx, key, &items); err != nil {
		r.log.Warn("search cache read failed", "query", normalized, "error", err)
	} else if ok {
		r.log.Debug("cache hit for search", "query", normalized, "results", len(items))
		return items
	}

	items = r.src.Search(ctx, query)
	if len(items) == 0 {
		return items
	}
	if err := r.cache.setJSON(ctx, key, items, r.ttls.Search); err != nil {
		r.log.Warn("failed to cache search results", "query", normalized, "error", err)
	}
	return items
}
