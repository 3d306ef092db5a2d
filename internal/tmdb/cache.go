package tmdb

import (
	"sync"
	"time"
)

type cacheEntry struct {
	tvID    int64
	expires time.Time
}

// cache maps IMDb ids to TMDB tv ids. The cross-reference is stable, so it
// is the only response the client keeps in memory. A ttl of zero keeps
// nothing.
type cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

func newCache(ttl time.Duration) *cache {
	return &cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

func (c *cache) get(imdbID string) (int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[imdbID]
	if !ok {
		return 0, false
	}
	if time.Now().After(entry.expires) {
		return 0, false
	}
	return entry.tvID, true
}

func (c *cache) set(imdbID string, tvID int64) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[imdbID] = cacheEntry{
		tvID:    tvID,
		expires: time.Now().Add(c.ttl),
	}
}
