package session

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/seamlist/pageflow/internal/pager"
)

// DefaultCacheTTL is how long cached page metadata stays fresh.
const DefaultCacheTTL = 30 * time.Second

// CachedSource wraps a pager.MetadataSource with a TTL cache and
// single-flight deduplication: concurrent fetches for the same window share
// one upstream call, and a fresh answer is served from memory until it
// expires. Errors are never cached; a failed fetch leaves the entry empty
// so the next read retries upstream.
type CachedSource struct {
	source pager.MetadataSource
	ttl    time.Duration

	group   singleflight.Group
	mu      sync.Mutex
	entries map[string]cacheEntry
}

// cacheEntry is one cached metadata value with its expiry.
type cacheEntry struct {
	meta      pager.PageMetadata
	expiresAt time.Time
}

func (e cacheEntry) expired() bool {
	return time.Now().After(e.expiresAt)
}

// NewCachedSource wraps source with a cache holding answers for ttl.
// A non-positive ttl falls back to DefaultCacheTTL.
func NewCachedSource(source pager.MetadataSource, ttl time.Duration) *CachedSource {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedSource{
		source:  source,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// Fetch satisfies pager.MetadataSource.
func (c *CachedSource) Fetch(ctx context.Context, window pager.Pagination) (pager.PageMetadata, error) {
	key := window.String()

	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok && entry.expired() {
		delete(c.entries, key)
		ok = false
	}
	c.mu.Unlock()
	if ok {
		return entry.meta, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// Re-check under the flight: another caller may have populated the
		// entry between our miss and this call.
		c.mu.Lock()
		entry, ok := c.entries[key]
		c.mu.Unlock()
		if ok && !entry.expired() {
			return entry.meta, nil
		}

		meta, fetchErr := c.source(ctx, window)
		if fetchErr != nil {
			return pager.PageMetadata{}, fetchErr
		}
		c.mu.Lock()
		c.entries[key] = cacheEntry{meta: meta, expiresAt: time.Now().Add(c.ttl)}
		c.mu.Unlock()
		return meta, nil
	})
	if err != nil {
		return pager.PageMetadata{}, err
	}
	return v.(pager.PageMetadata), nil
}

// Invalidate drops every cached entry, forcing the next fetch per window to
// go upstream.
func (c *CachedSource) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
