package store

import (
	"strings"
	"sync"
	"time"

	"StockPulse/internal/model"
)

// SearchCache memoizes search results per normalized query. Each entry
// expires independently after the TTL and is removed proactively by its own
// timer, not lazily on the next read.
type SearchCache struct {
	ttl time.Duration

	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	results []model.SearchResult
	timer   *time.Timer
}

func NewSearchCache(ttl time.Duration) *SearchCache {
	return &SearchCache{
		ttl:     ttl,
		entries: make(map[string]*cacheEntry),
	}
}

// Get returns the cached results for a query, if present and not expired.
func (c *SearchCache) Get(query string) ([]model.SearchResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[cacheKey(query)]
	if !ok {
		return nil, false
	}
	out := make([]model.SearchResult, len(entry.results))
	copy(out, entry.results)
	return out, true
}

// Put stores results for a query and arms the expiry timer. Re-putting a
// live key restarts its TTL.
func (c *SearchCache) Put(query string, results []model.SearchResult) {
	key := cacheKey(query)
	stored := make([]model.SearchResult, len(results))
	copy(stored, results)

	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.entries[key]; ok {
		old.timer.Stop()
	}
	entry := &cacheEntry{results: stored}
	entry.timer = time.AfterFunc(c.ttl, func() { c.expire(key, entry) })
	c.entries[key] = entry
}

// Len returns the number of live entries.
func (c *SearchCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *SearchCache) expire(key string, entry *cacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Only evict if the entry has not been replaced since the timer armed.
	if cur, ok := c.entries[key]; ok && cur == entry {
		delete(c.entries, key)
	}
}

func cacheKey(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
