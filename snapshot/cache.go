package snapshot

import (
	"sync"
	"time"
)

// DefaultTTL is how long expensive shell-backed lookups stay fresh.
const DefaultTTL = 5 * time.Second

// Category identifies an independently cached telemetry lookup.
type Category string

const (
	CategoryGPU     Category = "gpu"
	CategoryNetwork Category = "network"
)

type cacheEntry struct {
	value      any
	capturedAt time.Time
}

// TTLCache stores one value per category with a freshness deadline.
// Each category expires on its own clock. Safe for concurrent use.
type TTLCache struct {
	mu      sync.Mutex
	entries map[Category]cacheEntry

	// now is replaceable in tests.
	now func() time.Time
}

// NewTTLCache returns an empty cache using the wall clock.
func NewTTLCache() *TTLCache {
	return &TTLCache{
		entries: make(map[Category]cacheEntry),
		now:     time.Now,
	}
}

// GetOrRefresh returns the cached value for cat when it is younger than
// ttl, otherwise calls fetch, stores the result, and returns it. A failed
// fetch stores nothing, so the next call retries immediately.
func GetOrRefresh[T any](c *TTLCache, cat Category, ttl time.Duration, fetch func() (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if entry, ok := c.entries[cat]; ok {
		if now.Sub(entry.capturedAt) < ttl {
			if v, ok := entry.value.(T); ok {
				return v, nil
			}
		}
	}

	v, err := fetch()
	if err != nil {
		var zero T
		return zero, err
	}
	c.entries[cat] = cacheEntry{value: v, capturedAt: now}
	return v, nil
}

// Invalidate drops the entry for cat so the next lookup refetches.
func (c *TTLCache) Invalidate(cat Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, cat)
}

// InvalidateAll drops every entry.
func (c *TTLCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Category]cacheEntry)
}
