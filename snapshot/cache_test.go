package snapshot

import (
	"errors"
	"testing"
	"time"
)

// fakeClock steps a TTLCache's notion of now from a fixed base.
type fakeClock struct {
	base   time.Time
	offset time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{base: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	return c.base.Add(c.offset)
}

func (c *fakeClock) advance(d time.Duration) {
	c.offset += d
}

// TestCacheServesFreshEntry verifies a second lookup within the TTL does
// not call the fetch function again.
func TestCacheServesFreshEntry(t *testing.T) {
	clock := newFakeClock()
	cache := NewTTLCache()
	cache.now = clock.now

	calls := 0
	fetch := func() (string, error) {
		calls++
		return "value", nil
	}

	if _, err := GetOrRefresh(cache, CategoryGPU, DefaultTTL, fetch); err != nil {
		t.Fatalf("first lookup: %v", err)
	}

	clock.advance(1 * time.Second)
	v, err := GetOrRefresh(cache, CategoryGPU, DefaultTTL, fetch)
	if err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if v != "value" {
		t.Errorf("value = %q, want %q", v, "value")
	}
	if calls != 1 {
		t.Errorf("fetch calls = %d, want 1", calls)
	}
}

// TestCacheExpiry verifies a lookup past the TTL refetches.
func TestCacheExpiry(t *testing.T) {
	clock := newFakeClock()
	cache := NewTTLCache()
	cache.now = clock.now

	calls := 0
	fetch := func() (int, error) {
		calls++
		return calls, nil
	}

	GetOrRefresh(cache, CategoryGPU, DefaultTTL, fetch)
	clock.advance(6 * time.Second)

	v, err := GetOrRefresh(cache, CategoryGPU, DefaultTTL, fetch)
	if err != nil {
		t.Fatalf("lookup after expiry: %v", err)
	}
	if calls != 2 {
		t.Errorf("fetch calls = %d, want 2", calls)
	}
	if v != 2 {
		t.Errorf("value = %d, want the refetched 2", v)
	}
}

// TestCacheIndependentCategories verifies each category expires on its
// own clock.
func TestCacheIndependentCategories(t *testing.T) {
	clock := newFakeClock()
	cache := NewTTLCache()
	cache.now = clock.now

	gpuCalls, netCalls := 0, 0
	fetchGPU := func() (string, error) { gpuCalls++; return "gpu", nil }
	fetchNet := func() (string, error) { netCalls++; return "net", nil }

	GetOrRefresh(cache, CategoryGPU, DefaultTTL, fetchGPU)
	clock.advance(3 * time.Second)
	GetOrRefresh(cache, CategoryNetwork, DefaultTTL, fetchNet)
	clock.advance(3 * time.Second)

	// GPU entry is 6s old and expired; network entry is 3s old and fresh.
	GetOrRefresh(cache, CategoryGPU, DefaultTTL, fetchGPU)
	GetOrRefresh(cache, CategoryNetwork, DefaultTTL, fetchNet)

	if gpuCalls != 2 {
		t.Errorf("gpu fetch calls = %d, want 2", gpuCalls)
	}
	if netCalls != 1 {
		t.Errorf("network fetch calls = %d, want 1", netCalls)
	}
}

// TestCacheFetchErrorNotStored verifies a failed fetch leaves the cache
// empty so the next lookup retries.
func TestCacheFetchErrorNotStored(t *testing.T) {
	cache := NewTTLCache()

	calls := 0
	boom := errors.New("nmcli exploded")
	fetch := func() (string, error) {
		calls++
		if calls == 1 {
			return "", boom
		}
		return "recovered", nil
	}

	if _, err := GetOrRefresh(cache, CategoryNetwork, DefaultTTL, fetch); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}

	v, err := GetOrRefresh(cache, CategoryNetwork, DefaultTTL, fetch)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if v != "recovered" {
		t.Errorf("value = %q, want %q", v, "recovered")
	}
}

func TestCacheInvalidate(t *testing.T) {
	cache := NewTTLCache()

	calls := 0
	fetch := func() (int, error) { calls++; return calls, nil }

	GetOrRefresh(cache, CategoryGPU, DefaultTTL, fetch)
	cache.Invalidate(CategoryGPU)
	GetOrRefresh(cache, CategoryGPU, DefaultTTL, fetch)

	if calls != 2 {
		t.Errorf("fetch calls = %d, want 2 after invalidation", calls)
	}
}

func TestCacheInvalidateAll(t *testing.T) {
	cache := NewTTLCache()

	calls := 0
	fetch := func() (int, error) { calls++; return calls, nil }

	GetOrRefresh(cache, CategoryGPU, DefaultTTL, fetch)
	GetOrRefresh(cache, CategoryNetwork, DefaultTTL, fetch)
	cache.InvalidateAll()
	GetOrRefresh(cache, CategoryGPU, DefaultTTL, fetch)
	GetOrRefresh(cache, CategoryNetwork, DefaultTTL, fetch)

	if calls != 4 {
		t.Errorf("fetch calls = %d, want 4 after full invalidation", calls)
	}
}
