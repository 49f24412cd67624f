package cache

import (
	"sync"
	"time"
)

// DefaultTTL is used by Set when no explicit TTL is given.
const DefaultTTL = 5 * time.Minute

type entry[V any] struct {
	value  V
	expiry time.Time
}

// TTLCache is a thread-safe expiring key-value store. Expired entries are
// evicted lazily on Get; CleanupExpired sweeps the rest.
type TTLCache[V any] struct {
	defaultTTL time.Duration
	mu         sync.Mutex
	items      map[string]entry[V]
}

// New creates a cache with the given default TTL. A non-positive TTL falls
// back to DefaultTTL.
func New[V any](defaultTTL time.Duration) *TTLCache[V] {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &TTLCache[V]{
		defaultTTL: defaultTTL,
		items:      make(map[string]entry[V]),
	}
}

// Get returns the cached value if its expiry has not passed. An expired
// entry is evicted and reported as absent.
func (c *TTLCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	if !time.Now().Before(e.expiry) {
		delete(c.items, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores a value under the default TTL, overwriting any existing entry.
func (c *TTLCache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL stores a value with an explicit TTL. A zero or negative TTL
// produces an already-expired entry.
func (c *TTLCache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry[V]{value: value, expiry: time.Now().Add(ttl)}
}

// Delete removes a single entry.
func (c *TTLCache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear removes all entries.
func (c *TTLCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]entry[V])
}

// CleanupExpired removes every expired entry and returns how many were
// removed. Intended for periodic background invocation; lazy eviction on
// Get keeps the cache correct without it.
func (c *TTLCache[V]) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	removed := 0
	for key, e := range c.items {
		if !now.Before(e.expiry) {
			delete(c.items, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of entries, expired ones included.
func (c *TTLCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
