package utils

import (
	"sync"
	"time"
)

type cacheEntry[T any] struct {
	value      T
	cachedAt   time.Time
	expiration time.Time
}

// Cache is a keyed in-memory cache with per-entry expiration. It is the
// in-process fallback used when no Redis instance is configured.
type Cache[T any] struct {
	entries map[string]cacheEntry[T]
	mutex   sync.RWMutex
}

// NewCache initializes an empty cache.
func NewCache[T any]() *Cache[T] {
	return &Cache[T]{
		entries: make(map[string]cacheEntry[T]),
	}
}

// Set stores a value under the given key with an expiration time.
func (c *Cache[T]) Set(key string, value T, duration time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = cacheEntry[T]{
		value:      value,
		cachedAt:   time.Now(),
		expiration: time.Now().Add(duration),
	}
}

// Get retrieves the cached value for key, treating entries cached before
// refreshAfter as stale.
func (c *Cache[T]) Get(key string, refreshAfter time.Time) (T, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, ok := c.entries[key]
	if !ok || time.Now().After(entry.expiration) || entry.cachedAt.Before(refreshAfter) {
		var zero T
		return zero, false
	}
	return entry.value, true
}

// Delete removes a single key from the cache.
func (c *Cache[T]) Delete(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.entries, key)
}

// Clear removes all cached values.
func (c *Cache[T]) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[string]cacheEntry[T])
}
