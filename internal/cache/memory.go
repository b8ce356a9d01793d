package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache holds translated text in process memory with TTL eviction
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a translation from the cache
func (c *MemoryCache) Get(key string) (string, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(string), true
	}
	return "", false
}

// Set stores a translation in the cache with the given TTL
func (c *MemoryCache) Set(key string, value string, ttl time.Duration) {
	c.cache.Set(key, value, ttl)
}

// Delete removes a translation from the cache
func (c *MemoryCache) Delete(key string) {
	c.cache.Delete(key)
}

// Clear removes all cached translations
func (c *MemoryCache) Clear() {
	c.cache.Flush()
}

// Len reports the number of cached entries, including expired ones not
// yet cleaned up.
func (c *MemoryCache) Len() int {
	return c.cache.ItemCount()
}
