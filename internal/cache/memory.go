package cache

import (
	"slices"

	gocache "github.com/patrickmn/go-cache"
	"github.com/ppiankov/pocheck/internal/model"
)

// MemoryCache keeps at most maxEntries results in memory. Entries never
// expire; the cache lives as long as one run.
type MemoryCache struct {
	cache      *gocache.Cache
	maxEntries int
}

// NewMemoryCache creates a cache holding up to maxEntries results
func NewMemoryCache(maxEntries int) *MemoryCache {
	return &MemoryCache{
		cache:      gocache.New(gocache.NoExpiration, 0),
		maxEntries: maxEntries,
	}
}

// Get returns a copy of the cached findings
func (c *MemoryCache) Get(key string) ([]model.Finding, bool) {
	val, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	return slices.Clone(val.([]model.Finding)), true
}

// Set stores findings unless the cache is full. It reports whether the
// value was stored.
func (c *MemoryCache) Set(key string, findings []model.Finding) bool {
	if _, found := c.cache.Get(key); !found && c.cache.ItemCount() >= c.maxEntries {
		return false
	}
	c.cache.Set(key, slices.Clone(findings), gocache.NoExpiration)
	return true
}

// Len returns the number of cached results
func (c *MemoryCache) Len() int {
	return c.cache.ItemCount()
}

// Clear drops every cached result
func (c *MemoryCache) Clear() {
	c.cache.Flush()
}
