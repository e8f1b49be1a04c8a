// Package cache provides a bounded in-memory store for mapping results,
// shared by all resolution clients. Eviction removes an arbitrary entry
// when capacity is exceeded; it is intentionally not LRU, which keeps the
// critical section to a single map operation.
package cache

import (
	"sync"

	"github.com/linkage-labs/idmap-cli/internal/core/domain"
	"github.com/linkage-labs/idmap-cli/internal/core/ports/driven"
)

// DefaultCapacity is the default maximum number of cached results.
const DefaultCapacity = 10000

// Ensure Cache implements the interface.
var _ driven.ResultCache = (*Cache)(nil)

// Cache is a capacity-bounded result cache. A single mutex covers lookup,
// insert, and counter updates so concurrent callers never observe a torn
// hit/miss count.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]domain.MappingResult
	hits     int
	misses   int
}

// New creates a cache with the given capacity.
// Non-positive capacities fall back to DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]domain.MappingResult, capacity),
	}
}

// Get returns the cached result for key and records a hit or miss.
func (c *Cache) Get(key string) (domain.MappingResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return result, ok
}

// Put stores a result, evicting an arbitrary entry when at capacity.
func (c *Cache) Put(key string, value domain.MappingResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.put(key, value)
}

// PutMany stores a batch of results under one lock acquisition.
func (c *Cache) PutMany(results map[string]domain.MappingResult) {
	if len(results) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, value := range results {
		c.put(key, value)
	}
}

// put inserts a single entry (caller must hold lock).
func (c *Cache) put(key string, value domain.MappingResult) {
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.capacity {
		// Map iteration order is unspecified; the first key is the victim.
		for victim := range c.entries {
			delete(c.entries, victim)
			break
		}
	}
	c.entries[key] = value
}

// Clear removes all entries and resets the counters.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]domain.MappingResult, c.capacity)
	c.hits = 0
	c.misses = 0
}

// Stats returns a snapshot of size and hit/miss counters.
func (c *Cache) Stats() domain.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.CacheStats{
		Size:   len(c.entries),
		Hits:   c.hits,
		Misses: c.misses,
	}
}

// Capacity returns the configured maximum entry count.
func (c *Cache) Capacity() int {
	return c.capacity
}
