// Package cache implements the bounded LRU cache of resolved page modules.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/routeflow/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultCapacity bounds the component cache when no explicit size is
// configured.
const DefaultCapacity = 20

// ComponentCache is a bounded LRU cache keyed by component path. Reads
// refresh recency; inserting into a full cache evicts the least-recently
// used entry first.
type ComponentCache struct {
	capacity int
	entries  *lru.Cache[string, *domain.Module]
}

// New creates a ComponentCache holding at most capacity modules. A
// non-positive capacity falls back to DefaultCapacity.
func New(capacity int) (*ComponentCache, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	entries, err := lru.New[string, *domain.Module](capacity)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create component cache")
	}
	return &ComponentCache{capacity: capacity, entries: entries}, nil
}

// Get returns the cached module for path and marks it most recently used.
func (c *ComponentCache) Get(path string) (*domain.Module, bool) {
	return c.entries.Get(path)
}

// Contains reports whether path is cached without refreshing its recency.
func (c *ComponentCache) Contains(path string) bool {
	return c.entries.Contains(path)
}

// Set stores the module under path as the most recently used entry, evicting
// the least-recently used entry when the cache is full.
func (c *ComponentCache) Set(path string, m *domain.Module) {
	c.entries.Add(path, m)
}

// Len returns the number of cached modules.
func (c *ComponentCache) Len() int {
	return c.entries.Len()
}

// Capacity returns the configured maximum size.
func (c *ComponentCache) Capacity() int {
	return c.capacity
}

// Purge drops every cached module.
func (c *ComponentCache) Purge() {
	c.entries.Purge()
}

// Stats returns a snapshot of the cache, with keys ordered least to most
// recently used.
func (c *ComponentCache) Stats() domain.CacheStats {
	return domain.CacheStats{
		Size:     c.entries.Len(),
		Capacity: c.capacity,
		Keys:     c.entries.Keys(),
	}
}
