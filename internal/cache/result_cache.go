// Package cache holds the category collections of the most recent successful
// search. Single writer (the coordinator's search-success path), any number
// of readers.
package cache

import (
	"sync"

	"destinex/internal/models"
)

type ResultCache struct {
	mu        sync.RWMutex
	set       models.CategorySet
	populated bool
}

func NewResultCache() *ResultCache {
	return &ResultCache{}
}

// Commit replaces all three category sequences in one assignment. Readers
// never observe one category from a new search next to another from the
// prior one.
func (c *ResultCache) Commit(set models.CategorySet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set = set
	c.populated = true
}

func (c *ResultCache) Read(tag models.CategoryTag) []models.Place {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set.ByTag(tag)
}

// Snapshot returns the whole committed set, for the map-centering walk.
func (c *ResultCache) Snapshot() models.CategorySet {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set
}

func (c *ResultCache) Populated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.populated
}
