package resources

import (
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes resources by resolved path for the lifetime of its owner.
// Entries are never evicted or replaced. Concurrent misses on one path are
// coalesced so the load runs once and every caller gets the same handle.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*Resource
	group   singleflight.Group
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*Resource)}
}

// Get returns the entry stored under path.
func (c *Cache) Get(path string) (*Resource, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.entries[path]
	return res, ok
}

// GetOrLoad returns the entry for path, running load on a miss. hit is
// true when the entry was already present. A failed load stores nothing,
// so a later call retries.
func (c *Cache) GetOrLoad(path string, load func() (*Resource, error)) (res *Resource, hit bool, err error) {
	if res, ok := c.Get(path); ok {
		return res, true, nil
	}

	v, err, _ := c.group.Do(path, func() (any, error) {
		// A flight that finished between Get and Do already stored it.
		if res, ok := c.Get(path); ok {
			return res, nil
		}
		res, err := load()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[path] = res
		c.mu.Unlock()
		return res, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.(*Resource), false, nil
}

// Contains reports whether path has been loaded.
func (c *Cache) Contains(path string) bool {
	_, ok := c.Get(path)
	return ok
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Paths returns the cached paths in sorted order.
func (c *Cache) Paths() []string {
	c.mu.RLock()
	paths := make([]string, 0, len(c.entries))
	for p := range c.entries {
		paths = append(paths, p)
	}
	c.mu.RUnlock()
	sort.Strings(paths)
	return paths
}
