package flatten

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"path-flattener/internal/shape"
)

// DefaultCacheSize is the number of maps kept when no size is configured.
const DefaultCacheSize = 128

// Cache keeps recently flattened maps keyed by shape content, so an
// unchanged shape is not walked again. A changed shape has a different
// fingerprint and misses.
type Cache struct {
	maps *lru.Cache[string, *Map]
}

// NewCache creates a cache holding up to size maps.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}

	maps, err := lru.New[string, *Map](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create flatten cache: %w", err)
	}

	return &Cache{maps: maps}, nil
}

// Len returns the number of cached maps.
func (c *Cache) Len() int {
	return c.maps.Len()
}

// Purge drops every cached map.
func (c *Cache) Purge() {
	c.maps.Purge()
}

func (c *Cache) key(s *shape.Shape, resourceState, params shape.TypeRef) string {
	return s.Fingerprint() + "|" + resourceState.String() + "|" + params.String()
}

func (c *Cache) get(key string) (*Map, bool) {
	return c.maps.Get(key)
}

func (c *Cache) add(key string, m *Map) {
	c.maps.Add(key, m)
}
