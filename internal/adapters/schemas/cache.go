package schemas

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen11/mirri-validator/internal/domain/schema"
	"github.com/jsamuelsen11/mirri-validator/internal/ports"
)

// Compile-time check that Cache implements ports.SchemaSource.
var _ ports.SchemaSource = (*Cache)(nil)

type cacheEntry struct {
	schema  *schema.Schema
	expires time.Time
}

// Cache memoizes a SchemaSource for ttl. Concurrent misses for the same
// version share one upstream call. Errors are never cached.
type Cache struct {
	source ports.SchemaSource
	ttl    time.Duration
	now    func() time.Time

	mu      sync.RWMutex
	entries map[string]cacheEntry
	group   singleflight.Group
}

// NewCache wraps source. A ttl <= 0 caches entries forever.
func NewCache(source ports.SchemaSource, ttl time.Duration) *Cache {
	return &Cache{
		source:  source,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Schema returns the cached schema for version, fetching it on a miss.
func (c *Cache) Schema(ctx context.Context, version string) (*schema.Schema, error) {
	if s, ok := c.lookup(version); ok {
		return s, nil
	}

	v, err, _ := c.group.Do(version, func() (any, error) {
		if s, ok := c.lookup(version); ok {
			return s, nil
		}
		s, err := c.source.Schema(ctx, version)
		if err != nil {
			return nil, err
		}
		c.store(version, s)
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*schema.Schema), nil
}

func (c *Cache) lookup(version string) (*schema.Schema, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[version]
	if !ok || (c.ttl > 0 && !c.now().Before(e.expires)) {
		return nil, false
	}
	return e.schema, true
}

func (c *Cache) store(version string, s *schema.Schema) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[version] = cacheEntry{schema: s, expires: c.now().Add(c.ttl)}
}
