// Package nodecache caches decoded named vectors in front of a blob
// store, deduplicating concurrent loads of the same not-yet-cached name.
package nodecache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/nullstride/rtvctl/internal/logging"
	"github.com/nullstride/rtvctl/internal/snapshot"
	"github.com/nullstride/rtvctl/internal/store"
	"github.com/nullstride/rtvctl/rtv"
)

// Cache decodes and caches named frozen vectors loaded from a BlobStore.
// A Cache is safe for concurrent use.
type Cache struct {
	backend store.BlobStore
	lru     *lru.Cache[string, *rtv.Frozen[snapshot.Item]]
	loads   singleflight.Group
	logger  logging.Logger
}

// New returns a Cache of the given capacity in front of backend.
func New(backend store.BlobStore, capacity int, logger logging.Logger) (*Cache, error) {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	l, err := lru.New[string, *rtv.Frozen[snapshot.Item]](capacity)
	if err != nil {
		return nil, fmt.Errorf("nodecache: %w", err)
	}
	return &Cache{backend: backend, lru: l, logger: logger}, nil
}

// Get returns the named vector, loading and decoding it from the backend
// on a cache miss. Concurrent Get calls for the same not-yet-cached name
// share a single backend load.
func (c *Cache) Get(ctx context.Context, name string) (*rtv.Frozen[snapshot.Item], error) {
	if f, ok := c.lru.Get(name); ok {
		c.logger.Debug("nodecache hit for %s", name)
		return f, nil
	}

	v, err, _ := c.loads.Do(name, func() (interface{}, error) {
		raw, err := c.backend.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		env, err := snapshot.Unmarshal(raw)
		if err != nil {
			return nil, fmt.Errorf("nodecache: %s: %w", name, err)
		}
		f, err := snapshot.Decode(env)
		if err != nil {
			return nil, fmt.Errorf("nodecache: %s: %w", name, err)
		}
		c.lru.Add(name, f)
		c.logger.Info("nodecache loaded %s (%d elements)", name, f.Size())
		return f, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*rtv.Frozen[snapshot.Item]), nil
}

// Put writes vector under name, encoding it and persisting it to the
// backend, and refreshes the cache entry.
func (c *Cache) Put(ctx context.Context, name string, f *rtv.Frozen[snapshot.Item]) error {
	env, err := snapshot.Encode(f, nil)
	if err != nil {
		return fmt.Errorf("nodecache: %s: %w", name, err)
	}
	if err := c.backend.Put(ctx, name, env.Marshal()); err != nil {
		return fmt.Errorf("nodecache: %s: %w", name, err)
	}
	c.lru.Add(name, f)
	return nil
}

// Invalidate drops name from the cache without touching the backend.
func (c *Cache) Invalidate(name string) {
	c.lru.Remove(name)
}

// Len returns the number of decoded vectors currently cached.
func (c *Cache) Len() int {
	return c.lru.Len()
}
