package cmd

import (
	"context"
	"errors"

	"github.com/nullstride/rtvctl/internal/nodecache"
	"github.com/nullstride/rtvctl/internal/snapshot"
	"github.com/nullstride/rtvctl/internal/store"
	"github.com/nullstride/rtvctl/rtv"
)

// loadOrCreate loads the named vector, or returns a fresh empty one if it
// does not yet exist.
func loadOrCreate(ctx context.Context, cache *nodecache.Cache, name string) (*rtv.Vector[snapshot.Item], error) {
	f, err := cache.Get(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			empty, newErr := rtv.New[snapshot.Item](0)
			return empty, newErr
		}
		return nil, err
	}
	return f.Unfreeze(), nil
}

// loadExisting loads the named vector, failing if it does not exist.
func loadExisting(ctx context.Context, cache *nodecache.Cache, name string) (*rtv.Vector[snapshot.Item], error) {
	f, err := cache.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return f.Unfreeze(), nil
}

// saveVector freezes v and persists it under name, running the
// structural-invariant audit first if the debug flag is set.
func saveVector(ctx context.Context, cache *nodecache.Cache, name string, v *rtv.Vector[snapshot.Item]) error {
	if cfg.Debug.ValidateAfterEachOp {
		if err := v.Invariants(); err != nil {
			return err
		}
	}
	return cache.Put(ctx, name, v.Freeze())
}
