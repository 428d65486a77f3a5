package cmd

import (
	"fmt"

	"github.com/nullstride/rtvctl/internal/logging"
	"github.com/nullstride/rtvctl/internal/nodecache"
	"github.com/nullstride/rtvctl/internal/store"
	"github.com/nullstride/rtvctl/internal/store/leveldb"
	"github.com/nullstride/rtvctl/internal/store/pebble"
)

// openStore opens the blob store backend selected by cfg.
func openStore() (store.BlobStore, error) {
	switch cfg.Store.Backend {
	case "pebble":
		return pebble.Open(cfg.Store.Path)
	case "leveldb":
		return leveldb.Open(cfg.Store.Path)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// openCache opens the configured blob store and wraps it with a node
// cache. Callers must Close() the returned backend when done.
func openCache() (*nodecache.Cache, store.BlobStore, error) {
	backend, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	cache, err := nodecache.New(backend, cfg.Store.CacheSize, logging.NewDefaultLogger(nil, "rtvctl:"))
	if err != nil {
		backend.Close()
		return nil, nil, err
	}
	return cache, backend, nil
}
