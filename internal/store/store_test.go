package store_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullstride/rtvctl/internal/store"
	"github.com/nullstride/rtvctl/internal/store/leveldb"
	"github.com/nullstride/rtvctl/internal/store/pebble"
)

// backendFactories lists every BlobStore implementation under test, so
// every case below runs against both backends.
var backendFactories = map[string]func(dir string) (store.BlobStore, error){
	"pebble": func(dir string) (store.BlobStore, error) { return pebble.Open(dir) },
	"leveldb": func(dir string) (store.BlobStore, error) { return leveldb.Open(dir) },
}

func setupTestStore(t *testing.T, factory func(dir string) (store.BlobStore, error)) (store.BlobStore, func()) {
	dir, err := os.MkdirTemp("", "rtvctl-store-*")
	require.NoError(t, err)

	db, err := factory(dir)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.RemoveAll(dir)
	}
	return db, cleanup
}

func TestBlobStorePutGetDeleteList(t *testing.T) {
	ctx := context.Background()
	for name, factory := range backendFactories {
		name, factory := name, factory
		t.Run(name, func(t *testing.T) {
			db, cleanup := setupTestStore(t, factory)
			defer cleanup()

			require.NoError(t, db.Put(ctx, "alpha", []byte("alpha-data")))
			require.NoError(t, db.Put(ctx, "beta", []byte("beta-data")))

			got, err := db.Get(ctx, "alpha")
			require.NoError(t, err)
			assert.Equal(t, []byte("alpha-data"), got)

			names, err := db.List(ctx)
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"alpha", "beta"}, names)

			require.NoError(t, db.Delete(ctx, "alpha"))
			_, err = db.Get(ctx, "alpha")
			assert.ErrorIs(t, err, store.ErrNotFound)

			names, err = db.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"beta"}, names)
		})
	}
}

func TestBlobStoreGetMissingName(t *testing.T) {
	ctx := context.Background()
	for name, factory := range backendFactories {
		name, factory := name, factory
		t.Run(name, func(t *testing.T) {
			db, cleanup := setupTestStore(t, factory)
			defer cleanup()

			_, err := db.Get(ctx, "does-not-exist")
			assert.ErrorIs(t, err, store.ErrNotFound)
		})
	}
}

func TestBlobStoreOperationsAfterClose(t *testing.T) {
	ctx := context.Background()
	for name, factory := range backendFactories {
		name, factory := name, factory
		t.Run(name, func(t *testing.T) {
			db, cleanup := setupTestStore(t, factory)
			defer cleanup()

			require.NoError(t, db.Close())
			err := db.Put(ctx, "x", []byte("y"))
			assert.ErrorIs(t, err, store.ErrClosed)
		})
	}
}
