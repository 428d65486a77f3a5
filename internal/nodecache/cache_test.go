package nodecache

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullstride/rtvctl/internal/snapshot"
	"github.com/nullstride/rtvctl/internal/store/pebble"
	"github.com/nullstride/rtvctl/rtv"
)

func setupTestCache(t *testing.T) (*Cache, func()) {
	dir, err := os.MkdirTemp("", "rtvctl-cache-*")
	require.NoError(t, err)

	backend, err := pebble.Open(dir)
	require.NoError(t, err)

	c, err := New(backend, 8, nil)
	require.NoError(t, err)

	return c, func() {
		backend.Close()
		os.RemoveAll(dir)
	}
}

func TestPutThenGetRoundTrips(t *testing.T) {
	c, cleanup := setupTestCache(t)
	defer cleanup()
	ctx := context.Background()

	items := []snapshot.Item{{1}, {2}, {3}}
	f := rtv.FromSlice(items).Freeze()

	require.NoError(t, c.Put(ctx, "a", f))
	assert.Equal(t, 1, c.Len())

	got, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Size())
}

func TestGetMissingNamePropagatesBackendError(t *testing.T) {
	c, cleanup := setupTestCache(t)
	defer cleanup()

	_, err := c.Get(context.Background(), "missing")
	assert.Error(t, err)
}

func TestInvalidateForcesReload(t *testing.T) {
	c, cleanup := setupTestCache(t)
	defer cleanup()
	ctx := context.Background()

	f := rtv.FromSlice([]snapshot.Item{{9}}).Freeze()
	require.NoError(t, c.Put(ctx, "a", f))

	c.Invalidate("a")
	assert.Equal(t, 0, c.Len())

	got, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Size())
}
