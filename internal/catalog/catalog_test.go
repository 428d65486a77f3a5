package catalog_test

import (
	"context"
	"testing"
	"time"

	gomock "github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullstride/rtvctl/internal/catalog"
	"github.com/nullstride/rtvctl/internal/mocks"
)

func TestUpsertThenGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockCatalogStore(ctrl)

	entry := catalog.Entry{
		Name:         "accounts",
		ElementCount: 1000,
		Backend:      "pebble",
		ByteSize:     4096,
		UpdatedAt:    time.Unix(1700000000, 0),
	}

	store.EXPECT().Upsert(gomock.Any(), entry).Return(nil)
	store.EXPECT().Get(gomock.Any(), "accounts").Return(entry, nil)

	require.NoError(t, store.Upsert(context.Background(), entry))

	got, err := store.Get(context.Background(), "accounts")
	require.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockCatalogStore(ctrl)

	store.EXPECT().Get(gomock.Any(), "missing").Return(catalog.Entry{}, catalog.ErrNotFound)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockCatalogStore(ctrl)

	want := []catalog.Entry{
		{Name: "a", ElementCount: 1, Backend: "pebble"},
		{Name: "b", ElementCount: 2, Backend: "leveldb"},
	}
	store.EXPECT().List(gomock.Any()).Return(want, nil)

	got, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
