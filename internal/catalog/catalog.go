// Package catalog tracks metadata about stored vectors (name, element
// count, backend, size, update time) in a relational store, mirroring
// this repository's database/repository split for its relational layer.
package catalog

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when no entry exists for a name.
var ErrNotFound = errors.New("catalog: entry not found")

// Entry is one row of catalog metadata about a stored vector.
type Entry struct {
	Name         string
	ElementCount int
	Backend      string
	ByteSize     int64
	UpdatedAt    time.Time
}

// CatalogStore tracks Entry rows in a relational store.
type CatalogStore interface {
	Upsert(ctx context.Context, e Entry) error
	Get(ctx context.Context, name string) (Entry, error)
	List(ctx context.Context) ([]Entry, error)
	Close() error
}
