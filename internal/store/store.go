// Package store persists named snapshot envelopes under a swappable
// key-value backend, mirroring this repository's multi-backend key-value
// storage pattern.
package store

import (
	"context"
	"errors"
)

var (
	// ErrClosed is returned when operating on a closed store.
	ErrClosed = errors.New("store: closed")
	// ErrNotFound is returned when a name has no stored envelope.
	ErrNotFound = errors.New("store: name not found")
)

// BlobStore persists named, opaque envelope bytes. All operations are
// context-aware, following this repository's convention for anything that
// crosses a process boundary.
type BlobStore interface {
	Put(ctx context.Context, name string, envelope []byte) error
	Get(ctx context.Context, name string) ([]byte, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
	Close() error
}
