// Package pebble implements internal/store.BlobStore over CockroachDB's
// pebble key-value engine.
package pebble

import (
	"context"
	"errors"

	"github.com/cockroachdb/pebble"

	"github.com/nullstride/rtvctl/internal/store"
)

// DB is a pebble-backed BlobStore.
type DB struct {
	db *pebble.DB
}

// Open opens (creating if necessary) a pebble database at dir.
func Open(dir string) (*DB, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &DB{db: db}, nil
}

func (d *DB) Put(ctx context.Context, name string, envelope []byte) error {
	if d.db == nil {
		return store.ErrClosed
	}
	return d.db.Set([]byte(name), envelope, pebble.Sync)
}

func (d *DB) Get(ctx context.Context, name string) ([]byte, error) {
	if d.db == nil {
		return nil, store.ErrClosed
	}
	val, closer, err := d.db.Get([]byte(name))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	defer closer.Close()

	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (d *DB) Delete(ctx context.Context, name string) error {
	if d.db == nil {
		return store.ErrClosed
	}
	return d.db.Delete([]byte(name), pebble.Sync)
}

func (d *DB) List(ctx context.Context) ([]string, error) {
	if d.db == nil {
		return nil, store.ErrClosed
	}
	iter, err := d.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var names []string
	for iter.First(); iter.Valid(); iter.Next() {
		names = append(names, string(iter.Key()))
	}
	return names, iter.Error()
}

func (d *DB) Close() error {
	if d.db == nil {
		return nil
	}
	err := d.db.Close()
	d.db = nil
	return err
}
