// Package leveldb implements internal/store.BlobStore over syndtr's pure
// Go LevelDB, for deployments that prefer LevelDB's on-disk format to
// pebble's.
package leveldb

import (
	"context"
	"errors"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/nullstride/rtvctl/internal/store"
)

// DB is a goleveldb-backed BlobStore.
type DB struct {
	db *leveldb.DB
}

// Open opens (creating if necessary) a LevelDB database at dir.
func Open(dir string) (*DB, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, err
	}
	return &DB{db: db}, nil
}

func (d *DB) Put(ctx context.Context, name string, envelope []byte) error {
	if d.db == nil {
		return store.ErrClosed
	}
	return d.db.Put([]byte(name), envelope, nil)
}

func (d *DB) Get(ctx context.Context, name string) ([]byte, error) {
	if d.db == nil {
		return nil, store.ErrClosed
	}
	val, err := d.db.Get([]byte(name), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

func (d *DB) Delete(ctx context.Context, name string) error {
	if d.db == nil {
		return store.ErrClosed
	}
	return d.db.Delete([]byte(name), nil)
}

func (d *DB) List(ctx context.Context) ([]string, error) {
	if d.db == nil {
		return nil, store.ErrClosed
	}
	iter := d.db.NewIterator(&util.Range{}, nil)
	defer iter.Release()

	var names []string
	for iter.Next() {
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
