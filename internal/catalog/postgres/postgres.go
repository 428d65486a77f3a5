// Package postgres implements internal/catalog.CatalogStore over
// PostgreSQL, following this repository's connection-string-building and
// schema-migration idiom for relational backends.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/nullstride/rtvctl/internal/catalog"
)

// Store is a PostgreSQL-backed CatalogStore.
type Store struct {
	db *sql.DB
}

// Open connects to dsn and ensures the catalog schema exists.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("catalog/postgres: open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog/postgres: ping: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog/postgres: schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS rtv_catalog (
	name          TEXT PRIMARY KEY,
	element_count INTEGER NOT NULL,
	backend       TEXT NOT NULL,
	byte_size     BIGINT NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
)`
	_, err := s.db.ExecContext(ctx, ddl)
	return err
}

func (s *Store) Upsert(ctx context.Context, e catalog.Entry) error {
	const stmt = `
INSERT INTO rtv_catalog (name, element_count, backend, byte_size, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (name) DO UPDATE SET
	element_count = EXCLUDED.element_count,
	backend = EXCLUDED.backend,
	byte_size = EXCLUDED.byte_size,
	updated_at = EXCLUDED.updated_at`
	_, err := s.db.ExecContext(ctx, stmt, e.Name, e.ElementCount, e.Backend, e.ByteSize, e.UpdatedAt)
	return err
}

func (s *Store) Get(ctx context.Context, name string) (catalog.Entry, error) {
	const stmt = `SELECT name, element_count, backend, byte_size, updated_at FROM rtv_catalog WHERE name = $1`
	var e catalog.Entry
	err := s.db.QueryRowContext(ctx, stmt, name).Scan(&e.Name, &e.ElementCount, &e.Backend, &e.ByteSize, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return catalog.Entry{}, catalog.ErrNotFound
	}
	return e, err
}

func (s *Store) List(ctx context.Context) ([]catalog.Entry, error) {
	const stmt = `SELECT name, element_count, backend, byte_size, updated_at FROM rtv_catalog ORDER BY name`
	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []catalog.Entry
	for rows.Next() {
		var e catalog.Entry
		if err := rows.Scan(&e.Name, &e.ElementCount, &e.Backend, &e.ByteSize, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
