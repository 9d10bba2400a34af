// SPDX-License-Identifier: MIT

// Package store keeps named vectors in a SQLite table.
//
// Each row is (name TEXT PRIMARY KEY, data BLOB) where data is a persist
// frame, so compressed and raw rows can coexist in one table. The driver is
// modernc.org/sqlite (pure Go, no cgo).
//
//	s, _ := store.Open(ctx, "file:vectors.db")
//	defer s.Close()
//	_ = s.Put(ctx, "weights", v)
//	w, _ := s.Get(ctx, "weights")
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/linvec/persist"
	"github.com/katalvlaran/linvec/vector"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

var (
	// ErrNotFound indicates no row exists for the requested name.
	ErrNotFound = errors.New("store: vector not found")

	// ErrEmptyName indicates an empty vector name.
	ErrEmptyName = errors.New("store: empty name")

	// ErrNilDB indicates New was given a nil *sql.DB.
	ErrNilDB = errors.New("store: db is nil")
)

// Store is a SQLite-backed map from name to vector.
// It is safe for concurrent use to the extent *sql.DB is.
type Store struct {
	db     *sql.DB
	owned  bool
	opts   Options
	logger *zap.Logger
}

// Open opens (or creates) the database at dsn and ensures the schema.
// In-memory DSNs are pinned to one connection so every query sees the
// same database.
func Open(ctx context.Context, dsn string, opts ...Option) (*Store, error) {
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: Open: %w", err)
	}
	if strings.HasPrefix(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
	}

	s, err := New(ctx, db, opts...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	s.owned = true

	return s, nil
}

// New wraps an existing handle and ensures the schema. Close on the
// returned Store leaves db open.
func New(ctx context.Context, db *sql.DB, opts ...Option) (*Store, error) {
	if db == nil {
		return nil, ErrNilDB
	}
	if ctx == nil {
		ctx = context.Background()
	}

	o := gatherOptions(opts...)
	s := &Store{db: db, opts: o, logger: o.logger.With(zap.String("table", o.table))}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	q := `CREATE TABLE IF NOT EXISTS ` + s.opts.table + ` (
    name TEXT PRIMARY KEY,
    data BLOB NOT NULL
);`
	if _, err := s.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("store: schema: %w", err)
	}
	s.logger.Debug("schema ready")

	return nil
}

// Put stores v under name, replacing any previous vector.
func (s *Store) Put(ctx context.Context, name string, v vector.Vector) error {
	if name == "" {
		return fmt.Errorf("store: Put: %w", ErrEmptyName)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	frame, err := persist.Marshal(v,
		persist.WithCompression(s.opts.compress),
		persist.WithLogger(s.logger),
	)
	if err != nil {
		return fmt.Errorf("store: Put(%q): %w", name, err)
	}

	q := `INSERT INTO ` + s.opts.table + `(name, data) VALUES(?, ?)
ON CONFLICT(name) DO UPDATE SET data = excluded.data`
	if _, err = s.db.ExecContext(ctx, q, name, frame); err != nil {
		return fmt.Errorf("store: Put(%q): %w", name, err)
	}
	s.logger.Debug("put vector",
		zap.String("name", name),
		zap.Int("length", v.Len()),
		zap.Int("bytes", len(frame)),
	)

	return nil
}

// Get loads the vector stored under name.
// Errors: ErrEmptyName, ErrNotFound, decode errors from persist.
func (s *Store) Get(ctx context.Context, name string) (vector.Vector, error) {
	if name == "" {
		return nil, fmt.Errorf("store: Get: %w", ErrEmptyName)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var frame []byte
	row := s.db.QueryRowContext(ctx, `SELECT data FROM `+s.opts.table+` WHERE name = ?`, name)
	if err := row.Scan(&frame); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("store: Get(%q): %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("store: Get(%q): %w", name, err)
	}

	v, err := persist.Unmarshal(frame, persist.WithLogger(s.logger))
	if err != nil {
		return nil, fmt.Errorf("store: Get(%q): %w", name, err)
	}

	return v, nil
}

// Delete removes the vector stored under name.
// Errors: ErrEmptyName, ErrNotFound.
func (s *Store) Delete(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("store: Delete: %w", ErrEmptyName)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM `+s.opts.table+` WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("store: Delete(%q): %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: Delete(%q): %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("store: Delete(%q): %w", name, ErrNotFound)
	}
	s.logger.Debug("deleted vector", zap.String("name", name))

	return nil
}

// Names lists every stored name in ascending order.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	rows, err := s.db.QueryContext(ctx, `SELECT name FROM `+s.opts.table+` ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("store: Names: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("store: Names: %w", err)
		}
		out = append(out, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: Names: %w", err)
	}

	return out, nil
}

// Close releases the database when Open created it; otherwise it is a no-op.
func (s *Store) Close() error {
	if !s.owned {
		return nil
	}

	return s.db.Close()
}
