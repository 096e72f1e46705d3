// Package sqlkv stores values in a single key/value table through
// database/sql. Postgres (lib/pq) and SQLite (modernc) are supported.
package sqlkv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/sqlc-dev/pqtype"
	_ "modernc.org/sqlite"

	"github.com/mcdev12/liga/go/internal/store"
)

// Dialect selects the SQL flavour used by a Backend
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

type statements struct {
	createTable string
	get         string
	put         string
}

var dialects = map[Dialect]statements{
	DialectPostgres: {
		createTable: `CREATE TABLE IF NOT EXISTS kv_entries (
			entry_key  TEXT PRIMARY KEY,
			value      JSONB,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		get: `SELECT value FROM kv_entries WHERE entry_key = $1`,
		put: `INSERT INTO kv_entries (entry_key, value, updated_at)
			VALUES ($1, $2, now())
			ON CONFLICT (entry_key) DO UPDATE
			SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
	},
	DialectSQLite: {
		createTable: `CREATE TABLE IF NOT EXISTS kv_entries (
			entry_key  TEXT PRIMARY KEY,
			value      BLOB,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		get: `SELECT value FROM kv_entries WHERE entry_key = ?`,
		put: `INSERT INTO kv_entries (entry_key, value, updated_at)
			VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT (entry_key) DO UPDATE
			SET value = excluded.value, updated_at = excluded.updated_at`,
	},
}

// Backend implements store.Backend on a kv_entries table
type Backend struct {
	db    *sql.DB
	stmts statements
}

// CreateTableSQL returns the kv_entries DDL for dialect
func CreateTableSQL(dialect Dialect) (string, error) {
	stmts, ok := dialects[dialect]
	if !ok {
		return "", fmt.Errorf("unsupported dialect %q", dialect)
	}
	return stmts.createTable, nil
}

// New wraps db and makes sure the kv_entries table exists
func New(ctx context.Context, db *sql.DB, dialect Dialect) (*Backend, error) {
	stmts, ok := dialects[dialect]
	if !ok {
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
	if _, err := db.ExecContext(ctx, stmts.createTable); err != nil {
		return nil, fmt.Errorf("create kv_entries table: %w", err)
	}
	return &Backend{db: db, stmts: stmts}, nil
}

// OpenPostgres connects to Postgres at dsn
func OpenPostgres(ctx context.Context, dsn string) (*Backend, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	b, err := New(ctx, db, DialectPostgres)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return b, nil
}

// OpenSQLite opens or creates the SQLite database file at path
func OpenSQLite(ctx context.Context, path string) (*Backend, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	b, err := New(ctx, db, DialectSQLite)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Debug().Str("path", path).Msg("opened sqlite store")
	return b, nil
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	var value pqtype.NullRawMessage
	err := b.db.QueryRowContext(ctx, b.stmts.get, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	if !value.Valid {
		return nil, store.ErrNotFound
	}
	return append([]byte(nil), value.RawMessage...), nil
}

func (b *Backend) Put(ctx context.Context, key string, value []byte) error {
	arg := pqtype.NullRawMessage{RawMessage: value, Valid: len(value) > 0}
	if _, err := b.db.ExecContext(ctx, b.stmts.put, key, arg); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// DB exposes the underlying handle
func (b *Backend) DB() *sql.DB {
	return b.db
}

// Close closes the underlying handle
func (b *Backend) Close() error {
	return b.db.Close()
}
