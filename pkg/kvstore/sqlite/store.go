package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"trackfit-companion/pkg/kvstore"

	_ "modernc.org/sqlite"
)

const timeFormat = time.RFC3339Nano

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// Store is a SQLite-backed kvstore.Storage.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (and migrates) a SQLite store at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if s == nil || s.sqlDB == nil {
		return "", false, kvstore.ErrClosed
	}

	var value string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", kvstore.ErrFailedToGet, err)
	}
	return value, true, nil
}

// Set upserts value under key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if s == nil || s.sqlDB == nil {
		return kvstore.ErrClosed
	}

	const query = `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	if _, err := s.sqlDB.ExecContext(ctx, query, key, value, time.Now().UTC().Format(timeFormat)); err != nil {
		return fmt.Errorf("%w: %v", kvstore.ErrFailedToSet, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if s == nil || s.sqlDB == nil {
		return kvstore.ErrClosed
	}

	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("%w: %v", kvstore.ErrFailedToDelete, err)
	}
	return nil
}

var _ kvstore.Storage = (*Store)(nil)
