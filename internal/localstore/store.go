// Package localstore is the durable per-collection key-value layer on the
// client device. It holds one JSON-serialized value per collection key plus
// a few scalar settings, backed by a single SQLite table.
//
// The store is the sole mutable source of truth the application observes;
// the remote snapshot is a durability and sharing mechanism layered on top.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store provides synchronous read/write of JSON values by collection key.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the store at the given SQLite path and ensures the
// schema exists. WAL journal mode keeps concurrent readers cheap.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// OpenDefault opens the store under the default data dir (~/.tipatask).
func OpenDefault() (*Store, error) {
	path, err := DBPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS Collections (
        Key TEXT PRIMARY KEY,
        Value TEXT NOT NULL
    );`)
	return err
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the raw stored value for key. ok is false when the key is
// absent; callers layer their documented seed on top.
func (s *Store) Get(ctx context.Context, key string) (value []byte, ok bool, err error) {
	var v string
	row := s.db.QueryRowContext(ctx, `SELECT Value FROM Collections WHERE Key = ?`, key)
	if err := row.Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(v), true, nil
}

// Set stores value under key, replacing any previous value. A failure here
// is the device-storage analogue of a quota error and propagates unchanged.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO Collections (Key, Value) VALUES (?, ?)
         ON CONFLICT(Key) DO UPDATE SET Value = excluded.Value`,
		key, string(value))
	return err
}

// GetJSON decodes the value for key into v. Absent or malformed stored JSON
// falls back to the seed, silently; only database I/O errors surface.
func (s *Store) GetJSON(ctx context.Context, key, seed string, v any) error {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return json.Unmarshal([]byte(seed), v)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		// Corrupted local value: behave as if the key were absent.
		return json.Unmarshal([]byte(seed), v)
	}
	return nil
}

// SetJSON serializes v and stores it under key.
func (s *Store) SetJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw)
}
