// Package store persists palettes and analysis histories per session in a
// SQLite key-value table.
package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Keys the application stores under each session.
const (
	PaletteKey = "colorAnalyzerPalette"
	HistoryKey = "colorAnalysisHistory"
)

// Store is a handle on the colorlab database. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path and applies
// the embedded migrations.
func Open(path string) (*Store, error) {
	if e := os.MkdirAll(filepath.Dir(path), 0755); e != nil {
		return nil, fmt.Errorf("error creating database directory: %w", e)
	}

	db, e := sql.Open("sqlite3", path)
	if e != nil {
		return nil, fmt.Errorf("error opening database: %w", e)
	}

	if e := runMigrations(db); e != nil {
		db.Close()
		return nil, fmt.Errorf("error running migrations: %w", e)
	}

	log.Debug().Str("path", path).Msg("store opened")
	return &Store{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	driver, e := sqlite3.WithInstance(db, &sqlite3.Config{})
	if e != nil {
		return fmt.Errorf("could not create migrate driver: %w", e)
	}

	source, e := iofs.New(migrationsFS, "migrations")
	if e != nil {
		return fmt.Errorf("could not create source: %w", e)
	}

	m, e := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if e != nil {
		return fmt.Errorf("could not create migrate instance: %w", e)
	}

	if e := m.Up(); e != nil && !errors.Is(e, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", e)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key for session. ok is false when
// nothing is stored.
func (s *Store) Get(ctx context.Context, session, key string) ([]byte, bool, error) {
	var value []byte
	e := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE session = ? AND key = ?`, session, key,
	).Scan(&value)
	if errors.Is(e, sql.ErrNoRows) {
		return nil, false, nil
	}
	if e != nil {
		return nil, false, fmt.Errorf("get %s/%s: %w", session, key, e)
	}
	return value, true, nil
}

// Put stores value under key for session, replacing any previous value.
func (s *Store) Put(ctx context.Context, session, key string, value []byte) error {
	_, e := s.db.ExecContext(ctx, `
		INSERT INTO kv (session, key, value, updated_at)
		VALUES (?, ?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT (session, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		session, key, value,
	)
	if e != nil {
		return fmt.Errorf("put %s/%s: %w", session, key, e)
	}
	log.Debug().Str("session", session).Str("key", key).Int("bytes", len(value)).Msg("stored")
	return nil
}

// Delete removes key for session. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, session, key string) error {
	if _, e := s.db.ExecContext(ctx, `DELETE FROM kv WHERE session = ? AND key = ?`, session, key); e != nil {
		return fmt.Errorf("delete %s/%s: %w", session, key, e)
	}
	return nil
}

// Sessions lists the sessions that have stored anything.
func (s *Store) Sessions(ctx context.Context) ([]string, error) {
	rows, e := s.db.QueryContext(ctx, `SELECT DISTINCT session FROM kv ORDER BY session`)
	if e != nil {
		return nil, fmt.Errorf("list sessions: %w", e)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if e := rows.Scan(&name); e != nil {
			return nil, e
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
