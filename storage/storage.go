// Package storage implements the dual-backend relational adapter and the
// per-entity repositories built on it. Statements are written once with '?'
// placeholders; the backend chosen at startup decides how they execute
// against an embedded SQLite file or a networked Postgres server.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested id has no matching row.
var ErrNotFound = errors.New("not found")

const defaultSQLitePath = "data/pdm.db"

// Config selects the backend. A non-empty PostgresURL wins; otherwise the
// embedded SQLite file at SQLitePath is used.
type Config struct {
	PostgresURL string
	SQLitePath  string
}

// Store owns the database handle and the dialect chosen at startup. It lives
// for the process lifetime; there is no teardown beyond Close at exit.
type Store struct {
	db      *sql.DB
	dialect dialect
	log     *log.Logger
}

// New opens the configured backend and verifies connectivity.
func New(cfg Config, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.StandardLogger()
	}
	if cfg.PostgresURL != "" {
		db, err := sql.Open("postgres", cfg.PostgresURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		logger.Info("storage backend: postgres")
		return &Store{db: db, dialect: postgresDialect{}, log: logger}, nil
	}

	path := cfg.SQLitePath
	if path == "" {
		path = defaultSQLitePath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// The embedded engine serializes writers; a single connection keeps the
	// pool from tripping over file locks.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	logger.WithField("path", path).Info("storage backend: sqlite")
	return &Store{db: db, dialect: sqliteDialect{}, log: logger}, nil
}

// Close releases the underlying handle.
func (s *Store) Close() error { return s.db.Close() }

// QueryMany runs a templated statement and returns all matching rows.
func (s *Store) QueryMany(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.db.QueryContext(ctx, s.dialect.rebind(query), args...)
}

// QueryOne runs a templated statement expected to match at most one row.
func (s *Store) QueryOne(ctx context.Context, query string, args ...any) Row {
	return s.db.QueryRowContext(ctx, s.dialect.rebind(query), args...)
}

// Execute runs a templated statement that returns no rows.
func (s *Store) Execute(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, s.dialect.rebind(query), args...)
}

// InsertReturning runs the insert and hands back the freshly inserted row,
// however the active backend gets at it.
func (s *Store) InsertReturning(ctx context.Context, table, insert string, args ...any) (Row, error) {
	return s.dialect.insertReturning(ctx, s.db, table, insert, args)
}

// nowISO stamps timestamps the way every repository does: UTC RFC 3339 with
// millisecond precision, which keeps updated_at strictly increasing across
// back-to-back writes.
func nowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
