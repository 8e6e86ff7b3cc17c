package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"tableflip.dev/unload/pkg/task"
)

// SQLiteFile is the database file name created under the base path.
const SQLiteFile = "unload.db"

// SchemaVersion is the current version of the SQLite schema.
const SchemaVersion = 1

type sqliteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (or creates) basePath/unload.db and applies migrations.
func OpenSQLite(basePath string) (Persistence, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	path := filepath.Join(basePath, SQLiteFile)
	dsn := "file:" + path + "?mode=rwc&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: sql open: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db, path: path}, nil
}

func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY);`); err != nil {
		return fmt.Errorf("store: migrate: create schema_migrations: %w", err)
	}

	var current int
	if err := db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations;`).Scan(&current); err != nil {
		return fmt.Errorf("store: migrate: read current version: %w", err)
	}
	if current >= SchemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("store: migrate: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS blobs (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at TEXT NOT NULL
		);
	`); err != nil {
		return fmt.Errorf("store: migrate: create blobs: %w", err)
	}
	if _, err := tx.Exec(`INSERT INTO schema_migrations(version) VALUES (?);`, SchemaVersion); err != nil {
		return fmt.Errorf("store: migrate: record version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: migrate: commit: %w", err)
	}
	return nil
}

func (s *sqliteStore) Name() string {
	return string(EngineSQLite)
}

func (s *sqliteStore) Load(ctx context.Context) ([]*task.Task, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key = ?;`, TasksKey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return []*task.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", TasksKey, err)
	}
	return decode(data)
}

func (s *sqliteStore) Written(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM blobs WHERE key = ?;`, TasksKey).Scan(&n); err != nil {
		return false, fmt.Errorf("store: check %s: %w", TasksKey, err)
	}
	return n > 0, nil
}

func (s *sqliteStore) Save(ctx context.Context, tasks []*task.Task) error {
	data, err := encode(tasks)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO blobs(key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`,
		TasksKey, data, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("store: write %s: %w", TasksKey, err)
	}
	return nil
}

func (s *sqliteStore) Watch(ctx context.Context) (<-chan Event, error) {
	base := filepath.Base(s.path)
	return watchDir(ctx, filepath.Dir(s.path), func(name string) bool {
		return strings.HasPrefix(name, base)
	})
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
