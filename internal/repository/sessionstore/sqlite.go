// Package sessionstore persists the current-user session record in a
// SQLite-backed key-value table. This is the only durable state the
// service keeps; the ledgers themselves are in-memory.
package sessionstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	_ "github.com/mattn/go-sqlite3"
)

const currentUserKey = "current_user"

type Store struct {
	db *sql.DB
}

// New opens (or creates) the session database at the given path.
// Use ":memory:" for an ephemeral database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate session database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at TEXT NOT NULL
	);`
	_, err := s.db.Exec(schema)
	return err
}

// Set implements auth.SessionRepository. The stored blob is the employee
// record with the password hash stripped.
func (s *Store) Set(ctx context.Context, emp employee.Employee) error {
	blob, err := json.Marshal(emp.Public())
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, currentUserKey, blob, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get implements auth.SessionRepository. Returns nil when no session is
// persisted.
func (s *Store) Get(ctx context.Context) (*employee.Employee, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, currentUserKey).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var emp employee.Employee
	if err := json.Unmarshal(blob, &emp); err != nil {
		return nil, fmt.Errorf("failed to deserialize session: %w", err)
	}
	return &emp, nil
}

// Clear implements auth.SessionRepository.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, currentUserKey)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
