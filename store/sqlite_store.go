package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"ticklist/models"
)

// stateKey is the fixed slot under which the serialized collection lives.
const stateKey = "tasks"

// SQLiteRepository implements Repository on a SQLite database. The storage
// contract is identical to the file backend: a single key/value row holds the
// whole collection as a JSON array, and every Save replaces it outright.
type SQLiteRepository struct {
	db   *sql.DB
	path string
}

// NewSQLiteRepository opens (or creates) the database at path and ensures the
// state table exists.
func NewSQLiteRepository(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (key TEXT PRIMARY KEY, value BLOB NOT NULL)`); err != nil {
		_ = db.Close()
		return nil, &StorageUnavailableError{Path: path, Err: err}
	}
	return &SQLiteRepository{db: db, path: path}, nil
}

// Path returns the database file location.
func (r *SQLiteRepository) Path() string { return r.path }

// Load reads the stored collection. A missing row is an empty collection.
func (r *SQLiteRepository) Load() ([]models.Task, error) {
	var value []byte
	err := r.db.QueryRow(`SELECT value FROM state WHERE key = ?`, stateKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []models.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state from %s: %w", r.path, err)
	}
	if len(value) == 0 {
		return []models.Task{}, nil
	}

	var tasks []models.Task
	if err := json.Unmarshal(value, &tasks); err != nil {
		return nil, &MalformedStateError{Path: r.path, Err: err}
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

// Save replaces the slot with the serialized collection.
func (r *SQLiteRepository) Save(tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	value, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}
	_, err = r.db.Exec(
		`INSERT INTO state (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		stateKey, value,
	)
	if err != nil {
		return &StorageUnavailableError{Path: r.path, Err: err}
	}
	return nil
}

// Close closes the underlying database handle.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
