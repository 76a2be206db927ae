package store

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/Sro01/Documate/internal/debug"
)

var log = debug.GetLogger()

// Store implements a SQLite-backed key-value store holding the full chat
// session collection as one serialized blob under a single key. Reads and
// writes are synchronous; load and save failures are absorbed and logged
// rather than surfaced to callers.
type Store struct {
	db *sqlx.DB
}

// New opens (and if needed initializes) a store at the given directory.
func New(directory string) (*Store, error) {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return nil, errors.Wrap(err, "creating store directory")
	}

	db, err := sqlx.Connect("sqlite", filepath.Join(directory, "documate.db"))
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, errors.Wrap(err, "creating records table")
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// load reads the raw value under a key. Returns false when the key is absent.
func (s *Store) load(key string) (string, bool) {
	var value string
	err := s.db.Get(&value, "SELECT value FROM records WHERE key = ?", key)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		log.Error("loading record", "key", key, "error", err)
		return "", false
	}
	return value, true
}

// save writes the raw value under a key. Write failures are logged; the data
// loss risk on a full disk is accepted.
func (s *Store) save(key, value string) {
	_, err := s.db.Exec(
		"INSERT INTO records (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		log.Error("saving record", "key", key, "error", err)
	}
}

// delete removes a key. Absent keys are a no-op.
func (s *Store) delete(key string) {
	if _, err := s.db.Exec("DELETE FROM records WHERE key = ?", key); err != nil {
		log.Error("deleting record", "key", key, "error", err)
	}
}
