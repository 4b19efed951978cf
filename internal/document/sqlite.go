package document

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/a-rout/price-calculator-app/pkg/types"
)

// sqliteFile is the database file name inside the data directory.
const sqliteFile = "documents.db"

// createDocuments is the full schema: one key-value table, documents stored
// as opaque blobs.
const createDocuments = `CREATE TABLE IF NOT EXISTS documents (
    key TEXT PRIMARY KEY,
    doc BLOB NOT NULL,
    updated_at TEXT NOT NULL
);`

// SQLite stores every document in a single database file. The modernc driver
// keeps the build pure Go.
type SQLite struct {
	mu sync.RWMutex
	db *sql.DB
}

// NewSQLite opens (creating if needed) the database inside dataDir and
// ensures the schema exists. Callers own Close.
func NewSQLite(dataDir string) (*SQLite, error) {
	if dataDir == "" {
		return nil, types.ErrDataDirEmpty
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, sqliteFile)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(createDocuments); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Get returns the document stored under key.
func (s *SQLite) Get(key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var doc []byte
	err := s.db.QueryRow("SELECT doc FROM documents WHERE key = ?", key).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying document %s: %w", key, err)
	}
	return doc, true, nil
}

// Set upserts doc under key.
func (s *SQLite) Set(key string, doc []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO documents (key, doc, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			doc = excluded.doc,
			updated_at = excluded.updated_at`,
		key, doc, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("storing document %s: %w", key, err)
	}
	return nil
}

// Remove deletes the row under key. Removing an absent key succeeds.
func (s *SQLite) Remove(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM documents WHERE key = ?", key); err != nil {
		return fmt.Errorf("removing document %s: %w", key, err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
