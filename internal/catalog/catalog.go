// Package catalog persists a local index of scanned .flp files — path,
// detected version, title, and content fingerprint — in a SQLite database,
// so cmd/flpindex and cmd/flpserve can answer "what projects do we know
// about" without re-parsing every file on every query.
//
// This is auxiliary, out-of-band bookkeeping next to the primary .flp
// files, the same shape the teacher's own tooling uses a local SQLite
// database for administrative data alongside its primary binary store.
package catalog

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sonicvault/flp/internal/logger"
)

// Entry is one indexed project.
type Entry struct {
	Path            string
	DetectedVersion string
	Title           string
	Fingerprint     string // hex-encoded
	IndexedAt       time.Time
}

// Catalog wraps the SQLite database backing the index.
type Catalog struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS projects (
	path             TEXT PRIMARY KEY,
	detected_version TEXT NOT NULL,
	title            TEXT NOT NULL,
	fingerprint      TEXT NOT NULL,
	indexed_at       INTEGER NOT NULL
);
`

// Open opens (creating if necessary) the SQLite database at path.
func Open(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: migrate schema: %w", err)
	}
	return &Catalog{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Upsert records or updates an entry for path.
func (c *Catalog) Upsert(e Entry) error {
	_, err := c.db.Exec(`
		INSERT INTO projects (path, detected_version, title, fingerprint, indexed_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			detected_version = excluded.detected_version,
			title            = excluded.title,
			fingerprint      = excluded.fingerprint,
			indexed_at       = excluded.indexed_at
	`, e.Path, e.DetectedVersion, e.Title, e.Fingerprint, e.IndexedAt.Unix())
	if err != nil {
		return fmt.Errorf("catalog: upsert %s: %w", e.Path, err)
	}
	logger.Debug("catalog: indexed %s (version=%s fingerprint=%s)", e.Path, e.DetectedVersion, e.Fingerprint)
	return nil
}

// Lookup returns the entry for path, if any.
func (c *Catalog) Lookup(path string) (Entry, bool, error) {
	row := c.db.QueryRow(`SELECT path, detected_version, title, fingerprint, indexed_at FROM projects WHERE path = ?`, path)
	var e Entry
	var indexedAt int64
	if err := row.Scan(&e.Path, &e.DetectedVersion, &e.Title, &e.Fingerprint, &indexedAt); err != nil {
		if err == sql.ErrNoRows {
			return Entry{}, false, nil
		}
		return Entry{}, false, fmt.Errorf("catalog: lookup %s: %w", path, err)
	}
	e.IndexedAt = time.Unix(indexedAt, 0)
	return e, true, nil
}

// All returns every indexed entry, ordered by path.
func (c *Catalog) All() ([]Entry, error) {
	rows, err := c.db.Query(`SELECT path, detected_version, title, fingerprint, indexed_at FROM projects ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var indexedAt int64
		if err := rows.Scan(&e.Path, &e.DetectedVersion, &e.Title, &e.Fingerprint, &indexedAt); err != nil {
			return nil, fmt.Errorf("catalog: scan row: %w", err)
		}
		e.IndexedAt = time.Unix(indexedAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DatabaseChecksum returns the hex-encoded stdlib SHA-256 of the database
// file's own bytes, an integrity check of the catalog file itself — a
// different concern from the content fingerprinting in internal/fingerprint,
// which is why it stays on crypto/sha256 rather than golang.org/x/crypto.
func DatabaseChecksum(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
