package diagnostics

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// TemplateStore resolves a Code to its message/fix wording and default
// severity. The factory defaults live in an in-memory sqlite database
// so a host program can override any row at startup (or point at a
// file-backed database to ship a localized catalog) without a binary
// change, matching spec §7's "errors are data" requirement.
type TemplateStore struct {
	mu sync.RWMutex
	db *sql.DB
}

// NewTemplateStore opens a fresh in-memory sqlite database, creates
// the templates table, and seeds it from defaultTemplates.
func NewTemplateStore() (*TemplateStore, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("diagnostics: open template store: %w", err)
	}
	db.SetMaxOpenConns(1) // in-memory sqlite is a single connection

	const schema = `
CREATE TABLE templates (
	code     TEXT PRIMARY KEY,
	severity INTEGER NOT NULL,
	message  TEXT NOT NULL,
	fix      TEXT NOT NULL DEFAULT ''
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("diagnostics: create template table: %w", err)
	}

	store := &TemplateStore{db: db}
	for _, t := range defaultTemplates {
		if err := store.Put(t.Code, t.Severity, t.Message, t.Fix); err != nil {
			db.Close()
			return nil, fmt.Errorf("diagnostics: seed %s: %w", t.Code, err)
		}
	}
	return store, nil
}

// Put inserts or overwrites the template for code.
func (s *TemplateStore) Put(code Code, sev Severity, message, fix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		`INSERT INTO templates (code, severity, message, fix) VALUES (?, ?, ?, ?)
		 ON CONFLICT(code) DO UPDATE SET severity = excluded.severity,
			message = excluded.message, fix = excluded.fix`,
		string(code), int(sev), message, fix,
	)
	return err
}

// Lookup returns the registered template for code.
func (s *TemplateStore) Lookup(code Code) (sev Severity, message, fix string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row := s.db.QueryRow(`SELECT severity, message, fix FROM templates WHERE code = ?`, string(code))
	var sevInt int
	if err := row.Scan(&sevInt, &message, &fix); err != nil {
		return 0, "", "", false
	}
	return Severity(sevInt), message, fix, true
}

// Close releases the underlying sqlite connection.
func (s *TemplateStore) Close() error {
	return s.db.Close()
}
