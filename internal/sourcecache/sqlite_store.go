package sourcecache

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Persist writes every file this cache has read into a SQLite database
// at dbPath, so a later process invoked against the same module tree
// can skip re-reading unchanged files from disk. Re-running Persist
// against the same path overwrites prior rows for the same file.
func (c *Cache) Persist(dbPath string) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open cache db: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS files (path TEXT PRIMARY KEY, contents TEXT NOT NULL)`); err != nil {
		return fmt.Errorf("create cache table: %w", err)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	for path, contents := range c.content {
		if _, err := db.Exec(`INSERT INTO files (path, contents) VALUES (?, ?)
			ON CONFLICT(path) DO UPDATE SET contents = excluded.contents`, path, contents); err != nil {
			return fmt.Errorf("persist %s: %w", path, err)
		}
	}
	return nil
}

// Hydrate loads every row of a SQLite database previously written by
// Persist into this cache via Add, so entries already read by the
// caller are preserved (Add is a no-op for a path already present).
// A missing database file is not an error: hydration is a best-effort
// warm start, not a required dependency.
func (c *Cache) Hydrate(dbPath string) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open cache db: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT path, contents FROM files`)
	if err != nil {
		// No table yet means nothing was ever persisted here.
		return nil
	}
	defer rows.Close()

	for rows.Next() {
		var path, contents string
		if err := rows.Scan(&path, &contents); err != nil {
			return fmt.Errorf("scan cached row: %w", err)
		}
		c.Add(path, contents)
	}
	return rows.Err()
}
