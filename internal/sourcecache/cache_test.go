package sourcecache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cxlang/cxc/internal/sourcecache"
)

func TestAddIsIdempotent(t *testing.T) {
	c := sourcecache.New()
	c.Add("a.hlx", "first")
	c.Add("a.hlx", "second")
	got, ok := c.Read("a.hlx")
	if !ok || got != "first" {
		t.Fatalf("Read() = %q, %v; want \"first\", true", got, ok)
	}
}

func TestGetLineOutOfRange(t *testing.T) {
	c := sourcecache.New()
	c.Add("a.hlx", "one\ntwo\nthree")
	if _, ok := c.GetLine("a.hlx", 0); ok {
		t.Fatalf("line 0 should be out of range")
	}
	if _, ok := c.GetLine("a.hlx", 4); ok {
		t.Fatalf("line 4 should be out of range in a 3-line file")
	}
	if line, ok := c.GetLine("a.hlx", 2); !ok || line != "two" {
		t.Fatalf("GetLine(2) = %q, %v; want \"two\", true", line, ok)
	}
}

func TestGetLineMissingPath(t *testing.T) {
	c := sourcecache.New()
	if _, ok := c.GetLine("missing.hlx", 1); ok {
		t.Fatalf("unreadable path should report false")
	}
}

func TestReadFallsBackToFilesystem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.hlx")
	if err := os.WriteFile(path, []byte("fn main() {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := sourcecache.New()
	got, ok := c.Read(path)
	if !ok || got != "fn main() {}\n" {
		t.Fatalf("Read(%q) = %q, %v", path, got, ok)
	}
}

func TestCRLFLinesTrimCR(t *testing.T) {
	c := sourcecache.New()
	c.Add("a.hlx", "one\r\ntwo\r\n")
	line, ok := c.GetLine("a.hlx", 1)
	if !ok || line != "one" {
		t.Fatalf("GetLine(1) = %q, %v; want \"one\", true (CR trimmed)", line, ok)
	}
}

func TestPersistAndHydrateRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.sqlite")

	write := sourcecache.New()
	write.Add("a.hlx", "fn main() {}\n")
	write.Add("b.hlx", "class Box {}\n")
	if err := write.Persist(dbPath); err != nil {
		t.Fatalf("Persist: %v", err)
	}

	read := sourcecache.New()
	if err := read.Hydrate(dbPath); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	got, ok := read.Read("a.hlx")
	if !ok || got != "fn main() {}\n" {
		t.Fatalf("Read(a.hlx) after hydrate = %q, %v", got, ok)
	}
	got, ok = read.Read("b.hlx")
	if !ok || got != "class Box {}\n" {
		t.Fatalf("Read(b.hlx) after hydrate = %q, %v", got, ok)
	}
}

func TestHydrateMissingDatabaseIsNotAnError(t *testing.T) {
	c := sourcecache.New()
	if err := c.Hydrate(filepath.Join(t.TempDir(), "never-written.sqlite")); err != nil {
		t.Fatalf("Hydrate of a never-persisted path should be a no-op, got: %v", err)
	}
}
