package diagnostics_test

import (
	"strings"
	"testing"

	"github.com/cxlang/cxc/internal/diagnostics"
	"github.com/cxlang/cxc/internal/sourcecache"
)

func TestRenderIncludesContextLines(t *testing.T) {
	cache := sourcecache.New()
	cache.Add("a.hlx", "fn main() {\n  let x = 1\n  let y = 2\n}\n")

	rec := &diagnostics.Record{
		Code: diagnostics.CodeUnexpectedToken, Severity: diagnostics.Error,
		File: "a.hlx", Line: 2, Column: 7,
		Message: "unexpected token",
	}
	out := diagnostics.Render(rec, cache, false)
	if !strings.Contains(out, "let x = 1") {
		t.Fatalf("Render output missing failing line:\n%s", out)
	}
	if !strings.Contains(out, "fn main()") {
		t.Fatalf("Render output missing preceding context line:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("Render output missing caret:\n%s", out)
	}
}

func TestRenderShowsQuickFixInline(t *testing.T) {
	cache := sourcecache.New()
	cache.Add("a.hlx", "let x = 1\n")

	rec := &diagnostics.Record{
		Code: diagnostics.CodeMissingBlock, Severity: diagnostics.Error,
		File: "a.hlx", Line: 1, Column: 10,
		Message:    "expected a block",
		QuickFixes: []diagnostics.QuickFix{{Column: 10, Insert: ";"}},
	}
	out := diagnostics.Render(rec, cache, false)
	if !strings.Contains(out, "let x = 1;") {
		t.Fatalf("Render output missing inline quick-fix insertion:\n%s", out)
	}
}

func TestInsertQuickFixesAppliesLeftToRightWithShift(t *testing.T) {
	line := "ab"
	fixes := []diagnostics.QuickFix{
		{Column: 3, Insert: "Z"}, // end of line
		{Column: 1, Insert: "X"}, // start of line
	}
	got := diagnostics.InsertQuickFixes(line, fixes)
	want := "XabZ"
	if got != want {
		t.Fatalf("InsertQuickFixes = %q, want %q", got, want)
	}
}

func TestRenderNoColorHasNoEscapes(t *testing.T) {
	cache := sourcecache.New()
	cache.Add("a.hlx", "x\n")
	rec := &diagnostics.Record{
		Code: diagnostics.CodeUnknownByte, Severity: diagnostics.Error,
		File: "a.hlx", Line: 1, Column: 1, Message: "bad byte",
	}
	out := diagnostics.Render(rec, cache, false)
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("Render with color=false emitted an ANSI escape:\n%q", out)
	}
}
