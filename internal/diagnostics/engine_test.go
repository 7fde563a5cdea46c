package diagnostics_test

import (
	"strings"
	"testing"

	"github.com/cxlang/cxc/internal/diagnostics"
	"github.com/cxlang/cxc/internal/sourcecache"
	"github.com/cxlang/cxc/internal/token"
)

func newEngine(t *testing.T) *diagnostics.Engine {
	t.Helper()
	cache := sourcecache.New()
	e, err := diagnostics.NewEngine(cache, diagnostics.ColorNever)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	t.Cleanup(func() { e.Close() })
	return e
}

func tok(file string, line, col int) token.Token {
	return token.New(token.Unknown, "", token.Location{File: file, Line: line, Column: col})
}

func TestReportSetsHasErrored(t *testing.T) {
	e := newEngine(t)
	if e.HasErrored() {
		t.Fatalf("fresh engine should not have errored")
	}
	e.Report(diagnostics.CodeUnknownByte, tok("a.hlx", 1, 1), 0xff)
	if !e.HasErrored() {
		t.Fatalf("engine should have errored after reporting an error-severity code")
	}
}

func TestReportWarnDoesNotSetHasErrored(t *testing.T) {
	e := newEngine(t)
	e.Report(diagnostics.CodeMacroRedefined, tok("a.hlx", 1, 1), "FOO")
	if e.HasErrored() {
		t.Fatalf("a warning should not set has-errored")
	}
}

func TestReportFormatsMessage(t *testing.T) {
	e := newEngine(t)
	rec := e.Report(diagnostics.CodeImportNotFound, tok("a.hlx", 3, 5), "missing/mod")
	if !strings.Contains(rec.Message, "missing/mod") {
		t.Fatalf("Message = %q, want it to contain the formatted arg", rec.Message)
	}
}

func TestRecordsAreSortedByLocation(t *testing.T) {
	e := newEngine(t)
	e.Report(diagnostics.CodeUnknownByte, tok("b.hlx", 1, 1), 0x00)
	e.Report(diagnostics.CodeUnknownByte, tok("a.hlx", 5, 1), 0x00)
	e.Report(diagnostics.CodeUnknownByte, tok("a.hlx", 2, 1), 0x00)

	recs := e.Records()
	if len(recs) != 3 {
		t.Fatalf("len(Records()) = %d, want 3", len(recs))
	}
	if recs[0].File != "a.hlx" || recs[0].Line != 2 {
		t.Fatalf("first record = %s:%d, want a.hlx:2", recs[0].File, recs[0].Line)
	}
	if recs[1].File != "a.hlx" || recs[1].Line != 5 {
		t.Fatalf("second record = %s:%d, want a.hlx:5", recs[1].File, recs[1].Line)
	}
	if recs[2].File != "b.hlx" {
		t.Fatalf("third record file = %s, want b.hlx", recs[2].File)
	}
}

func TestOverrideTemplateChangesWording(t *testing.T) {
	e := newEngine(t)
	if err := e.OverrideTemplate(diagnostics.CodeUnknownByte, diagnostics.Error, "custom wording %d", ""); err != nil {
		t.Fatalf("OverrideTemplate: %v", err)
	}
	rec := e.Report(diagnostics.CodeUnknownByte, tok("a.hlx", 1, 1), 42)
	if rec.Message != "custom wording 42" {
		t.Fatalf("Message = %q, want %q", rec.Message, "custom wording 42")
	}
}

func TestSessionIDIsUnique(t *testing.T) {
	e1 := newEngine(t)
	e2 := newEngine(t)
	if e1.SessionID == e2.SessionID {
		t.Fatalf("two engines produced the same session id")
	}
}

func TestSerializeProjectsFields(t *testing.T) {
	e := newEngine(t)
	e.Report(diagnostics.CodeUnknownByte, tok("a.hlx", 1, 1), 0xff)
	out := e.Serialize()
	if len(out) != 1 {
		t.Fatalf("len(Serialize()) = %d, want 1", len(out))
	}
	if out[0].Code != string(diagnostics.CodeUnknownByte) {
		t.Fatalf("Code = %q, want %q", out[0].Code, diagnostics.CodeUnknownByte)
	}
	if out[0].Level != "error" {
		t.Fatalf("Level = %q, want %q", out[0].Level, "error")
	}
	if out[0].ColorMode != "never" {
		t.Fatalf("ColorMode = %q, want %q", out[0].ColorMode, "never")
	}
}

func TestSerializeProjectsQuickFixesAsArray(t *testing.T) {
	e := newEngine(t)
	rec := e.Report(diagnostics.CodeMissingBlock, tok("a.hlx", 1, 1), "x")
	rec.QuickFixes = []diagnostics.QuickFix{{Column: 5, Insert: ";"}, {Column: 9, Insert: "}"}}
	out := e.Serialize()
	if len(out) != 1 {
		t.Fatalf("len(Serialize()) = %d, want 1", len(out))
	}
	if len(out[0].QuickFix) != 2 {
		t.Fatalf("got %d quick fixes, want 2: %+v", len(out[0].QuickFix), out[0].QuickFix)
	}
	if out[0].QuickFix[0].Fix != ";" || out[0].QuickFix[0].Loc != 5 {
		t.Fatalf("quick fix 0 = %+v, want {Fix:\";\" Loc:5}", out[0].QuickFix[0])
	}
	if out[0].QuickFix[1].Fix != "}" || out[0].QuickFix[1].Loc != 9 {
		t.Fatalf("quick fix 1 = %+v, want {Fix:\"}\" Loc:9}", out[0].QuickFix[1])
	}
}
