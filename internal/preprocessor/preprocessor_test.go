package preprocessor_test

import (
	"testing"

	"github.com/cxlang/cxc/internal/diagnostics"
	"github.com/cxlang/cxc/internal/lexer"
	"github.com/cxlang/cxc/internal/preprocessor"
	"github.com/cxlang/cxc/internal/sourcecache"
	"github.com/cxlang/cxc/internal/token"
)

func newEngine(t *testing.T) *diagnostics.Engine {
	t.Helper()
	e, err := diagnostics.NewEngine(sourcecache.New(), diagnostics.ColorNever)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	t.Cleanup(func() { e.Close() })
	return e
}

func lex(t *testing.T, src string, diags *diagnostics.Engine) []token.Token {
	t.Helper()
	return lexer.New("main.hlx", src, diags).Tokenize().Tokens()
}

func TestMacroExpansionSubstitutesParam(t *testing.T) {
	diags := newEngine(t)
	src := `define SQUARE(x): x * x; let y = SQUARE!(5);`
	toks := lex(t, src, diags)

	pass := preprocessor.NewPass("main.hlx", sourcecache.New(), diags)
	out := pass.Run("main.hlx", toks)

	values := valuesOf(out)
	if !containsSeq(values, []string{"5", "*", "5"}) {
		t.Fatalf("expansion = %v, want a substituted 5 * 5 sequence", values)
	}
	if diags.HasErrored() {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
}

func TestUnknownMacroReportsDiagnostic(t *testing.T) {
	diags := newEngine(t)
	toks := lex(t, `let y = MISSING!(1);`, diags)
	pass := preprocessor.NewPass("main.hlx", sourcecache.New(), diags)
	pass.Run("main.hlx", toks)
	if !diags.HasErrored() {
		t.Fatalf("expected a diagnostic for an unknown macro")
	}
}

func TestMacroArityMismatch(t *testing.T) {
	diags := newEngine(t)
	src := `define ADD(a, b): a + b; let y = ADD!(1);`
	toks := lex(t, src, diags)
	pass := preprocessor.NewPass("main.hlx", sourcecache.New(), diags)
	pass.Run("main.hlx", toks)
	if !diags.HasErrored() {
		t.Fatalf("expected an arity-mismatch diagnostic")
	}
}

func TestUnknownABIReportsDiagnostic(t *testing.T) {
	diags := newEngine(t)
	toks := lex(t, `ffi "cobol" import "legacy_fn";`, diags)
	pass := preprocessor.NewPass("main.hlx", sourcecache.New(), diags)
	pass.Run("main.hlx", toks)
	if !diags.HasErrored() {
		t.Fatalf("expected a diagnostic for an unrecognized ABI")
	}
}

func TestNestedImportFeatureListIsRejected(t *testing.T) {
	diags := newEngine(t)
	toks := lex(t, `import X::{A::B, C};`, diags)
	pass := preprocessor.NewPass("main.hlx", sourcecache.New(), diags)
	pass.Run("main.hlx", toks)
	if !diags.HasErrored() {
		t.Fatalf("expected a diagnostic for a nested import feature list")
	}
	found := false
	for _, r := range diags.Records() {
		if r.Code == diagnostics.CodeNestedImport {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected CodeNestedImport, got %v", diags.Records())
	}
}

func TestFlatImportFeatureListIsNotNestedImport(t *testing.T) {
	diags := newEngine(t)
	toks := lex(t, `import X::{A, C};`, diags)
	pass := preprocessor.NewPass("main.hlx", sourcecache.New(), diags)
	pass.Run("main.hlx", toks)
	for _, r := range diags.Records() {
		if r.Code == diagnostics.CodeNestedImport {
			t.Fatalf("unexpected CodeNestedImport for a flat feature list: %v", diags.Records())
		}
	}
}

func TestAllowedABIDoesNotError(t *testing.T) {
	diags := newEngine(t)
	toks := lex(t, `ffi "c" import "legacy_fn";`, diags)
	pass := preprocessor.NewPass("main.hlx", sourcecache.New(), diags)
	pass.Run("main.hlx", toks)
	if diags.HasErrored() {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
}

func valuesOf(toks []token.Token) []string {
	out := make([]string, 0, len(toks))
	for _, t := range toks {
		if t.IsEOF() {
			continue
		}
		out = append(out, t.Value)
	}
	return out
}

func containsSeq(hay []string, needle []string) bool {
	for i := 0; i+len(needle) <= len(hay); i++ {
		match := true
		for j := range needle {
			if hay[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
