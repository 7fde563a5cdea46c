package cxir_test

import (
	"strings"
	"testing"

	"github.com/cxlang/cxc/internal/cxir"
	"github.com/cxlang/cxc/internal/diagnostics"
	"github.com/cxlang/cxc/internal/lexer"
	"github.com/cxlang/cxc/internal/parser"
	"github.com/cxlang/cxc/internal/sourcecache"
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

func emit(t *testing.T, src string) (string, *diagnostics.Engine) {
	t.Helper()
	diags := newEngine(t)
	toks := lexer.New("t.hlx", src, diags).Tokenize()
	prog := parser.New(toks, diags).ParseProgram()
	buf := cxir.Emit(prog, diags, "t.hlx")
	return buf.String(), diags
}

func TestLetDeclarationLowersToTypedLocal(t *testing.T) {
	out, diags := emit(t, `fn main() { let x: Int = 1; }`)
	if diags.HasErrored() {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
	if !strings.Contains(out, "Int x = 1") {
		t.Fatalf("output = %q, want it to contain \"Int x = 1\"", out)
	}
}

func TestLetWithoutTypeLowersToAuto(t *testing.T) {
	out, diags := emit(t, `fn main() { let x = 1; }`)
	if diags.HasErrored() {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
	if !strings.Contains(out, "auto x = 1") {
		t.Fatalf("output = %q, want it to contain \"auto x = 1\"", out)
	}
}

func TestSelfLowersToDereferencedThis(t *testing.T) {
	out, diags := emit(t, `class Box { fn describe(self) { print(self); } }`)
	if diags.HasErrored() {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
	if !strings.Contains(out, "(*this)") {
		t.Fatalf("output = %q, want it to contain \"(*this)\"", out)
	}
}

func TestInterfaceLowersToConcept(t *testing.T) {
	out, diags := emit(t, `interface Shape { fn area() -> Float; }`)
	if diags.HasErrored() {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
	if !strings.Contains(out, "concept Shape") {
		t.Fatalf("output = %q, want it to contain \"concept Shape\"", out)
	}
	if !strings.Contains(out, "requires") {
		t.Fatalf("output = %q, want it to contain a requires-clause", out)
	}
}

func TestInterfaceMethodWithBodyIsUnsupported(t *testing.T) {
	_, diags := emit(t, `interface Shape { fn area() -> Float { return 1.0; } }`)
	if !diags.HasErrored() {
		t.Fatalf("expected a diagnostic for a non-abstract interface method")
	}
}

func TestClassDeclarationLowersAccessSections(t *testing.T) {
	out, diags := emit(t, `class Box { private let x: Int = 0; fn describe(self) {} }`)
	if diags.HasErrored() {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
	if !strings.Contains(out, "class Box") {
		t.Fatalf("output = %q, want a class declaration", out)
	}
	if !strings.Contains(out, "private:") {
		t.Fatalf("output = %q, want a private: access section", out)
	}
}

func TestEnumLowersToScopedEnum(t *testing.T) {
	out, diags := emit(t, `enum Color { Red, Green, Blue }`)
	if diags.HasErrored() {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
	if !strings.Contains(out, "enum struct Color") {
		t.Fatalf("output = %q, want \"enum struct Color\"", out)
	}
}

func TestOperatorOverloadLowersToNamedFunctionAndWrapper(t *testing.T) {
	out, diags := emit(t, `op "+" (self, other: Point) -> Point { return self; }`)
	if diags.HasErrored() {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
	if !strings.Contains(out, "op_plus") {
		t.Fatalf("output = %q, want an op_plus named function", out)
	}
	if !strings.Contains(out, "operator+") {
		t.Fatalf("output = %q, want an operator+ forwarding wrapper", out)
	}
}

func TestFFIImportLowersToInclude(t *testing.T) {
	out, diags := emit(t, `ffi "c++" { import "vector"; }`)
	if diags.HasErrored() {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
	if !strings.Contains(out, `#include "vector"`) {
		t.Fatalf("output = %q, want an #include directive", out)
	}
}

func TestCStyleForLoopLowersLiterally(t *testing.T) {
	out, diags := emit(t, `fn main() { for let i = 0; i < 10; i += 1 { print(i); } }`)
	if diags.HasErrored() {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
	if !strings.Contains(out, "for (") || !strings.Contains(out, "; i < 10;") {
		t.Fatalf("output = %q, want a literal C-style for loop", out)
	}
}

func TestPythonStyleForLoopLowersToRangeFor(t *testing.T) {
	out, diags := emit(t, `fn main() { for x in xs { print(x); } }`)
	if diags.HasErrored() {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
	if !strings.Contains(out, "for (") || !strings.Contains(out, "auto x : xs") {
		t.Fatalf("output = %q, want a range-based for loop over xs", out)
	}
}

func TestTernaryLowersToPrefixConditional(t *testing.T) {
	out, diags := emit(t, `fn main() { let x = 1 if cond else 2; }`)
	if diags.HasErrored() {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
	if !strings.Contains(out, "cond ? 1 : 2") {
		t.Fatalf("output = %q, want a prefix conditional", out)
	}
}

func TestTryCatchLowersDirectly(t *testing.T) {
	out, diags := emit(t, `fn main() { try { risky(); } catch (e: Error) { handle(e); } }`)
	if diags.HasErrored() {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
	if !strings.Contains(out, "try {") || !strings.Contains(out, "catch") || !strings.Contains(out, "Error e") {
		t.Fatalf("output = %q, want a try/catch translation", out)
	}
}

func TestTryWithCatchAndFinallyIsUnsupported(t *testing.T) {
	_, diags := emit(t, `fn main() { try { risky(); } catch (e: Error) { handle(e); } finally { cleanup(); } }`)
	if !diags.HasErrored() {
		t.Fatalf("expected a diagnostic for try with both catch and finally")
	}
}

func TestInterpolatedStringLowersToConcatenation(t *testing.T) {
	out, diags := emit(t, `fn main() { let x = f"a{1}b"; }`)
	if diags.HasErrored() {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
	if !strings.Contains(out, "\"a\"") || !strings.Contains(out, "\"b\"") || !strings.Contains(out, "+") {
		t.Fatalf("output = %q, want a chained concatenation", out)
	}
}

func TestModulePrologueOpensAndClosesNamespace(t *testing.T) {
	out, diags := emit(t, `module geo::shapes; class Box {}`)
	if diags.HasErrored() {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
	if !strings.Contains(out, "namespace geo::shapes") {
		t.Fatalf("output = %q, want a namespace geo::shapes open", out)
	}
	if !strings.Contains(out, "}") {
		t.Fatalf("output = %q, want a closing brace for the namespace", out)
	}
}

func TestReadableRenderingInsertsLineBreadcrumbs(t *testing.T) {
	diags := newEngine(t)
	toks := lexer.New("t.hlx", "fn main() {\n  let x = 1;\n  let y = 2;\n}", diags).Tokenize()
	prog := parser.New(toks, diags).ParseProgram()
	buf := cxir.Emit(prog, diags, "t.hlx")
	readable := buf.Readable()
	if !strings.Contains(readable, "t.hlx:") {
		t.Fatalf("readable output = %q, want file:line:col breadcrumbs", readable)
	}
}
