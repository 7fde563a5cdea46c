package parser_test

import (
	"testing"

	"github.com/cxlang/cxc/internal/ast"
	"github.com/cxlang/cxc/internal/diagnostics"
	"github.com/cxlang/cxc/internal/lexer"
	"github.com/cxlang/cxc/internal/parser"
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

func parseSrc(t *testing.T, src string) (*ast.Program, *diagnostics.Engine) {
	t.Helper()
	diags := newEngine(t)
	toks := lexer.New("t.hlx", src, diags).Tokenize()
	p := parser.New(toks, diags)
	return p.ParseProgram(), diags
}

func requireNoErrors(t *testing.T, diags *diagnostics.Engine) {
	t.Helper()
	if diags.HasErrored() {
		t.Fatalf("unexpected diagnostics: %v", diags.Records())
	}
}

func TestParsesLetDeclaration(t *testing.T) {
	prog, diags := parseSrc(t, `let x: Int = 1 + 2;`)
	requireNoErrors(t, diags)
	if len(prog.Decls) != 1 {
		t.Fatalf("got %d decls, want 1", len(prog.Decls))
	}
	let, ok := prog.Decls[0].(*ast.LetDeclaration)
	if !ok {
		t.Fatalf("decl 0 = %T, want *ast.LetDeclaration", prog.Decls[0])
	}
	if let.Name.Name != "x" {
		t.Fatalf("name = %q, want \"x\"", let.Name.Name)
	}
	infix, ok := let.Value.(*ast.InfixExpression)
	if !ok {
		t.Fatalf("value = %T, want *ast.InfixExpression", let.Value)
	}
	if infix.Operator != "+" {
		t.Fatalf("operator = %q, want \"+\"", infix.Operator)
	}
}

func TestOperatorPrecedenceClimbsCorrectly(t *testing.T) {
	prog, diags := parseSrc(t, `let x = 1 + 2 * 3;`)
	requireNoErrors(t, diags)
	let := prog.Decls[0].(*ast.LetDeclaration)
	top, ok := let.Value.(*ast.InfixExpression)
	if !ok || top.Operator != "+" {
		t.Fatalf("top operator = %v, want \"+\"", let.Value)
	}
	right, ok := top.Right.(*ast.InfixExpression)
	if !ok || right.Operator != "*" {
		t.Fatalf("right operand = %v, want a \"*\" infix", top.Right)
	}
}

func TestFunctionSelfParamSynthesizesStatic(t *testing.T) {
	prog, diags := parseSrc(t, `class Box { fn describe() -> Int { return 1; } }`)
	requireNoErrors(t, diags)
	cls := prog.Decls[0].(*ast.ClassDeclaration)
	if len(cls.Methods) != 1 {
		t.Fatalf("got %d methods, want 1", len(cls.Methods))
	}
	if !cls.Methods[0].Modifiers.Has("static") {
		t.Fatalf("method with no self param should synthesize \"static\"")
	}
}

func TestFunctionWithSelfIsNotStatic(t *testing.T) {
	prog, diags := parseSrc(t, `class Box { fn describe(self) -> Int { return 1; } }`)
	requireNoErrors(t, diags)
	cls := prog.Decls[0].(*ast.ClassDeclaration)
	if cls.Methods[0].Modifiers.Has("static") {
		t.Fatalf("method with self param should not be static")
	}
	if !cls.Methods[0].Params[0].IsSelf {
		t.Fatalf("first param should be marked IsSelf")
	}
}

func TestSelfAndStaticTogetherIsAnError(t *testing.T) {
	_, diags := parseSrc(t, `class Box { static fn describe(self) -> Int { return 1; } }`)
	if !diags.HasErrored() {
		t.Fatalf("expected an error for self+static conflict")
	}
	var found *diagnostics.Record
	for _, r := range diags.Records() {
		if r.Code == diagnostics.CodeSelfStaticConflict {
			found = r
		}
	}
	if found == nil {
		t.Fatalf("expected CodeSelfStaticConflict, got %v", diags.Records())
	}
	// "class Box { static fn describe(self) -> Int { ... } }" — self
	// starts at column 32; the diagnostic must anchor there, not at
	// whatever token trails the whole method.
	if found.Line != 1 || found.Column != 32 {
		t.Fatalf("diagnostic anchored at %d:%d, want 1:32 (the self token)", found.Line, found.Column)
	}
}

func TestPythonStyleForLoop(t *testing.T) {
	prog, diags := parseSrc(t, `fn main() { for x in xs { print(x); } }`)
	requireNoErrors(t, diags)
	fn := prog.Decls[0].(*ast.FunctionDeclaration)
	forStmt := fn.Body.Statements[0].(*ast.ForStatement)
	if forStmt.CStyle {
		t.Fatalf("expected Python-style for loop")
	}
	if forStmt.Var.Name != "x" {
		t.Fatalf("loop var = %q, want \"x\"", forStmt.Var.Name)
	}
}

func TestCStyleForLoop(t *testing.T) {
	prog, diags := parseSrc(t, `fn main() { for let i = 0; i < 10; i += 1 { print(i); } }`)
	requireNoErrors(t, diags)
	fn := prog.Decls[0].(*ast.FunctionDeclaration)
	forStmt := fn.Body.Statements[0].(*ast.ForStatement)
	if !forStmt.CStyle {
		t.Fatalf("expected C-style for loop")
	}
	if forStmt.Init == nil || forStmt.Cond == nil || forStmt.Update == nil {
		t.Fatalf("C-style for loop missing a clause: %+v", forStmt)
	}
}

func TestGenericInvocationDisambiguatedFromComparison(t *testing.T) {
	prog, diags := parseSrc(t, `let x = Box<Int>;`)
	requireNoErrors(t, diags)
	let := prog.Decls[0].(*ast.LetDeclaration)
	if _, ok := let.Value.(*ast.GenericInvocation); !ok {
		t.Fatalf("value = %T, want *ast.GenericInvocation", let.Value)
	}
}

func TestLessThanStaysComparisonWhenNotGeneric(t *testing.T) {
	prog, diags := parseSrc(t, `let x = a < b;`)
	requireNoErrors(t, diags)
	let := prog.Decls[0].(*ast.LetDeclaration)
	infix, ok := let.Value.(*ast.InfixExpression)
	if !ok || infix.Operator != "<" {
		t.Fatalf("value = %v, want a \"<\" comparison", let.Value)
	}
}

func TestCallWithGenericArguments(t *testing.T) {
	prog, diags := parseSrc(t, `let x = make<Int>(1, 2);`)
	requireNoErrors(t, diags)
	let := prog.Decls[0].(*ast.LetDeclaration)
	call, ok := let.Value.(*ast.CallExpression)
	if !ok {
		t.Fatalf("value = %T, want *ast.CallExpression", let.Value)
	}
	if len(call.Generics) != 1 {
		t.Fatalf("got %d generic args, want 1", len(call.Generics))
	}
	if len(call.Arguments) != 2 {
		t.Fatalf("got %d arguments, want 2", len(call.Arguments))
	}
}

func TestObjectMapAndSetLiteralsDisambiguate(t *testing.T) {
	tests := []struct {
		src  string
		want ast.Expression
	}{
		{`let x = {.a: 1};`, &ast.ObjectLiteral{}},
		{`let x = {"a": 1};`, &ast.MapLiteral{}},
		{`let x = {1, 2};`, &ast.SetLiteral{}},
	}
	for _, tt := range tests {
		prog, diags := parseSrc(t, tt.src)
		requireNoErrors(t, diags)
		let := prog.Decls[0].(*ast.LetDeclaration)
		gotType := typeName(let.Value)
		wantType := typeName(tt.want)
		if gotType != wantType {
			t.Errorf("%s: value = %s, want %s", tt.src, gotType, wantType)
		}
	}
}

func typeName(v ast.Expression) string {
	switch v.(type) {
	case *ast.ObjectLiteral:
		return "ObjectLiteral"
	case *ast.MapLiteral:
		return "MapLiteral"
	case *ast.SetLiteral:
		return "SetLiteral"
	default:
		return "unknown"
	}
}

func TestInterpolatedStringSplitsHoles(t *testing.T) {
	prog, diags := parseSrc(t, `let x = f"a{1 + 2}b";`)
	requireNoErrors(t, diags)
	let := prog.Decls[0].(*ast.LetDeclaration)
	interp, ok := let.Value.(*ast.InterpolatedString)
	if !ok {
		t.Fatalf("value = %T, want *ast.InterpolatedString", let.Value)
	}
	if len(interp.Holes) != 1 {
		t.Fatalf("got %d holes, want 1", len(interp.Holes))
	}
	if len(interp.Segments) != 2 || interp.Segments[0] != "a" || interp.Segments[1] != "b" {
		t.Fatalf("segments = %#v, want [\"a\" \"b\"]", interp.Segments)
	}
	hole, ok := interp.Holes[0].(*ast.InfixExpression)
	if !ok {
		t.Fatalf("hole = %T, want *ast.InfixExpression (the full \"1 + 2\", not just \"1\")", interp.Holes[0])
	}
	if hole.Operator != "+" {
		t.Fatalf("hole operator = %q, want \"+\"", hole.Operator)
	}
	left, ok := hole.Left.(*ast.IntegerLiteral)
	if !ok || left.Value != 1 {
		t.Fatalf("hole left = %v, want integer 1", hole.Left)
	}
	right, ok := hole.Right.(*ast.IntegerLiteral)
	if !ok || right.Value != 2 {
		t.Fatalf("hole right = %v, want integer 2", hole.Right)
	}
}

func TestInterpolatedHoleDiagnosticsAnchorAtRealSourcePosition(t *testing.T) {
	// Column count: `let x = f"a{` is 12 bytes, so the hole's content
	// (")", which cannot begin an expression) starts at column 13 on
	// line 1 — a malformed hole must still report a real
	// location, not (1,1) from a throwaway zero-based re-lex.
	_, diags := parseSrc(t, `let x = f"a{)}b";`)
	if !diags.HasErrored() {
		t.Fatalf("expected a diagnostic for the malformed hole")
	}
	rec := diags.Records()[0]
	if rec.Line != 1 || rec.Column < 13 {
		t.Fatalf("diagnostic anchored at %d:%d, want line 1 at or after column 13", rec.Line, rec.Column)
	}
}

func TestMissingSemicolonReportsQuickFixAtEndOfLine(t *testing.T) {
	_, diags := parseSrc(t, "let x: i32 = 42\n")
	recs := diags.Records()
	if len(recs) != 1 {
		t.Fatalf("got %d diagnostics, want exactly 1: %v", len(recs), recs)
	}
	rec := recs[0]
	if rec.Severity != diagnostics.Error {
		t.Fatalf("severity = %v, want Error", rec.Severity)
	}
	if rec.Code != diagnostics.CodeMissingSemicolon {
		t.Fatalf("code = %v, want CodeMissingSemicolon", rec.Code)
	}
	if len(rec.QuickFixes) != 1 {
		t.Fatalf("got %d quick fixes, want 1", len(rec.QuickFixes))
	}
	fix := rec.QuickFixes[0]
	if fix.Insert != ";" || fix.Column != 16 {
		t.Fatalf("quick fix = %+v, want {Insert:\";\" Column:16}", fix)
	}
}

func TestErrorRecoverySynchronizesAtSemicolon(t *testing.T) {
	prog, diags := parseSrc(t, `let x = ; let y = 1;`)
	if !diags.HasErrored() {
		t.Fatalf("expected a diagnostic for the malformed first statement")
	}
	found := false
	for _, d := range prog.Decls {
		if let, ok := d.(*ast.LetDeclaration); ok && let.Name.Name == "y" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected parsing to recover and still see declaration y, got %+v", prog.Decls)
	}
}

func TestModulePrologueForm(t *testing.T) {
	prog, diags := parseSrc(t, `module a::b::c; let x = 1;`)
	requireNoErrors(t, diags)
	if prog.Module == nil {
		t.Fatalf("expected a module prologue")
	}
	if len(prog.Module.Path) != 3 || prog.Module.Path[2].Name != "c" {
		t.Fatalf("module path = %+v, want a::b::c", prog.Module.Path)
	}
}

func TestImportStatementParsesSymbolList(t *testing.T) {
	prog, diags := parseSrc(t, `import "geometry" (Point, Line);`)
	requireNoErrors(t, diags)
	if len(prog.Imports) != 1 {
		t.Fatalf("got %d imports, want 1", len(prog.Imports))
	}
	imp := prog.Imports[0]
	if imp.Path.Value != "geometry" {
		t.Fatalf("path = %q, want \"geometry\"", imp.Path.Value)
	}
	if len(imp.Spec.Symbols) != 2 {
		t.Fatalf("got %d symbols, want 2", len(imp.Spec.Symbols))
	}
}

func TestInterfaceDeclarationCollectsAbstractMethods(t *testing.T) {
	prog, diags := parseSrc(t, `interface Shape { fn area() -> Float; }`)
	requireNoErrors(t, diags)
	iface := prog.Decls[0].(*ast.InterfaceDeclaration)
	if len(iface.Methods) != 1 {
		t.Fatalf("got %d methods, want 1", len(iface.Methods))
	}
	if iface.Methods[0].Body != nil {
		t.Fatalf("interface method should have no body at parse time")
	}
}

func TestFFIDeclarationRequiresABI(t *testing.T) {
	_, diags := parseSrc(t, `ffi { let x: Int; }`)
	if !diags.HasErrored() {
		t.Fatalf("expected a diagnostic for a missing ffi abi")
	}
}

func TestOperatorDeclarationParsesSymbolAndBody(t *testing.T) {
	prog, diags := parseSrc(t, `op "+" (self, other: Point) -> Point { return self; }`)
	requireNoErrors(t, diags)
	op := prog.Decls[0].(*ast.OperatorDeclaration)
	if op.Symbol != "+" {
		t.Fatalf("symbol = %q, want \"+\"", op.Symbol)
	}
}

func TestPointerAndArrayTypes(t *testing.T) {
	prog, diags := parseSrc(t, `let x: *Int = null; let y: [Int; 4] = [1, 2, 3, 4];`)
	requireNoErrors(t, diags)
	xt := prog.Decls[0].(*ast.LetDeclaration).Type
	if _, ok := xt.(*ast.PointerType); !ok {
		t.Fatalf("x type = %T, want *ast.PointerType", xt)
	}
	yt := prog.Decls[1].(*ast.LetDeclaration).Type
	arr, ok := yt.(*ast.ArrayType)
	if !ok {
		t.Fatalf("y type = %T, want *ast.ArrayType", yt)
	}
	if arr.Size == nil {
		t.Fatalf("expected an explicit array size")
	}
}

func TestTernaryPostfixExpression(t *testing.T) {
	prog, diags := parseSrc(t, `let x = 1 if cond else 2;`)
	requireNoErrors(t, diags)
	let := prog.Decls[0].(*ast.LetDeclaration)
	tern, ok := let.Value.(*ast.TernaryExpression)
	if !ok {
		t.Fatalf("value = %T, want *ast.TernaryExpression", let.Value)
	}
	if tern.Else == nil {
		t.Fatalf("expected an else branch")
	}
}

var _ = token.Token{}
