package cxir

import (
	"strconv"

	"github.com/cxlang/cxc/internal/ast"
	"github.com/cxlang/cxc/internal/diagnostics"
	"github.com/cxlang/cxc/internal/token"
)

// Emitter lowers an *ast.Program into CX-IR by walking it with the
// ast.Visitor protocol (spec §4.9). It holds no state beyond the
// output buffer and a small stack of open namespace braces, since the
// core never performs semantic analysis: every lowering decision is
// made from the shape of the node in front of it.
type Emitter struct {
	buf        Buffer
	diags      *diagnostics.Engine
	file       string
	namespaces int // open `namespace X {` braces pending a closer
}

var _ ast.Visitor = (*Emitter)(nil)

// Emit lowers prog to CX-IR and returns the resulting buffer. diags
// receives a CodeUnsupportedNode diagnostic for every construct the
// emitter cannot lower; emission continues past those, producing a
// buffer with gaps rather than aborting (spec §4.9's "emit diagnostic
// rather than producing output").
func Emit(prog *ast.Program, diags *diagnostics.Engine, file string) *Buffer {
	e := &Emitter{diags: diags, file: file}
	prog.Accept(e)
	return &e.buf
}

func (e *Emitter) raw(text string, origin token.Token, spaced bool) {
	e.buf.push(Token{Text: text, Origin: origin, Spaced: spaced})
}

func (e *Emitter) nl(text string, origin token.Token) {
	e.buf.push(Token{Text: text, Origin: origin, Newline: true})
}

func (e *Emitter) sp(text string, origin token.Token) { e.raw(text, origin, true) }
func (e *Emitter) tight(text string, origin token.Token) { e.raw(text, origin, false) }

func (e *Emitter) unsupported(n ast.Node, what string) {
	e.diags.Report(diagnostics.CodeUnsupportedNode, n.Pos(), what)
}

func (e *Emitter) accept(n ast.Node) {
	if n == nil {
		return
	}
	n.Accept(e)
}

// VisitProgram walks the module prologue (if any), then every
// declaration and stray import in source order, closing any open
// namespace braces at the end.
func (e *Emitter) VisitProgram(n *ast.Program) {
	if n.Module != nil {
		n.Module.Accept(e)
	}
	for _, imp := range n.Imports {
		imp.Accept(e)
	}
	for _, d := range n.Decls {
		d.Accept(e)
		e.nl("", token.Token{})
	}
	for ; e.namespaces > 0; e.namespaces-- {
		e.nl("}", token.Token{})
	}
}

// --- Expressions ---

func (e *Emitter) VisitIdentifier(n *ast.Identifier) { e.sp(n.Name, n.Pos()) }

func (e *Emitter) VisitIntegerLiteral(n *ast.IntegerLiteral) { e.sp(n.Raw, n.Pos()) }

func (e *Emitter) VisitFloatLiteral(n *ast.FloatLiteral) { e.sp(n.Raw, n.Pos()) }

func (e *Emitter) VisitStringLiteral(n *ast.StringLiteral) {
	e.sp(strconv.Quote(n.Value), n.Pos())
}

// VisitInterpolatedString lowers `f"a{b}c"` to a chain of
// stream-style concatenations: `(std::string("a") + (b) + "c")`,
// since CX-IR has no native interpolation syntax.
func (e *Emitter) VisitInterpolatedString(n *ast.InterpolatedString) {
	e.sp("(", n.Pos())
	first := true
	emitJoin := func() {
		if !first {
			e.sp("+", n.Pos())
		}
		first = false
	}
	for i, seg := range n.Segments {
		if seg != "" {
			lit := strconv.Quote(seg)
			if first {
				lit = "std::string(" + lit + ")"
			}
			emitJoin()
			e.sp(lit, n.Pos())
		}
		if i < len(n.Holes) {
			emitJoin()
			e.sp("(", n.Pos())
			e.accept(n.Holes[i])
			e.tight(")", n.Pos())
		}
	}
	e.tight(")", n.Pos())
}

func (e *Emitter) VisitCharLiteral(n *ast.CharLiteral) {
	e.sp("'"+string(n.Value)+"'", n.Pos())
}

func (e *Emitter) VisitBooleanLiteral(n *ast.BooleanLiteral) {
	if n.Value {
		e.sp("true", n.Pos())
	} else {
		e.sp("false", n.Pos())
	}
}

func (e *Emitter) VisitNullLiteral(n *ast.NullLiteral) { e.sp("nullptr", n.Pos()) }

// VisitSelfExpression lowers `self` used as a value to `(*this)`
// (spec §4.9).
func (e *Emitter) VisitSelfExpression(n *ast.SelfExpression) { e.sp("(*this)", n.Pos()) }

func (e *Emitter) VisitTupleLiteral(n *ast.TupleLiteral) {
	e.sp("std::make_tuple", n.Pos())
	e.tight("(", n.Pos())
	e.commaList(n.Elements)
	e.tight(")", n.Pos())
}

func (e *Emitter) VisitArrayLiteral(n *ast.ArrayLiteral) {
	e.sp("{", n.Pos())
	e.commaList(n.Elements)
	e.tight("}", n.Pos())
}

func (e *Emitter) VisitMapLiteral(n *ast.MapLiteral) {
	e.sp("{", n.Pos())
	for i, ent := range n.Entries {
		if i > 0 {
			e.tight(",", n.Pos())
		}
		e.sp("{", n.Pos())
		e.accept(ent.Key)
		e.tight(",", n.Pos())
		e.accept(ent.Value)
		e.tight("}", n.Pos())
	}
	e.sp("}", n.Pos())
}

func (e *Emitter) VisitSetLiteral(n *ast.SetLiteral) {
	e.sp("{", n.Pos())
	e.commaList(n.Elements)
	e.tight("}", n.Pos())
}

func (e *Emitter) VisitObjectLiteral(n *ast.ObjectLiteral) {
	e.sp("{", n.Pos())
	for i, f := range n.Fields {
		if i > 0 {
			e.tight(",", n.Pos())
		}
		e.sp(".", n.Pos())
		e.tight(f.Name.Name, f.Name.Pos())
		e.sp("=", n.Pos())
		e.accept(f.Value)
	}
	e.sp("}", n.Pos())
}

func (e *Emitter) commaList(exprs []ast.Expression) {
	for i, el := range exprs {
		if i > 0 {
			e.tight(",", el.Pos())
		}
		e.accept(el)
	}
}

func (e *Emitter) VisitPrefixExpression(n *ast.PrefixExpression) {
	e.sp(n.Operator, n.Pos())
	e.accept(n.Operand)
}

func (e *Emitter) VisitInfixExpression(n *ast.InfixExpression) {
	e.accept(n.Left)
	e.sp(n.Operator, n.Pos())
	e.accept(n.Right)
}

func (e *Emitter) VisitAssignExpression(n *ast.AssignExpression) {
	e.accept(n.Target)
	e.sp(n.Operator, n.Pos())
	e.accept(n.Value)
}

// VisitTernaryExpression lowers the postfix `then if cond else alt`
// form to C++'s prefix `cond ? then : alt`.
func (e *Emitter) VisitTernaryExpression(n *ast.TernaryExpression) {
	e.sp("(", n.Pos())
	e.accept(n.Condition)
	e.sp("?", n.Pos())
	e.accept(n.Then)
	e.sp(":", n.Pos())
	if n.Else != nil {
		e.accept(n.Else)
	}
	e.tight(")", n.Pos())
}

// VisitHasExpression and VisitDerivesExpression have no semantic
// analysis backing them in the core (spec Non-goals); they emit the
// subject, a `/* has */` or `/* derives */` comment marker, and the
// trait. No concept check or other C++ test is generated.
func (e *Emitter) VisitHasExpression(n *ast.HasExpression) {
	e.accept(n.Subject)
	e.sp("/* has */", n.Pos())
	e.accept(n.Trait)
}

func (e *Emitter) VisitDerivesExpression(n *ast.DerivesExpression) {
	e.accept(n.Subject)
	e.sp("/* derives */", n.Pos())
	e.accept(n.Trait)
}

// VisitCallExpression emits the lowered callee path, then an optional
// explicit template argument list, then the argument list (spec
// §4.9's "function call → lowered path, then optional generic
// invocation, then argument list").
func (e *Emitter) VisitCallExpression(n *ast.CallExpression) {
	e.accept(n.Callee)
	if len(n.Generics) > 0 {
		e.tight("<", n.Pos())
		for i, g := range n.Generics {
			if i > 0 {
				e.tight(",", n.Pos())
			}
			e.accept(g)
		}
		e.tight(">", n.Pos())
	}
	e.tight("(", n.Pos())
	e.commaList(n.Arguments)
	e.tight(")", n.Pos())
}

func (e *Emitter) VisitIndexExpression(n *ast.IndexExpression) {
	e.accept(n.Target)
	e.tight("[", n.Pos())
	e.accept(n.Index)
	e.tight("]", n.Pos())
}

func (e *Emitter) VisitMemberExpression(n *ast.MemberExpression) {
	e.accept(n.Target)
	e.tight(".", n.Pos())
	e.tight(n.Member.Name, n.Member.Pos())
}

func (e *Emitter) VisitScopeExpression(n *ast.ScopeExpression) {
	e.accept(n.Target)
	e.tight("::", n.Pos())
	e.tight(n.Member.Name, n.Member.Pos())
}

func (e *Emitter) VisitGenericInvocation(n *ast.GenericInvocation) {
	e.accept(n.Callee)
	e.tight("<", n.Pos())
	for i, a := range n.Args {
		if i > 0 {
			e.tight(",", n.Pos())
		}
		e.accept(a)
	}
	e.tight(">", n.Pos())
}

func (e *Emitter) VisitSpreadExpression(n *ast.SpreadExpression) {
	e.accept(n.Operand)
	e.tight("...", n.Pos())
}

func (e *Emitter) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	e.sp("[&]", n.Pos())
	e.tight("(", n.Pos())
	e.paramList(n.Params)
	e.tight(")", n.Pos())
	if n.ReturnType != nil {
		e.sp("->", n.Pos())
		e.accept(n.ReturnType)
	}
	e.accept(n.Body)
}

func (e *Emitter) VisitIfExpression(n *ast.IfExpression) {
	e.sp("(", n.Pos())
	e.accept(n.Condition)
	e.sp("?", n.Pos())
	if then := blockAsExpr(n.Then); then != nil {
		e.accept(then)
	} else {
		e.sp("void()", n.Pos())
	}
	e.sp(":", n.Pos())
	switch els := n.Else.(type) {
	case *ast.BlockStatement:
		if alt := blockAsExpr(els); alt != nil {
			e.accept(alt)
		} else {
			e.sp("void()", n.Pos())
		}
	case *ast.IfExpression:
		e.accept(els)
	default:
		e.sp("void()", n.Pos())
	}
	e.tight(")", n.Pos())
}

// blockAsExpr extracts the trailing expression statement's value out
// of a block used in expression position. It returns nil for a block
// with no trailing expression, and VisitIfExpression emits `void()`
// for that operand.
func blockAsExpr(b *ast.BlockStatement) ast.Expression {
	if b == nil || len(b.Statements) == 0 {
		return nil
	}
	if last, ok := b.Statements[len(b.Statements)-1].(*ast.ExpressionStatement); ok {
		return last.Expr
	}
	return nil
}

func (e *Emitter) paramList(params []ast.Param) {
	first := true
	for _, prm := range params {
		if prm.IsSelf {
			continue // self is removed; it becomes the implicit this
		}
		if !first {
			e.tight(",", prm.Name.Pos())
		}
		first = false
		if prm.Type != nil {
			e.accept(prm.Type)
		} else {
			e.sp("auto", prm.Name.Pos())
		}
		e.sp(prm.Name.Name, prm.Name.Pos())
		if prm.IsVariadic {
			e.tight("...", prm.Name.Pos())
		}
		if prm.Default != nil {
			e.sp("=", prm.Name.Pos())
			e.accept(prm.Default)
		}
	}
}

// --- Statements ---

func (e *Emitter) VisitExpressionStatement(n *ast.ExpressionStatement) {
	e.accept(n.Expr)
	e.tight(";", n.Pos())
}

func (e *Emitter) VisitBlockStatement(n *ast.BlockStatement) {
	e.sp("{", n.Pos())
	for _, s := range n.Statements {
		e.accept(s)
	}
	e.nl("}", n.Pos())
}

func (e *Emitter) VisitIfStatement(n *ast.IfStatement) {
	e.sp("if", n.Pos())
	e.sp("(", n.Pos())
	if n.Unless {
		e.tight("!", n.Pos())
		e.tight("(", n.Pos())
		e.accept(n.Condition)
		e.tight(")", n.Pos())
	} else {
		e.accept(n.Condition)
	}
	e.tight(")", n.Pos())
	e.accept(n.Then)
	if n.Else != nil {
		e.sp("else", n.Pos())
		e.accept(n.Else)
	}
}

// VisitForStatement lowers both loop forms the parser disambiguates
// (spec §4.8's for-loop duality) to C++ equivalents: a C-style
// `for(;;)` stays a `for`, the Python-style `for x in xs` becomes a
// range-based `for (auto x : xs)`.
func (e *Emitter) VisitForStatement(n *ast.ForStatement) {
	if n.CStyle {
		e.sp("for", n.Pos())
		e.sp("(", n.Pos())
		if n.Init != nil {
			e.accept(n.Init)
		} else {
			e.tight(";", n.Pos())
		}
		e.accept(n.Cond)
		e.tight(";", n.Pos())
		if n.Update != nil {
			if es, ok := n.Update.(*ast.ExpressionStatement); ok {
				e.accept(es.Expr)
			} else {
				e.accept(n.Update)
			}
		}
		e.tight(")", n.Pos())
		e.accept(n.Body)
		return
	}
	e.sp("for", n.Pos())
	e.sp("(", n.Pos())
	e.sp("auto", n.Pos())
	e.sp(n.Var.Name, n.Var.Pos())
	e.sp(":", n.Pos())
	e.accept(n.Iterable)
	e.tight(")", n.Pos())
	e.accept(n.Body)
}

func (e *Emitter) VisitWhileStatement(n *ast.WhileStatement) {
	e.sp("while", n.Pos())
	e.sp("(", n.Pos())
	e.accept(n.Condition)
	e.tight(")", n.Pos())
	e.accept(n.Body)
}

func (e *Emitter) VisitSwitchStatement(n *ast.SwitchStatement) {
	e.sp("switch", n.Pos())
	e.sp("(", n.Pos())
	e.accept(n.Subject)
	e.tight(")", n.Pos())
	e.sp("{", n.Pos())
	for _, c := range n.Cases {
		if c.IsDefault {
			e.nl("default", n.Pos())
			e.tight(":", n.Pos())
		} else {
			for _, v := range c.Values {
				e.nl("case", n.Pos())
				e.accept(v)
				e.tight(":", n.Pos())
			}
		}
		for _, s := range c.Body {
			e.accept(s)
		}
		if !c.Fallthrough {
			e.sp("break", n.Pos())
			e.tight(";", n.Pos())
		}
	}
	e.nl("}", n.Pos())
}

func (e *Emitter) VisitBreakStatement(n *ast.BreakStatement) {
	e.sp("break", n.Pos())
	e.tight(";", n.Pos())
}

func (e *Emitter) VisitContinueStatement(n *ast.ContinueStatement) {
	e.sp("continue", n.Pos())
	e.tight(";", n.Pos())
}

func (e *Emitter) VisitReturnStatement(n *ast.ReturnStatement) {
	e.sp("return", n.Pos())
	if n.Value != nil {
		e.accept(n.Value)
	}
	e.tight(";", n.Pos())
}

// VisitYieldStatement has no coroutine lowering in the core; it
// reports unsupported rather than emitting wrong code.
func (e *Emitter) VisitYieldStatement(n *ast.YieldStatement) {
	e.unsupported(n, "yield statement")
}

func (e *Emitter) VisitDeleteStatement(n *ast.DeleteStatement) {
	e.sp("delete", n.Pos())
	e.accept(n.Target)
	e.tight(";", n.Pos())
}

// VisitTryStatement lowers the common try/catch shape to C++
// try/catch; a try with both catch clauses and a finally block has no
// direct C++ equivalent and is reported unsupported (spec §4.9's
// "certain try-finally patterns"). A try with only a finally block
// emits `try` and its body, then reports the finally block
// unsupported; the finally body is never emitted.
func (e *Emitter) VisitTryStatement(n *ast.TryStatement) {
	if n.Finally != nil && len(n.Catches) > 0 {
		e.unsupported(n, "try with both catch and finally")
		return
	}
	e.sp("try", n.Pos())
	e.accept(n.Body)
	for _, c := range n.Catches {
		e.sp("catch", n.Pos())
		e.sp("(", n.Pos())
		if c.Type != nil {
			e.accept(c.Type)
		} else {
			e.sp("...", n.Pos())
		}
		if c.Name != nil {
			e.sp(c.Name.Name, c.Name.Pos())
		}
		e.tight(")", n.Pos())
		e.accept(c.Body)
	}
	if n.Finally != nil {
		e.unsupported(n, "try-finally")
	}
}

func (e *Emitter) VisitPanicStatement(n *ast.PanicStatement) {
	e.sp("throw", n.Pos())
	e.accept(n.Value)
	e.tight(";", n.Pos())
}

// VisitImportStatement is a no-op outside an FFI block: ordinary
// imports are already resolved and inlined by the preprocessor (spec
// §4.6), so any surviving top-level ImportStatement node carries
// nothing for the emitter to lower.
func (e *Emitter) VisitImportStatement(n *ast.ImportStatement) {}

func (e *Emitter) VisitModuleStatement(n *ast.ModuleStatement) {
	e.sp("namespace", n.Pos())
	e.sp(n.Name.Name, n.Name.Pos())
	e.sp("{", n.Pos())
	e.accept(n.Body)
}

// --- Declarations ---

// accessSection returns the IR access-marker keyword for a modifier
// bag's access level, defaulting to public (spec §4.9: "the emitter
// inserts access marker tokens into the IR based on each member's
// modifier").
func accessSection(mods *ast.Modifiers) string {
	switch mods.AccessLevel() {
	case "private":
		return "private"
	case "protected":
		return "protected"
	default:
		return "public"
	}
}

func (e *Emitter) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	e.emitFunctionSignature(n)
	if n.Body != nil {
		e.accept(n.Body)
	} else {
		e.tight(";", n.Pos())
	}
}

func (e *Emitter) emitFunctionSignature(n *ast.FunctionDeclaration) {
	if n.Modifiers != nil && n.Modifiers.Has("inline") {
		e.sp("inline", n.Pos())
	}
	if n.Modifiers != nil && n.Modifiers.Has("static") {
		e.sp("static", n.Pos())
	}
	if n.ReturnType != nil {
		e.accept(n.ReturnType)
	} else {
		e.sp("auto", n.Pos())
	}
	e.sp(n.Name.Name, n.Name.Pos())
	e.tight("(", n.Pos())
	e.paramList(n.Params)
	e.tight(")", n.Pos())
}

// VisitLetDeclaration lowers `let x: T = e;` to `T x = e;`, emitting
// the type-inference token (`auto`) when T is absent (spec §4.9).
func (e *Emitter) VisitLetDeclaration(n *ast.LetDeclaration) {
	if n.Modifiers != nil && n.Modifiers.Has("static") {
		e.sp("static", n.Pos())
	}
	if n.Type != nil {
		e.accept(n.Type)
	} else {
		e.sp("auto", n.Pos())
	}
	e.sp(n.Name.Name, n.Name.Pos())
	if n.Value != nil {
		e.sp("=", n.Pos())
		e.accept(n.Value)
	}
	e.tight(";", n.Pos())
}

func (e *Emitter) VisitConstDeclaration(n *ast.ConstDeclaration) {
	e.sp("constexpr", n.Pos())
	if n.Type != nil {
		e.accept(n.Type)
	} else {
		e.sp("auto", n.Pos())
	}
	e.sp(n.Name.Name, n.Name.Pos())
	if n.Value != nil {
		e.sp("=", n.Pos())
		e.accept(n.Value)
	}
	e.tight(";", n.Pos())
}

// VisitClassDeclaration lowers to a `class` with a translated derive
// list, rewriting every method to drop its self parameter and
// prefixing each with an access-section marker per spec §4.9.
func (e *Emitter) VisitClassDeclaration(n *ast.ClassDeclaration) {
	e.sp("class", n.Pos())
	e.sp(n.Name.Name, n.Name.Pos())
	if len(n.Derives) > 0 {
		e.sp(":", n.Pos())
		for i, d := range n.Derives {
			if i > 0 {
				e.tight(",", n.Pos())
			}
			access := d.Access
			if access == "" {
				access = "public"
			}
			e.sp(access, n.Pos())
			e.accept(d.Trait)
		}
	}
	e.sp("{", n.Pos())

	for _, f := range n.Fields {
		e.nl(accessSection(f.Modifiers), f.Name.Pos())
		e.tight(":", f.Name.Pos())
		if f.Type != nil {
			e.accept(f.Type)
		} else {
			e.sp("auto", f.Name.Pos())
		}
		e.sp(f.Name.Name, f.Name.Pos())
		if f.Default != nil {
			e.sp("=", f.Name.Pos())
			e.accept(f.Default)
		}
		e.tight(";", f.Name.Pos())
	}

	for _, m := range n.Methods {
		e.nl(accessSection(m.Modifiers), m.Name.Pos())
		e.tight(":", m.Name.Pos())
		m.Accept(e)
	}
	e.nl("};", n.Pos())
}

func (e *Emitter) VisitStructDeclaration(n *ast.StructDeclaration) {
	e.sp("struct", n.Pos())
	e.sp(n.Name.Name, n.Name.Pos())
	e.sp("{", n.Pos())
	for _, f := range n.Fields {
		if f.Type != nil {
			e.accept(f.Type)
		} else {
			e.sp("auto", f.Name.Pos())
		}
		e.sp(f.Name.Name, f.Name.Pos())
		if f.Default != nil {
			e.sp("=", f.Name.Pos())
			e.accept(f.Default)
		}
		e.tight(";", f.Name.Pos())
	}
	e.nl("};", n.Pos())
}

// VisitEnumDeclaration lowers to `enum struct Name: Underlying { ... };`
// (spec §4.9), defaulting the underlying type to `int` when absent.
func (e *Emitter) VisitEnumDeclaration(n *ast.EnumDeclaration) {
	e.sp("enum struct", n.Pos())
	e.sp(n.Name.Name, n.Name.Pos())
	e.sp(":", n.Pos())
	if n.Underlying != nil {
		e.accept(n.Underlying)
	} else {
		e.sp("int", n.Pos())
	}
	e.sp("{", n.Pos())
	for i, m := range n.Members {
		if i > 0 {
			e.tight(",", n.Pos())
		}
		e.sp(m.Name.Name, m.Name.Pos())
		if m.Value != nil {
			e.sp("=", n.Pos())
			e.accept(m.Value)
		}
	}
	e.tight("};", n.Pos())
}

// VisitInterfaceDeclaration lowers to a template concept whose
// constraint expression requires every member signature to be
// satisfied; a member with a body violates the "abstract only" rule
// and is reported rather than lowered (spec §4.9).
func (e *Emitter) VisitInterfaceDeclaration(n *ast.InterfaceDeclaration) {
	e.sp("template", n.Pos())
	e.tight("<", n.Pos())
	e.sp("typename T", n.Pos())
	e.tight(">", n.Pos())
	e.sp("concept", n.Pos())
	e.sp(n.Name.Name, n.Name.Pos())
	e.sp("=", n.Pos())
	e.sp("requires(T v)", n.Pos())
	e.sp("{", n.Pos())
	for i, m := range n.Methods {
		if m.Body != nil {
			e.diags.Report(diagnostics.CodeUnsupportedNode, m.Body.Pos(), "interface method with a body")
			continue
		}
		if i > 0 {
			e.tight(";", n.Pos())
		}
		e.sp("{", n.Pos())
		e.tight("v.", n.Pos())
		e.tight(m.Name.Name, m.Name.Pos())
		e.tight("(", n.Pos())
		e.paramList(m.Params)
		e.tight(")", n.Pos())
		e.sp("}", n.Pos())
		if m.ReturnType != nil {
			e.sp("->", n.Pos())
			e.accept(m.ReturnType)
		}
	}
	e.tight(";", n.Pos())
	e.nl("};", n.Pos())
}

func (e *Emitter) VisitTypeAliasDeclaration(n *ast.TypeAliasDeclaration) {
	e.sp("using", n.Pos())
	e.sp(n.Name.Name, n.Name.Pos())
	e.sp("=", n.Pos())
	e.accept(n.Aliased)
	e.tight(";", n.Pos())
}

// VisitFFIDeclaration emits the block's body close to verbatim, except
// that an import statement inside a "c++" block lowers to a
// preprocessor include (spec §4.9).
func (e *Emitter) VisitFFIDeclaration(n *ast.FFIDeclaration) {
	for _, s := range n.Body {
		if imp, ok := s.(*ast.ImportStatement); ok && n.ABI == "c++" {
			e.nl("#include", imp.Pos())
			if imp.Path != nil {
				e.sp(strconv.Quote(imp.Path.Value), imp.Path.Pos())
			}
			continue
		}
		e.accept(s)
	}
}

// VisitOperatorDeclaration emits the underlying function, then an
// inline `operator<tokens>` wrapper forwarding to it (spec §4.9).
func (e *Emitter) VisitOperatorDeclaration(n *ast.OperatorDeclaration) {
	fnName := "op_" + operatorIdent(n.Symbol)

	if n.ReturnType != nil {
		e.accept(n.ReturnType)
	} else {
		e.sp("auto", n.Pos())
	}
	e.sp(fnName, n.Pos())
	e.tight("(", n.Pos())
	e.paramList(n.Params)
	e.tight(")", n.Pos())
	e.accept(n.Body)

	e.nl("inline", n.Pos())
	if n.ReturnType != nil {
		e.accept(n.ReturnType)
	} else {
		e.sp("auto", n.Pos())
	}
	e.sp("operator"+n.Symbol, n.Pos())
	e.tight("(", n.Pos())
	e.paramList(n.Params)
	e.tight(")", n.Pos())
	e.sp("{", n.Pos())
	e.sp("return", n.Pos())
	e.sp(fnName, n.Pos())
	e.tight("(", n.Pos())
	first := true
	for _, prm := range n.Params {
		if prm.IsSelf {
			continue
		}
		if !first {
			e.tight(",", n.Pos())
		}
		first = false
		e.sp(prm.Name.Name, prm.Name.Pos())
	}
	e.tight(")", n.Pos())
	e.tight(";", n.Pos())
	e.nl("}", n.Pos())
}

func operatorIdent(sym string) string {
	names := map[rune]string{
		'+': "plus", '-': "minus", '*': "star", '/': "slash", '%': "pct",
		'<': "lt", '>': "gt", '=': "eq", '!': "bang", '&': "amp", '|': "bar", '^': "caret",
	}
	out := ""
	for _, r := range sym {
		if name, ok := names[r]; ok {
			out += name
		}
	}
	if out == "" {
		out = "custom"
	}
	return out
}

// VisitModuleDeclaration opens a namespace that stays open for the
// rest of the program (the prologue form has no closing delimiter in
// source; VisitProgram closes it once the declaration list ends).
func (e *Emitter) VisitModuleDeclaration(n *ast.ModuleDeclaration) {
	e.sp("namespace", n.Pos())
	for i, id := range n.Path {
		if i > 0 {
			e.tight("::", id.Pos())
		} else {
			e.sp(id.Name, id.Pos())
			continue
		}
		e.tight(id.Name, id.Pos())
	}
	e.sp("{", n.Pos())
	e.namespaces++
}

// --- Types ---

func (e *Emitter) VisitNamedType(n *ast.NamedType) {
	for i, seg := range n.Path {
		if i > 0 {
			e.tight("::", n.Pos())
		}
		if i == 0 {
			e.sp(seg, n.Pos())
		} else {
			e.tight(seg, n.Pos())
		}
	}
}

func (e *Emitter) VisitGenericType(n *ast.GenericType) {
	e.accept(n.Base)
	e.tight("<", n.Pos())
	for i, a := range n.Args {
		if i > 0 {
			e.tight(",", n.Pos())
		}
		e.accept(a)
	}
	e.tight(">", n.Pos())
}

func (e *Emitter) VisitPointerType(n *ast.PointerType) {
	e.accept(n.Elem)
	if n.Reference {
		e.tight("&", n.Pos())
	} else {
		e.tight("*", n.Pos())
	}
}

// VisitArrayType lowers a sized array to `std::array<T, N>` and an
// unsized one to `std::vector<T>`.
func (e *Emitter) VisitArrayType(n *ast.ArrayType) {
	if n.Size != nil {
		e.sp("std::array", n.Pos())
		e.tight("<", n.Pos())
		e.accept(n.Elem)
		e.tight(",", n.Pos())
		e.accept(n.Size)
		e.tight(">", n.Pos())
		return
	}
	e.sp("std::vector", n.Pos())
	e.tight("<", n.Pos())
	e.accept(n.Elem)
	e.tight(">", n.Pos())
}

func (e *Emitter) VisitTupleType(n *ast.TupleType) {
	e.sp("std::tuple", n.Pos())
	e.tight("<", n.Pos())
	for i, el := range n.Elements {
		if i > 0 {
			e.tight(",", n.Pos())
		}
		e.accept(el)
	}
	e.tight(">", n.Pos())
}

func (e *Emitter) VisitFunctionType(n *ast.FunctionType) {
	e.sp("std::function", n.Pos())
	e.tight("<", n.Pos())
	if n.Result != nil {
		e.accept(n.Result)
	} else {
		e.sp("void", n.Pos())
	}
	e.tight("(", n.Pos())
	for i, p := range n.Params {
		if i > 0 {
			e.tight(",", n.Pos())
		}
		e.accept(p)
	}
	e.tight(")", n.Pos())
	e.tight(">", n.Pos())
}
