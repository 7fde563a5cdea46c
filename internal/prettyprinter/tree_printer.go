// Package prettyprinter renders a parsed tree back out for debugging:
// TreePrinter walks an ast.Program with the Visitor protocol and
// writes an indented, one-node-per-line dump, the same shape the
// driver's --emit-ast flag prints (spec §6).
package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cxlang/cxc/internal/ast"
)

type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) line(format string, args ...any) {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *TreePrinter) child(n ast.Node) {
	if n == nil {
		return
	}
	p.indent++
	n.Accept(p)
	p.indent--
}

func (p *TreePrinter) children(ns ...ast.Node) {
	for _, n := range ns {
		p.child(n)
	}
}

// Print returns the tree dump for prog.
func Print(prog *ast.Program) string {
	p := NewTreePrinter()
	prog.Accept(p)
	return p.String()
}

func (p *TreePrinter) VisitProgram(n *ast.Program) {
	p.line("Program")
	p.indent++
	if n.Module != nil {
		n.Module.Accept(p)
	}
	for _, imp := range n.Imports {
		imp.Accept(p)
	}
	for _, d := range n.Decls {
		d.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitIdentifier(n *ast.Identifier) { p.line("Identifier(%s)", n.Name) }
func (p *TreePrinter) VisitIntegerLiteral(n *ast.IntegerLiteral) {
	p.line("IntegerLiteral(%s)", n.Raw)
}
func (p *TreePrinter) VisitFloatLiteral(n *ast.FloatLiteral) { p.line("FloatLiteral(%s)", n.Raw) }
func (p *TreePrinter) VisitStringLiteral(n *ast.StringLiteral) {
	p.line("StringLiteral(prefix=%q, %q)", n.Prefix, n.Value)
}
func (p *TreePrinter) VisitInterpolatedString(n *ast.InterpolatedString) {
	p.line("InterpolatedString")
	p.indent++
	for i, seg := range n.Segments {
		p.line("Segment(%q)", seg)
		if i < len(n.Holes) {
			p.child(n.Holes[i])
		}
	}
	p.indent--
}
func (p *TreePrinter) VisitCharLiteral(n *ast.CharLiteral) { p.line("CharLiteral(%q)", n.Value) }
func (p *TreePrinter) VisitBooleanLiteral(n *ast.BooleanLiteral) {
	p.line("BooleanLiteral(%v)", n.Value)
}
func (p *TreePrinter) VisitNullLiteral(n *ast.NullLiteral)       { p.line("NullLiteral") }
func (p *TreePrinter) VisitSelfExpression(n *ast.SelfExpression) { p.line("SelfExpression") }

func (p *TreePrinter) VisitTupleLiteral(n *ast.TupleLiteral) {
	p.line("TupleLiteral")
	p.indent++
	for _, e := range n.Elements {
		p.child(e)
	}
	p.indent--
}

func (p *TreePrinter) VisitArrayLiteral(n *ast.ArrayLiteral) {
	p.line("ArrayLiteral")
	p.indent++
	for _, e := range n.Elements {
		p.child(e)
	}
	p.indent--
}

func (p *TreePrinter) VisitMapLiteral(n *ast.MapLiteral) {
	p.line("MapLiteral")
	p.indent++
	for _, e := range n.Entries {
		p.child(e.Key)
		p.child(e.Value)
	}
	p.indent--
}

func (p *TreePrinter) VisitSetLiteral(n *ast.SetLiteral) {
	p.line("SetLiteral")
	p.indent++
	for _, e := range n.Elements {
		p.child(e)
	}
	p.indent--
}

func (p *TreePrinter) VisitObjectLiteral(n *ast.ObjectLiteral) {
	p.line("ObjectLiteral")
	p.indent++
	for _, f := range n.Fields {
		p.line("Field(%s)", f.Name.Name)
		p.child(f.Value)
	}
	p.indent--
}

func (p *TreePrinter) VisitPrefixExpression(n *ast.PrefixExpression) {
	p.line("PrefixExpression(%s)", n.Operator)
	p.child(n.Operand)
}

func (p *TreePrinter) VisitInfixExpression(n *ast.InfixExpression) {
	p.line("InfixExpression(%s)", n.Operator)
	p.children(n.Left, n.Right)
}

func (p *TreePrinter) VisitAssignExpression(n *ast.AssignExpression) {
	p.line("AssignExpression(%s)", n.Operator)
	p.children(n.Target, n.Value)
}

func (p *TreePrinter) VisitTernaryExpression(n *ast.TernaryExpression) {
	p.line("TernaryExpression")
	p.indent++
	p.line("cond:")
	p.child(n.Condition)
	p.line("then:")
	p.child(n.Then)
	if n.Else != nil {
		p.line("else:")
		p.child(n.Else)
	}
	p.indent--
}

func (p *TreePrinter) VisitHasExpression(n *ast.HasExpression) {
	p.line("HasExpression")
	p.children(n.Subject, n.Trait)
}

func (p *TreePrinter) VisitDerivesExpression(n *ast.DerivesExpression) {
	p.line("DerivesExpression")
	p.children(n.Subject, n.Trait)
}

func (p *TreePrinter) VisitCallExpression(n *ast.CallExpression) {
	p.line("CallExpression")
	p.indent++
	p.child(n.Callee)
	for _, g := range n.Generics {
		p.child(g)
	}
	for _, a := range n.Arguments {
		p.child(a)
	}
	p.indent--
}

func (p *TreePrinter) VisitIndexExpression(n *ast.IndexExpression) {
	p.line("IndexExpression")
	p.children(n.Target, n.Index)
}

func (p *TreePrinter) VisitMemberExpression(n *ast.MemberExpression) {
	p.line("MemberExpression(.%s)", n.Member.Name)
	p.child(n.Target)
}

func (p *TreePrinter) VisitScopeExpression(n *ast.ScopeExpression) {
	p.line("ScopeExpression(::%s)", n.Member.Name)
	p.child(n.Target)
}

func (p *TreePrinter) VisitGenericInvocation(n *ast.GenericInvocation) {
	p.line("GenericInvocation")
	p.indent++
	p.child(n.Callee)
	for _, a := range n.Args {
		p.child(a)
	}
	p.indent--
}

func (p *TreePrinter) VisitSpreadExpression(n *ast.SpreadExpression) {
	p.line("SpreadExpression")
	p.child(n.Operand)
}

func (p *TreePrinter) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	p.line("FunctionLiteral")
	p.indent++
	p.printParams(n.Params)
	p.child(n.Body)
	p.indent--
}

func (p *TreePrinter) VisitIfExpression(n *ast.IfExpression) {
	p.line("IfExpression")
	p.indent++
	p.child(n.Condition)
	p.child(n.Then)
	if n.Else != nil {
		p.child(n.Else)
	}
	p.indent--
}

func (p *TreePrinter) VisitExpressionStatement(n *ast.ExpressionStatement) {
	p.line("ExpressionStatement")
	p.child(n.Expr)
}

func (p *TreePrinter) VisitBlockStatement(n *ast.BlockStatement) {
	p.line("Block")
	p.indent++
	for _, s := range n.Statements {
		s.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitIfStatement(n *ast.IfStatement) {
	kw := "If"
	if n.Unless {
		kw = "Unless"
	}
	p.line("%sStatement", kw)
	p.indent++
	p.child(n.Condition)
	p.child(n.Then)
	if n.Else != nil {
		n.Else.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitForStatement(n *ast.ForStatement) {
	if n.CStyle {
		p.line("ForStatement(c-style)")
		p.indent++
		if n.Init != nil {
			n.Init.Accept(p)
		}
		p.child(n.Cond)
		if n.Update != nil {
			n.Update.Accept(p)
		}
		p.child(n.Body)
		p.indent--
		return
	}
	p.line("ForStatement(in)")
	p.indent++
	p.child(n.Var)
	p.child(n.Iterable)
	p.child(n.Body)
	p.indent--
}

func (p *TreePrinter) VisitWhileStatement(n *ast.WhileStatement) {
	p.line("WhileStatement")
	p.indent++
	p.child(n.Condition)
	p.child(n.Body)
	p.indent--
}

func (p *TreePrinter) VisitSwitchStatement(n *ast.SwitchStatement) {
	p.line("SwitchStatement")
	p.indent++
	p.child(n.Subject)
	for _, c := range n.Cases {
		if c.IsDefault {
			p.line("default:")
		} else {
			p.line("case:")
		}
		p.indent++
		for _, v := range c.Values {
			p.child(v)
		}
		for _, s := range c.Body {
			s.Accept(p)
		}
		p.indent--
	}
	p.indent--
}

func (p *TreePrinter) VisitBreakStatement(n *ast.BreakStatement)       { p.line("BreakStatement") }
func (p *TreePrinter) VisitContinueStatement(n *ast.ContinueStatement) { p.line("ContinueStatement") }
func (p *TreePrinter) VisitReturnStatement(n *ast.ReturnStatement) {
	p.line("ReturnStatement")
	p.child(n.Value)
}
func (p *TreePrinter) VisitYieldStatement(n *ast.YieldStatement) {
	p.line("YieldStatement")
	p.child(n.Value)
}
func (p *TreePrinter) VisitDeleteStatement(n *ast.DeleteStatement) {
	p.line("DeleteStatement")
	p.child(n.Target)
}

func (p *TreePrinter) VisitTryStatement(n *ast.TryStatement) {
	p.line("TryStatement")
	p.indent++
	p.child(n.Body)
	for _, c := range n.Catches {
		p.line("catch(%s)", c.Name.Name)
		p.child(c.Body)
	}
	if n.Finally != nil {
		p.line("finally:")
		p.child(n.Finally)
	}
	p.indent--
}

func (p *TreePrinter) VisitPanicStatement(n *ast.PanicStatement) {
	p.line("PanicStatement")
	p.child(n.Value)
}

func (p *TreePrinter) VisitImportStatement(n *ast.ImportStatement) {
	path := ""
	if n.Path != nil {
		path = n.Path.Value
	}
	p.line("ImportStatement(%q)", path)
}

func (p *TreePrinter) VisitModuleStatement(n *ast.ModuleStatement) {
	p.line("ModuleStatement(%s)", n.Name.Name)
	p.child(n.Body)
}

func (p *TreePrinter) printParams(params []ast.Param) {
	for _, prm := range params {
		switch {
		case prm.IsSelf:
			p.line("Param(self)")
		default:
			p.line("Param(%s)", prm.Name.Name)
			p.indent++
			p.child(prm.Type)
			p.child(prm.Default)
			p.indent--
		}
	}
}

func (p *TreePrinter) visitDeclHeader(kind, name string, mods *ast.Modifiers) {
	access := mods.AccessLevel()
	if access == "" {
		access = "default"
	}
	p.line("%s(%s, access=%s)", kind, name, access)
}

func (p *TreePrinter) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	p.visitDeclHeader("FunctionDeclaration", n.Name.Name, n.Modifiers)
	p.indent++
	p.printParams(n.Params)
	p.child(n.ReturnType)
	p.child(n.Body)
	p.indent--
}

func (p *TreePrinter) VisitLetDeclaration(n *ast.LetDeclaration) {
	p.visitDeclHeader("LetDeclaration", n.Name.Name, n.Modifiers)
	p.indent++
	p.child(n.Type)
	p.child(n.Value)
	p.indent--
}

func (p *TreePrinter) VisitConstDeclaration(n *ast.ConstDeclaration) {
	p.visitDeclHeader("ConstDeclaration", n.Name.Name, n.Modifiers)
	p.indent++
	p.child(n.Type)
	p.child(n.Value)
	p.indent--
}

func (p *TreePrinter) VisitClassDeclaration(n *ast.ClassDeclaration) {
	p.visitDeclHeader("ClassDeclaration", n.Name.Name, n.Modifiers)
	p.indent++
	for _, d := range n.Derives {
		p.line("derives(%s)", d.Access)
		p.child(d.Trait)
	}
	for _, f := range n.Fields {
		p.line("Field(%s)", f.Name.Name)
		p.child(f.Type)
	}
	for _, m := range n.Methods {
		m.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitStructDeclaration(n *ast.StructDeclaration) {
	p.visitDeclHeader("StructDeclaration", n.Name.Name, n.Modifiers)
	p.indent++
	for _, f := range n.Fields {
		p.line("Field(%s)", f.Name.Name)
		p.child(f.Type)
	}
	p.indent--
}

func (p *TreePrinter) VisitEnumDeclaration(n *ast.EnumDeclaration) {
	p.visitDeclHeader("EnumDeclaration", n.Name.Name, n.Modifiers)
	p.indent++
	for _, m := range n.Members {
		p.line("Member(%s)", m.Name.Name)
		p.child(m.Value)
	}
	p.indent--
}

func (p *TreePrinter) VisitInterfaceDeclaration(n *ast.InterfaceDeclaration) {
	p.visitDeclHeader("InterfaceDeclaration", n.Name.Name, n.Modifiers)
	p.indent++
	for _, m := range n.Methods {
		m.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitTypeAliasDeclaration(n *ast.TypeAliasDeclaration) {
	p.visitDeclHeader("TypeAliasDeclaration", n.Name.Name, n.Modifiers)
	p.child(n.Aliased)
}

func (p *TreePrinter) VisitFFIDeclaration(n *ast.FFIDeclaration) {
	p.line("FFIDeclaration(abi=%s)", n.ABI)
	p.indent++
	for _, s := range n.Body {
		s.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitOperatorDeclaration(n *ast.OperatorDeclaration) {
	p.visitDeclHeader("OperatorDeclaration", n.Symbol, n.Modifiers)
	p.indent++
	p.printParams(n.Params)
	p.child(n.Body)
	p.indent--
}

func (p *TreePrinter) VisitModuleDeclaration(n *ast.ModuleDeclaration) {
	names := make([]string, len(n.Path))
	for i, id := range n.Path {
		names[i] = id.Name
	}
	p.line("ModuleDeclaration(%s)", strings.Join(names, "::"))
}

func (p *TreePrinter) VisitNamedType(n *ast.NamedType) {
	p.line("NamedType(%s)", strings.Join(n.Path, "::"))
}

func (p *TreePrinter) VisitGenericType(n *ast.GenericType) {
	p.line("GenericType")
	p.indent++
	p.child(n.Base)
	for _, a := range n.Args {
		p.child(a)
	}
	p.indent--
}

func (p *TreePrinter) VisitPointerType(n *ast.PointerType) {
	kind := "*"
	if n.Reference {
		kind = "&"
	}
	p.line("PointerType(%s)", kind)
	p.child(n.Elem)
}

func (p *TreePrinter) VisitArrayType(n *ast.ArrayType) {
	p.line("ArrayType")
	p.indent++
	p.child(n.Elem)
	p.child(n.Size)
	p.indent--
}

func (p *TreePrinter) VisitTupleType(n *ast.TupleType) {
	p.line("TupleType")
	p.indent++
	for _, e := range n.Elements {
		p.child(e)
	}
	p.indent--
}

func (p *TreePrinter) VisitFunctionType(n *ast.FunctionType) {
	p.line("FunctionType")
	p.indent++
	for _, prm := range n.Params {
		p.child(prm)
	}
	p.child(n.Result)
	p.indent--
}
