package ast_test

import (
	"testing"

	"github.com/cxlang/cxc/internal/ast"
	"github.com/cxlang/cxc/internal/token"
)

type identCollector struct {
	ast.BaseVisitor
	names []string
}

func (c *identCollector) VisitIdentifier(n *ast.Identifier) {
	c.names = append(c.names, n.Name)
}

func (c *identCollector) VisitInfixExpression(n *ast.InfixExpression) {
	n.Left.Accept(c)
	n.Right.Accept(c)
}

func TestVisitorWalksInfixOperands(t *testing.T) {
	left := &ast.Identifier{Name: "a"}
	right := &ast.Identifier{Name: "b"}
	expr := &ast.InfixExpression{Operator: "+", Left: left, Right: right}

	c := &identCollector{}
	expr.Accept(c)

	if len(c.names) != 2 || c.names[0] != "a" || c.names[1] != "b" {
		t.Fatalf("names = %v, want [a b]", c.names)
	}
}

func TestModifiersRejectsWrongCategory(t *testing.T) {
	m := ast.NewModifiers(ast.CategoryAccess)
	if res := m.Add(token.Bare(token.KeywordStatic, "static")); res != "category" {
		t.Fatalf("Add(static) on access-only bag = %q, want \"category\"", res)
	}
}

func TestModifiersRejectsDuplicate(t *testing.T) {
	m := ast.NewModifiers(ast.CategoryAccess)
	if res := m.Add(token.Bare(token.KeywordPublic, "public")); res != "" {
		t.Fatalf("first Add(public) = %q, want success", res)
	}
	if res := m.Add(token.Bare(token.KeywordPublic, "public")); res != "duplicate" {
		t.Fatalf("second Add(public) = %q, want \"duplicate\"", res)
	}
}

func TestModifiersAccessLevel(t *testing.T) {
	m := ast.NewModifiers(ast.CategoryAccess, ast.CategoryFunctionSpecifier)
	m.Add(token.Bare(token.KeywordStatic, "static"))
	m.Add(token.Bare(token.KeywordPrivate, "private"))
	if got := m.AccessLevel(); got != "private" {
		t.Fatalf("AccessLevel() = %q, want \"private\"", got)
	}
	if !m.Has("static") {
		t.Fatalf("Has(\"static\") = false, want true")
	}
}
