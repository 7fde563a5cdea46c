// Package ast defines the syntax tree produced by the parser (§4.7):
// five node categories — expressions, statements, declarations,
// types, and modifiers/annotations — each reachable through the
// shared Visitor protocol so later stages (the CX-IR emitter) can
// walk the tree without a type switch.
package ast

import "github.com/cxlang/cxc/internal/token"

// Node is the root interface every AST node satisfies. Pos and End
// delimit the token range the node covers in the original source,
// used for diagnostics and for the emitter's "readable" rendering.
type Node interface {
	Accept(v Visitor)
	Pos() token.Token
	End() token.Token
}

// Expression is a Node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a Node appearing in a block's statement list.
type Statement interface {
	Node
	statementNode()
}

// Declaration is a Statement that introduces a name at module or
// block scope. Every declaration also carries a Modifiers bag.
type Declaration interface {
	Statement
	declarationNode()
	DeclModifiers() *Modifiers
}

// Type is a Node appearing in type-annotation position.
type Type interface {
	Node
	typeNode()
}

// base holds the token range shared by every concrete node; embedding
// it satisfies Pos/End without repeating the two fields everywhere.
type base struct {
	StartTok token.Token
	EndTok   token.Token
}

func (b base) Pos() token.Token { return b.StartTok }
func (b base) End() token.Token { return b.EndTok }

// Program is the root of every tree the parser produces: a flat list
// of top-level declarations and statements in source order.
type Program struct {
	base
	Module  *ModuleDeclaration // nil if the file has no module statement
	Imports []*ImportStatement
	Decls   []Statement
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
