package ast

func (*ExpressionStatement) statementNode() {}
func (*BlockStatement) statementNode()      {}
func (*IfStatement) statementNode()         {}
func (*ForStatement) statementNode()        {}
func (*WhileStatement) statementNode()      {}
func (*SwitchStatement) statementNode()     {}
func (*BreakStatement) statementNode()      {}
func (*ContinueStatement) statementNode()   {}
func (*ReturnStatement) statementNode()     {}
func (*YieldStatement) statementNode()      {}
func (*DeleteStatement) statementNode()     {}
func (*TryStatement) statementNode()        {}
func (*PanicStatement) statementNode()      {}
func (*ImportStatement) statementNode()     {}
func (*ModuleStatement) statementNode()     {}

// ExpressionStatement wraps an expression evaluated for its side
// effect at statement position.
type ExpressionStatement struct {
	base
	Expr Expression
}

func (n *ExpressionStatement) Accept(v Visitor) { v.VisitExpressionStatement(n) }

// BlockStatement is a brace-delimited statement list; it also
// participates in namespace bookkeeping when it closes a `module`
// body (spec §4.8).
type BlockStatement struct {
	base
	Statements []Statement
}

func (n *BlockStatement) Accept(v Visitor) { v.VisitBlockStatement(n) }

// IfStatement is `if cond { ... } else ...` used at statement
// position (its Else may itself be an *IfStatement for an else-if
// chain, or a *BlockStatement, or nil).
type IfStatement struct {
	base
	Unless    bool // true for `unless cond { ... }` (negated condition)
	Condition Expression
	Then      *BlockStatement
	Else      Statement
}

func (n *IfStatement) Accept(v Visitor) { v.VisitIfStatement(n) }

// ForStatement covers both loop forms the parser disambiguates on the
// first semicolon's presence (spec §4.8's "for-loop duality"):
// Python-style (Var in Iterable) when CStyle is false, C-style
// (Init; Cond; Update) when CStyle is true.
type ForStatement struct {
	base
	CStyle bool

	// Python-style fields.
	Var      *Identifier
	Iterable Expression

	// C-style fields.
	Init   Statement
	Cond   Expression
	Update Statement

	Body *BlockStatement
}

func (n *ForStatement) Accept(v Visitor) { v.VisitForStatement(n) }

// WhileStatement is `while cond { ... }`.
type WhileStatement struct {
	base
	Condition Expression
	Body      *BlockStatement
}

func (n *WhileStatement) Accept(v Visitor) { v.VisitWhileStatement(n) }

// SwitchCase is one `case pattern: ...` or `default: ...` arm.
type SwitchCase struct {
	Values      []Expression // empty for `default`
	IsDefault   bool
	Body        []Statement
	Fallthrough bool
}

// SwitchStatement is `switch subject { case ...: ... default: ... }`.
type SwitchStatement struct {
	base
	Subject Expression
	Cases   []SwitchCase
}

func (n *SwitchStatement) Accept(v Visitor) { v.VisitSwitchStatement(n) }

// BreakStatement is `break` with an optional label (unused today but
// reserved for labeled loops).
type BreakStatement struct {
	base
	Label string
}

func (n *BreakStatement) Accept(v Visitor) { v.VisitBreakStatement(n) }

// ContinueStatement is `continue`.
type ContinueStatement struct {
	base
	Label string
}

func (n *ContinueStatement) Accept(v Visitor) { v.VisitContinueStatement(n) }

// ReturnStatement is `return expr?`.
type ReturnStatement struct {
	base
	Value Expression // nil for a bare `return`
}

func (n *ReturnStatement) Accept(v Visitor) { v.VisitReturnStatement(n) }

// YieldStatement is `yield expr` inside an async/generator body.
type YieldStatement struct {
	base
	Value Expression
}

func (n *YieldStatement) Accept(v Visitor) { v.VisitYieldStatement(n) }

// DeleteStatement is `delete expr`.
type DeleteStatement struct {
	base
	Target Expression
}

func (n *DeleteStatement) Accept(v Visitor) { v.VisitDeleteStatement(n) }

// CatchClause is one `catch (name: Type) { ... }` arm.
type CatchClause struct {
	Name *Identifier
	Type Type
	Body *BlockStatement
}

// TryStatement is `try { ... } catch (...) { ... } finally { ... }`.
type TryStatement struct {
	base
	Body    *BlockStatement
	Catches []CatchClause
	Finally *BlockStatement
}

func (n *TryStatement) Accept(v Visitor) { v.VisitTryStatement(n) }

// PanicStatement is `panic expr`.
type PanicStatement struct {
	base
	Value Expression
}

func (n *PanicStatement) Accept(v Visitor) { v.VisitPanicStatement(n) }

// ImportSpec narrows an import to specific symbols, an exclusion
// list, or a wildcard; exactly one of these is populated.
type ImportSpec struct {
	Symbols   []*Identifier
	Exclude   []*Identifier
	ImportAll bool
}

// ImportStatement is `import "path" [as alias] [(a, b)] [!(c, d)]`.
// An import inside a block parses like any other statement and stays
// in that block; only program-level imports are collected into
// Program.Imports.
type ImportStatement struct {
	base
	Path  *StringLiteral
	Alias *Identifier
	Spec  ImportSpec
}

func (n *ImportStatement) Accept(v Visitor) { v.VisitImportStatement(n) }

// ModuleStatement opens or is implied by a `module name { ... }`
// block; the preprocessor and parser both track a namespace stack
// keyed to brace depth (spec §4.6, §4.8).
type ModuleStatement struct {
	base
	Name *Identifier
	Body *BlockStatement
}

func (n *ModuleStatement) Accept(v Visitor) { v.VisitModuleStatement(n) }
