package ast

func (*FunctionDeclaration) statementNode()   {}
func (*FunctionDeclaration) declarationNode() {}
func (*LetDeclaration) statementNode()        {}
func (*LetDeclaration) declarationNode()      {}
func (*ConstDeclaration) statementNode()      {}
func (*ConstDeclaration) declarationNode()    {}
func (*ClassDeclaration) statementNode()      {}
func (*ClassDeclaration) declarationNode()    {}
func (*StructDeclaration) statementNode()     {}
func (*StructDeclaration) declarationNode()   {}
func (*EnumDeclaration) statementNode()       {}
func (*EnumDeclaration) declarationNode()     {}
func (*InterfaceDeclaration) statementNode()  {}
func (*InterfaceDeclaration) declarationNode() {}
func (*TypeAliasDeclaration) statementNode()   {}
func (*TypeAliasDeclaration) declarationNode() {}
func (*FFIDeclaration) statementNode()         {}
func (*FFIDeclaration) declarationNode()       {}
func (*OperatorDeclaration) statementNode()    {}
func (*OperatorDeclaration) declarationNode()  {}
func (*ModuleDeclaration) statementNode()      {}
func (*ModuleDeclaration) declarationNode()    {}

func (n *FunctionDeclaration) DeclModifiers() *Modifiers  { return n.Modifiers }
func (n *LetDeclaration) DeclModifiers() *Modifiers       { return n.Modifiers }
func (n *ConstDeclaration) DeclModifiers() *Modifiers     { return n.Modifiers }
func (n *ClassDeclaration) DeclModifiers() *Modifiers     { return n.Modifiers }
func (n *StructDeclaration) DeclModifiers() *Modifiers    { return n.Modifiers }
func (n *EnumDeclaration) DeclModifiers() *Modifiers      { return n.Modifiers }
func (n *InterfaceDeclaration) DeclModifiers() *Modifiers { return n.Modifiers }
func (n *TypeAliasDeclaration) DeclModifiers() *Modifiers { return n.Modifiers }
func (n *FFIDeclaration) DeclModifiers() *Modifiers       { return n.Modifiers }
func (n *OperatorDeclaration) DeclModifiers() *Modifiers  { return n.Modifiers }
func (n *ModuleDeclaration) DeclModifiers() *Modifiers    { return n.Modifiers }

// FunctionDeclaration is `fn name(params) -> T { ... }` or, inside a
// class body with a `self` first parameter, a method.
type FunctionDeclaration struct {
	base
	Modifiers  *Modifiers
	Name       *Identifier
	Generics   []*Identifier
	Params     []Param
	ReturnType Type
	Body       *BlockStatement // nil for an interface's abstract signature
}

func (n *FunctionDeclaration) Accept(v Visitor) { v.VisitFunctionDeclaration(n) }

// LetDeclaration is `let name: T = expr;` (or a pattern binding).
type LetDeclaration struct {
	base
	Modifiers *Modifiers
	Name      *Identifier
	Type      Type // nil when inferred
	Value     Expression
}

func (n *LetDeclaration) Accept(v Visitor) { v.VisitLetDeclaration(n) }

// ConstDeclaration is `const NAME: T = expr;`.
type ConstDeclaration struct {
	base
	Modifiers *Modifiers
	Name      *Identifier
	Type      Type
	Value     Expression
}

func (n *ConstDeclaration) Accept(v Visitor) { v.VisitConstDeclaration(n) }

// Field is one member of a struct, class, or interface body.
type Field struct {
	Modifiers *Modifiers
	Name      *Identifier
	Type      Type
	Default   Expression
}

// DeriveClause is one entry in a class's `derives A, private B` list.
type DeriveClause struct {
	Access string // "", "public", "private", "protected"
	Trait  Type
}

// ClassDeclaration is `class Name<G> derives ... { fields, methods }`.
type ClassDeclaration struct {
	base
	Modifiers *Modifiers
	Name      *Identifier
	Generics  []*Identifier
	Derives   []DeriveClause
	Fields    []Field
	Methods   []*FunctionDeclaration
}

func (n *ClassDeclaration) Accept(v Visitor) { v.VisitClassDeclaration(n) }

// StructDeclaration is `struct Name<G> { fields }`.
type StructDeclaration struct {
	base
	Modifiers *Modifiers
	Name      *Identifier
	Generics  []*Identifier
	Fields    []Field
}

func (n *StructDeclaration) Accept(v Visitor) { v.VisitStructDeclaration(n) }

// EnumMember is one `Name` or `Name = expr` variant.
type EnumMember struct {
	Name  *Identifier
	Value Expression // nil if not explicitly assigned
}

// EnumDeclaration is `enum Name: Underlying { A, B = 2, C }`.
type EnumDeclaration struct {
	base
	Modifiers  *Modifiers
	Name       *Identifier
	Underlying Type // nil defaults to the emitter's native int width
	Members    []EnumMember
}

func (n *EnumDeclaration) Accept(v Visitor) { v.VisitEnumDeclaration(n) }

// InterfaceDeclaration is `interface Name<G> { fn sig(...) -> T; ... }`.
// Every member must be an abstract (body-less) function, or the
// emitter raises a diagnostic (spec §4.9).
type InterfaceDeclaration struct {
	base
	Modifiers *Modifiers
	Name      *Identifier
	Generics  []*Identifier
	Methods   []*FunctionDeclaration
}

func (n *InterfaceDeclaration) Accept(v Visitor) { v.VisitInterfaceDeclaration(n) }

// TypeAliasDeclaration is `type Name<G> = T;`.
type TypeAliasDeclaration struct {
	base
	Modifiers *Modifiers
	Name      *Identifier
	Generics  []*Identifier
	Aliased   Type
}

func (n *TypeAliasDeclaration) Accept(v Visitor) { v.VisitTypeAliasDeclaration(n) }

// FFIDeclaration is `ffi "abi" { ... }`: a block whose body is
// emitted close to verbatim under the named ABI (spec §4.6, §4.9).
type FFIDeclaration struct {
	base
	Modifiers *Modifiers
	ABI       string
	Body      []Statement
}

func (n *FFIDeclaration) Accept(v Visitor) { v.VisitFFIDeclaration(n) }

// OperatorDeclaration is `op "+" (params) -> T { ... }`, an operator
// overload lowered to a function plus a forwarding `operator` wrapper
// (spec §4.9).
type OperatorDeclaration struct {
	base
	Modifiers  *Modifiers
	Symbol     string
	Params     []Param
	ReturnType Type
	Body       *BlockStatement
}

func (n *OperatorDeclaration) Accept(v Visitor) { v.VisitOperatorDeclaration(n) }

// ModuleDeclaration is the `module a::b::c` prologue form that sets
// the ambient namespace for the rest of a file or block, distinct
// from ModuleStatement's braced-body form.
type ModuleDeclaration struct {
	base
	Modifiers *Modifiers
	Path      []*Identifier
}

func (n *ModuleDeclaration) Accept(v Visitor) { v.VisitModuleDeclaration(n) }
