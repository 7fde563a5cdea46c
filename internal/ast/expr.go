package ast

import "github.com/cxlang/cxc/internal/token"

func (*Identifier) expressionNode()            {}
func (*IntegerLiteral) expressionNode()        {}
func (*FloatLiteral) expressionNode()          {}
func (*StringLiteral) expressionNode()         {}
func (*InterpolatedString) expressionNode()    {}
func (*CharLiteral) expressionNode()           {}
func (*BooleanLiteral) expressionNode()        {}
func (*NullLiteral) expressionNode()           {}
func (*SelfExpression) expressionNode()        {}
func (*TupleLiteral) expressionNode()          {}
func (*ArrayLiteral) expressionNode()          {}
func (*MapLiteral) expressionNode()            {}
func (*SetLiteral) expressionNode()            {}
func (*ObjectLiteral) expressionNode()         {}
func (*PrefixExpression) expressionNode()      {}
func (*InfixExpression) expressionNode()       {}
func (*AssignExpression) expressionNode()      {}
func (*TernaryExpression) expressionNode()     {}
func (*HasExpression) expressionNode()         {}
func (*DerivesExpression) expressionNode()     {}
func (*CallExpression) expressionNode()        {}
func (*IndexExpression) expressionNode()       {}
func (*MemberExpression) expressionNode()      {}
func (*ScopeExpression) expressionNode()       {}
func (*GenericInvocation) expressionNode()     {}
func (*SpreadExpression) expressionNode()      {}
func (*FunctionLiteral) expressionNode()       {}
func (*IfExpression) expressionNode()          {}

// Identifier is a bare name reference.
type Identifier struct {
	base
	Name string
}

func (n *Identifier) Accept(v Visitor) { v.VisitIdentifier(n) }

// IntegerLiteral is a decimal, hex, octal, or binary integer constant.
type IntegerLiteral struct {
	base
	Raw   string
	Value int64
}

func (n *IntegerLiteral) Accept(v Visitor) { v.VisitIntegerLiteral(n) }

// FloatLiteral is a floating-point constant.
type FloatLiteral struct {
	base
	Raw   string
	Value float64
}

func (n *FloatLiteral) Accept(v Visitor) { v.VisitFloatLiteral(n) }

// StringLiteral is a plain (non-interpolated) string, carrying its
// ABI prefix ("", "r", "b", "u") if any.
type StringLiteral struct {
	base
	Prefix string
	Value  string
}

func (n *StringLiteral) Accept(v Visitor) { v.VisitStringLiteral(n) }

// InterpolatedString is an f-prefixed string split into literal text
// segments and embedded expression holes, in source order.
type InterpolatedString struct {
	base
	Segments []string
	Holes    []Expression
}

func (n *InterpolatedString) Accept(v Visitor) { v.VisitInterpolatedString(n) }

// CharLiteral is a single-quoted character constant.
type CharLiteral struct {
	base
	Value rune
}

func (n *CharLiteral) Accept(v Visitor) { v.VisitCharLiteral(n) }

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	base
	Value bool
}

func (n *BooleanLiteral) Accept(v Visitor) { v.VisitBooleanLiteral(n) }

// NullLiteral is the `null` literal.
type NullLiteral struct{ base }

func (n *NullLiteral) Accept(v Visitor) { v.VisitNullLiteral(n) }

// SelfExpression is the `self` keyword used as a value; the emitter
// lowers it to `(*this)` (spec §4.9).
type SelfExpression struct{ base }

func (n *SelfExpression) Accept(v Visitor) { v.VisitSelfExpression(n) }

// TupleLiteral is `(a, b, c)` with two or more elements.
type TupleLiteral struct {
	base
	Elements []Expression
}

func (n *TupleLiteral) Accept(v Visitor) { v.VisitTupleLiteral(n) }

// ArrayLiteral is `[a, b, c]`.
type ArrayLiteral struct {
	base
	Elements []Expression
}

func (n *ArrayLiteral) Accept(v Visitor) { v.VisitArrayLiteral(n) }

// MapEntry is one `key: value` pair inside a MapLiteral.
type MapEntry struct {
	Key   Expression
	Value Expression
}

// MapLiteral is `{k1: v1, k2: v2}`.
type MapLiteral struct {
	base
	Entries []MapEntry
}

func (n *MapLiteral) Accept(v Visitor) { v.VisitMapLiteral(n) }

// SetLiteral is `{a, b, c}` (braces with no colon after the first
// element).
type SetLiteral struct {
	base
	Elements []Expression
}

func (n *SetLiteral) Accept(v Visitor) { v.VisitSetLiteral(n) }

// ObjectField is one `.field: value` pair inside an ObjectLiteral.
type ObjectField struct {
	Name  *Identifier
	Value Expression
}

// ObjectLiteral is `{.field1: v1, .field2: v2}`, distinguished from
// MapLiteral by the leading `.` on its first entry (spec §4.8).
type ObjectLiteral struct {
	base
	Type   Type // optional explicit type before the brace
	Fields []ObjectField
}

func (n *ObjectLiteral) Accept(v Visitor) { v.VisitObjectLiteral(n) }

// PrefixExpression is a unary operator applied to an operand:
// `-x`, `!x`, `~x`.
type PrefixExpression struct {
	base
	Operator string
	Operand  Expression
}

func (n *PrefixExpression) Accept(v Visitor) { v.VisitPrefixExpression(n) }

// InfixExpression is a binary operator application, always
// left-associative at its own precedence level (spec §4.8).
type InfixExpression struct {
	base
	Operator string
	Left     Expression
	Right    Expression
}

func (n *InfixExpression) Accept(v Visitor) { v.VisitInfixExpression(n) }

// AssignExpression is `lhs op= rhs` for `=`, `+=`, `-=`, `*=`, `/=`,
// `%=`.
type AssignExpression struct {
	base
	Operator string
	Target   Expression
	Value    Expression
}

func (n *AssignExpression) Accept(v Visitor) { v.VisitAssignExpression(n) }

// TernaryExpression is `then if cond else alt`.
type TernaryExpression struct {
	base
	Condition Expression
	Then      Expression
	Else      Expression
}

func (n *TernaryExpression) Accept(v Visitor) { v.VisitTernaryExpression(n) }

// HasExpression is the postfix `expr has Trait` constraint check.
type HasExpression struct {
	base
	Subject Expression
	Trait   Type
}

func (n *HasExpression) Accept(v Visitor) { v.VisitHasExpression(n) }

// DerivesExpression is the postfix `expr derives Trait` check.
type DerivesExpression struct {
	base
	Subject Expression
	Trait   Type
}

func (n *DerivesExpression) Accept(v Visitor) { v.VisitDerivesExpression(n) }

// CallExpression is `callee<Generics>(args...)`.
type CallExpression struct {
	base
	Callee    Expression
	Generics  []Type
	Arguments []Expression
}

func (n *CallExpression) Accept(v Visitor) { v.VisitCallExpression(n) }

// IndexExpression is `target[index]`.
type IndexExpression struct {
	base
	Target Expression
	Index  Expression
}

func (n *IndexExpression) Accept(v Visitor) { v.VisitIndexExpression(n) }

// MemberExpression is `target.member`.
type MemberExpression struct {
	base
	Target Expression
	Member *Identifier
}

func (n *MemberExpression) Accept(v Visitor) { v.VisitMemberExpression(n) }

// ScopeExpression is `target::member` (namespace/static access).
type ScopeExpression struct {
	base
	Target Expression
	Member *Identifier
}

func (n *ScopeExpression) Accept(v Visitor) { v.VisitScopeExpression(n) }

// GenericInvocation is an identifier applied to explicit type
// arguments without a call, e.g. `Box<Int>`, used where `<...>` was
// disambiguated as generics rather than a comparison (spec §4.8).
type GenericInvocation struct {
	base
	Callee Expression
	Args   []Type
}

func (n *GenericInvocation) Accept(v Visitor) { v.VisitGenericInvocation(n) }

// SpreadExpression is `...expr` inside a call argument list or array
// literal.
type SpreadExpression struct {
	base
	Operand Expression
}

func (n *SpreadExpression) Accept(v Visitor) { v.VisitSpreadExpression(n) }

// Param is one function parameter: a name, optional type, optional
// default, and two flags: IsSelf for a bare `self` parameter and
// IsVariadic for a `...name` parameter.
type Param struct {
	Name       *Identifier
	Type       Type
	Default    Expression
	IsSelf     bool
	IsVariadic bool
}

// FunctionLiteral is an anonymous function value: `fn (params) -> T { ... }`.
type FunctionLiteral struct {
	base
	Params     []Param
	ReturnType Type
	Body       *BlockStatement
}

func (n *FunctionLiteral) Accept(v Visitor) { v.VisitFunctionLiteral(n) }

// IfExpression is `if cond { ... } else { ... }` used in expression
// position (as opposed to IfStatement).
type IfExpression struct {
	base
	Condition Expression
	Then      *BlockStatement
	Else      Node // *BlockStatement or *IfExpression, nil if absent
}

func (n *IfExpression) Accept(v Visitor) { v.VisitIfExpression(n) }

// tok is a tiny helper constructor used by the parser to fill base
// ranges without repeating the two-field literal everywhere.
func tok(start, end token.Token) base {
	return base{StartTok: start, EndTok: end}
}
