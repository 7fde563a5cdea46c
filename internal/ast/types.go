package ast

func (*NamedType) typeNode()    {}
func (*GenericType) typeNode()  {}
func (*PointerType) typeNode()  {}
func (*ArrayType) typeNode()    {}
func (*TupleType) typeNode()    {}
func (*FunctionType) typeNode() {}

// NamedType is a bare or scoped type name: `Int`, `my_mod::Shape`.
type NamedType struct {
	base
	Path []string
}

func (n *NamedType) Accept(v Visitor) { v.VisitNamedType(n) }

// GenericType is `Name<Arg1, Arg2>`.
type GenericType struct {
	base
	Base Type
	Args []Type
}

func (n *GenericType) Accept(v Visitor) { v.VisitGenericType(n) }

// PointerType is `*T` or `&T`.
type PointerType struct {
	base
	Reference bool // true for `&T`, false for `*T`
	Elem      Type
}

func (n *PointerType) Accept(v Visitor) { v.VisitPointerType(n) }

// ArrayType is `[T]` or `[T; N]`.
type ArrayType struct {
	base
	Elem Type
	Size Expression // nil for a slice/dynamic array
}

func (n *ArrayType) Accept(v Visitor) { v.VisitArrayType(n) }

// TupleType is `(T1, T2, T3)` in type position.
type TupleType struct {
	base
	Elements []Type
}

func (n *TupleType) Accept(v Visitor) { v.VisitTupleType(n) }

// FunctionType is `fn(T1, T2) -> R` in type position.
type FunctionType struct {
	base
	Params []Type
	Result Type
}

func (n *FunctionType) Accept(v Visitor) { v.VisitFunctionType(n) }
