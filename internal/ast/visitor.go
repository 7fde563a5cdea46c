package ast

// Visitor is implemented by anything that walks a tree produced by
// this package: the CX-IR emitter (§4.9) and the readable pretty
// printer both implement it instead of type-switching on Node.
type Visitor interface {
	VisitProgram(n *Program)

	// Expressions.
	VisitIdentifier(n *Identifier)
	VisitIntegerLiteral(n *IntegerLiteral)
	VisitFloatLiteral(n *FloatLiteral)
	VisitStringLiteral(n *StringLiteral)
	VisitInterpolatedString(n *InterpolatedString)
	VisitCharLiteral(n *CharLiteral)
	VisitBooleanLiteral(n *BooleanLiteral)
	VisitNullLiteral(n *NullLiteral)
	VisitSelfExpression(n *SelfExpression)
	VisitTupleLiteral(n *TupleLiteral)
	VisitArrayLiteral(n *ArrayLiteral)
	VisitMapLiteral(n *MapLiteral)
	VisitSetLiteral(n *SetLiteral)
	VisitObjectLiteral(n *ObjectLiteral)
	VisitPrefixExpression(n *PrefixExpression)
	VisitInfixExpression(n *InfixExpression)
	VisitAssignExpression(n *AssignExpression)
	VisitTernaryExpression(n *TernaryExpression)
	VisitHasExpression(n *HasExpression)
	VisitDerivesExpression(n *DerivesExpression)
	VisitCallExpression(n *CallExpression)
	VisitIndexExpression(n *IndexExpression)
	VisitMemberExpression(n *MemberExpression)
	VisitScopeExpression(n *ScopeExpression)
	VisitGenericInvocation(n *GenericInvocation)
	VisitSpreadExpression(n *SpreadExpression)
	VisitFunctionLiteral(n *FunctionLiteral)
	VisitIfExpression(n *IfExpression)

	// Statements.
	VisitExpressionStatement(n *ExpressionStatement)
	VisitBlockStatement(n *BlockStatement)
	VisitIfStatement(n *IfStatement)
	VisitForStatement(n *ForStatement)
	VisitWhileStatement(n *WhileStatement)
	VisitSwitchStatement(n *SwitchStatement)
	VisitBreakStatement(n *BreakStatement)
	VisitContinueStatement(n *ContinueStatement)
	VisitReturnStatement(n *ReturnStatement)
	VisitYieldStatement(n *YieldStatement)
	VisitDeleteStatement(n *DeleteStatement)
	VisitTryStatement(n *TryStatement)
	VisitPanicStatement(n *PanicStatement)
	VisitImportStatement(n *ImportStatement)
	VisitModuleStatement(n *ModuleStatement)

	// Declarations.
	VisitFunctionDeclaration(n *FunctionDeclaration)
	VisitLetDeclaration(n *LetDeclaration)
	VisitConstDeclaration(n *ConstDeclaration)
	VisitClassDeclaration(n *ClassDeclaration)
	VisitStructDeclaration(n *StructDeclaration)
	VisitEnumDeclaration(n *EnumDeclaration)
	VisitInterfaceDeclaration(n *InterfaceDeclaration)
	VisitTypeAliasDeclaration(n *TypeAliasDeclaration)
	VisitFFIDeclaration(n *FFIDeclaration)
	VisitOperatorDeclaration(n *OperatorDeclaration)
	VisitModuleDeclaration(n *ModuleDeclaration)

	// Types.
	VisitNamedType(n *NamedType)
	VisitGenericType(n *GenericType)
	VisitPointerType(n *PointerType)
	VisitArrayType(n *ArrayType)
	VisitTupleType(n *TupleType)
	VisitFunctionType(n *FunctionType)
}

// BaseVisitor implements every Visitor method as a no-op so a partial
// visitor (one that only cares about a handful of node kinds, such as
// an import-collecting pass) can embed it and override selectively.
type BaseVisitor struct{}

func (BaseVisitor) VisitProgram(n *Program) {}

func (BaseVisitor) VisitIdentifier(n *Identifier)                 {}
func (BaseVisitor) VisitIntegerLiteral(n *IntegerLiteral)         {}
func (BaseVisitor) VisitFloatLiteral(n *FloatLiteral)             {}
func (BaseVisitor) VisitStringLiteral(n *StringLiteral)           {}
func (BaseVisitor) VisitInterpolatedString(n *InterpolatedString) {}
func (BaseVisitor) VisitCharLiteral(n *CharLiteral)               {}
func (BaseVisitor) VisitBooleanLiteral(n *BooleanLiteral)         {}
func (BaseVisitor) VisitNullLiteral(n *NullLiteral)               {}
func (BaseVisitor) VisitSelfExpression(n *SelfExpression)         {}
func (BaseVisitor) VisitTupleLiteral(n *TupleLiteral)             {}
func (BaseVisitor) VisitArrayLiteral(n *ArrayLiteral)             {}
func (BaseVisitor) VisitMapLiteral(n *MapLiteral)                 {}
func (BaseVisitor) VisitSetLiteral(n *SetLiteral)                 {}
func (BaseVisitor) VisitObjectLiteral(n *ObjectLiteral)           {}
func (BaseVisitor) VisitPrefixExpression(n *PrefixExpression)     {}
func (BaseVisitor) VisitInfixExpression(n *InfixExpression)       {}
func (BaseVisitor) VisitAssignExpression(n *AssignExpression)     {}
func (BaseVisitor) VisitTernaryExpression(n *TernaryExpression)   {}
func (BaseVisitor) VisitHasExpression(n *HasExpression)           {}
func (BaseVisitor) VisitDerivesExpression(n *DerivesExpression)   {}
func (BaseVisitor) VisitCallExpression(n *CallExpression)         {}
func (BaseVisitor) VisitIndexExpression(n *IndexExpression)       {}
func (BaseVisitor) VisitMemberExpression(n *MemberExpression)     {}
func (BaseVisitor) VisitScopeExpression(n *ScopeExpression)       {}
func (BaseVisitor) VisitGenericInvocation(n *GenericInvocation)   {}
func (BaseVisitor) VisitSpreadExpression(n *SpreadExpression)     {}
func (BaseVisitor) VisitFunctionLiteral(n *FunctionLiteral)       {}
func (BaseVisitor) VisitIfExpression(n *IfExpression)             {}

func (BaseVisitor) VisitExpressionStatement(n *ExpressionStatement) {}
func (BaseVisitor) VisitBlockStatement(n *BlockStatement)           {}
func (BaseVisitor) VisitIfStatement(n *IfStatement)                 {}
func (BaseVisitor) VisitForStatement(n *ForStatement)               {}
func (BaseVisitor) VisitWhileStatement(n *WhileStatement)           {}
func (BaseVisitor) VisitSwitchStatement(n *SwitchStatement)         {}
func (BaseVisitor) VisitBreakStatement(n *BreakStatement)           {}
func (BaseVisitor) VisitContinueStatement(n *ContinueStatement)     {}
func (BaseVisitor) VisitReturnStatement(n *ReturnStatement)         {}
func (BaseVisitor) VisitYieldStatement(n *YieldStatement)           {}
func (BaseVisitor) VisitDeleteStatement(n *DeleteStatement)         {}
func (BaseVisitor) VisitTryStatement(n *TryStatement)               {}
func (BaseVisitor) VisitPanicStatement(n *PanicStatement)           {}
func (BaseVisitor) VisitImportStatement(n *ImportStatement)         {}
func (BaseVisitor) VisitModuleStatement(n *ModuleStatement)         {}

func (BaseVisitor) VisitFunctionDeclaration(n *FunctionDeclaration)   {}
func (BaseVisitor) VisitLetDeclaration(n *LetDeclaration)             {}
func (BaseVisitor) VisitConstDeclaration(n *ConstDeclaration)         {}
func (BaseVisitor) VisitClassDeclaration(n *ClassDeclaration)         {}
func (BaseVisitor) VisitStructDeclaration(n *StructDeclaration)       {}
func (BaseVisitor) VisitEnumDeclaration(n *EnumDeclaration)           {}
func (BaseVisitor) VisitInterfaceDeclaration(n *InterfaceDeclaration) {}
func (BaseVisitor) VisitTypeAliasDeclaration(n *TypeAliasDeclaration) {}
func (BaseVisitor) VisitFFIDeclaration(n *FFIDeclaration)             {}
func (BaseVisitor) VisitOperatorDeclaration(n *OperatorDeclaration)   {}
func (BaseVisitor) VisitModuleDeclaration(n *ModuleDeclaration)       {}

func (BaseVisitor) VisitNamedType(n *NamedType)       {}
func (BaseVisitor) VisitGenericType(n *GenericType)   {}
func (BaseVisitor) VisitPointerType(n *PointerType)   {}
func (BaseVisitor) VisitArrayType(n *ArrayType)       {}
func (BaseVisitor) VisitTupleType(n *TupleType)       {}
func (BaseVisitor) VisitFunctionType(n *FunctionType) {}
