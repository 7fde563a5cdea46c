package parser

import (
	"github.com/cxlang/cxc/internal/ast"
	"github.com/cxlang/cxc/internal/diagnostics"
	"github.com/cxlang/cxc/internal/token"
)

func (p *Parser) parseFunctionDeclaration() *ast.FunctionDeclaration {
	return p.parseFunctionDeclarationAs(false)
}

// parseFunctionDeclarationAs parses a `fn` declaration. isMethod gates
// the self-parameter rule (spec §4.8): a method must have exactly one
// of a `static` modifier or a `self` first parameter; having both is
// an error, having neither is tolerated with a synthesized `static`
// modifier so the emitter doesn't need to special-case it.
func (p *Parser) parseFunctionDeclarationAs(isMethod bool) *ast.FunctionDeclaration {
	start := p.cur
	mods := p.collectModifiers(ast.CategoryAccess, ast.CategoryFunctionSpecifier)
	p.expect(token.KeywordFn, "fn")
	name := p.parseIdentifier()

	var generics []*ast.Identifier
	if p.curIsValue(token.Operator, "<") {
		generics = p.parseGenericParams()
	}

	params := p.parseParamList()

	var ret ast.Type
	if p.curIsValue(token.Operator, "->") {
		p.advance()
		ret = p.parseType()
	}

	var body *ast.BlockStatement
	if p.curIsValue(token.Punctuation, "{") {
		body = p.parseBlock()
	} else if p.curIsValue(token.Punctuation, ";") {
		p.advance()
	} else {
		p.errorf(diagnostics.CodeMissingBlock, name.Name)
	}

	if isMethod {
		p.applySelfParamRule(mods, params)
	}

	node := &ast.FunctionDeclaration{
		Modifiers:  mods,
		Name:       name,
		Generics:   generics,
		Params:     params,
		ReturnType: ret,
		Body:       body,
	}
	node.StartTok, node.EndTok = start, p.prev
	return node
}

// applySelfParamRule enforces that a method declares self-ness exactly
// one way. Neither static nor self is accepted with a synthesized
// static modifier rather than failing the parse, since the emitter
// needs a definite answer either way.
func (p *Parser) applySelfParamRule(mods *ast.Modifiers, params []ast.Param) {
	hasSelf := len(params) > 0 && params[0].IsSelf
	isStatic := mods.Has("static")
	switch {
	case hasSelf && isStatic:
		p.errorAt(params[0].Name.Pos(), diagnostics.CodeSelfStaticConflict, "static")
	case !hasSelf && !isStatic:
		mods.Add(token.Bare(token.KeywordStatic, "static"))
	}
}

func (p *Parser) parseGenericParams() []*ast.Identifier {
	p.advance() // '<'
	var out []*ast.Identifier
	for !p.curIsValue(token.Operator, ">") && !p.curIs(token.EOF) {
		out = append(out, p.parseIdentifier())
		if p.curIsValue(token.Punctuation, ",") {
			p.advance()
		}
	}
	if p.curIsValue(token.Operator, ">") {
		p.advance()
	} else {
		p.expect(token.Punctuation, ">")
	}
	return out
}

func (p *Parser) parseParamList() []ast.Param {
	p.expect(token.Punctuation, "(")
	var params []ast.Param
	for !p.curIsValue(token.Punctuation, ")") && !p.curIs(token.EOF) {
		params = append(params, p.parseParam())
		if p.curIsValue(token.Punctuation, ",") {
			p.advance()
		}
	}
	p.expect(token.Punctuation, ")")
	return params
}

func (p *Parser) parseParam() ast.Param {
	var param ast.Param
	if p.curIs(token.KeywordSelf) {
		tok := p.cur
		param.IsSelf = true
		param.Name = &ast.Identifier{Name: "self"}
		param.Name.StartTok, param.Name.EndTok = tok, tok
		p.advance()
		return param
	}
	if p.curIsValue(token.Operator, "...") {
		p.advance()
		param.IsVariadic = true
	}
	param.Name = p.parseIdentifier()
	if p.curIsValue(token.Punctuation, ":") {
		p.advance()
		param.Type = p.parseType()
	}
	if p.curIsValue(token.Operator, "=") {
		p.advance()
		param.Default = p.parseExpression(0)
	}
	return param
}

func (p *Parser) parseLetDeclaration() *ast.LetDeclaration {
	node := p.parseLetDeclarationNoSemi()
	p.expectSemicolon()
	node.EndTok = p.prev
	return node
}

func (p *Parser) parseLetDeclarationNoSemi() *ast.LetDeclaration {
	start := p.cur
	mods := p.collectModifiers(ast.CategoryAccess)
	p.expect(token.KeywordLet, "let")
	name := p.parseIdentifier()
	var typ ast.Type
	if p.curIsValue(token.Punctuation, ":") {
		p.advance()
		typ = p.parseType()
	}
	var val ast.Expression
	if p.curIsValue(token.Operator, "=") {
		p.advance()
		val = p.parseExpression(0)
	}
	node := &ast.LetDeclaration{Modifiers: mods, Name: name, Type: typ, Value: val}
	node.StartTok, node.EndTok = start, p.prev
	return node
}

func (p *Parser) parseConstDeclaration() *ast.ConstDeclaration {
	start := p.cur
	mods := p.collectModifiers(ast.CategoryAccess)
	p.expect(token.KeywordConst, "const")
	name := p.parseIdentifier()
	var typ ast.Type
	if p.curIsValue(token.Punctuation, ":") {
		p.advance()
		typ = p.parseType()
	}
	p.expect(token.Operator, "=")
	val := p.parseExpression(0)
	p.expectSemicolon()
	node := &ast.ConstDeclaration{Modifiers: mods, Name: name, Type: typ, Value: val}
	node.StartTok, node.EndTok = start, p.prev
	return node
}

func (p *Parser) parseClassDeclaration() *ast.ClassDeclaration {
	start := p.cur
	mods := p.collectModifiers(ast.CategoryAccess, ast.CategoryClassSpecifier)
	p.expect(token.KeywordClass, "class")
	name := p.parseIdentifier()
	var generics []*ast.Identifier
	if p.curIsValue(token.Operator, "<") {
		generics = p.parseGenericParams()
	}
	var derives []ast.DeriveClause
	if p.curIs(token.KeywordDerives) {
		p.advance()
		derives = append(derives, p.parseDeriveClause())
		for p.curIsValue(token.Punctuation, ",") {
			p.advance()
			derives = append(derives, p.parseDeriveClause())
		}
	}

	p.expect(token.Punctuation, "{")
	var fields []ast.Field
	var methods []*ast.FunctionDeclaration
	for !p.curIsValue(token.Punctuation, "}") && !p.curIs(token.EOF) {
		before := p.mark()
		if p.peekPastModifiersKind() == token.KeywordFn {
			methods = append(methods, p.parseFunctionDeclarationAs(true))
		} else {
			fields = append(fields, p.parseField())
		}
		if p.mark() == before {
			p.advance()
		}
	}
	p.expect(token.Punctuation, "}")

	node := &ast.ClassDeclaration{
		Modifiers: mods,
		Name:      name,
		Generics:  generics,
		Derives:   derives,
		Fields:    fields,
		Methods:   methods,
	}
	node.StartTok, node.EndTok = start, p.prev
	return node
}

func (p *Parser) parseDeriveClause() ast.DeriveClause {
	access := ""
	switch p.cur.Kind {
	case token.KeywordPublic, token.KeywordPrivate, token.KeywordProtected:
		access = p.cur.Value
		p.advance()
	}
	return ast.DeriveClause{Access: access, Trait: p.parseType()}
}

func (p *Parser) parseField() ast.Field {
	mods := p.collectModifiers(ast.CategoryAccess, ast.CategoryFunctionSpecifier)
	name := p.parseIdentifier()
	var typ ast.Type
	if p.curIsValue(token.Punctuation, ":") {
		p.advance()
		typ = p.parseType()
	}
	var def ast.Expression
	if p.curIsValue(token.Operator, "=") {
		p.advance()
		def = p.parseExpression(0)
	}
	if p.curIsValue(token.Punctuation, ";") || p.curIsValue(token.Punctuation, ",") {
		p.advance()
	}
	return ast.Field{Modifiers: mods, Name: name, Type: typ, Default: def}
}

func (p *Parser) parseStructDeclaration() *ast.StructDeclaration {
	start := p.cur
	mods := p.collectModifiers(ast.CategoryAccess)
	p.expect(token.KeywordStruct, "struct")
	name := p.parseIdentifier()
	var generics []*ast.Identifier
	if p.curIsValue(token.Operator, "<") {
		generics = p.parseGenericParams()
	}
	p.expect(token.Punctuation, "{")
	var fields []ast.Field
	for !p.curIsValue(token.Punctuation, "}") && !p.curIs(token.EOF) {
		before := p.mark()
		fields = append(fields, p.parseField())
		if p.mark() == before {
			p.advance()
		}
	}
	p.expect(token.Punctuation, "}")
	node := &ast.StructDeclaration{Modifiers: mods, Name: name, Generics: generics, Fields: fields}
	node.StartTok, node.EndTok = start, p.prev
	return node
}

func (p *Parser) parseEnumDeclaration() *ast.EnumDeclaration {
	start := p.cur
	mods := p.collectModifiers(ast.CategoryAccess)
	p.expect(token.KeywordEnum, "enum")
	name := p.parseIdentifier()
	var underlying ast.Type
	if p.curIsValue(token.Punctuation, ":") {
		p.advance()
		underlying = p.parseType()
	}
	p.expect(token.Punctuation, "{")
	var members []ast.EnumMember
	for !p.curIsValue(token.Punctuation, "}") && !p.curIs(token.EOF) {
		m := ast.EnumMember{Name: p.parseIdentifier()}
		if p.curIsValue(token.Operator, "=") {
			p.advance()
			m.Value = p.parseExpression(0)
		}
		members = append(members, m)
		if p.curIsValue(token.Punctuation, ",") {
			p.advance()
		}
	}
	p.expect(token.Punctuation, "}")
	node := &ast.EnumDeclaration{Modifiers: mods, Name: name, Underlying: underlying, Members: members}
	node.StartTok, node.EndTok = start, p.prev
	return node
}

func (p *Parser) parseInterfaceDeclaration() *ast.InterfaceDeclaration {
	start := p.cur
	mods := p.collectModifiers(ast.CategoryAccess)
	p.expect(token.KeywordInterface, "interface")
	name := p.parseIdentifier()
	var generics []*ast.Identifier
	if p.curIsValue(token.Operator, "<") {
		generics = p.parseGenericParams()
	}
	p.expect(token.Punctuation, "{")
	var methods []*ast.FunctionDeclaration
	for !p.curIsValue(token.Punctuation, "}") && !p.curIs(token.EOF) {
		before := p.mark()
		methods = append(methods, p.parseFunctionDeclarationAs(true))
		if p.mark() == before {
			p.advance()
		}
	}
	p.expect(token.Punctuation, "}")
	node := &ast.InterfaceDeclaration{Modifiers: mods, Name: name, Generics: generics, Methods: methods}
	node.StartTok, node.EndTok = start, p.prev
	return node
}

func (p *Parser) parseTypeAliasDeclaration() *ast.TypeAliasDeclaration {
	start := p.cur
	mods := p.collectModifiers(ast.CategoryAccess)
	p.expect(token.KeywordType, "type")
	name := p.parseIdentifier()
	var generics []*ast.Identifier
	if p.curIsValue(token.Operator, "<") {
		generics = p.parseGenericParams()
	}
	p.expect(token.Operator, "=")
	aliased := p.parseType()
	p.expectSemicolon()
	node := &ast.TypeAliasDeclaration{Modifiers: mods, Name: name, Generics: generics, Aliased: aliased}
	node.StartTok, node.EndTok = start, p.prev
	return node
}

// parseFFIDeclaration parses `ffi "abi" { ... }`. It requires a quoted
// ABI string but does not check it against config.AllowedABIs; the
// preprocessor's FFI-block pass does that (spec §4.6). The parser's
// job here is only to build the tree node the emitter later lowers
// (spec §4.9).
func (p *Parser) parseFFIDeclaration() *ast.FFIDeclaration {
	start := p.cur
	mods := p.collectModifiers(ast.CategoryAccess)
	p.expect(token.KeywordFFI, "ffi")
	abi := ""
	if p.curIs(token.String) {
		abi = unquoteBody(p.cur.Value)
		p.advance()
	} else {
		p.errorf(diagnostics.CodeMalformedFFIBlock, p.cur.Value)
	}
	var body []ast.Statement
	if p.curIsValue(token.Punctuation, "{") {
		p.advance()
		for !p.curIsValue(token.Punctuation, "}") && !p.curIs(token.EOF) {
			before := p.mark()
			s := p.parseStatement()
			if s != nil {
				body = append(body, s)
			}
			if p.mark() == before {
				p.advance()
			}
		}
		p.expect(token.Punctuation, "}")
	} else {
		s := p.parseStatement()
		if s != nil {
			body = append(body, s)
		}
	}
	node := &ast.FFIDeclaration{Modifiers: mods, ABI: abi, Body: body}
	node.StartTok, node.EndTok = start, p.prev
	return node
}

// parseOperatorDeclaration parses `op "+" (params) -> T { ... }`, an
// operator overload the emitter lowers to a named function plus a
// forwarding `operator` wrapper (spec §4.9).
func (p *Parser) parseOperatorDeclaration() *ast.OperatorDeclaration {
	start := p.cur
	mods := p.collectModifiers(ast.CategoryAccess, ast.CategoryFunctionSpecifier)
	p.expect(token.KeywordOperator, "op")
	symbol := ""
	if p.curIs(token.String) {
		symbol = unquoteBody(p.cur.Value)
		p.advance()
	} else if p.curIs(token.Operator) {
		symbol = p.cur.Value
		p.advance()
	} else {
		p.errorf(diagnostics.CodeUnexpectedToken, p.cur.Value, "operator symbol")
	}
	params := p.parseParamList()
	var ret ast.Type
	if p.curIsValue(token.Operator, "->") {
		p.advance()
		ret = p.parseType()
	}
	body := p.parseBlock()
	node := &ast.OperatorDeclaration{Modifiers: mods, Symbol: symbol, Params: params, ReturnType: ret, Body: body}
	node.StartTok, node.EndTok = start, p.prev
	return node
}
