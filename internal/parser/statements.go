package parser

import (
	"github.com/cxlang/cxc/internal/ast"
	"github.com/cxlang/cxc/internal/diagnostics"
	"github.com/cxlang/cxc/internal/token"
)

// peekPastModifiersKind looks through any leading modifier keywords
// (without consuming them) to find the Kind that actually selects
// which statement or declaration form to parse.
func (p *Parser) peekPastModifiersKind() token.Kind {
	if !isModifierKeyword(p.cur.Kind) {
		return p.cur.Kind
	}
	for i := 0; ; i++ {
		var t token.Token
		if i == 0 {
			t = p.cur
		} else {
			var ok bool
			t, ok = p.stream.Peek(i)
			if !ok {
				return token.EOF
			}
		}
		if !isModifierKeyword(t.Kind) {
			return t.Kind
		}
	}
}

// parseStatement parses one top-level or block-level statement,
// recovering to the next synchronization point on a parse failure
// (spec §4.8).
func (p *Parser) parseStatement() ast.Statement {
	kind := p.cur.Kind
	if isModifierKeyword(kind) {
		kind = p.peekPastModifiersKind()
	}

	var stmt ast.Statement
	ok := true
	switch kind {
	case token.KeywordFn:
		stmt = p.parseFunctionDeclaration()
	case token.KeywordLet:
		stmt = p.parseLetDeclaration()
	case token.KeywordConst:
		stmt = p.parseConstDeclaration()
	case token.KeywordClass:
		stmt = p.parseClassDeclaration()
	case token.KeywordStruct:
		stmt = p.parseStructDeclaration()
	case token.KeywordEnum:
		stmt = p.parseEnumDeclaration()
	case token.KeywordInterface:
		stmt = p.parseInterfaceDeclaration()
	case token.KeywordType:
		stmt = p.parseTypeAliasDeclaration()
	case token.KeywordFFI:
		stmt = p.parseFFIDeclaration()
	case token.KeywordOperator:
		stmt = p.parseOperatorDeclaration()
	case token.KeywordModule:
		stmt = p.parseModuleForm()
	case token.KeywordImport:
		stmt = p.parseImportStatement()
	case token.KeywordIf, token.KeywordUnless:
		stmt = p.parseIfStatement()
	case token.KeywordFor:
		stmt = p.parseForStatement()
	case token.KeywordWhile:
		stmt = p.parseWhileStatement()
	case token.KeywordSwitch:
		stmt = p.parseSwitchStatement()
	case token.KeywordBreak:
		stmt = p.parseBreakStatement()
	case token.KeywordContinue:
		stmt = p.parseContinueStatement()
	case token.KeywordReturn:
		stmt = p.parseReturnStatement()
	case token.KeywordYield:
		stmt = p.parseYieldStatement()
	case token.KeywordDelete:
		stmt = p.parseDeleteStatement()
	case token.KeywordTry:
		stmt = p.parseTryStatement()
	case token.KeywordPanic:
		stmt = p.parsePanicStatement()
	case token.Punctuation:
		if p.cur.Value == "{" {
			stmt = p.parseBlock()
		} else {
			ok = false
		}
	default:
		ok = false
	}
	if !ok {
		return p.parseExpressionStatement()
	}
	if stmt == nil {
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) parseBlock() *ast.BlockStatement {
	start := p.cur
	p.expect(token.Punctuation, "{")
	block := &ast.BlockStatement{}
	for !p.curIsValue(token.Punctuation, "}") && !p.curIs(token.EOF) {
		before := p.mark()
		s := p.parseStatement()
		if s != nil {
			block.Statements = append(block.Statements, s)
		}
		if p.mark() == before {
			p.advance()
		}
	}
	p.expect(token.Punctuation, "}")
	block.StartTok = start
	block.EndTok = p.prev
	return block
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	start := p.cur
	expr := p.parseExpression(0)
	p.expectSemicolon()
	node := &ast.ExpressionStatement{Expr: expr}
	node.StartTok, node.EndTok = start, p.prev
	return node
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	start := p.cur
	unless := p.curIs(token.KeywordUnless)
	p.advance() // 'if' or 'unless'
	cond := p.parseExpression(0)
	then := p.parseBlock()
	var elseStmt ast.Statement
	if p.curIs(token.KeywordElse) {
		p.advance()
		if p.curIs(token.KeywordIf) {
			elseStmt = p.parseIfStatement()
		} else {
			elseStmt = p.parseBlock()
		}
	}
	node := &ast.IfStatement{Unless: unless, Condition: cond, Then: then, Else: elseStmt}
	node.StartTok = start
	node.EndTok = p.prev
	return node
}

// parseForStatement disambiguates the Python-style `for x in xs {}`
// form from the C-style `for init; cond; update {}` form by scanning
// for a `;` before the first `{` (spec §4.8's for-loop duality); both
// share the same entry keyword so a single semicolon decides the
// shape.
func (p *Parser) parseForStatement() *ast.ForStatement {
	start := p.cur
	p.advance() // 'for'

	if p.looksLikeCStyleFor() {
		node := &ast.ForStatement{CStyle: true}
		if !p.curIsValue(token.Punctuation, ";") {
			node.Init = p.parseSimpleStatement()
		}
		p.expect(token.Punctuation, ";")
		if !p.curIsValue(token.Punctuation, ";") {
			node.Cond = p.parseExpression(0)
		}
		p.expect(token.Punctuation, ";")
		if !p.curIsValue(token.Punctuation, "{") {
			node.Update = p.parseSimpleStatement()
		}
		node.Body = p.parseBlock()
		node.StartTok = start
		node.EndTok = p.prev
		return node
	}

	node := &ast.ForStatement{CStyle: false}
	node.Var = p.parseIdentifier()
	p.expect(token.KeywordIn, "in")
	node.Iterable = p.parseExpression(0)
	node.Body = p.parseBlock()
	node.StartTok = start
	node.EndTok = p.prev
	return node
}

// looksLikeCStyleFor scans ahead from the current position (right
// after `for`) for a `;` before the loop body's opening `{`, without
// disturbing the parser's cursor.
func (p *Parser) looksLikeCStyleFor() bool {
	depth := 0
	for i := 0; ; i++ {
		var t token.Token
		if i == 0 {
			t = p.cur
		} else {
			tok, ok := p.stream.Peek(i)
			if !ok {
				return false
			}
			t = tok
		}
		if t.IsEOF() {
			return false
		}
		if t.Kind == token.Punctuation {
			switch t.Value {
			case "(", "[":
				depth++
			case ")", "]":
				depth--
			case "{":
				if depth == 0 {
					return false
				}
			case ";":
				if depth == 0 {
					return true
				}
			}
		}
	}
}

// parseSimpleStatement parses a single statement usable inside a
// C-style for-header: a let-binding or a bare expression, without
// consuming the trailing `;` (the caller owns loop-header
// punctuation).
func (p *Parser) parseSimpleStatement() ast.Statement {
	if p.curIs(token.KeywordLet) {
		return p.parseLetDeclarationNoSemi()
	}
	start := p.cur
	expr := p.parseExpression(0)
	node := &ast.ExpressionStatement{Expr: expr}
	node.StartTok, node.EndTok = start, p.prev
	return node
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	start := p.cur
	p.advance() // 'while'
	cond := p.parseExpression(0)
	body := p.parseBlock()
	node := &ast.WhileStatement{Condition: cond, Body: body}
	node.StartTok = start
	node.EndTok = p.prev
	return node
}

func (p *Parser) parseSwitchStatement() *ast.SwitchStatement {
	start := p.cur
	p.advance() // 'switch'
	subject := p.parseExpression(0)
	p.expect(token.Punctuation, "{")
	var cases []ast.SwitchCase
	for !p.curIsValue(token.Punctuation, "}") && !p.curIs(token.EOF) {
		var c ast.SwitchCase
		if p.curIs(token.KeywordDefault) {
			p.advance()
			c.IsDefault = true
		} else {
			p.expect(token.KeywordCase, "case")
			c.Values = append(c.Values, p.parseExpression(0))
			for p.curIsValue(token.Punctuation, ",") {
				p.advance()
				c.Values = append(c.Values, p.parseExpression(0))
			}
		}
		p.expect(token.Punctuation, ":")
		for !p.curIs(token.KeywordCase) && !p.curIs(token.KeywordDefault) &&
			!p.curIsValue(token.Punctuation, "}") && !p.curIs(token.EOF) {
			if p.curIs(token.KeywordFallthrough) {
				p.advance()
				if p.curIsValue(token.Punctuation, ";") {
					p.advance()
				}
				c.Fallthrough = true
				continue
			}
			before := p.mark()
			s := p.parseStatement()
			if s != nil {
				c.Body = append(c.Body, s)
			}
			if p.mark() == before {
				p.advance()
			}
		}
		cases = append(cases, c)
	}
	p.expect(token.Punctuation, "}")
	node := &ast.SwitchStatement{Subject: subject, Cases: cases}
	node.StartTok = start
	node.EndTok = p.prev
	return node
}

func (p *Parser) parseBreakStatement() *ast.BreakStatement {
	start := p.cur
	p.advance()
	p.expectSemicolon()
	node := &ast.BreakStatement{}
	node.StartTok, node.EndTok = start, p.prev
	return node
}

func (p *Parser) parseContinueStatement() *ast.ContinueStatement {
	start := p.cur
	p.advance()
	p.expectSemicolon()
	node := &ast.ContinueStatement{}
	node.StartTok, node.EndTok = start, p.prev
	return node
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	start := p.cur
	p.advance()
	var val ast.Expression
	if !p.curIsValue(token.Punctuation, ";") && !p.curIsValue(token.Punctuation, "}") {
		val = p.parseExpression(0)
	}
	p.expectSemicolon()
	node := &ast.ReturnStatement{Value: val}
	node.StartTok, node.EndTok = start, p.prev
	return node
}

func (p *Parser) parseYieldStatement() *ast.YieldStatement {
	start := p.cur
	p.advance()
	val := p.parseExpression(0)
	p.expectSemicolon()
	node := &ast.YieldStatement{Value: val}
	node.StartTok, node.EndTok = start, p.prev
	return node
}

func (p *Parser) parseDeleteStatement() *ast.DeleteStatement {
	start := p.cur
	p.advance()
	target := p.parseExpression(0)
	p.expectSemicolon()
	node := &ast.DeleteStatement{Target: target}
	node.StartTok, node.EndTok = start, p.prev
	return node
}

func (p *Parser) parsePanicStatement() *ast.PanicStatement {
	start := p.cur
	p.advance()
	val := p.parseExpression(0)
	p.expectSemicolon()
	node := &ast.PanicStatement{Value: val}
	node.StartTok, node.EndTok = start, p.prev
	return node
}

func (p *Parser) parseTryStatement() *ast.TryStatement {
	start := p.cur
	p.advance() // 'try'
	body := p.parseBlock()
	var catches []ast.CatchClause
	for p.curIs(token.KeywordCatch) {
		p.advance()
		var c ast.CatchClause
		p.expect(token.Punctuation, "(")
		c.Name = p.parseIdentifier()
		if p.curIsValue(token.Punctuation, ":") {
			p.advance()
			c.Type = p.parseType()
		}
		p.expect(token.Punctuation, ")")
		c.Body = p.parseBlock()
		catches = append(catches, c)
	}
	var finally *ast.BlockStatement
	if p.curIs(token.KeywordFinally) {
		p.advance()
		finally = p.parseBlock()
	}
	node := &ast.TryStatement{Body: body, Catches: catches, Finally: finally}
	node.StartTok, node.EndTok = start, p.prev
	return node
}

// parseImportStatement parses `import "path" [as alias] [(a, b)] [!(a, b)];`.
// It does not check where the import appears: one inside a block is
// kept as an ordinary statement of that block, and nothing diagnoses
// it.
func (p *Parser) parseImportStatement() *ast.ImportStatement {
	start := p.cur
	p.advance() // 'import'
	pathTok := p.cur
	var path *ast.StringLiteral
	if p.curIs(token.String) {
		lit := p.parseStringLiteral()
		if sl, ok := lit.(*ast.StringLiteral); ok {
			path = sl
		}
	} else {
		p.errorf(diagnostics.CodeUnexpectedToken, pathTok.Value, "import path")
	}

	node := &ast.ImportStatement{Path: path}
	if p.curIs(token.KeywordAs) {
		p.advance()
		node.Alias = p.parseIdentifier()
	}
	if p.curIsValue(token.Punctuation, "(") {
		p.advance()
		for !p.curIsValue(token.Punctuation, ")") && !p.curIs(token.EOF) {
			node.Spec.Symbols = append(node.Spec.Symbols, p.parseIdentifier())
			if p.curIsValue(token.Punctuation, ",") {
				p.advance()
			}
		}
		p.expect(token.Punctuation, ")")
	} else if p.curIsValue(token.Operator, "!") {
		p.advance()
		p.expect(token.Punctuation, "(")
		for !p.curIsValue(token.Punctuation, ")") && !p.curIs(token.EOF) {
			node.Spec.Exclude = append(node.Spec.Exclude, p.parseIdentifier())
			if p.curIsValue(token.Punctuation, ",") {
				p.advance()
			}
		}
		p.expect(token.Punctuation, ")")
	} else {
		node.Spec.ImportAll = true
	}
	p.expectSemicolon()
	node.StartTok, node.EndTok = start, p.prev
	return node
}

// parseModuleForm handles both the `module a::b;` prologue
// (ModuleDeclaration) and the `module a::b { ... }` braced form
// (ModuleStatement), distinguished by whether a `{` follows the path.
func (p *Parser) parseModuleForm() ast.Statement {
	start := p.cur
	p.advance() // 'module'
	path := []*ast.Identifier{p.parseIdentifier()}
	for p.curIsValue(token.Operator, "::") {
		p.advance()
		path = append(path, p.parseIdentifier())
	}
	if p.curIsValue(token.Punctuation, "{") {
		name := path[len(path)-1]
		body := p.parseBlock()
		node := &ast.ModuleStatement{Name: name, Body: body}
		node.StartTok, node.EndTok = start, p.prev
		return node
	}
	p.expectSemicolon()
	node := &ast.ModuleDeclaration{Path: path}
	node.StartTok, node.EndTok = start, p.prev
	return node
}
