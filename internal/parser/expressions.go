package parser

import (
	"strconv"

	"github.com/cxlang/cxc/internal/ast"
	"github.com/cxlang/cxc/internal/config"
	"github.com/cxlang/cxc/internal/diagnostics"
	"github.com/cxlang/cxc/internal/lexer"
	"github.com/cxlang/cxc/internal/token"
)

func (p *Parser) registerExpressionFns() {
	p.prefixFns[token.Identifier] = p.parsePrimaryIdentifier
	p.prefixFns[token.Integer] = p.parseIntegerLiteral
	p.prefixFns[token.Float] = p.parseFloatLiteral
	p.prefixFns[token.String] = p.parseStringLiteral
	p.prefixFns[token.Char] = p.parseCharLiteral
	p.prefixFns[token.Boolean] = p.parseBooleanLiteral
	p.prefixFns[token.Null] = p.parseNullLiteral
	p.prefixFns[token.KeywordSelf] = p.parseSelfExpression
	p.prefixFns[token.KeywordIf] = p.parseIfExpression
	p.prefixFns[token.KeywordFn] = p.parseFunctionLiteral
	p.prefixFns[token.Operator] = p.parsePrefixOperator
	p.prefixFns[token.Punctuation] = p.parsePunctuationPrefix
}

// ParseExpression is the top-level entry, used by statement parsers
// needing a single expression.
func (p *Parser) ParseExpression() ast.Expression {
	return p.parseExpression(config.PrecLowest)
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixFns[p.cur.Kind]
	if !ok {
		p.errorf(diagnostics.CodeExpectedExpression, p.cur.Value)
		p.advance()
		return &ast.Identifier{}
	}
	left := prefix()

	for {
		if p.curIs(token.Operator) && p.cur.Value == "::" && precedence < config.PrecMultiplicative {
			left = p.parseScopeExpression(left)
			continue
		}
		if p.curIs(token.Operator) {
			prec, isBinary := config.PrecedenceOf(p.cur.Value)
			if !isBinary || prec <= precedence {
				break
			}
			left = p.parseInfixAt(left, prec)
			continue
		}
		if p.curIs(token.KeywordHas) && precedence < config.PrecComparison {
			left = p.parseHasExpression(left)
			continue
		}
		if p.curIs(token.KeywordDerives) && precedence < config.PrecComparison {
			left = p.parseDerivesExpression(left)
			continue
		}
		if p.curIsValue(token.Punctuation, "(") && precedence < config.PrecMultiplicative {
			left = p.parseCallExpression(left)
			continue
		}
		if p.curIsValue(token.Punctuation, "[") && precedence < config.PrecMultiplicative {
			left = p.parseIndexExpression(left)
			continue
		}
		if p.curIsValue(token.Punctuation, ".") && precedence < config.PrecMultiplicative {
			left = p.parseMemberExpression(left)
			continue
		}
		if p.curIs(token.KeywordIf) && precedence < config.PrecComparison {
			left = p.parseTrailingTernary(left)
			continue
		}
		break
	}
	return left
}

// parseInfixAt consumes the current binary operator and its
// right-hand operand. Assignment operators bind their right operand
// at the same precedence for right-leaning chains of `=`; every other
// operator is strictly left-associative per spec §4.8.
func (p *Parser) parseInfixAt(left ast.Expression, prec int) ast.Expression {
	opTok := p.cur
	op := opTok.Value
	p.advance()

	if isAssignOp(op) {
		right := p.parseExpression(prec - 1)
		return &ast.AssignExpression{Operator: op, Target: left, Value: right}
	}

	right := p.parseExpression(prec)
	return &ast.InfixExpression{Operator: op, Left: left, Right: right}
}

func isAssignOp(op string) bool {
	switch op {
	case "=", "+=", "-=", "*=", "/=", "%=":
		return true
	default:
		return false
	}
}

func (p *Parser) parsePrimaryIdentifier() ast.Expression {
	tok := p.cur
	startPos := p.mark()
	p.advance()
	ident := &ast.Identifier{Name: tok.Value}
	ident.StartTok, ident.EndTok = tok, tok

	if p.curIsValue(token.Operator, "<") {
		if generics, ok := p.trySpeculativeGenerics(); ok {
			if p.curIsValue(token.Punctuation, "(") {
				call := p.parseCallExpression(ident)
				if ce, ok := call.(*ast.CallExpression); ok {
					ce.Generics = generics
					return ce
				}
				return call
			}
			node := &ast.GenericInvocation{Callee: ident, Args: generics}
			node.StartTok, node.EndTok = tok, p.prev
			return node
		}
		p.reset(startPos)
		p.advance()
	}

	return ident
}

// trySpeculativeGenerics attempts to parse `<T1, T2>` after an
// identifier, rolling back if the contents don't parse as a
// comma-separated type list closed by `>` (spec §4.8's ambiguity
// between `<` as a comparison and as generic-argument brackets).
// Diagnostics raised while probing are dropped, so a comparison such
// as `i < 10` reports nothing.
func (p *Parser) trySpeculativeGenerics() ([]ast.Type, bool) {
	start := p.mark()
	saved := p.diags
	p.diags = nil
	defer func() { p.diags = saved }()
	p.advance() // consume '<'

	var args []ast.Type
	for {
		if p.curIs(token.EOF) || p.curIsValue(token.Punctuation, "{") || p.curIsValue(token.Punctuation, ";") {
			p.reset(start)
			return nil, false
		}
		t := p.parseType()
		if t == nil {
			p.reset(start)
			return nil, false
		}
		args = append(args, t)
		if p.curIsValue(token.Punctuation, ",") {
			p.advance()
			continue
		}
		break
	}
	if !(p.curIsValue(token.Operator, ">") || p.curIsValue(token.Punctuation, ">")) {
		p.reset(start)
		return nil, false
	}
	p.advance()
	return args, true
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.cur
	p.advance()
	v, _ := strconv.ParseInt(stripUnderscores(tok.Value), 0, 64)
	node := &ast.IntegerLiteral{Raw: tok.Value, Value: v}
	node.StartTok, node.EndTok = tok, tok
	return node
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.cur
	p.advance()
	v, _ := strconv.ParseFloat(stripUnderscores(tok.Value), 64)
	node := &ast.FloatLiteral{Raw: tok.Value, Value: v}
	node.StartTok, node.EndTok = tok, tok
	return node
}

func stripUnderscores(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func (p *Parser) parseStringLiteral() ast.Expression {
	tok := p.cur
	p.advance()
	prefix, body := splitStringPrefix(tok.Value)
	if prefix == "f" {
		node := p.parseInterpolated(tok, body)
		node.StartTok, node.EndTok = tok, tok
		return node
	}
	node := &ast.StringLiteral{Prefix: prefix, Value: unquoteBody(body)}
	node.StartTok, node.EndTok = tok, tok
	return node
}

func splitStringPrefix(raw string) (prefix, body string) {
	if len(raw) > 0 && raw[0] != '"' {
		return string(raw[0]), raw[1:]
	}
	return "", raw
}

func unquoteBody(s string) string {
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}

// fStringHeaderLen is the byte width of the `f"` prefix-plus-quote a
// hole's text is offset past, needed to re-derive each hole's real
// column/offset in the source file.
const fStringHeaderLen = 2

// parseInterpolated splits an f-string body into literal segments and
// `{expr}` holes, re-lexing each hole through the real lexer and
// driving it through the ordinary expression grammar (spec §4.5's
// re-lexing contract, resolving §9's open question in favor of the
// lexer rather than a bespoke hand scanner).
func (p *Parser) parseInterpolated(tok token.Token, body string) *ast.InterpolatedString {
	text := unquoteBody(body)
	textOffset := tok.Location.Offset + fStringHeaderLen
	textCol := tok.Location.Column + fStringHeaderLen

	result := &ast.InterpolatedString{}
	seg := make([]byte, 0, len(text))
	i := 0
	for i < len(text) {
		if text[i] == '{' {
			result.Segments = append(result.Segments, string(seg))
			seg = seg[:0]
			depth := 1
			j := i + 1
			for j < len(text) && depth > 0 {
				if text[j] == '{' {
					depth++
				} else if text[j] == '}' {
					depth--
					if depth == 0 {
						break
					}
				}
				j++
			}
			holeStart := i + 1
			holeSrc := text[holeStart:j]
			result.Holes = append(result.Holes, p.parseHoleExpression(tok, holeSrc, textOffset+holeStart, textCol+holeStart))
			i = j + 1
			continue
		}
		seg = append(seg, text[i])
		i++
	}
	result.Segments = append(result.Segments, string(seg))
	return result
}

// parseHoleExpression re-lexes src (the text between a `{` and its
// matching `}`) at its true position in the original file, then parses
// it as a single expression, so holes support the full expression
// grammar — operators, calls, member access — not a hand-picked subset.
func (p *Parser) parseHoleExpression(tok token.Token, src string, offset, column int) ast.Expression {
	lx := lexer.NewAt(tok.Location.File, src, tok.Location.Line, column, offset, p.diags)
	sub := New(lx.Tokenize(), p.diags)
	return sub.ParseExpression()
}

func (p *Parser) parseCharLiteral() ast.Expression {
	raw := p.cur.Value
	p.advance()
	body := unquoteBody(raw)
	var r rune
	for _, c := range body {
		r = c
		break
	}
	return &ast.CharLiteral{Value: r}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	v := p.cur.Value == "true"
	p.advance()
	return &ast.BooleanLiteral{Value: v}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	p.advance()
	return &ast.NullLiteral{}
}

func (p *Parser) parseSelfExpression() ast.Expression {
	p.advance()
	return &ast.SelfExpression{}
}

func (p *Parser) parsePrefixOperator() ast.Expression {
	op := p.cur.Value
	p.advance()
	operand := p.parseExpression(config.PrecMultiplicative)
	return &ast.PrefixExpression{Operator: op, Operand: operand}
}

func (p *Parser) parsePunctuationPrefix() ast.Expression {
	switch p.cur.Value {
	case "(":
		return p.parseParenOrTuple()
	case "[":
		return p.parseArrayLiteral()
	case "{":
		return p.parseBraceLiteral()
	case "...":
		p.advance()
		return &ast.SpreadExpression{Operand: p.parseExpression(config.PrecLowest)}
	default:
		p.errorf(diagnostics.CodeExpectedExpression, p.cur.Value)
		p.advance()
		return &ast.Identifier{}
	}
}

func (p *Parser) parseParenOrTuple() ast.Expression {
	p.advance() // '('
	if p.curIsValue(token.Punctuation, ")") {
		p.advance()
		return &ast.TupleLiteral{}
	}
	first := p.parseExpression(config.PrecLowest)
	if p.curIsValue(token.Punctuation, ",") {
		elems := []ast.Expression{first}
		for p.curIsValue(token.Punctuation, ",") {
			p.advance()
			if p.curIsValue(token.Punctuation, ")") {
				break
			}
			elems = append(elems, p.parseExpression(config.PrecLowest))
		}
		p.expect(token.Punctuation, ")")
		return &ast.TupleLiteral{Elements: elems}
	}
	p.expect(token.Punctuation, ")")
	return first
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	p.advance() // '['
	var elems []ast.Expression
	for !p.curIsValue(token.Punctuation, "]") && !p.curIs(token.EOF) {
		elems = append(elems, p.parseExpression(config.PrecLowest))
		if p.curIsValue(token.Punctuation, ",") {
			p.advance()
		}
	}
	p.expect(token.Punctuation, "]")
	return &ast.ArrayLiteral{Elements: elems}
}

// parseBraceLiteral disambiguates `{.field: v}` (object), `{k: v}`
// (map), and `{a, b}` (set) per spec §4.8's primary-expression rule.
func (p *Parser) parseBraceLiteral() ast.Expression {
	p.advance() // '{'
	if p.curIsValue(token.Punctuation, ".") {
		var fields []ast.ObjectField
		for p.curIsValue(token.Punctuation, ".") {
			p.advance()
			name := p.parseIdentifier()
			p.expect(token.Punctuation, ":")
			val := p.parseExpression(config.PrecLowest)
			fields = append(fields, ast.ObjectField{Name: name, Value: val})
			if p.curIsValue(token.Punctuation, ",") {
				p.advance()
			}
		}
		p.expect(token.Punctuation, "}")
		return &ast.ObjectLiteral{Fields: fields}
	}
	if p.curIsValue(token.Punctuation, "}") {
		p.advance()
		return &ast.SetLiteral{}
	}

	first := p.parseExpression(config.PrecLowest)
	if p.curIsValue(token.Punctuation, ":") {
		p.advance()
		val := p.parseExpression(config.PrecLowest)
		entries := []ast.MapEntry{{Key: first, Value: val}}
		for p.curIsValue(token.Punctuation, ",") {
			p.advance()
			if p.curIsValue(token.Punctuation, "}") {
				break
			}
			k := p.parseExpression(config.PrecLowest)
			p.expect(token.Punctuation, ":")
			v := p.parseExpression(config.PrecLowest)
			entries = append(entries, ast.MapEntry{Key: k, Value: v})
		}
		p.expect(token.Punctuation, "}")
		return &ast.MapLiteral{Entries: entries}
	}

	elems := []ast.Expression{first}
	for p.curIsValue(token.Punctuation, ",") {
		p.advance()
		if p.curIsValue(token.Punctuation, "}") {
			break
		}
		elems = append(elems, p.parseExpression(config.PrecLowest))
	}
	p.expect(token.Punctuation, "}")
	return &ast.SetLiteral{Elements: elems}
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	p.advance() // '('
	var args []ast.Expression
	for !p.curIsValue(token.Punctuation, ")") && !p.curIs(token.EOF) {
		args = append(args, p.parseExpression(config.PrecLowest))
		if p.curIsValue(token.Punctuation, ",") {
			p.advance()
		}
	}
	p.expect(token.Punctuation, ")")
	return &ast.CallExpression{Callee: callee, Arguments: args}
}

func (p *Parser) parseIndexExpression(target ast.Expression) ast.Expression {
	p.advance() // '['
	idx := p.parseExpression(config.PrecLowest)
	p.expect(token.Punctuation, "]")
	return &ast.IndexExpression{Target: target, Index: idx}
}

func (p *Parser) parseMemberExpression(target ast.Expression) ast.Expression {
	p.advance() // '.'
	member := p.parseIdentifier()
	return &ast.MemberExpression{Target: target, Member: member}
}

func (p *Parser) parseScopeExpression(target ast.Expression) ast.Expression {
	p.advance() // '::'
	member := p.parseIdentifier()
	return &ast.ScopeExpression{Target: target, Member: member}
}

func (p *Parser) parseHasExpression(subject ast.Expression) ast.Expression {
	p.advance() // 'has'
	trait := p.parseType()
	return &ast.HasExpression{Subject: subject, Trait: trait}
}

func (p *Parser) parseDerivesExpression(subject ast.Expression) ast.Expression {
	p.advance() // 'derives'
	trait := p.parseType()
	return &ast.DerivesExpression{Subject: subject, Trait: trait}
}

// parseTrailingTernary handles `then if cond else alt` once `then` has
// already been parsed as a primary/infix expression and `if` follows
// it directly at statement level (spec §4.8's postfix ternary).
func (p *Parser) parseTrailingTernary(then ast.Expression) ast.Expression {
	p.advance() // 'if'
	cond := p.parseExpression(config.PrecComparison)
	var alt ast.Expression
	if p.curIs(token.KeywordElse) {
		p.advance()
		alt = p.parseExpression(config.PrecLowest)
	}
	return &ast.TernaryExpression{Condition: cond, Then: then, Else: alt}
}

func (p *Parser) parseIfExpression() ast.Expression {
	p.advance() // 'if'
	cond := p.parseExpression(config.PrecLowest)
	then := p.parseBlock()
	var elseNode ast.Node
	if p.curIs(token.KeywordElse) {
		p.advance()
		if p.curIs(token.KeywordIf) {
			elseNode = p.parseIfExpression()
		} else {
			elseNode = p.parseBlock()
		}
	}
	return &ast.IfExpression{Condition: cond, Then: then, Else: elseNode}
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	p.advance() // 'fn'
	params := p.parseParamList()
	var ret ast.Type
	if p.curIsValue(token.Operator, "->") {
		p.advance()
		ret = p.parseType()
	}
	body := p.parseBlock()
	return &ast.FunctionLiteral{Params: params, ReturnType: ret, Body: body}
}
