package parser

import (
	"github.com/cxlang/cxc/internal/ast"
	"github.com/cxlang/cxc/internal/diagnostics"
	"github.com/cxlang/cxc/internal/token"
)

// parseType parses a type expression: named/scoped names, generics,
// pointers/references, arrays/slices, tuples, and function types
// (spec §4.7's Type node family). It returns nil (without advancing
// past an unrecoverable token) only when the current token cannot
// begin a type at all, so callers can detect and report failure.
func (p *Parser) parseType() ast.Type {
	switch {
	case p.curIsValue(token.Operator, "*"):
		return p.parsePointerType(false)
	case p.curIsValue(token.Operator, "&"):
		return p.parsePointerType(true)
	case p.curIsValue(token.Punctuation, "["):
		return p.parseArrayType()
	case p.curIsValue(token.Punctuation, "("):
		return p.parseTupleType()
	case p.curIs(token.KeywordFn):
		return p.parseFunctionType()
	case p.curIs(token.Identifier):
		return p.parseNamedOrGenericType()
	default:
		p.errorf(diagnostics.CodeExpectedType, p.cur.Value)
		return nil
	}
}

func (p *Parser) parsePointerType(reference bool) ast.Type {
	start := p.cur
	p.advance()
	elem := p.parseType()
	node := &ast.PointerType{Reference: reference, Elem: elem}
	node.StartTok, node.EndTok = start, p.prev
	return node
}

func (p *Parser) parseArrayType() ast.Type {
	start := p.cur
	p.advance() // '['
	elem := p.parseType()
	var size ast.Expression
	if p.curIsValue(token.Punctuation, ";") {
		p.advance()
		size = p.parseExpression(0)
	}
	p.expect(token.Punctuation, "]")
	node := &ast.ArrayType{Elem: elem, Size: size}
	node.StartTok, node.EndTok = start, p.prev
	return node
}

func (p *Parser) parseTupleType() ast.Type {
	start := p.cur
	p.advance() // '('
	var elems []ast.Type
	for !p.curIsValue(token.Punctuation, ")") && !p.curIs(token.EOF) {
		elems = append(elems, p.parseType())
		if p.curIsValue(token.Punctuation, ",") {
			p.advance()
		}
	}
	p.expect(token.Punctuation, ")")
	node := &ast.TupleType{Elements: elems}
	node.StartTok, node.EndTok = start, p.prev
	return node
}

func (p *Parser) parseFunctionType() ast.Type {
	start := p.cur
	p.advance() // 'fn'
	p.expect(token.Punctuation, "(")
	var params []ast.Type
	for !p.curIsValue(token.Punctuation, ")") && !p.curIs(token.EOF) {
		params = append(params, p.parseType())
		if p.curIsValue(token.Punctuation, ",") {
			p.advance()
		}
	}
	p.expect(token.Punctuation, ")")
	var result ast.Type
	if p.curIsValue(token.Operator, "->") {
		p.advance()
		result = p.parseType()
	}
	node := &ast.FunctionType{Params: params, Result: result}
	node.StartTok, node.EndTok = start, p.prev
	return node
}

func (p *Parser) parseNamedOrGenericType() ast.Type {
	start := p.cur
	path := []string{p.cur.Value}
	p.advance()
	for p.curIsValue(token.Operator, "::") {
		p.advance()
		path = append(path, p.cur.Value)
		p.expect(token.Identifier, "identifier")
	}
	named := &ast.NamedType{Path: path}
	named.StartTok, named.EndTok = start, p.prev

	if p.curIsValue(token.Operator, "<") {
		p.advance()
		var args []ast.Type
		for !p.curIsValue(token.Operator, ">") && !p.curIs(token.EOF) {
			args = append(args, p.parseType())
			if p.curIsValue(token.Punctuation, ",") {
				p.advance()
			}
		}
		if p.curIsValue(token.Operator, ">") {
			p.advance()
		} else {
			p.expect(token.Punctuation, ">")
		}
		node := &ast.GenericType{Base: named, Args: args}
		node.StartTok, node.EndTok = start, p.prev
		return node
	}
	return named
}
