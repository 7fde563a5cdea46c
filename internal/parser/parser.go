// Package parser implements a hand-written recursive-descent,
// precedence-climbing parser from a token.Stream to an ast.Program
// (spec §4.8). Parse errors are recoverable: on failure the parser
// reports a diagnostic and advances to the next synchronization point
// rather than aborting the whole file.
package parser

import (
	"github.com/cxlang/cxc/internal/ast"
	"github.com/cxlang/cxc/internal/diagnostics"
	"github.com/cxlang/cxc/internal/token"
)

type prefixParseFn func() ast.Expression

// Parser walks a token.Stream one token at a time; cur/peek mirror the
// stream's cursor so lookahead decisions (postfix tails, the for-loop
// duality, speculative generics) don't need to touch the stream
// directly.
type Parser struct {
	stream *token.Stream
	diags  *diagnostics.Engine

	cur  token.Token
	peek token.Token
	prev token.Token // last token consumed by advance, used as a node's EndTok

	prefixFns map[token.Kind]prefixParseFn
}

// New returns a parser over stream, reporting diagnostics to diags.
func New(stream *token.Stream, diags *diagnostics.Engine) *Parser {
	p := &Parser{stream: stream, diags: diags}
	p.prefixFns = make(map[token.Kind]prefixParseFn)
	p.registerExpressionFns()

	p.cur = p.stream.Current()
	p.peek = p.peekToken()
	p.prev = p.cur
	return p
}

func (p *Parser) peekToken() token.Token {
	t, ok := p.stream.Peek(1)
	if !ok {
		return token.New(token.EOF, "", p.cur.Location)
	}
	return t
}

// advance moves both the parser's view and the underlying stream
// cursor forward by one token.
func (p *Parser) advance() {
	p.prev = p.cur
	if !p.cur.IsEOF() {
		p.stream.Advance(1)
	}
	p.cur = p.stream.Current()
	p.peek = p.peekToken()
}

// mark/reset support the speculative generic-invocation parse: try a
// sub-parse, and roll the stream (and cur/peek) back if it fails.
func (p *Parser) mark() int { return p.stream.Position() }

func (p *Parser) reset(pos int) {
	delta := p.stream.Position() - pos
	if delta > 0 {
		p.stream.Reverse(delta)
	} else if delta < 0 {
		p.stream.Advance(-delta)
	}
	p.cur = p.stream.Current()
	p.peek = p.peekToken()
}

func (p *Parser) curIs(kind token.Kind) bool  { return p.cur.Kind == kind }
func (p *Parser) peekIs(kind token.Kind) bool { return p.peek.Kind == kind }

func (p *Parser) curIsValue(kind token.Kind, value string) bool {
	return p.cur.Kind == kind && p.cur.Value == value
}

func (p *Parser) peekIsValue(kind token.Kind, value string) bool {
	return p.peek.Kind == kind && p.peek.Value == value
}

// expect advances past cur if it matches kind, otherwise reports
// CodeUnexpectedToken and returns false without advancing.
func (p *Parser) expect(kind token.Kind, expected string) bool {
	if p.curIs(kind) {
		p.advance()
		return true
	}
	p.errorf(diagnostics.CodeUnexpectedToken, p.cur.Value, expected)
	return false
}

func (p *Parser) errorf(code diagnostics.Code, args ...any) *diagnostics.Record {
	return p.errorAt(p.cur, code, args...)
}

// errorAt reports code anchored at tok rather than the parser's
// current token, for diagnostics that must point at a node parsed
// earlier (e.g. the self parameter, long since consumed by the time
// the conflict is detected).
func (p *Parser) errorAt(tok token.Token, code diagnostics.Code, args ...any) *diagnostics.Record {
	if p.diags == nil {
		return nil
	}
	return p.diags.Report(code, tok, args...)
}

// expectSemicolon consumes a trailing ';' if present. Otherwise it
// reports CodeMissingSemicolon anchored at p.prev (the last real token
// of the statement) with a quick fix that inserts ';' right after it,
// and does not advance — leaving cur in place for synchronize to find
// the next boundary.
func (p *Parser) expectSemicolon() {
	if p.curIsValue(token.Punctuation, ";") {
		p.advance()
		return
	}
	tok := p.prev
	rec := p.errorAt(tok, diagnostics.CodeMissingSemicolon)
	if rec != nil {
		col := tok.Location.Column + tok.Location.Length
		rec.QuickFixes = []diagnostics.QuickFix{{Column: col, Insert: ";"}}
	}
}

// synchronize advances past tokens until the next statement boundary
// at the current brace depth (a `;`) or a closing `}`, bounding
// cascading errors after a recoverable parse failure (spec §4.8).
func (p *Parser) synchronize() {
	depth := 0
	for !p.curIs(token.EOF) {
		if p.curIsValue(token.Punctuation, "}") && depth == 0 {
			return
		}
		if p.curIsValue(token.Punctuation, "{") {
			depth++
		}
		if p.curIsValue(token.Punctuation, "}") {
			depth--
		}
		if p.curIsValue(token.Punctuation, ";") && depth == 0 {
			p.advance()
			return
		}
		p.advance()
	}
}

// ParseProgram parses declarations until EOF, matching spec §4.8's
// entry point.
func (p *Parser) ParseProgram() *ast.Program {
	start := p.cur
	prog := &ast.Program{}
	for !p.curIs(token.EOF) {
		before := p.mark()
		stmt := p.parseStatement()
		if stmt != nil {
			switch s := stmt.(type) {
			case *ast.ModuleDeclaration:
				prog.Module = s
			case *ast.ImportStatement:
				prog.Imports = append(prog.Imports, s)
			default:
				prog.Decls = append(prog.Decls, stmt)
			}
		}
		if p.mark() == before {
			// parseStatement made no progress; force it so EOF is reached.
			p.advance()
		}
	}
	prog.StartTok = start
	prog.EndTok = p.cur
	return prog
}

func isModifierKeyword(k token.Kind) bool {
	switch k {
	case token.KeywordPublic, token.KeywordPrivate, token.KeywordProtected, token.KeywordInternal,
		token.KeywordStatic, token.KeywordInline, token.KeywordAsync:
		return true
	default:
		return false
	}
}

// collectModifiers gathers leading modifier keywords into a bag that
// accepts the given categories, reporting a diagnostic for any
// modifier outside the bag's categories or repeated.
func (p *Parser) collectModifiers(accepted ...ast.ModifierCategory) *ast.Modifiers {
	bag := ast.NewModifiers(accepted...)
	for isModifierKeyword(p.cur.Kind) {
		tok := p.cur
		switch bag.Add(tok) {
		case "category":
			p.errorf(diagnostics.CodeInvalidModifier, tok.Value)
		case "duplicate":
			p.errorf(diagnostics.CodeDuplicateModifier, tok.Value)
		}
		p.advance()
	}
	return bag
}

func (p *Parser) parseIdentifier() *ast.Identifier {
	t := p.cur
	if !p.curIs(token.Identifier) {
		p.errorf(diagnostics.CodeUnexpectedToken, p.cur.Value, "identifier")
		return &ast.Identifier{}
	}
	p.advance()
	return &ast.Identifier{Name: t.Value}
}
