// Package lexer turns source bytes into a flat token.Stream in a
// single forward pass (spec §4.5). It never backtracks; string,
// char, comment, and directive scanning just keep advancing until
// their terminator or EOF.
package lexer

import (
	"strings"

	"github.com/cxlang/cxc/internal/config"
	"github.com/cxlang/cxc/internal/diagnostics"
	"github.com/cxlang/cxc/internal/token"
)

// abiPrefixes are the string-literal prefix letters the grammar
// recognizes before an opening quote: raw, byte, unicode-escaped, and
// the formatted-string hole prefix.
var abiPrefixes = map[byte]bool{'r': true, 'b': true, 'u': true, 'f': true}

// Lexer scans one file's contents into tokens.
type Lexer struct {
	file   string
	input  string
	pos    int // index of ch
	readAt int // index after ch
	ch     byte
	line   int
	column int
	diags  *diagnostics.Engine

	baseOffset int // added to every token's byte offset, for re-lexing a substring of a larger file

	operators []string // config.OperatorSymbols(), longest-first
}

// New returns a lexer over contents attributed to file. diags may be
// nil, in which case scan errors are silently skipped rather than
// reported (used by tests that only care about the happy path).
func New(file, contents string, diags *diagnostics.Engine) *Lexer {
	l := &Lexer{
		file:      file,
		input:     contents,
		line:      1,
		diags:     diags,
		operators: config.OperatorSymbols(),
	}
	l.advance()
	return l
}

// NewAt returns a lexer over contents, a substring of file's full text,
// whose tokens report positions as if contents began at
// (startLine, startColumn, startOffset) in the original file. This is
// the re-lexing entrypoint spec §4.5 describes: the preprocessor or
// parser can hand back a fragment — an interpolated string's `{...}`
// hole, a macro-expanded span — and get tokens anchored to their real
// source coordinates instead of (1, 1, 0).
func NewAt(file, contents string, startLine, startColumn, startOffset int, diags *diagnostics.Engine) *Lexer {
	l := New(file, contents, diags)
	l.line = startLine
	l.column = startColumn
	l.baseOffset = startOffset
	return l
}

// Tokenize scans the entire input and returns a token.Stream ending
// in an EOF token. It never returns an error itself; scan failures
// are reported to the diagnostic engine. An unrecognized byte becomes
// an Unknown token; an unterminated string, char, block comment or
// directive keeps its own kind and spans up to where scanning stopped.
func (l *Lexer) Tokenize() *token.Stream {
	var toks []token.Token
	for {
		t := l.Next()
		toks = append(toks, t)
		if t.IsEOF() {
			break
		}
	}
	return token.NewStream(l.file, toks)
}

func (l *Lexer) advance() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readAt >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readAt]
	}
	l.pos = l.readAt
	l.readAt++
	l.column++
}

func (l *Lexer) peekAt(n int) byte {
	idx := l.pos + n
	if idx >= len(l.input) {
		return 0
	}
	return l.input[idx]
}

func (l *Lexer) loc(startPos, startLine, startCol int) token.Location {
	return token.Location{
		File: l.file, Line: startLine, Column: startCol,
		Offset: l.baseOffset + startPos, Length: l.pos - startPos,
	}
}

// Next scans and returns the next token, advancing past it.
func (l *Lexer) Next() token.Token {
	l.skipWhitespace()

	startPos, startLine, startCol := l.pos, l.line, l.column

	if l.ch == 0 {
		return token.New(token.EOF, "", l.loc(startPos, startLine, startCol))
	}

	switch {
	case l.ch == '/' && l.peekAt(1) == '/':
		return l.scanLineComment(startPos, startLine, startCol)
	case l.ch == '/' && l.peekAt(1) == '*':
		return l.scanBlockComment(startPos, startLine, startCol)
	case l.ch == '#' && l.peekAt(1) == '[':
		return l.scanDirective(startPos, startLine, startCol)
	case l.ch == '"':
		return l.scanString(startPos, startLine, startCol, "")
	case isABIPrefix(l.ch) && l.peekAt(1) == '"':
		prefix := string(l.ch)
		l.advance()
		return l.scanString(startPos, startLine, startCol, prefix)
	case l.ch == '\'':
		return l.scanChar(startPos, startLine, startCol)
	case isDigit(l.ch):
		return l.scanNumber(startPos, startLine, startCol)
	case isIdentStart(l.ch):
		return l.scanIdentifier(startPos, startLine, startCol)
	default:
		if sym := l.matchOperator(); sym != "" {
			return token.New(token.Operator, sym, l.loc(startPos, startLine, startCol))
		}
		if isPunctuation(l.ch) {
			ch := l.ch
			l.advance()
			return token.New(token.Punctuation, string(ch), l.loc(startPos, startLine, startCol))
		}
		bad := l.ch
		l.advance()
		loc := l.loc(startPos, startLine, startCol)
		if l.diags != nil {
			l.diags.Report(diagnostics.CodeUnknownByte, token.New(token.Unknown, string(bad), loc), bad)
		}
		return token.New(token.Unknown, string(bad), loc)
	}
}

func isABIPrefix(ch byte) bool { return abiPrefixes[ch] }

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.advance()
	}
}

func (l *Lexer) scanLineComment(startPos, startLine, startCol int) token.Token {
	for l.ch != '\n' && l.ch != 0 {
		l.advance()
	}
	return token.New(token.LineComment, l.input[startPos:l.pos], l.loc(startPos, startLine, startCol))
}

func (l *Lexer) scanBlockComment(startPos, startLine, startCol int) token.Token {
	l.advance() // '/'
	l.advance() // '*'
	depth := 1
	for depth > 0 {
		if l.ch == 0 {
			loc := l.loc(startPos, startLine, startCol)
			if l.diags != nil {
				l.diags.Report(diagnostics.CodeUnterminatedBlock, token.New(token.Unknown, "", loc))
			}
			break
		}
		if l.ch == '/' && l.peekAt(1) == '*' {
			depth++
			l.advance()
			l.advance()
			continue
		}
		if l.ch == '*' && l.peekAt(1) == '/' {
			depth--
			l.advance()
			l.advance()
			continue
		}
		l.advance()
	}
	return token.New(token.BlockComment, l.input[startPos:l.pos], l.loc(startPos, startLine, startCol))
}

func (l *Lexer) scanDirective(startPos, startLine, startCol int) token.Token {
	l.advance() // '#'
	l.advance() // '['
	depth := 1
	for depth > 0 && l.ch != 0 {
		if l.ch == '[' {
			depth++
		} else if l.ch == ']' {
			depth--
			if depth == 0 {
				l.advance()
				break
			}
		}
		l.advance()
	}
	text := l.input[startPos:l.pos]
	loc := l.loc(startPos, startLine, startCol)
	if depth != 0 && l.diags != nil {
		l.diags.Report(diagnostics.CodeInvalidDirective, token.New(token.Unknown, text, loc), text)
	}
	return token.New(token.CompilerDirective, text, loc)
}

func (l *Lexer) scanString(startPos, startLine, startCol int, prefix string) token.Token {
	l.advance() // opening quote
	raw := prefix == "r"
	for l.ch != '"' {
		if l.ch == 0 || l.ch == '\n' {
			loc := l.loc(startPos, startLine, startCol)
			if l.diags != nil {
				l.diags.Report(diagnostics.CodeUnterminatedStr, token.New(token.Unknown, "", loc))
			}
			return token.New(token.String, l.input[startPos:l.pos], loc)
		}
		if l.ch == '\\' && !raw {
			l.advance()
			if l.ch != 0 {
				l.advance()
			}
			continue
		}
		l.advance()
	}
	l.advance() // closing quote
	return token.New(token.String, l.input[startPos:l.pos], l.loc(startPos, startLine, startCol))
}

func (l *Lexer) scanChar(startPos, startLine, startCol int) token.Token {
	l.advance() // opening '
	if l.ch == '\\' {
		l.advance()
		if l.ch != 0 {
			l.advance()
		}
	} else if l.ch != 0 {
		l.advance()
	}
	loc := l.loc(startPos, startLine, startCol)
	if l.ch != '\'' {
		if l.diags != nil {
			l.diags.Report(diagnostics.CodeUnterminatedChar, token.New(token.Unknown, "", loc))
		}
		return token.New(token.Char, l.input[startPos:l.pos], l.loc(startPos, startLine, startCol))
	}
	l.advance() // closing '
	return token.New(token.Char, l.input[startPos:l.pos], l.loc(startPos, startLine, startCol))
}

func (l *Lexer) scanNumber(startPos, startLine, startCol int) token.Token {
	isFloat := false
	if l.ch == '0' && (l.peekAt(1) == 'x' || l.peekAt(1) == 'X' || l.peekAt(1) == 'o' || l.peekAt(1) == 'O' || l.peekAt(1) == 'b' || l.peekAt(1) == 'B') {
		l.advance()
		l.advance()
		for isHexDigit(l.ch) || l.ch == '_' {
			l.advance()
		}
		return token.New(token.Integer, l.input[startPos:l.pos], l.loc(startPos, startLine, startCol))
	}
	for isDigit(l.ch) || l.ch == '_' {
		l.advance()
	}
	if l.ch == '.' && isDigit(l.peekAt(1)) {
		isFloat = true
		l.advance()
		for isDigit(l.ch) || l.ch == '_' {
			l.advance()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		if isDigit(l.peekAt(1)) || ((l.peekAt(1) == '+' || l.peekAt(1) == '-') && isDigit(l.peekAt(2))) {
			isFloat = true
			l.advance()
			if l.ch == '+' || l.ch == '-' {
				l.advance()
			}
			for isDigit(l.ch) {
				l.advance()
			}
		}
	}
	raw := l.input[startPos:l.pos]
	loc := l.loc(startPos, startLine, startCol)
	if isFloat {
		return token.New(token.Float, raw, loc)
	}
	return token.New(token.Integer, raw, loc)
}

func (l *Lexer) scanIdentifier(startPos, startLine, startCol int) token.Token {
	for isIdentPart(l.ch) {
		l.advance()
	}
	text := l.input[startPos:l.pos]
	loc := l.loc(startPos, startLine, startCol)

	if config.BooleanLiterals[text] {
		return token.New(token.Boolean, text, loc)
	}
	if text == config.NullLiteral {
		return token.New(token.Null, text, loc)
	}
	return token.New(config.LookupIdentifier(text), text, loc)
}

// matchOperator greedily matches the longest operator spelling
// starting at the current position, without consuming on failure.
func (l *Lexer) matchOperator() string {
	remaining := l.input[l.pos:]
	for _, sym := range l.operators {
		if strings.HasPrefix(remaining, sym) {
			for range sym {
				l.advance()
			}
			return sym
		}
	}
	return ""
}

func isDigit(ch byte) bool    { return ch >= '0' && ch <= '9' }
func isHexDigit(ch byte) bool { return isDigit(ch) || (ch|0x20 >= 'a' && ch|0x20 <= 'f') }
func isIdentStart(ch byte) bool {
	return ch == '_' || (ch|0x20 >= 'a' && ch|0x20 <= 'z')
}
func isIdentPart(ch byte) bool { return isIdentStart(ch) || isDigit(ch) }
func isPunctuation(ch byte) bool {
	switch ch {
	case '(', ')', '{', '}', '[', ']', ',', ';', ':', '.', '@':
		return true
	default:
		return false
	}
}
