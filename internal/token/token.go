// Package token defines the lexical token model shared by every later
// compilation stage: the lexer produces tokens, the preprocessor rewrites
// streams of them, the parser consumes them, and the diagnostic engine
// quotes them back at the user.
package token

import "fmt"

// Kind discriminates the lexical category of a Token. It is a closed
// enumeration: keywords, punctuation, operators, the six literal
// subtypes, identifiers, comments, directives, and the two sentinels
// EOF and Unknown.
type Kind string

const (
	// Sentinels
	EOF     Kind = "EOF"
	Unknown Kind = "UNKNOWN"

	// Trivia
	LineComment       Kind = "LINE_COMMENT"
	BlockComment      Kind = "BLOCK_COMMENT"
	CompilerDirective Kind = "COMPILER_DIRECTIVE"

	// Identifiers and literals
	Identifier Kind = "IDENTIFIER"
	Integer    Kind = "INTEGER"
	Float      Kind = "FLOAT"
	String     Kind = "STRING"
	Char       Kind = "CHAR"
	Boolean    Kind = "BOOLEAN"
	Null       Kind = "NULL"

	// Punctuation and operators are tagged generically; Value carries the
	// exact spelling ("+=", "::", "(", ...). Keywords get their own Kind
	// per spelling so the parser can switch on Kind directly.
	Operator    Kind = "OPERATOR"
	Punctuation Kind = "PUNCTUATION"

	// Keywords (closed set consumed by the parser; see config.Keywords).
	KeywordFn          Kind = "KW_FN"
	KeywordLet         Kind = "KW_LET"
	KeywordConst       Kind = "KW_CONST"
	KeywordClass       Kind = "KW_CLASS"
	KeywordStruct      Kind = "KW_STRUCT"
	KeywordEnum        Kind = "KW_ENUM"
	KeywordInterface   Kind = "KW_INTERFACE"
	KeywordType        Kind = "KW_TYPE"
	KeywordFFI         Kind = "KW_FFI"
	KeywordUsing       Kind = "KW_USING"
	KeywordOperator    Kind = "KW_OPERATOR"
	KeywordModule      Kind = "KW_MODULE"
	KeywordImport      Kind = "KW_IMPORT"
	KeywordDefine      Kind = "KW_DEFINE"
	KeywordAs          Kind = "KW_AS"
	KeywordAlias       Kind = "KW_ALIAS"
	KeywordIf          Kind = "KW_IF"
	KeywordElse        Kind = "KW_ELSE"
	KeywordUnless      Kind = "KW_UNLESS"
	KeywordFor         Kind = "KW_FOR"
	KeywordWhile       Kind = "KW_WHILE"
	KeywordIn          Kind = "KW_IN"
	KeywordSwitch      Kind = "KW_SWITCH"
	KeywordCase        Kind = "KW_CASE"
	KeywordDefault     Kind = "KW_DEFAULT"
	KeywordFallthrough Kind = "KW_FALLTHROUGH"
	KeywordYield       Kind = "KW_YIELD"
	KeywordDelete      Kind = "KW_DELETE"
	KeywordReturn      Kind = "KW_RETURN"
	KeywordBreak       Kind = "KW_BREAK"
	KeywordContinue    Kind = "KW_CONTINUE"
	KeywordTry         Kind = "KW_TRY"
	KeywordCatch       Kind = "KW_CATCH"
	KeywordFinally     Kind = "KW_FINALLY"
	KeywordPanic       Kind = "KW_PANIC"
	KeywordSelf        Kind = "KW_SELF"
	KeywordStatic      Kind = "KW_STATIC"
	KeywordInline      Kind = "KW_INLINE"
	KeywordAsync       Kind = "KW_ASYNC"
	KeywordAwait       Kind = "KW_AWAIT"
	KeywordEval        Kind = "KW_EVAL"
	KeywordPublic      Kind = "KW_PUBLIC"
	KeywordPrivate     Kind = "KW_PRIVATE"
	KeywordProtected   Kind = "KW_PROTECTED"
	KeywordInternal    Kind = "KW_INTERNAL"
	KeywordHas         Kind = "KW_HAS"
	KeywordDerives     Kind = "KW_DERIVES"
	KeywordRequires    Kind = "KW_REQUIRES"
	KeywordWhere       Kind = "KW_WHERE"
	KeywordDefaultQual Kind = "KW_DEFAULT_QUAL"
)

// Location pins a token to an exact place in the original source: the
// file it came from, its 1-based line and column, the 0-based byte
// offset of its first byte, and its byte length. s[offset:offset+length]
// reproduces Token.Value for any token the lexer produced (bare tokens
// synthesized outside the lexer carry a zeroed Location instead).
type Location struct {
	File   string
	Line   int
	Column int
	Offset int
	Length int
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// IsZero reports whether the location was never set, as for bare
// tokens synthesized outside the lexer.
func (l Location) IsZero() bool {
	return l == Location{}
}

// Token is the atomic unit produced by the lexer. It is a value type:
// two tokens are equal iff every field matches, and a token carries no
// identity beyond its position within the stream that holds it.
type Token struct {
	Kind     Kind
	Value    string
	Location Location
}

// New constructs a token with full positional metadata.
func New(kind Kind, value string, loc Location) Token {
	return Token{Kind: kind, Value: value, Location: loc}
}

// Bare synthesizes a token carrying only a kind and value, for stages
// that fabricate tokens rather than lex them: macro parameter
// substitution, quick-fix preview rendering, synthesized "static"
// modifiers inserted by the parser.
func Bare(kind Kind, value string) Token {
	return Token{Kind: kind, Value: value}
}

// Equal reports structural equality: same kind, value, and location.
func (t Token) Equal(other Token) bool {
	return t.Kind == other.Kind && t.Value == other.Value && t.Location == other.Location
}

// String renders the token for diagnostic insertion and debug logs.
func (t Token) String() string {
	if t.Location.IsZero() {
		return fmt.Sprintf("%s(%q)", t.Kind, t.Value)
	}
	return fmt.Sprintf("%s(%q) @ %s", t.Kind, t.Value, t.Location)
}

// Record is the structured serialization of a Token, emitted by
// --emit-tokens debug output.
type Record struct {
	Kind   string `json:"kind"`
	Value  string `json:"value"`
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

// Serialize converts the token into its structured record form.
func (t Token) Serialize() Record {
	return Record{
		Kind:   string(t.Kind),
		Value:  t.Value,
		File:   t.Location.File,
		Line:   t.Location.Line,
		Column: t.Location.Column,
		Offset: t.Location.Offset,
		Length: t.Location.Length,
	}
}

// IsEOF reports whether the token terminates a stream.
func (t Token) IsEOF() bool { return t.Kind == EOF }
