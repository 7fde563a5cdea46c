package config

import "github.com/cxlang/cxc/internal/token"

// Keywords is the single source of truth mapping reserved words to
// their token kind. The lexer consults it after scanning an
// identifier-shaped run; anything absent from this table lexes as a
// plain identifier.
var Keywords = map[string]token.Kind{
	"fn":          token.KeywordFn,
	"let":         token.KeywordLet,
	"const":       token.KeywordConst,
	"class":       token.KeywordClass,
	"struct":      token.KeywordStruct,
	"enum":        token.KeywordEnum,
	"interface":   token.KeywordInterface,
	"type":        token.KeywordType,
	"ffi":         token.KeywordFFI,
	"using":       token.KeywordUsing,
	"op":          token.KeywordOperator,
	"module":      token.KeywordModule,
	"import":      token.KeywordImport,
	"define":      token.KeywordDefine,
	"as":          token.KeywordAs,
	"alias":       token.KeywordAlias,
	"if":          token.KeywordIf,
	"else":        token.KeywordElse,
	"unless":      token.KeywordUnless,
	"for":         token.KeywordFor,
	"while":       token.KeywordWhile,
	"in":          token.KeywordIn,
	"switch":      token.KeywordSwitch,
	"case":        token.KeywordCase,
	"default":     token.KeywordDefault,
	"fallthrough": token.KeywordFallthrough,
	"yield":       token.KeywordYield,
	"delete":      token.KeywordDelete,
	"return":      token.KeywordReturn,
	"break":       token.KeywordBreak,
	"continue":    token.KeywordContinue,
	"try":         token.KeywordTry,
	"catch":       token.KeywordCatch,
	"finally":     token.KeywordFinally,
	"panic":       token.KeywordPanic,
	"self":        token.KeywordSelf,
	"static":      token.KeywordStatic,
	"inline":      token.KeywordInline,
	"async":       token.KeywordAsync,
	"await":       token.KeywordAwait,
	"eval":        token.KeywordEval,
	"public":      token.KeywordPublic,
	"private":     token.KeywordPrivate,
	"protected":   token.KeywordProtected,
	"internal":    token.KeywordInternal,
	"has":         token.KeywordHas,
	"derives":     token.KeywordDerives,
	"requires":    token.KeywordRequires,
	"where":       token.KeywordWhere,
}

// BooleanLiterals and NullLiteral are recognized at the lexer's
// identifier dispatch but tagged with a literal kind rather than a
// keyword kind, since the parser treats them as primary expressions.
var BooleanLiterals = map[string]bool{"true": true, "false": true}

const NullLiteral = "null"

// LookupIdentifier classifies a scanned identifier-shaped run into a
// keyword kind, a boolean/null literal kind, or a plain identifier.
func LookupIdentifier(text string) token.Kind {
	if kind, ok := Keywords[text]; ok {
		return kind
	}
	if BooleanLiterals[text] {
		return token.Boolean
	}
	if text == NullLiteral {
		return token.Null
	}
	return token.Identifier
}
