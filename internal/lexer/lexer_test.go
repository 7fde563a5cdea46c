package lexer_test

import (
	"testing"

	"github.com/cxlang/cxc/internal/lexer"
	"github.com/cxlang/cxc/internal/token"
)

func tokenize(src string) []token.Token {
	l := lexer.New("t.hlx", src, nil)
	return l.Tokenize().Tokens()
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestByteExactInvariant(t *testing.T) {
	src := `fn main() { let x: Int = 42; }`
	toks := tokenize(src)
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			continue
		}
		loc := tok.Location
		got := src[loc.Offset : loc.Offset+loc.Length]
		if got != tok.Value {
			t.Fatalf("src[%d:%d] = %q, want token value %q", loc.Offset, loc.Offset+loc.Length, got, tok.Value)
		}
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks := tokenize("fn let x")
	want := []token.Kind{token.KeywordFn, token.KeywordLet, token.Identifier, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGreedyOperatorMatch(t *testing.T) {
	toks := tokenize("a <= b")
	if toks[1].Value != "<=" {
		t.Fatalf("operator token = %q, want \"<=\"", toks[1].Value)
	}
}

func TestBlockCommentNesting(t *testing.T) {
	toks := tokenize("/* outer /* inner */ still-outer */ x")
	if toks[0].Kind != token.BlockComment {
		t.Fatalf("first token kind = %v, want BlockComment", toks[0].Kind)
	}
	if toks[1].Kind != token.Identifier || toks[1].Value != "x" {
		t.Fatalf("second token = %+v, want identifier x", toks[1])
	}
}

func TestStringPrefixes(t *testing.T) {
	toks := tokenize(`r"raw\n" f"hole"`)
	if toks[0].Kind != token.String || toks[0].Value != `r"raw\n"` {
		t.Fatalf("raw string token = %+v", toks[0])
	}
	if toks[1].Kind != token.String || toks[1].Value != `f"hole"` {
		t.Fatalf("f-string token = %+v", toks[1])
	}
}

func TestNumberLiterals(t *testing.T) {
	toks := tokenize("42 3.14 0xFF 1e10")
	wantKinds := []token.Kind{token.Integer, token.Float, token.Integer, token.Float}
	for i, want := range wantKinds {
		if toks[i].Kind != want {
			t.Fatalf("token %d kind = %v, want %v (value %q)", i, toks[i].Kind, want, toks[i].Value)
		}
	}
}

func TestCompilerDirective(t *testing.T) {
	toks := tokenize(`#[inline] fn f() {}`)
	if toks[0].Kind != token.CompilerDirective || toks[0].Value != "#[inline]" {
		t.Fatalf("directive token = %+v", toks[0])
	}
}

func TestUnknownByteBecomesUnknownToken(t *testing.T) {
	toks := tokenize("a $ b")
	if toks[1].Kind != token.Unknown {
		t.Fatalf("middle token kind = %v, want Unknown", toks[1].Kind)
	}
}
