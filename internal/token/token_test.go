package token_test

import (
	"testing"

	"github.com/cxlang/cxc/internal/token"
)

func TestTokenEqualityIsStructural(t *testing.T) {
	loc := token.Location{File: "a.hlx", Line: 1, Column: 2, Offset: 3, Length: 4}
	a := token.New(token.Identifier, "x", loc)
	b := token.New(token.Identifier, "x", loc)
	if !a.Equal(b) {
		t.Fatalf("identical tokens should be equal")
	}
	c := token.New(token.Identifier, "y", loc)
	if a.Equal(c) {
		t.Fatalf("tokens with different values should not be equal")
	}
}

func TestBareTokenHasZeroLocation(t *testing.T) {
	tok := token.Bare(token.Punctuation, ";")
	if !tok.Location.IsZero() {
		t.Fatalf("bare token should have a zeroed location, got %+v", tok.Location)
	}
}

func TestSerializeRoundTripsFields(t *testing.T) {
	loc := token.Location{File: "f.hlx", Line: 5, Column: 9, Offset: 42, Length: 3}
	tok := token.New(token.Integer, "123", loc)
	rec := tok.Serialize()
	if rec.Kind != string(token.Integer) || rec.Value != "123" {
		t.Fatalf("unexpected kind/value: %+v", rec)
	}
	if rec.File != "f.hlx" || rec.Line != 5 || rec.Column != 9 || rec.Offset != 42 || rec.Length != 3 {
		t.Fatalf("location fields lost in serialization: %+v", rec)
	}
}

func TestIsEOF(t *testing.T) {
	if !(token.Token{Kind: token.EOF}).IsEOF() {
		t.Fatalf("EOF token must report IsEOF")
	}
	if (token.Token{Kind: token.Identifier}).IsEOF() {
		t.Fatalf("identifier token must not report IsEOF")
	}
}
