package token_test

import (
	"testing"

	"github.com/cxlang/cxc/internal/token"
)

func makeTokens(n int) []token.Token {
	toks := make([]token.Token, n)
	for i := range toks {
		toks[i] = token.Bare(token.Identifier, string(rune('a'+i)))
	}
	return toks
}

func TestStreamSliceLength(t *testing.T) {
	tests := []struct {
		name string
		n    int
		a, b int
	}{
		{"full range", 10, 0, 10},
		{"empty range", 10, 3, 3},
		{"middle", 10, 2, 7},
		{"negative end", 10, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := token.NewStream("f.hlx", makeTokens(tt.n))
			sliced := s.Slice(tt.a, tt.b)
			a, b := tt.a, tt.b
			if a < 0 {
				a += tt.n
			}
			if b < 0 {
				b += tt.n
			}
			want := b - a
			if sliced.Len() != want {
				t.Fatalf("Slice(%d, %d).Len() = %d; want %d", tt.a, tt.b, sliced.Len(), want)
			}
		})
	}
}

func TestStreamSliceOrderPreserved(t *testing.T) {
	s := token.NewStream("f.hlx", makeTokens(5))
	sliced := s.Slice(1, 4)
	want := []string{"b", "c", "d"}
	for i, tok := range sliced.Tokens() {
		if tok.Value != want[i] {
			t.Fatalf("index %d = %q; want %q", i, tok.Value, want[i])
		}
	}
}

func TestStreamSplitAtSharesNoCursor(t *testing.T) {
	s := token.NewStream("f.hlx", makeTokens(6))
	_ = s.Advance(3)
	before, at := s.SplitAt(3)
	if before.Position() != 0 || at.Position() != 0 {
		t.Fatalf("split streams must start with a fresh cursor, got %d and %d", before.Position(), at.Position())
	}
	if before.Len() != 3 || at.Len() != 3 {
		t.Fatalf("split lengths = %d, %d; want 3, 3", before.Len(), at.Len())
	}
	// Splitting must leave the original's cursor where it was.
	_ = s.Advance(0)
	if s.Position() != 3 {
		t.Fatalf("original cursor moved unexpectedly: %d", s.Position())
	}
}

func TestStreamAdvanceOutOfBounds(t *testing.T) {
	s := token.NewStream("f.hlx", makeTokens(3))
	if err := s.Advance(4); err != token.ErrOutOfBounds {
		t.Fatalf("Advance(4) on a 3-token stream = %v; want ErrOutOfBounds", err)
	}
	if s.Position() != 0 {
		t.Fatalf("failed Advance must not move cursor, got %d", s.Position())
	}
}

func TestStreamReverseOutOfBounds(t *testing.T) {
	s := token.NewStream("f.hlx", makeTokens(3))
	if err := s.Reverse(1); err != token.ErrOutOfBounds {
		t.Fatalf("Reverse(1) at position 0 = %v; want ErrOutOfBounds", err)
	}
}

func TestStreamPeekBounds(t *testing.T) {
	s := token.NewStream("f.hlx", makeTokens(3))
	_ = s.Advance(1)
	if _, ok := s.Peek(-2); ok {
		t.Fatalf("Peek(-2) at position 1 should be out of bounds")
	}
	if tok, ok := s.Peek(-1); !ok || tok.Value != "a" {
		t.Fatalf("Peek(-1) = %v, %v; want \"a\", true", tok, ok)
	}
	if tok, ok := s.Peek(1); !ok || tok.Value != "c" {
		t.Fatalf("Peek(1) = %v, %v; want \"c\", true", tok, ok)
	}
}

func TestIteratorDoesNotDisturbStreamCursor(t *testing.T) {
	s := token.NewStream("f.hlx", makeTokens(4))
	_ = s.Advance(1)
	it := s.Iterate()
	for it.HasNext() {
		if _, ok := it.Next(); !ok {
			t.Fatal("Next() reported HasNext true but returned !ok")
		}
	}
	if s.Position() != 1 {
		t.Fatalf("iterator must not mutate stream cursor: got %d", s.Position())
	}
}

func TestSpliceAtResetsCursorToStart(t *testing.T) {
	s := token.NewStream("f.hlx", makeTokens(5))
	repl := []token.Token{token.Bare(token.Identifier, "x"), token.Bare(token.Identifier, "y")}
	s.SpliceAt(1, 3, repl)
	if s.Position() != 1 {
		t.Fatalf("SpliceAt must reset cursor to the splice start, got %d", s.Position())
	}
	got := s.Tokens()
	want := []string{"a", "x", "y", "d", "e"}
	if len(got) != len(want) {
		t.Fatalf("spliced length = %d; want %d", len(got), len(want))
	}
	for i, tok := range got {
		if tok.Value != want[i] {
			t.Fatalf("index %d = %q; want %q", i, tok.Value, want[i])
		}
	}
}
