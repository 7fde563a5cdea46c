package token

import "errors"

// ErrOutOfBounds is returned by Advance/Reverse when the move would
// cross either end of the stream.
var ErrOutOfBounds = errors.New("token: cursor move out of bounds")

// Stream is a mutable cursor over an immutable backing sequence of
// tokens. Slicing produces an independent Stream over its own copy of
// the selected tokens, sharing none of the cursor state of its parent.
type Stream struct {
	file   string
	tokens []Token
	cursor int
}

// NewStream builds a stream over tokens produced for the given file.
// The cursor starts at position 0.
func NewStream(file string, tokens []Token) *Stream {
	cp := make([]Token, len(tokens))
	copy(cp, tokens)
	return &Stream{file: file, tokens: cp}
}

// File returns the path of the file that produced this stream.
func (s *Stream) File() string { return s.file }

// Len returns the total number of tokens backing the stream,
// independent of cursor position.
func (s *Stream) Len() int { return len(s.tokens) }

// Position returns the current cursor index.
func (s *Stream) Position() int { return s.cursor }

// Remaining returns the count of tokens from the cursor to the end.
func (s *Stream) Remaining() int { return len(s.tokens) - s.cursor }

// Current returns the token at the cursor. Calling it at or past the
// end of the stream is undefined; callers check Remaining first, or
// rely on the final token always being an EOF sentinel.
func (s *Stream) Current() Token {
	if s.cursor >= len(s.tokens) {
		if len(s.tokens) == 0 {
			return Token{Kind: EOF}
		}
		return s.tokens[len(s.tokens)-1]
	}
	return s.tokens[s.cursor]
}

// Peek returns the token n positions ahead of the cursor (n may be
// negative to look behind). ok is false if the position lies outside
// the backing sequence.
func (s *Stream) Peek(n int) (tok Token, ok bool) {
	i := s.cursor + n
	if i < 0 || i >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[i], true
}

// Advance moves the cursor forward by n (n >= 0). It fails without
// moving the cursor if doing so would cross the end of the stream.
func (s *Stream) Advance(n int) error {
	if n < 0 {
		return ErrOutOfBounds
	}
	if s.cursor+n > len(s.tokens) {
		return ErrOutOfBounds
	}
	s.cursor += n
	return nil
}

// Reverse moves the cursor backward by n (n >= 0). It fails without
// moving the cursor if doing so would cross the start of the stream.
func (s *Stream) Reverse(n int) error {
	if n < 0 {
		return ErrOutOfBounds
	}
	if s.cursor-n < 0 {
		return ErrOutOfBounds
	}
	s.cursor -= n
	return nil
}

// Slice returns a new stream over tokens at indices [a, b) of the
// backing sequence. Negative indices count from the end, as in Python
// slicing. The new stream's cursor starts at 0 and shares no mutable
// state with the original.
func (s *Stream) Slice(a, b int) *Stream {
	n := len(s.tokens)
	a = normalizeIndex(a, n)
	b = normalizeIndex(b, n)
	if a < 0 {
		a = 0
	}
	if b > n {
		b = n
	}
	if a > b {
		a = b
	}
	return NewStream(s.file, s.tokens[a:b])
}

// SplitAt yields the pair of slices [0, i) and [i, len) of the
// backing sequence. Neither aliases the original's cursor.
func (s *Stream) SplitAt(i int) (before, at *Stream) {
	return s.Slice(0, i), s.Slice(i, s.Len())
}

// Tokens returns a defensive copy of the full backing sequence,
// ignoring cursor position. Used by the preprocessor to splice
// expansions and by debug dumps (--emit-tokens).
func (s *Stream) Tokens() []Token {
	cp := make([]Token, len(s.tokens))
	copy(cp, s.tokens)
	return cp
}

// Replace swaps the backing sequence for a copy of tokens and resets
// the cursor to 0, so a rescan starts from the first token.
func (s *Stream) Replace(tokens []Token) {
	cp := make([]Token, len(tokens))
	copy(cp, tokens)
	s.tokens = cp
	s.cursor = 0
}

// SpliceAt replaces the tokens in [start, end) with replacement and
// resets the cursor to start, so subsequent expansion of nested forms
// within replacement is picked up on the next scan.
func (s *Stream) SpliceAt(start, end int, replacement []Token) {
	n := len(s.tokens)
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start > end {
		start = end
	}
	out := make([]Token, 0, start+len(replacement)+(n-end))
	out = append(out, s.tokens[:start]...)
	out = append(out, replacement...)
	out = append(out, s.tokens[end:]...)
	s.tokens = out
	s.cursor = start
}

func normalizeIndex(i, n int) int {
	if i < 0 {
		return n + i
	}
	return i
}

// Iterator is a bidirectional, peeking traversal over a Stream that
// does not disturb the stream's own cursor. Mutating the underlying
// stream while an iterator is live is undefined.
type Iterator struct {
	s   *Stream
	pos int
}

// Iterate returns an Iterator starting at the stream's current cursor
// position.
func (s *Stream) Iterate() *Iterator {
	return &Iterator{s: s, pos: s.cursor}
}

// HasNext reports whether another token lies forward of the iterator.
func (it *Iterator) HasNext() bool { return it.pos < len(it.s.tokens) }

// HasPrev reports whether another token lies behind the iterator.
func (it *Iterator) HasPrev() bool { return it.pos > 0 }

// Next returns the token at the iterator and advances it.
func (it *Iterator) Next() (Token, bool) {
	if !it.HasNext() {
		return Token{}, false
	}
	tok := it.s.tokens[it.pos]
	it.pos++
	return tok, true
}

// Prev steps the iterator backward and returns the token landed on.
func (it *Iterator) Prev() (Token, bool) {
	if !it.HasPrev() {
		return Token{}, false
	}
	it.pos--
	return it.s.tokens[it.pos], true
}

// PeekAt returns the token n positions ahead of the iterator without
// moving it.
func (it *Iterator) PeekAt(n int) (Token, bool) {
	i := it.pos + n
	if i < 0 || i >= len(it.s.tokens) {
		return Token{}, false
	}
	return it.s.tokens[i], true
}
