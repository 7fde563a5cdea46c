// Package cxir lowers a parsed program into CX-IR, the C++-dialect
// textual intermediate representation fed to the external toolchain
// (spec §4.9). Buffer is the emitter's append-only output; Emitter is
// the AST visitor that fills it.
package cxir

import (
	"fmt"
	"strings"
	"time"

	"github.com/cxlang/cxc/internal/token"
)

// Token is one unit of emitted IR text, tagged with the source token
// it was lowered from (the zero Token for synthesized text such as
// `auto` or a brace) so a readable rendering can recover line:column
// breadcrumbs back to the original program.
type Token struct {
	Text    string
	Origin  token.Token
	Spaced  bool // true if a single space precedes this token when rendered
	Newline bool // true if this token starts on a fresh line
}

// Buffer is the emitter's append-only output; once Emit returns, no
// further tokens are appended (spec §3: "the CX-IR token stream is
// append-only during emission; once closed, it is immutable").
type Buffer struct {
	toks []Token
}

func (b *Buffer) push(t Token) {
	b.toks = append(b.toks, t)
}

func (b *Buffer) Len() int { return len(b.toks) }

// String concatenates the buffer into a single translation unit,
// inserting a space wherever a token requested one.
func (b *Buffer) String() string {
	var sb strings.Builder
	for _, t := range b.toks {
		if t.Newline && sb.Len() > 0 {
			sb.WriteByte('\n')
		} else if t.Spaced && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Text)
	}
	return sb.String()
}

// Readable renders the buffer with inline line:column comments
// whenever the originating source line changes, for inspection
// (spec §4.9's "readable rendering that preserves line-column
// hints").
func (b *Buffer) Readable() string {
	var sb strings.Builder
	lastLine := -1
	for _, t := range b.toks {
		if !t.Origin.Location.IsZero() && t.Origin.Location.Line != lastLine {
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			fmt.Fprintf(&sb, "/* %s:%d:%d */ ", t.Origin.Location.File, t.Origin.Location.Line, t.Origin.Location.Column)
			lastLine = t.Origin.Location.Line
		} else if t.Newline && sb.Len() > 0 {
			sb.WriteByte('\n')
		} else if t.Spaced && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Text)
	}
	return sb.String()
}

// Provenance returns the comment header prefixed to emitted output
// (spec §6's "file format — CX-IR output"). now is injected by the
// caller since the package itself never reads the clock.
func Provenance(now time.Time) string {
	return fmt.Sprintf("// generated by cxc at %d\n", now.Unix())
}
