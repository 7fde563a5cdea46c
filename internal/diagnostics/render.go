package diagnostics

import (
	"fmt"
	"strings"

	"github.com/cxlang/cxc/internal/config"
	"github.com/cxlang/cxc/internal/sourcecache"
)

// Render formats r as a multi-line, optionally ANSI-colored report:
// a header line, a window of source context around the failing line,
// a caret pointing at the column, and — when the record carries one —
// a quick-fix line showing the suggested insertion applied in place
// (spec §4.3, modeled on the original project's get_surrounding_lines
// / color_and_mark / insert_and_reorder passes).
func Render(r *Record, cache *sourcecache.Cache, color bool) string {
	var b strings.Builder

	label := paint(color, ansiBold+severityColor(r.Severity), r.Severity.Label())
	loc := paint(color, ansiBold, fmt.Sprintf("%s:%d:%d", r.File, r.Line, r.Column))
	fmt.Fprintf(&b, "%s: %s: %s [%s]\n", loc, label, r.Message, string(r.Code))

	if r.Line > 0 {
		writeContextWindow(&b, cache, r, color)
	}

	if r.Fix != "" {
		fmt.Fprintf(&b, "  %s %s\n", paint(color, ansiGreen, "help:"), r.Fix)
	}
	if r.Hint != "" {
		fmt.Fprintf(&b, "  %s %s\n", paint(color, ansiCyan, "note:"), r.Hint)
	}
	return b.String()
}

// writeContextWindow prints config.ContextWindowLines/2 lines of
// source above and below the failing line, a gutter with line
// numbers, and a caret line under the failing column. It also applies
// any quick-fix insertion to a copy of the failing line so the
// suggested edit is visible inline.
func writeContextWindow(b *strings.Builder, cache *sourcecache.Cache, r *Record, color bool) {
	if cache == nil {
		return
	}
	radius := config.ContextWindowLines / 2
	start := r.Line - radius
	if start < 1 {
		start = 1
	}
	end := r.Line + radius

	gutterWidth := len(fmt.Sprintf("%d", end))

	for ln := start; ln <= end; ln++ {
		text, ok := cache.GetLine(r.File, ln)
		if !ok {
			continue
		}
		if ln == r.Line && len(r.QuickFixes) > 0 {
			text = InsertQuickFixes(text, r.QuickFixes)
		}
		gutter := fmt.Sprintf("%*d", gutterWidth, ln)
		marker := " | "
		if ln == r.Line {
			marker = paint(color, ansiBold, " > ")
		}
		fmt.Fprintf(b, " %s%s%s\n", paint(color, ansiGray, gutter), marker, text)

		if ln == r.Line {
			pad := strings.Repeat(" ", gutterWidth+3+caretOffset(r.Column))
			caretRun := strings.Repeat("^", caretLength(r.Length))
			fmt.Fprintf(b, "%s%s\n", pad, paint(color, ansiBold+severityColor(r.Severity), caretRun))
		}
	}
}

func caretOffset(column int) int {
	if column < 1 {
		return 0
	}
	return column - 1
}

func caretLength(length int) int {
	if length < 1 {
		return 1
	}
	return length
}

// applyQuickFix splices fix into line for display purposes only; it
// never mutates the source cache. Replace takes priority over Insert
// when both are set. Columns past the end of the line are clamped so
// a fix anchored at end-of-line still renders.
func applyQuickFix(line string, fix *QuickFix) string {
	col := fix.Column - 1
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}

	if fix.Replace != "" {
		end := col + fix.Length
		if end > len(line) {
			end = len(line)
		}
		return line[:col] + fix.Replace + line[end:]
	}
	return line[:col] + fix.Insert + line[col:]
}

// InsertQuickFixes applies a batch of fixes to a single line left to
// right, shifting each subsequent fix's column by the cumulative
// length already inserted before it. Fixes are sorted by column first
// so overlapping carets from the same diagnostic set render in source
// order rather than insertion order.
func InsertQuickFixes(line string, fixes []QuickFix) string {
	sorted := make([]QuickFix, len(fixes))
	copy(sorted, fixes)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Column < sorted[j-1].Column; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	var shift int
	out := line
	for _, fix := range sorted {
		shifted := fix
		shifted.Column += shift
		out = applyQuickFix(out, &shifted)
		if shifted.Replace != "" {
			shift += len(shifted.Replace) - shifted.Length
		} else {
			shift += len(shifted.Insert)
		}
	}
	return out
}
