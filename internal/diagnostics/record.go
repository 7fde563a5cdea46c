package diagnostics

import (
	"fmt"

	"github.com/cxlang/cxc/internal/token"
)

// QuickFix is a single textual insertion or replacement suggested
// alongside a diagnostic. Column is 1-based and Insert is spliced in
// before that column; Replace, when non-empty, overwrites Length
// bytes starting at Column instead of inserting.
type QuickFix struct {
	Column  int
	Insert  string
	Replace string
	Length  int
}

// Record is one reported diagnostic. File, Line, Column, Offset and
// Length are copied from the location of the token it was reported
// at; ReportAt builds one from an explicit file/line/column for a
// diagnostic raised before any token exists, leaving Offset and
// Length zero.
type Record struct {
	ID         string
	Code       Code
	Severity   Severity
	File       string
	Line       int
	Column     int
	Offset     int
	Length     int
	Message    string
	Fix        string
	QuickFixes []QuickFix
	Hint       string
}

// newRecord builds a Record anchored to tok with severity sev,
// formatting args into message and (when non-empty) fix. With no args
// both are used verbatim.
func newRecord(id string, code Code, sev Severity, message, fix string, tok token.Token, args ...any) *Record {
	msg := message
	f := fix
	if len(args) > 0 {
		msg = fmt.Sprintf(message, args...)
		if fix != "" {
			f = fmt.Sprintf(fix, args...)
		}
	}
	return &Record{
		ID:       id,
		Code:     code,
		Severity: sev,
		File:     tok.Location.File,
		Line:     tok.Location.Line,
		Column:   tok.Location.Column,
		Offset:   tok.Location.Offset,
		Length:   tok.Location.Length,
		Message:  msg,
		Fix:      f,
	}
}

// SerializedFix is the wire projection of one QuickFix: the literal
// text to apply and the column it applies at.
type SerializedFix struct {
	Fix string `json:"fix"`
	Loc int    `json:"loc"`
}

// Serialized is the JSON-friendly projection of a Record, matching
// spec §6's structured diagnostic output fields.
type Serialized struct {
	ID        string          `json:"id"`
	ColorMode string          `json:"color_mode"`
	Code      string          `json:"error_type"`
	Level     string          `json:"level"`
	File      string          `json:"file"`
	Line      int             `json:"line"`
	Column    int             `json:"col"`
	Offset    int             `json:"offset"`
	Message   string          `json:"msg"`
	Fix       string          `json:"fix,omitempty"`
	QuickFix  []SerializedFix `json:"quick_fix,omitempty"`
}

// Serialize projects r into its wire form. colorMode records which
// color mode the reporting session resolved to, so a structured
// consumer (--emit-ast/tooling) knows whether fix/msg text may carry
// ANSI escapes without re-deriving it.
func (r *Record) Serialize(colorMode string) Serialized {
	var qf []SerializedFix
	for _, f := range r.QuickFixes {
		text := f.Insert
		if f.Replace != "" {
			text = f.Replace
		}
		qf = append(qf, SerializedFix{Fix: text, Loc: f.Column})
	}
	return Serialized{
		ID:        r.ID,
		ColorMode: colorMode,
		Code:      string(r.Code),
		Level:     r.Severity.Label(),
		File:      r.File,
		Line:      r.Line,
		Column:    r.Column,
		Offset:    r.Offset,
		Message:   r.Message,
		Fix:       r.Fix,
		QuickFix:  qf,
	}
}

func (r *Record) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", r.File, r.Line, r.Column, r.Severity.Label(), r.Message)
}
