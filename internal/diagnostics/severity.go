// Package diagnostics implements the structured, formatted,
// recoverable reporting engine shared by every compilation stage: the
// error record taxonomy, location metadata, context-line extraction,
// caret/insertion rendering with ANSI coloring, and quick-fix
// insertion (spec §4.3, §7).
package diagnostics

// Severity orders the four diagnostic levels. Error sets the engine's
// has-errored flag; Fatal additionally suppresses further diagnostics
// from the same stage.
type Severity int

const (
	Note Severity = iota
	Warn
	Error
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Note:
		return "note"
	case Warn:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal error"
	default:
		return "unknown"
	}
}

// Label is the short form used as the left-hand marker in rendered
// output ("error:", "warning:", ...).
func (s Severity) Label() string {
	return s.String()
}
