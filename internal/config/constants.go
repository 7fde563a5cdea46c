// Package config holds the data tables the lexer, preprocessor, and
// parser are driven by: keywords, operators, precedence, and the
// small set of constants that tune diagnostic rendering. Keeping these
// as data (rather than scattering literals through the stages) mirrors
// how the diagnostic error map itself is data, not code (see
// package diagnostics).
package config

// SourceFileExt is the canonical extension for source files of the
// Language.
const SourceFileExt = ".hlx"

// SourceFileExtensions lists the source-file extensions of the
// Language. The module resolver (preprocessor.ResolveImportPath) does
// not read this list; it checks SourceFileExt only.
var SourceFileExtensions = []string{".hlx"}

// ContextWindowLines is the fixed number of source lines shown around
// a diagnostic's point of failure (N in the spec; kept small and odd
// so the failing line is always centered).
const ContextWindowLines = 5

// IndentWidth is the number of spaces a single diagnostic indent level
// stands for. Render does not read it: rendered diagnostics carry no
// indent.
const IndentWidth = 4

// MaxConsecutiveBlankInterior is the limit of consecutive blank
// interior lines for a context window. Render does not read it: blank
// interior lines are printed as they are and never collapse into an
// ellipsis marker.
const MaxConsecutiveBlankInterior = 2

// AllowedABIs lists the FFI ABI strings `using "<abi>"` / `ffi "<abi>"`
// blocks may name. It is data, consulted by the preprocessor, not a
// hardcoded switch.
var AllowedABIs = []string{"c", "c++", "python", "rust"}

// InternalExitCode is returned by the driver when a required source
// line cannot be retrieved while rendering a diagnostic (spec §6).
const InternalExitCode = 288
