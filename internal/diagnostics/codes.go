package diagnostics

// Code identifies a diagnostic's category and template. Codes are
// grouped by the stage that raises them: L (lexer), P (preprocessor),
// R (parser, "reader" to avoid colliding with the package name), E
// (emitter). The numbering has gaps reserved for future stages.
type Code string

const (
	// Lexer.
	CodeUnknownByte       Code = "L001"
	CodeUnterminatedStr   Code = "L002"
	CodeUnterminatedChar  Code = "L003"
	CodeUnterminatedBlock Code = "L004"
	CodeMalformedNumber   Code = "L005"
	CodeInvalidDirective  Code = "L006"

	// Preprocessor.
	CodeImportNotFound    Code = "P001"
	CodeCyclicImport      Code = "P002"
	CodeNestedImport      Code = "P003"
	CodeMacroRedefined    Code = "P004"
	CodeMacroArity        Code = "P005"
	CodeUnknownMacro      Code = "P006"
	CodeMalformedFFIBlock Code = "P007"
	CodeUnknownABI        Code = "P008"
	CodeNamespaceMismatch Code = "P009"

	// Parser.
	CodeUnexpectedToken    Code = "R001"
	CodeUnexpectedEOF      Code = "R002"
	CodeExpectedExpression Code = "R003"
	CodeExpectedType       Code = "R004"
	CodeInvalidModifier    Code = "R005"
	CodeDuplicateModifier  Code = "R006"
	CodeSelfStaticConflict Code = "R007"
	CodeMissingBlock       Code = "R008"
	CodeInvalidPattern     Code = "R009"
	CodeInvalidLValue      Code = "R010"
	CodeUnclosedDelimiter  Code = "R011"
	CodeMissingSemicolon   Code = "R012"

	// Emitter.
	CodeUnsupportedNode Code = "E001"
	CodeInternal        Code = "E002"
)

// seedTemplate is the factory default for a code's wording, stored in
// the sqlite-backed template table on engine construction. Operators
// can override any row without touching a binary (spec §7's "error
// catalog as data, not code").
type seedTemplate struct {
	Code     Code
	Severity Severity
	Message  string
	Fix      string
}

// defaultTemplates seeds the in-memory error-code table. %s/%d verbs
// are filled positionally from a Record's Args at render time.
var defaultTemplates = []seedTemplate{
	{CodeUnknownByte, Error, "unexpected byte 0x%02x", ""},
	{CodeUnterminatedStr, Error, "unterminated string literal", "add closing %q"},
	{CodeUnterminatedChar, Error, "unterminated character literal", "add closing '"},
	{CodeUnterminatedBlock, Error, "unterminated block comment", "add closing */"},
	{CodeMalformedNumber, Error, "malformed numeric literal %q", ""},
	{CodeInvalidDirective, Error, "invalid compiler directive %q", ""},

	{CodeImportNotFound, Error, "cannot find module %q", ""},
	{CodeCyclicImport, Fatal, "cyclic import detected: %s", ""},
	{CodeNestedImport, Error, "import statements cannot be nested", ""},
	{CodeMacroRedefined, Warn, "macro %q redefined", ""},
	{CodeMacroArity, Error, "macro %q expects %d argument(s), got %d", ""},
	{CodeUnknownMacro, Error, "unknown macro %q", ""},
	{CodeMalformedFFIBlock, Error, "malformed ffi block", "close with }"},
	{CodeUnknownABI, Error, "unknown ffi abi %q", ""},
	{CodeNamespaceMismatch, Error, "mismatched namespace close, expected %q", ""},

	{CodeUnexpectedToken, Error, "unexpected token %q, expected %s", ""},
	{CodeUnexpectedEOF, Error, "unexpected end of file, expected %s", ""},
	{CodeExpectedExpression, Error, "expected expression, found %q", ""},
	{CodeExpectedType, Error, "expected type, found %q", ""},
	{CodeInvalidModifier, Error, "modifier %q is not valid here", ""},
	{CodeDuplicateModifier, Error, "duplicate modifier %q", "remove the repeated modifier"},
	{CodeSelfStaticConflict, Error, "a parameter cannot be both self and static", ""},
	{CodeMissingBlock, Error, "expected a block, found %q", "add { }"},
	{CodeInvalidPattern, Error, "invalid pattern in %s", ""},
	{CodeInvalidLValue, Error, "invalid assignment target", ""},
	{CodeUnclosedDelimiter, Error, "unclosed %q", "add matching %q"},
	{CodeMissingSemicolon, Error, "expected ';' after this", "insert ';'"},

	{CodeUnsupportedNode, Error, "cannot lower %s to CX-IR", ""},
	{CodeInternal, Fatal, "internal compiler error: %s", ""},
}
