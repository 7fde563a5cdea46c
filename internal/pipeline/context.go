// Package pipeline wires the four core stages — lexer, preprocessor,
// parser, CX-IR emitter — into a single run per compilation unit
// (spec §2's "source text → tokens → preprocessed tokens → AST → CX-IR
// token stream"). Each stage is a Processor that reads and writes a
// shared Context, the same borrow-by-reference shape the driver needs
// to report progress between stages without owning their internals.
package pipeline

import (
	"github.com/cxlang/cxc/internal/ast"
	"github.com/cxlang/cxc/internal/cxir"
	"github.com/cxlang/cxc/internal/diagnostics"
	"github.com/cxlang/cxc/internal/sourcecache"
	"github.com/cxlang/cxc/internal/token"
)

// Context holds everything passed between pipeline stages for one
// compilation unit. Earlier stages populate fields later ones read;
// a nil field downstream means the owning stage never ran (either it
// was skipped or an earlier stage failed fatally).
type Context struct {
	FilePath string
	Source   string

	Cache *sourcecache.Cache
	Diags *diagnostics.Engine

	RawTokens  *token.Stream // lexer output
	PPTokens   *token.Stream // preprocessor output
	Program    *ast.Program  // parser output
	IR         *cxir.Buffer  // emitter output
	Aborted    bool          // set when a stage hit a fatal diagnostic
}

// NewContext seeds a Context for compiling source from filePath,
// sharing cache and diags with any sibling units in the same process
// (spec §5: "the source cache is shared across all core instances").
func NewContext(filePath, source string, cache *sourcecache.Cache, diags *diagnostics.Engine) *Context {
	return &Context{
		FilePath: filePath,
		Source:   source,
		Cache:    cache,
		Diags:    diags,
	}
}
