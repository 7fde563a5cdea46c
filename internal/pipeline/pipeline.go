package pipeline

import (
	"github.com/cxlang/cxc/internal/cxir"
	"github.com/cxlang/cxc/internal/lexer"
	"github.com/cxlang/cxc/internal/parser"
	"github.com/cxlang/cxc/internal/preprocessor"
	"github.com/cxlang/cxc/internal/token"
)

// Pipeline runs a fixed sequence of Processors over a Context,
// stopping early once a stage marks it aborted.
type Pipeline struct {
	stages []Processor
}

// New builds a Pipeline from the given stages, run in order.
func New(stages ...Processor) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run executes every stage in order, short-circuiting once a fatal
// diagnostic aborts the unit (spec §5's "cancellation: a fatal
// diagnostic terminates the current stage cleanly").
func (p *Pipeline) Run(ctx *Context) {
	for _, stage := range p.stages {
		if ctx.Aborted {
			return
		}
		stage.Process(ctx)
		if ctx.Diags != nil && ctx.Diags.IsFatal() {
			ctx.Aborted = true
		}
	}
}

// Standard returns the default front-end pipeline: lex, preprocess,
// parse, emit (spec §2's stage list). The cxc driver does not call it:
// it builds its own stage list (selectStages in cmd/cxc), and other
// tooling that only needs, say, tokens or an AST can likewise
// assemble a shorter Pipeline from the individual stages below.
func Standard() *Pipeline {
	return New(LexStage{}, PreprocessStage{}, ParseStage{}, EmitStage{})
}

// LexStage turns ctx.Source into a raw token stream.
type LexStage struct{}

func (LexStage) Process(ctx *Context) {
	lx := lexer.New(ctx.FilePath, ctx.Source, ctx.Diags)
	ctx.RawTokens = lx.Tokenize()
}

// PreprocessStage expands macros and imports in the raw token stream
// and validates ffi/using blocks (spec §4.6); compiler directives pass
// through unchanged.
type PreprocessStage struct{}

func (PreprocessStage) Process(ctx *Context) {
	if ctx.RawTokens == nil {
		return
	}
	pass := preprocessor.NewPass(ctx.FilePath, ctx.Cache, ctx.Diags)
	out := pass.Run(ctx.FilePath, ctx.RawTokens.Tokens())
	ctx.PPTokens = token.NewStream(ctx.FilePath, out)
}

// ParseStage builds the AST from the preprocessed token stream.
type ParseStage struct{}

func (ParseStage) Process(ctx *Context) {
	if ctx.PPTokens == nil {
		return
	}
	p := parser.New(ctx.PPTokens, ctx.Diags)
	ctx.Program = p.ParseProgram()
}

// EmitStage lowers the AST to CX-IR.
type EmitStage struct{}

func (EmitStage) Process(ctx *Context) {
	if ctx.Program == nil {
		return
	}
	ctx.IR = cxir.Emit(ctx.Program, ctx.Diags, ctx.FilePath)
}
