// Command cxc is the thin driver around the core compiler pipeline
// (spec §6): it reads a source file, runs lex/preprocess/parse/emit,
// and writes CX-IR (or a debug dump) to stdout or -o. Flag handling
// beyond a handful of emit/output switches is out of scope for the
// core; the external C++ toolchain invocation these flags ultimately
// feed is not performed here.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/cxlang/cxc/internal/config"
	"github.com/cxlang/cxc/internal/cxir"
	"github.com/cxlang/cxc/internal/diagnostics"
	"github.com/cxlang/cxc/internal/pipeline"
	"github.com/cxlang/cxc/internal/prettyprinter"
	"github.com/cxlang/cxc/internal/sourcecache"
	"github.com/cxlang/cxc/internal/utils"
)

type options struct {
	sourcePath string
	outputPath string
	cachePath  string
	emitTokens bool
	emitAST    bool
	emitIR     bool
	verbose    bool
	quiet      bool
	color      diagnostics.ColorMode
}

func parseArgs(args []string) (*options, error) {
	opts := &options{color: diagnostics.ColorAuto}
	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--emit-tokens":
			opts.emitTokens = true
		case arg == "--emit-ast":
			opts.emitAST = true
		case arg == "--emit-ir":
			opts.emitIR = true
		case arg == "--verbose":
			opts.verbose = true
		case arg == "--quiet":
			opts.quiet = true
		case arg == "--color":
			opts.color = diagnostics.ColorAlways
		case arg == "--no-color":
			opts.color = diagnostics.ColorNever
		case arg == "-o":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("-o requires a path")
			}
			i++
			opts.outputPath = args[i]
		case arg == "--cache":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--cache requires a path")
			}
			i++
			opts.cachePath = args[i]
		case strings.HasPrefix(arg, "-"):
			// Flags the driver doesn't need in order to exercise the
			// core (target/arch/optimization/library flags) are
			// accepted and ignored; the external toolchain reads them.
		default:
			if opts.sourcePath != "" {
				return nil, fmt.Errorf("unexpected extra argument %q", arg)
			}
			opts.sourcePath = arg
		}
	}
	if opts.sourcePath == "" {
		return nil, fmt.Errorf("usage: cxc [flags] <source.hlx>")
	}
	return opts, nil
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	opts, err := parseArgs(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(run(opts))
}

func run(opts *options) int {
	started := time.Now()

	source, err := os.ReadFile(opts.sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", opts.sourcePath, err)
		return 1
	}

	cache := sourcecache.New()
	if opts.cachePath != "" {
		if err := cache.Hydrate(opts.cachePath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: cannot hydrate cache %s: %v\n", opts.cachePath, err)
		}
	}
	cache.Add(opts.sourcePath, string(source))

	diags, err := diagnostics.NewEngine(cache, opts.color)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot initialize diagnostics: %v\n", err)
		return 1
	}
	defer diags.Close()

	ctx := pipeline.NewContext(opts.sourcePath, string(source), cache, diags)
	stages := selectStages(opts)
	pipeline.New(stages...).Run(ctx)

	if len(diags.Records()) > 0 && !opts.quiet {
		for _, r := range diags.Records() {
			if _, ok := cache.GetLine(r.File, r.Line); !ok {
				fmt.Fprintf(os.Stderr, "cannot retrieve line %d of %s for diagnostic rendering\n", r.Line, r.File)
				return config.InternalExitCode
			}
		}
		if err := diags.WriteAll(os.Stderr); err != nil {
			fmt.Fprintf(os.Stderr, "error writing diagnostics: %v\n", err)
		}
	}

	if diags.IsFatal() {
		return 1
	}

	out, err := renderOutput(opts, ctx, started)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := writeOutput(opts, ctx, out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if opts.cachePath != "" {
		if err := cache.Persist(opts.cachePath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: cannot persist cache %s: %v\n", opts.cachePath, err)
		}
	}

	if opts.verbose {
		printStats(opts, ctx, time.Since(started))
	}

	if diags.HasErrored() {
		return 1
	}
	return 0
}

// selectStages trims the standard pipeline to what the requested
// --emit-* flag actually needs, since parsing tokens into an AST only
// to discard it for --emit-tokens wastes a stage.
func selectStages(opts *options) []pipeline.Processor {
	stages := []pipeline.Processor{pipeline.LexStage{}, pipeline.PreprocessStage{}}
	if opts.emitTokens && !opts.emitAST && !opts.emitIR {
		return stages
	}
	stages = append(stages, pipeline.ParseStage{})
	if opts.emitAST && !opts.emitIR {
		return stages
	}
	return append(stages, pipeline.EmitStage{})
}

func renderOutput(opts *options, ctx *pipeline.Context, emittedAt time.Time) (string, error) {
	switch {
	case opts.emitTokens:
		if ctx.PPTokens == nil {
			return "", fmt.Errorf("no tokens produced")
		}
		var b strings.Builder
		for _, t := range ctx.PPTokens.Tokens() {
			fmt.Fprintf(&b, "%s\n", t.String())
		}
		return b.String(), nil
	case opts.emitAST:
		if ctx.Program == nil {
			return "", fmt.Errorf("no program parsed")
		}
		return prettyprinter.Print(ctx.Program), nil
	default:
		if ctx.IR == nil {
			return "", fmt.Errorf("no CX-IR emitted")
		}
		return cxir.Provenance(emittedAt) + ctx.IR.String() + "\n", nil
	}
}

func writeOutput(opts *options, ctx *pipeline.Context, out string) error {
	if opts.outputPath == "" {
		fmt.Print(out)
		return nil
	}
	return os.WriteFile(opts.outputPath, []byte(out), 0o644)
}

func printStats(opts *options, ctx *pipeline.Context, elapsed time.Duration) {
	name := utils.ExtractModuleName(opts.sourcePath)
	tokCount := 0
	if ctx.PPTokens != nil {
		tokCount = ctx.PPTokens.Len()
	}
	irBytes := 0
	if ctx.IR != nil {
		irBytes = len(ctx.IR.String())
	}
	fmt.Fprintf(os.Stderr, "%s: %s tokens, %s IR, %s\n",
		name,
		humanize.Comma(int64(tokCount)),
		humanize.Bytes(uint64(irBytes)),
		elapsed.Round(time.Microsecond))
}
