// Package preprocessor flattens a lexed token stream: resolving
// imports into the tokens they name, expanding `define` macros at
// their invocation sites, validating `ffi`/`using` blocks, and
// tracking the `module` namespace stack so a macro's qualified name
// reflects where it was defined (spec §4.6).
package preprocessor

import (
	"github.com/cxlang/cxc/internal/config"
	"github.com/cxlang/cxc/internal/diagnostics"
	"github.com/cxlang/cxc/internal/lexer"
	"github.com/cxlang/cxc/internal/sourcecache"
	"github.com/cxlang/cxc/internal/token"
)

// Pass holds the state threaded across one compilation's worth of
// preprocessing: the shared macro table so a module imported twice
// expands consistently, and the import tree for cycle detection.
type Pass struct {
	diags *diagnostics.Engine
	cache *sourcecache.Cache
	tree  *ImportTree
	abis  map[string]bool

	macros map[string]*Macro
}

// NewPass returns a preprocessor pass rooted at entryFile.
func NewPass(entryFile string, cache *sourcecache.Cache, diags *diagnostics.Engine) *Pass {
	abis := make(map[string]bool, len(config.AllowedABIs))
	for _, a := range config.AllowedABIs {
		abis[a] = true
	}
	return &Pass{
		diags:  diags,
		cache:  cache,
		tree:   NewImportTree(entryFile),
		abis:   abis,
		macros: make(map[string]*Macro),
	}
}

// Run flattens toks (from filePath's directory) into a single
// sequential token slice with imports resolved and macros expanded,
// ending in EOF.
func (p *Pass) Run(filePath string, toks []token.Token) []token.Token {
	ns := newNamespaceStack()
	return p.expand(filePath, toks, ns)
}

func (p *Pass) expand(filePath string, toks []token.Token, ns *namespaceStack) []token.Token {
	out := make([]token.Token, 0, len(toks))
	i := 0
	for i < len(toks) {
		t := toks[i]
		switch {
		case t.Kind == token.Punctuation && t.Value == "{":
			ns.OpenBrace()
			out = append(out, t)
			i++
		case t.Kind == token.Punctuation && t.Value == "}":
			ns.CloseBrace()
			out = append(out, t)
			i++
		case t.Kind == token.KeywordModule:
			name, consumed := p.scanModulePath(toks[i+1:])
			ns.Push(name)
			out = append(out, toks[i:i+1+consumed]...)
			i += 1 + consumed
		case t.Kind == token.KeywordImport:
			spliced, consumed := p.handleImport(filePath, toks[i:])
			out = append(out, spliced...)
			i += consumed
		case t.Kind == token.KeywordDefine:
			consumed := p.handleDefine(toks[i:], ns)
			i += consumed // define statements are consumed, not emitted
		case t.Kind == token.Identifier && p.isMacroInvocation(toks, i):
			spliced, consumed := p.handleInvocation(toks, i, ns)
			// Re-run expansion over the splice so nested invocations
			// inside the expanded body are themselves expanded,
			// mirroring the cursor-reset-to-splice-point rule.
			reexpanded := p.expand(filePath, spliced, newNamespaceStack())
			reexpanded = stripEOF(reexpanded)
			out = append(out, reexpanded...)
			i += consumed
		case t.Kind == token.KeywordFFI || t.Kind == token.KeywordUsing:
			consumed := p.validateFFIBlock(toks[i:])
			out = append(out, toks[i:i+consumed]...)
			i += consumed
		default:
			out = append(out, t)
			i++
		}
	}
	return out
}

func stripEOF(toks []token.Token) []token.Token {
	if len(toks) > 0 && toks[len(toks)-1].IsEOF() {
		return toks[:len(toks)-1]
	}
	return toks
}

// scanModulePath consumes `Name(::Name)*` after `module`, returning
// the dotted name and the number of tokens consumed (not including
// the `module` keyword itself, and not including the opening brace).
func (p *Pass) scanModulePath(rest []token.Token) (string, int) {
	if len(rest) == 0 || rest[0].Kind != token.Identifier {
		return "", 0
	}
	name := rest[0].Value
	consumed := 1
	for consumed+1 < len(rest) && rest[consumed].Kind == token.Operator && rest[consumed].Value == "::" && rest[consumed+1].Kind == token.Identifier {
		name += "::" + rest[consumed+1].Value
		consumed += 2
	}
	return name, consumed
}

func (p *Pass) reportCode(code diagnostics.Code, t token.Token, args ...any) {
	if p.diags == nil {
		return
	}
	p.diags.Report(code, t, args...)
}

func isSemicolon(t token.Token) bool { return t.Kind == token.Punctuation && t.Value == ";" }

func findSemicolon(toks []token.Token, start int) int {
	for i := start; i < len(toks); i++ {
		if isSemicolon(toks[i]) {
			return i
		}
	}
	return len(toks)
}

func (p *Pass) isMacroInvocation(toks []token.Token, i int) bool {
	return i+2 < len(toks) &&
		toks[i+1].Kind == token.Operator && toks[i+1].Value == "!" &&
		toks[i+2].Kind == token.Punctuation && toks[i+2].Value == "("
}

// handleInvocation consumes `NAME!(args)` and returns the bound macro
// body plus the count of tokens consumed from the original stream. An
// unknown macro or arity mismatch reports a diagnostic and the
// invocation tokens are dropped from the output.
func (p *Pass) handleInvocation(toks []token.Token, i int, ns *namespaceStack) ([]token.Token, int) {
	nameTok := toks[i]
	qualified := ns.Qualify(nameTok.Value)
	macro, ok := p.macros[qualified]
	if !ok {
		macro, ok = p.macros[nameTok.Value]
	}

	argsStart := i + 3
	args, end := splitMacroArgs(toks, argsStart)
	consumed := end + 1 - i // include closing ')'

	if !ok {
		p.reportCode(diagnostics.CodeUnknownMacro, nameTok, nameTok.Value)
		return nil, consumed
	}
	bound, ok := macro.BindArgs(args)
	if !ok {
		p.reportCode(diagnostics.CodeMacroArity, nameTok, nameTok.Value, len(macro.Params), len(args))
		return nil, consumed
	}
	return macro.Expand(bound), consumed
}

// splitMacroArgs parses a parenthesized, comma-separated argument
// list starting just after the opening `(`, returning each argument's
// token slice and the index of the matching closing `)`.
func splitMacroArgs(toks []token.Token, start int) ([][]token.Token, int) {
	depth := 1
	var args [][]token.Token
	var cur []token.Token
	i := start
	for ; i < len(toks) && depth > 0; i++ {
		t := toks[i]
		switch {
		case t.Kind == token.Punctuation && t.Value == "(":
			depth++
			cur = append(cur, t)
		case t.Kind == token.Punctuation && t.Value == ")":
			depth--
			if depth == 0 {
				if len(cur) > 0 {
					args = append(args, cur)
				}
				return args, i
			}
			cur = append(cur, t)
		case t.Kind == token.Punctuation && t.Value == "," && depth == 1:
			args = append(args, cur)
			cur = nil
		default:
			cur = append(cur, t)
		}
	}
	return args, i - 1
}

// handleDefine parses `define NAME(params): body;` and registers it
// under the current namespace qualification. It returns the number of
// tokens consumed, including the terminating `;`.
func (p *Pass) handleDefine(toks []token.Token, ns *namespaceStack) int {
	i := 1 // skip `define`
	if i >= len(toks) || toks[i].Kind != token.Identifier {
		return findSemicolon(toks, i) + 1
	}
	name := toks[i].Value
	i++

	var params []MacroParam
	if i < len(toks) && toks[i].Kind == token.Punctuation && toks[i].Value == "(" {
		i++
		for i < len(toks) && !(toks[i].Kind == token.Punctuation && toks[i].Value == ")") {
			if toks[i].Kind == token.Identifier {
				param := MacroParam{Name: toks[i].Value}
				i++
				if i < len(toks) && toks[i].Kind == token.Operator && toks[i].Value == "=" {
					i++
					var def []token.Token
					for i < len(toks) && !(toks[i].Kind == token.Punctuation && (toks[i].Value == "," || toks[i].Value == ")")) {
						def = append(def, toks[i])
						i++
					}
					param.Default = def
				}
				params = append(params, param)
			}
			if i < len(toks) && toks[i].Kind == token.Punctuation && toks[i].Value == "," {
				i++
			}
		}
		if i < len(toks) {
			i++ // skip ')'
		}
	}
	if i < len(toks) && toks[i].Kind == token.Punctuation && toks[i].Value == ":" {
		i++
	}

	bodyEnd := findSemicolon(toks, i)
	body := append([]token.Token(nil), toks[i:bodyEnd]...)

	qualified := ns.Qualify(name)
	if _, dup := p.macros[qualified]; dup {
		p.reportCode(diagnostics.CodeMacroRedefined, toks[1], name)
	}
	p.macros[qualified] = &Macro{QualifiedName: qualified, Params: params, Body: body}
	p.macros[name] = p.macros[qualified] // also reachable unqualified from the defining scope

	return bodyEnd + 1
}

// validateFFIBlock consumes an `ffi "<abi>" { ... }` or
// `using "<abi>" { ... }` block (or the single-import spelling
// without braces), checking the ABI is recognized and that every
// inner token is either an import statement or a semicolon. It
// returns the number of tokens consumed.
func (p *Pass) validateFFIBlock(toks []token.Token) int {
	i := 1 // skip `ffi`/`using`
	if i >= len(toks) || toks[i].Kind != token.String {
		return 1
	}
	abi := unquote(toks[i].Value)
	abiTok := toks[i]
	if !p.abis[abi] {
		p.reportCode(diagnostics.CodeUnknownABI, abiTok, abi)
	}
	i++

	if i < len(toks) && toks[i].Kind == token.Punctuation && toks[i].Value == "{" {
		depth := 1
		start := i
		i++
		for i < len(toks) && depth > 0 {
			t := toks[i]
			switch {
			case t.Kind == token.Punctuation && t.Value == "{":
				depth++
			case t.Kind == token.Punctuation && t.Value == "}":
				depth--
			case t.Kind == token.KeywordImport, isSemicolon(t), t.Kind == token.String:
				// allowed inside the block
			default:
				p.reportCode(diagnostics.CodeMalformedFFIBlock, t)
			}
			i++
		}
		if depth != 0 {
			p.reportCode(diagnostics.CodeMalformedFFIBlock, toks[start])
		}
		return i
	}

	// Single-statement form: `ffi "abi" import "sym";`
	return findSemicolon(toks, i) + 1
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// handleImport consumes one import statement and splices in the
// flattened tokens of the file it names. It returns the spliced
// tokens and the number of original tokens consumed (through the
// terminating `;`).
func (p *Pass) handleImport(filePath string, toks []token.Token) ([]token.Token, int) {
	importTok := toks[0]
	i := 1

	var path string
	switch {
	case i < len(toks) && toks[i].Kind == token.String:
		path = unquote(toks[i].Value)
		i++
	case i < len(toks) && toks[i].Kind == token.Identifier:
		path = toks[i].Value
		i++
		for i+1 < len(toks) && toks[i].Kind == token.Operator && toks[i].Value == "::" && toks[i+1].Kind == token.Identifier {
			// A `::{...}` feature list is not a further path segment;
			// stop if we see the brace form.
			if i+1 < len(toks) && toks[i+1].Kind == token.Punctuation {
				break
			}
			path += "/" + toks[i+1].Value
			i += 2
		}
	}

	// Skip an optional `::{A, B}` feature list or `as Alias`.
	if i < len(toks) && toks[i].Kind == token.Operator && toks[i].Value == "::" &&
		i+1 < len(toks) && toks[i+1].Kind == token.Punctuation && toks[i+1].Value == "{" {
		depth := 1
		i += 2
		for i < len(toks) && depth > 0 {
			switch {
			case toks[i].Kind == token.Punctuation && toks[i].Value == "{":
				depth++
			case toks[i].Kind == token.Punctuation && toks[i].Value == "}":
				depth--
			case toks[i].Kind == token.Operator && toks[i].Value == "::" && depth == 1:
				p.reportCode(diagnostics.CodeNestedImport, toks[i])
			}
			i++
		}
	}
	if i < len(toks) && toks[i].Kind == token.KeywordAs && i+1 < len(toks) {
		i += 2
	}

	end := findSemicolon(toks, i)
	consumed := end + 1

	if path == "" {
		return nil, consumed
	}

	resolved := ResolveImportPath(importDirOf(filePath), path)
	if err := p.tree.Enter(filePath, resolved); err != nil {
		p.reportCode(diagnostics.CodeCyclicImport, importTok, err.Error())
		return nil, consumed
	}
	defer p.tree.Leave(resolved)

	contents, ok := p.cache.Read(resolved)
	if !ok {
		p.reportCode(diagnostics.CodeImportNotFound, importTok, path)
		return nil, consumed
	}
	p.cache.Add(resolved, contents)

	toksOfImport := lexer.New(resolved, contents, p.diags).Tokenize().Tokens()
	flattened := p.expand(resolved, stripEOF(toksOfImport), newNamespaceStack())
	return flattened, consumed
}

func importDirOf(filePath string) string {
	idx := lastSlash(filePath)
	if idx < 0 {
		return "."
	}
	return filePath[:idx]
}

func lastSlash(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '/' {
			return i
		}
	}
	return -1
}
