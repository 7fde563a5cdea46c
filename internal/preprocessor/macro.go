package preprocessor

import "github.com/cxlang/cxc/internal/token"

// MacroParam is one formal parameter of a `define` body, optionally
// defaulted.
type MacroParam struct {
	Name    string
	Default []token.Token // nil if required
}

// Macro is a `define NAME(params): body;` definition, keyed by its
// namespace-qualified name so invocations inside nested modules still
// resolve (spec §4.6).
type Macro struct {
	QualifiedName string
	Params        []MacroParam
	Body          []token.Token
}

// BindArgs checks invocation arity against the definition (filling
// defaults for omitted trailing arguments) and returns a
// parameter-name -> token-sequence substitution map, or false on an
// arity mismatch (too many arguments, or a missing one with no
// default).
func (m *Macro) BindArgs(args [][]token.Token) (map[string][]token.Token, bool) {
	if len(args) > len(m.Params) {
		return nil, false
	}
	bound := make(map[string][]token.Token, len(m.Params))
	for i, p := range m.Params {
		switch {
		case i < len(args):
			bound[p.Name] = args[i]
		case p.Default != nil:
			bound[p.Name] = p.Default
		default:
			return nil, false
		}
	}
	return bound, true
}

// Expand substitutes bound parameter tokens into a fresh copy of the
// macro body. An identifier token whose value names a parameter is
// replaced wholesale by that parameter's bound token sequence;
// every other token is copied as-is.
func (m *Macro) Expand(bound map[string][]token.Token) []token.Token {
	var out []token.Token
	for _, t := range m.Body {
		if t.Kind == token.Identifier {
			if sub, ok := bound[t.Value]; ok {
				out = append(out, sub...)
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
