package ast

import "github.com/cxlang/cxc/internal/token"

// ModifierCategory groups modifier keywords the parser validates a
// declaration's modifier bag against (spec §4.7: "each Modifiers
// instance declares which categories it accepts").
type ModifierCategory int

const (
	CategoryAccess ModifierCategory = iota
	CategoryFunctionSpecifier
	CategoryClassSpecifier
)

// Modifier is one leading keyword collected before a declaration,
// e.g. `public`, `static`, `inline`, `async`.
type Modifier struct {
	Token    token.Token
	Category ModifierCategory
}

// categoryOf classifies a modifier keyword; ok is false for a keyword
// that is never a valid modifier.
func categoryOf(k token.Kind) (ModifierCategory, bool) {
	switch k {
	case token.KeywordPublic, token.KeywordPrivate, token.KeywordProtected, token.KeywordInternal:
		return CategoryAccess, true
	case token.KeywordStatic, token.KeywordInline, token.KeywordAsync:
		return CategoryFunctionSpecifier, true
	default:
		return 0, false
	}
}

// Modifiers is the bag of modifier keywords collected before a
// declaration, along with the set of categories the declaration kind
// accepts. Attaching a modifier outside the declared categories, or
// repeating one, is a parse error (spec §4.7, §4.8).
type Modifiers struct {
	accepted map[ModifierCategory]bool
	byName   map[string]Modifier
	order    []Modifier
}

// NewModifiers returns an empty bag that accepts exactly the given
// categories.
func NewModifiers(accepted ...ModifierCategory) *Modifiers {
	m := &Modifiers{
		accepted: make(map[ModifierCategory]bool, len(accepted)),
		byName:   make(map[string]Modifier),
	}
	for _, c := range accepted {
		m.accepted[c] = true
	}
	return m
}

// Accepts reports whether category is valid for this declaration.
func (m *Modifiers) Accepts(category ModifierCategory) bool {
	return m.accepted[category]
}

// Add attempts to attach tok as a modifier. It returns an error
// description for the caller to turn into a diagnostic: "" on
// success, "unknown" if tok's kind is never a modifier, "category" if
// it is a modifier but not one this bag accepts, or "duplicate" if
// the same spelling was already added.
func (m *Modifiers) Add(tok token.Token) string {
	cat, ok := categoryOf(tok.Kind)
	if !ok {
		return "unknown"
	}
	if !m.accepted[cat] {
		return "category"
	}
	if _, dup := m.byName[tok.Value]; dup {
		return "duplicate"
	}
	m.byName[tok.Value] = Modifier{Token: tok, Category: cat}
	m.order = append(m.order, Modifier{Token: tok, Category: cat})
	return ""
}

// Has reports whether name (e.g. "static", "public") was attached.
func (m *Modifiers) Has(name string) bool {
	_, ok := m.byName[name]
	return ok
}

// List returns every attached modifier in source order.
func (m *Modifiers) List() []Modifier {
	return m.order
}

// AccessLevel returns the single access modifier name attached, or
// "" if none was given (the emitter then defaults per spec §4.9).
func (m *Modifiers) AccessLevel() string {
	for _, mod := range m.order {
		if mod.Category == CategoryAccess {
			return mod.Token.Value
		}
	}
	return ""
}
