package preprocessor

import "strings"

// namespaceFrame is one entry on the namespace stack: the qualified
// name pushed by a named `module X::Y { ... }` block and the brace
// depth at which it was pushed, so the matching `}` pops it (spec
// §4.6). Anonymous blocks (Name == "") still occupy a frame so brace
// counting stays correct, but contribute nothing to the qualifier.
type namespaceFrame struct {
	Name       string
	DepthAtPush int
}

// namespaceStack tracks the current qualification as `{`/`}` are
// consumed from the token stream.
type namespaceStack struct {
	frames []namespaceFrame
	depth  int
}

func newNamespaceStack() *namespaceStack {
	return &namespaceStack{}
}

// OpenBrace records an unconditional `{` balance step. Callers
// that just pushed a named module frame should call this too, since
// the frame's own DepthAtPush already accounts for the brace that
// opens its body.
func (s *namespaceStack) OpenBrace() { s.depth++ }

// CloseBrace pops every frame whose DepthAtPush is deeper than the
// depth this brace returns to, i.e. the frame whose body it closes.
func (s *namespaceStack) CloseBrace() {
	s.depth--
	for len(s.frames) > 0 && s.frames[len(s.frames)-1].DepthAtPush > s.depth {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// Push enters a named module body; call OpenBrace for the `{` that
// follows separately, in token order.
func (s *namespaceStack) Push(name string) {
	s.frames = append(s.frames, namespaceFrame{Name: name, DepthAtPush: s.depth + 1})
}

// Qualify joins the active named frames with name using `::`.
func (s *namespaceStack) Qualify(name string) string {
	parts := make([]string, 0, len(s.frames)+1)
	for _, f := range s.frames {
		if f.Name != "" {
			parts = append(parts, f.Name)
		}
	}
	parts = append(parts, name)
	return strings.Join(parts, "::")
}
