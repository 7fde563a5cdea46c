package preprocessor

import "fmt"

// ImportNode is one file in the import graph built up as the
// preprocessor resolves `import` statements (spec §4.6).
type ImportNode struct {
	Path     string
	Parent   *ImportNode
	Children []*ImportNode
}

// ImportTree tracks the file currently being processed at each
// recursion depth so a cycle (A imports B imports A) is caught before
// it recurses forever, mirroring the loader's Processing-map
// technique with parent/child edges recorded for diagnostics.
type ImportTree struct {
	processing map[string]bool
	root       *ImportNode
	byPath     map[string]*ImportNode
}

// NewImportTree returns a tree rooted at the entry file.
func NewImportTree(entryPath string) *ImportTree {
	root := &ImportNode{Path: entryPath}
	return &ImportTree{
		processing: map[string]bool{entryPath: true},
		root:       root,
		byPath:     map[string]*ImportNode{entryPath: root},
	}
}

// Enter records that parentPath is importing childPath. It returns an
// error naming the closing edge (parent -> child) if childPath is
// already an ancestor on the current import chain.
func (t *ImportTree) Enter(parentPath, childPath string) error {
	if t.processing[childPath] {
		return fmt.Errorf("%s -> %s", parentPath, childPath)
	}
	parent, ok := t.byPath[parentPath]
	if !ok {
		parent = t.root
	}
	child := &ImportNode{Path: childPath, Parent: parent}
	parent.Children = append(parent.Children, child)
	t.byPath[childPath] = child
	t.processing[childPath] = true
	return nil
}

// Leave marks childPath as no longer on the active import chain,
// allowing it to be imported again (diamond-shaped, non-cyclic) from
// a sibling branch.
func (t *ImportTree) Leave(childPath string) {
	delete(t.processing, childPath)
}
