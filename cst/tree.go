package cst

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// Tree is a parsed source file: its full text plus the Root node spanning
// it. Each Tree carries a ulid.ULID identity so a long-running session
// (see package repl) can refer to "the tree I parsed a moment ago"
// without holding a pointer.
type Tree struct {
	id     ulid.ULID
	Source string
	Root   *Node
}

// NewTree wraps root together with the source it was parsed from, stamped
// with the given identity.
func NewTree(source string, root *Node, id ulid.ULID) *Tree {
	return &Tree{id: id, Source: source, Root: root}
}

// ID returns the tree's identity.
func (t *Tree) ID() ulid.ULID {
	return t.id
}

// HasError reports whether any node in the tree is an error node or a
// leaf Error token.
func (t *Tree) HasError() bool {
	return t.Root.HasError
}

// Reconstruct concatenates every leaf token's text in order. For a
// correctly built tree this always equals t.Source exactly; this method
// exists mainly so tests can assert that invariant directly.
func (t *Tree) Reconstruct() string {
	var b strings.Builder
	for _, leaf := range t.Root.Leaves(nil) {
		b.WriteString(leaf.Token.Text)
	}
	return b.String()
}
