package cst

import (
	"fmt"
	"strings"
)

// Dump renders the tree as an indented outline, one line per node:
// composites show their kind and byte range, leaves additionally show
// their literal text.
func (t *Tree) Dump() string {
	var b strings.Builder
	dumpNode(&b, t.Root, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, n *Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	if n.Kind.IsLeaf() {
		fmt.Fprintf(b, "%s@%d..%d %q\n", n.Kind, n.Start, n.End, n.Token.Text)
		return
	}
	fmt.Fprintf(b, "%s@%d..%d\n", n.Kind, n.Start, n.End)
	for _, c := range n.Children {
		dumpNode(b, c, depth+1)
	}
}
