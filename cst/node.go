package cst

import "github.com/odvcencio/citrine/token"

// Node is one element of the concrete syntax tree: either a leaf wrapping a
// single token.Token, or a composite holding an ordered list of children.
// A composite's byte range is always the union of its children's ranges, so
// concatenating every leaf's Text in tree order reproduces the source
// exactly (including whitespace, comments, and error text).
type Node struct {
	Kind     Kind
	Start    uint32
	End      uint32
	Token    token.Token // valid only when Kind.IsLeaf()
	Children []*Node     // valid only when !Kind.IsLeaf()
	HasError bool        // true for this node or propagated from any child
}

// NewLeaf wraps a single token as a leaf node.
func NewLeaf(kind Kind, tok token.Token) *Node {
	return &Node{
		Kind:     kind,
		Start:    tok.Start,
		End:      tok.End,
		Token:    tok,
		HasError: kind == ErrorTok,
	}
}

// NewComposite builds a composite node spanning all of children, in order.
// children must be non-empty; an empty composite has no well-defined range.
func NewComposite(kind Kind, children []*Node) *Node {
	n := &Node{Kind: kind, Children: children}
	if len(children) > 0 {
		n.Start = children[0].Start
		n.End = children[len(children)-1].End
	}
	for _, c := range children {
		if c.HasError {
			n.HasError = true
		}
	}
	if kind == ErrorForm {
		n.HasError = true
	}
	return n
}

// Text returns the exact source slice this node spans, given the full
// source string the tree was parsed from.
func (n *Node) Text(source string) string {
	return source[n.Start:n.End]
}

// Leaves appends every leaf beneath n, in left-to-right order, to dst.
func (n *Node) Leaves(dst []*Node) []*Node {
	if n.Kind.IsLeaf() {
		return append(dst, n)
	}
	for _, c := range n.Children {
		dst = c.Leaves(dst)
	}
	return dst
}

// NonTrivia returns n's children with whitespace and comment leaves
// filtered out; used by the reader, which never sees trivia.
func (n *Node) NonTrivia() []*Node {
	out := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Kind.IsLeaf() && c.Kind.IsTrivia() {
			continue
		}
		out = append(out, c)
	}
	return out
}
