package cst

import (
	"testing"

	"github.com/odvcencio/citrine/token"
)

func TestNewCompositeSpansChildren(t *testing.T) {
	leaf1 := NewLeaf(SymbolTok, token.New(token.Symbol, "foo", 2))
	leaf2 := NewLeaf(NumberTok, token.New(token.Number, "42", 6))
	n := NewComposite(List, []*Node{leaf1, leaf2})
	if n.Start != 2 || n.End != 8 {
		t.Errorf("composite range = %d..%d, want 2..8", n.Start, n.End)
	}
}

func TestHasErrorPropagates(t *testing.T) {
	errLeaf := NewLeaf(ErrorTok, token.New(token.Error, "@", 0))
	n := NewComposite(List, []*Node{errLeaf})
	if !n.HasError {
		t.Errorf("expected HasError to propagate from an Error leaf")
	}
}

func TestNonTriviaFiltersWhitespaceAndComments(t *testing.T) {
	ws := NewLeaf(WhitespaceTok, token.New(token.Whitespace, " ", 0))
	sym := NewLeaf(SymbolTok, token.New(token.Symbol, "foo", 1))
	n := NewComposite(List, []*Node{ws, sym})
	nt := n.NonTrivia()
	if len(nt) != 1 || nt[0] != sym {
		t.Errorf("NonTrivia() = %v, want just the symbol leaf", nt)
	}
}
