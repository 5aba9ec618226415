// Package reader converts a lossless cst.Tree into a Citrine value.Value,
// the semantic tree the evaluator actually walks: trivia and delimiter
// leaves are dropped, literals are decoded, and reader-macro forms become
// their canonical list shapes.
package reader

import (
	"fmt"
	"strings"

	"github.com/odvcencio/citrine/cst"
	"github.com/odvcencio/citrine/value"
)

// SyntaxError reports that a node could not be converted to a value,
// either because the parser already marked it erroneous or because its
// literal text failed to decode (an invalid number or a malformed escape).
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string {
	return "Syntax error: " + e.Message
}

// discardSentinel is returned internally by Discard forms; callers that
// build a sequence drop any child that reads back to this exact value.
var discardSentinel = value.Symbol("\x00citrine-discard\x00")

// Read converts tree's root into a value.Value.
func Read(tree *cst.Tree) (value.Value, error) {
	return readNode(tree.Root, tree.Source)
}

// ReadNode converts a single node (and its descendants) into a value.Value,
// given the full source the node's byte ranges refer into.
func ReadNode(n *cst.Node, source string) (value.Value, error) {
	return readNode(n, source)
}

func readNode(n *cst.Node, source string) (value.Value, error) {
	switch n.Kind {
	case cst.Root:
		kids := n.NonTrivia()
		for len(kids) > 0 && kids[len(kids)-1].Kind == cst.EofTok {
			kids = kids[:len(kids)-1]
		}
		forms, err := readForms(kids, source)
		if err != nil {
			return value.Nil, err
		}
		if len(forms) == 1 {
			return forms[0], nil
		}
		return value.List(forms), nil

	case cst.NumberTok:
		f, err := parseNumber(n.Token.Text)
		if err != nil {
			return value.Nil, &SyntaxError{Message: "invalid number: " + n.Token.Text}
		}
		return value.Num(f), nil

	case cst.StringTok:
		s, err := decodeString(n.Token.Text)
		if err != nil {
			return value.Nil, err
		}
		return value.Str(s), nil

	case cst.SymbolTok:
		return value.Symbol(n.Token.Text), nil

	case cst.KeywordTok:
		return value.Keyword(strings.TrimPrefix(n.Token.Text, ":")), nil

	case cst.CharacterTok:
		s, err := decodeCharacter(n.Token.Text)
		if err != nil {
			return value.Nil, err
		}
		return value.Str(s), nil

	case cst.List:
		if closerMissing(n, cst.RightParenTok) {
			return value.Nil, unclosed("list", n)
		}
		items, err := readForms(innerChildren(n), source)
		if err != nil {
			return value.Nil, err
		}
		return value.List(items), nil

	case cst.Vector:
		if closerMissing(n, cst.RightBracketTok) {
			return value.Nil, unclosed("vector", n)
		}
		items, err := readForms(innerChildren(n), source)
		if err != nil {
			return value.Nil, err
		}
		return value.Vector(items), nil

	case cst.Set:
		if closerMissing(n, cst.RightBraceTok) {
			return value.Nil, unclosed("set", n)
		}
		items, err := readForms(innerChildren(n), source)
		if err != nil {
			return value.Nil, err
		}
		s := value.NewSet()
		for _, it := range items {
			if isDiscard(it) {
				continue
			}
			s = s.SetAdd(it)
		}
		return s, nil

	case cst.Map:
		if closerMissing(n, cst.RightBraceTok) {
			return value.Nil, unclosed("map", n)
		}
		items, err := readForms(innerChildren(n), source)
		if err != nil {
			return value.Nil, err
		}
		m := value.NewMap()
		var pendingKey *value.Value
		for _, it := range items {
			if isDiscard(it) {
				continue
			}
			if pendingKey == nil {
				k := it
				pendingKey = &k
				continue
			}
			m = m.MapSet(*pendingKey, it)
			pendingKey = nil
		}
		if pendingKey != nil {
			return value.Nil, &SyntaxError{Message: "map literal must have an even number of forms"}
		}
		return m, nil

	case cst.QuoteForm:
		return wrapPrefixed(n, "quote", source)
	case cst.BacktickForm:
		return wrapPrefixed(n, "quasiquote", source)
	case cst.UnquoteForm:
		return wrapPrefixed(n, "unquote", source)
	case cst.UnquoteSplicingForm:
		return wrapPrefixed(n, "unquote-splicing", source)

	case cst.MetaForm:
		// Drop the metadata form (the first non-trivia child after the
		// caret), keep only the decorated value.
		inner := n.NonTrivia()
		if len(inner) < 3 {
			return value.Nil, &SyntaxError{Message: "malformed metadata form"}
		}
		return readNode(inner[2], source)

	case cst.TagForm:
		inner := n.NonTrivia()
		if len(inner) < 2 {
			return value.Nil, &SyntaxError{Message: "malformed tagged literal"}
		}
		return readNode(inner[len(inner)-1], source)

	case cst.DiscardForm:
		return discardSentinel, nil

	case cst.ErrorForm, cst.ErrorTok:
		return value.Nil, &SyntaxError{Message: fmt.Sprintf("unexpected token at %d..%d", n.Start, n.End)}

	default:
		// Trivia and delimiters never reach here directly (NonTrivia/
		// innerChildren filter them), but guard anyway rather than panic.
		return value.Nil, &SyntaxError{Message: fmt.Sprintf("unreadable node kind %s", n.Kind)}
	}
}

func isDiscard(v value.Value) bool {
	return v.Tag == value.SymbolTag && v.Str == discardSentinel.Str
}

// closerMissing reports whether a delimited form lost its closing
// delimiter to the parser's error recovery. Such a form is structurally
// present in the tree but not readable.
func closerMissing(n *cst.Node, closer cst.Kind) bool {
	nt := n.NonTrivia()
	return len(nt) < 2 || nt[len(nt)-1].Kind != closer
}

func unclosed(what string, n *cst.Node) error {
	return &SyntaxError{Message: fmt.Sprintf("unclosed %s at %d..%d", what, n.Start, n.End)}
}

// innerChildren returns a composite's non-trivia children with the
// opening and closing delimiter leaves stripped.
func innerChildren(n *cst.Node) []*cst.Node {
	nt := n.NonTrivia()
	if len(nt) == 0 {
		return nil
	}
	start := 0
	if nt[0].Kind.IsDelimiter() || nt[0].Kind == cst.HashLeftBraceTok {
		start = 1
	}
	end := len(nt)
	if end > start && nt[end-1].Kind.IsDelimiter() {
		end--
	}
	return nt[start:end]
}

func readForms(nodes []*cst.Node, source string) ([]value.Value, error) {
	out := make([]value.Value, 0, len(nodes))
	for _, c := range nodes {
		v, err := readNode(c, source)
		if err != nil {
			return nil, err
		}
		if isDiscard(v) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// wrapPrefixed reads a Quote/Backtick/Unquote/UnquoteSplicing form into
// List[Symbol(head), inner].
func wrapPrefixed(n *cst.Node, head string, source string) (value.Value, error) {
	nt := n.NonTrivia()
	if len(nt) < 2 {
		return value.Nil, &SyntaxError{Message: fmt.Sprintf("malformed %s form", head)}
	}
	inner, err := readNode(nt[len(nt)-1], source)
	if err != nil {
		return value.Nil, err
	}
	return value.List([]value.Value{value.Symbol(head), inner}), nil
}
