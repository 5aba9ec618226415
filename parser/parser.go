// Package parser builds a lossless cst.Tree from Citrine source text using
// a hand-written recursive-descent parser over the lexer's token stream.
// Recovery is local: anything unexpected is wrapped in an error node and
// parsing keeps going, so no input byte is ever dropped.
package parser

import (
	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/citrine/cst"
	"github.com/odvcencio/citrine/lexer"
	"github.com/odvcencio/citrine/token"
)

// Parse tokenizes and parses source into a complete cst.Tree. It never
// returns an error: malformed input is captured as cst.ErrorForm/ErrorTok
// nodes within an otherwise well-formed tree, and callers can check
// Tree.HasError to detect that.
func Parse(source string) *cst.Tree {
	p := &parser{toks: lexer.Tokenize(source)}
	var children []*cst.Node
	for {
		children = append(children, p.trivia()...)
		if p.atEOF() {
			break
		}
		children = append(children, p.form())
	}
	children = append(children, cst.NewLeaf(cst.EofTok, p.toks[len(p.toks)-1]))
	root := cst.NewComposite(cst.Root, children)
	return cst.NewTree(source, root, ulid.Make())
}

type parser struct {
	toks []token.Token
	pos  int
}

func (p *parser) atEOF() bool {
	return p.peekKind() == token.Eof
}

// peekKind returns the kind of the next significant (non-trivia) token
// without consuming anything; the skipped trivia is left for the caller to
// attach wherever it is scanning.
func (p *parser) peekKind() token.Kind {
	i := p.pos
	for i < len(p.toks) && p.toks[i].Kind.IsTrivia() {
		i++
	}
	if i >= len(p.toks) {
		return token.Eof
	}
	return p.toks[i].Kind
}

// next consumes and returns the next raw token, trivia included.
func (p *parser) next() token.Token {
	t := p.toks[p.pos]
	p.pos++
	return t
}

// trivia collects a leaf node for every contiguous trivia token starting
// at the current position, consuming them.
func (p *parser) trivia() []*cst.Node {
	var out []*cst.Node
	for p.pos < len(p.toks) && p.toks[p.pos].Kind.IsTrivia() {
		out = append(out, leafOf(p.next()))
	}
	return out
}

func leafOf(t token.Token) *cst.Node {
	switch t.Kind {
	case token.Whitespace:
		return cst.NewLeaf(cst.WhitespaceTok, t)
	case token.Comment:
		return cst.NewLeaf(cst.CommentTok, t)
	case token.LeftParen:
		return cst.NewLeaf(cst.LeftParenTok, t)
	case token.RightParen:
		return cst.NewLeaf(cst.RightParenTok, t)
	case token.LeftBracket:
		return cst.NewLeaf(cst.LeftBracketTok, t)
	case token.RightBracket:
		return cst.NewLeaf(cst.RightBracketTok, t)
	case token.LeftBrace:
		return cst.NewLeaf(cst.LeftBraceTok, t)
	case token.RightBrace:
		return cst.NewLeaf(cst.RightBraceTok, t)
	case token.String:
		return cst.NewLeaf(cst.StringTok, t)
	case token.Number:
		return cst.NewLeaf(cst.NumberTok, t)
	case token.Character:
		return cst.NewLeaf(cst.CharacterTok, t)
	case token.Keyword:
		return cst.NewLeaf(cst.KeywordTok, t)
	case token.Symbol:
		return cst.NewLeaf(cst.SymbolTok, t)
	case token.Quote:
		return cst.NewLeaf(cst.QuoteTok, t)
	case token.Backtick:
		return cst.NewLeaf(cst.BacktickTok, t)
	case token.Tilde:
		return cst.NewLeaf(cst.TildeTok, t)
	case token.TildeAt:
		return cst.NewLeaf(cst.TildeAtTok, t)
	case token.Caret:
		return cst.NewLeaf(cst.CaretTok, t)
	case token.Hash:
		return cst.NewLeaf(cst.HashTok, t)
	case token.HashLeftBrace:
		return cst.NewLeaf(cst.HashLeftBraceTok, t)
	case token.Comma:
		return cst.NewLeaf(cst.CommaTok, t)
	case token.Eof:
		return cst.NewLeaf(cst.EofTok, t)
	default:
		return cst.NewLeaf(cst.ErrorTok, t)
	}
}

// form parses exactly one form. Callers must strip leading trivia first
// (via p.trivia()) and must not call form() at EOF.
func (p *parser) form() *cst.Node {
	switch p.peekKind() {
	case token.LeftParen:
		return p.seq(token.RightParen, cst.List)
	case token.LeftBracket:
		return p.seq(token.RightBracket, cst.Vector)
	case token.LeftBrace:
		return p.seq(token.RightBrace, cst.Map)
	case token.HashLeftBrace:
		return p.seq(token.RightBrace, cst.Set)
	case token.Quote:
		return p.prefixed(cst.QuoteForm)
	case token.Backtick:
		return p.prefixed(cst.BacktickForm)
	case token.Tilde, token.Comma:
		return p.prefixed(cst.UnquoteForm)
	case token.TildeAt:
		return p.prefixed(cst.UnquoteSplicingForm)
	case token.Caret:
		return p.meta()
	case token.Hash:
		return p.hashForm()
	case token.String, token.Number, token.Character, token.Keyword, token.Symbol:
		return leafOf(p.next())
	default:
		// Unexpected closer or any other stray token: wrap it alone as an
		// error and let the caller that opened the enclosing form (if any)
		// see whatever follows.
		return cst.NewComposite(cst.ErrorForm, []*cst.Node{leafOf(p.next())})
	}
}

// seq parses "open form* close", reporting EOF-before-close as an error
// that still returns everything collected so far, and treating an
// unexpected closer besides the one we want as the point where this form
// simply ends (the mismatched token is left for the caller to see next).
func (p *parser) seq(close token.Kind, kind cst.Kind) *cst.Node {
	children := []*cst.Node{leafOf(p.next())} // the opener
	erroneous := false
	formCount := 0

	for {
		lead := p.trivia()
		children = append(children, lead...)

		if p.atEOF() {
			erroneous = true
			break
		}
		if p.peekKind() == close {
			children = append(children, leafOf(p.next()))
			break
		}
		if isCloser(p.peekKind()) {
			// A different closing delimiter: this form never got its own
			// closer. Leave the token unconsumed for the outer form.
			erroneous = true
			break
		}
		f := p.form()
		children = append(children, f)
		if f.Kind != cst.DiscardForm {
			formCount++
		}
	}

	// Map parity: an odd number of child forms means the last key has no
	// value. The node is marked erroneous here, at build time, so
	// Tree.HasError() alone flags it for tooling that never runs the
	// reader; reader.Read still rejects it independently when it does run.
	if kind == cst.Map && formCount%2 != 0 {
		erroneous = true
	}

	n := cst.NewComposite(kind, children)
	n.HasError = n.HasError || erroneous
	return n
}

func isCloser(k token.Kind) bool {
	return k == token.RightParen || k == token.RightBracket || k == token.RightBrace
}

// prefixed parses a single reader-macro prefix token followed by exactly
// one form (quote, backtick, unquote, unquote-splicing, tag).
func (p *parser) prefixed(kind cst.Kind) *cst.Node {
	prefix := leafOf(p.next())
	lead := p.trivia()
	if p.atEOF() {
		children := append([]*cst.Node{prefix}, lead...)
		n := cst.NewComposite(kind, children)
		n.HasError = true
		return n
	}
	inner := p.form()
	children := append([]*cst.Node{prefix}, lead...)
	children = append(children, inner)
	return cst.NewComposite(kind, children)
}

// meta parses "^ form form": the metadata form, then the decorated form
// it attaches to — unlike the other reader-macro prefixes, which take
// only one following form.
func (p *parser) meta() *cst.Node {
	prefix := leafOf(p.next())
	children := []*cst.Node{prefix}

	children = append(children, p.trivia()...)
	if p.atEOF() {
		n := cst.NewComposite(cst.MetaForm, children)
		n.HasError = true
		return n
	}
	children = append(children, p.form())

	children = append(children, p.trivia()...)
	if p.atEOF() {
		n := cst.NewComposite(cst.MetaForm, children)
		n.HasError = true
		return n
	}
	children = append(children, p.form())

	return cst.NewComposite(cst.MetaForm, children)
}

// hashForm resolves the token.Hash dispatch the lexer leaves unresolved:
// '#_' is a discard sentinel, anything else is a tag prefix for the form
// that follows.
func (p *parser) hashForm() *cst.Node {
	raw := p.toks[p.pos]
	if len(raw.Text) == 2 && raw.Text[1] == '_' {
		prefix := leafOf(p.next())
		lead := p.trivia()
		if p.atEOF() {
			children := append([]*cst.Node{prefix}, lead...)
			n := cst.NewComposite(cst.DiscardForm, children)
			n.HasError = true
			return n
		}
		inner := p.form()
		children := append([]*cst.Node{prefix}, lead...)
		children = append(children, inner)
		return cst.NewComposite(cst.DiscardForm, children)
	}
	return p.prefixed(cst.TagForm)
}
