// Package cst implements Citrine's lossless concrete syntax tree: every
// byte of the source is attributable to exactly one leaf token, and every
// composite node's byte range is derived from its children.
package cst

import "fmt"

// Kind identifies what a Node represents: either a syntactic category
// (composite) or a leaf token kind mirrored from package token.
type Kind uint8

const (
	// Root is the top-level node spanning the whole source.
	Root Kind = iota

	// Forms.
	List
	Vector
	Map
	Set

	// Literals.
	StringLit
	NumberLit
	CharacterLit
	KeywordLit
	SymbolLit

	// Reader macros.
	QuoteForm
	BacktickForm
	UnquoteForm
	UnquoteSplicingForm
	MetaForm
	TagForm
	DiscardForm

	// Trivia/diagnostic composites.
	CommentForm
	ErrorForm

	// Leaf tokens (one per token.Kind).
	LeftParenTok
	RightParenTok
	LeftBracketTok
	RightBracketTok
	LeftBraceTok
	RightBraceTok
	StringTok
	NumberTok
	CharacterTok
	KeywordTok
	SymbolTok
	QuoteTok
	BacktickTok
	TildeTok
	TildeAtTok
	CaretTok
	HashTok
	HashLeftBraceTok
	CommaTok
	WhitespaceTok
	CommentTok
	ErrorTok
	EofTok
)

var kindNames = [...]string{
	Root:                "Root",
	List:                "List",
	Vector:              "Vector",
	Map:                 "Map",
	Set:                 "Set",
	StringLit:           "StringLit",
	NumberLit:           "NumberLit",
	CharacterLit:        "CharacterLit",
	KeywordLit:          "KeywordLit",
	SymbolLit:           "SymbolLit",
	QuoteForm:           "Quote",
	BacktickForm:        "Backtick",
	UnquoteForm:         "Unquote",
	UnquoteSplicingForm: "UnquoteSplicing",
	MetaForm:            "Meta",
	TagForm:             "Tag",
	DiscardForm:         "Discard",
	CommentForm:         "Comment",
	ErrorForm:           "Error",
	LeftParenTok:        "LeftParen",
	RightParenTok:       "RightParen",
	LeftBracketTok:      "LeftBracket",
	RightBracketTok:     "RightBracket",
	LeftBraceTok:        "LeftBrace",
	RightBraceTok:       "RightBrace",
	StringTok:           "String",
	NumberTok:           "Number",
	CharacterTok:        "Character",
	KeywordTok:          "Keyword",
	SymbolTok:           "Symbol",
	QuoteTok:            "QuoteToken",
	BacktickTok:         "BacktickToken",
	TildeTok:            "TildeToken",
	TildeAtTok:          "TildeAtToken",
	CaretTok:            "CaretToken",
	HashTok:             "HashToken",
	HashLeftBraceTok:    "HashLeftBraceToken",
	CommaTok:            "CommaToken",
	WhitespaceTok:       "Whitespace",
	CommentTok:          "CommentToken",
	ErrorTok:            "ErrorToken",
	EofTok:              "Eof",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsLeaf reports whether k is a leaf-token kind rather than a composite.
func (k Kind) IsLeaf() bool {
	return k >= LeftParenTok
}

// IsDelimiter reports whether k is one of the six bracket tokens.
func (k Kind) IsDelimiter() bool {
	switch k {
	case LeftParenTok, RightParenTok, LeftBracketTok, RightBracketTok, LeftBraceTok, RightBraceTok:
		return true
	default:
		return false
	}
}

// IsTrivia reports whether k is a whitespace or comment leaf.
func (k Kind) IsTrivia() bool {
	return k == WhitespaceTok || k == CommentTok
}
