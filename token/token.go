// Package token defines the lexical tokens produced by the Citrine lexer.
package token

import "fmt"

// Kind identifies the lexical category of a Token. The set is closed:
// every byte of valid or invalid source maps to exactly one Kind.
type Kind uint8

const (
	// Delimiters.
	LeftParen Kind = iota
	RightParen
	LeftBracket
	RightBracket
	LeftBrace
	RightBrace

	// Literals.
	String
	Number
	Character
	Keyword
	Symbol

	// Reader-macro punctuation.
	Quote
	Backtick
	Tilde
	TildeAt
	Caret
	Hash
	HashLeftBrace
	Comma

	// Trivia.
	Whitespace
	Comment

	// Sentinels.
	Error
	Eof
)

var names = [...]string{
	LeftParen:     "LeftParen",
	RightParen:    "RightParen",
	LeftBracket:   "LeftBracket",
	RightBracket:  "RightBracket",
	LeftBrace:     "LeftBrace",
	RightBrace:    "RightBrace",
	String:        "String",
	Number:        "Number",
	Character:     "Character",
	Keyword:       "Keyword",
	Symbol:        "Symbol",
	Quote:         "Quote",
	Backtick:      "Backtick",
	Tilde:         "Tilde",
	TildeAt:       "TildeAt",
	Caret:         "Caret",
	Hash:          "Hash",
	HashLeftBrace: "HashLeftBrace",
	Comma:         "Comma",
	Whitespace:    "Whitespace",
	Comment:       "Comment",
	Error:         "Error",
	Eof:           "Eof",
}

// String returns the Kind's name, e.g. "LeftParen".
func (k Kind) String() string {
	if int(k) < len(names) && names[k] != "" {
		return names[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsTrivia reports whether k is whitespace or a comment.
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Comment
}

// Token is a single lexeme: its kind, its exact source slice, and its
// half-open byte range [Start, End) within the source string.
type Token struct {
	Kind  Kind
	Text  string
	Start uint32
	End   uint32
}

// New builds a Token, deriving End from Start and the length of text.
func New(kind Kind, text string, start uint32) Token {
	return Token{Kind: kind, Text: text, Start: start, End: start + uint32(len(text))}
}

func (t Token) String() string {
	if t.Kind == Eof {
		return fmt.Sprintf("<%s@%d..%d>", t.Kind, t.Start, t.End)
	}
	return fmt.Sprintf("<%s@%d..%d>(%q)", t.Kind, t.Start, t.End, t.Text)
}
