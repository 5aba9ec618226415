package repl

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter renders Citrine source as ANSI-colored text for terminal
// echo. It is purely cosmetic: nothing it does feeds back into lexing,
// parsing, or evaluation, which all work from the plain source string.
type Highlighter struct {
	lexer     chroma.Lexer
	formatter chroma.Formatter
	style     *chroma.Style
}

// NewHighlighter builds a Highlighter using Chroma's closest built-in
// Lisp lexer (Citrine's surface syntax — parens, keywords, quote/backtick
// reader macros — is close enough to Clojure's that token classes land in
// believable places) and the named style, falling back to a sane default
// if themeName is unknown.
func NewHighlighter(themeName string) *Highlighter {
	style := styles.Get(themeName)
	if style == nil {
		style = styles.Fallback
	}
	lexer := lexers.Get("clojure")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &Highlighter{
		lexer:     chroma.Coalesce(lexer),
		formatter: formatters.TTY256,
		style:     style,
	}
}

// Render returns source with ANSI color codes applied, or source
// unchanged if tokenizing it for display fails (highlighting is never
// allowed to block the REPL from showing a result).
func (h *Highlighter) Render(source string) string {
	iter, err := h.lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}
	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, iter); err != nil {
		return source
	}
	return b.String()
}
