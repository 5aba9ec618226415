package repl

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/odvcencio/citrine/token"
)

// DumpTokens renders toks as a column-aligned table (kind, byte range,
// text), the format the `-tokens` CLI mode and the websocket server's
// "tokenize" method both use. Column widths are measured in display cells rather than
// bytes or runes, since token text can legitimately contain wide glyphs
// (a \uXXXX character literal, a UTF-8 symbol) that would otherwise throw
// the table out of alignment.
func DumpTokens(toks []token.Token) string {
	kindWidth, textWidth := 0, 0
	for _, t := range toks {
		if w := displayWidth(t.Kind.String()); w > kindWidth {
			kindWidth = w
		}
		if w := displayWidth(quoted(t.Text)); w > textWidth {
			textWidth = w
		}
	}

	var b strings.Builder
	for _, t := range toks {
		kind := t.Kind.String()
		text := quoted(t.Text)
		fmt.Fprintf(&b, "%s%s  %6d..%-6d  %s%s\n",
			kind, pad(kindWidth-displayWidth(kind)),
			t.Start, t.End,
			text, pad(textWidth-displayWidth(text)),
		)
	}
	return b.String()
}

func quoted(s string) string {
	return fmt.Sprintf("%q", s)
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// displayWidth measures s the way a terminal would actually lay it out:
// uniseg splits it into grapheme clusters (so combining marks don't count
// as their own column) and go-runewidth scores each cluster's first rune
// for its terminal cell width (so wide glyphs count as two columns).
func displayWidth(s string) int {
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		if len(runes) == 0 {
			continue
		}
		width += runewidth.RuneWidth(runes[0])
	}
	return width
}
