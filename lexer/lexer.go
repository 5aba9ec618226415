// Package lexer turns Citrine source text into a flat token stream.
//
// It is a pure, single left-to-right scan over Unicode scalar values with
// one rune of lookahead. The stream always partitions the input exactly:
// whitespace and comments are emitted as trivia tokens, never dropped.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/odvcencio/citrine/token"
)

// namedChars are the character-literal names the lexer recognizes, longest
// first so a greedy match always prefers the longer name.
var namedChars = []string{
	"backspace",
	"formfeed",
	"newline",
	"return",
	"space",
	"tab",
}

// lexer holds scanning state over a single source string.
type lexer struct {
	src string
	pos int // current byte offset into src
}

// Tokenize scans source into an ordered token stream, always terminated by
// a single Eof token. It never fails: malformed input becomes Error tokens
// that still advance the position, so the stream fully partitions source.
func Tokenize(source string) []token.Token {
	l := &lexer{src: source}
	var out []token.Token
	for {
		tok := l.next()
		out = append(out, tok)
		if tok.Kind == token.Eof {
			return out
		}
	}
}

func (l *lexer) next() token.Token {
	start := l.pos
	if l.pos >= len(l.src) {
		return token.New(token.Eof, "", uint32(start))
	}

	c, w := utf8.DecodeRuneInString(l.src[l.pos:])
	if unicode.IsSpace(c) {
		return l.lexWhitespace(start)
	}

	switch c {
	case '(':
		return l.single(token.LeftParen, w)
	case ')':
		return l.single(token.RightParen, w)
	case '[':
		return l.single(token.LeftBracket, w)
	case ']':
		return l.single(token.RightBracket, w)
	case '{':
		return l.single(token.LeftBrace, w)
	case '}':
		return l.single(token.RightBrace, w)
	case '\'':
		return l.single(token.Quote, w)
	case '`':
		return l.single(token.Backtick, w)
	case '^':
		return l.single(token.Caret, w)
	case ',':
		l.pos += w
		return l.maybeAt(start, token.Comma)
	case '~':
		l.pos += w
		return l.maybeAt(start, token.Tilde)
	case '#':
		return l.lexHash(start, w)
	case ';':
		return l.lexComment(start)
	case '"':
		return l.lexString(start)
	case '\\':
		return l.lexCharacter(start)
	case ':':
		return l.lexKeyword(start)
	default:
		// A minus sign starts a number only when a digit follows; bare
		// '-' and '-foo' are symbols.
		if isASCIIDigit(c) || (c == '-' && l.digitFollows(l.pos+w)) {
			return l.lexNumber(start)
		}
		if isSymbolStart(c) {
			return l.lexSymbol(start)
		}
		l.pos += w
		return l.finish(token.Error, start)
	}
}

func (l *lexer) single(k token.Kind, width int) token.Token {
	start := l.pos
	l.pos += width
	return l.finish(k, start)
}

func (l *lexer) finish(k token.Kind, start int) token.Token {
	return token.New(k, l.src[start:l.pos], uint32(start))
}

// maybeAt handles ',' and '~', both of which become TildeAt when followed
// by '@' (comma-at is the unquote-splicing alias).
func (l *lexer) maybeAt(start int, plain token.Kind) token.Token {
	if r, w := utf8.DecodeRuneInString(l.src[l.pos:]); r == '@' {
		l.pos += w
		return l.finish(token.TildeAt, start)
	}
	return l.finish(plain, start)
}

func (l *lexer) lexHash(start int, w int) token.Token {
	l.pos += w
	r, rw := utf8.DecodeRuneInString(l.src[l.pos:])
	switch r {
	case '{':
		l.pos += rw
		return l.finish(token.HashLeftBrace, start)
	case '_':
		l.pos += rw
		return l.finish(token.Hash, start)
	default:
		return l.finish(token.Hash, start)
	}
}

func (l *lexer) lexWhitespace(start int) token.Token {
	for l.pos < len(l.src) {
		r, w := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		l.pos += w
	}
	return l.finish(token.Whitespace, start)
}

func (l *lexer) lexComment(start int) token.Token {
	for l.pos < len(l.src) {
		r, w := utf8.DecodeRuneInString(l.src[l.pos:])
		if r == '\n' {
			break
		}
		l.pos += w
	}
	return l.finish(token.Comment, start)
}

func (l *lexer) lexString(start int) token.Token {
	l.pos += 1 // opening quote is one byte
	escaped := false
	for l.pos < len(l.src) {
		r, w := utf8.DecodeRuneInString(l.src[l.pos:])
		if escaped {
			l.pos += w
			escaped = false
			continue
		}
		if r == '\\' {
			l.pos += w
			escaped = true
			continue
		}
		if r == '"' {
			l.pos += w
			return l.finish(token.String, start)
		}
		l.pos += w
	}
	return l.finish(token.Error, start)
}

func (l *lexer) lexCharacter(start int) token.Token {
	l.pos += 1 // backslash
	if l.pos >= len(l.src) {
		return l.finish(token.Error, start)
	}

	nameStart := l.pos
	first, fw := utf8.DecodeRuneInString(l.src[l.pos:])

	if first == 'u' {
		l.pos += fw
		for i := 0; i < 4; i++ {
			if l.pos >= len(l.src) {
				return l.finish(token.Error, start)
			}
			r, w := utf8.DecodeRuneInString(l.src[l.pos:])
			if !isHexDigit(r) {
				return l.finish(token.Error, start)
			}
			l.pos += w
		}
		return l.finish(token.Character, start)
	}

	// Consume the base character unconditionally, then see whether a
	// longer named form (longest match wins) extends it.
	l.pos += fw
	for _, name := range namedChars {
		end := nameStart + len(name)
		if end > len(l.src) || l.src[nameStart:end] != name {
			continue
		}
		if end < len(l.src) {
			if r, _ := utf8.DecodeRuneInString(l.src[end:]); isSymbolChar(r) {
				continue // not a word boundary; treat as the bare first char
			}
		}
		l.pos = end
		break
	}
	return l.finish(token.Character, start)
}

func (l *lexer) lexKeyword(start int) token.Token {
	l.pos += 1 // colon
	l.consumeSymbolChars()
	return l.finish(token.Keyword, start)
}

func (l *lexer) lexSymbol(start int) token.Token {
	_, w := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += w
	l.consumeSymbolChars()
	return l.finish(token.Symbol, start)
}

func (l *lexer) consumeSymbolChars() {
	for l.pos < len(l.src) {
		r, w := utf8.DecodeRuneInString(l.src[l.pos:])
		if !isSymbolChar(r) {
			break
		}
		l.pos += w
	}
}

func (l *lexer) digitFollows(at int) bool {
	if at >= len(l.src) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(l.src[at:])
	return isASCIIDigit(r)
}

func (l *lexer) lexNumber(start int) token.Token {
	first, fw := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += fw

	if first == '-' {
		d, dw := utf8.DecodeRuneInString(l.src[l.pos:])
		first = d
		l.pos += dw
	}

	if first == '0' {
		if r, w := utf8.DecodeRuneInString(l.src[l.pos:]); r == 'x' || r == 'X' {
			l.pos += w
			return l.lexRadixDigits(start, isHexDigit)
		}
		if r, w := utf8.DecodeRuneInString(l.src[l.pos:]); r == 'b' || r == 'B' {
			l.pos += w
			return l.lexRadixDigits(start, isBinaryDigit)
		}
	}

	hasDecimal, hasExponent := false, false
	for l.pos < len(l.src) {
		r, w := utf8.DecodeRuneInString(l.src[l.pos:])
		switch {
		case isASCIIDigit(r):
			l.pos += w
		case r == '.' && !hasDecimal && !hasExponent:
			hasDecimal = true
			l.pos += w
			if !l.peekIsDigit() {
				return l.finish(token.Error, start)
			}
		case (r == 'e' || r == 'E') && !hasExponent:
			hasExponent = true
			l.pos += w
			if sr, sw := utf8.DecodeRuneInString(l.src[l.pos:]); sr == '+' || sr == '-' {
				l.pos += sw
			}
			if !l.peekIsDigit() {
				return l.finish(token.Error, start)
			}
		case r == 'N' || r == 'n' || r == 'L' || r == 'l':
			l.pos += w
			return l.finish(token.Number, start)
		case r == '/' && !hasDecimal && !hasExponent:
			l.pos += w
			if !l.peekIsDigit() {
				return l.finish(token.Error, start)
			}
			for l.pos < len(l.src) {
				dr, dw := utf8.DecodeRuneInString(l.src[l.pos:])
				if !isASCIIDigit(dr) {
					break
				}
				l.pos += dw
			}
			return l.finish(token.Number, start)
		default:
			return l.finish(token.Number, start)
		}
	}
	return l.finish(token.Number, start)
}

func (l *lexer) lexRadixDigits(start int, digit func(rune) bool) token.Token {
	hasDigit := false
	for l.pos < len(l.src) {
		r, w := utf8.DecodeRuneInString(l.src[l.pos:])
		if !digit(r) {
			break
		}
		hasDigit = true
		l.pos += w
	}
	if !hasDigit {
		return l.finish(token.Error, start)
	}
	return l.finish(token.Number, start)
}

func (l *lexer) peekIsDigit() bool {
	if l.pos >= len(l.src) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return isASCIIDigit(r)
}

func isHexDigit(r rune) bool {
	return strings.ContainsRune("0123456789abcdefABCDEF", r)
}

func isBinaryDigit(r rune) bool {
	return r == '0' || r == '1'
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isSymbolStart reports whether r can begin a symbol token.
func isSymbolStart(r rune) bool {
	if unicode.IsLetter(r) {
		return true
	}
	return strings.ContainsRune("!?-+<>=$*%_/", r)
}

// isSymbolChar reports whether r can continue a symbol or keyword token.
func isSymbolChar(r rune) bool {
	return isSymbolStart(r) || isASCIIDigit(r)
}
