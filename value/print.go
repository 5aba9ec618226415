package value

import (
	"strconv"
	"strings"
)

// String renders v the way the REPL echoes a result: unambiguous,
// re-readable for every variant except functions and macros, which print
// as opaque handles, and non-finite numbers, which print as NaN, +Inf or
// -Inf and read back as symbols. Inside strings only '"' and '\' are
// escaped; other characters, newlines included, are written as is.
func (v Value) String() string {
	var b strings.Builder
	v.write(&b)
	return b.String()
}

func (v Value) write(b *strings.Builder) {
	switch v.Tag {
	case NilTag:
		b.WriteString("nil")
	case BooleanTag:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case NumberTag:
		b.WriteString(strconv.FormatFloat(v.Num, 'g', -1, 64))
	case StringTag:
		b.WriteByte('"')
		for i := 0; i < len(v.Str); i++ {
			if c := v.Str[i]; c == '"' || c == '\\' {
				b.WriteByte('\\')
			}
			b.WriteByte(v.Str[i])
		}
		b.WriteByte('"')
	case SymbolTag:
		b.WriteString(v.Str)
	case KeywordTag:
		b.WriteByte(':')
		b.WriteString(v.Str)
	case ListTag:
		writeSeq(b, '(', ')', v.Items)
	case VectorTag:
		writeSeq(b, '[', ']', v.Items)
	case MapTag:
		b.WriteByte('{')
		first := true
		v.MapPairs(func(k, val Value) {
			if !first {
				b.WriteByte(' ')
			}
			first = false
			k.write(b)
			b.WriteByte(' ')
			val.write(b)
		})
		b.WriteByte('}')
	case SetTag:
		b.WriteString("#{")
		first := true
		v.SetMembers(func(m Value) {
			if !first {
				b.WriteByte(' ')
			}
			first = false
			m.write(b)
		})
		b.WriteByte('}')
	case FunctionTag:
		b.WriteString("#<function>")
	case MacroTag:
		b.WriteString("#<macro>")
	}
}

func writeSeq(b *strings.Builder, open, close byte, items []Value) {
	b.WriteByte(open)
	for i, item := range items {
		if i > 0 {
			b.WriteByte(' ')
		}
		item.write(b)
	}
	b.WriteByte(close)
}
