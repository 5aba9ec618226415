// Package value defines Citrine's runtime value representation: the tagged
// union every reader and evaluator result belongs to, plus the lexical
// Environment closures capture.
//
// Map and Set are backed by github.com/wk8/go-ordered-map/v2 rather than a
// bare Go map, so that map and set literals print their entries in
// insertion order instead of Go's randomized map iteration order: a Lisp
// REPL's feedback loop relies on a form printing back the way it was
// typed.
package value

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Tag identifies which alternative of the Value union is populated.
type Tag uint8

const (
	NilTag Tag = iota
	BooleanTag
	NumberTag
	StringTag
	SymbolTag
	KeywordTag
	ListTag
	VectorTag
	MapTag
	SetTag
	FunctionTag
	MacroTag
)

// entry is one key/value pair of a Map, keyed internally by the key's
// canonical text so structurally-equal keys (e.g. two lists of the same
// numbers) land in the same slot.
type entry struct {
	key Value
	val Value
}

// Value is a Citrine runtime value: a tagged union in which exactly one
// field is meaningful, selected by Tag, without resorting to an
// interface{} per-kind allocation.
type Value struct {
	Tag     Tag
	Bool    bool
	Num     float64
	Str     string // String, Symbol, or Keyword text depending on Tag
	Items   []Value
	Entries *orderedmap.OrderedMap[string, entry] // Map
	Members *orderedmap.OrderedMap[string, Value] // Set
	Fn      *Function
	Mac     *Macro
}

// Nil is the canonical nil value.
var Nil = Value{Tag: NilTag}

// Bool constructs a Boolean value.
func Bool(b bool) Value { return Value{Tag: BooleanTag, Bool: b} }

// Num constructs a Number value.
func Num(n float64) Value { return Value{Tag: NumberTag, Num: n} }

// Str constructs a String value.
func Str(s string) Value { return Value{Tag: StringTag, Str: s} }

// Symbol constructs a Symbol value.
func Symbol(name string) Value { return Value{Tag: SymbolTag, Str: name} }

// Keyword constructs a Keyword value.
func Keyword(name string) Value { return Value{Tag: KeywordTag, Str: name} }

// List constructs a List value.
func List(items []Value) Value { return Value{Tag: ListTag, Items: items} }

// Vector constructs a Vector value.
func Vector(items []Value) Value { return Value{Tag: VectorTag, Items: items} }

// NewMap constructs an empty, insertion-ordered Map.
func NewMap() Value {
	return Value{Tag: MapTag, Entries: orderedmap.New[string, entry]()}
}

// NewSet constructs an empty, insertion-ordered Set.
func NewSet() Value {
	return Value{Tag: SetTag, Members: orderedmap.New[string, Value]()}
}

// FunctionValue wraps f as a Value.
func FunctionValue(f *Function) Value { return Value{Tag: FunctionTag, Fn: f} }

// MacroValue wraps m as a Value.
func MacroValue(m *Macro) Value { return Value{Tag: MacroTag, Mac: m} }

// MapSet inserts or overwrites key -> val in m, keyed by key's canonical
// text, and returns m for chaining.
func (m Value) MapSet(key, val Value) Value {
	m.Entries.Set(key.canonicalKey(), entry{key: key, val: val})
	return m
}

// MapGet looks up key in m.
func (m Value) MapGet(key Value) (Value, bool) {
	e, ok := m.Entries.Get(key.canonicalKey())
	if !ok {
		return Nil, false
	}
	return e.val, true
}

// MapLen reports the number of entries in m.
func (m Value) MapLen() int {
	return m.Entries.Len()
}

// MapPairs iterates m's entries in insertion order.
func (m Value) MapPairs(fn func(key, val Value)) {
	for pair := m.Entries.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Value.key, pair.Value.val)
	}
}

// SetAdd inserts member into s, deduplicating by canonical text.
func (s Value) SetAdd(member Value) Value {
	s.Members.Set(member.canonicalKey(), member)
	return s
}

// SetLen reports the number of members in s.
func (s Value) SetLen() int {
	return s.Members.Len()
}

// SetMembers iterates s's members in insertion order.
func (s Value) SetMembers(fn func(member Value)) {
	for pair := s.Members.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Value)
	}
}

// canonicalKey returns the text used to deduplicate v as a map/set key.
// It is deliberately the same text String() produces, so two data values
// that print identically share a slot. This does not line up with Equal in
// every case: 0 and -0 are Equal but print as "0" and "-0", and two maps or
// sets holding the same entries in a different insertion order are Equal
// but print differently, so each of these pairs occupies two slots. In the
// other direction, NaN numbers collide with each other here (they all
// render "NaN"), where IEEE equality says a NaN is not even equal to
// itself. Citrine has no reader syntax that produces NaN, so this only
// affects values built programmatically, and collision there is safer
// than a panic.
func (v Value) canonicalKey() string {
	switch v.Tag {
	case FunctionTag:
		return fmt.Sprintf("#<function %p>", v.Fn)
	case MacroTag:
		return fmt.Sprintf("#<macro %p>", v.Mac)
	default:
		return v.String()
	}
}

// Equal reports structural equality for data values. Functions and
// macros are never equal to anything, including themselves.
func Equal(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case NilTag:
		return true
	case BooleanTag:
		return a.Bool == b.Bool
	case NumberTag:
		return a.Num == b.Num
	case StringTag, SymbolTag, KeywordTag:
		return a.Str == b.Str
	case ListTag, VectorTag:
		if len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !Equal(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	case MapTag:
		if a.Entries.Len() != b.Entries.Len() {
			return false
		}
		equal := true
		a.MapPairs(func(k, v Value) {
			bv, ok := b.MapGet(k)
			if !ok || !Equal(v, bv) {
				equal = false
			}
		})
		return equal
	case SetTag:
		if a.Members.Len() != b.Members.Len() {
			return false
		}
		equal := true
		a.SetMembers(func(m Value) {
			if _, found := b.Members.Get(m.canonicalKey()); !found {
				equal = false
			}
		})
		return equal
	case FunctionTag:
		return false
	case MacroTag:
		return false
	default:
		return false
	}
}

// Truthy reports whether v counts as true in a conditional context: only
// nil and the boolean false are falsy. Nothing branches on truthiness
// outside the `not` builtin today, but this mirrors that builtin's own
// rule so future special forms can reuse it.
func (v Value) Truthy() bool {
	switch v.Tag {
	case NilTag:
		return false
	case BooleanTag:
		return v.Bool
	default:
		return true
	}
}

// TypeName returns the lowercase name of v's type. TypeError messages do
// not use it: they render the offending value itself.
func (v Value) TypeName() string {
	switch v.Tag {
	case NilTag:
		return "nil"
	case BooleanTag:
		return "boolean"
	case NumberTag:
		return "number"
	case StringTag:
		return "string"
	case SymbolTag:
		return "symbol"
	case KeywordTag:
		return "keyword"
	case ListTag:
		return "list"
	case VectorTag:
		return "vector"
	case MapTag:
		return "map"
	case SetTag:
		return "set"
	case FunctionTag:
		return "function"
	case MacroTag:
		return "macro"
	default:
		return "unknown"
	}
}
