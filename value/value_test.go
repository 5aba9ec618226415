package value

import "testing"

func TestStringRoundTrip(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Nil, "nil"},
		{Bool(true), "true"},
		{Num(3), "3"},
		{Str("hi"), `"hi"`},
		{Symbol("foo"), "foo"},
		{Keyword("bar"), ":bar"},
		{List([]Value{Num(1), Num(2)}), "(1 2)"},
		{Vector([]Value{Num(1), Num(2)}), "[1 2]"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestMapPreservesInsertionOrder(t *testing.T) {
	m := NewMap()
	m = m.MapSet(Keyword("b"), Num(2))
	m = m.MapSet(Keyword("a"), Num(1))
	want := "{:b 2 :a 1}"
	if got := m.String(); got != want {
		t.Errorf("Map.String() = %q, want %q", got, want)
	}
}

func TestEqualStructural(t *testing.T) {
	a := List([]Value{Num(1), Str("x")})
	b := List([]Value{Num(1), Str("x")})
	if !Equal(a, b) {
		t.Errorf("expected structurally equal lists to be Equal")
	}
	c := List([]Value{Num(1), Str("y")})
	if Equal(a, c) {
		t.Errorf("expected differing lists to be unequal")
	}
}

func TestFunctionAndMacroNeverEqual(t *testing.T) {
	f := FunctionValue(NewFunction(nil, nil, NewEnvironment()))
	if Equal(f, f) {
		t.Errorf("a function must never be Equal to itself")
	}
	m := MacroValue(NewMacro(nil, nil, NewEnvironment()))
	if Equal(m, m) {
		t.Errorf("a macro must never be Equal to itself")
	}
}

func TestEnvironmentShadowing(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", Num(1))
	inner := NewChildEnvironment(outer)
	inner.Set("x", Num(2))

	if v, _ := inner.Get("x"); v.Num != 2 {
		t.Errorf("inner shadowing failed: got %v", v)
	}
	if v, _ := outer.Get("x"); v.Num != 1 {
		t.Errorf("outer binding mutated by shadow: got %v", v)
	}
	if _, ok := inner.Get("y"); ok {
		t.Errorf("expected y to be unbound")
	}
}
