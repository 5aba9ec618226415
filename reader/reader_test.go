package reader

import (
	"testing"

	"github.com/odvcencio/citrine/parser"
	"github.com/odvcencio/citrine/value"
)

func mustRead(t *testing.T, src string) value.Value {
	t.Helper()
	tree := parser.Parse(src)
	v, err := Read(tree)
	if err != nil {
		t.Fatalf("Read(%q) failed: %v", src, err)
	}
	return v
}

func TestReadLiterals(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"nil", "nil"},
		{"42", "42"},
		{"-3.5", "-3.5"},
		{"0x1A", "26"},
		{"0b101", "5"},
		{`"hi\nthere"`, "\"hi\nthere\""},
		{"foo", "foo"},
		{":bar", ":bar"},
		{"(1 2 3)", "(1 2 3)"},
		{"[1 2 3]", "[1 2 3]"},
		{"#{1 2 2}", "#{1 2}"},
	}
	for _, c := range cases {
		v := mustRead(t, c.src)
		if got := v.String(); got != c.want {
			t.Errorf("read(%q).String() = %q, want %q", c.src, got, c.want)
		}
	}
}

func TestReadQuote(t *testing.T) {
	v := mustRead(t, "`(1 2 ~x)")
	want := `(quasiquote (1 2 (unquote x)))`
	if got := v.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReadMapOddArity(t *testing.T) {
	tree := parser.Parse("{:a 1 :b}")
	_, err := Read(tree)
	if err == nil {
		t.Fatalf("expected error for odd-arity map literal")
	}
}

func TestReadUnclosedFormFails(t *testing.T) {
	for _, src := range []string{"(1 2", "[1 2", "{:a 1", "#{1 2"} {
		tree := parser.Parse(src)
		if _, err := Read(tree); err == nil {
			t.Errorf("expected error reading %q, got none", src)
		}
	}
}

func TestReadDiscard(t *testing.T) {
	v := mustRead(t, "(#_ 1 2 3)")
	want := "(2 3)"
	if got := v.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReadMetaDropsMetadata(t *testing.T) {
	v := mustRead(t, `^{:doc "x"} foo`)
	want := "foo"
	if got := v.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReadRootSingleVsMultiple(t *testing.T) {
	v := mustRead(t, "42")
	if v.Tag != value.NumberTag {
		t.Errorf("single root form should unwrap, got tag %v", v.Tag)
	}
	v2 := mustRead(t, "1 2")
	if v2.Tag != value.ListTag || len(v2.Items) != 2 {
		t.Errorf("multiple root forms should wrap in a list, got %v", v2)
	}
}
