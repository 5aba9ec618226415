package citrine

import (
	"testing"

	"github.com/odvcencio/citrine/token"
	"github.com/odvcencio/citrine/value"
)

func TestTokenizeSimple(t *testing.T) {
	toks := Tokenize("(+ 1 2)")
	want := []struct {
		kind  token.Kind
		text  string
		start uint32
		end   uint32
	}{
		{token.LeftParen, "(", 0, 1},
		{token.Symbol, "+", 1, 2},
		{token.Whitespace, " ", 2, 3},
		{token.Number, "1", 3, 4},
		{token.Whitespace, " ", 4, 5},
		{token.Number, "2", 5, 6},
		{token.RightParen, ")", 6, 7},
		{token.Eof, "", 7, 7},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, w := range want {
		got := toks[i]
		if got.Kind != w.kind || got.Text != w.text || got.Start != w.start || got.End != w.end {
			t.Errorf("token %d = %+v, want {%v %q %d %d}", i, got, w.kind, w.text, w.start, w.end)
		}
	}
}

func TestParseSimple(t *testing.T) {
	tree := Parse("(+ 1 2)")
	if tree.HasError() {
		t.Fatalf("unexpected parse error:\n%s", tree.Dump())
	}
	if tree.Reconstruct() != "(+ 1 2)" {
		t.Fatalf("Reconstruct() = %q", tree.Reconstruct())
	}
}

func TestParseNested(t *testing.T) {
	src := "(defn factorial [n] (if (= n 0) 1 (* n (factorial (- n 1)))))"
	tree := Parse(src)
	if tree.HasError() {
		t.Fatalf("unexpected parse error:\n%s", tree.Dump())
	}
	if tree.Reconstruct() != src {
		t.Fatalf("Reconstruct() did not match source")
	}
}

func TestEvalSimple(t *testing.T) {
	env := StandardEnv()

	want := func(src string, num float64) {
		t.Helper()
		v, err := EvalStr(src, env)
		if err != nil {
			t.Fatalf("EvalStr(%q): %v", src, err)
		}
		if v.Tag != value.NumberTag || v.Num != num {
			t.Errorf("EvalStr(%q) = %v, want %v", src, v, num)
		}
	}
	wantBool := func(src string, b bool) {
		t.Helper()
		v, err := EvalStr(src, env)
		if err != nil {
			t.Fatalf("EvalStr(%q): %v", src, err)
		}
		if v.Tag != value.BooleanTag || v.Bool != b {
			t.Errorf("EvalStr(%q) = %v, want %v", src, v, b)
		}
	}

	want("(+ 1 2 3)", 6)
	want("(- 10 2 3)", 5)
	want("(* 2 3 4)", 24)
	want("(/ 12 2 3)", 2)

	wantBool("(= 1 1 1)", true)
	wantBool("(= 1 2 1)", false)
	wantBool("(< 1 2)", true)
	wantBool("(> 3 2)", true)

	if _, err := EvalStr("(setq x 42)", env); err != nil {
		t.Fatalf("setq failed: %v", err)
	}
	want("x", 42)

	if _, err := EvalStr("(setq add (fn [a b] (+ a b)))", env); err != nil {
		t.Fatalf("fn definition failed: %v", err)
	}
	want("(add 2 3)", 5)

	want("(+ (* 2 3) (- 10 5))", 11)
}

func TestEvalStrSkipsTopLevelDiscard(t *testing.T) {
	env := StandardEnv()
	v, err := EvalStr("#_(this would not evaluate) (+ 1 2)", env)
	if err != nil {
		t.Fatalf("EvalStr: %v", err)
	}
	if v.Tag != value.NumberTag || v.Num != 3 {
		t.Errorf("got %v, want 3", v)
	}
}

func TestDataStructures(t *testing.T) {
	env := StandardEnv()

	list, err := EvalStr("(list 1 2 3)", env)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list.Tag != value.ListTag || len(list.Items) != 3 {
		t.Fatalf("expected a 3-element list, got %v", list)
	}

	vec, err := ReadStr("[1 2 3]")
	if err != nil {
		t.Fatalf("vector read: %v", err)
	}
	evaluated, err := Eval(vec, env)
	if err != nil {
		t.Fatalf("vector eval: %v", err)
	}
	if evaluated.Tag != value.VectorTag || len(evaluated.Items) != 3 {
		t.Fatalf("expected a 3-element vector, got %v", evaluated)
	}

	m, err := EvalStr("{:a 1 :b 2}", env)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if m.Tag != value.MapTag || m.MapLen() != 2 {
		t.Fatalf("expected a 2-entry map, got %v", m)
	}
	if v, ok := m.MapGet(value.Keyword("a")); !ok || v.Num != 1 {
		t.Errorf("map[:a] = %v, %v", v, ok)
	}
	if v, ok := m.MapGet(value.Keyword("b")); !ok || v.Num != 2 {
		t.Errorf("map[:b] = %v, %v", v, ok)
	}

	s, err := EvalStr("#{1 2 3}", env)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if s.Tag != value.SetTag || s.SetLen() != 3 {
		t.Fatalf("expected a 3-member set, got %v", s)
	}
}
