package eval

import (
	"testing"

	"github.com/odvcencio/citrine/cst"
	"github.com/odvcencio/citrine/parser"
	"github.com/odvcencio/citrine/reader"
	"github.com/odvcencio/citrine/value"
)

// evalStr threads every top-level form in src through one environment in
// sequence and returns the last result.
func evalStr(t *testing.T, src string, env *value.Environment) value.Value {
	t.Helper()
	tree := parser.Parse(src)
	forms := tree.Root.NonTrivia()
	result := value.Nil
	for _, f := range forms {
		if f.Kind == cst.EofTok || f.Kind == cst.DiscardForm {
			continue
		}
		v, err := reader.ReadNode(f, tree.Source)
		if err != nil {
			t.Fatalf("read(%q) failed: %v", src, err)
		}
		r, err := Eval(v, env)
		if err != nil {
			t.Fatalf("eval(%q) failed: %v", src, err)
		}
		result = r
	}
	return result
}

func TestArithmetic(t *testing.T) {
	env := StandardEnv()
	cases := []struct {
		src  string
		want float64
	}{
		{"(+ 1 2 3)", 6},
		{"(/ 12 2 3)", 2},
		{"(* 2 3 4)", 24},
		{"(- 10 1 2)", 7},
		{"(- 5)", -5},
	}
	for _, c := range cases {
		got := evalStr(t, c.src, env)
		if got.Tag != value.NumberTag || got.Num != c.want {
			t.Errorf("eval(%q) = %v, want %v", c.src, got, c.want)
		}
	}
}

func TestSetqAndFn(t *testing.T) {
	env := StandardEnv()
	got := evalStr(t, "(setq add (fn [a b] (+ a b))) (add 2 3)", env)
	if got.Tag != value.NumberTag || got.Num != 5 {
		t.Errorf("got %v, want 5", got)
	}
}

func TestClosureCapture(t *testing.T) {
	env := StandardEnv()
	got := evalStr(t, `
		(setq make-adder (fn [n] (fn [x] (+ x n))))
		(setq add5 (make-adder 5))
		(add5 10)
	`, env)
	if got.Tag != value.NumberTag || got.Num != 15 {
		t.Errorf("closure capture failed: got %v, want 15", got)
	}
}

func TestClosureCapturesFrameNotSnapshot(t *testing.T) {
	env := StandardEnv()
	got := evalStr(t, "(setq x 1) (setq f (fn [] x)) (setq x 2) (f)", env)
	if got.Tag != value.NumberTag || got.Num != 2 {
		t.Errorf("closure should see mutated frame, got %v, want 2", got)
	}
}

func TestUnboundSymbol(t *testing.T) {
	env := StandardEnv()
	tree := parser.Parse("never-defined")
	v, err := reader.Read(tree)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	_, err = Eval(v, env)
	if err == nil {
		t.Fatalf("expected an unbound symbol error")
	}
	want := "Unbound symbol: never-defined"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestQuoteDoesNotEvaluate(t *testing.T) {
	env := StandardEnv()
	got := evalStr(t, "(quote (+ 1 2))", env)
	want := "(+ 1 2)"
	if got.String() != want {
		t.Errorf("got %q, want %q", got.String(), want)
	}
}

func TestListBuiltins(t *testing.T) {
	env := StandardEnv()
	if got := evalStr(t, "(first (list 1 2 3))", env); got.Num != 1 {
		t.Errorf("first: got %v", got)
	}
	if got := evalStr(t, "(rest (list 1 2 3))", env); got.String() != "(2 3)" {
		t.Errorf("rest: got %v", got)
	}
	if got := evalStr(t, "(first (list))", env); got.Tag != value.NilTag {
		t.Errorf("first of empty list should be nil, got %v", got)
	}
}

func TestLiteralSymbolsAndNot(t *testing.T) {
	env := StandardEnv()
	cases := []struct {
		src  string
		want string
	}{
		{"nil", "nil"},
		{"true", "true"},
		{"false", "false"},
		{"(not false)", "true"},
		{"(not nil)", "true"},
		{"(not 0)", "false"},
	}
	for _, c := range cases {
		got := evalStr(t, c.src, env)
		if got.String() != c.want {
			t.Errorf("eval(%q) = %q, want %q", c.src, got.String(), c.want)
		}
	}
}

func TestFunctionsNeverEqual(t *testing.T) {
	env := StandardEnv()
	got := evalStr(t, "(setq f (fn [] 1)) (= f f)", env)
	if got.Tag != value.BooleanTag || got.Bool != false {
		t.Errorf("(= f f) = %v, want false", got)
	}
}

func TestMapLiteralEval(t *testing.T) {
	env := StandardEnv()
	got := evalStr(t, "{:a 1 :b 2}", env)
	if got.Tag != value.MapTag || got.MapLen() != 2 {
		t.Fatalf("expected a 2-entry map, got %v", got)
	}
	want := `{:a 1 :b 2}`
	if got.String() != want {
		t.Errorf("got %q, want %q", got.String(), want)
	}
}

func TestDivisionByZero(t *testing.T) {
	env := StandardEnv()
	tree := parser.Parse("(/ 1 0)")
	v, err := reader.Read(tree)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	_, err = Eval(v, env)
	if err == nil || err.Error() != "Error: Division by zero" {
		t.Errorf("got %v, want division-by-zero error", err)
	}
}
