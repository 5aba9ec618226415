package parser

import (
	"testing"

	"github.com/odvcencio/citrine/cst"
)

func TestLossless(t *testing.T) {
	sources := []string{
		``,
		`  `,
		`; a comment
(+ 1 2)`,
		`(setq x 10)`,
		`[1 2 3]`,
		`{:a 1 :b 2}`,
		`#{1 2 3}`,
		`'(a b c)`,
		"`(a ~b ~@c)",
		`^{:doc "x"} foo`,
		`#_(ignored) 42`,
		`#inst "2020-01-01"`,
		`(`,
		`)`,
		`"unterminated`,
		`(foo ]`,
	}
	for _, src := range sources {
		tree := Parse(src)
		if got := tree.Reconstruct(); got != src {
			t.Errorf("Reconstruct() mismatch for %q:\n got: %q\nwant: %q", src, got, src)
		}
	}
}

func TestWellFormed(t *testing.T) {
	tree := Parse(`(+ 1 2)`)
	if tree.HasError() {
		t.Fatalf("unexpected error in tree:\n%s", tree.Dump())
	}
}

func TestUnbalancedReportsError(t *testing.T) {
	for _, src := range []string{`(foo`, `)`, `[1 2`, `(foo ]`} {
		tree := Parse(src)
		if !tree.HasError() {
			t.Errorf("expected HasError for %q, got clean tree:\n%s", src, tree.Dump())
		}
	}
}

func TestQuoteForms(t *testing.T) {
	tree := Parse(`'x`)
	forms := tree.Root.NonTrivia()
	if len(forms) != 2 { // quoted form + Eof
		t.Fatalf("expected 1 form + Eof, got %d children", len(forms))
	}
}

func TestMetaFormHasTwoForms(t *testing.T) {
	tree := Parse(`^{:doc "x"} foo`)
	forms := tree.Root.NonTrivia()
	if len(forms) != 2 { // Meta + Eof
		t.Fatalf("expected 1 form + Eof, got %d children", len(forms))
	}
	meta := forms[0]
	if meta.Kind != cst.MetaForm {
		t.Fatalf("expected Meta node, got %s", meta.Kind)
	}
	inner := meta.NonTrivia()
	if len(inner) != 3 {
		t.Fatalf("expected caret + metadata + decorated form, got %d children", len(inner))
	}
}

func TestMetaFormMissingDecoratedIsError(t *testing.T) {
	tree := Parse(`^{:doc "x"}`)
	if !tree.HasError() {
		t.Errorf("expected HasError for truncated meta form, got clean tree:\n%s", tree.Dump())
	}
}

func TestMapOddArityHasError(t *testing.T) {
	tree := Parse(`{:a 1 :b}`)
	if !tree.HasError() {
		t.Errorf("expected HasError for odd-arity map literal, got clean tree:\n%s", tree.Dump())
	}
}

func TestMapEvenArityHasNoError(t *testing.T) {
	tree := Parse(`{:a 1 :b 2}`)
	if tree.HasError() {
		t.Errorf("unexpected error for even-arity map literal:\n%s", tree.Dump())
	}
}
