// Package citrine is the embeddable front end for the Citrine language:
// lexing, lossless parsing, reading, and evaluation, exposed as one flat
// API so host programs (the REPL, the websocket server, and any future
// embedder) don't need to import the internal pipeline packages directly.
package citrine

import (
	"github.com/odvcencio/citrine/cst"
	"github.com/odvcencio/citrine/eval"
	"github.com/odvcencio/citrine/lexer"
	"github.com/odvcencio/citrine/parser"
	"github.com/odvcencio/citrine/reader"
	"github.com/odvcencio/citrine/token"
	"github.com/odvcencio/citrine/value"
)

// Tokenize lexes source into a flat token stream.
func Tokenize(source string) []token.Token {
	return lexer.Tokenize(source)
}

// Parse builds a lossless concrete syntax tree from source.
func Parse(source string) *cst.Tree {
	return parser.Parse(source)
}

// Read converts tree into a value.Value.
func Read(tree *cst.Tree) (value.Value, error) {
	return reader.Read(tree)
}

// Eval evaluates v in env.
func Eval(v value.Value, env *value.Environment) (value.Value, error) {
	return eval.Eval(v, env)
}

// StandardEnv returns a fresh top-level environment with every builtin
// registered.
func StandardEnv() *value.Environment {
	return eval.StandardEnv()
}

// EvalStr parses, reads, and evaluates every top-level form in source in
// turn, threading a single environment through all of them, and returns
// the last form's result. This is the entry point a REPL or script
// runner wants: Read and Eval each handle one form at a time.
func EvalStr(source string, env *value.Environment) (value.Value, error) {
	tree := parser.Parse(source)
	result := value.Nil
	for _, form := range tree.Root.NonTrivia() {
		if form.Kind == cst.EofTok || form.Kind == cst.DiscardForm {
			continue
		}
		v, err := reader.ReadNode(form, tree.Source)
		if err != nil {
			return value.Nil, err
		}
		r, err := eval.Eval(v, env)
		if err != nil {
			return value.Nil, err
		}
		result = r
	}
	return result, nil
}

// ReadStr parses source and reads it into a single value.Value, following
// the Root conversion rule (one form unwraps, several form a list).
func ReadStr(source string) (value.Value, error) {
	return reader.Read(parser.Parse(source))
}
