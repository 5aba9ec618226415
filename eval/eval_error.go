package eval

import (
	"fmt"

	"github.com/odvcencio/citrine/value"
)

// ErrorKind identifies which alternative of EvalError occurred.
type ErrorKind uint8

const (
	UnboundSymbol ErrorKind = iota
	NotCallable
	ArityMismatch
	TypeError
	SyntaxError
	Other
)

// EvalError is the error type every evaluator and builtin operation
// returns. The Error() text for each kind is stable: REPL users and the
// websocket protocol both see it verbatim.
type EvalError struct {
	Kind         ErrorKind
	Symbol       string      // UnboundSymbol
	Value        value.Value // NotCallable
	Expected     int         // ArityMismatch
	Got          int         // ArityMismatch
	ExpectedType string      // TypeError
	GotType      string      // TypeError
	Message      string      // SyntaxError, Other
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case UnboundSymbol:
		return fmt.Sprintf("Unbound symbol: %s", e.Symbol)
	case NotCallable:
		return fmt.Sprintf("Not callable: %s", e.Value.String())
	case ArityMismatch:
		return fmt.Sprintf("Arity mismatch: expected %d arguments, got %d", e.Expected, e.Got)
	case TypeError:
		return fmt.Sprintf("Type error: expected %s, got %s", e.ExpectedType, e.GotType)
	case SyntaxError:
		return fmt.Sprintf("Syntax error: %s", e.Message)
	case Other:
		return fmt.Sprintf("Error: %s", e.Message)
	default:
		return "Error: unknown"
	}
}

func errUnbound(name string) error {
	return &EvalError{Kind: UnboundSymbol, Symbol: name}
}

func errNotCallable(v value.Value) error {
	return &EvalError{Kind: NotCallable, Value: v}
}

func errArity(expected, got int) error {
	return &EvalError{Kind: ArityMismatch, Expected: expected, Got: got}
}

func errType(expected string, got value.Value) error {
	return &EvalError{Kind: TypeError, ExpectedType: expected, GotType: describe(got)}
}

func errTypeText(expected, got string) error {
	return &EvalError{Kind: TypeError, ExpectedType: expected, GotType: got}
}

func errOther(msg string) error {
	return &EvalError{Kind: Other, Message: msg}
}

// describe renders a value for use inside type-error messages.
func describe(v value.Value) string {
	return v.String()
}
