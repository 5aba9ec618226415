package value

import "github.com/google/uuid"

// Function is a callable Value: either a user closure capturing Env and a
// body of forms, or a builtin backed by a Go function pointer. Builtins
// carry an empty Env of their own; a builtin that needs the caller's
// environment receives it explicitly as the call-site Environment
// argument instead.
type Function struct {
	Params  []string
	Body    []Value
	Env     *Environment
	Builtin BuiltinFn
}

// BuiltinFn implements a builtin's behavior, receiving its already
// evaluated arguments and the environment it was called from.
type BuiltinFn func(args []Value, env *Environment) (Value, error)

// NewFunction builds a user-defined closure.
func NewFunction(params []string, body []Value, env *Environment) *Function {
	return &Function{Params: params, Body: body, Env: env}
}

// NewBuiltin wraps a Go function as a builtin Function.
func NewBuiltin(fn BuiltinFn) *Function {
	return &Function{Env: NewEnvironment(), Builtin: fn}
}

// IsBuiltin reports whether f is backed by a Go function rather than a
// user-defined body.
func (f *Function) IsBuiltin() bool {
	return f.Builtin != nil
}

// Macro is an unevaluated-argument form, structurally identical to a
// user Function but never callable as one: package eval answers any
// application of a macro with an Other error and performs no expansion.
type Macro struct {
	Params []string
	Body   []Value
	Env    *Environment
}

// NewMacro builds a macro closure.
func NewMacro(params []string, body []Value, env *Environment) *Macro {
	return &Macro{Params: params, Body: body, Env: env}
}

// Environment is a lexical scope: a frame of bindings plus an optional
// outer frame to fall back to. Closures hold a *Environment, so every
// closure over a frame sees mutations made after capture, and frame
// cycles (a closure stored back into its own capture frame) are handled
// by the garbage collector.
type Environment struct {
	id       uuid.UUID
	bindings map[string]Value
	outer    *Environment
}

// NewEnvironment returns a fresh, empty top-level environment.
func NewEnvironment() *Environment {
	return &Environment{id: uuid.New(), bindings: make(map[string]Value)}
}

// NewChildEnvironment returns a fresh environment whose bindings fall
// back to outer when not found locally.
func NewChildEnvironment(outer *Environment) *Environment {
	return &Environment{id: uuid.New(), bindings: make(map[string]Value), outer: outer}
}

// ID returns the environment's identity, useful for REPL session tracking
// and for diagnosing accidental frame sharing.
func (e *Environment) ID() uuid.UUID {
	return e.id
}

// Set binds name to val in e's own frame, shadowing (but not mutating) any
// outer binding of the same name.
func (e *Environment) Set(name string, val Value) {
	e.bindings[name] = val
}

// Get looks up name in e, then each outer frame in turn.
func (e *Environment) Get(name string) (Value, bool) {
	if v, ok := e.bindings[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return Nil, false
}
