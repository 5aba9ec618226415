// Package eval implements Citrine's tree-walking evaluator: special-form
// dispatch, function application, and the builtin environment. Dispatch
// is a switch on the value's tag; special-form names are checked before
// falling through to a regular call.
package eval

import "github.com/odvcencio/citrine/value"

// Eval evaluates v in env and returns its result, or an *EvalError.
func Eval(v value.Value, env *value.Environment) (value.Value, error) {
	switch v.Tag {
	case value.NilTag, value.BooleanTag, value.NumberTag, value.StringTag, value.KeywordTag,
		value.FunctionTag, value.MacroTag:
		return v, nil

	case value.SymbolTag:
		if bound, ok := env.Get(v.Str); ok {
			return bound, nil
		}
		return value.Nil, errUnbound(v.Str)

	case value.ListTag:
		return evalList(v.Items, env)

	case value.VectorTag:
		out := make([]value.Value, len(v.Items))
		for i, item := range v.Items {
			r, err := Eval(item, env)
			if err != nil {
				return value.Nil, err
			}
			out[i] = r
		}
		return value.Vector(out), nil

	case value.MapTag:
		out := value.NewMap()
		var evalErr error
		v.MapPairs(func(k, val value.Value) {
			if evalErr != nil {
				return
			}
			ek, err := Eval(k, env)
			if err != nil {
				evalErr = err
				return
			}
			ev, err := Eval(val, env)
			if err != nil {
				evalErr = err
				return
			}
			out = out.MapSet(ek, ev)
		})
		if evalErr != nil {
			return value.Nil, evalErr
		}
		return out, nil

	case value.SetTag:
		out := value.NewSet()
		var evalErr error
		v.SetMembers(func(m value.Value) {
			if evalErr != nil {
				return
			}
			r, err := Eval(m, env)
			if err != nil {
				evalErr = err
				return
			}
			out = out.SetAdd(r)
		})
		if evalErr != nil {
			return value.Nil, evalErr
		}
		return out, nil

	default:
		return value.Nil, errOther("unreachable value tag")
	}
}

func evalList(items []value.Value, env *value.Environment) (value.Value, error) {
	if len(items) == 0 {
		return value.List(nil), nil
	}

	if items[0].Tag == value.SymbolTag {
		switch items[0].Str {
		case "setq":
			return evalSetq(items, env)
		case "fn":
			return evalFn(items, env)
		case "macro":
			return evalMacro(items, env)
		case "quote":
			return evalQuote(items)
		}
	}

	return applyForm(items, env)
}

func evalQuote(items []value.Value) (value.Value, error) {
	if len(items) != 2 {
		return value.Nil, errArity(1, len(items)-1)
	}
	return items[1], nil
}

func evalSetq(items []value.Value, env *value.Environment) (value.Value, error) {
	if len(items) != 3 {
		return value.Nil, errArity(2, len(items)-1)
	}
	if items[1].Tag != value.SymbolTag {
		return value.Nil, errType("symbol", items[1])
	}
	v, err := Eval(items[2], env)
	if err != nil {
		return value.Nil, err
	}
	env.Set(items[1].Str, v)
	return v, nil
}

func evalFn(items []value.Value, env *value.Environment) (value.Value, error) {
	params, body, err := parseParamsAndBody(items)
	if err != nil {
		return value.Nil, err
	}
	return value.FunctionValue(value.NewFunction(params, body, env)), nil
}

func evalMacro(items []value.Value, env *value.Environment) (value.Value, error) {
	params, body, err := parseParamsAndBody(items)
	if err != nil {
		return value.Nil, err
	}
	return value.MacroValue(value.NewMacro(params, body, env)), nil
}

func parseParamsAndBody(items []value.Value) ([]string, []value.Value, error) {
	if len(items) < 3 {
		return nil, nil, errArity(2, len(items)-1)
	}
	if items[1].Tag != value.VectorTag {
		return nil, nil, errType("vector", items[1])
	}
	params := make([]string, len(items[1].Items))
	for i, p := range items[1].Items {
		if p.Tag != value.SymbolTag {
			return nil, nil, errType("symbol", p)
		}
		params[i] = p.Str
	}
	return params, items[2:], nil
}

// applyForm evaluates every element of items, then applies the result of
// evaluating items[0] to the rest.
func applyForm(items []value.Value, env *value.Environment) (value.Value, error) {
	fn, err := Eval(items[0], env)
	if err != nil {
		return value.Nil, err
	}
	args := make([]value.Value, len(items)-1)
	for i, a := range items[1:] {
		v, err := Eval(a, env)
		if err != nil {
			return value.Nil, err
		}
		args[i] = v
	}
	return Apply(fn, args, env)
}

// Apply calls fn (which must be a Function) with already-evaluated args.
func Apply(fn value.Value, args []value.Value, env *value.Environment) (value.Value, error) {
	switch fn.Tag {
	case value.FunctionTag:
		f := fn.Fn
		if f.IsBuiltin() {
			return f.Builtin(args, env)
		}
		if len(f.Params) != len(args) {
			return value.Nil, errArity(len(f.Params), len(args))
		}
		callEnv := value.NewChildEnvironment(f.Env)
		for i, p := range f.Params {
			callEnv.Set(p, args[i])
		}
		result := value.Nil
		for _, expr := range f.Body {
			r, err := Eval(expr, callEnv)
			if err != nil {
				return value.Nil, err
			}
			result = r
		}
		return result, nil

	case value.MacroTag:
		return value.Nil, errOther("macro application not implemented")

	default:
		return value.Nil, errNotCallable(fn)
	}
}
