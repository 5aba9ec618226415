package eval

import "github.com/odvcencio/citrine/value"

// StandardEnv returns a fresh top-level environment with every builtin
// registered, grouped by concern.
func StandardEnv() *value.Environment {
	env := value.NewEnvironment()
	registerLiterals(env)
	registerArithmeticOps(env)
	registerComparisonOps(env)
	registerLogicalOps(env)
	registerListOps(env)
	return env
}

// registerLiterals binds the symbols the lexer and reader have no
// special-cased token for: "nil", "true", and "false" lex and read as
// ordinary Symbol text, so evaluating them resolves through the same
// environment lookup as any other identifier.
func registerLiterals(env *value.Environment) {
	env.Set("nil", value.Nil)
	env.Set("true", value.Bool(true))
	env.Set("false", value.Bool(false))
}

func bind(env *value.Environment, name string, fn value.BuiltinFn) {
	env.Set(name, value.FunctionValue(value.NewBuiltin(fn)))
}

func registerArithmeticOps(env *value.Environment) {
	bind(env, "+", func(args []value.Value, _ *value.Environment) (value.Value, error) {
		sum := 0.0
		for _, a := range args {
			if a.Tag != value.NumberTag {
				return value.Nil, errType("number", a)
			}
			sum += a.Num
		}
		return value.Num(sum), nil
	})

	bind(env, "-", func(args []value.Value, _ *value.Environment) (value.Value, error) {
		if len(args) == 0 {
			return value.Nil, errArity(1, 0)
		}
		if args[0].Tag != value.NumberTag {
			return value.Nil, errType("number", args[0])
		}
		if len(args) == 1 {
			return value.Num(-args[0].Num), nil
		}
		result := args[0].Num
		for _, a := range args[1:] {
			if a.Tag != value.NumberTag {
				return value.Nil, errType("number", a)
			}
			result -= a.Num
		}
		return value.Num(result), nil
	})

	bind(env, "*", func(args []value.Value, _ *value.Environment) (value.Value, error) {
		product := 1.0
		for _, a := range args {
			if a.Tag != value.NumberTag {
				return value.Nil, errType("number", a)
			}
			product *= a.Num
		}
		return value.Num(product), nil
	})

	bind(env, "/", func(args []value.Value, _ *value.Environment) (value.Value, error) {
		if len(args) == 0 {
			return value.Nil, errArity(1, 0)
		}
		if args[0].Tag != value.NumberTag {
			return value.Nil, errType("number", args[0])
		}
		if len(args) == 1 {
			if args[0].Num == 0 {
				return value.Nil, errOther("Division by zero")
			}
			return value.Num(1 / args[0].Num), nil
		}
		result := args[0].Num
		for _, a := range args[1:] {
			if a.Tag != value.NumberTag {
				return value.Nil, errType("number", a)
			}
			if a.Num == 0 {
				return value.Nil, errOther("Division by zero")
			}
			result /= a.Num
		}
		return value.Num(result), nil
	})
}

func registerComparisonOps(env *value.Environment) {
	bind(env, "=", func(args []value.Value, _ *value.Environment) (value.Value, error) {
		if len(args) < 2 {
			return value.Nil, errArity(2, len(args))
		}
		first := args[0]
		for _, a := range args[1:] {
			if !value.Equal(first, a) {
				return value.Bool(false), nil
			}
		}
		return value.Bool(true), nil
	})

	bind(env, "<", func(args []value.Value, _ *value.Environment) (value.Value, error) {
		if len(args) != 2 {
			return value.Nil, errArity(2, len(args))
		}
		if args[0].Tag != value.NumberTag || args[1].Tag != value.NumberTag {
			return value.Nil, errTypeText("number", describe(args[0])+" and "+describe(args[1]))
		}
		return value.Bool(args[0].Num < args[1].Num), nil
	})

	bind(env, ">", func(args []value.Value, _ *value.Environment) (value.Value, error) {
		if len(args) != 2 {
			return value.Nil, errArity(2, len(args))
		}
		if args[0].Tag != value.NumberTag || args[1].Tag != value.NumberTag {
			return value.Nil, errTypeText("number", describe(args[0])+" and "+describe(args[1]))
		}
		return value.Bool(args[0].Num > args[1].Num), nil
	})
}

func registerLogicalOps(env *value.Environment) {
	bind(env, "not", func(args []value.Value, _ *value.Environment) (value.Value, error) {
		if len(args) != 1 {
			return value.Nil, errArity(1, len(args))
		}
		switch args[0].Tag {
		case value.BooleanTag:
			return value.Bool(!args[0].Bool), nil
		case value.NilTag:
			return value.Bool(true), nil
		default:
			return value.Bool(false), nil
		}
	})
}

func registerListOps(env *value.Environment) {
	bind(env, "list", func(args []value.Value, _ *value.Environment) (value.Value, error) {
		return value.List(args), nil
	})

	bind(env, "first", func(args []value.Value, _ *value.Environment) (value.Value, error) {
		if len(args) != 1 {
			return value.Nil, errArity(1, len(args))
		}
		items, ok := seqItems(args[0])
		if !ok {
			return value.Nil, errType("list or vector", args[0])
		}
		if len(items) == 0 {
			return value.Nil, nil
		}
		return items[0], nil
	})

	bind(env, "rest", func(args []value.Value, _ *value.Environment) (value.Value, error) {
		if len(args) != 1 {
			return value.Nil, errArity(1, len(args))
		}
		switch args[0].Tag {
		case value.ListTag:
			if len(args[0].Items) == 0 {
				return value.List(nil), nil
			}
			return value.List(append([]value.Value(nil), args[0].Items[1:]...)), nil
		case value.VectorTag:
			if len(args[0].Items) == 0 {
				return value.Vector(nil), nil
			}
			return value.Vector(append([]value.Value(nil), args[0].Items[1:]...)), nil
		default:
			return value.Nil, errType("list or vector", args[0])
		}
	})
}

func seqItems(v value.Value) ([]value.Value, bool) {
	if v.Tag == value.ListTag || v.Tag == value.VectorTag {
		return v.Items, true
	}
	return nil, false
}
