package eval

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/liabri/zmerald/debug"
	"github.com/liabri/zmerald/ir"
)

// Env holds the variables visible to expressions.
type Env map[string]any

// Eval compiles and runs input against doc.
func Eval(input string, doc ir.Value, env Env) (ir.Value, error) {
	return eval(input, doc, "$", env)
}

func eval(input string, doc ir.Value, where string, env Env) (ir.Value, error) {
	x, err := run(input, doc, where, env)
	if err != nil {
		return ir.Value{}, err
	}
	return FromAny(x)
}

func run(input string, doc ir.Value, where string, env Env) (any, error) {
	prg, err := expr.Compile(input, exprOpts(doc, where)...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", input, err)
	}
	x, err := vm.Run(prg, scope(doc, env))
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", input, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", input, x)
	}
	return x, nil
}

// scope merges the document's top-level fields, the document itself and env.
// env takes precedence.
func scope(doc ir.Value, env Env) map[string]any {
	res := map[string]any{}
	if doc.Type == ir.MapType {
		for k, v := range doc.Map.All() {
			if k.Type == ir.StringType {
				res[k.String] = v.Interface()
			}
		}
	}
	res["doc"] = doc.Interface()
	for k, v := range env {
		res[k] = v
	}
	return res
}

func exprOpts(doc ir.Value, where string) []expr.Option {
	return []expr.Option{
		expr.Function("whereami", func(params ...any) (any, error) {
			return where, nil
		},
			new(func() string)),
		expr.Function("getpath", func(params ...any) (any, error) {
			res, err := doc.Get(params[0].(string))
			if err != nil {
				return nil, err
			}
			return res.Interface(), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			vs, err := doc.List(params[0].(string))
			if err != nil {
				return nil, err
			}
			res := make([]any, len(vs))
			for i := range vs {
				res[i] = vs[i].Interface()
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// FromAny converts an expression result to a value.
func FromAny(x any) (ir.Value, error) {
	switch t := x.(type) {
	case int:
		return ir.FromInt(int64(t)), nil
	case map[string]any:
		m := ir.NewMap()
		for k, xv := range t {
			v, err := FromAny(xv)
			if err != nil {
				return ir.Value{}, err
			}
			m.Insert(ir.FromString(k), v)
		}
		return ir.FromMap(m), nil
	case []any:
		seq := make([]ir.Value, len(t))
		for i := range t {
			v, err := FromAny(t[i])
			if err != nil {
				return ir.Value{}, err
			}
			seq[i] = v
		}
		return ir.FromSeq(seq), nil
	}
	v, err := ir.FromInterface(x)
	if err != nil {
		return ir.Value{}, fmt.Errorf("could not convert evaluation result: %w", err)
	}
	return v, nil
}
