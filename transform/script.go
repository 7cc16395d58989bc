package transform

import (
	"fmt"

	"github.com/jotlang/go-jot/debug"
	"github.com/jotlang/go-jot/gomap"
	"github.com/jotlang/go-jot/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// MapExpr is Map with the element function given as an expr-lang
// expression. The expression is compiled once and evaluated per element
// with the environment
//
//	value: the element as a plain Go value
//	index: the element's position
//	type:  the element's variant name ("number", "string", ...)
//
// and its result is converted back into a node through gomap.Infer:
//
//	doubled, err := transform.MapExpr(arr, `type == "number" ? value * 2 : value`)
func MapExpr(arr *ir.Node, src string) (*ir.Node, error) {
	if arr.Type != ir.ArrayType {
		return arr, nil
	}
	prg, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("compiling map expression: %w", err)
	}
	elems := make([]*ir.Node, len(arr.Values))
	for i, v := range arr.Values {
		res, err := runElem(prg, v, i)
		if err != nil {
			return nil, err
		}
		node, err := gomap.Infer(res)
		if err != nil {
			return nil, err
		}
		elems[i] = node
	}
	return ir.FromSlice(elems), nil
}

// FilterExpr returns a new array retaining the elements for which the
// expression evaluates to true, in order. The environment is the same
// as for MapExpr.
func FilterExpr(arr *ir.Node, src string) (*ir.Node, error) {
	if arr.Type != ir.ArrayType {
		return arr, nil
	}
	prg, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("compiling filter expression: %w", err)
	}
	elems := make([]*ir.Node, 0, len(arr.Values))
	for i, v := range arr.Values {
		res, err := runElem(prg, v, i)
		if err != nil {
			return nil, err
		}
		keep, ok := res.(bool)
		if !ok {
			return nil, fmt.Errorf("filter expression returned %T, want bool", res)
		}
		if keep {
			elems = append(elems, v)
		}
	}
	return ir.FromSlice(elems), nil
}

func runElem(prg *vm.Program, v *ir.Node, i int) (any, error) {
	env := map[string]any{
		"value": ir.ToAny(v),
		"index": i,
		"type":  v.Type.String(),
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval: [%d] %s -> %v\n", i, v.Type, res)
	}
	return res, nil
}
