package transform

import "github.com/jotlang/go-jot/ir"

// Map applies f to every element of an array in order, producing a new
// array of the same length. Map performs no type dispatch of its own:
// deciding which elements to rewrite belongs entirely to f, which must
// be total and should return new nodes rather than mutate its argument.
// Non-arrays are returned unchanged.
func Map(arr *ir.Node, f func(*ir.Node) *ir.Node) *ir.Node {
	if arr.Type != ir.ArrayType {
		return arr
	}
	elems := make([]*ir.Node, len(arr.Values))
	for i, v := range arr.Values {
		elems[i] = f(v)
	}
	return ir.FromSlice(elems)
}
