package transform

import (
	"slices"

	"github.com/jotlang/go-jot/ir"
)

// FilterType returns a new object or array containing only the
// entries/elements whose variant is t, preserving relative order.
// Other node variants are returned unchanged (nodes are immutable, so
// sharing is safe). The original is never modified.
func FilterType(n *ir.Node, t ir.Type) *ir.Node {
	switch n.Type {
	case ir.ObjectType:
		kvs := make([]ir.KeyVal, 0, len(n.Fields))
		for i, field := range n.Fields {
			if n.Values[i].Type == t {
				kvs = append(kvs, ir.KeyVal{Key: field, Val: n.Values[i]})
			}
		}
		return ir.FromKeyVals(kvs)
	case ir.ArrayType:
		elems := make([]*ir.Node, 0, len(n.Values))
		for _, v := range n.Values {
			if v.Type == t {
				elems = append(elems, v)
			}
		}
		return ir.FromSlice(elems)
	default:
		return n
	}
}

// FilterTypeName is FilterType with a textual tag ("string", "number",
// "boolean", "array", "null", "object"). An unrecognized tag matches
// nothing and yields an empty result rather than failing.
func FilterTypeName(n *ir.Node, tag string) *ir.Node {
	var t ir.Type
	if err := t.UnmarshalText([]byte(tag)); err != nil {
		switch n.Type {
		case ir.ObjectType:
			return ir.FromKeyVals(nil)
		case ir.ArrayType:
			return ir.FromSlice(nil)
		default:
			return n
		}
	}
	return FilterType(n, t)
}

// FilterKeys returns a new object retaining only the properties whose
// key is in keys, in their original order. Keys not present in the
// object are silently ignored. Non-objects are returned unchanged.
func FilterKeys(n *ir.Node, keys ...string) *ir.Node {
	if n.Type != ir.ObjectType {
		return n
	}
	kvs := make([]ir.KeyVal, 0, len(n.Fields))
	for i, field := range n.Fields {
		if slices.Contains(keys, field) {
			kvs = append(kvs, ir.KeyVal{Key: field, Val: n.Values[i]})
		}
	}
	return ir.FromKeyVals(kvs)
}
