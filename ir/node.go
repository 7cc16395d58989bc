package ir

import (
	"slices"
)

// Node is a single value in a jot document. It is a recursive tagged
// union: the Type field selects which payload fields are meaningful.
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i],
// so there are always as many fields as values. Key order is insertion
// order and is preserved through serialization. Duplicate keys may be
// present after construction; they are rejected by visit.Strict, not here.
//
// Nodes are immutable by convention: no operation in this module mutates
// a node after construction, and derived documents are new trees that may
// share unchanged subtrees with their source.
type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Float64 float64
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

// FromInt widens v to float64: numbers carry no integer/float
// distinction at the type level.
func FromInt(v int64) *Node {
	return FromFloat(float64(v))
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromSlice(elems []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(elems)),
	}
	copy(res.Values, elems)
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object preserving the given key order.
// Duplicate keys are kept as-is.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i := range kvs {
		res.Fields[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

// FromMap builds an object with keys in sorted order, since Go map
// iteration order is undefined and serialization must be deterministic.
func FromMap(m map[string]*Node) *Node {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	res := &Node{
		Type:   ObjectType,
		Fields: keys,
		Values: make([]*Node, len(keys)),
	}
	for i, key := range keys {
		res.Values[i] = m[key]
	}
	return res
}

// ToMap returns the object's entries as a map. With duplicate keys the
// last entry wins. Returns nil for non-objects.
func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, field := range node.Fields {
		res[field] = node.Values[i]
	}
	return res
}

// Get returns the value for the first occurrence of field, or nil.
func Get(y *Node, field string) *Node {
	for i := range y.Fields {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Float64 = y.Float64
	if y.Fields != nil {
		dst.Fields = make([]string, len(y.Fields))
		copy(dst.Fields, y.Fields)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

// Visit walks the tree calling f twice per node, pre and post order.
// Returning false from the pre call skips the node's children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// Size returns the number of nodes in the tree rooted at y.
func Size(y *Node) int {
	n := 0
	y.Visit(func(_ *Node, isPost bool) (bool, error) {
		if !isPost {
			n++
		}
		return true, nil
	})
	return n
}
