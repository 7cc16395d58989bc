package visit

import "github.com/jotlang/go-jot/ir"

// Homogeneous is a Visitor[bool] that accepts a document only if every
// array in it is homogeneous: all non-null elements share the variant of
// the first non-null element, recursively. Empty and all-null arrays are
// vacuously homogeneous. Objects may mix value types freely; only their
// contained arrays are checked.
type Homogeneous struct{}

func (h Homogeneous) VisitArray(n *ir.Node) bool {
	var required ir.Type
	found := false
	for _, v := range n.Values {
		if v.Type == ir.NullType {
			continue
		}
		if !found {
			required = v.Type
			found = true
		} else if v.Type != required {
			return false
		}
		if !Accept(v, h) {
			return false
		}
	}
	return true
}

func (h Homogeneous) VisitObject(n *ir.Node) bool {
	for _, v := range n.Values {
		if !Accept(v, h) {
			return false
		}
	}
	return true
}

func (Homogeneous) VisitString(*ir.Node) bool { return true }
func (Homogeneous) VisitNumber(*ir.Node) bool { return true }
func (Homogeneous) VisitBool(*ir.Node) bool   { return true }
func (Homogeneous) VisitNull(*ir.Node) bool   { return true }
