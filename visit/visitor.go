package visit

import "github.com/jotlang/go-jot/ir"

// Visitor is a polymorphic operation bundle with one method per node
// variant. The variant set is closed; new behavior over documents is
// added by writing new visitors, not new variants.
type Visitor[R any] interface {
	VisitObject(n *ir.Node) R
	VisitArray(n *ir.Node) R
	VisitString(n *ir.Node) R
	VisitNumber(n *ir.Node) R
	VisitBool(n *ir.Node) R
	VisitNull(n *ir.Node) R
}

// Accept dispatches n to the visitor method matching its variant.
// Go methods cannot introduce type parameters, so dispatch is a free
// function rather than a method on ir.Node.
func Accept[R any](n *ir.Node, v Visitor[R]) R {
	switch n.Type {
	case ir.ObjectType:
		return v.VisitObject(n)
	case ir.ArrayType:
		return v.VisitArray(n)
	case ir.StringType:
		return v.VisitString(n)
	case ir.NumberType:
		return v.VisitNumber(n)
	case ir.BoolType:
		return v.VisitBool(n)
	case ir.NullType:
		return v.VisitNull(n)
	default:
		panic("impossible production")
	}
}
