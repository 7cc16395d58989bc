package visit

import "github.com/jotlang/go-jot/ir"

// Strict is a Visitor[bool] that accepts a document only if no object
// has duplicate keys and no null appears anywhere in the tree.
// It always produces a verdict, never an error: undesirable content in
// an already-built document is a validation result, not a failure.
type Strict struct{}

func (s Strict) VisitObject(n *ir.Node) bool {
	seen := make(map[string]struct{}, len(n.Fields))
	for _, field := range n.Fields {
		if _, dup := seen[field]; dup {
			return false
		}
		seen[field] = struct{}{}
	}
	for _, v := range n.Values {
		if !Accept(v, s) {
			return false
		}
	}
	return true
}

func (s Strict) VisitArray(n *ir.Node) bool {
	for _, v := range n.Values {
		if !Accept(v, s) {
			return false
		}
	}
	return true
}

func (Strict) VisitString(*ir.Node) bool { return true }
func (Strict) VisitNumber(*ir.Node) bool { return true }
func (Strict) VisitBool(*ir.Node) bool   { return true }

// Any null, at any depth, invalidates the whole document.
func (Strict) VisitNull(*ir.Node) bool { return false }
