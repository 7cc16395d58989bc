// Package visit provides typed visitor traversal over jot documents.
//
// A Visitor[R] bundles one operation per node variant; Accept dispatches
// a node to the matching operation and returns the visitor's result:
//
//	ok := visit.Accept(doc, visit.Strict{})
//
// Two validators are provided:
//
//   - Strict: false on duplicate object keys or any null in the tree
//   - Homogeneous: false when any array mixes non-null variants
//
// Validators return a definite bool for every document and never fail.
//
// # Related Packages
//
//   - github.com/jotlang/go-jot/ir - The document model being visited
package visit
