// Package ir provides the document model for jot values.
//
// # Overview
//
// The ir package defines the core data structure for representing
// JSON-like documents as a tree of nodes. All jot documents, whether
// built programmatically or inferred from Go values, are ir.Node trees.
//
// The model is a recursive tagged union with a closed set of six
// variants, where values are placed in fields depending on the node type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (64-bit IEEE float; integers are widened)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (parallel Fields and Values)
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "key", Val: ir.FromString("value")},
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// FromKeyVals preserves key order and tolerates duplicate keys; FromMap
// sorts keys since Go map iteration order is undefined. Duplicate keys
// are flagged by the strict validator in package visit, never at
// construction time.
//
// # Immutability
//
// Nodes are never mutated after construction. Every transform in this
// module produces a new tree; unchanged subtrees may be shared between
// a document and its derivatives, which is safe precisely because
// nothing writes to a node in place. Concurrent readers need no locking.
//
// # Comparison and Hashing
//
// Nodes can be compared with a total order:
//
//	equal := ir.Compare(a, b) == 0
//
// and hashed for caching or deduplication:
//
//	h := node.Hash()
//
// # Related Packages
//
//   - github.com/jotlang/go-jot/encode - Serializes nodes to JSON text
//   - github.com/jotlang/go-jot/visit - Typed visitor traversal and validators
//   - github.com/jotlang/go-jot/transform - Filter and map operations
//   - github.com/jotlang/go-jot/gomap - Conversion between Go values and nodes
package ir
