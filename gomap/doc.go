// Package gomap provides conversion between Go values and ir.Node documents.
//
// # Usage
//
//	// Infer a document from a Go value
//	type User struct {
//	    Name string
//	    Age  int
//	}
//	node, err := gomap.Infer(User{Name: "Alice", Age: 25})
//
//	// Decode a document into a Go value
//	var user User
//	err = gomap.Decode(node, &user)
//
// Inference recognizes a closed set of host shapes: nil, strings,
// numerics (widened to float64), bools, slices/arrays, string-keyed
// maps, and plain structs whose exported fields become object keys in
// declaration order. Types implementing Marshaler convert themselves;
// types implementing encoding.TextMarshaler (enumerations in
// particular) become strings carrying their symbolic name. Any other
// shape fails with *UnsupportedTypeError.
//
// Cyclic host graphs are rejected with *CycleError rather than
// recursing forever; MaxDepth adds an explicit cap.
//
// # Related Packages
//
//   - github.com/jotlang/go-jot/ir - The document model
//   - github.com/jotlang/go-jot/transform - Filter/map over documents
package gomap
