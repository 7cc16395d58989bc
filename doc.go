// Package jot provides an immutable in-memory document model for
// JSON-like values, with serialization, validation, transforms, and
// inference from Go values.
//
// The root package is a thin convenience layer over the subpackages:
//
//   - github.com/jotlang/go-jot/ir - the document model
//   - github.com/jotlang/go-jot/encode - serialization to JSON text
//   - github.com/jotlang/go-jot/visit - the visitor framework and validators
//   - github.com/jotlang/go-jot/transform - filter, map, and list operations
//   - github.com/jotlang/go-jot/gomap - inference from and decoding into Go values
//   - github.com/jotlang/go-jot/libdiff - document diffs and merge patches
//
// # Usage
//
//	doc, err := jot.Infer(map[string]any{"name": "Alice", "age": 25})
//	if err != nil {
//		// handle
//	}
//	fmt.Println(jot.Serialize(doc))
package jot
