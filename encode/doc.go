// Package encode serializes ir.Node trees to JSON text.
//
// # Usage
//
//	var buf bytes.Buffer
//	err := encode.Encode(node, &buf)
//
//	s := encode.MustString(node)
//
//	// Pretty printed
//	s, err := encode.String(node, encode.Indent(2))
//
// The default output is compact valid JSON with no whitespace. Object
// keys are emitted in insertion order and string values are escaped.
// Serialization is total: any well-formed node encodes without error.
//
// # Related Packages
//
//   - github.com/jotlang/go-jot/ir - The document model being encoded
package encode
