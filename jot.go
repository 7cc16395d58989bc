package jot

import (
	"github.com/jotlang/go-jot/encode"
	"github.com/jotlang/go-jot/gomap"
	"github.com/jotlang/go-jot/ir"
	"github.com/jotlang/go-jot/visit"
)

// Infer converts an arbitrary Go value into a document.
func Infer(v any, opts ...gomap.Option) (*ir.Node, error) {
	return gomap.Infer(v, opts...)
}

// Decode populates v from a document.
func Decode(node *ir.Node, v any) error {
	return gomap.Decode(node, v)
}

// Serialize renders node as compact JSON text.
func Serialize(node *ir.Node, opts ...encode.Option) string {
	return encode.MustString(node, opts...)
}

// Valid reports whether node contains no null values and no objects
// with duplicate keys, at any depth.
func Valid(node *ir.Node) bool {
	return visit.Accept(node, visit.Strict{})
}

// Homogeneous reports whether every array in node holds non-null
// elements of a single variant, recursively.
func Homogeneous(node *ir.Node) bool {
	return visit.Accept(node, visit.Homogeneous{})
}
