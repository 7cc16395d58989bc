package gomap

import "fmt"

// UnsupportedTypeError reports a host value whose shape has no
// document representation (functions, channels, complex numbers, ...).
type UnsupportedTypeError struct {
	FieldPath string // field path (e.g., "person.address.street")
	Type      string // Go type name of the offending value
}

func (e *UnsupportedTypeError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("unsupported type %s at %s", e.Type, e.FieldPath)
	}
	return fmt.Sprintf("unsupported type %s", e.Type)
}

// NonStringKeyError reports a map whose key type is not string.
// Objects are keyed by strings only.
type NonStringKeyError struct {
	FieldPath string
	KeyType   string
}

func (e *NonStringKeyError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("map keys must be strings, got %s at %s", e.KeyType, e.FieldPath)
	}
	return fmt.Sprintf("map keys must be strings, got %s", e.KeyType)
}

// CycleError reports a cyclic host object graph, or a tree deeper than
// the configured MaxDepth.
type CycleError struct {
	FieldPath string
	Prev      string // path where the repeated reference was first seen
	Depth     int    // nonzero when the depth cap was exceeded
}

func (e *CycleError) Error() string {
	if e.Depth > 0 {
		return fmt.Sprintf("max depth %d exceeded at %s", e.Depth, e.FieldPath)
	}
	return fmt.Sprintf("circular reference detected: %s -> %s (previously seen at %s)",
		e.Prev, e.FieldPath, e.Prev)
}

// InferError reports a structural problem during inference that is not
// a type mismatch, such as colliding field names after embedded-struct
// flattening.
type InferError struct {
	FieldPath string
	Message   string
}

func (e *InferError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("infer error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("infer error: %s", e.Message)
}

// DecodeError represents an error while decoding a document into a Go value.
type DecodeError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *DecodeError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("decode error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("decode error: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
