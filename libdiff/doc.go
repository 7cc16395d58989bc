// Package libdiff computes differences between jot documents.
//
// # Usage
//
//	// Compute a structural diff between two documents
//	change := libdiff.Diff(oldDoc, newDoc) // nil when equal
//
//	// RFC 7386 merge patch over the serialized forms
//	patch, err := libdiff.MergePatch(oldDoc, newDoc)
//
// Diffs are represented as documents themselves, so they can be stored,
// serialized, and inspected with the same tools as any other value.
//
// # Related Packages
//
//   - github.com/jotlang/go-jot/ir - The document model
//   - github.com/jotlang/go-jot/encode - Serialization used by MergePatch
package libdiff
