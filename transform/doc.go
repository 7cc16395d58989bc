// Package transform provides pure operations producing new documents
// from existing ones. Nothing here mutates its input: results are new
// trees that may share unchanged subtrees with the source.
//
//	strings := transform.FilterTypeName(obj, "string")
//	subset := transform.FilterKeys(obj, "name", "age")
//	doubled := transform.Map(arr, double)
//	arr, err := transform.List("a", 1, true, nil)
//
// MapExpr and FilterExpr accept expr-lang expressions instead of Go
// functions, for callers assembling transforms from configuration.
//
// # Related Packages
//
//   - github.com/jotlang/go-jot/ir - The document model
//   - github.com/jotlang/go-jot/gomap - Host-value conversion used by List and MapExpr
package transform
