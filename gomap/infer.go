package gomap

import (
	"encoding"
	"fmt"
	"reflect"
	"slices"

	"github.com/jotlang/go-jot/debug"
	"github.com/jotlang/go-jot/ir"
)

// Marshaler is the capability a type implements to convert itself to a
// document, bypassing reflection. Types with invariants or unexported
// state should implement it; plain record types need not.
type Marshaler interface {
	MarshalJot() (*ir.Node, error)
}

// Infer converts an arbitrary Go value to a document by structural
// introspection. Recognized shapes: nil, strings, all integer and float
// kinds (widened to float64), bools, slices and arrays, string-keyed
// maps, plain structs, and types implementing Marshaler or
// encoding.TextMarshaler (enumerations render as their symbolic name).
// Anything else fails with *UnsupportedTypeError; failure aborts the
// whole conversion with no partial result.
//
// Cyclic host graphs are detected with a visited-pointer guard and fail
// with *CycleError; MaxDepth adds an explicit recursion cap.
func Infer(v any, opts ...Option) (*ir.Node, error) {
	o := newOptions(opts)
	if v == nil {
		return ir.Null(), nil
	}
	visited := make(map[uintptr]string) // pointer address -> field path
	node, err := inferValue(reflect.ValueOf(v), "", 0, visited, o)
	if err != nil {
		return nil, err
	}
	if debug.Infer() {
		debug.Logf("infer: %T -> %s (%d nodes)\n", v, node.Type, ir.Size(node))
	}
	return node, nil
}

func inferValue(val reflect.Value, fieldPath string, depth int, visited map[uintptr]string, o *options) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	if o.maxDepth > 0 && depth > o.maxDepth {
		return nil, &CycleError{FieldPath: fieldPath, Depth: o.maxDepth}
	}

	typ := val.Type()
	kind := typ.Kind()

	if kind == reflect.Ptr {
		if val.IsNil() {
			return ir.Null(), nil
		}
		if node, ok, err := inferMarshaler(val); ok {
			return node, err
		}
		ptrAddr := val.Pointer()
		if prevPath, seen := visited[ptrAddr]; seen {
			return nil, &CycleError{FieldPath: fieldPath, Prev: prevPath}
		}
		visited[ptrAddr] = fieldPath
		node, err := inferValue(val.Elem(), fieldPath, depth+1, visited, o)
		// The same pointer may legitimately appear in sibling branches.
		delete(visited, ptrAddr)
		return node, err
	}

	if node, ok, err := inferMarshaler(val); ok {
		return node, err
	}
	if val.CanAddr() {
		if node, ok, err := inferMarshaler(val.Addr()); ok {
			return node, err
		}
	}

	switch kind {
	case reflect.String:
		return ir.FromString(val.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ir.FromFloat(float64(val.Uint())), nil

	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Slice, reflect.Array:
		return inferSlice(val, fieldPath, depth, visited, o)

	case reflect.Map:
		return inferMap(val, fieldPath, depth, visited, o)

	case reflect.Struct:
		return inferStruct(val, fieldPath, depth, visited, o)

	case reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return inferValue(val.Elem(), fieldPath, depth, visited, o)

	default:
		return nil, &UnsupportedTypeError{FieldPath: fieldPath, Type: typ.String()}
	}
}

// inferMarshaler handles the two conversion capabilities: MarshalJot for
// self-converting types and encoding.TextMarshaler for enumerations and
// other text-shaped values (the node is their symbolic name).
func inferMarshaler(val reflect.Value) (*ir.Node, bool, error) {
	if !val.CanInterface() {
		return nil, false, nil
	}
	switch m := val.Interface().(type) {
	case Marshaler:
		node, err := m.MarshalJot()
		return node, true, err
	case encoding.TextMarshaler:
		text, err := m.MarshalText()
		if err != nil {
			return nil, true, err
		}
		return ir.FromString(string(text)), true, nil
	}
	return nil, false, nil
}

func inferSlice(val reflect.Value, fieldPath string, depth int, visited map[uintptr]string, o *options) (*ir.Node, error) {
	if val.Kind() == reflect.Slice {
		if val.IsNil() {
			return ir.Null(), nil
		}
		slicePtr := val.Pointer()
		if prevPath, seen := visited[slicePtr]; seen {
			return nil, &CycleError{FieldPath: fieldPath, Prev: prevPath}
		}
		visited[slicePtr] = fieldPath
		defer delete(visited, slicePtr)
	}

	length := val.Len()
	elements := make([]*ir.Node, 0, length)
	for i := 0; i < length; i++ {
		elemNode, err := inferValue(val.Index(i), elemPath(fieldPath, i), depth+1, visited, o)
		if err != nil {
			return nil, err
		}
		elements = append(elements, elemNode)
	}
	return ir.FromSlice(elements), nil
}

// inferMap converts a string-keyed map to an object. Keys are emitted in
// sorted order: Go map iteration order is undefined, and serialization
// must be deterministic.
func inferMap(val reflect.Value, fieldPath string, depth int, visited map[uintptr]string, o *options) (*ir.Node, error) {
	if val.IsNil() {
		return ir.Null(), nil
	}

	mapPtr := val.Pointer()
	if prevPath, seen := visited[mapPtr]; seen {
		return nil, &CycleError{FieldPath: fieldPath, Prev: prevPath}
	}
	visited[mapPtr] = fieldPath
	defer delete(visited, mapPtr)

	if keyKind := val.Type().Key().Kind(); keyKind != reflect.String {
		return nil, &NonStringKeyError{FieldPath: fieldPath, KeyType: val.Type().Key().String()}
	}

	irMap := make(map[string]*ir.Node, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		key := iter.Key().String()
		valueNode, err := inferValue(iter.Value(), keyPath(fieldPath, key), depth+1, visited, o)
		if err != nil {
			return nil, err
		}
		irMap[key] = valueNode
	}
	keys := make([]string, 0, len(irMap))
	for k := range irMap {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	kvs := make([]ir.KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = ir.KeyVal{Key: key, Val: irMap[key]}
	}
	return ir.FromKeyVals(kvs), nil
}

// inferStruct converts a plain struct to an object whose keys are the
// exported field names in declaration order. Embedded structs are
// flattened in place.
func inferStruct(val reflect.Value, fieldPath string, depth int, visited map[uintptr]string, o *options) (*ir.Node, error) {
	typ := val.Type()
	kvs := make([]ir.KeyVal, 0, typ.NumField())
	seen := make(map[string]struct{}, typ.NumField())

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		fieldVal := val.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embeddedNode, err := inferValue(fieldVal, fieldPath, depth, visited, o)
			if err != nil {
				return nil, err
			}
			for j, name := range embeddedNode.Fields {
				if _, exists := seen[name]; exists {
					return nil, &InferError{
						FieldPath: fieldPath,
						Message:   fmt.Sprintf("field name conflict: embedded struct field %q conflicts with existing field", name),
					}
				}
				seen[name] = struct{}{}
				kvs = append(kvs, ir.KeyVal{Key: name, Val: embeddedNode.Values[j]})
			}
			continue
		}
		if field.Anonymous {
			continue
		}

		name, ok := fieldName(field)
		if !ok {
			continue
		}
		if _, exists := seen[name]; exists {
			return nil, &InferError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("field name conflict: %q appears twice", name),
			}
		}
		seen[name] = struct{}{}

		fieldNode, err := inferValue(fieldVal, keyPath(fieldPath, name), depth+1, visited, o)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: name, Val: fieldNode})
	}
	return ir.FromKeyVals(kvs), nil
}

func keyPath(fieldPath, key string) string {
	if fieldPath == "" {
		return key
	}
	return fieldPath + "." + key
}

func elemPath(fieldPath string, i int) string {
	return fmt.Sprintf("%s[%d]", fieldPath, i)
}
