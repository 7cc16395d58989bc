package gomap

import (
	"fmt"
	"reflect"

	"github.com/jotlang/go-jot/debug"
	"github.com/jotlang/go-jot/ir"
)

// Unmarshaler is the capability a type implements to populate itself
// from a document, bypassing reflection.
type Unmarshaler interface {
	UnmarshalJot(node *ir.Node) error
}

// Decode populates the Go value pointed to by v from a document.
// v must be a non-nil pointer. Null nodes set the zero value. Supported
// targets: strings, integer and float kinds, bools, pointers, slices,
// arrays, string-keyed maps, structs, and any.
func Decode(node *ir.Node, v any) error {
	if v == nil {
		return &DecodeError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr {
		return &DecodeError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &DecodeError{Message: "destination pointer cannot be nil"}
	}
	if u, ok := v.(Unmarshaler); ok {
		return u.UnmarshalJot(node)
	}
	if debug.Decode() {
		debug.Logf("decode: %s (%d nodes) -> %T\n", node.Type, ir.Size(node), v)
	}
	return decodeValue(node, val.Elem(), "")
}

func decodeValue(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node == nil {
		return &DecodeError{FieldPath: fieldPath, Message: "node is nil"}
	}

	if val.Kind() == reflect.Ptr {
		if node.Type == ir.NullType {
			if val.CanSet() {
				val.Set(reflect.Zero(val.Type()))
			}
			return nil
		}
		if val.IsNil() {
			val.Set(reflect.New(val.Type().Elem()))
		}
		if u, ok := val.Interface().(Unmarshaler); ok {
			return u.UnmarshalJot(node)
		}
		return decodeValue(node, val.Elem(), fieldPath)
	}

	if node.Type == ir.NullType {
		if val.CanSet() {
			val.Set(reflect.Zero(val.Type()))
		}
		return nil
	}

	switch val.Kind() {
	case reflect.String:
		if node.Type != ir.StringType {
			return typeMismatch(fieldPath, "string", node)
		}
		val.SetString(node.String)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if node.Type != ir.NumberType {
			return typeMismatch(fieldPath, "number", node)
		}
		i := int64(node.Float64)
		if float64(i) != node.Float64 {
			return &DecodeError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("number %v is not integral", node.Float64),
			}
		}
		if val.OverflowInt(i) {
			return &DecodeError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("value %d overflows %s", i, val.Type()),
			}
		}
		val.SetInt(i)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if node.Type != ir.NumberType {
			return typeMismatch(fieldPath, "number", node)
		}
		if node.Float64 < 0 {
			return &DecodeError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("negative value %v for unsigned integer", node.Float64),
			}
		}
		u := uint64(node.Float64)
		if float64(u) != node.Float64 {
			return &DecodeError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("number %v is not integral", node.Float64),
			}
		}
		if val.OverflowUint(u) {
			return &DecodeError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("value %d overflows %s", u, val.Type()),
			}
		}
		val.SetUint(u)
		return nil

	case reflect.Float32, reflect.Float64:
		if node.Type != ir.NumberType {
			return typeMismatch(fieldPath, "number", node)
		}
		val.SetFloat(node.Float64)
		return nil

	case reflect.Bool:
		if node.Type != ir.BoolType {
			return typeMismatch(fieldPath, "boolean", node)
		}
		val.SetBool(node.Bool)
		return nil

	case reflect.Slice:
		return decodeSlice(node, val, fieldPath)

	case reflect.Array:
		if node.Type != ir.ArrayType {
			return typeMismatch(fieldPath, "array", node)
		}
		if val.Len() != len(node.Values) {
			return &DecodeError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("array length mismatch: expected %d, got %d", val.Len(), len(node.Values)),
			}
		}
		for i, elt := range node.Values {
			if err := decodeValue(elt, val.Index(i), elemPath(fieldPath, i)); err != nil {
				return err
			}
		}
		return nil

	case reflect.Map:
		return decodeMap(node, val, fieldPath)

	case reflect.Struct:
		return decodeStruct(node, val, fieldPath)

	case reflect.Interface:
		if val.NumMethod() != 0 {
			return &DecodeError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("cannot decode into non-empty interface %s", val.Type()),
			}
		}
		val.Set(reflect.ValueOf(ir.ToAny(node)))
		return nil

	default:
		return &DecodeError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type: %s", val.Type()),
		}
	}
}

func typeMismatch(fieldPath, want string, node *ir.Node) error {
	return &DecodeError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("expected %s, got %s", want, node.Type),
	}
}

func decodeSlice(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ArrayType {
		return typeMismatch(fieldPath, "array", node)
	}
	length := len(node.Values)
	out := reflect.MakeSlice(val.Type(), length, length)
	for i, elt := range node.Values {
		if err := decodeValue(elt, out.Index(i), elemPath(fieldPath, i)); err != nil {
			return err
		}
	}
	val.Set(out)
	return nil
}

func decodeMap(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ObjectType {
		return typeMismatch(fieldPath, "object", node)
	}
	typ := val.Type()
	if typ.Key().Kind() != reflect.String {
		return &DecodeError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", typ.Key()),
		}
	}
	out := reflect.MakeMapWithSize(typ, len(node.Fields))
	for i, key := range node.Fields {
		elem := reflect.New(typ.Elem()).Elem()
		if err := decodeValue(node.Values[i], elem, keyPath(fieldPath, key)); err != nil {
			return err
		}
		out.SetMapIndex(reflect.ValueOf(key).Convert(typ.Key()), elem)
	}
	val.Set(out)
	return nil
}

// decodeStruct matches object keys to exported struct fields, honoring
// jot tags and flattening embedded structs. Keys without a matching
// field are skipped.
func decodeStruct(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ObjectType {
		return typeMismatch(fieldPath, "object", node)
	}
	fieldIndex := make(map[string][]int)
	if err := collectFields(val.Type(), nil, fieldIndex, fieldPath); err != nil {
		return err
	}
	for i, key := range node.Fields {
		index, found := fieldIndex[key]
		if !found {
			continue
		}
		fieldVal := val.FieldByIndex(index)
		if !fieldVal.IsValid() {
			continue
		}
		if err := decodeValue(node.Values[i], fieldVal, keyPath(fieldPath, key)); err != nil {
			return err
		}
	}
	return nil
}

func collectFields(typ reflect.Type, prefix []int, out map[string][]int, fieldPath string) error {
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		index := append(append([]int{}, prefix...), i)
		if field.Anonymous {
			if field.Type.Kind() == reflect.Struct {
				if err := collectFields(field.Type, index, out, fieldPath); err != nil {
					return err
				}
			}
			continue
		}
		name, ok := fieldName(field)
		if !ok {
			continue
		}
		if _, exists := out[name]; exists {
			return &DecodeError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("field name conflict: %q appears twice", name),
			}
		}
		out[name] = index
	}
	return nil
}
