package transform

import (
	"reflect"
	"strconv"

	"github.com/jotlang/go-jot/gomap"
	"github.com/jotlang/go-jot/ir"
)

// List builds an array from host primitive values: strings, numerics
// (widened to float64), bools, nested sequences, and nil. Any other
// element shape fails with *gomap.UnsupportedTypeError and no partial
// result is produced.
func List(vals ...any) (*ir.Node, error) {
	return list(vals, "")
}

func list(vals []any, fieldPath string) (*ir.Node, error) {
	elems := make([]*ir.Node, 0, len(vals))
	for i, v := range vals {
		node, err := listElem(v, elemPath(fieldPath, i))
		if err != nil {
			return nil, err
		}
		elems = append(elems, node)
	}
	return ir.FromSlice(elems), nil
}

func listElem(v any, fieldPath string) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	switch x := v.(type) {
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case []any:
		return list(x, fieldPath)
	}
	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ir.FromFloat(float64(val.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil
	case reflect.Slice, reflect.Array:
		xs := make([]any, val.Len())
		for i := range xs {
			xs[i] = val.Index(i).Interface()
		}
		return list(xs, fieldPath)
	default:
		return nil, &gomap.UnsupportedTypeError{
			FieldPath: fieldPath,
			Type:      val.Type().String(),
		}
	}
}

func elemPath(fieldPath string, i int) string {
	return fieldPath + "[" + strconv.Itoa(i) + "]"
}
