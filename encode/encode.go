package encode

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jotlang/go-jot/ir"

	gojson "github.com/goccy/go-json"
)

type EncState struct {
	depth  int
	indent int
	pretty bool
	raw    bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w as JSON text. The default output is compact,
// with no whitespace anywhere. Options control indentation, string
// escaping and terminal colorization.
func Encode(node *ir.Node, w io.Writer, opts ...Option) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

// String encodes node and returns the text.
func String(node *ir.Node, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Encode(node, &sb, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.NullType:
		return encodeNull(node, w, es)
	default:
		panic("type")
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i, field := range node.Fields {
		if i > 0 {
			if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		key := quoteString(field, es)
		if err := writeString(w, applyColor(es, ir.ObjectType, FieldColor, key)); err != nil {
			return err
		}
		sep := ":"
		if es.pretty {
			sep = ": "
		}
		if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, sep)); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if len(node.Fields) > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeString(w, applyColor(es, ir.ObjectType, SepColor, "}"))
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i, elt := range node.Values {
		if i > 0 {
			if err := writeString(w, applyColor(es, ir.ArrayType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(elt, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if len(node.Values) > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeString(w, applyColor(es, ir.ArrayType, SepColor, "]"))
}

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, ir.StringType, ValueColor, quoteString(node.String, es)))
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, ir.NumberType, ValueColor, formatNumber(node.Float64)))
}

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
}

func encodeNull(node *ir.Node, w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, ir.NullType, ValueColor, "null"))
}

// formatNumber renders a float64 as JSON number text. Integral values
// keep a trailing ".0" so the numeric variant is visible in the output.
// NaN and infinities have no JSON representation and render as null.
func formatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// quoteString wraps v in double quotes. The default path escapes
// embedded quotes, backslashes and control characters; raw mode emits
// the value verbatim between quotes.
func quoteString(v string, es *EncState) string {
	if es.raw {
		return `"` + v + `"`
	}
	d, err := gojson.Marshal(v)
	if err != nil {
		// Marshaling a string cannot fail; fall back to raw quoting.
		return `"` + v + `"`
	}
	return string(d)
}

// Helper functions for writing

func writeNL(w io.Writer, es *EncState) error {
	if !es.pretty {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indentString)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}
