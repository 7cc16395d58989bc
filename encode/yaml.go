package encode

import (
	"github.com/jotlang/go-jot/ir"

	"github.com/goccy/go-yaml"
)

// EncodeYAML renders node as YAML. This is an output direction only;
// there is no reader from YAML (or any text) back into the model.
// Object key order is not preserved, as the conversion goes through
// a Go map.
func EncodeYAML(node *ir.Node) ([]byte, error) {
	return yaml.Marshal(ir.ToAny(node))
}
