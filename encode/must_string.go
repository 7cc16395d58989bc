package encode

import (
	"strings"

	"github.com/jotlang/go-jot/ir"
)

// MustString is String for callers that know encoding cannot fail;
// writing to a strings.Builder never errors.
func MustString(node *ir.Node, opts ...Option) string {
	var sb strings.Builder
	if err := Encode(node, &sb, opts...); err != nil {
		panic(err)
	}
	return sb.String()
}
