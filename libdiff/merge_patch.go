package libdiff

import (
	"github.com/jotlang/go-jot/encode"
	"github.com/jotlang/go-jot/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch returns the RFC 7386 JSON merge patch transforming from
// into to, computed over the serialized forms. The patch is JSON bytes
// for external consumers; there is no reader back into the model.
func MergePatch(from, to *ir.Node) ([]byte, error) {
	fromJSON, err := encode.String(from)
	if err != nil {
		return nil, err
	}
	toJSON, err := encode.String(to)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch([]byte(fromJSON), []byte(toJSON))
}
