package libdiff

import (
	"strconv"

	"github.com/jotlang/go-jot/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns nil when from and to are equal, otherwise a document
// describing the changes. Leaf changes and type changes are edit
// objects holding "from" and/or "to"; object and array changes are
// objects keyed by field name or element index, holding the nested
// change. The result is itself a document and can be serialized,
// validated, or filtered like any other.
func Diff(from, to *ir.Node) *ir.Node {
	if from == nil || to == nil {
		if from == to {
			return nil
		}
		return MakeDiff(from, to)
	}
	if from.Type != to.Type {
		return MakeDiff(from, to)
	}
	switch from.Type {
	case ir.ObjectType:
		return diffObject(from, to)
	case ir.ArrayType:
		return diffArray(from, to)
	default:
		if ir.Compare(from, to) != 0 {
			return MakeDiff(from, to)
		}
		return nil
	}
}

// MakeDiff builds an edit node. A nil from is an insertion, a nil to a
// deletion, both present a replacement.
func MakeDiff(from, to *ir.Node) *ir.Node {
	kvs := make([]ir.KeyVal, 0, 2)
	if from != nil {
		kvs = append(kvs, ir.KeyVal{Key: "from", Val: from})
	}
	if to != nil {
		kvs = append(kvs, ir.KeyVal{Key: "to", Val: to})
	}
	return ir.FromKeyVals(kvs)
}

// diffObject aligns the two key sequences with a rune-level diff, so
// key insertions and deletions do not cascade into spurious value
// changes for the keys around them.
func diffObject(from, to *ir.Node) *ir.Node {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	resMap := map[string]*ir.Node{}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				resMap[runeMap[r]] = MakeDiff(from.Values[fi], nil)
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				if fRes := Diff(from.Values[fi], to.Values[ti]); fRes != nil {
					resMap[runeMap[r]] = fRes
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				resMap[runeMap[r]] = MakeDiff(nil, to.Values[ti])
				ti++
			}
		}
	}
	if len(resMap) == 0 {
		return nil
	}
	return ir.FromMap(resMap)
}

func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i, f := range node.Fields {
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}

// diffArray compares element-wise by index; length changes show up as
// insertions or deletions at the trailing indices.
func diffArray(from, to *ir.Node) *ir.Node {
	resMap := map[string]*ir.Node{}
	n := min(len(from.Values), len(to.Values))
	for i := 0; i < n; i++ {
		if res := Diff(from.Values[i], to.Values[i]); res != nil {
			resMap[strconv.Itoa(i)] = res
		}
	}
	for i := n; i < len(from.Values); i++ {
		resMap[strconv.Itoa(i)] = MakeDiff(from.Values[i], nil)
	}
	for i := n; i < len(to.Values); i++ {
		resMap[strconv.Itoa(i)] = MakeDiff(nil, to.Values[i])
	}
	if len(resMap) == 0 {
		return nil
	}
	return ir.FromMap(resMap)
}
