package libdiff

import (
	"testing"

	"github.com/jotlang/go-jot/encode"
	"github.com/jotlang/go-jot/gomap"
	"github.com/jotlang/go-jot/ir"

	gojson "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

func TestDiffEqual(t *testing.T) {
	docs := []*ir.Node{
		ir.Null(),
		ir.FromInt(42),
		ir.FromString("x"),
		ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromBool(true)}),
		ir.FromKeyVals([]ir.KeyVal{
			{Key: "a", Val: ir.FromInt(1)},
			{Key: "b", Val: ir.FromString("y")},
		}),
	}
	for _, doc := range docs {
		if got := Diff(doc, doc.Clone()); got != nil {
			t.Errorf("Diff(%s, clone) = %s, want nil",
				encode.MustString(doc), encode.MustString(got))
		}
	}
}

func TestDiffLeafChange(t *testing.T) {
	got := Diff(ir.FromInt(1), ir.FromInt(2))
	want := `{"from":1.0,"to":2.0}`
	if encode.MustString(got) != want {
		t.Errorf("diff = %s, want %s", encode.MustString(got), want)
	}
}

func TestDiffTypeChange(t *testing.T) {
	got := Diff(ir.FromInt(1), ir.FromString("1"))
	want := `{"from":1.0,"to":"1"}`
	if encode.MustString(got) != want {
		t.Errorf("diff = %s, want %s", encode.MustString(got), want)
	}
}

func TestDiffObjectValueChange(t *testing.T) {
	from := ir.FromKeyVals([]ir.KeyVal{
		{Key: "name", Val: ir.FromString("Alice")},
		{Key: "age", Val: ir.FromInt(25)},
	})
	to := ir.FromKeyVals([]ir.KeyVal{
		{Key: "name", Val: ir.FromString("Alice")},
		{Key: "age", Val: ir.FromInt(26)},
	})
	got := Diff(from, to)
	want := `{"age":{"from":25.0,"to":26.0}}`
	if encode.MustString(got) != want {
		t.Errorf("diff = %s, want %s", encode.MustString(got), want)
	}
}

func TestDiffObjectKeyAddRemove(t *testing.T) {
	from := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromInt(1)},
		{Key: "b", Val: ir.FromInt(2)},
	})
	to := ir.FromKeyVals([]ir.KeyVal{
		{Key: "b", Val: ir.FromInt(2)},
		{Key: "c", Val: ir.FromInt(3)},
	})
	got := Diff(from, to)
	want := `{"a":{"from":1.0},"c":{"to":3.0}}`
	if encode.MustString(got) != want {
		t.Errorf("diff = %s, want %s", encode.MustString(got), want)
	}
}

func TestDiffNested(t *testing.T) {
	from, err := gomap.Infer(map[string]any{
		"skill": []string{"Python", "Kotlin"},
	})
	if err != nil {
		t.Fatal(err)
	}
	to, err := gomap.Infer(map[string]any{
		"skill": []string{"Python", "Go"},
	})
	if err != nil {
		t.Fatal(err)
	}
	got := Diff(from, to)
	want := `{"skill":{"1":{"from":"Kotlin","to":"Go"}}}`
	if encode.MustString(got) != want {
		t.Errorf("diff = %s, want %s", encode.MustString(got), want)
	}
}

func TestDiffArrayLength(t *testing.T) {
	from := ir.FromSlice([]*ir.Node{ir.FromInt(1)})
	to := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
	got := Diff(from, to)
	want := `{"1":{"to":2.0}}`
	if encode.MustString(got) != want {
		t.Errorf("diff = %s, want %s", encode.MustString(got), want)
	}
}

func TestDiffNilOperands(t *testing.T) {
	if got := Diff(nil, nil); got != nil {
		t.Errorf("Diff(nil, nil) = %s, want nil", encode.MustString(got))
	}
	got := Diff(nil, ir.FromInt(1))
	want := `{"to":1.0}`
	if encode.MustString(got) != want {
		t.Errorf("diff = %s, want %s", encode.MustString(got), want)
	}
}

func TestMergePatch(t *testing.T) {
	from := ir.FromKeyVals([]ir.KeyVal{
		{Key: "name", Val: ir.FromString("Alice")},
		{Key: "active", Val: ir.FromBool(true)},
	})
	to := ir.FromKeyVals([]ir.KeyVal{
		{Key: "name", Val: ir.FromString("Bob")},
		{Key: "active", Val: ir.FromBool(true)},
	})
	patch, err := MergePatch(from, to)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := gojson.Unmarshal(patch, &got); err != nil {
		t.Fatalf("patch is not valid JSON: %v", err)
	}
	want := map[string]any{"name": "Bob"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("merge patch mismatch (-want +got):\n%s", d)
	}
}
