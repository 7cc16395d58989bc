package ir

import (
	"reflect"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		typ  Type
	}{
		{"string", FromString("ciao"), StringType},
		{"int widens", FromInt(42), NumberType},
		{"float", FromFloat(3.14), NumberType},
		{"bool", FromBool(true), BoolType},
		{"null", Null(), NullType},
		{"array", FromSlice([]*Node{FromInt(1)}), ArrayType},
		{"object", FromKeyVals([]KeyVal{{Key: "a", Val: Null()}}), ObjectType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.node.Type != tt.typ {
				t.Errorf("got type %s, want %s", tt.node.Type, tt.typ)
			}
		})
	}
}

func TestFromIntWidens(t *testing.T) {
	n := FromInt(25)
	if n.Float64 != 25.0 {
		t.Errorf("FromInt(25).Float64 = %v, want 25.0", n.Float64)
	}
}

func TestFromKeyValsOrder(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "z", Val: FromInt(1)},
		{Key: "a", Val: FromInt(2)},
		{Key: "m", Val: FromInt(3)},
	})
	want := []string{"z", "a", "m"}
	if !reflect.DeepEqual(obj.Fields, want) {
		t.Errorf("Fields = %v, want %v", obj.Fields, want)
	}
}

func TestFromKeyValsDuplicates(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "a", Val: FromInt(2)},
	})
	if len(obj.Fields) != 2 {
		t.Errorf("duplicate keys collapsed at construction: %v", obj.Fields)
	}
}

func TestFromMapSorted(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"z": FromInt(1),
		"a": FromInt(2),
	})
	want := []string{"a", "z"}
	if !reflect.DeepEqual(obj.Fields, want) {
		t.Errorf("Fields = %v, want %v", obj.Fields, want)
	}
}

func TestGet(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "name", Val: FromString("Alice")},
		{Key: "age", Val: FromInt(25)},
	})
	if got := Get(obj, "name"); got == nil || got.String != "Alice" {
		t.Errorf("Get(name) = %v", got)
	}
	if got := Get(obj, "missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
}

func TestCloneIndependence(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "skill", Val: FromSlice([]*Node{FromString("Go")})},
	})
	cp := orig.Clone()
	if Compare(orig, cp) != 0 {
		t.Fatalf("clone differs from original")
	}
	cp.Fields[0] = "other"
	cp.Values[0].Values[0] = FromString("Rust")
	if orig.Fields[0] != "skill" {
		t.Errorf("clone shares Fields with original")
	}
	if orig.Values[0].Values[0].String != "Go" {
		t.Errorf("clone shares child nodes with original")
	}
}

func TestVisitCounts(t *testing.T) {
	doc := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Node{FromInt(1), Null()})},
		{Key: "b", Val: FromBool(false)},
	})
	pre, post := 0, 0
	err := doc.Visit(func(_ *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if pre != 5 || post != 5 {
		t.Errorf("pre=%d post=%d, want 5/5", pre, post)
	}
	if got := Size(doc); got != 5 {
		t.Errorf("Size = %d, want 5", got)
	}
}

func TestVisitSkipsChildren(t *testing.T) {
	doc := FromSlice([]*Node{FromSlice([]*Node{FromInt(1)})})
	n := 0
	doc.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			n++
		}
		return y.Type != ArrayType || n == 1, nil
	})
	if n != 2 {
		t.Errorf("visited %d nodes, want 2 (inner array's child skipped)", n)
	}
}

func TestToAny(t *testing.T) {
	doc := FromKeyVals([]KeyVal{
		{Key: "name", Val: FromString("Alice")},
		{Key: "age", Val: FromInt(25)},
		{Key: "tags", Val: FromSlice([]*Node{FromBool(true), Null()})},
	})
	got := ToAny(doc)
	want := map[string]any{
		"name": "Alice",
		"age":  25.0,
		"tags": []any{true, nil},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToAny = %#v, want %#v", got, want)
	}
}

func TestTypeTextRoundTrip(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", d, err)
		}
		if back != typ {
			t.Errorf("round trip %s -> %s", typ, back)
		}
	}
	var bad Type
	if err := bad.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("expected error for unknown type name")
	}
}
