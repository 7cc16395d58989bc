package transform

import (
	"testing"

	"github.com/jotlang/go-jot/encode"
	"github.com/jotlang/go-jot/gomap"
	"github.com/jotlang/go-jot/ir"
)

func TestMapExpr(t *testing.T) {
	arr, err := gomap.Infer([]int{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	got, err := MapExpr(arr, `value * 2`)
	if err != nil {
		t.Fatal(err)
	}
	if want := "[2.0,4.0,6.0]"; encode.MustString(got) != want {
		t.Errorf("MapExpr = %s, want %s", encode.MustString(got), want)
	}
}

func TestMapExprTypeDispatch(t *testing.T) {
	arr := ir.FromSlice([]*ir.Node{
		ir.FromInt(1),
		ir.FromString("a"),
		ir.FromBool(true),
	})
	got, err := MapExpr(arr, `type == "number" ? value * 2 : value`)
	if err != nil {
		t.Fatal(err)
	}
	if want := `[2.0,"a",true]`; encode.MustString(got) != want {
		t.Errorf("MapExpr = %s, want %s", encode.MustString(got), want)
	}
	if len(got.Values) != len(arr.Values) {
		t.Error("MapExpr changed the element count")
	}
}

func TestMapExprCompileError(t *testing.T) {
	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1)})
	if _, err := MapExpr(arr, `value +`); err == nil {
		t.Error("expected compile error")
	}
}

func TestFilterExpr(t *testing.T) {
	arr := ir.FromSlice([]*ir.Node{
		ir.FromInt(1),
		ir.FromString("a"),
		ir.FromInt(2),
		ir.Null(),
	})
	got, err := FilterExpr(arr, `type == "number"`)
	if err != nil {
		t.Fatal(err)
	}
	if want := "[1.0,2.0]"; encode.MustString(got) != want {
		t.Errorf("FilterExpr = %s, want %s", encode.MustString(got), want)
	}
}

func TestFilterExprIndex(t *testing.T) {
	arr := ir.FromSlice([]*ir.Node{
		ir.FromString("a"),
		ir.FromString("b"),
		ir.FromString("c"),
	})
	got, err := FilterExpr(arr, `index % 2 == 0`)
	if err != nil {
		t.Fatal(err)
	}
	if want := `["a","c"]`; encode.MustString(got) != want {
		t.Errorf("FilterExpr = %s, want %s", encode.MustString(got), want)
	}
}

func TestFilterExprNonBool(t *testing.T) {
	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1)})
	if _, err := FilterExpr(arr, `value`); err == nil {
		t.Error("expected error for non-bool filter expression")
	}
}
