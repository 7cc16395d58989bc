package gomap

import (
	"errors"
	"testing"
)

type listNode struct {
	Value int
	Next  *listNode
}

func TestInferCyclicPointer(t *testing.T) {
	a := &listNode{Value: 1}
	b := &listNode{Value: 2}
	a.Next = b
	b.Next = a

	_, err := Infer(a)
	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("error = %v, want *CycleError", err)
	}
}

func TestInferSharedPointerNotCycle(t *testing.T) {
	shared := &listNode{Value: 1}
	v := map[string]*listNode{"a": shared, "b": shared}
	if _, err := Infer(v); err != nil {
		t.Fatalf("shared (acyclic) pointer rejected: %v", err)
	}
}

func TestInferCyclicMap(t *testing.T) {
	m := map[string]any{}
	m["self"] = m
	_, err := Infer(m)
	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("error = %v, want *CycleError", err)
	}
}

func TestInferMaxDepth(t *testing.T) {
	deep := []any{[]any{[]any{[]any{1}}}}
	if _, err := Infer(deep); err != nil {
		t.Fatalf("unlimited depth failed: %v", err)
	}
	_, err := Infer(deep, MaxDepth(2))
	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("error = %v, want *CycleError from depth cap", err)
	}
	if cycleErr.Depth != 2 {
		t.Errorf("Depth = %d, want 2", cycleErr.Depth)
	}
}
