package ir

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want int
	}{
		{"nil nil", nil, nil, 0},
		{"nil first", nil, Null(), -1},
		{"null equal", Null(), Null(), 0},
		{"type rank null < bool", Null(), FromBool(false), -1},
		{"type rank bool < number", FromBool(true), FromInt(0), -1},
		{"type rank number < string", FromInt(9), FromString(""), -1},
		{"type rank string < array", FromString("z"), FromSlice(nil), -1},
		{"type rank array < object", FromSlice(nil), FromKeyVals(nil), -1},
		{"numbers", FromFloat(1.5), FromFloat(2.5), -1},
		{"int widened equal", FromInt(2), FromFloat(2.0), 0},
		{"strings", FromString("a"), FromString("b"), -1},
		{"bools", FromBool(false), FromBool(true), -1},
		{
			"array element",
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			FromSlice([]*Node{FromInt(1), FromInt(3)}),
			-1,
		},
		{
			"array prefix shorter",
			FromSlice([]*Node{FromInt(1)}),
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			-1,
		},
		{
			"object keys",
			FromKeyVals([]KeyVal{{Key: "a", Val: Null()}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: Null()}}),
			-1,
		},
		{
			"object values",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(2)}}),
			-1,
		},
		{
			"object key order significant",
			FromKeyVals([]KeyVal{{Key: "a", Val: Null()}, {Key: "b", Val: Null()}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: Null()}, {Key: "a", Val: Null()}}),
			-1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
			if tt.want != 0 {
				if got := Compare(tt.b, tt.a); got != -tt.want {
					t.Errorf("Compare reversed = %d, want %d", got, -tt.want)
				}
			}
		})
	}
}

func TestHash(t *testing.T) {
	a := FromKeyVals([]KeyVal{
		{Key: "x", Val: FromSlice([]*Node{FromInt(1), FromString("s")})},
	})
	b := a.Clone()
	if a.Hash() != b.Hash() {
		t.Error("equal trees hash differently")
	}
	c := FromKeyVals([]KeyVal{
		{Key: "x", Val: FromSlice([]*Node{FromInt(2), FromString("s")})},
	})
	if a.Hash() == c.Hash() {
		t.Error("distinct trees collide (unlikely; check hashing)")
	}
}
