package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Absent < Atom < List < Mapping < Accumulator < Tagged
		{"Absent < Atom", Absent(), FromString(""), -1},
		{"Atom < List", FromString("a"), FromSlice(nil), -1},
		{"List < Mapping", FromSlice(nil), FromKeyVals(nil), -1},
		{"Mapping < Accumulator", FromKeyVals(nil), Accumulate("a"), -1},
		{"Accumulator < Tagged", Accumulate("a"), Sequence(), -1},
		{"nil < Absent", nil, Absent(), -1},

		// Atoms compare by text only
		{"Atom < Atom", FromString("a"), FromString("b"), -1},
		{"Atom == Atom", FromString("a"), FromString("a"), 0},
		{"Plain == Positioned", FromString("a"), FromPos("a", Pos{Offset: 4}), 0},
		{"Positions ignored", FromPos("a", Pos{Offset: 1}), FromPos("a", Pos{Offset: 9}), 0},

		// List Comparison
		{"Empty List == Empty List", FromSlice(nil), FromSlice(nil), 0},
		{"Short List < Long List",
			FromSlice([]*Node{FromString("1")}),
			FromSlice([]*Node{FromString("1"), FromString("2")}), -1},
		{"List Element Comparison",
			FromSlice([]*Node{FromString("1")}),
			FromSlice([]*Node{FromString("2")}), -1},

		// Mapping Comparison
		{"Empty Mapping == Empty Mapping", FromKeyVals(nil), FromKeyVals(nil), 0},
		{"Short Mapping < Long Mapping",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromString("1")}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromString("1")}, {Key: "b", Val: FromString("2")}}),
			-1},
		{"Mapping Key Comparison",
			Single("a", FromString("1")),
			Single("b", FromString("1")),
			-1},
		{"Mapping Value Comparison",
			Single("a", FromString("1")),
			Single("a", FromString("2")),
			-1},

		// Tagged Comparison
		{"Sequence < Optional", Sequence(), Optional(), -1},
		{"Tagged Children", Repetition(FromString("a")), Repetition(FromString("b")), -1},
		{"Accumulator Values",
			Accumulate("a", FromString("1")),
			Accumulate("a", FromString("1"), FromString("2")), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}
