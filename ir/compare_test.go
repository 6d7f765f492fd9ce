package ir

import (
	"math"
	"testing"
)

func mapOf(kvs ...KeyVal) Value {
	return FromMap(MapFromKeyVals(kvs))
}

func kv(k string, v Value) KeyVal {
	return KeyVal{Key: FromString(k), Val: v}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Value
		expected int
	}{
		// Variant order: Bool < Char < Map < Number < Option < String < Seq < Unit
		{"Bool < Char", FromBool(true), FromChar('a'), -1},
		{"Char < Map", FromChar('z'), mapOf(), -1},
		{"Map < Number", mapOf(kv("a", FromInt(1))), FromInt(0), -1},
		{"Number < Option", FromFloat(1e300), None(), -1},
		{"Option < String", Some(FromInt(1)), FromString(""), -1},
		{"String < Seq", FromString("z"), FromSeq(nil), -1},
		{"Seq < Unit", FromSeq([]Value{FromInt(1)}), Unit(), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},
		{"char", FromChar('a'), FromChar('b'), -1},

		// Integers order before floats.
		{"Int < Float", FromInt(5), FromFloat(1.0), -1},
		{"Int == Int", FromInt(5), FromInt(5), 0},
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},
		{"NaN == NaN", FromFloat(math.NaN()), FromFloat(math.NaN()), 0},
		{"NaN < -inf", FromFloat(math.NaN()), FromFloat(math.Inf(-1)), -1},
		{"-0 == 0", FromFloat(math.Copysign(0, -1)), FromFloat(0), 0},

		{"None < Some", None(), Some(Unit()), -1},
		{"Some by content", Some(FromInt(1)), Some(FromInt(2)), -1},

		{"Empty Seq == Empty Seq", FromSeq(nil), FromSeq([]Value{}), 0},
		{"Short Seq < Long Seq", FromSeq([]Value{FromInt(1)}), FromSeq([]Value{FromInt(1), FromInt(2)}), -1},
		{"Seq Element Comparison", FromSeq([]Value{FromInt(2)}), FromSeq([]Value{FromInt(1), FromInt(2)}), 1},

		{"Empty Map == Empty Map", mapOf(), mapOf(), 0},
		{"Short Map < Long Map",
			mapOf(kv("a", FromInt(1))),
			mapOf(kv("a", FromInt(1)), kv("b", FromInt(2))),
			-1},
		{"Map Key Comparison",
			mapOf(kv("a", FromInt(1))),
			mapOf(kv("b", FromInt(1))),
			-1},
		{"Map Value Comparison",
			mapOf(kv("a", FromInt(1))),
			mapOf(kv("a", FromInt(2))),
			-1},
		{"Unit == Unit", Unit(), Unit(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare(%#v, %#v) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(%#v, %#v) = %d, want %d", tt.b, tt.a, got, -tt.expected)
			}
			if tt.expected == 0 && tt.a.Hash() != tt.b.Hash() {
				t.Errorf("equal values hash differently: %#v %#v", tt.a, tt.b)
			}
		})
	}
}

func TestMapEqualRequiresLength(t *testing.T) {
	a := mapOf(kv("a", FromInt(1)))
	b := mapOf(kv("a", FromInt(1)), kv("b", FromInt(2)))
	if Equal(a, b) || a.Map.Equal(b.Map) {
		t.Error("maps of different length compared equal")
	}
	if !Equal(a, mapOf(kv("a", FromInt(1)))) {
		t.Error("identical maps differ")
	}
}
