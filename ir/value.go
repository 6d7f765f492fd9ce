package ir

import (
	"fmt"
	"slices"
	"strings"
)

// Value is a dynamically typed zmerald datum.
type Value struct {
	Type   Type
	Bool   bool
	Char   rune
	Map    *Map
	Number Number
	// Option is nil for None.
	Option *Value
	String string
	Seq    []Value
}

func FromBool(v bool) Value {
	return Value{Type: BoolType, Bool: v}
}

func FromChar(r rune) Value {
	return Value{Type: CharType, Char: r}
}

// FromMap wraps m; a nil m is an empty sorted map.
func FromMap(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{Type: MapType, Map: m}
}

func FromNumber(n Number) Value {
	return Value{Type: NumberType, Number: n}
}

func FromInt(v int64) Value {
	return FromNumber(NumberFromInt(v))
}

func FromUint(v uint64) Value {
	return FromNumber(NumberFromUint(v))
}

func FromFloat(v float64) Value {
	return FromNumber(NumberFromFloat(v))
}

func FromString(v string) Value {
	return Value{Type: StringType, String: v}
}

func FromSeq(vs []Value) Value {
	return Value{Type: SeqType, Seq: vs}
}

func Some(v Value) Value {
	return Value{Type: OptionType, Option: &v}
}

func None() Value {
	return Value{Type: OptionType}
}

func Unit() Value {
	return Value{Type: UnitType}
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.Type {
	case MapType:
		v.Map = v.Map.Clone()
	case OptionType:
		if v.Option != nil {
			c := v.Option.Clone()
			v.Option = &c
		}
	case SeqType:
		seq := make([]Value, len(v.Seq))
		for i := range v.Seq {
			seq[i] = v.Seq[i].Clone()
		}
		v.Seq = seq
	}
	return v
}

// Describe names v for error messages.
func (v Value) Describe() string {
	switch v.Type {
	case BoolType:
		return fmt.Sprintf("boolean `%t`", v.Bool)
	case CharType:
		return fmt.Sprintf("char %q", v.Char)
	case MapType:
		return "map"
	case NumberType:
		if v.Number.IsFloat() {
			return "floating point `" + v.Number.String() + "`"
		}
		return "integer `" + v.Number.String() + "`"
	case OptionType:
		return "Option value"
	case StringType:
		return fmt.Sprintf("string %q", v.String)
	case SeqType:
		return "sequence"
	case UnitType:
		return "unit value"
	}
	return "unknown value"
}

// Truth reports whether v is non-empty, non-zero or true.
func Truth(v Value) bool {
	switch v.Type {
	case BoolType:
		return v.Bool
	case CharType:
		return v.Char != 0
	case MapType:
		return v.Map.Len() != 0
	case NumberType:
		return v.Number.AsFloat() != 0
	case OptionType:
		return v.Option != nil
	case StringType:
		return v.String != ""
	case SeqType:
		return len(v.Seq) != 0
	}
	return false
}

// GoString renders v compactly for debugging. It is not zmerald syntax for
// every value; use the encode package for that.
func (v Value) GoString() string {
	var b strings.Builder
	v.goString(&b)
	return b.String()
}

func (v Value) goString(b *strings.Builder) {
	switch v.Type {
	case BoolType:
		fmt.Fprintf(b, "%t", v.Bool)
	case CharType:
		fmt.Fprintf(b, "%q", v.Char)
	case MapType:
		b.WriteByte('{')
		i := 0
		for k, val := range v.Map.All() {
			if i > 0 {
				b.WriteString(", ")
			}
			k.goString(b)
			b.WriteString(": ")
			val.goString(b)
			i++
		}
		b.WriteByte('}')
	case NumberType:
		b.WriteString(v.Number.String())
	case OptionType:
		if v.Option == nil {
			b.WriteString("None")
			return
		}
		b.WriteString("Some(")
		v.Option.goString(b)
		b.WriteByte(')')
	case StringType:
		fmt.Fprintf(b, "%q", v.String)
	case SeqType:
		b.WriteByte('[')
		for i := range v.Seq {
			if i > 0 {
				b.WriteString(", ")
			}
			v.Seq[i].goString(b)
		}
		b.WriteByte(']')
	case UnitType:
		b.WriteString("()")
	}
}

// SortedSeq returns the elements of a sequence sorted by Compare.
func SortedSeq(vs []Value) []Value {
	out := slices.Clone(vs)
	slices.SortFunc(out, Compare)
	return out
}
