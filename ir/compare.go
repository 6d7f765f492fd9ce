package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b Value) int {
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}
	switch a.Type {
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case CharType:
		return cmp.Compare(a.Char, b.Char)
	case MapType:
		return compareMaps(a.Map, b.Map)
	case NumberType:
		return a.Number.Compare(b.Number)
	case OptionType:
		switch {
		case a.Option == nil && b.Option == nil:
			return 0
		case a.Option == nil:
			return -1
		case b.Option == nil:
			return 1
		}
		return Compare(*a.Option, *b.Option)
	case StringType:
		return strings.Compare(a.String, b.String)
	case SeqType:
		return compareSeqs(a.Seq, b.Seq)
	}
	return 0
}

// Equal reports whether Compare(a, b) == 0. Maps of different length are
// never equal.
func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

func compareSeqs(a, b []Value) int {
	n := min(len(a), len(b))
	for i := range n {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// compareMaps compares entries pairwise in iteration order, then lengths.
func compareMaps(a, b *Map) int {
	ae, be := a.entries(), b.entries()
	n := min(len(ae), len(be))
	for i := range n {
		if c := Compare(ae[i].Key, be[i].Key); c != 0 {
			return c
		}
		if c := Compare(ae[i].Val, be[i].Val); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ae), len(be))
}
