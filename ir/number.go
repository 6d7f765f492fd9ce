package ir

import (
	"cmp"
	"math"
	"strconv"
)

// Number is a 64-bit integer or a 64-bit float.
type Number struct {
	float bool
	i     int64
	f     float64
}

func NumberFromInt(i int64) Number {
	return Number{i: i}
}

func NumberFromFloat(f float64) Number {
	return Number{float: true, f: f}
}

// NumberFromUint falls back to a float when u does not fit an int64.
func NumberFromUint(u uint64) Number {
	if u > math.MaxInt64 {
		return NumberFromFloat(float64(u))
	}
	return NumberFromInt(int64(u))
}

func (n Number) IsFloat() bool {
	return n.float
}

func (n Number) Int64() (int64, bool) {
	return n.i, !n.float
}

func (n Number) Float64() (float64, bool) {
	return n.f, n.float
}

// AsFloat widens n to a float, losing precision for large integers.
func (n Number) AsFloat() float64 {
	if n.float {
		return n.f
	}
	return float64(n.i)
}

// Compare orders integers before floats. NaN equals NaN and is the least
// float.
func (n Number) Compare(o Number) int {
	if n.float != o.float {
		if n.float {
			return 1
		}
		return -1
	}
	if !n.float {
		return cmp.Compare(n.i, o.i)
	}
	return cmp.Compare(n.f, o.f)
}

func (n Number) String() string {
	if !n.float {
		return strconv.FormatInt(n.i, 10)
	}
	switch {
	case math.IsNaN(n.f):
		return "NaN"
	case math.IsInf(n.f, 1):
		return "inf"
	case math.IsInf(n.f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}
