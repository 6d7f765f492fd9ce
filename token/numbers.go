package token

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// NumKind is the width and signedness inferred for a numeric literal.
type NumKind int

const (
	KindU8 NumKind = iota
	KindU16
	KindU32
	KindU64
	KindI8
	KindI16
	KindI32
	KindI64
	KindF32
	KindF64
)

func (k NumKind) String() string {
	return [...]string{"u8", "u16", "u32", "u64", "i8", "i16", "i32", "i64", "f32", "f64"}[k]
}

func (k NumKind) IsFloat() bool    { return k == KindF32 || k == KindF64 }
func (k NumKind) IsUnsigned() bool { return k <= KindU64 }

// AnyNum is a numeric literal read without a type hint. Exactly one of
// Uint, Int or Float is meaningful, depending on Kind.
type AnyNum struct {
	Kind  NumKind
	Uint  uint64
	Int   int64
	Float float64
}

// numLit is a scanned numeric literal.
type numLit struct {
	pos    Pos
	signed bool
	neg    bool
	float  bool
	base   int
	// digits without sign, base prefix or separators
	digits string
}

func isDigit(b byte, base int) bool {
	switch base {
	case 2:
		return b == '0' || b == '1'
	case 8:
		return b >= '0' && b <= '7'
	case 16:
		return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
	}
	return b >= '0' && b <= '9'
}

// scanNumber consumes a numeric literal. notNum is returned as the error
// code when the input does not start with one; the cursor is left where it
// was in that case.
func (c *Cursor) scanNumber(notNum Code) (numLit, error) {
	m := c.Mark()
	lit := numLit{pos: c.Pos(), base: 10}
	switch c.Peek() {
	case '+':
		lit.signed = true
		c.Advance(1)
	case '-':
		lit.signed, lit.neg = true, true
		c.Advance(1)
	}
	if c.ConsumeWord(KwInf) {
		lit.float, lit.digits = true, "Inf"
		return lit, nil
	}
	if c.ConsumeWord(KwNaN) {
		lit.float, lit.digits = true, "NaN"
		return lit, nil
	}
	if c.Peek() == '0' {
		switch c.PeekAt(1) {
		case 'x':
			lit.base = 16
		case 'o':
			lit.base = 8
		case 'b':
			lit.base = 2
		}
		if lit.base != 10 {
			c.Advance(2)
		}
	}
	if c.Peek() == '_' {
		pos := c.Pos()
		c.Reset(m)
		return lit, &Error{Code: UnderscoreAtBeginning, Pos: pos}
	}
	if !isDigit(c.Peek(), lit.base) {
		pos := c.Pos()
		c.Reset(m)
		if lit.base != 10 {
			return lit, &Error{Code: notNum, Pos: pos}
		}
		return lit, &Error{Code: notNum, Pos: lit.pos}
	}
	var b strings.Builder
	// digits reads a run of digits; a _ must sit between two of them
	digits := func() error {
		seen := false
		for !c.EOF() {
			d := c.Peek()
			if d == '_' {
				if !seen || !isDigit(c.PeekAt(1), lit.base) {
					return &Error{Code: UnexpectedByte, Pos: c.Pos(), Msg: "misplaced digit separator `_`"}
				}
				c.Advance(1)
				continue
			}
			if !isDigit(d, lit.base) {
				return nil
			}
			seen = true
			b.WriteByte(d)
			c.Advance(1)
		}
		return nil
	}
	if err := digits(); err != nil {
		return lit, err
	}
	if lit.base == 10 {
		if c.Peek() == '.' {
			lit.float = true
			b.WriteByte('.')
			c.Advance(1)
			if err := digits(); err != nil {
				return lit, err
			}
		}
		if e := c.Peek(); e == 'e' || e == 'E' {
			i := 1
			if s := c.PeekAt(1); s == '+' || s == '-' {
				i = 2
			}
			if isDigit(c.PeekAt(i), 10) {
				lit.float = true
				b.WriteByte('e')
				if i == 2 {
					b.WriteByte(c.PeekAt(1))
				}
				c.Advance(i)
				if err := digits(); err != nil {
					return lit, err
				}
			}
		}
	}
	lit.digits = b.String()
	return lit, nil
}

// magnitude parses the integer digits of lit.
func (lit numLit) magnitude() (uint64, error) {
	v, err := strconv.ParseUint(lit.digits, lit.base, 64)
	if err != nil {
		return 0, &Error{Code: IntegerOutOfBounds, Pos: lit.pos, Err: err}
	}
	return v, nil
}

func (lit numLit) toFloat(bits int) (float64, error) {
	if !lit.float && lit.base != 10 {
		mag, err := lit.magnitude()
		if err != nil {
			return 0, err
		}
		f := float64(mag)
		if lit.neg {
			f = -f
		}
		return f, nil
	}
	if lit.digits == "NaN" {
		return math.NaN(), nil
	}
	s := lit.digits
	if lit.neg {
		s = "-" + s
	}
	f, err := strconv.ParseFloat(s, bits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &Error{Code: ExpectedFloat, Pos: lit.pos, Err: err}
	}
	return f, nil
}

func (lit numLit) toInt() (int64, error) {
	mag, err := lit.magnitude()
	if err != nil {
		return 0, err
	}
	if !lit.neg {
		v, err := safecast.Conv[int64](mag)
		if err != nil {
			return 0, &Error{Code: IntegerOutOfBounds, Pos: lit.pos, Err: err}
		}
		return v, nil
	}
	switch {
	case mag == 1<<63:
		return math.MinInt64, nil
	case mag > 1<<63:
		return 0, &Error{Code: IntegerOutOfBounds, Pos: lit.pos}
	}
	return -int64(mag), nil
}

// ReadInt reads a signed integer that fits in bits.
func (c *Cursor) ReadInt(bits int) (int64, error) {
	lit, err := c.scanNumber(ExpectedInteger)
	if err != nil {
		return 0, err
	}
	if lit.float {
		return 0, &Error{Code: ExpectedInteger, Pos: lit.pos}
	}
	v, err := lit.toInt()
	if err != nil {
		return 0, err
	}
	switch bits {
	case 8:
		_, err = safecast.Conv[int8](v)
	case 16:
		_, err = safecast.Conv[int16](v)
	case 32:
		_, err = safecast.Conv[int32](v)
	}
	if err != nil {
		return 0, &Error{Code: IntegerOutOfBounds, Pos: lit.pos, Err: err}
	}
	return v, nil
}

// ReadUint reads an unsigned integer that fits in bits.
func (c *Cursor) ReadUint(bits int) (uint64, error) {
	lit, err := c.scanNumber(ExpectedInteger)
	if err != nil {
		return 0, err
	}
	if lit.float {
		return 0, &Error{Code: ExpectedInteger, Pos: lit.pos}
	}
	v, err := lit.magnitude()
	if err != nil {
		return 0, err
	}
	if lit.neg && v != 0 {
		return 0, &Error{Code: IntegerOutOfBounds, Pos: lit.pos}
	}
	switch bits {
	case 8:
		_, err = safecast.Conv[uint8](v)
	case 16:
		_, err = safecast.Conv[uint16](v)
	case 32:
		_, err = safecast.Conv[uint32](v)
	}
	if err != nil {
		return 0, &Error{Code: IntegerOutOfBounds, Pos: lit.pos, Err: err}
	}
	return v, nil
}

// ReadFloat reads a float of the given width. Integer literals are
// accepted.
func (c *Cursor) ReadFloat(bits int) (float64, error) {
	lit, err := c.scanNumber(ExpectedFloat)
	if err != nil {
		return 0, err
	}
	return lit.toFloat(bits)
}

// ReadAnyNum reads a numeric literal, inferring the narrowest kind that
// holds it.
func (c *Cursor) ReadAnyNum() (AnyNum, error) {
	lit, err := c.scanNumber(ExpectedInteger)
	if err != nil {
		return AnyNum{}, err
	}
	if lit.float {
		f, err := lit.toFloat(64)
		if err != nil {
			return AnyNum{}, err
		}
		return floatNum(f), nil
	}
	mag, err := lit.magnitude()
	if err != nil {
		if lit.base != 10 {
			return AnyNum{}, err
		}
		f, ferr := lit.toFloat(64)
		if ferr != nil {
			return AnyNum{}, ferr
		}
		return AnyNum{Kind: KindF64, Float: f}, nil
	}
	if !lit.signed {
		var k NumKind
		switch {
		case mag <= math.MaxUint8:
			k = KindU8
		case mag <= math.MaxUint16:
			k = KindU16
		case mag <= math.MaxUint32:
			k = KindU32
		default:
			k = KindU64
		}
		return AnyNum{Kind: k, Uint: mag}, nil
	}
	v, err := lit.toInt()
	if err != nil {
		f := float64(mag)
		if lit.neg {
			f = -f
		}
		return AnyNum{Kind: KindF64, Float: f}, nil
	}
	var k NumKind
	switch {
	case v >= math.MinInt8 && v <= math.MaxInt8:
		k = KindI8
	case v >= math.MinInt16 && v <= math.MaxInt16:
		k = KindI16
	case v >= math.MinInt32 && v <= math.MaxInt32:
		k = KindI32
	default:
		k = KindI64
	}
	return AnyNum{Kind: k, Int: v}, nil
}

func floatNum(f float64) AnyNum {
	if float64(float32(f)) == f {
		return AnyNum{Kind: KindF32, Float: f}
	}
	return AnyNum{Kind: KindF64, Float: f}
}
