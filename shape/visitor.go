package shape

import (
	"fmt"
	"strconv"

	"github.com/liabri/zmerald/token"
)

// BaseVisitor rejects every input with a TypeMismatch error. Embed it and
// override the methods a visitor accepts.
type BaseVisitor struct {
	Expect string
}

func (b BaseVisitor) Expecting() string {
	if b.Expect == "" {
		return "a value"
	}
	return b.Expect
}

func (b BaseVisitor) invalid(found string) error {
	return token.Mismatch(b.Expecting(), found)
}

func (b BaseVisitor) VisitBool(v bool) error {
	return b.invalid(fmt.Sprintf("boolean `%t`", v))
}

func (b BaseVisitor) VisitInt(v int64) error {
	return b.invalid(fmt.Sprintf("integer `%d`", v))
}

func (b BaseVisitor) VisitUint(v uint64) error {
	return b.invalid(fmt.Sprintf("integer `%d`", v))
}

func (b BaseVisitor) VisitFloat(v float64) error {
	return b.invalid("floating point `" + strconv.FormatFloat(v, 'g', -1, 64) + "`")
}

func (b BaseVisitor) VisitChar(v rune) error {
	return b.invalid("char " + token.QuoteChar(v))
}

func (b BaseVisitor) VisitString(v string) error {
	return b.invalid("string " + token.Quote(v))
}

func (b BaseVisitor) VisitBytes([]byte) error {
	return b.invalid("byte array")
}

func (b BaseVisitor) VisitNone() error {
	return b.invalid("Option value")
}

func (b BaseVisitor) VisitSome(Decoder) error {
	return b.invalid("Option value")
}

func (b BaseVisitor) VisitUnit() error {
	return b.invalid("unit value")
}

func (b BaseVisitor) VisitNewtype(Decoder) error {
	return b.invalid("newtype struct")
}

func (b BaseVisitor) VisitSeq(SeqAccess) error {
	return b.invalid("sequence")
}

func (b BaseVisitor) VisitMap(MapAccess) error {
	return b.invalid("map")
}

func (b BaseVisitor) VisitEnum(EnumAccess) error {
	return b.invalid("enum")
}

// IgnoreVisitor accepts and discards any value.
type IgnoreVisitor struct{}

func (IgnoreVisitor) Expecting() string        { return "anything" }
func (IgnoreVisitor) VisitBool(bool) error     { return nil }
func (IgnoreVisitor) VisitInt(int64) error     { return nil }
func (IgnoreVisitor) VisitUint(uint64) error   { return nil }
func (IgnoreVisitor) VisitFloat(float64) error { return nil }
func (IgnoreVisitor) VisitChar(rune) error     { return nil }
func (IgnoreVisitor) VisitString(string) error { return nil }
func (IgnoreVisitor) VisitBytes([]byte) error  { return nil }
func (IgnoreVisitor) VisitNone() error         { return nil }
func (IgnoreVisitor) VisitUnit() error         { return nil }

func (IgnoreVisitor) VisitSome(d Decoder) error {
	return d.DecodeIgnored(IgnoreVisitor{})
}

func (IgnoreVisitor) VisitNewtype(d Decoder) error {
	return d.DecodeIgnored(IgnoreVisitor{})
}

func (IgnoreVisitor) VisitSeq(a SeqAccess) error {
	for {
		ok, err := a.NextElement(Ignore)
		if err != nil || !ok {
			return err
		}
	}
}

func (IgnoreVisitor) VisitMap(a MapAccess) error {
	for {
		ok, err := a.NextKey(Ignore)
		if err != nil || !ok {
			return err
		}
		if err := a.NextValue(Ignore); err != nil {
			return err
		}
	}
}

func (IgnoreVisitor) VisitEnum(a EnumAccess) error {
	_, err := a.Variant(Ignore)
	return err
}

// Ignore decodes and discards one value.
func Ignore(d Decoder) error {
	return d.DecodeIgnored(IgnoreVisitor{})
}
