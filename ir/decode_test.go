package ir

import (
	"errors"
	"math"
	"testing"

	"github.com/liabri/zmerald/shape"
	"github.com/liabri/zmerald/token"
)

func nan() float64 { return math.NaN() }

type intVisitor struct {
	shape.BaseVisitor
	i int64
	u uint64
}

func (v *intVisitor) VisitInt(i int64) error  { v.i = i; return nil }
func (v *intVisitor) VisitUint(u uint64) error { v.u = u; return nil }

func TestDecodeIntegers(t *testing.T) {
	var iv intVisitor
	if err := FromInt(-3).DecodeInt(32, &iv); err != nil || iv.i != -3 {
		t.Errorf("got %d %v", iv.i, err)
	}
	if err := FromInt(7).DecodeUint(8, &iv); err != nil || iv.u != 7 {
		t.Errorf("got %d %v", iv.u, err)
	}
	for _, v := range []Value{FromFloat(1.5), FromString("1"), Unit(), FromInt(-1)} {
		err := v.DecodeUint(64, &iv)
		var te *token.Error
		if !errors.As(err, &te) || te.Code != token.TypeMismatch || te.Found == "" {
			t.Errorf("%#v: got %v", v, err)
		}
	}
	err := FromString("x").DecodeInt(64, &iv)
	if want := `invalid type: expected an integer, found string "x"`; err == nil || err.Error() != want {
		t.Errorf("got %v want %s", err, want)
	}
}

func TestDecodeValueRoundTrip(t *testing.T) {
	m := NewOrderedMap()
	m.Insert(FromString("z"), FromSeq([]Value{FromInt(1), FromFloat(2.5), FromChar('c')}))
	m.Insert(FromString("a"), Some(None()))
	m.Insert(FromBool(true), Unit())
	in := FromMap(m)
	out, err := DecodeValue(in, true)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(in, out) {
		t.Errorf("got %#v want %#v", out, in)
	}
	sorted, err := DecodeValue(in, false)
	if err != nil {
		t.Fatal(err)
	}
	if sorted.Map.Ordered() || sorted.Map.Keys()[0].Type != BoolType {
		t.Errorf("sorted: %#v", sorted)
	}
}

type enumVisitor struct {
	shape.BaseVisitor
	variant string
	payload Value
}

func (v *enumVisitor) VisitEnum(a shape.EnumAccess) error {
	va, err := a.Variant(func(d shape.Decoder) error {
		id, err := DecodeValue(d, false)
		v.variant = id.String
		return err
	})
	if err != nil {
		return err
	}
	if v.variant == "Unit" {
		return va.UnitVariant()
	}
	return va.NewtypeVariant(func(d shape.Decoder) error {
		var err error
		v.payload, err = DecodeValue(d, false)
		return err
	})
}

func TestDecodeEnum(t *testing.T) {
	var ev enumVisitor
	if err := FromString("Unit").DecodeEnum("E", nil, &ev); err != nil || ev.variant != "Unit" {
		t.Errorf("unit: %v %q", err, ev.variant)
	}
	m := NewMap()
	m.Insert(FromString("B"), FromBool(true))
	if err := FromMap(m).DecodeEnum("E", nil, &ev); err != nil || ev.variant != "B" || !ev.payload.Bool {
		t.Errorf("newtype: %v %q %#v", err, ev.variant, ev.payload)
	}
	if err := FromInt(1).DecodeEnum("E", nil, &ev); !errors.Is(err, token.TypeMismatch) {
		t.Errorf("int: %v", err)
	}
}

func TestDecodeBytes(t *testing.T) {
	var got []byte
	v := &bytesVisitor{out: &got}
	if err := FromString("AQID").DecodeBytes(v); err != nil {
		t.Fatal(err)
	}
	if string(got) != "\x01\x02\x03" {
		t.Errorf("got %v", got)
	}
	if err := FromString("!!").DecodeBytes(v); !errors.Is(err, token.Base64Error) {
		t.Errorf("got %v", err)
	}
}

type bytesVisitor struct {
	shape.BaseVisitor
	out *[]byte
}

func (v *bytesVisitor) VisitBytes(b []byte) error { *v.out = b; return nil }
