package ir

import (
	"github.com/liabri/zmerald/shape"
	"github.com/liabri/zmerald/token"
)

// ValueVisitor builds a Value from whatever a decoder reports.
type ValueVisitor struct {
	// Out receives the decoded value.
	Out *Value
	// Ordered selects insertion ordered maps.
	Ordered bool
}

// DecodeValue decodes one value from d without a type hint.
func DecodeValue(d shape.Decoder, ordered bool) (Value, error) {
	var v Value
	if err := d.DecodeAny(&ValueVisitor{Out: &v, Ordered: ordered}); err != nil {
		return Value{}, err
	}
	return v, nil
}

func (vv *ValueVisitor) sub(d shape.Decoder) (Value, error) {
	return DecodeValue(d, vv.Ordered)
}

func (vv *ValueVisitor) Expecting() string { return "any value" }

func (vv *ValueVisitor) VisitBool(b bool) error {
	*vv.Out = FromBool(b)
	return nil
}

func (vv *ValueVisitor) VisitInt(i int64) error {
	*vv.Out = FromInt(i)
	return nil
}

func (vv *ValueVisitor) VisitUint(u uint64) error {
	*vv.Out = FromUint(u)
	return nil
}

func (vv *ValueVisitor) VisitFloat(f float64) error {
	*vv.Out = FromFloat(f)
	return nil
}

func (vv *ValueVisitor) VisitChar(r rune) error {
	*vv.Out = FromChar(r)
	return nil
}

func (vv *ValueVisitor) VisitString(s string) error {
	*vv.Out = FromString(s)
	return nil
}

func (vv *ValueVisitor) VisitBytes(b []byte) error {
	seq := make([]Value, len(b))
	for i, c := range b {
		seq[i] = FromInt(int64(c))
	}
	*vv.Out = FromSeq(seq)
	return nil
}

func (vv *ValueVisitor) VisitNone() error {
	*vv.Out = None()
	return nil
}

func (vv *ValueVisitor) VisitSome(d shape.Decoder) error {
	v, err := vv.sub(d)
	if err != nil {
		return err
	}
	*vv.Out = Some(v)
	return nil
}

func (vv *ValueVisitor) VisitUnit() error {
	*vv.Out = Unit()
	return nil
}

func (vv *ValueVisitor) VisitNewtype(d shape.Decoder) error {
	v, err := vv.sub(d)
	if err != nil {
		return err
	}
	*vv.Out = v
	return nil
}

func (vv *ValueVisitor) VisitSeq(a shape.SeqAccess) error {
	seq := []Value{}
	for {
		var elt Value
		ok, err := a.NextElement(func(d shape.Decoder) error {
			var err error
			elt, err = vv.sub(d)
			return err
		})
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		seq = append(seq, elt)
	}
	*vv.Out = FromSeq(seq)
	return nil
}

func (vv *ValueVisitor) VisitMap(a shape.MapAccess) error {
	m := NewMap()
	if vv.Ordered {
		m = NewOrderedMap()
	}
	for {
		var k, v Value
		ok, err := a.NextKey(func(d shape.Decoder) error {
			var err error
			k, err = vv.sub(d)
			return err
		})
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if err := a.NextValue(func(d shape.Decoder) error {
			var err error
			v, err = vv.sub(d)
			return err
		}); err != nil {
			return err
		}
		m.Insert(k, v)
	}
	*vv.Out = FromMap(m)
	return nil
}

// VisitEnum is never reached without a type hint naming the enum.
func (vv *ValueVisitor) VisitEnum(shape.EnumAccess) error {
	return token.Mismatch(vv.Expecting(), "enum")
}
