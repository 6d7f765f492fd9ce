package ir

import "github.com/liabri/zmerald/shape"

var (
	_ shape.Marshaler   = Value{}
	_ shape.Unmarshaler = (*Value)(nil)
)

// MarshalZmr encodes v with the shape matching its variant.
func (v Value) MarshalZmr(e shape.Encoder) error {
	switch v.Type {
	case BoolType:
		return e.EncodeBool(v.Bool)
	case CharType:
		return e.EncodeChar(v.Char)
	case MapType:
		me, err := e.EncodeMap(v.Map.Len())
		if err != nil {
			return err
		}
		for k, val := range v.Map.All() {
			if err := me.Key(k.MarshalZmr); err != nil {
				return err
			}
			if err := me.Value(val.MarshalZmr); err != nil {
				return err
			}
		}
		return me.End()
	case NumberType:
		if i, ok := v.Number.Int64(); ok {
			return e.EncodeInt(i)
		}
		return e.EncodeFloat64(v.Number.AsFloat())
	case OptionType:
		if v.Option == nil {
			return e.EncodeNone()
		}
		return e.EncodeSome(v.Option.MarshalZmr)
	case StringType:
		return e.EncodeString(v.String)
	case SeqType:
		se, err := e.EncodeSeq(len(v.Seq))
		if err != nil {
			return err
		}
		for i := range v.Seq {
			if err := se.Element(v.Seq[i].MarshalZmr); err != nil {
				return err
			}
		}
		return se.End()
	}
	return e.EncodeUnit()
}

// UnmarshalZmr replaces v with the value d describes. Maps are sorted.
func (v *Value) UnmarshalZmr(d shape.Decoder) error {
	res, err := DecodeValue(d, false)
	if err != nil {
		return err
	}
	*v = res
	return nil
}
