package ir

import (
	"encoding/base64"

	"github.com/liabri/zmerald/shape"
	"github.com/liabri/zmerald/token"
)

var _ shape.Decoder = Value{}

// DecodeAny describes v to vis.
func (v Value) DecodeAny(vis shape.Visitor) error {
	switch v.Type {
	case BoolType:
		return vis.VisitBool(v.Bool)
	case CharType:
		return vis.VisitChar(v.Char)
	case MapType:
		return vis.VisitMap(newMapAccess(v.Map))
	case NumberType:
		if i, ok := v.Number.Int64(); ok {
			return vis.VisitInt(i)
		}
		return vis.VisitFloat(v.Number.AsFloat())
	case OptionType:
		if v.Option == nil {
			return vis.VisitNone()
		}
		return vis.VisitSome(*v.Option)
	case StringType:
		return vis.VisitString(v.String)
	case SeqType:
		return vis.VisitSeq(newSeqAccess(v.Seq))
	case UnitType:
		return vis.VisitUnit()
	}
	return token.Mismatch(vis.Expecting(), v.Describe())
}

func (v Value) DecodeBool(vis shape.Visitor) error { return v.DecodeAny(vis) }

func (v Value) DecodeInt(_ int, vis shape.Visitor) error {
	i, ok := v.integer()
	if !ok {
		return token.Mismatch("an integer", v.Describe())
	}
	return vis.VisitInt(i)
}

func (v Value) DecodeUint(_ int, vis shape.Visitor) error {
	i, ok := v.integer()
	if !ok {
		return token.Mismatch("an integer", v.Describe())
	}
	if i < 0 {
		return token.Mismatch("an unsigned integer", v.Describe())
	}
	return vis.VisitUint(uint64(i))
}

func (v Value) integer() (int64, bool) {
	if v.Type != NumberType {
		return 0, false
	}
	return v.Number.Int64()
}

func (v Value) DecodeFloat(_ int, vis shape.Visitor) error { return v.DecodeAny(vis) }
func (v Value) DecodeChar(vis shape.Visitor) error         { return v.DecodeAny(vis) }
func (v Value) DecodeString(vis shape.Visitor) error       { return v.DecodeAny(vis) }

// DecodeBytes reads base64 text from a string Value.
func (v Value) DecodeBytes(vis shape.Visitor) error {
	if v.Type != StringType {
		return v.DecodeAny(vis)
	}
	b, err := base64.StdEncoding.DecodeString(v.String)
	if err != nil {
		return &token.Error{Code: token.Base64Error, Msg: err.Error(), Err: err}
	}
	return vis.VisitBytes(b)
}

// DecodeOption treats any value other than an Option as present.
func (v Value) DecodeOption(vis shape.Visitor) error {
	if v.Type == OptionType {
		return v.DecodeAny(vis)
	}
	return vis.VisitSome(v)
}

func (v Value) DecodeUnit(vis shape.Visitor) error { return v.DecodeAny(vis) }

func (v Value) DecodeUnitStruct(_ string, vis shape.Visitor) error { return v.DecodeAny(vis) }

// DecodeNewtypeStruct unwraps a one element sequence, the dynamic form of
// Name(v).
func (v Value) DecodeNewtypeStruct(_ string, vis shape.Visitor) error {
	if v.Type == SeqType && len(v.Seq) == 1 {
		return vis.VisitNewtype(v.Seq[0])
	}
	return vis.VisitNewtype(v)
}

func (v Value) DecodeSeq(vis shape.Visitor) error { return v.DecodeAny(vis) }

func (v Value) DecodeTuple(_ int, vis shape.Visitor) error { return v.DecodeAny(vis) }

func (v Value) DecodeTupleStruct(_ string, _ int, vis shape.Visitor) error {
	return v.DecodeAny(vis)
}

func (v Value) DecodeMap(vis shape.Visitor) error { return v.DecodeAny(vis) }

func (v Value) DecodeStruct(_ string, _ []string, vis shape.Visitor) error {
	return v.DecodeAny(vis)
}

// DecodeEnum accepts a string naming a unit variant, or a single entry map
// from variant name to payload.
func (v Value) DecodeEnum(_ string, _ []string, vis shape.Visitor) error {
	switch v.Type {
	case StringType:
		return vis.VisitEnum(&enumAccess{variant: v})
	case MapType:
		if v.Map.Len() == 1 {
			kv := v.Map.entries()[0]
			return vis.VisitEnum(&enumAccess{variant: kv.Key, payload: &kv.Val})
		}
	}
	return token.Mismatch("an enum", v.Describe())
}

func (v Value) DecodeIdentifier(vis shape.Visitor) error { return v.DecodeAny(vis) }

func (v Value) DecodeIgnored(vis shape.Visitor) error { return v.DecodeAny(vis) }

func (v Value) DecodeUntagged(n int, try func(int, shape.Decoder) error) error {
	var err error
	for i := range n {
		if err = try(i, v); err == nil {
			return nil
		}
	}
	if err == nil {
		err = token.Mismatch("a variant", v.Describe())
	}
	return err
}

// seqAccess pops elements off a reversed stack.
type seqAccess struct {
	stack []Value
}

func newSeqAccess(vs []Value) *seqAccess {
	stack := make([]Value, len(vs))
	for i := range vs {
		stack[len(vs)-1-i] = vs[i]
	}
	return &seqAccess{stack: stack}
}

func (a *seqAccess) NextElement(fn func(shape.Decoder) error) (bool, error) {
	if len(a.stack) == 0 {
		return false, nil
	}
	v := a.stack[len(a.stack)-1]
	a.stack = a.stack[:len(a.stack)-1]
	return true, fn(v)
}

type mapAccess struct {
	keys, vals []Value
}

func newMapAccess(m *Map) *mapAccess {
	kvs := m.entries()
	n := len(kvs)
	a := &mapAccess{keys: make([]Value, n), vals: make([]Value, n)}
	for i, kv := range kvs {
		a.keys[n-1-i] = kv.Key
		a.vals[n-1-i] = kv.Val
	}
	return a
}

func (a *mapAccess) NextKey(fn func(shape.Decoder) error) (bool, error) {
	if len(a.keys) == 0 {
		return false, nil
	}
	k := a.keys[len(a.keys)-1]
	a.keys = a.keys[:len(a.keys)-1]
	return true, fn(k)
}

func (a *mapAccess) NextValue(fn func(shape.Decoder) error) error {
	if len(a.vals) == 0 {
		return token.Errorf("map value requested without a key")
	}
	v := a.vals[len(a.vals)-1]
	a.vals = a.vals[:len(a.vals)-1]
	return fn(v)
}

type enumAccess struct {
	variant Value
	payload *Value
}

func (a *enumAccess) Variant(fn func(shape.Decoder) error) (shape.VariantAccess, error) {
	if err := fn(a.variant); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *enumAccess) UnitVariant() error {
	if a.payload == nil || a.payload.Type == UnitType {
		return nil
	}
	return token.Mismatch("unit variant", a.payload.Describe())
}

func (a *enumAccess) NewtypeVariant(fn func(shape.Decoder) error) error {
	if a.payload == nil {
		return token.Mismatch("newtype variant", "unit variant")
	}
	return fn(*a.payload)
}

func (a *enumAccess) TupleVariant(_ int, vis shape.Visitor) error {
	if a.payload == nil {
		return token.Mismatch("tuple variant", "unit variant")
	}
	return a.payload.DecodeAny(vis)
}

func (a *enumAccess) StructVariant(_ []string, vis shape.Visitor) error {
	if a.payload == nil {
		return token.Mismatch("struct variant", "unit variant")
	}
	return a.payload.DecodeAny(vis)
}
