package shape

// Encoder consumes one value described by shape.
//
// Nested values are produced by callbacks receiving the Encoder to write
// them with. Lengths are -1 when unknown.
type Encoder interface {
	EncodeBool(v bool) error
	EncodeInt(v int64) error
	EncodeUint(v uint64) error
	EncodeFloat32(v float32) error
	EncodeFloat64(v float64) error
	EncodeChar(v rune) error
	EncodeString(v string) error
	EncodeBytes(v []byte) error
	EncodeNone() error
	EncodeSome(fn func(Encoder) error) error
	EncodeUnit() error
	EncodeUnitStruct(name string) error
	EncodeUnitVariant(enum, variant string) error
	EncodeNewtypeStruct(name string, fn func(Encoder) error) error
	EncodeNewtypeVariant(enum, variant string, fn func(Encoder) error) error
	EncodeSeq(n int) (SeqEncoder, error)
	EncodeTuple(n int) (SeqEncoder, error)
	EncodeTupleStruct(name string, n int) (SeqEncoder, error)
	EncodeTupleVariant(enum, variant string, n int) (SeqEncoder, error)
	EncodeMap(n int) (MapEncoder, error)
	EncodeStruct(name string, n int) (StructEncoder, error)
	EncodeStructVariant(enum, variant string, n int) (StructEncoder, error)
}

type SeqEncoder interface {
	Element(fn func(Encoder) error) error
	End() error
}

type MapEncoder interface {
	Key(fn func(Encoder) error) error
	Value(fn func(Encoder) error) error
	End() error
}

type StructEncoder interface {
	Field(name string, fn func(Encoder) error) error
	End() error
}

// Marshaler is implemented by types that encode themselves.
type Marshaler interface {
	MarshalZmr(e Encoder) error
}
