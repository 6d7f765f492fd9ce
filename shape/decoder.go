package shape

// Decoder produces one value, reporting it to a Visitor.
//
// Each method is a hint about the expected shape. Self-describing sources
// may ignore the hint and report what they have. Integer and float widths
// are given in bits.
type Decoder interface {
	DecodeAny(v Visitor) error
	DecodeBool(v Visitor) error
	DecodeInt(bits int, v Visitor) error
	DecodeUint(bits int, v Visitor) error
	DecodeFloat(bits int, v Visitor) error
	DecodeChar(v Visitor) error
	DecodeString(v Visitor) error
	DecodeBytes(v Visitor) error
	DecodeOption(v Visitor) error
	DecodeUnit(v Visitor) error
	DecodeUnitStruct(name string, v Visitor) error
	DecodeNewtypeStruct(name string, v Visitor) error
	DecodeSeq(v Visitor) error
	DecodeTuple(n int, v Visitor) error
	DecodeTupleStruct(name string, n int, v Visitor) error
	DecodeMap(v Visitor) error
	DecodeStruct(name string, fields []string, v Visitor) error
	DecodeEnum(name string, variants []string, v Visitor) error
	DecodeIdentifier(v Visitor) error
	DecodeIgnored(v Visitor) error

	// DecodeUntagged calls try with candidates 0..n-1 until one succeeds,
	// restoring the source between attempts. The last error is returned if
	// none does.
	DecodeUntagged(n int, try func(i int, d Decoder) error) error
}

// Visitor receives the value a Decoder produced.
type Visitor interface {
	// Expecting describes what the visitor accepts, for error messages.
	Expecting() string

	VisitBool(b bool) error
	VisitInt(i int64) error
	VisitUint(u uint64) error
	VisitFloat(f float64) error
	VisitChar(r rune) error
	VisitString(s string) error
	VisitBytes(b []byte) error
	VisitNone() error
	VisitSome(d Decoder) error
	VisitUnit() error
	VisitNewtype(d Decoder) error
	VisitSeq(a SeqAccess) error
	VisitMap(a MapAccess) error
	VisitEnum(a EnumAccess) error
}

type SeqAccess interface {
	// NextElement calls fn with a decoder for the next element. It returns
	// false, without calling fn, when the sequence is exhausted.
	NextElement(fn func(Decoder) error) (bool, error)
}

type MapAccess interface {
	// NextKey calls fn with a decoder for the next key, returning false
	// when there are no more entries.
	NextKey(fn func(Decoder) error) (bool, error)
	// NextValue must follow every successful NextKey.
	NextValue(fn func(Decoder) error) error
}

type EnumAccess interface {
	// Variant decodes the variant identifier with fn and returns access to
	// its payload.
	Variant(fn func(Decoder) error) (VariantAccess, error)
}

type VariantAccess interface {
	UnitVariant() error
	NewtypeVariant(fn func(Decoder) error) error
	TupleVariant(n int, v Visitor) error
	StructVariant(fields []string, v Visitor) error
}

// Unmarshaler is implemented by types that decode themselves.
type Unmarshaler interface {
	UnmarshalZmr(d Decoder) error
}
