package ir

import "fmt"

type Type int

const (
	BoolType Type = iota
	CharType
	MapType
	NumberType
	OptionType
	StringType
	SeqType
	UnitType
)

var typeNames = map[Type]string{
	BoolType:   "Bool",
	CharType:   "Char",
	MapType:    "Map",
	NumberType: "Number",
	OptionType: "Option",
	StringType: "String",
	SeqType:    "Seq",
	UnitType:   "Unit",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, s := range typeNames {
		if s == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		BoolType,
		CharType,
		MapType,
		NumberType,
		OptionType,
		StringType,
		SeqType,
		UnitType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case MapType, SeqType, OptionType:
		return false
	default:
		return true
	}
}
