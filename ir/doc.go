// Package ir provides the dynamic value model for zmerald documents.
//
// # Overview
//
// A [Value] holds any zmerald datum without a Go type to bind it to. Values
// are produced by parsing text without a target (parse.ParseValue), by
// converting plain Go data ([FromInterface]) or by hand with the
// constructor functions.
//
// The IR is a tagged union: the Type field selects which of the other
// fields is meaningful.
//
//   - BoolType: Bool
//   - CharType: Char
//   - MapType: Map
//   - NumberType: Number
//   - OptionType: Option (nil for None)
//   - StringType: String
//   - SeqType: Seq
//   - UnitType: no payload
//
// # Creating Values
//
//	v := ir.FromString("hello")
//	n := ir.FromInt(42)
//	m := ir.NewMap()
//	m.Insert(ir.FromString("key"), ir.FromBool(true))
//	root := ir.FromMap(m)
//
// # Maps
//
// A [Map] holds unique keys. Its iteration order is either sorted by key
// ([NewMap]) or the order in which keys were first inserted
// ([NewOrderedMap]). The order is chosen when the map is created.
//
// # Comparison and Hashing
//
// Values are totally ordered by [Compare]. Different variants order by
// their declaration order above (Bool < Char < Map < Number < Option <
// String < Seq < Unit). Integer numbers order before float numbers, and a
// float NaN equals itself and orders below every other float. [Equal] and
// [Value.Hash] are consistent with Compare, so Values may be used as map
// keys.
//
// # Decoding into Go values
//
// Value implements shape.Decoder, so a Value can be bound to any typed
// target the text parser can bind to. Integer shapes require an integer
// Number; a mismatch yields a token.TypeMismatch error describing what was
// found.
//
// # Thread Safety
//
// Values are not synchronized. Share them read-only or clone them.
package ir
