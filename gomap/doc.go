// Package gomap binds zmerald shapes to Go values by reflection.
//
// # Usage
//
//	type Point struct {
//	    X float32 `zmr:"x"`
//	    Y float32 `zmr:"y"`
//	}
//	var p Point
//	err := gomap.Decode(dec, &p) // dec is any shape.Decoder
//	err = gomap.Encode(enc, p)   // enc is any shape.Encoder
//
// # Type mapping
//
//   - bool, intN, uintN, floatN and string map to the matching scalars;
//     integer widths are checked.
//   - [Char] is a char.
//   - Slices are sequences; []byte fields tagged bytes are base64 byte
//     buffers. Arrays are tuples. Maps are maps and pointers are options.
//   - Structs are named structs named after the Go type. A struct without
//     fields is a unit struct.
//   - any holds dynamically decoded data, as ir.Value.Interface returns it.
//   - ir.Value and other shape.Marshaler/shape.Unmarshaler implementations
//     handle themselves.
//
// # Struct tags
//
// Fields take `zmr:"name,omitempty,bytes"`; `zmr:"-"` skips the field. A
// field named _zmr of type struct{} configures the struct itself:
//
//	type Pair struct {
//	    _zmr struct{} `zmr:"Pair,tuple"`
//	    A, B int
//	}
//
// Its tag carries the struct name and at most one of tuple, for a tuple
// struct, or newtype, for a single field wrapper.
//
// # Enums
//
// An enum is an interface type whose variants are registered with
// [RegisterEnum] or [RegisterUntaggedEnum]. The payload of a variant is the
// variant type itself: nothing for [UnitVariant], the whole value for
// [NewtypeVariant], the fields in order for [TupleVariant] and the fields by
// name for [StructVariant].
//
// # Repeated keys
//
// When a key repeats inside one struct or map body, slices append, maps
// merge and everything else takes the last value.
package gomap
