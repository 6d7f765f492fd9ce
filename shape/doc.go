// Package shape defines the visitor protocol shared by every source and
// sink of zmerald data.
//
// A [Decoder] is asked for a value with a shape hint (bool, i32, struct,
// enum, ...) and answers by calling one method of a [Visitor]. The text
// parser, the dynamic ir.Value and any other source implement Decoder;
// typed Go targets supply Visitors. Containers are walked through
// [SeqAccess], [MapAccess] and [EnumAccess].
//
// [Encoder] is the mirror image used by serializers.
//
// Types may take over their own representation by implementing
// [Unmarshaler] or [Marshaler].
package shape
