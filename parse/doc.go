// Package parse decodes zmerald text.
//
// A [Decoder] is a recursive descent parser driven by the shape hints of
// the target it fills: it implements shape.Decoder over a token.Cursor,
// one production per hint. [Unmarshal] binds text to a Go value through
// the gomap package, [ParseValue] builds a dynamic ir.Value.
//
// # Grammar notes
//
// Whitespace and comments (# to end of line, /* */ blocks) may appear
// between any two tokens.
//
//   - Option: None is absent, anything else is present. There is no Some
//     wrapper.
//   - Unit and unit structs: (), {}, Name, Name(), Name{}.
//   - Structs: Name{f: v, ...} or {f: v, ...}; bodies may also be
//     delimited by parentheses.
//   - Maps: {k: v, ...}. Entries may be written <k> v, and k <k2> v2 <k3> v3
//     is one entry whose value is the map {k2: v2, k3: v3}.
//   - Entries are separated by , or ; and a trailing separator is allowed.
//   - Sequences [a, b], tuples (a, b).
//   - Enums: Ident, Ident(v), Ident(a, b), Ident{f: v}.
//   - Bare words decode as strings and chars.
//
// Inside the parentheses of a newtype, Name(...) or Variant(...), a payload
// that is a unit, a struct or a tuple reuses the parentheses: B() is a
// unit payload, B(x: 1) a struct payload and B(1, 2) a tuple payload.
//
// Errors are *token.Error values positioned at the offending token.
package parse
