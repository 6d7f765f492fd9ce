// Package token provides the lexical layer of the zmerald format.
//
// A [Cursor] walks the input bytes, tracking the 1-indexed line and column
// of the next byte, and exposes the primitive scans used by the parser:
// whitespace and comments, identifiers (including r# raw identifiers),
// quoted strings and chars, and numeric literals.
//
// Every lexical and syntactic failure is reported as an [*Error] carrying a
// [Code] from a closed set and the position of the offending token.
package token
