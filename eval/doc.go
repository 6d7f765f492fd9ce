// Package eval evaluates expr-lang expressions against zmerald values.
//
// An expression sees the variables of an [Env] and, when evaluated against a
// document, the fields of the document's top-level map plus `doc` for the
// whole document. The functions getpath(path), listpath(path), whereami() and
// getenv(name) are always available.
//
// Strings can embed expressions: `$[expr]` is replaced by the result rendered
// as text, and a string consisting only of `.[expr]` is replaced by the
// result as a value.
package eval
