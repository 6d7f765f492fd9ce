// Package libdiff computes structural differences between zmerald values
// and applies them.
//
// A difference is a [Change]. Changes are themselves zmerald data: the
// variants are registered as an enum with gomap, so a diff can be encoded
// with the encode package, stored, and later parsed back and applied with
// [Patch].
//
//	Fields([
//	    ("name", Replace("old", "new")),
//	    ("tags", Elements({1: Delete("b"), 2: Insert("c")})),
//	    ("body", Text([Keep(6), Del("cruel "), Keep(5)])),
//	])
//
// Maps are diffed key by key. Sequences are aligned with a longest common
// subsequence over element summaries, and strings with a character or line
// level diff from github.com/sergi/go-diff.
package libdiff
