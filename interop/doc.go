// Package interop converts zmerald values to and from JSON and YAML, and
// applies JSON Patch (RFC 6902) and JSON Merge Patch (RFC 7386) documents to
// them.
//
// JSON and YAML have fewer types than zmerald, so conversions out of zmerald
// are lossy: chars become strings, None and unit become null, and map keys
// that are not strings are rendered as text.
package interop
