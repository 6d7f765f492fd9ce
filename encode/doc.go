// Package encode writes zmerald text.
//
// # Usage
//
//	// Canonical form, no optional whitespace
//	err := encode.Encode(v, w)
//
//	// Pretty printed
//	cfg := encode.DefaultPrettyConfig().WithStructNames(true)
//	err = encode.Encode(v, w, encode.Pretty(cfg))
//
//	// Colored for a terminal
//	err = encode.Encode(v, w, encode.Pretty(cfg), encode.EncodeColors(encode.NewColors()))
//
// A [Serializer] implements shape.Encoder and may be driven directly; Go
// values reach it through the gomap package.
//
// # Related Packages
//
//   - github.com/liabri/zmerald/shape - the Encoder protocol
//   - github.com/liabri/zmerald/gomap - Go value binding
//   - github.com/liabri/zmerald/parse - the reverse direction
package encode
