// Package zmerald reads and writes zmerald, a human friendly text format
// for structured data.
//
//	var cfg Config
//	err := zmerald.Unmarshal(data, &cfg)
//	out, err := zmerald.MarshalPretty(cfg, encode.DefaultPrettyConfig())
//
// Documents without a Go type decode to ir.Value with UnmarshalValue and
// can be bound to a type later with ValueInto.
package zmerald

import (
	"bytes"
	"io"

	"github.com/liabri/zmerald/encode"
	"github.com/liabri/zmerald/gomap"
	"github.com/liabri/zmerald/ir"
	"github.com/liabri/zmerald/parse"
)

// Unmarshal decodes data into v, a non-nil pointer. Syntax and type
// errors are *token.Error values carrying a position.
func Unmarshal(data []byte, v any, opts ...parse.ParseOption) error {
	return parse.Unmarshal(data, v, opts...)
}

func UnmarshalString(s string, v any, opts ...parse.ParseOption) error {
	return parse.Unmarshal([]byte(s), v, opts...)
}

// UnmarshalValue decodes data without a target type.
func UnmarshalValue(data []byte, opts ...parse.ParseOption) (ir.Value, error) {
	return parse.ParseValue(data, opts...)
}

// ValueInto binds a decoded Value to v, a non-nil pointer.
func ValueInto(val ir.Value, v any) error {
	return gomap.Decode(val, v)
}

// DecodeAs decodes data into a new T.
func DecodeAs[T any](data []byte, opts ...parse.ParseOption) (T, error) {
	var res T
	err := parse.Unmarshal(data, &res, opts...)
	return res, err
}

// Marshal encodes v in canonical form.
func Marshal(v any) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := MarshalTo(buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func MarshalString(v any) (string, error) {
	d, err := Marshal(v)
	return string(d), err
}

// MarshalTo writes v to w in canonical form. Writer errors are returned
// as they are.
func MarshalTo(w io.Writer, v any) error {
	return encode.Encode(v, w)
}

// MarshalPretty encodes v with cfg.
func MarshalPretty(v any, cfg encode.PrettyConfig) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := MarshalPrettyTo(buf, v, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func MarshalPrettyString(v any, cfg encode.PrettyConfig) (string, error) {
	d, err := MarshalPretty(v, cfg)
	return string(d), err
}

func MarshalPrettyTo(w io.Writer, v any, cfg encode.PrettyConfig) error {
	return encode.Encode(v, w, encode.Pretty(cfg))
}
