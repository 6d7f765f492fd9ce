package parse

import (
	"reflect"

	"github.com/liabri/zmerald/gomap"
	"github.com/liabri/zmerald/ir"
)

// Unmarshal decodes data into v, which must be a non-nil pointer.
// Failures are reported as *token.Error.
func Unmarshal(data []byte, v any, opts ...ParseOption) error {
	d := NewDecoder(data, opts...)
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return wrap(gomap.Decode(d, v), d.Pos())
	}
	// v is only written once the trailing input has been checked too
	tmp := reflect.New(rv.Elem().Type())
	tmp.Elem().Set(rv.Elem())
	if err := gomap.Decode(d, tmp.Interface()); err != nil {
		return wrap(err, d.Pos())
	}
	if err := d.End(); err != nil {
		return err
	}
	rv.Elem().Set(tmp.Elem())
	return nil
}

// ParseValue decodes data without a target type.
func ParseValue(data []byte, opts ...ParseOption) (ir.Value, error) {
	d := NewDecoder(data, opts...)
	v, err := ir.DecodeValue(d, d.opts.preserveOrder)
	if err != nil {
		return ir.Value{}, wrap(err, d.Pos())
	}
	if err := d.End(); err != nil {
		return ir.Value{}, err
	}
	return v, nil
}

