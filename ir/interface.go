package ir

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Interface converts v to plain Go data: bool, string, int64, float64,
// []any, map[string]any and nil. Chars become one rune strings, None and
// unit become nil, and map keys that are not strings are rendered with
// KeyString.
func (v Value) Interface() any {
	switch v.Type {
	case BoolType:
		return v.Bool
	case CharType:
		return string(v.Char)
	case MapType:
		res := make(map[string]any, v.Map.Len())
		for k, val := range v.Map.All() {
			res[k.KeyString()] = val.Interface()
		}
		return res
	case NumberType:
		if i, ok := v.Number.Int64(); ok {
			return i
		}
		return v.Number.AsFloat()
	case OptionType:
		if v.Option == nil {
			return nil
		}
		return v.Option.Interface()
	case StringType:
		return v.String
	case SeqType:
		res := make([]any, len(v.Seq))
		for i := range v.Seq {
			res[i] = v.Seq[i].Interface()
		}
		return res
	}
	return nil
}

// KeyString renders v as a map key for formats that only have string keys.
func (v Value) KeyString() string {
	switch v.Type {
	case StringType:
		return v.String
	case CharType:
		return string(v.Char)
	case NumberType:
		return v.Number.String()
	}
	return v.GoString()
}

// FromInterface converts plain Go data, as produced by encoding/json or a
// YAML decoder, to a Value. nil becomes None.
func FromInterface(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return None(), nil
	case Value:
		return t, nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return FromInt(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("%w: number %q: %w", ErrConvert, t, err)
		}
		return FromFloat(f), nil
	case []any:
		seq := make([]Value, len(t))
		for i := range t {
			v, err := FromInterface(t[i])
			if err != nil {
				return Value{}, err
			}
			seq[i] = v
		}
		return FromSeq(seq), nil
	case map[string]any:
		m := NewMap()
		for k, xv := range t {
			v, err := FromInterface(xv)
			if err != nil {
				return Value{}, err
			}
			m.Insert(FromString(k), v)
		}
		return FromMap(m), nil
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return FromUint(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float()), nil
	case reflect.Slice, reflect.Array:
		seq := make([]Value, rv.Len())
		for i := range seq {
			v, err := FromInterface(rv.Index(i).Interface())
			if err != nil {
				return Value{}, err
			}
			seq[i] = v
		}
		return FromSeq(seq), nil
	case reflect.Map:
		m := NewMap()
		iter := rv.MapRange()
		for iter.Next() {
			k, err := FromInterface(iter.Key().Interface())
			if err != nil {
				return Value{}, err
			}
			v, err := FromInterface(iter.Value().Interface())
			if err != nil {
				return Value{}, err
			}
			m.Insert(k, v)
		}
		return FromMap(m), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return None(), nil
		}
		return FromInterface(rv.Elem().Interface())
	}
	return Value{}, fmt.Errorf("%w: %T", ErrConvert, x)
}
