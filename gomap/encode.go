package gomap

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/liabri/zmerald/shape"
)

// Encode writes v to e. A nil v is None.
func Encode(e shape.Encoder, v any) error {
	if v == nil {
		return e.EncodeNone()
	}
	return encodeValue(e, reflect.ValueOf(v), "", false)
}

func encodeValue(e shape.Encoder, val reflect.Value, fieldPath string, bytes bool) error {
	typ := val.Type()
	if typ.Implements(marshalerType) {
		if typ.Kind() == reflect.Pointer && val.IsNil() {
			return e.EncodeNone()
		}
		return val.Interface().(shape.Marshaler).MarshalZmr(e)
	}
	if val.CanAddr() && reflect.PointerTo(typ).Implements(marshalerType) {
		return val.Addr().Interface().(shape.Marshaler).MarshalZmr(e)
	}
	if vi := lookupVariant(typ); vi != nil {
		return encodeVariant(e, val, vi, fieldPath)
	}
	return encodePlain(e, val, fieldPath, bytes)
}

// encodePlain encodes val by its kind alone.
func encodePlain(e shape.Encoder, val reflect.Value, fieldPath string, bytes bool) error {
	typ := val.Type()
	switch typ.Kind() {
	case reflect.Bool:
		return e.EncodeBool(val.Bool())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if typ == charType {
			return e.EncodeChar(rune(val.Int()))
		}
		return e.EncodeInt(val.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return e.EncodeUint(val.Uint())

	case reflect.Float32:
		return e.EncodeFloat32(float32(val.Float()))

	case reflect.Float64:
		return e.EncodeFloat64(val.Float())

	case reflect.String:
		return e.EncodeString(val.String())

	case reflect.Slice:
		if bytes {
			return e.EncodeBytes(val.Bytes())
		}
		se, err := e.EncodeSeq(val.Len())
		if err != nil {
			return err
		}
		return encodeElems(se, val, fieldPath)

	case reflect.Array:
		se, err := e.EncodeTuple(val.Len())
		if err != nil {
			return err
		}
		return encodeElems(se, val, fieldPath)

	case reflect.Map:
		return encodeMap(e, val, fieldPath)

	case reflect.Pointer:
		if val.IsNil() {
			return e.EncodeNone()
		}
		return e.EncodeSome(func(e shape.Encoder) error {
			return encodeValue(e, val.Elem(), fieldPath, bytes)
		})

	case reflect.Interface:
		if val.IsNil() {
			if ei := lookupEnum(typ); ei != nil {
				return &MarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("nil %s enum value", ei.Name)}
			}
			return e.EncodeNone()
		}
		return encodeValue(e, val.Elem(), fieldPath, bytes)

	case reflect.Struct:
		si, err := getStructInfo(typ)
		if err != nil {
			return &MarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
		}
		return encodeStruct(e, val, si, fieldPath)
	}
	return &MarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("unsupported type: %s", typ),
		Err:       ErrUnsupported,
	}
}

func encodeElems(se shape.SeqEncoder, val reflect.Value, fieldPath string) error {
	for i := range val.Len() {
		path := joinPath(fieldPath, fmt.Sprintf("[%d]", i))
		if err := se.Element(func(e shape.Encoder) error {
			return encodeValue(e, val.Index(i), path, false)
		}); err != nil {
			return err
		}
	}
	return se.End()
}

func encodeMap(e shape.Encoder, val reflect.Value, fieldPath string) error {
	me, err := e.EncodeMap(val.Len())
	if err != nil {
		return err
	}
	keys := val.MapKeys()
	slices.SortFunc(keys, compareKeys)
	for _, k := range keys {
		if err := me.Key(func(e shape.Encoder) error {
			return encodeValue(e, k, fieldPath, false)
		}); err != nil {
			return err
		}
		path := joinPath(fieldPath, fmt.Sprint(k.Interface()))
		if err := me.Value(func(e shape.Encoder) error {
			return encodeValue(e, val.MapIndex(k), path, false)
		}); err != nil {
			return err
		}
	}
	return me.End()
}

// compareKeys orders map keys so output does not depend on map iteration.
func compareKeys(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.String:
		return strings.Compare(a.String(), b.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.Bool:
		switch {
		case a.Bool() == b.Bool():
			return 0
		case a.Bool():
			return 1
		}
		return -1
	}
	return strings.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.String, reflect.Array:
		return v.Len() == 0
	}
	return v.IsZero()
}

func encodeStruct(e shape.Encoder, val reflect.Value, si *structInfo, fieldPath string) error {
	switch si.Form {
	case formUnit:
		return e.EncodeUnitStruct(si.Name)
	case formNewtype:
		f := &si.Fields[0]
		return e.EncodeNewtypeStruct(si.Name, func(e shape.Encoder) error {
			return encodeValue(e, val.FieldByIndex(f.Index), joinPath(fieldPath, f.Key), f.Bytes)
		})
	case formTuple:
		se, err := e.EncodeTupleStruct(si.Name, len(si.Fields))
		if err != nil {
			return err
		}
		return encodeTupleFields(se, val, si, fieldPath)
	}
	st, err := e.EncodeStruct(si.Name, countFields(val, si))
	if err != nil {
		return err
	}
	return encodeFields(st, val, si, fieldPath)
}

func countFields(val reflect.Value, si *structInfo) int {
	n := 0
	for i := range si.Fields {
		f := &si.Fields[i]
		if !f.OmitEmpty || !isEmpty(val.FieldByIndex(f.Index)) {
			n++
		}
	}
	return n
}

func encodeFields(st shape.StructEncoder, val reflect.Value, si *structInfo, fieldPath string) error {
	for i := range si.Fields {
		f := &si.Fields[i]
		fv := val.FieldByIndex(f.Index)
		if f.OmitEmpty && isEmpty(fv) {
			continue
		}
		if err := st.Field(f.Key, func(e shape.Encoder) error {
			return encodeValue(e, fv, joinPath(fieldPath, f.Key), f.Bytes)
		}); err != nil {
			return err
		}
	}
	return st.End()
}

func encodeTupleFields(se shape.SeqEncoder, val reflect.Value, si *structInfo, fieldPath string) error {
	for i := range si.Fields {
		f := &si.Fields[i]
		if err := se.Element(func(e shape.Encoder) error {
			return encodeValue(e, val.FieldByIndex(f.Index), joinPath(fieldPath, f.Key), f.Bytes)
		}); err != nil {
			return err
		}
	}
	return se.End()
}

func encodeVariant(e shape.Encoder, val reflect.Value, vi *variantInfo, fieldPath string) error {
	path := joinPath(fieldPath, vi.name)
	enum := vi.Enum.Name
	var si *structInfo
	if vi.kind == tupleKind || vi.kind == structKind {
		var err error
		if si, err = getStructInfo(vi.typ); err != nil {
			return &MarshalError{FieldPath: path, Message: err.Error(), Err: err}
		}
	}
	if vi.Enum.Untagged {
		switch vi.kind {
		case unitKind:
			return e.EncodeUnit()
		case newtypeKind:
			return encodePlain(e, val, path, false)
		case tupleKind:
			se, err := e.EncodeTuple(len(si.Fields))
			if err != nil {
				return err
			}
			return encodeTupleFields(se, val, si, path)
		}
		st, err := e.EncodeStruct(vi.name, countFields(val, si))
		if err != nil {
			return err
		}
		return encodeFields(st, val, si, path)
	}
	switch vi.kind {
	case unitKind:
		return e.EncodeUnitVariant(enum, vi.name)
	case newtypeKind:
		return e.EncodeNewtypeVariant(enum, vi.name, func(e shape.Encoder) error {
			return encodePlain(e, val, path, false)
		})
	case tupleKind:
		se, err := e.EncodeTupleVariant(enum, vi.name, len(si.Fields))
		if err != nil {
			return err
		}
		return encodeTupleFields(se, val, si, path)
	}
	st, err := e.EncodeStructVariant(enum, vi.name, countFields(val, si))
	if err != nil {
		return err
	}
	return encodeFields(st, val, si, path)
}
