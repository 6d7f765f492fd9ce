package gomap

import (
	"fmt"
	"reflect"

	"github.com/liabri/zmerald/debug"
	"github.com/liabri/zmerald/ir"
	"github.com/liabri/zmerald/shape"
)

var (
	unmarshalerType = reflect.TypeFor[shape.Unmarshaler]()
	marshalerType   = reflect.TypeFor[shape.Marshaler]()
	charType        = reflect.TypeFor[Char]()
)

// Char is a rune bound to the char shape. A plain rune is an int32.
type Char rune

// Decode fills the value v points to from d.
func Decode(d shape.Decoder, v any) error {
	if v == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer {
		return &UnmarshalError{Message: fmt.Sprintf("destination value must be a pointer, got %T", v)}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	// decode into a copy so a failure leaves *v as it was
	tmp := reflect.New(val.Elem().Type()).Elem()
	tmp.Set(val.Elem())
	if err := decodeValue(d, tmp, "", false); err != nil {
		return err
	}
	val.Elem().Set(tmp)
	return nil
}

// decodeValue fills the settable val from d. bytes selects the byte
// buffer form of []byte.
func decodeValue(d shape.Decoder, val reflect.Value, fieldPath string, bytes bool) error {
	typ := val.Type()
	if val.CanAddr() && reflect.PointerTo(typ).Implements(unmarshalerType) {
		return val.Addr().Interface().(shape.Unmarshaler).UnmarshalZmr(d)
	}
	switch typ.Kind() {
	case reflect.Bool:
		return d.DecodeBool(&boolVisitor{base("a boolean"), val})

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if typ == charType {
			return d.DecodeChar(&charVisitor{base("a character"), val})
		}
		return d.DecodeInt(typ.Bits(), &intVisitor{base(typ.String()), val, fieldPath})

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return d.DecodeUint(typ.Bits(), &uintVisitor{base(typ.String()), val, fieldPath})

	case reflect.Float32, reflect.Float64:
		return d.DecodeFloat(typ.Bits(), &floatVisitor{base(typ.String()), val})

	case reflect.String:
		return d.DecodeString(&stringVisitor{base("a string"), val})

	case reflect.Slice:
		if bytes {
			return d.DecodeBytes(&bytesVisitor{base("a byte array"), val, fieldPath})
		}
		return d.DecodeSeq(&sliceVisitor{base("a sequence"), val, fieldPath})

	case reflect.Array:
		return d.DecodeTuple(typ.Len(), &arrayVisitor{base(fmt.Sprintf("an array of length %d", typ.Len())), val, fieldPath})

	case reflect.Map:
		return d.DecodeMap(&mapVisitor{base("a map"), val, fieldPath})

	case reflect.Pointer:
		return d.DecodeOption(&optionVisitor{base("an option"), val, fieldPath})

	case reflect.Struct:
		return decodeStruct(d, val, fieldPath)

	case reflect.Interface:
		if ei := lookupEnum(typ); ei != nil {
			return decodeEnum(d, val, ei, fieldPath)
		}
		if typ.NumMethod() != 0 {
			return unsupported(typ, fieldPath)
		}
		v, err := ir.DecodeValue(d, false)
		if err != nil {
			return err
		}
		if debug.Bind() {
			debug.Logf("bind %s: dynamic %s\n", fieldPath, v.Type)
		}
		x := v.Interface()
		if x == nil {
			val.SetZero()
			return nil
		}
		val.Set(reflect.ValueOf(x))
		return nil
	}
	return unsupported(typ, fieldPath)
}

func decodeStruct(d shape.Decoder, val reflect.Value, fieldPath string) error {
	si, err := getStructInfo(val.Type())
	if err != nil {
		return &UnmarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
	}
	switch si.Form {
	case formUnit:
		return d.DecodeUnitStruct(si.Name, &unitVisitor{base("unit struct " + si.Name)})
	case formNewtype:
		return d.DecodeNewtypeStruct(si.Name, &newtypeVisitor{base("newtype struct " + si.Name), val, si, fieldPath})
	case formTuple:
		return d.DecodeTupleStruct(si.Name, len(si.Fields), &tupleVisitor{base("tuple struct " + si.Name), val, si, fieldPath})
	}
	return d.DecodeStruct(si.Name, si.Keys, &structVisitor{base("struct " + si.Name), val, si, fieldPath})
}

func decodeEnum(d shape.Decoder, val reflect.Value, ei *enumInfo, fieldPath string) error {
	if ei.Untagged {
		return d.DecodeUntagged(len(ei.Variants), func(i int, d shape.Decoder) error {
			vi := ei.Variants[i]
			if debug.Bind() {
				debug.Logf("bind %s: trying untagged variant %s\n", fieldPath, vi.name)
			}
			return decodeVariant(d, nil, val, vi, fieldPath)
		})
	}
	return d.DecodeEnum(ei.Name, ei.Names, &enumVisitor{base("enum " + ei.Name), val, ei, fieldPath})
}

// decodeVariant decodes the payload of vi into val. The payload is read
// from va for tagged enums and directly from d for untagged ones.
func decodeVariant(d shape.Decoder, va shape.VariantAccess, val reflect.Value, vi *variantInfo, fieldPath string) error {
	out := reflect.New(vi.typ).Elem()
	path := joinPath(fieldPath, vi.name)
	var err error
	switch vi.kind {
	case unitKind:
		if va != nil {
			err = va.UnitVariant()
		} else {
			err = d.DecodeUnit(&unitVisitor{base("unit variant " + vi.name)})
		}
	case newtypeKind:
		fn := func(d shape.Decoder) error { return decodeValue(d, out, path, false) }
		if va != nil {
			err = va.NewtypeVariant(fn)
		} else {
			err = fn(d)
		}
	case tupleKind, structKind:
		si, serr := getStructInfo(vi.typ)
		if serr != nil {
			return &UnmarshalError{FieldPath: path, Message: serr.Error(), Err: serr}
		}
		switch {
		case vi.kind == tupleKind && va != nil:
			err = va.TupleVariant(len(si.Fields), &tupleVisitor{base("tuple variant " + vi.name), out, si, path})
		case vi.kind == tupleKind:
			err = d.DecodeTuple(len(si.Fields), &tupleVisitor{base("tuple variant " + vi.name), out, si, path})
		case va != nil:
			err = va.StructVariant(si.Keys, &structVisitor{base("struct variant " + vi.name), out, si, path})
		default:
			err = d.DecodeStruct("", si.Keys, &structVisitor{base("struct variant " + vi.name), out, si, path})
		}
	}
	if err != nil {
		return err
	}
	val.Set(out)
	return nil
}

// merge folds a repeated key's value src into dst.
func merge(dst, src reflect.Value) {
	switch dst.Kind() {
	case reflect.Slice:
		dst.Set(reflect.AppendSlice(dst, src))
	case reflect.Map:
		if dst.IsNil() {
			dst.Set(src)
			return
		}
		iter := src.MapRange()
		for iter.Next() {
			dst.SetMapIndex(iter.Key(), iter.Value())
		}
	default:
		dst.Set(src)
	}
}
