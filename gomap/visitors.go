package gomap

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"fortio.org/safecast"
	"github.com/liabri/zmerald/debug"
	"github.com/liabri/zmerald/shape"
)

func base(expect string) shape.BaseVisitor {
	return shape.BaseVisitor{Expect: expect}
}

type boolVisitor struct {
	shape.BaseVisitor
	val reflect.Value
}

func (v *boolVisitor) VisitBool(b bool) error {
	v.val.SetBool(b)
	return nil
}

// checkInt reports whether i fits the width of kind k.
func checkInt(i int64, k reflect.Kind) error {
	var err error
	switch k {
	case reflect.Int8:
		_, err = safecast.Conv[int8](i)
	case reflect.Int16:
		_, err = safecast.Conv[int16](i)
	case reflect.Int32:
		_, err = safecast.Conv[int32](i)
	case reflect.Int:
		_, err = safecast.Conv[int](i)
	}
	return err
}

func checkUint(u uint64, k reflect.Kind) error {
	var err error
	switch k {
	case reflect.Uint8:
		_, err = safecast.Conv[uint8](u)
	case reflect.Uint16:
		_, err = safecast.Conv[uint16](u)
	case reflect.Uint32:
		_, err = safecast.Conv[uint32](u)
	case reflect.Uint, reflect.Uintptr:
		_, err = safecast.Conv[uint](u)
	}
	return err
}

type intVisitor struct {
	shape.BaseVisitor
	val       reflect.Value
	fieldPath string
}

func (v *intVisitor) VisitInt(i int64) error {
	if err := checkInt(i, v.val.Kind()); err != nil {
		return &UnmarshalError{
			FieldPath: v.fieldPath,
			Message:   fmt.Sprintf("value %d overflows %s", i, v.val.Type()),
			Err:       err,
		}
	}
	v.val.SetInt(i)
	return nil
}

func (v *intVisitor) VisitUint(u uint64) error {
	i, err := safecast.Conv[int64](u)
	if err != nil {
		return &UnmarshalError{
			FieldPath: v.fieldPath,
			Message:   fmt.Sprintf("value %d overflows %s", u, v.val.Type()),
			Err:       err,
		}
	}
	return v.VisitInt(i)
}

type uintVisitor struct {
	shape.BaseVisitor
	val       reflect.Value
	fieldPath string
}

func (v *uintVisitor) VisitUint(u uint64) error {
	if err := checkUint(u, v.val.Kind()); err != nil {
		return &UnmarshalError{
			FieldPath: v.fieldPath,
			Message:   fmt.Sprintf("value %d overflows %s", u, v.val.Type()),
			Err:       err,
		}
	}
	v.val.SetUint(u)
	return nil
}

func (v *uintVisitor) VisitInt(i int64) error {
	if i < 0 {
		return &UnmarshalError{
			FieldPath: v.fieldPath,
			Message:   fmt.Sprintf("negative value %d cannot be converted to %s", i, v.val.Type()),
		}
	}
	return v.VisitUint(uint64(i))
}

type floatVisitor struct {
	shape.BaseVisitor
	val reflect.Value
}

func (v *floatVisitor) VisitFloat(f float64) error {
	v.val.SetFloat(f)
	return nil
}

func (v *floatVisitor) VisitInt(i int64) error {
	v.val.SetFloat(float64(i))
	return nil
}

func (v *floatVisitor) VisitUint(u uint64) error {
	v.val.SetFloat(float64(u))
	return nil
}

type charVisitor struct {
	shape.BaseVisitor
	val reflect.Value
}

func (v *charVisitor) VisitChar(r rune) error {
	v.val.SetInt(int64(r))
	return nil
}

func (v *charVisitor) VisitString(s string) error {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || n != len(s) {
		return v.BaseVisitor.VisitString(s)
	}
	return v.VisitChar(r)
}

type stringVisitor struct {
	shape.BaseVisitor
	val reflect.Value
}

func (v *stringVisitor) VisitString(s string) error {
	v.val.SetString(s)
	return nil
}

func (v *stringVisitor) VisitChar(r rune) error {
	v.val.SetString(string(r))
	return nil
}

type identVisitor struct {
	shape.BaseVisitor
	out *string
}

func (v *identVisitor) VisitString(s string) error {
	*v.out = s
	return nil
}

func (v *identVisitor) VisitChar(r rune) error {
	*v.out = string(r)
	return nil
}

func decodeIdent(d shape.Decoder, out *string) error {
	return d.DecodeIdentifier(&identVisitor{base("an identifier"), out})
}

type bytesVisitor struct {
	shape.BaseVisitor
	val       reflect.Value
	fieldPath string
}

func (v *bytesVisitor) VisitBytes(b []byte) error {
	v.val.SetBytes(append([]byte(nil), b...))
	return nil
}

// VisitSeq accepts the [1, 2, 3] spelling of a byte buffer.
func (v *bytesVisitor) VisitSeq(a shape.SeqAccess) error {
	return (&sliceVisitor{v.BaseVisitor, v.val, v.fieldPath}).VisitSeq(a)
}

type sliceVisitor struct {
	shape.BaseVisitor
	val       reflect.Value
	fieldPath string
}

func (v *sliceVisitor) VisitSeq(a shape.SeqAccess) error {
	typ := v.val.Type()
	out := reflect.MakeSlice(typ, 0, 0)
	for i := 0; ; i++ {
		elem := reflect.New(typ.Elem()).Elem()
		more, err := a.NextElement(func(d shape.Decoder) error {
			return decodeValue(d, elem, joinPath(v.fieldPath, fmt.Sprintf("[%d]", i)), false)
		})
		if err != nil {
			return err
		}
		if !more {
			break
		}
		out = reflect.Append(out, elem)
	}
	v.val.Set(out)
	return nil
}

func (v *sliceVisitor) VisitBytes(b []byte) error {
	if v.val.Type().Elem().Kind() != reflect.Uint8 {
		return v.BaseVisitor.VisitBytes(b)
	}
	v.val.SetBytes(append([]byte(nil), b...))
	return nil
}

// VisitUnit accepts (), the dynamic form of an empty tuple.
func (v *sliceVisitor) VisitUnit() error {
	v.val.Set(reflect.MakeSlice(v.val.Type(), 0, 0))
	return nil
}

type arrayVisitor struct {
	shape.BaseVisitor
	val       reflect.Value
	fieldPath string
}

func (v *arrayVisitor) VisitSeq(a shape.SeqAccess) error {
	n := v.val.Len()
	for i := range n {
		more, err := a.NextElement(func(d shape.Decoder) error {
			return decodeValue(d, v.val.Index(i), joinPath(v.fieldPath, fmt.Sprintf("[%d]", i)), false)
		})
		if err != nil {
			return err
		}
		if !more {
			return v.length(i)
		}
	}
	more, err := a.NextElement(shape.Ignore)
	if err != nil {
		return err
	}
	if more {
		return v.length(n + 1)
	}
	return nil
}

func (v *arrayVisitor) VisitUnit() error {
	if v.val.Len() != 0 {
		return v.length(0)
	}
	return nil
}

func (v *arrayVisitor) length(got int) error {
	return &UnmarshalError{
		FieldPath: v.fieldPath,
		Message:   fmt.Sprintf("invalid length %d, expected %s", got, v.Expecting()),
	}
}

type mapVisitor struct {
	shape.BaseVisitor
	val       reflect.Value
	fieldPath string
}

func (v *mapVisitor) VisitMap(a shape.MapAccess) error {
	typ := v.val.Type()
	out := reflect.MakeMap(typ)
	for {
		key := reflect.New(typ.Key()).Elem()
		more, err := a.NextKey(func(d shape.Decoder) error {
			return decodeValue(d, key, v.fieldPath, false)
		})
		if err != nil {
			return err
		}
		if !more {
			break
		}
		elem := reflect.New(typ.Elem()).Elem()
		path := joinPath(v.fieldPath, fmt.Sprint(key.Interface()))
		if err := a.NextValue(func(d shape.Decoder) error {
			return decodeValue(d, elem, path, false)
		}); err != nil {
			return err
		}
		if prev := out.MapIndex(key); prev.IsValid() {
			merged := reflect.New(typ.Elem()).Elem()
			merged.Set(prev)
			merge(merged, elem)
			elem = merged
		}
		out.SetMapIndex(key, elem)
	}
	v.val.Set(out)
	return nil
}

func (v *mapVisitor) VisitUnit() error {
	v.val.Set(reflect.MakeMap(v.val.Type()))
	return nil
}

type optionVisitor struct {
	shape.BaseVisitor
	val       reflect.Value
	fieldPath string
}

func (v *optionVisitor) VisitNone() error {
	v.val.SetZero()
	return nil
}

func (v *optionVisitor) VisitSome(d shape.Decoder) error {
	p := reflect.New(v.val.Type().Elem())
	if err := decodeValue(d, p.Elem(), v.fieldPath, false); err != nil {
		return err
	}
	v.val.Set(p)
	return nil
}

type unitVisitor struct {
	shape.BaseVisitor
}

func (v *unitVisitor) VisitUnit() error {
	return nil
}

// VisitString accepts the dynamic form of a unit struct, its name.
func (v *unitVisitor) VisitString(string) error {
	return nil
}

func (v *unitVisitor) VisitMap(a shape.MapAccess) error {
	more, err := a.NextKey(shape.Ignore)
	if err != nil {
		return err
	}
	if more {
		return v.BaseVisitor.VisitMap(a)
	}
	return nil
}

func (v *unitVisitor) VisitSeq(a shape.SeqAccess) error {
	more, err := a.NextElement(shape.Ignore)
	if err != nil {
		return err
	}
	if more {
		return v.BaseVisitor.VisitSeq(a)
	}
	return nil
}

type newtypeVisitor struct {
	shape.BaseVisitor
	val       reflect.Value
	si        *structInfo
	fieldPath string
}

func (v *newtypeVisitor) VisitNewtype(d shape.Decoder) error {
	f := &v.si.Fields[0]
	return decodeValue(d, v.val.FieldByIndex(f.Index), joinPath(v.fieldPath, f.Key), f.Bytes)
}

type tupleVisitor struct {
	shape.BaseVisitor
	val       reflect.Value
	si        *structInfo
	fieldPath string
}

func (v *tupleVisitor) VisitSeq(a shape.SeqAccess) error {
	for i := range v.si.Fields {
		f := &v.si.Fields[i]
		more, err := a.NextElement(func(d shape.Decoder) error {
			return decodeValue(d, v.val.FieldByIndex(f.Index), joinPath(v.fieldPath, f.Key), f.Bytes)
		})
		if err != nil {
			return err
		}
		if !more {
			return v.length(i)
		}
	}
	more, err := a.NextElement(shape.Ignore)
	if err != nil {
		return err
	}
	if more {
		return v.length(len(v.si.Fields) + 1)
	}
	return nil
}

func (v *tupleVisitor) VisitUnit() error {
	if len(v.si.Fields) != 0 {
		return v.length(0)
	}
	return nil
}

func (v *tupleVisitor) length(got int) error {
	return &UnmarshalError{
		FieldPath: v.fieldPath,
		Message:   fmt.Sprintf("invalid length %d, expected %s with %d elements", got, v.Expecting(), len(v.si.Fields)),
	}
}

type structVisitor struct {
	shape.BaseVisitor
	val       reflect.Value
	si        *structInfo
	fieldPath string
}

func (v *structVisitor) VisitMap(a shape.MapAccess) error {
	seen := make(map[int]bool, len(v.si.Fields))
	for {
		var key string
		more, err := a.NextKey(func(d shape.Decoder) error {
			return decodeIdent(d, &key)
		})
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		i, ok := v.si.byKey[key]
		if !ok {
			if debug.Bind() {
				debug.Logf("bind %s: ignoring unknown field %q\n", v.fieldPath, key)
			}
			if err := a.NextValue(shape.Ignore); err != nil {
				return err
			}
			continue
		}
		f := &v.si.Fields[i]
		dst := v.val.FieldByIndex(f.Index)
		path := joinPath(v.fieldPath, f.Key)
		if !seen[i] {
			seen[i] = true
			if err := a.NextValue(func(d shape.Decoder) error {
				return decodeValue(d, dst, path, f.Bytes)
			}); err != nil {
				return err
			}
			continue
		}
		tmp := reflect.New(f.Type).Elem()
		if err := a.NextValue(func(d shape.Decoder) error {
			return decodeValue(d, tmp, path, f.Bytes)
		}); err != nil {
			return err
		}
		merge(dst, tmp)
	}
}

// VisitUnit accepts () for a struct whose fields all keep their zero
// values.
func (v *structVisitor) VisitUnit() error {
	return nil
}

type enumVisitor struct {
	shape.BaseVisitor
	val       reflect.Value
	ei        *enumInfo
	fieldPath string
}

func (v *enumVisitor) VisitEnum(a shape.EnumAccess) error {
	var name string
	va, err := a.Variant(func(d shape.Decoder) error {
		return decodeIdent(d, &name)
	})
	if err != nil {
		return err
	}
	vi, err := v.ei.variant(name, v.fieldPath)
	if err != nil {
		return err
	}
	return decodeVariant(nil, va, v.val, vi, v.fieldPath)
}
