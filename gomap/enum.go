package gomap

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

type variantKind int

const (
	unitKind variantKind = iota
	newtypeKind
	tupleKind
	structKind
)

func (k variantKind) String() string {
	switch k {
	case unitKind:
		return "unit"
	case newtypeKind:
		return "newtype"
	case tupleKind:
		return "tuple"
	}
	return "struct"
}

// Variant describes one variant of an enum; build it with UnitVariant,
// NewtypeVariant, TupleVariant or StructVariant.
type Variant struct {
	name string
	kind variantKind
	typ  reflect.Type
}

// UnitVariant declares a variant without payload. T is usually an empty
// struct.
func UnitVariant[T any](name string) Variant {
	return Variant{name: name, kind: unitKind, typ: reflect.TypeFor[T]()}
}

// NewtypeVariant declares a variant whose payload is a T.
func NewtypeVariant[T any](name string) Variant {
	return Variant{name: name, kind: newtypeKind, typ: reflect.TypeFor[T]()}
}

// TupleVariant declares a variant whose payload is the fields of struct T
// in order.
func TupleVariant[T any](name string) Variant {
	return Variant{name: name, kind: tupleKind, typ: reflect.TypeFor[T]()}
}

// StructVariant declares a variant whose payload is the fields of struct
// T by name.
func StructVariant[T any](name string) Variant {
	return Variant{name: name, kind: structKind, typ: reflect.TypeFor[T]()}
}

type enumInfo struct {
	Name     string
	Untagged bool
	Variants []*variantInfo
	Names    []string
	byName   map[string]*variantInfo
}

type variantInfo struct {
	Enum *enumInfo
	Variant
}

var registry = struct {
	sync.RWMutex
	enums    map[reflect.Type]*enumInfo
	variants map[reflect.Type]*variantInfo
}{
	enums:    map[reflect.Type]*enumInfo{},
	variants: map[reflect.Type]*variantInfo{},
}

// RegisterEnum registers interface type E as an enum with the given
// variants. Documents name the variant: Circle(1.5).
//
// It panics if E is not an interface, a variant type does not implement E,
// or a name or type is registered twice. Call it from init.
func RegisterEnum[E any](variants ...Variant) {
	register(reflect.TypeFor[E](), false, variants)
}

// RegisterUntaggedEnum registers E like RegisterEnum, but documents carry
// only the payload and decoding picks the first variant that accepts it.
func RegisterUntaggedEnum[E any](variants ...Variant) {
	register(reflect.TypeFor[E](), true, variants)
}

func register(et reflect.Type, untagged bool, variants []Variant) {
	if et.Kind() != reflect.Interface {
		panic(fmt.Sprintf("gomap: enum type %s is not an interface", et))
	}
	ei := &enumInfo{Name: et.Name(), Untagged: untagged, byName: map[string]*variantInfo{}}
	for _, v := range variants {
		if !v.typ.Implements(et) {
			panic(fmt.Sprintf("gomap: variant %s (%s) does not implement %s", v.name, v.typ, et))
		}
		if (v.kind == tupleKind || v.kind == structKind) && v.typ.Kind() != reflect.Struct {
			panic(fmt.Sprintf("gomap: %s variant %s needs a struct type, got %s", v.kind, v.name, v.typ))
		}
		if _, dup := ei.byName[v.name]; dup {
			panic(fmt.Sprintf("gomap: enum %s: duplicate variant %s", et, v.name))
		}
		vi := &variantInfo{Enum: ei, Variant: v}
		ei.byName[v.name] = vi
		ei.Variants = append(ei.Variants, vi)
		ei.Names = append(ei.Names, v.name)
	}

	registry.Lock()
	defer registry.Unlock()
	if _, dup := registry.enums[et]; dup {
		panic(fmt.Sprintf("gomap: enum %s registered twice", et))
	}
	for _, vi := range ei.Variants {
		if prev, dup := registry.variants[vi.typ]; dup {
			panic(fmt.Sprintf("gomap: %s is already variant %s of %s", vi.typ, prev.name, prev.Enum.Name))
		}
	}
	registry.enums[et] = ei
	for _, vi := range ei.Variants {
		registry.variants[vi.typ] = vi
	}
}

func lookupEnum(t reflect.Type) *enumInfo {
	registry.RLock()
	defer registry.RUnlock()
	return registry.enums[t]
}

func lookupVariant(t reflect.Type) *variantInfo {
	registry.RLock()
	defer registry.RUnlock()
	return registry.variants[t]
}

func (ei *enumInfo) variant(name, fieldPath string) (*variantInfo, error) {
	if vi, ok := ei.byName[name]; ok {
		return vi, nil
	}
	return nil, &UnmarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("unknown variant `%s`, expected one of %s", name, strings.Join(ei.Names, ", ")),
		Err:       ErrUnknownVariant,
	}
}
