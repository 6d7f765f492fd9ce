package gomap

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// TagName is the struct tag key read by this package.
const TagName = "zmr"

// configField names the struct{} field whose tag configures its struct.
const configField = "_zmr"

type structForm int

const (
	formStruct structForm = iota
	formTuple
	formNewtype
	formUnit
)

// fieldInfo holds field metadata extracted from struct tags
type fieldInfo struct {
	// Name is the Go field name
	Name string
	// Key is the name written in documents
	Key   string
	Index []int
	Type  reflect.Type

	OmitEmpty bool
	// Bytes selects the base64 byte buffer form for []byte
	Bytes bool
}

type structInfo struct {
	Name   string
	Form   structForm
	Fields []fieldInfo
	// Keys lists Fields' keys in order
	Keys  []string
	byKey map[string]int
}

func (si *structInfo) field(key string) (*fieldInfo, bool) {
	i, ok := si.byKey[key]
	if !ok {
		return nil, false
	}
	return &si.Fields[i], true
}

var structCache sync.Map // reflect.Type -> *structInfo

// getStructInfo returns the cached binding of struct type t.
func getStructInfo(t reflect.Type) (*structInfo, error) {
	if si, ok := structCache.Load(t); ok {
		return si.(*structInfo), nil
	}
	si, err := buildStructInfo(t)
	if err != nil {
		return nil, err
	}
	actual, _ := structCache.LoadOrStore(t, si)
	return actual.(*structInfo), nil
}

// parseTag splits a zmr tag into its name and flag set.
func parseTag(tag string) (string, map[string]bool) {
	parts := strings.Split(tag, ",")
	flags := make(map[string]bool, len(parts)-1)
	for _, p := range parts[1:] {
		if p = strings.TrimSpace(p); p != "" {
			flags[p] = true
		}
	}
	return strings.TrimSpace(parts[0]), flags
}

func buildStructInfo(t reflect.Type) (*structInfo, error) {
	si := &structInfo{Name: t.Name(), byKey: map[string]int{}}
	if err := collectFields(t, nil, si); err != nil {
		return nil, err
	}
	if cfg, ok := t.FieldByName(configField); ok && len(cfg.Index) == 1 {
		name, flags := parseTag(cfg.Tag.Get(TagName))
		if name != "" {
			si.Name = name
		}
		switch {
		case flags["tuple"] && flags["newtype"]:
			return nil, fmt.Errorf("%w: %s: tuple and newtype are exclusive", ErrUnsupported, t)
		case flags["tuple"]:
			si.Form = formTuple
		case flags["newtype"]:
			if len(si.Fields) != 1 {
				return nil, fmt.Errorf("%w: %s: newtype needs exactly one field, has %d", ErrUnsupported, t, len(si.Fields))
			}
			si.Form = formNewtype
		}
	}
	if si.Form == formStruct && len(si.Fields) == 0 {
		si.Form = formUnit
	}
	for i := range si.Fields {
		si.Keys = append(si.Keys, si.Fields[i].Key)
	}
	return si, nil
}

// collectFields appends the exported fields of t, descending into
// untagged embedded structs.
func collectFields(t reflect.Type, index []int, si *structInfo) error {
	for i := range t.NumField() {
		f := t.Field(i)
		tag, hasTag := f.Tag.Lookup(TagName)
		if tag == "-" || f.Name == configField {
			continue
		}
		idx := append(append([]int(nil), index...), i)
		if f.Anonymous && !hasTag && f.Type.Kind() == reflect.Struct {
			if err := collectFields(f.Type, idx, si); err != nil {
				return err
			}
			continue
		}
		if !f.IsExported() {
			continue
		}
		name, flags := parseTag(tag)
		if name == "" {
			name = f.Name
		}
		if _, dup := si.byKey[name]; dup {
			return fmt.Errorf("%w: %s: duplicate field key %q", ErrUnsupported, t, name)
		}
		fi := fieldInfo{
			Name:      f.Name,
			Key:       name,
			Index:     idx,
			Type:      f.Type,
			OmitEmpty: flags["omitempty"],
			Bytes:     flags["bytes"],
		}
		if fi.Bytes && (f.Type.Kind() != reflect.Slice || f.Type.Elem().Kind() != reflect.Uint8) {
			return fmt.Errorf("%w: %s.%s: bytes applies to []byte only", ErrUnsupported, t, f.Name)
		}
		si.byKey[name] = len(si.Fields)
		si.Fields = append(si.Fields, fi)
	}
	return nil
}
