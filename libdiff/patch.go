package libdiff

import (
	"errors"
	"fmt"

	"github.com/liabri/zmerald/debug"
	"github.com/liabri/zmerald/encode"
	"github.com/liabri/zmerald/ir"
)

// ErrMismatch reports a change that does not fit the document it is applied to.
var ErrMismatch = errors.New("cannot patch, unexpected value")

func mismatch(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMismatch, fmt.Sprintf(format, args...))
}

// Patch applies c to doc and returns the result. doc is not modified. A nil
// change returns doc unchanged.
func Patch(doc ir.Value, c Change) (ir.Value, error) {
	if debug.Patch() && c != nil {
		debug.Logf("patch %s on %s\n", encode.MustString(c), doc.Describe())
	}
	switch c := c.(type) {
	case nil:
		return doc, nil
	case Replace:
		if !ir.Equal(doc, c.From) {
			return ir.Value{}, mismatch("expected %s, got %s", encode.MustString(c.From), encode.MustString(doc))
		}
		return c.To.Clone(), nil
	case Insert, Delete:
		return ir.Value{}, mismatch("%T outside a map or sequence", c)
	}
	if doc.Type == ir.OptionType && doc.Option != nil {
		inner, err := Patch(*doc.Option, c)
		if err != nil {
			return ir.Value{}, err
		}
		return ir.Some(inner), nil
	}
	switch c := c.(type) {
	case Fields:
		if doc.Type != ir.MapType {
			return ir.Value{}, mismatch("field changes on %s", doc.Describe())
		}
		return patchMap(doc.Map, c)
	case Elements:
		if doc.Type != ir.SeqType {
			return ir.Value{}, mismatch("element changes on %s", doc.Describe())
		}
		return patchSeq(doc.Seq, c)
	case Text:
		if doc.Type != ir.StringType {
			return ir.Value{}, mismatch("text edits on %s", doc.Describe())
		}
		s, err := PatchString(doc.String, c)
		if err != nil {
			return ir.Value{}, err
		}
		return ir.FromString(s), nil
	}
	return ir.Value{}, fmt.Errorf("unknown change %T", c)
}

func patchMap(m *ir.Map, fields Fields) (ir.Value, error) {
	res := m.Clone()
	for _, e := range fields {
		cur, ok := res.Get(e.Key)
		switch c := e.Change.(type) {
		case Insert:
			if ok {
				return ir.Value{}, mismatch("key %s already present", encode.MustString(e.Key))
			}
			res.Insert(e.Key, c.Value.Clone())
		case Delete:
			if !ok {
				return ir.Value{}, mismatch("key %s not present", encode.MustString(e.Key))
			}
			if !ir.Equal(cur, c.Value) {
				return ir.Value{}, mismatch("key %s: expected %s, got %s", encode.MustString(e.Key), encode.MustString(c.Value), encode.MustString(cur))
			}
			res.Remove(e.Key)
		default:
			if !ok {
				return ir.Value{}, mismatch("key %s not present", encode.MustString(e.Key))
			}
			v, err := Patch(cur, c)
			if err != nil {
				return ir.Value{}, fmt.Errorf("key %s: %w", encode.MustString(e.Key), err)
			}
			res.Insert(e.Key, v)
		}
	}
	return ir.FromMap(res), nil
}

func patchSeq(doc []ir.Value, elems Elements) (ir.Value, error) {
	res := make([]ir.Value, 0, len(doc))
	di := 0
	left := len(elems)
	for i := 0; left > 0 || di < len(doc); i++ {
		c, ok := elems[i]
		if !ok {
			if di >= len(doc) {
				return ir.Value{}, mismatch("change at %d past the end of the sequence", i)
			}
			res = append(res, doc[di])
			di++
			continue
		}
		left--
		if _, ins := c.(Insert); ins {
			res = append(res, c.(Insert).Value.Clone())
			continue
		}
		if di >= len(doc) {
			return ir.Value{}, mismatch("change at %d past the end of the sequence", i)
		}
		if del, ok := c.(Delete); ok {
			if !ir.Equal(doc[di], del.Value) {
				return ir.Value{}, mismatch("[%d]: expected %s, got %s", di, encode.MustString(del.Value), encode.MustString(doc[di]))
			}
			di++
			continue
		}
		v, err := Patch(doc[di], c)
		if err != nil {
			return ir.Value{}, fmt.Errorf("[%d]: %w", di, err)
		}
		res = append(res, v)
		di++
	}
	return ir.FromSeq(res), nil
}
