package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func keyStrings(m *Map) []string {
	var res []string
	for k := range m.All() {
		res = append(res, k.String)
	}
	return res
}

func TestMapOrders(t *testing.T) {
	in := []string{"c", "a", "b", "a"}
	sorted, ordered := NewMap(), NewOrderedMap()
	for i, k := range in {
		sorted.Insert(FromString(k), FromInt(int64(i)))
		ordered.Insert(FromString(k), FromInt(int64(i)))
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, keyStrings(sorted)); diff != "" {
		t.Errorf("sorted (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"c", "a", "b"}, keyStrings(ordered)); diff != "" {
		t.Errorf("ordered (-want +got):\n%s", diff)
	}
	if v, _ := ordered.GetString("a"); !Equal(v, FromInt(3)) {
		t.Errorf("a = %#v, want last insert", v)
	}
}

func TestMapOps(t *testing.T) {
	for _, m := range []*Map{NewMap(), NewOrderedMap()} {
		if _, had := m.Insert(FromInt(1), FromString("one")); had {
			t.Error("fresh insert reported a previous value")
		}
		old, had := m.Insert(FromInt(1), FromString("uno"))
		if !had || old.String != "one" {
			t.Errorf("replace: got %#v %v", old, had)
		}
		m.Insert(FromChar('x'), Unit())
		m.Insert(FromFloat(2.5), None())
		if m.Len() != 3 {
			t.Errorf("len %d", m.Len())
		}
		v, ok := m.Remove(FromChar('x'))
		if !ok || v.Type != UnitType {
			t.Errorf("remove: %#v %v", v, ok)
		}
		if _, ok := m.Get(FromChar('x')); ok {
			t.Error("removed key still present")
		}
		if v, ok := m.Get(FromFloat(2.5)); !ok || v.Type != OptionType {
			t.Errorf("get after remove: %#v %v", v, ok)
		}
		c := m.Clone()
		c.Insert(FromString("new"), Unit())
		if m.Len() != 2 || c.Len() != 3 || c.Ordered() != m.Ordered() {
			t.Error("clone shares state")
		}
	}
}

func TestMapNaNKey(t *testing.T) {
	m := NewOrderedMap()
	m.Insert(FromFloat(nan()), FromInt(1))
	if v, ok := m.Get(FromFloat(nan())); !ok || !Equal(v, FromInt(1)) {
		t.Error("NaN key not found")
	}
}
