package ir

import (
	"iter"
	"slices"
)

type KeyVal struct {
	Key Value
	Val Value
}

// Map is a map from Value to Value with a defined iteration order.
//
// A sorted map (NewMap) keeps entries sorted by Compare on the key. An
// ordered map (NewOrderedMap) keeps them in first insertion order; lookups
// go through a hash index. The zero Map is an empty sorted map.
type Map struct {
	ordered bool
	kvs     []KeyVal
	index   map[uint64][]int
}

func NewMap() *Map {
	return &Map{}
}

func NewOrderedMap() *Map {
	return &Map{ordered: true, index: map[uint64][]int{}}
}

// MapFromKeyVals builds a sorted map; later duplicates win.
func MapFromKeyVals(kvs []KeyVal) *Map {
	m := NewMap()
	for _, kv := range kvs {
		m.Insert(kv.Key, kv.Val)
	}
	return m
}

func (m *Map) Ordered() bool {
	return m != nil && m.ordered
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.kvs)
}

func (m *Map) entries() []KeyVal {
	if m == nil {
		return nil
	}
	return m.kvs
}

// find returns the position of k, or where it would be inserted and false.
func (m *Map) find(k Value) (int, bool) {
	if m == nil {
		return 0, false
	}
	if !m.ordered {
		return slices.BinarySearchFunc(m.kvs, k, func(kv KeyVal, k Value) int {
			return Compare(kv.Key, k)
		})
	}
	for _, i := range m.index[k.Hash()] {
		if Equal(m.kvs[i].Key, k) {
			return i, true
		}
	}
	return len(m.kvs), false
}

// Insert sets k to v, returning the previous value if there was one. An
// ordered map keeps the original position of a replaced key.
func (m *Map) Insert(k, v Value) (Value, bool) {
	i, ok := m.find(k)
	if ok {
		old := m.kvs[i].Val
		m.kvs[i].Val = v
		return old, true
	}
	if m.ordered {
		h := k.Hash()
		m.index[h] = append(m.index[h], len(m.kvs))
		m.kvs = append(m.kvs, KeyVal{Key: k, Val: v})
		return Value{}, false
	}
	m.kvs = slices.Insert(m.kvs, i, KeyVal{Key: k, Val: v})
	return Value{}, false
}

func (m *Map) Get(k Value) (Value, bool) {
	i, ok := m.find(k)
	if !ok {
		return Value{}, false
	}
	return m.kvs[i].Val, true
}

// GetString is Get with a string key.
func (m *Map) GetString(k string) (Value, bool) {
	return m.Get(FromString(k))
}

func (m *Map) Remove(k Value) (Value, bool) {
	i, ok := m.find(k)
	if !ok {
		return Value{}, false
	}
	old := m.kvs[i].Val
	m.kvs = slices.Delete(m.kvs, i, i+1)
	if m.ordered {
		m.reindex()
	}
	return old, true
}

func (m *Map) reindex() {
	clear(m.index)
	for i := range m.kvs {
		h := m.kvs[i].Key.Hash()
		m.index[h] = append(m.index[h], i)
	}
}

func (m *Map) Keys() []Value {
	res := make([]Value, 0, m.Len())
	for _, kv := range m.entries() {
		res = append(res, kv.Key)
	}
	return res
}

func (m *Map) Values() []Value {
	res := make([]Value, 0, m.Len())
	for _, kv := range m.entries() {
		res = append(res, kv.Val)
	}
	return res
}

// KeyVals returns a copy of the entries in iteration order.
func (m *Map) KeyVals() []KeyVal {
	return slices.Clone(m.entries())
}

// All iterates over the entries in the map's order.
func (m *Map) All() iter.Seq2[Value, Value] {
	return func(yield func(Value, Value) bool) {
		for _, kv := range m.entries() {
			if !yield(kv.Key, kv.Val) {
				return
			}
		}
	}
}

// Clone returns a deep copy of m with the same ordering mode.
func (m *Map) Clone() *Map {
	if m == nil {
		return NewMap()
	}
	res := &Map{ordered: m.ordered, kvs: make([]KeyVal, len(m.kvs))}
	for i, kv := range m.kvs {
		res.kvs[i] = KeyVal{Key: kv.Key.Clone(), Val: kv.Val.Clone()}
	}
	if m.ordered {
		res.index = make(map[uint64][]int, len(m.index))
		res.reindex()
	}
	return res
}

// Equal reports whether m and o have the same length and pairwise equal
// entries in iteration order.
func (m *Map) Equal(o *Map) bool {
	return compareMaps(m, o) == 0
}
