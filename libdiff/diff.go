package libdiff

import (
	"github.com/liabri/zmerald/ir"
)

// Diff returns the change turning from into to, or nil if they are equal.
func Diff(from, to ir.Value) Change {
	if ir.Equal(from, to) {
		return nil
	}
	if from.Type != to.Type {
		return Replace{From: from, To: to}
	}
	switch from.Type {
	case ir.MapType:
		return DiffMap(from.Map, to.Map)
	case ir.SeqType:
		return DiffSeq(from.Seq, to.Seq)
	case ir.StringType:
		return DiffString(from.String, to.String)
	case ir.OptionType:
		if from.Option != nil && to.Option != nil {
			return Diff(*from.Option, *to.Option)
		}
	}
	return Replace{From: from, To: to}
}

// DiffMap compares maps key by key. Keys present in from come first, in from's
// order, followed by keys only in to.
func DiffMap(from, to *ir.Map) Change {
	var res Fields
	for k, fv := range from.All() {
		tv, ok := to.Get(k)
		if !ok {
			res = append(res, Entry{Key: k, Change: Delete{Value: fv}})
			continue
		}
		if c := Diff(fv, tv); c != nil {
			res = append(res, Entry{Key: k, Change: c})
		}
	}
	for k, tv := range to.All() {
		if _, ok := from.Get(k); !ok {
			res = append(res, Entry{Key: k, Change: Insert{Value: tv}})
		}
	}
	if len(res) == 0 {
		return nil
	}
	return res
}
