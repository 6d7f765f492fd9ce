package libdiff

import (
	"github.com/liabri/zmerald/ir"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffSeq aligns two sequences and reports the changed positions.
//
// Elements are reduced to runes that identify them: leaves by content,
// containers by type, so that a changed map or sequence is aligned with its
// counterpart and diffed recursively rather than deleted and reinserted.
func DiffSeq(from, to []ir.Value) Change {
	fr, tr := summarize(from, to)
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(fr, tr, false)

	res := Elements{}
	ri, fi, ti := 0, 0, 0
	lastDel := -1
	for _, d := range diffs {
		n := len([]rune(d.Text))
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for range n {
				res[ri] = Delete{Value: from[fi]}
				lastDel = ri
				ri++
				fi++
			}
		case diffmatchpatch.DiffInsert:
			for range n {
				if lastDel >= 0 && lastDel == ri-1 {
					del := res[lastDel].(Delete)
					if c := pairUp(del.Value, to[ti]); c != nil {
						res[lastDel] = c
					} else {
						delete(res, lastDel)
					}
					lastDel = -1
					ti++
					continue
				}
				res[ri] = Insert{Value: to[ti]}
				lastDel = -1
				ri++
				ti++
			}
		case diffmatchpatch.DiffEqual:
			lastDel = -1
			for range n {
				if c := Diff(from[fi], to[ti]); c != nil {
					res[ri] = c
				}
				ri++
				fi++
				ti++
			}
		}
	}
	if len(res) == 0 {
		return nil
	}
	return res
}

// pairUp merges an adjacent delete and insert into a single change.
func pairUp(from, to ir.Value) Change {
	if from.Type == to.Type && !from.Type.IsLeaf() || from.Type == ir.StringType && to.Type == ir.StringType {
		return Diff(from, to)
	}
	return Replace{From: from, To: to}
}

func summarize(from, to []ir.Value) ([]rune, []rune) {
	ids := map[string]rune{}
	next := rune(0xE000)
	sum := func(vs []ir.Value) []rune {
		rs := make([]rune, len(vs))
		for i, v := range vs {
			key := v.Type.String()
			if v.Type.IsLeaf() {
				key = v.GoString()
			}
			r, ok := ids[key]
			if !ok {
				r = next
				next++
				ids[key] = r
			}
			rs[i] = r
		}
		return rs
	}
	return sum(from), sum(to)
}
