package libdiff

import (
	"strings"
	"unicode/utf8"

	"github.com/liabri/zmerald/ir"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString returns a Text change when the strings share enough content,
// and a Replace otherwise. Multi-line strings are diffed line by line.
func DiffString(from, to string) Change {
	if from == to {
		return nil
	}
	dmp := diffmatchpatch.New()
	var diffs []diffmatchpatch.Diff
	if strings.Contains(from, "\n") && strings.Contains(to, "\n") {
		fr, tr, lines := dmp.DiffLinesToRunes(from, to)
		diffs = dmp.DiffCharsToLines(dmp.DiffMainRunes(fr, tr, false), lines)
	} else {
		diffs = dmp.DiffCleanupSemantic(dmp.DiffMain(from, to, false))
	}
	size := 0
	edits := make(Text, 0, len(diffs))
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			edits = append(edits, Keep(utf8.RuneCountInString(d.Text)))
		case diffmatchpatch.DiffInsert:
			size += utf8.RuneCountInString(d.Text)
			edits = append(edits, Ins(d.Text))
		case diffmatchpatch.DiffDelete:
			size += utf8.RuneCountInString(d.Text)
			edits = append(edits, Del(d.Text))
		}
	}
	if size > min(utf8.RuneCountInString(from), utf8.RuneCountInString(to))/2 {
		return Replace{From: ir.FromString(from), To: ir.FromString(to)}
	}
	return edits
}

// PatchString applies edits to s.
func PatchString(s string, edits Text) (string, error) {
	rs := []rune(s)
	var b strings.Builder
	i := 0
	for _, e := range edits {
		switch e := e.(type) {
		case Keep:
			n := int(e)
			if n < 0 || i+n > len(rs) {
				return "", mismatch("keep %d runes at offset %d of %d", n, i, len(rs))
			}
			b.WriteString(string(rs[i : i+n]))
			i += n
		case Ins:
			b.WriteString(string(e))
		case Del:
			d := []rune(string(e))
			if i+len(d) > len(rs) || string(rs[i:i+len(d)]) != string(e) {
				return "", mismatch("delete %q at offset %d", string(e), i)
			}
			i += len(d)
		}
	}
	if i != len(rs) {
		return "", mismatch("%d runes left after edits", len(rs)-i)
	}
	return b.String(), nil
}
