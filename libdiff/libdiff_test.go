package libdiff

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/liabri/zmerald/encode"
	"github.com/liabri/zmerald/ir"
	"github.com/liabri/zmerald/parse"
)

type diffTest struct {
	a, b string
	// diff is the canonical encoding of the change, or "" to skip the check.
	diff string
}

var diffTests = []diffTest{
	{a: `1`, b: `2`, diff: `Replace(1,2)`},
	{a: `1`, b: `"x"`, diff: `Replace(1,"x")`},
	{a: `true`, b: `()`, diff: `Replace(true,())`},
	{a: `{a: 1, b: 2}`, b: `{a: 1, b: 3, c: 4}`, diff: `Fields([("b",Replace(2,3)),("c",Insert(4))])`},
	{a: `{a: 1, b: 2}`, b: `{b: 2}`, diff: `Fields([("a",Delete(1))])`},
	{a: `[1, 2, 3]`, b: `[1, 3]`, diff: `Elements({1:Delete(2)})`},
	{a: `[1, 2, 3]`, b: `[1, 5, 3]`, diff: `Elements({1:Replace(2,5)})`},
	{a: `[1, 2]`, b: `[1, 2, 4]`, diff: `Elements({2:Insert(4)})`},
	{a: `[1, 2]`, b: `[0, 1, 2]`, diff: `Elements({0:Insert(0)})`},
	{a: `{list: [{n: 1}]}`, b: `{list: [{n: 2}]}`, diff: `Fields([("list",Elements({0:Fields([("n",Replace(1,2))])}))])`},
	{a: `[a, b, c, d]`, b: `[a, x, y, d, e]`},
	{a: `[[1, 2], {k: v}]`, b: `[{k: w}, [2]]`},
	{a: `"the quick brown fox"`, b: `"the quick red fox"`},
	{a: `"abc"`, b: `"xyz"`, diff: `Replace("abc","xyz")`},
	{a: `"alpha\nbeta\ngamma\ndelta\n"`, b: `"alpha\nBETA\ngamma\ndelta\n"`,
		diff: `Text([Keep(6),Del("beta\n"),Ins("BETA\n"),Keep(12)])`},
	{a: `{x: [1, {y: "some text here"}]}`, b: `{x: [{y: "some text there"}], z: None}`},
}

func mustParse(t *testing.T, s string) ir.Value {
	t.Helper()
	v, err := parse.ParseValue([]byte(s))
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return v
}

func TestDiff(t *testing.T) {
	for _, tc := range diffTests {
		a, b := mustParse(t, tc.a), mustParse(t, tc.b)
		c := Diff(a, b)
		if c == nil {
			t.Errorf("%s -> %s: no change", tc.a, tc.b)
			continue
		}
		text, err := encode.EncodeString(c)
		if err != nil {
			t.Errorf("%s -> %s: encode: %v", tc.a, tc.b, err)
			continue
		}
		if tc.diff != "" && text != tc.diff {
			t.Errorf("%s -> %s:\ngot  %s\nwant %s", tc.a, tc.b, text, tc.diff)
		}
		got, err := Patch(a, c)
		if err != nil {
			t.Errorf("%s -> %s: patch: %v", tc.a, tc.b, err)
		} else if !ir.Equal(got, b) {
			t.Errorf("%s -> %s: patched to %#v", tc.a, tc.b, got)
		}
		back, err := Patch(b, Reverse(c))
		if err != nil {
			t.Errorf("%s -> %s: reverse: %v", tc.a, tc.b, err)
		} else if !ir.Equal(back, a) {
			t.Errorf("%s -> %s: reversed to %#v", tc.a, tc.b, back)
		}

		var decoded Change
		if err := parse.Unmarshal([]byte(text), &decoded); err != nil {
			t.Errorf("%s -> %s: decode %s: %v", tc.a, tc.b, text, err)
			continue
		}
		got, err = Patch(a, decoded)
		if err != nil || !ir.Equal(got, b) {
			t.Errorf("%s -> %s: decoded diff patched to %#v, %v", tc.a, tc.b, got, err)
		}
	}
}

func TestDiffEqual(t *testing.T) {
	for _, s := range []string{`1`, `"s"`, `[1, {a: b}]`, `{}`, `None`} {
		v := mustParse(t, s)
		if c := Diff(v, v.Clone()); c != nil {
			t.Errorf("%s: got %#v", s, c)
		}
		got, err := Patch(v, nil)
		if err != nil || !ir.Equal(got, v) {
			t.Errorf("%s: nil patch gave %#v, %v", s, got, err)
		}
	}
}

func TestPatchDoesNotModify(t *testing.T) {
	a := mustParse(t, `{a: [1, 2]}`)
	orig := a.Clone()
	if _, err := Patch(a, Diff(a, mustParse(t, `{a: [2], b: 1}`))); err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(a, orig) {
		t.Errorf("document modified: %#v", a)
	}
}

func TestPatchMismatch(t *testing.T) {
	tests := []struct {
		doc    string
		change Change
	}{
		{doc: `1`, change: Replace{From: ir.FromInt(2), To: ir.FromInt(3)}},
		{doc: `1`, change: Insert{Value: ir.FromInt(1)}},
		{doc: `{a: 1}`, change: Fields{{Key: ir.FromString("a"), Change: Insert{Value: ir.FromInt(2)}}}},
		{doc: `{a: 1}`, change: Fields{{Key: ir.FromString("b"), Change: Delete{Value: ir.FromInt(2)}}}},
		{doc: `{a: 1}`, change: Fields{{Key: ir.FromString("a"), Change: Delete{Value: ir.FromInt(2)}}}},
		{doc: `[1]`, change: Elements{3: Insert{Value: ir.FromInt(2)}}},
		{doc: `[1]`, change: Elements{0: Delete{Value: ir.FromInt(2)}}},
		{doc: `[1]`, change: Fields{}},
		{doc: `"abc"`, change: Text{Keep(5)}},
		{doc: `"abc"`, change: Text{Keep(1), Del("c"), Keep(1)}},
		{doc: `"abc"`, change: Text{Keep(1)}},
		{doc: `1`, change: Text{}},
	}
	for _, tc := range tests {
		_, err := Patch(mustParse(t, tc.doc), tc.change)
		if !errors.Is(err, ErrMismatch) {
			t.Errorf("%s %#v: got %v", tc.doc, tc.change, err)
		}
	}
}

func TestPatchMismatchMessage(t *testing.T) {
	tests := []struct {
		doc    string
		change Change
		want   string
	}{
		{
			doc:    `"x"`,
			change: Replace{From: ir.FromInt(2), To: ir.FromInt(3)},
			want:   `cannot patch, unexpected value: expected 2, got "x"`,
		},
		{
			doc:    `{a: [1]}`,
			change: Fields{{Key: ir.FromString("a"), Change: Delete{Value: ir.FromInt(2)}}},
			want:   `cannot patch, unexpected value: key "a": expected 2, got [1]`,
		},
	}
	for _, tc := range tests {
		_, err := Patch(mustParse(t, tc.doc), tc.change)
		if err == nil {
			t.Errorf("%s: expected an error", tc.doc)
			continue
		}
		if diff := cmp.Diff(tc.want, err.Error()); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tc.doc, diff)
		}
	}
}

func TestPatchString(t *testing.T) {
	got, err := PatchString("héllo world", Text{Keep(6), Del("world"), Ins("there")})
	if err != nil {
		t.Fatal(err)
	}
	if got != "héllo there" {
		t.Errorf("got %q", got)
	}
}

func TestReverse(t *testing.T) {
	c := Fields{
		{Key: ir.FromString("a"), Change: Insert{Value: ir.FromInt(1)}},
		{Key: ir.FromString("b"), Change: Elements{0: Delete{Value: ir.FromInt(2)}}},
		{Key: ir.FromString("c"), Change: Text{Keep(1), Ins("x"), Del("y")}},
	}
	want := Fields{
		{Key: ir.FromString("a"), Change: Delete{Value: ir.FromInt(1)}},
		{Key: ir.FromString("b"), Change: Elements{0: Insert{Value: ir.FromInt(2)}}},
		{Key: ir.FromString("c"), Change: Text{Keep(1), Del("x"), Ins("y")}},
	}
	opts := cmp.Options{
		cmp.Comparer(func(a, b ir.Value) bool { return ir.Equal(a, b) }),
		cmp.AllowUnexported(Entry{}),
	}
	if diff := cmp.Diff(want, Reverse(c), opts); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(c, Reverse(Reverse(c)), opts); diff != "" {
		t.Errorf("double reverse (-want +got):\n%s", diff)
	}
}
