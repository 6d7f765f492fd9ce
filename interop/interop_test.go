package interop

import (
	"strings"
	"testing"

	"github.com/liabri/zmerald/ir"
	"github.com/liabri/zmerald/parse"
)

func mustParse(t *testing.T, s string) ir.Value {
	t.Helper()
	v, err := parse.ParseValue([]byte(s), parse.PreserveOrder())
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return v
}

func TestToJSON(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: `{z: 1, a: [true, 'c', None, ()], m: 2.5}`, want: `{"z":1,"a":[true,"c",null,null],"m":2.5}`},
		{in: `{1: one, "two": 2}`, want: `{"1":"one","two":2}`},
		{in: `"s"`, want: `"s"`},
		{in: `[]`, want: `[]`},
	}
	for _, tc := range tests {
		got, err := ToJSON(mustParse(t, tc.in), "")
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if string(got) != tc.want {
			t.Errorf("%s: got %s want %s", tc.in, got, tc.want)
		}
	}
	got, err := ToJSON(mustParse(t, `{a: [1]}`), "  ")
	if err != nil {
		t.Fatal(err)
	}
	if want := "{\n  \"a\": [\n    1\n  ]\n}"; string(got) != want {
		t.Errorf("indented: got %q", got)
	}
}

func TestFromJSON(t *testing.T) {
	got, err := FromJSON([]byte(`{"b": [1, 2.5, null], "a": "x", "big": 9007199254740993}`))
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{a: "x", b: [1, 2.5, None], big: 9007199254740993}`)
	if !ir.Equal(got, want) {
		t.Errorf("got %#v want %#v", got, want)
	}
	for _, bad := range []string{`{`, `1 2`, ``} {
		if _, err := FromJSON([]byte(bad)); err == nil {
			t.Errorf("%q: expected an error", bad)
		}
	}
}

func TestYAML(t *testing.T) {
	src := "name: demo\nports:\n  - 80\n  - 443\nratio: 0.5\nlabels:\n  zone: b\n  app: web\n"
	v, err := FromYAML([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{name: demo, ports: [80, 443], ratio: 0.5, labels: {zone: b, app: web}}`)
	if !ir.Equal(v, want) {
		t.Errorf("got %#v want %#v", v, want)
	}
	keys := v.Map.Keys()
	if len(keys) != 4 || keys[0].String != "name" || keys[3].String != "labels" {
		t.Errorf("order not kept: %#v", keys)
	}
	out, err := ToYAML(v)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(out), "name: demo\n") || !strings.Contains(string(out), "zone: b") {
		t.Errorf("got\n%s", out)
	}
	back, err := FromYAML(out)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(back, v) {
		t.Errorf("round trip: got %#v", back)
	}
	if _, err := FromYAML([]byte("a: [1\n")); err == nil {
		t.Error("expected an error")
	}
}

func TestJSONPatch(t *testing.T) {
	doc := mustParse(t, `{name: a, tags: [x, y]}`)
	ops := mustParse(t, `[
		{op: "replace", path: "/name", value: b},
		{op: "add", path: "/tags/-", value: z},
		{op: "remove", path: "/tags/0"},
	]`)
	got, err := JSONPatch(doc, ops)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{name: b, tags: [y, z]}`)
	if !ir.Equal(got, want) {
		t.Errorf("got %#v want %#v", got, want)
	}
	bad := mustParse(t, `[{op: "remove", path: "/missing"}]`)
	if _, err := JSONPatch(doc, bad); err == nil {
		t.Error("expected an error")
	}
	if _, err := JSONPatch(doc, mustParse(t, `{op: add}`)); err == nil {
		t.Error("expected a decode error")
	}
}

func TestMergePatch(t *testing.T) {
	from := mustParse(t, `{a: 1, b: {c: 2, d: 3}}`)
	to := mustParse(t, `{a: 1, b: {c: 4}, e: [1]}`)
	patch, err := CreateMergePatch(from, to)
	if err != nil {
		t.Fatal(err)
	}
	if want := mustParse(t, `{b: {c: 4, d: None}, e: [1]}`); !ir.Equal(patch, want) {
		t.Errorf("patch: got %#v want %#v", patch, want)
	}
	got, err := MergePatch(from, patch)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, to) {
		t.Errorf("got %#v want %#v", got, to)
	}
}
