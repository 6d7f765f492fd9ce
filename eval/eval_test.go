package eval

import (
	"strings"
	"testing"

	"github.com/liabri/zmerald/ir"
	"github.com/liabri/zmerald/parse"
)

func mustParse(t *testing.T, s string) ir.Value {
	t.Helper()
	v, err := parse.ParseValue([]byte(s))
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return v
}

const doc = `{name: "svc", replicas: 3, ports: [80, 443], limits: {cpu: 2}}`

func TestEval(t *testing.T) {
	tests := []struct {
		expr string
		env  Env
		want string
	}{
		{expr: `replicas * 2`, want: `6`},
		{expr: `name + "-" + suffix`, env: Env{"suffix": "a"}, want: `"svc-a"`},
		{expr: `len(ports)`, want: `2`},
		{expr: `ports[1]`, want: `443`},
		{expr: `limits.cpu > 1`, want: `true`},
		{expr: `doc.name`, want: `"svc"`},
		{expr: `getpath("limits.cpu")`, want: `2`},
		{expr: `getpath("$.ports[0]")`, want: `80`},
		{expr: `listpath("ports[*]")`, want: `[80, 443]`},
		{expr: `whereami()`, want: `"$"`},
		{expr: `map(ports, # + 1)`, want: `[81, 444]`},
		{expr: `{"a": 1.5}`, want: `{a: 1.5}`},
		{expr: `nil`, want: `None`},
		{expr: `replicas`, env: Env{"replicas": 5}, want: `5`},
	}
	d := mustParse(t, doc)
	for _, tc := range tests {
		got, err := Eval(tc.expr, d, tc.env)
		if err != nil {
			t.Errorf("%s: %v", tc.expr, err)
			continue
		}
		if want := mustParse(t, tc.want); !ir.Equal(got, want) {
			t.Errorf("%s: got %#v want %#v", tc.expr, got, want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	d := mustParse(t, doc)
	for _, in := range []string{`1 +`, `getpath("nope")`, `undefinedFunc()`} {
		if _, err := Eval(in, d, nil); err == nil {
			t.Errorf("%s: expected an error", in)
		}
	}
}

func TestGetRaw(t *testing.T) {
	tests := []struct{ in, want string }{
		{".[x]", "x"},
		{".[a + b]", "a + b"},
		{"$[x]", ""},
		{".[]", ""},
		{"x", ""},
	}
	for _, tc := range tests {
		if got := GetRaw(tc.in); got != tc.want {
			t.Errorf("%q: got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestExpandString(t *testing.T) {
	d := mustParse(t, doc)
	env := Env{"who": "world", "n": 2}
	tests := []struct{ in, want string }{
		{"hello $[who]", "hello world"},
		{"$[name]:$[ports[0]]", "svc:80"},
		{"$[n * 2] items", "4 items"},
		{"$[ports]", "[80,443]"},
		{"$[ \"a\\]b\" ]", "a]b"},
		{"$[ports[len(ports) - 1]]", "443"},
		{"$[\"[x]\" + 'y]']", "[x]y]"},
		{"$[[1, [2]][1][0]]", "2"},
		{"no expr", "no expr"},
		{"open $[who", "open $[who"},
		{"cost: $5", "cost: $5"},
		{"$[nil]", ""},
		{"$[n > 1]", "true"},
	}
	for _, tc := range tests {
		got, err := ExpandString(tc.in, d, env)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %q want %q", tc.in, got, tc.want)
		}
	}
	if _, err := ExpandString("$[1 +]", d, env); err == nil {
		t.Error("expected an error")
	}
}

func TestExpandValue(t *testing.T) {
	in := mustParse(t, `{
		name: "svc",
		image: "repo/$[name]:$[tag]",
		count: ".[len(ports) * 2]",
		ports: [80, ".[getpath(\"ports[0]\") + 1]"],
		where: ".[whereami()]",
	}`)
	got, err := ExpandValue(in, Env{"tag": "v1"})
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{
		name: "svc",
		image: "repo/svc:v1",
		count: 4,
		ports: [80, 81],
		where: "$.where",
	}`)
	if !ir.Equal(got, want) {
		t.Errorf("got %#v\nwant %#v", got, want)
	}
	if got, _ := in.Get("image"); got.String != "repo/$[name]:$[tag]" {
		t.Errorf("input modified: %#v", got)
	}
	_, err = ExpandValue(mustParse(t, `{a: [x, "$[1 +]"]}`), nil)
	if err == nil || !strings.Contains(err.Error(), "$.a[1]") {
		t.Errorf("got %v", err)
	}
}
