package token

import (
	"errors"
	"testing"
)

func TestQuoted(t *testing.T) {
	for _, s := range []string{
		`"`,
		`'`,
		"\t\n\r\b\f",
		"∞∞",
		`"""''`,
		`''"∞∞""''`,
		"\x00\x01 ",
		`f[0]\`,
		"",
	} {
		q := Quote(s)
		c := NewCursor([]byte(q))
		uq, err := c.ReadString()
		if err != nil {
			t.Errorf("error reading %s (from %q): %v", q, s, err)
			continue
		}
		if uq != s {
			t.Errorf("read(quote(%q)) = %q", s, uq)
		}
		if !c.EOF() {
			t.Errorf("%s: trailing input %q", q, c.Rest())
		}
	}
}

func TestReadString(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{in: `"abc"`, out: `abc`},
		{in: `"\"'"`, out: `"'`},
		{in: `"\t"`, out: "\t"},
		{in: `"∞"`, out: "∞"},
		{in: `"\u{1F600}"`, out: "😀"},
		{in: `"a\/b"`, out: "a/b"},
		{in: "\"multi\nline\"", out: "multi\nline"},
	}
	for _, tc := range tests {
		got, err := NewCursor([]byte(tc.in)).ReadString()
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if got != tc.out {
			t.Errorf("%s: got %q want %q", tc.in, got, tc.out)
		}
	}
}

func TestReadStringErrors(t *testing.T) {
	tests := []struct {
		in   string
		code Code
		pos  Pos
	}{
		{in: `abc`, code: ExpectedString, pos: Pos{1, 1}},
		{in: `"Hello`, code: ExpectedStringEnd, pos: Pos{1, 1}},
		{in: `"a\qb"`, code: InvalidEscape, pos: Pos{1, 3}},
		{in: `"\u12"`, code: InvalidEscape, pos: Pos{1, 2}},
		{in: `"\u{110000}"`, code: InvalidEscape, pos: Pos{1, 2}},
	}
	for _, tc := range tests {
		_, err := NewCursor([]byte(tc.in)).ReadString()
		var te *Error
		if !errors.As(err, &te) {
			t.Errorf("%s: expected *Error, got %v", tc.in, err)
			continue
		}
		if te.Code != tc.code || te.Pos != tc.pos {
			t.Errorf("%s: got %v at %v, want %v at %v", tc.in, te.Code, te.Pos, tc.code, tc.pos)
		}
	}
}

func TestChars(t *testing.T) {
	for _, r := range []rune{'a', '\'', '\\', '∞', '"', ' '} {
		q := QuoteChar(r)
		got, err := NewCursor([]byte(q)).ReadChar()
		if err != nil {
			t.Errorf("%s: %v", q, err)
			continue
		}
		if got != r {
			t.Errorf("%s: got %q want %q", q, got, r)
		}
	}
	got, err := NewCursor([]byte(`'\n'`)).ReadChar()
	if err != nil || got != '\n' {
		t.Errorf(`'\n': got %q, %v`, got, err)
	}
	for _, in := range []string{`''`, `'ab'`, `a`, `'`} {
		_, err := NewCursor([]byte(in)).ReadChar()
		if !errors.Is(err, ExpectedChar) {
			t.Errorf("%s: expected ExpectedChar, got %v", in, err)
		}
	}
}
