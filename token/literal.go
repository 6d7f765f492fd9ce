package token

import (
	"unicode"
	"unicode/utf8"
)

// RawPrefix marks a raw identifier.
const RawPrefix = "r#"

func IsIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func IsIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func IsRawIdentChar(r rune) bool {
	switch r {
	case '-', '.', '+':
		return true
	}
	return IsIdentContinue(r)
}

// IsIdent reports whether s can be written as a bare identifier.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !IsIdentStart(r) {
			return false
		}
		if !IsIdentContinue(r) {
			return false
		}
	}
	return true
}

// IsRawIdent reports whether s can be written as r#s.
func IsRawIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsRawIdentChar(r) {
			return false
		}
	}
	return true
}

func scanWhile(d []byte, f func(rune) bool) int {
	n := 0
	for n < len(d) {
		r, sz := utf8.DecodeRune(d[n:])
		if r == utf8.RuneError || !f(r) {
			break
		}
		n += sz
	}
	return n
}

// PeekIdent returns the identifier at the cursor without consuming it and
// the number of bytes it spans, including any r# prefix. A zero length
// means there is no identifier.
func (c *Cursor) PeekIdent() (string, int) {
	rest := c.Rest()
	if len(rest) > len(RawPrefix) && string(rest[:len(RawPrefix)]) == RawPrefix {
		n := scanWhile(rest[len(RawPrefix):], IsRawIdentChar)
		if n > 0 {
			return string(rest[len(RawPrefix) : len(RawPrefix)+n]), len(RawPrefix) + n
		}
	}
	r, _ := utf8.DecodeRune(rest)
	if len(rest) == 0 || !IsIdentStart(r) {
		return "", 0
	}
	n := scanWhile(rest, IsIdentContinue)
	return string(rest[:n]), n
}

// IsBareRune reports whether r may appear in a bare word: identifier
// characters plus any non-ASCII graphic rune.
func IsBareRune(r rune) bool {
	if IsIdentContinue(r) {
		return true
	}
	return r >= utf8.RuneSelf && unicode.IsGraphic(r) && !unicode.IsSpace(r)
}

// PeekBare is PeekIdent widened to bare words, which decode as strings and
// chars.
func (c *Cursor) PeekBare() (string, int) {
	if id, n := c.PeekIdent(); n > 0 {
		if n == len(c.Rest()) {
			return id, n
		}
		r, _ := utf8.DecodeRune(c.Rest()[n:])
		if !IsBareRune(r) || r < utf8.RuneSelf {
			return id, n
		}
	}
	rest := c.Rest()
	r, _ := utf8.DecodeRune(rest)
	if len(rest) == 0 || !IsBareRune(r) || (r >= '0' && r <= '9') {
		return "", 0
	}
	n := scanWhile(rest, IsBareRune)
	return string(rest[:n]), n
}

func (c *Cursor) ReadIdent() (string, error) {
	id, n := c.PeekIdent()
	if n == 0 {
		return "", c.Err(ExpectedIdentifier)
	}
	c.Advance(n)
	return id, nil
}
