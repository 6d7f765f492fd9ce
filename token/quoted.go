package token

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ReadString reads a double quoted string.
func (c *Cursor) ReadString() (string, error) {
	if c.Peek() != '"' {
		return "", c.Err(ExpectedString)
	}
	start := c.Pos()
	c.Advance(1)
	rest := c.Rest()
	i := bytes.IndexAny(rest, `"\`)
	if i < 0 {
		return "", &Error{Code: ExpectedStringEnd, Pos: start}
	}
	if rest[i] == '"' {
		s := string(rest[:i])
		c.Advance(i + 1)
		return s, nil
	}
	var b strings.Builder
	for {
		rest = c.Rest()
		i = bytes.IndexAny(rest, `"\`)
		if i < 0 {
			return "", &Error{Code: ExpectedStringEnd, Pos: start}
		}
		b.Write(rest[:i])
		c.Advance(i)
		if c.Peek() == '"' {
			c.Advance(1)
			return b.String(), nil
		}
		r, err := c.readEscape()
		if err != nil {
			return "", err
		}
		b.WriteRune(r)
	}
}

// ReadChar reads a single quoted char.
func (c *Cursor) ReadChar() (rune, error) {
	if c.Peek() != '\'' {
		return 0, c.Err(ExpectedChar)
	}
	start := c.Pos()
	c.Advance(1)
	var r rune
	switch c.Peek() {
	case '\\':
		var err error
		r, err = c.readEscape()
		if err != nil {
			return 0, err
		}
	case '\'':
		return 0, &Error{Code: ExpectedChar, Pos: start}
	default:
		var sz int
		r, sz = c.PeekRune()
		if sz == 0 {
			return 0, &Error{Code: ExpectedChar, Pos: start}
		}
		c.Advance(sz)
	}
	if !c.ConsumeByte('\'') {
		return 0, c.Err(ExpectedChar)
	}
	return r, nil
}

// readEscape reads an escape sequence starting at a backslash.
func (c *Cursor) readEscape() (rune, error) {
	pos := c.Pos()
	c.Advance(1)
	b := c.Peek()
	if c.EOF() {
		return 0, &Error{Code: Eof, Pos: c.Pos()}
	}
	c.Advance(1)
	switch b {
	case '"', '\\', '/', '\'':
		return rune(b), nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case '0':
		return 0, nil
	case 'u':
	default:
		return 0, &Error{Code: InvalidEscape, Pos: pos, Msg: fmt.Sprintf("unknown escape \\%c", b)}
	}
	var hex []byte
	if c.ConsumeByte('{') {
		rest := c.Rest()
		i := bytes.IndexByte(rest, '}')
		if i < 1 || i > 6 {
			return 0, &Error{Code: InvalidEscape, Pos: pos, Msg: "malformed \\u{...}"}
		}
		hex = rest[:i]
		c.Advance(i + 1)
	} else {
		hex = c.PeekN(4)
		if len(hex) != 4 {
			return 0, &Error{Code: InvalidEscape, Pos: pos, Msg: "short \\u escape"}
		}
		c.Advance(4)
	}
	v, err := strconv.ParseUint(string(hex), 16, 32)
	if err != nil {
		return 0, &Error{Code: InvalidEscape, Pos: pos, Msg: "non-hex digit in \\u escape", Err: err}
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		return 0, &Error{Code: InvalidEscape, Pos: pos, Msg: fmt.Sprintf("invalid code point %x", v)}
	}
	return r, nil
}

// Quote returns s as a double quoted string literal. Printable runes are
// kept as is.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if unicode.IsPrint(r) {
				b.WriteRune(r)
				continue
			}
			fmt.Fprintf(&b, `\u{%x}`, r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// QuoteChar returns r as a single quoted char literal, escaping only quotes
// and backslashes.
func QuoteChar(r rune) string {
	switch r {
	case '\'', '\\':
		return `'\` + string(r) + `'`
	}
	return "'" + string(r) + "'"
}
