package token

import (
	"bytes"
	"unicode/utf8"
)

// Cursor is a position in an input buffer.
type Cursor struct {
	src  []byte
	off  int
	line int
	col  int
}

// Mark is a saved cursor position. Restoring one is O(1).
type Mark struct {
	off, line, col int
}

var bom = []byte{0xEF, 0xBB, 0xBF}

func NewCursor(src []byte) *Cursor {
	c := &Cursor{src: src, line: 1, col: 1}
	if bytes.HasPrefix(src, bom) {
		c.off = len(bom)
	}
	return c
}

func (c *Cursor) Mark() Mark {
	return Mark{off: c.off, line: c.line, col: c.col}
}

func (c *Cursor) Reset(m Mark) {
	c.off, c.line, c.col = m.off, m.line, m.col
}

func (c *Cursor) Pos() Pos {
	return Pos{Line: c.line, Col: c.col}
}

func (c *Cursor) Offset() int {
	return c.off
}

func (c *Cursor) EOF() bool {
	return c.off >= len(c.src)
}

// Rest returns the unconsumed input.
func (c *Cursor) Rest() []byte {
	return c.src[c.off:]
}

// Peek returns the next byte, or 0 at the end of input.
func (c *Cursor) Peek() byte {
	return c.PeekAt(0)
}

func (c *Cursor) PeekAt(i int) byte {
	if c.off+i >= len(c.src) {
		return 0
	}
	return c.src[c.off+i]
}

// PeekN returns up to n upcoming bytes.
func (c *Cursor) PeekN(n int) []byte {
	end := min(c.off+n, len(c.src))
	return c.src[c.off:end]
}

func (c *Cursor) PeekRune() (rune, int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRune(c.src[c.off:])
}

// Advance consumes n bytes, keeping line and column current.
func (c *Cursor) Advance(n int) {
	end := min(c.off+n, len(c.src))
	for _, b := range c.src[c.off:end] {
		switch {
		case b == '\n':
			c.line++
			c.col = 1
		case b&0xC0 != 0x80:
			c.col++
		}
	}
	c.off = end
}

func (c *Cursor) Consume(prefix string) bool {
	if !bytes.HasPrefix(c.src[c.off:], []byte(prefix)) {
		return false
	}
	c.Advance(len(prefix))
	return true
}

func (c *Cursor) ConsumeByte(b byte) bool {
	if c.Peek() != b || c.EOF() {
		return false
	}
	c.Advance(1)
	return true
}

// HasWord reports whether the input continues with word not followed by an
// identifier character.
func (c *Cursor) HasWord(word string) bool {
	rest := c.src[c.off:]
	if !bytes.HasPrefix(rest, []byte(word)) {
		return false
	}
	r, _ := utf8.DecodeRune(rest[len(word):])
	return len(rest) == len(word) || !IsIdentContinue(r)
}

func (c *Cursor) ConsumeWord(word string) bool {
	if !c.HasWord(word) {
		return false
	}
	c.Advance(len(word))
	return true
}

// SkipWS skips whitespace, # line comments and /* */ block comments.
func (c *Cursor) SkipWS() error {
	for !c.EOF() {
		switch c.Peek() {
		case ' ', '\t', '\n', '\r':
			c.Advance(1)
		case '#':
			i := bytes.IndexByte(c.src[c.off:], '\n')
			if i < 0 {
				c.Advance(len(c.src) - c.off)
				return nil
			}
			c.Advance(i + 1)
		case '/':
			if c.PeekAt(1) != '*' {
				return nil
			}
			start := c.Pos()
			i := bytes.Index(c.src[c.off+2:], []byte("*/"))
			if i < 0 {
				return &Error{Code: UnclosedBlockComment, Pos: start}
			}
			c.Advance(i + 4)
		default:
			return nil
		}
	}
	return nil
}

func (c *Cursor) Err(code Code) *Error {
	return &Error{Code: code, Pos: c.Pos()}
}

func (c *Cursor) Errorf(format string, args ...any) *Error {
	return Errorf(format, args...).At(c.Pos())
}
