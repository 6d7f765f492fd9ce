package parse

import (
	"strings"

	"github.com/liabri/zmerald/shape"
	"github.com/liabri/zmerald/token"
)

func closer(open byte) byte {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	}
	return '}'
}

// peekName returns the identifier at the cursor and its length in bytes
// if it is followed, after whitespace, by one of the bytes in opens.
func (d *Decoder) peekName(opens string) (string, int) {
	id, n := d.c.PeekIdent()
	if n == 0 {
		return "", 0
	}
	m := d.c.Mark()
	defer d.c.Reset(m)
	d.c.Advance(n)
	if d.ws() != nil || d.c.EOF() || !strings.ContainsRune(opens, rune(d.c.Peek())) {
		return "", 0
	}
	return id, n
}

// consumeEmptyGroup moves past () or {}, possibly with whitespace inside,
// reporting whether it did.
func (d *Decoder) consumeEmptyGroup() bool {
	m := d.c.Mark()
	open := d.c.Peek()
	if open != '(' && open != '{' {
		return false
	}
	d.c.Advance(1)
	if d.ws() == nil && d.c.ConsumeByte(closer(open)) {
		return true
	}
	d.c.Reset(m)
	return false
}

// fieldListAhead reports whether the input continues with key: or <key>,
// the start of a struct body.
func (d *Decoder) fieldListAhead() bool {
	m := d.c.Mark()
	defer d.c.Reset(m)
	if d.ws() != nil {
		return false
	}
	if d.c.Peek() == '<' {
		return true
	}
	var n int
	if d.c.Peek() == '"' {
		if _, err := d.c.ReadString(); err != nil {
			return false
		}
	} else if _, n = d.c.PeekIdent(); n == 0 {
		return false
	}
	d.c.Advance(n)
	return d.ws() == nil && (d.c.Peek() == ':' || d.c.Peek() == '<')
}

// skipGroup moves past the bracketed group at the cursor, reporting
// whether it was closed.
func (d *Decoder) skipGroup() bool {
	depth := 0
	for {
		if d.ws() != nil || d.c.EOF() {
			return false
		}
		switch d.c.Peek() {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 {
				d.c.Advance(1)
				return true
			}
		case '"':
			if _, err := d.c.ReadString(); err != nil {
				return false
			}
			continue
		case '\'':
			if _, err := d.c.ReadChar(); err == nil {
				continue
			}
		}
		d.c.Advance(1)
	}
}

func (d *Decoder) visitSeq(pos token.Pos, v shape.Visitor, bare bool) error {
	if err := d.enter(); err != nil {
		return err
	}
	defer d.leave()
	a := &seqAccess{d: d, close: ')', bare: bare, first: true}
	if !bare {
		a.close = closer(d.c.Peek())
		d.c.Advance(1)
	}
	if err := wrap(v.VisitSeq(a), pos); err != nil {
		return err
	}
	return a.finish()
}

func (d *Decoder) visitMap(pos token.Pos, v shape.Visitor, end token.Code, bare bool) error {
	if err := d.enter(); err != nil {
		return err
	}
	defer d.leave()
	a := &mapAccess{d: d, close: ')', bare: bare, end: end, first: true}
	if !bare {
		a.close = closer(d.c.Peek())
		d.c.Advance(1)
	}
	if err := wrap(v.VisitMap(a), pos); err != nil {
		return err
	}
	return a.finish()
}

// list walks the separated items of a bracketed body.
type list struct {
	d     *Decoder
	close byte
	// bare bodies belong to an enclosing newtype whose ) is left in place
	bare  bool
	seps  string
	end   token.Code
	first bool
	done  bool
}

// more moves to the next item, consuming the closing bracket at the end.
func (l *list) more() (bool, error) {
	if l.done {
		return false, nil
	}
	d := l.d
	if err := d.ws(); err != nil {
		return false, err
	}
	if !l.first {
		switch {
		case d.c.EOF():
			return false, d.c.Err(l.end)
		case strings.IndexByte(l.seps, d.c.Peek()) >= 0:
			d.c.Advance(1)
			if err := d.ws(); err != nil {
				return false, err
			}
		case d.c.Peek() != l.close:
			return false, d.c.Err(token.ExpectedComma)
		}
	}
	l.first = false
	if d.c.EOF() {
		return false, d.c.Err(l.end)
	}
	if d.c.Peek() == l.close {
		if !l.bare {
			d.c.Advance(1)
		}
		l.done = true
		return false, nil
	}
	return true, nil
}

// finish fails if a visitor stopped before the end of the body.
func (l *list) finish() error {
	more, err := l.more()
	if err != nil {
		return err
	}
	if more {
		return l.d.c.Err(l.end)
	}
	return nil
}

type seqAccess list

func (a *seqAccess) finish() error {
	a.seps = ","
	a.end = token.ExpectedArrayEnd
	return (*list)(a).finish()
}

func (a *seqAccess) NextElement(fn func(shape.Decoder) error) (bool, error) {
	a.seps = ","
	a.end = token.ExpectedArrayEnd
	more, err := (*list)(a).more()
	if !more || err != nil {
		return false, err
	}
	return true, fn(a.d)
}

type valueMode int

const (
	afterColon valueMode = iota
	afterBracket
	nestedEntries
)

type mapAccess struct {
	d     *Decoder
	close byte
	bare  bool
	end   token.Code
	first bool
	done  bool
	mode  valueMode
	keyed bool
}

func (a *mapAccess) list() *list {
	return &list{d: a.d, close: a.close, bare: a.bare, seps: ",;", end: a.end, first: a.first, done: a.done}
}

func (a *mapAccess) more() (bool, error) {
	l := a.list()
	more, err := l.more()
	a.first, a.done = l.first, l.done
	return more, err
}

func (a *mapAccess) finish() error {
	more, err := a.more()
	if err != nil {
		return err
	}
	if more {
		return a.d.c.Err(a.end)
	}
	return nil
}

func (a *mapAccess) NextKey(fn func(shape.Decoder) error) (bool, error) {
	more, err := a.more()
	if !more || err != nil {
		return false, err
	}
	d := a.d
	a.keyed = true
	if d.c.ConsumeByte('<') {
		if err := bracketedKey(d, fn); err != nil {
			return false, err
		}
		a.mode = afterBracket
		return true, nil
	}
	if err := fn(d); err != nil {
		return false, err
	}
	if err := d.ws(); err != nil {
		return false, err
	}
	a.mode = afterColon
	if d.c.Peek() == '<' {
		a.mode = nestedEntries
	}
	return true, nil
}

// bracketedKey reads the key of a <key> value entry; the < is consumed.
func bracketedKey(d *Decoder, fn func(shape.Decoder) error) error {
	if err := fn(d); err != nil {
		return err
	}
	if err := d.ws(); err != nil {
		return err
	}
	if !d.c.ConsumeByte('>') {
		return &token.Error{Code: token.ExpectedMapColon, Pos: d.c.Pos(), Msg: "expected `>` after bracketed key"}
	}
	return nil
}

func (a *mapAccess) NextValue(fn func(shape.Decoder) error) error {
	if !a.keyed {
		return errInternal
	}
	a.keyed = false
	d := a.d
	switch a.mode {
	case afterBracket:
		return fn(d)
	case nestedEntries:
		return fn(nested{d})
	}
	if err := d.ws(); err != nil {
		return err
	}
	if !d.c.ConsumeByte(':') {
		return d.c.Err(token.ExpectedMapColon)
	}
	return fn(d)
}

// nestedAccess reads the <k> v <k> v run of a nested entry. It stops
// without consuming at anything other than <.
type nestedAccess struct {
	d *Decoder
}

func (a nestedAccess) NextKey(fn func(shape.Decoder) error) (bool, error) {
	if err := a.d.ws(); err != nil {
		return false, err
	}
	if !a.d.c.ConsumeByte('<') {
		return false, nil
	}
	return true, bracketedKey(a.d, fn)
}

func (a nestedAccess) NextValue(fn func(shape.Decoder) error) error {
	return fn(a.d)
}

type enumAccess struct {
	d *Decoder
}

func (a enumAccess) Variant(fn func(shape.Decoder) error) (shape.VariantAccess, error) {
	if err := fn(a.d); err != nil {
		return nil, err
	}
	return a, nil
}

func (a enumAccess) UnitVariant() error {
	m := a.d.c.Mark()
	if err := a.d.ws(); err != nil {
		return err
	}
	if !a.d.consumeEmptyGroup() {
		a.d.c.Reset(m)
	}
	return nil
}

func (a enumAccess) NewtypeVariant(fn func(shape.Decoder) error) error {
	pos, err := a.d.start()
	if err != nil {
		return err
	}
	return a.d.newtypePayload(pos, fn)
}

func (a enumAccess) TupleVariant(_ int, v shape.Visitor) error {
	pos, err := a.d.start()
	if err != nil {
		return err
	}
	if a.d.c.Peek() != '(' {
		return a.d.c.Err(token.ExpectedArray)
	}
	return a.d.visitSeq(pos, v, false)
}

func (a enumAccess) StructVariant(_ []string, v shape.Visitor) error {
	pos, err := a.d.start()
	if err != nil {
		return err
	}
	switch a.d.c.Peek() {
	case '{', '(':
		return a.d.visitMap(pos, v, token.ExpectedStructEnd, false)
	}
	return a.d.c.Err(token.ExpectedMap)
}
