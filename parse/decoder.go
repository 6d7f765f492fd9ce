package parse

import (
	"encoding/base64"

	"github.com/liabri/zmerald/debug"
	"github.com/liabri/zmerald/shape"
	"github.com/liabri/zmerald/token"
)

// Decoder reads one zmerald document.
type Decoder struct {
	c     *token.Cursor
	opts  *parseOpts
	depth int
}

var _ shape.Decoder = (*Decoder)(nil)

func NewDecoder(data []byte, opts ...ParseOption) *Decoder {
	return &Decoder{c: token.NewCursor(data), opts: newOpts(opts)}
}

// End checks that only whitespace and comments remain.
func (d *Decoder) End() error {
	if err := d.ws(); err != nil {
		return err
	}
	if !d.c.EOF() {
		return d.c.Err(token.TrailingCharacters)
	}
	return nil
}

// Pos is the position of the next unread byte.
func (d *Decoder) Pos() token.Pos {
	return d.c.Pos()
}

func (d *Decoder) ws() error {
	return d.c.SkipWS()
}

// start skips whitespace and returns the position of the value that
// follows.
func (d *Decoder) start() (token.Pos, error) {
	err := d.ws()
	return d.c.Pos(), err
}

func (d *Decoder) enter() error {
	d.depth++
	if d.depth > d.opts.maxDepth {
		return d.c.Err(token.ExceededRecursionLimit)
	}
	return nil
}

func (d *Decoder) leave() {
	d.depth--
}

func (d *Decoder) eof() error {
	return d.c.Err(token.Eof)
}

func (d *Decoder) DecodeAny(v shape.Visitor) error {
	pos, err := d.start()
	if err != nil {
		return err
	}
	switch d.c.PeekType() {
	case token.TEOF:
		return d.eof()
	case token.TIdent:
		return d.anyWord(pos, v)
	case token.TString:
		s, err := d.c.ReadString()
		if err != nil {
			return err
		}
		return wrap(v.VisitString(s), pos)
	case token.TChar:
		r, err := d.c.ReadChar()
		if err != nil {
			return err
		}
		return wrap(v.VisitChar(r), pos)
	case token.TNumber:
		n, err := d.c.ReadAnyNum()
		if err != nil {
			return err
		}
		switch {
		case n.Kind.IsFloat():
			err = v.VisitFloat(n.Float)
		case n.Kind.IsUnsigned():
			err = v.VisitUint(n.Uint)
		default:
			err = v.VisitInt(n.Int)
		}
		return wrap(err, pos)
	case token.TLSquare:
		return d.visitSeq(pos, v, false)
	case token.TLParen:
		return d.anyParen(pos, v)
	case token.TLCurl:
		return d.visitMap(pos, v, token.ExpectedMapEnd, false)
	}
	return d.c.Err(token.UnexpectedByte)
}

// anyWord decodes a value starting with a bare word.
func (d *Decoder) anyWord(pos token.Pos, v shape.Visitor) error {
	switch {
	case d.c.ConsumeWord(token.KwNone):
		return wrap(v.VisitNone(), pos)
	case d.c.ConsumeWord(token.KwTrue):
		return wrap(v.VisitBool(true), pos)
	case d.c.ConsumeWord(token.KwFalse):
		return wrap(v.VisitBool(false), pos)
	}
	if _, n := d.peekName("({"); n > 0 {
		d.c.Advance(n)
		if err := d.ws(); err != nil {
			return err
		}
		pos = d.c.Pos()
		if d.c.Peek() == '{' {
			return d.visitMap(pos, v, token.ExpectedStructEnd, false)
		}
		return d.anyParen(pos, v)
	}
	w, n := d.c.PeekBare()
	d.c.Advance(n)
	return wrap(v.VisitString(w), pos)
}

// anyParen decodes (...) as unit, a field list or a sequence.
func (d *Decoder) anyParen(pos token.Pos, v shape.Visitor) error {
	if d.consumeEmptyGroup() {
		return wrap(v.VisitUnit(), pos)
	}
	m := d.c.Mark()
	d.c.Advance(1)
	fields := d.fieldListAhead()
	d.c.Reset(m)
	if fields {
		return d.visitMap(pos, v, token.ExpectedStructEnd, false)
	}
	return d.visitSeq(pos, v, false)
}

func (d *Decoder) DecodeIgnored(v shape.Visitor) error {
	return d.DecodeAny(v)
}

func (d *Decoder) DecodeBool(v shape.Visitor) error {
	pos, err := d.start()
	if err != nil {
		return err
	}
	switch {
	case d.c.ConsumeWord(token.KwTrue):
		return wrap(v.VisitBool(true), pos)
	case d.c.ConsumeWord(token.KwFalse):
		return wrap(v.VisitBool(false), pos)
	}
	return d.c.Err(token.ExpectedBoolean)
}

func (d *Decoder) DecodeInt(bits int, v shape.Visitor) error {
	pos, err := d.start()
	if err != nil {
		return err
	}
	i, err := d.c.ReadInt(bits)
	if err != nil {
		return err
	}
	return wrap(v.VisitInt(i), pos)
}

func (d *Decoder) DecodeUint(bits int, v shape.Visitor) error {
	pos, err := d.start()
	if err != nil {
		return err
	}
	u, err := d.c.ReadUint(bits)
	if err != nil {
		return err
	}
	return wrap(v.VisitUint(u), pos)
}

func (d *Decoder) DecodeFloat(bits int, v shape.Visitor) error {
	pos, err := d.start()
	if err != nil {
		return err
	}
	f, err := d.c.ReadFloat(bits)
	if err != nil {
		return err
	}
	return wrap(v.VisitFloat(f), pos)
}

func (d *Decoder) DecodeChar(v shape.Visitor) error {
	pos, err := d.start()
	if err != nil {
		return err
	}
	if d.c.Peek() == '\'' {
		r, err := d.c.ReadChar()
		if err != nil {
			return err
		}
		return wrap(v.VisitChar(r), pos)
	}
	w, n := d.c.PeekBare()
	rs := []rune(w)
	if len(rs) != 1 {
		return d.c.Err(token.ExpectedChar)
	}
	d.c.Advance(n)
	return wrap(v.VisitChar(rs[0]), pos)
}

func (d *Decoder) DecodeString(v shape.Visitor) error {
	pos, err := d.start()
	if err != nil {
		return err
	}
	if d.c.Peek() == '"' {
		s, err := d.c.ReadString()
		if err != nil {
			return err
		}
		return wrap(v.VisitString(s), pos)
	}
	w, n := d.c.PeekBare()
	if n == 0 {
		return d.c.Err(token.ExpectedString)
	}
	d.c.Advance(n)
	return wrap(v.VisitString(w), pos)
}

// DecodeBytes reads base64 text. A sequence of small integers is also
// accepted.
func (d *Decoder) DecodeBytes(v shape.Visitor) error {
	pos, err := d.start()
	if err != nil {
		return err
	}
	if d.c.Peek() == '[' {
		return d.visitSeq(pos, v, false)
	}
	s, err := d.c.ReadString()
	if err != nil {
		return err
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return &token.Error{Code: token.Base64Error, Pos: pos, Msg: err.Error(), Err: err}
	}
	return wrap(v.VisitBytes(b), pos)
}

func (d *Decoder) DecodeOption(v shape.Visitor) error {
	pos, err := d.start()
	if err != nil {
		return err
	}
	if d.c.ConsumeWord(token.KwNone) {
		return wrap(v.VisitNone(), pos)
	}
	return wrap(v.VisitSome(d), pos)
}

func (d *Decoder) DecodeUnit(v shape.Visitor) error {
	pos, err := d.start()
	if err != nil {
		return err
	}
	if !d.consumeEmptyGroup() {
		return d.c.Err(token.ExpectedUnit)
	}
	return wrap(v.VisitUnit(), pos)
}

func (d *Decoder) DecodeUnitStruct(name string, v shape.Visitor) error {
	pos, err := d.start()
	if err != nil {
		return err
	}
	if id, n := d.c.PeekIdent(); n > 0 {
		if name != "" && id != name {
			return &token.Error{Code: token.ExpectedStructName, Pos: pos, Expected: name, Found: id}
		}
		d.c.Advance(n)
		m := d.c.Mark()
		if err := d.ws(); err != nil {
			return err
		}
		if !d.consumeEmptyGroup() {
			d.c.Reset(m)
		}
		return wrap(v.VisitUnit(), pos)
	}
	if !d.consumeEmptyGroup() {
		return d.c.Err(token.ExpectedUnit)
	}
	return wrap(v.VisitUnit(), pos)
}

func (d *Decoder) DecodeNewtypeStruct(name string, v shape.Visitor) error {
	pos, err := d.start()
	if err != nil {
		return err
	}
	if err := d.optionalName(name); err != nil {
		return err
	}
	if d.c.Peek() != '(' {
		return wrap(v.VisitNewtype(d), pos)
	}
	return d.newtypePayload(pos, func(p shape.Decoder) error {
		return v.VisitNewtype(p)
	})
}

// newtypePayload decodes the contents of (...) with the payload flag set.
func (d *Decoder) newtypePayload(pos token.Pos, fn func(shape.Decoder) error) error {
	if !d.c.ConsumeByte('(') {
		return d.c.Err(token.ExpectedArray)
	}
	if err := d.enter(); err != nil {
		return err
	}
	defer d.leave()
	if err := wrap(fn(payload{d}), pos); err != nil {
		return err
	}
	if err := d.ws(); err != nil {
		return err
	}
	if d.c.ConsumeByte(',') {
		if err := d.ws(); err != nil {
			return err
		}
	}
	if !d.c.ConsumeByte(')') {
		return d.c.Err(token.ExpectedArrayEnd)
	}
	return nil
}

func (d *Decoder) DecodeSeq(v shape.Visitor) error {
	pos, err := d.start()
	if err != nil {
		return err
	}
	switch d.c.Peek() {
	case '[', '(':
		return d.visitSeq(pos, v, false)
	}
	return d.c.Err(token.ExpectedArray)
}

func (d *Decoder) DecodeTuple(_ int, v shape.Visitor) error {
	return d.DecodeSeq(v)
}

func (d *Decoder) DecodeTupleStruct(name string, _ int, v shape.Visitor) error {
	if _, err := d.start(); err != nil {
		return err
	}
	if err := d.optionalName(name); err != nil {
		return err
	}
	return d.DecodeSeq(v)
}

func (d *Decoder) DecodeMap(v shape.Visitor) error {
	pos, err := d.start()
	if err != nil {
		return err
	}
	if d.c.Peek() != '{' {
		return d.c.Err(token.ExpectedMap)
	}
	return d.visitMap(pos, v, token.ExpectedMapEnd, false)
}

func (d *Decoder) DecodeStruct(name string, _ []string, v shape.Visitor) error {
	pos, err := d.start()
	if err != nil {
		return err
	}
	if id, n := d.c.PeekIdent(); n > 0 {
		if name != "" && id != name {
			return &token.Error{Code: token.ExpectedStructName, Pos: pos, Expected: name, Found: id}
		}
		d.c.Advance(n)
		if err := d.ws(); err != nil {
			return err
		}
	}
	switch d.c.Peek() {
	case '{', '(':
		return d.visitMap(pos, v, token.ExpectedStructEnd, false)
	}
	return &token.Error{Code: token.ExpectedNamedStruct, Pos: d.c.Pos(), Expected: name}
}

func (d *Decoder) DecodeEnum(_ string, _ []string, v shape.Visitor) error {
	pos, err := d.start()
	if err != nil {
		return err
	}
	if _, n := d.c.PeekIdent(); n == 0 {
		return d.c.Err(token.ExpectedIdentifier)
	}
	return wrap(v.VisitEnum(enumAccess{d}), pos)
}

func (d *Decoder) DecodeIdentifier(v shape.Visitor) error {
	pos, err := d.start()
	if err != nil {
		return err
	}
	if d.c.Peek() == '"' {
		s, err := d.c.ReadString()
		if err != nil {
			return err
		}
		return wrap(v.VisitString(s), pos)
	}
	id, err := d.c.ReadIdent()
	if err != nil {
		return err
	}
	return wrap(v.VisitString(id), pos)
}

// DecodeUntagged tries each candidate from the same position.
func (d *Decoder) DecodeUntagged(n int, try func(int, shape.Decoder) error) error {
	if err := d.ws(); err != nil {
		return err
	}
	m := d.c.Mark()
	depth := d.depth
	var err error
	for i := range n {
		if err = try(i, d); err == nil {
			return nil
		}
		if debug.Parse() {
			debug.Logf("untagged candidate %d failed at %s: %v", i, d.c.Pos(), err)
		}
		d.c.Reset(m)
		d.depth = depth
	}
	if err == nil {
		err = d.c.Errorf("no variants to try")
	}
	return err
}

// optionalName consumes an identifier directly followed by an opening
// parenthesis, checking it against name.
func (d *Decoder) optionalName(name string) error {
	id, n := d.peekName("(")
	if n == 0 {
		return nil
	}
	if name != "" && id != name {
		return &token.Error{Code: token.ExpectedStructName, Pos: d.c.Pos(), Expected: name, Found: id}
	}
	d.c.Advance(n)
	return d.ws()
}
