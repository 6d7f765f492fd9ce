package parse

import (
	"github.com/liabri/zmerald/shape"
	"github.com/liabri/zmerald/token"
)

// payload decodes the inside of a newtype's parentheses. Structs and
// tuples may appear there without their own brackets, so Name(x: 1) and
// Name(1, 2) are read as if written Name((x: 1)) and Name((1, 2)).
type payload struct {
	*Decoder
}

func (p payload) closeAhead() (token.Pos, bool, error) {
	pos, err := p.start()
	return pos, !p.c.EOF() && p.c.Peek() == ')', err
}

func (p payload) DecodeAny(v shape.Visitor) error {
	pos, closing, err := p.closeAhead()
	if err != nil {
		return err
	}
	switch {
	case closing:
		return wrap(v.VisitUnit(), pos)
	case p.fieldListAhead():
		return p.visitMap(pos, v, token.ExpectedStructEnd, true)
	}
	return p.Decoder.DecodeAny(v)
}

func (p payload) DecodeOption(v shape.Visitor) error {
	pos, err := p.start()
	if err != nil {
		return err
	}
	if p.c.ConsumeWord(token.KwNone) {
		return wrap(v.VisitNone(), pos)
	}
	return wrap(v.VisitSome(p), pos)
}

func (p payload) DecodeUnit(v shape.Visitor) error {
	pos, closing, err := p.closeAhead()
	if err != nil {
		return err
	}
	if closing {
		return wrap(v.VisitUnit(), pos)
	}
	return p.Decoder.DecodeUnit(v)
}

func (p payload) DecodeUnitStruct(name string, v shape.Visitor) error {
	pos, closing, err := p.closeAhead()
	if err != nil {
		return err
	}
	if closing {
		return wrap(v.VisitUnit(), pos)
	}
	return p.Decoder.DecodeUnitStruct(name, v)
}

func (p payload) DecodeStruct(name string, fields []string, v shape.Visitor) error {
	pos, closing, err := p.closeAhead()
	if err != nil {
		return err
	}
	if closing || p.fieldListAhead() {
		return p.visitMap(pos, v, token.ExpectedStructEnd, true)
	}
	return p.Decoder.DecodeStruct(name, fields, v)
}

func (p payload) DecodeTuple(n int, v shape.Visitor) error {
	pos, err := p.start()
	if err != nil {
		return err
	}
	if n != 1 && p.wholeGroup() {
		return p.Decoder.DecodeTuple(n, v)
	}
	return p.visitSeq(pos, v, true)
}

func (p payload) DecodeTupleStruct(name string, n int, v shape.Visitor) error {
	pos, err := p.start()
	if err != nil {
		return err
	}
	if n != 1 && p.wholeGroup() {
		return p.Decoder.DecodeTupleStruct(name, n, v)
	}
	return p.visitSeq(pos, v, true)
}

// wholeGroup reports whether the payload is a single parenthesized
// group, optionally named, running up to the closing parenthesis. A one
// element tuple is always read bare: Name((1, 2)) holds the tuple (1, 2).
func (p payload) wholeGroup() bool {
	m := p.c.Mark()
	defer p.c.Reset(m)
	if _, n := p.peekName("("); n > 0 {
		p.c.Advance(n)
		if p.ws() != nil {
			return false
		}
	}
	if p.c.Peek() != '(' || !p.skipGroup() {
		return false
	}
	if p.ws() != nil {
		return false
	}
	if p.c.ConsumeByte(',') && p.ws() != nil {
		return false
	}
	return p.c.Peek() == ')'
}

// nested decodes the value of an outer <k> v <k> v entry: the bracketed
// run itself forms a map.
type nested struct {
	*Decoder
}

func (n nested) visit(v shape.Visitor) error {
	pos, err := n.start()
	if err != nil {
		return err
	}
	if err := n.enter(); err != nil {
		return err
	}
	defer n.leave()
	return wrap(v.VisitMap(nestedAccess{n.Decoder}), pos)
}

func (n nested) DecodeAny(v shape.Visitor) error     { return n.visit(v) }
func (n nested) DecodeIgnored(v shape.Visitor) error { return n.visit(v) }
func (n nested) DecodeMap(v shape.Visitor) error     { return n.visit(v) }

func (n nested) DecodeStruct(_ string, _ []string, v shape.Visitor) error {
	return n.visit(v)
}

func (n nested) DecodeOption(v shape.Visitor) error {
	pos, err := n.start()
	if err != nil {
		return err
	}
	return wrap(v.VisitSome(n), pos)
}

func (n nested) DecodeNewtypeStruct(_ string, v shape.Visitor) error {
	pos, err := n.start()
	if err != nil {
		return err
	}
	return wrap(v.VisitNewtype(n), pos)
}
