package encode

import (
	"bytes"
	"encoding/base64"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/liabri/zmerald/debug"
	"github.com/liabri/zmerald/gomap"
	"github.com/liabri/zmerald/ir"
	"github.com/liabri/zmerald/shape"
	"github.com/liabri/zmerald/token"
)

// Serializer writes one value to an io.Writer. Without a PrettyConfig it
// writes the canonical form: no optional whitespace and no trailing
// commas.
type Serializer struct {
	w      io.Writer
	pretty *prettyState

	Color func(ir.Type, ColorAttr, string) string
}

var _ shape.Encoder = (*Serializer)(nil)

func NewSerializer(w io.Writer, opts ...EncodeOption) *Serializer {
	s := &Serializer{w: w}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Encode writes the Go value v to w.
func Encode(v any, w io.Writer, opts ...EncodeOption) error {
	return gomap.Encode(NewSerializer(w, opts...), v)
}

func EncodeString(v any, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *Serializer) write(str string) error {
	_, err := io.WriteString(s.w, str)
	return err
}

func (s *Serializer) paint(t ir.Type, a ColorAttr, str string) error {
	if s.Color != nil {
		str = s.Color(t, a, str)
	}
	return s.write(str)
}

func (s *Serializer) sep(t ir.Type, str string) error {
	return s.paint(t, SepColor, str)
}

// within reports whether the current depth is still pretty printed.
func (s *Serializer) within() bool {
	return s.pretty != nil && s.pretty.indent <= s.pretty.cfg.DepthLimit
}

func (s *Serializer) structNames() bool {
	return s.pretty != nil && s.pretty.cfg.StructNames
}

// structName writes the name of a struct when StructNames is set.
// Anonymous structs have none.
func (s *Serializer) structName(name string) error {
	if !s.structNames() || name == "" {
		return nil
	}
	return s.identifier(name)
}

func (s *Serializer) separateTupleMembers() bool {
	return s.pretty != nil && s.pretty.cfg.SeparateTupleMembers
}

func (s *Serializer) compactArrays() bool {
	return s.pretty != nil && s.pretty.cfg.CompactArrays
}

func (s *Serializer) startIndent(empty bool) error {
	if s.pretty == nil {
		return nil
	}
	s.pretty.indent++
	if s.within() && !empty {
		return s.write(s.pretty.cfg.NewLine)
	}
	return nil
}

func (s *Serializer) indent() error {
	if !s.within() {
		return nil
	}
	return s.write(strings.Repeat(s.pretty.cfg.Indentor, s.pretty.indent))
}

func (s *Serializer) endIndent(empty bool) error {
	if s.pretty == nil {
		return nil
	}
	var err error
	if s.within() && !empty {
		err = s.write(strings.Repeat(s.pretty.cfg.Indentor, s.pretty.indent-1))
	}
	s.pretty.indent--
	return err
}

// next writes the separator before every element but the first. broken
// selects a line break over the single line separator.
func (s *Serializer) next(t ir.Type, first, broken bool) error {
	if first {
		return nil
	}
	if err := s.sep(t, ","); err != nil {
		return err
	}
	if s.pretty == nil {
		return nil
	}
	if broken {
		return s.write(s.pretty.cfg.NewLine)
	}
	return s.write(s.pretty.cfg.Separator)
}

// close writes the trailing comma and line break of a pretty container.
func (s *Serializer) close(t ir.Type, first, broken bool) error {
	if first || !broken {
		return nil
	}
	if err := s.sep(t, ","); err != nil {
		return err
	}
	return s.write(s.pretty.cfg.NewLine)
}

func (s *Serializer) identifier(name string) error {
	if !token.IsIdent(name) {
		name = token.RawPrefix + name
	}
	return s.paint(ir.MapType, NameColor, name)
}

func (s *Serializer) EncodeBool(v bool) error {
	return s.paint(ir.BoolType, ValueColor, strconv.FormatBool(v))
}

func (s *Serializer) EncodeInt(v int64) error {
	return s.paint(ir.NumberType, ValueColor, strconv.FormatInt(v, 10))
}

func (s *Serializer) EncodeUint(v uint64) error {
	return s.paint(ir.NumberType, ValueColor, strconv.FormatUint(v, 10))
}

func (s *Serializer) EncodeFloat32(v float32) error {
	return s.paint(ir.NumberType, ValueColor, s.formatFloat(float64(v), 32))
}

func (s *Serializer) EncodeFloat64(v float64) error {
	return s.paint(ir.NumberType, ValueColor, s.formatFloat(v, 64))
}

// formatFloat writes the shortest text that reads back as f.
func (s *Serializer) formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return token.KwNaN
	case math.IsInf(f, 1):
		return token.KwInf
	case math.IsInf(f, -1):
		return "-" + token.KwInf
	}
	if a := math.Abs(f); a != 0 && (a < 1e-6 || a >= 1e21) {
		return strconv.FormatFloat(f, 'e', -1, bits)
	}
	res := strconv.FormatFloat(f, 'f', -1, bits)
	if s.pretty != nil && s.pretty.cfg.DecimalFloats && !strings.Contains(res, ".") {
		res += ".0"
	}
	return res
}

func (s *Serializer) EncodeChar(v rune) error {
	return s.paint(ir.CharType, ValueColor, token.QuoteChar(v))
}

func (s *Serializer) EncodeString(v string) error {
	return s.paint(ir.StringType, ValueColor, token.Quote(v))
}

func (s *Serializer) EncodeBytes(v []byte) error {
	return s.EncodeString(base64.StdEncoding.EncodeToString(v))
}

func (s *Serializer) EncodeNone() error {
	return s.paint(ir.OptionType, ValueColor, token.KwNone)
}

// EncodeSome writes the value alone; presence is implied.
func (s *Serializer) EncodeSome(fn func(shape.Encoder) error) error {
	return fn(s)
}

func (s *Serializer) EncodeUnit() error {
	return s.unit(false)
}

func (s *Serializer) unit(bare bool) error {
	if bare {
		return nil
	}
	return s.paint(ir.UnitType, ValueColor, "()")
}

func (s *Serializer) EncodeUnitStruct(name string) error {
	return s.unitStruct(name, false)
}

func (s *Serializer) unitStruct(name string, bare bool) error {
	if s.structNames() && name != "" && !bare {
		return s.identifier(name)
	}
	return s.unit(bare)
}

func (s *Serializer) EncodeUnitVariant(_, variant string) error {
	return s.identifier(variant)
}

func (s *Serializer) EncodeNewtypeStruct(name string, fn func(shape.Encoder) error) error {
	if err := s.structName(name); err != nil {
		return err
	}
	return s.wrapPayload(fn)
}

func (s *Serializer) EncodeNewtypeVariant(_, variant string, fn func(shape.Encoder) error) error {
	if err := s.identifier(variant); err != nil {
		return err
	}
	return s.wrapPayload(fn)
}

// wrapPayload writes (payload), letting the payload reuse the parentheses.
func (s *Serializer) wrapPayload(fn func(shape.Encoder) error) error {
	if err := s.sep(ir.SeqType, "("); err != nil {
		return err
	}
	if debug.Encode() {
		debug.Logf("encode: newtype payload at indent %d\n", s.depth())
	}
	if err := fn(payload{s}); err != nil {
		return err
	}
	return s.sep(ir.SeqType, ")")
}

func (s *Serializer) depth() int {
	if s.pretty == nil {
		return 0
	}
	return s.pretty.indent
}

func (s *Serializer) EncodeSeq(n int) (shape.SeqEncoder, error) {
	if err := s.sep(ir.SeqType, "["); err != nil {
		return nil, err
	}
	empty := n == 0
	if !s.compactArrays() {
		if err := s.startIndent(empty); err != nil {
			return nil, err
		}
	}
	if s.pretty != nil {
		s.pretty.seqIndex = append(s.pretty.seqIndex, 0)
	}
	return &seqEncoder{s: s, empty: empty, first: true}, nil
}

func (s *Serializer) EncodeTuple(n int) (shape.SeqEncoder, error) {
	return s.tuple(n, false)
}

func (s *Serializer) tuple(n int, bare bool) (shape.SeqEncoder, error) {
	if !bare {
		if err := s.sep(ir.SeqType, "("); err != nil {
			return nil, err
		}
	}
	empty := n == 0
	if s.separateTupleMembers() {
		if err := s.startIndent(empty); err != nil {
			return nil, err
		}
	}
	return &tupleEncoder{s: s, empty: empty, first: true, bare: bare}, nil
}

func (s *Serializer) EncodeTupleStruct(name string, n int) (shape.SeqEncoder, error) {
	return s.tupleStruct(name, n, false)
}

func (s *Serializer) tupleStruct(name string, n int, bare bool) (shape.SeqEncoder, error) {
	if !bare {
		if err := s.structName(name); err != nil {
			return nil, err
		}
	}
	return s.tuple(n, bare)
}

func (s *Serializer) EncodeTupleVariant(_, variant string, n int) (shape.SeqEncoder, error) {
	if err := s.identifier(variant); err != nil {
		return nil, err
	}
	return s.tuple(n, false)
}

func (s *Serializer) EncodeMap(n int) (shape.MapEncoder, error) {
	if err := s.sep(ir.MapType, "{"); err != nil {
		return nil, err
	}
	empty := n == 0
	if err := s.startIndent(empty); err != nil {
		return nil, err
	}
	return &mapEncoder{s: s, empty: empty, first: true}, nil
}

func (s *Serializer) EncodeStruct(name string, n int) (shape.StructEncoder, error) {
	if err := s.structName(name); err != nil {
		return nil, err
	}
	return s.structBody(n, false)
}

func (s *Serializer) structBody(n int, bare bool) (shape.StructEncoder, error) {
	if !bare {
		if err := s.sep(ir.MapType, "{"); err != nil {
			return nil, err
		}
	}
	empty := n == 0
	if err := s.startIndent(empty); err != nil {
		return nil, err
	}
	return &structEncoder{s: s, empty: empty, first: true, bare: bare}, nil
}

func (s *Serializer) EncodeStructVariant(_, variant string, n int) (shape.StructEncoder, error) {
	if err := s.identifier(variant); err != nil {
		return nil, err
	}
	return s.structBody(n, false)
}

// payload is the Encoder handed to a newtype's payload. Unit values write
// nothing, structs and tuples write no brackets of their own. The first
// emission consumes the flag.
type payload struct {
	*Serializer
}

func (p payload) EncodeSome(fn func(shape.Encoder) error) error {
	return fn(p)
}

func (p payload) EncodeUnit() error {
	return p.unit(true)
}

func (p payload) EncodeUnitStruct(name string) error {
	return p.unitStruct(name, true)
}

func (p payload) EncodeTuple(n int) (shape.SeqEncoder, error) {
	return p.tuple(n, true)
}

func (p payload) EncodeTupleStruct(name string, n int) (shape.SeqEncoder, error) {
	return p.tupleStruct(name, n, true)
}

func (p payload) EncodeStruct(_ string, n int) (shape.StructEncoder, error) {
	return p.structBody(n, true)
}

type seqEncoder struct {
	s     *Serializer
	empty bool
	first bool
}

func (e *seqEncoder) Element(fn func(shape.Encoder) error) error {
	s := e.s
	if err := s.next(ir.SeqType, e.first, s.within() && !s.compactArrays()); err != nil {
		return err
	}
	e.first = false
	if !s.compactArrays() {
		if err := s.indent(); err != nil {
			return err
		}
	}
	if s.within() && s.pretty.cfg.EnumerateArrays {
		top := len(s.pretty.seqIndex) - 1
		mark := "/*[" + strconv.Itoa(s.pretty.seqIndex[top]) + "]*/ "
		s.pretty.seqIndex[top]++
		if err := s.paint(ir.SeqType, CommentColor, mark); err != nil {
			return err
		}
	}
	return fn(s)
}

func (e *seqEncoder) End() error {
	s := e.s
	if err := s.close(ir.SeqType, e.first, s.within() && !s.compactArrays()); err != nil {
		return err
	}
	if !s.compactArrays() {
		if err := s.endIndent(e.empty); err != nil {
			return err
		}
	}
	if s.pretty != nil {
		s.pretty.seqIndex = s.pretty.seqIndex[:len(s.pretty.seqIndex)-1]
	}
	return s.sep(ir.SeqType, "]")
}

type tupleEncoder struct {
	s     *Serializer
	empty bool
	first bool
	bare  bool
}

func (e *tupleEncoder) Element(fn func(shape.Encoder) error) error {
	s := e.s
	if err := s.next(ir.SeqType, e.first, s.within() && s.separateTupleMembers()); err != nil {
		return err
	}
	e.first = false
	if s.separateTupleMembers() {
		if err := s.indent(); err != nil {
			return err
		}
	}
	return fn(s)
}

func (e *tupleEncoder) End() error {
	s := e.s
	if err := s.close(ir.SeqType, e.first, s.within() && s.separateTupleMembers()); err != nil {
		return err
	}
	if s.separateTupleMembers() {
		if err := s.endIndent(e.empty); err != nil {
			return err
		}
	}
	if e.bare {
		return nil
	}
	return s.sep(ir.SeqType, ")")
}

type mapEncoder struct {
	s     *Serializer
	empty bool
	first bool
}

func (e *mapEncoder) Key(fn func(shape.Encoder) error) error {
	s := e.s
	if err := s.next(ir.MapType, e.first, s.within()); err != nil {
		return err
	}
	e.first = false
	if err := s.indent(); err != nil {
		return err
	}
	return fn(s)
}

func (e *mapEncoder) Value(fn func(shape.Encoder) error) error {
	if err := e.s.colon(); err != nil {
		return err
	}
	return fn(e.s)
}

func (s *Serializer) colon() error {
	if err := s.sep(ir.MapType, ":"); err != nil {
		return err
	}
	if s.pretty != nil {
		return s.write(s.pretty.cfg.Separator)
	}
	return nil
}

func (e *mapEncoder) End() error {
	s := e.s
	if err := s.close(ir.MapType, e.first, s.within()); err != nil {
		return err
	}
	if err := s.endIndent(e.empty); err != nil {
		return err
	}
	return s.sep(ir.MapType, "}")
}

type structEncoder struct {
	s     *Serializer
	empty bool
	first bool
	bare  bool
}

func (e *structEncoder) Field(name string, fn func(shape.Encoder) error) error {
	s := e.s
	if err := s.next(ir.MapType, e.first, s.within()); err != nil {
		return err
	}
	e.first = false
	if err := s.indent(); err != nil {
		return err
	}
	if !token.IsIdent(name) {
		name = token.RawPrefix + name
	}
	if err := s.paint(ir.MapType, FieldColor, name); err != nil {
		return err
	}
	if err := s.colon(); err != nil {
		return err
	}
	return fn(s)
}

func (e *structEncoder) End() error {
	s := e.s
	if err := s.close(ir.MapType, e.first, s.within()); err != nil {
		return err
	}
	if err := s.endIndent(e.empty); err != nil {
		return err
	}
	if e.bare {
		return nil
	}
	return s.sep(ir.MapType, "}")
}
