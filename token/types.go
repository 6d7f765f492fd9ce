package token

import "unicode/utf8"

// Type classifies the next token without consuming it.
type Type int

const (
	TEOF Type = iota
	TIdent
	TString
	TChar
	TNumber
	TLParen
	TRParen
	TLSquare
	TRSquare
	TLCurl
	TRCurl
	TLAngle
	TRAngle
	TColon
	TComma
	TSemi
	TUnknown
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TEOF:     "end of input",
		TIdent:   "identifier",
		TString:  "string",
		TChar:    "char",
		TNumber:  "number",
		TLParen:  "(",
		TRParen:  ")",
		TLSquare: "[",
		TRSquare: "]",
		TLCurl:   "{",
		TRCurl:   "}",
		TLAngle:  "<",
		TRAngle:  ">",
		TColon:   ":",
		TComma:   ",",
		TSemi:    ";",
	}[t]
	if ok {
		return s
	}
	return "unknown"
}

// PeekType classifies the token at the cursor. Whitespace must already be
// skipped.
func (c *Cursor) PeekType() Type {
	if c.EOF() {
		return TEOF
	}
	switch b := c.Peek(); b {
	case '"':
		return TString
	case '\'':
		return TChar
	case '(':
		return TLParen
	case ')':
		return TRParen
	case '[':
		return TLSquare
	case ']':
		return TRSquare
	case '{':
		return TLCurl
	case '}':
		return TRCurl
	case '<':
		return TLAngle
	case '>':
		return TRAngle
	case ':':
		return TColon
	case ',':
		return TComma
	case ';':
		return TSemi
	case '+', '-':
		return TNumber
	default:
		if b >= '0' && b <= '9' {
			return TNumber
		}
	}
	if c.HasWord(KwInf) || c.HasWord(KwNaN) {
		return TNumber
	}
	if _, n := c.PeekBare(); n > 0 {
		return TIdent
	}
	return TUnknown
}

// Found describes the token at the cursor for error messages.
func (c *Cursor) Found() string {
	switch t := c.PeekType(); t {
	case TIdent:
		id, _ := c.PeekBare()
		return "`" + id + "`"
	case TUnknown:
		r, _ := utf8.DecodeRune(c.Rest())
		return "`" + string(r) + "`"
	default:
		return t.String()
	}
}
