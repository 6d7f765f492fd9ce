package token

import (
	"errors"
	"fmt"
)

// Code classifies an [Error].
type Code int

const (
	Message Code = iota
	Eof
	ExpectedArray
	ExpectedArrayEnd
	ExpectedBoolean
	ExpectedComma
	ExpectedChar
	ExpectedFloat
	ExpectedInteger
	ExpectedOption
	ExpectedMap
	ExpectedMapColon
	ExpectedMapEnd
	ExpectedNamedStruct
	ExpectedStructName
	ExpectedStructEnd
	ExpectedUnit
	ExpectedString
	ExpectedStringEnd
	ExpectedIdentifier
	InvalidEscape
	IntegerOutOfBounds
	UnderscoreAtBeginning
	UnclosedBlockComment
	UnexpectedByte
	TrailingCharacters
	Base64Error
	ExceededRecursionLimit
	TypeMismatch
)

var codeNames = map[Code]string{
	Message:                "message",
	Eof:                    "unexpected end of input",
	ExpectedArray:          "expected array",
	ExpectedArrayEnd:       "expected end of array",
	ExpectedBoolean:        "expected boolean",
	ExpectedComma:          "expected comma",
	ExpectedChar:           "expected char",
	ExpectedFloat:          "expected float",
	ExpectedInteger:        "expected integer",
	ExpectedOption:         "expected option",
	ExpectedMap:            "expected map",
	ExpectedMapColon:       "expected colon",
	ExpectedMapEnd:         "expected end of map",
	ExpectedNamedStruct:    "expected named struct",
	ExpectedStructName:     "expected struct name",
	ExpectedStructEnd:      "expected end of struct",
	ExpectedUnit:           "expected unit",
	ExpectedString:         "expected string",
	ExpectedStringEnd:      "expected end of string",
	ExpectedIdentifier:     "expected identifier",
	InvalidEscape:          "invalid escape sequence",
	IntegerOutOfBounds:     "integer out of bounds",
	UnderscoreAtBeginning:  "found underscore at the beginning of a number",
	UnclosedBlockComment:   "unclosed block comment",
	UnexpectedByte:         "unexpected byte",
	TrailingCharacters:     "non-whitespace trailing characters",
	Base64Error:            "invalid base64",
	ExceededRecursionLimit: "exceeded recursion limit",
	TypeMismatch:           "type mismatch",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("<code %d>", int(c))
}

// Error lets a Code be used as an errors.Is target.
func (c Code) Error() string {
	return c.String()
}

// Error is the single error type of the decoding path.
//
// Expected and Found are filled for ExpectedNamedStruct, ExpectedStructName
// and TypeMismatch. Msg carries the text of Message errors and the detail of
// Base64Error and InvalidEscape. Err, if set, is the underlying cause.
type Error struct {
	Code     Code
	Pos      Pos
	Expected string
	Found    string
	Msg      string
	Err      error
}

func (e *Error) Error() string {
	msg := e.message()
	if e.Pos.IsZero() {
		return msg
	}
	return e.Pos.String() + ": " + msg
}

// Message returns the error text without its position.
func (e *Error) Message() string {
	return e.message()
}

func (e *Error) message() string {
	switch e.Code {
	case Message:
		return e.Msg
	case ExpectedNamedStruct:
		return fmt.Sprintf("expected named struct %q", e.Expected)
	case ExpectedStructName:
		return fmt.Sprintf("expected struct name %q, found %q", e.Expected, e.Found)
	case TypeMismatch:
		return fmt.Sprintf("invalid type: expected %s, found %s", e.Expected, e.Found)
	}
	if e.Msg != "" {
		return e.Code.String() + ": " + e.Msg
	}
	return e.Code.String()
}

func (e *Error) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.Code
}

func (e *Error) Unwrap() error {
	return e.Err
}

// At returns e positioned at p unless it already carries a position.
func (e *Error) At(p Pos) *Error {
	if !e.Pos.IsZero() {
		return e
	}
	c := *e
	c.Pos = p
	return &c
}

// Errorf returns a Message error with no position.
func Errorf(format string, args ...any) *Error {
	err := fmt.Errorf(format, args...)
	return &Error{Code: Message, Msg: err.Error(), Err: errors.Unwrap(err)}
}

// Mismatch returns a TypeMismatch error with no position.
func Mismatch(expected, found string) *Error {
	return &Error{Code: TypeMismatch, Expected: expected, Found: found}
}

// AsError converts err into an *Error positioned at p. Errors that are not
// already *Error become Message errors wrapping err.
func AsError(err error, p Pos) *Error {
	if err == nil {
		return nil
	}
	var te *Error
	if errors.As(err, &te) {
		return te.At(p)
	}
	return &Error{Code: Message, Pos: p, Msg: err.Error(), Err: err}
}
