package token

import "fmt"

// Pos is a 1-indexed line and column. Columns count runes, not bytes.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// IsZero reports whether p carries no position, as for errors raised
// outside of text decoding.
func (p Pos) IsZero() bool {
	return p.Line == 0 && p.Col == 0
}
