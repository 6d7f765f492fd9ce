package token

// Words with a fixed meaning when they appear bare.
const (
	KwNone  = "None"
	KwSome  = "Some"
	KwTrue  = "true"
	KwFalse = "false"
	KwInf   = "inf"
	KwNaN   = "NaN"
)

// IsKeyword reports whether id would not be read back as a plain
// identifier when written bare.
func IsKeyword(id string) bool {
	switch id {
	case KwNone, KwTrue, KwFalse, KwInf, KwNaN:
		return true
	}
	return false
}
