package encode

import "math"

// PrettyConfig controls pretty printing. The zero value is not useful;
// start from DefaultPrettyConfig. The With methods return modified copies.
type PrettyConfig struct {
	// DepthLimit is the nesting depth up to which containers are broken
	// over lines. Deeper containers are written on one line.
	DepthLimit int
	NewLine    string
	Indentor   string
	// Separator follows commas and colons on a single line.
	Separator   string
	StructNames bool
	// SeparateTupleMembers puts each tuple element on its own line.
	SeparateTupleMembers bool
	// EnumerateArrays marks sequence elements with their index, /*[i]*/.
	EnumerateArrays bool
	// DecimalFloats writes integral floats with a trailing .0.
	DecimalFloats bool
	// CompactArrays keeps sequences on one line.
	CompactArrays bool
}

func DefaultPrettyConfig() PrettyConfig {
	return PrettyConfig{
		DepthLimit: math.MaxInt,
		NewLine:    "\n",
		Indentor:   "    ",
		Separator:  " ",
	}
}

func (c PrettyConfig) WithDepthLimit(n int) PrettyConfig {
	c.DepthLimit = n
	return c
}

func (c PrettyConfig) WithNewLine(s string) PrettyConfig {
	c.NewLine = s
	return c
}

func (c PrettyConfig) WithIndentor(s string) PrettyConfig {
	c.Indentor = s
	return c
}

func (c PrettyConfig) WithSeparator(s string) PrettyConfig {
	c.Separator = s
	return c
}

func (c PrettyConfig) WithStructNames(v bool) PrettyConfig {
	c.StructNames = v
	return c
}

func (c PrettyConfig) WithSeparateTupleMembers(v bool) PrettyConfig {
	c.SeparateTupleMembers = v
	return c
}

func (c PrettyConfig) WithEnumerateArrays(v bool) PrettyConfig {
	c.EnumerateArrays = v
	return c
}

func (c PrettyConfig) WithDecimalFloats(v bool) PrettyConfig {
	c.DecimalFloats = v
	return c
}

func (c PrettyConfig) WithCompactArrays(v bool) PrettyConfig {
	c.CompactArrays = v
	return c
}

type prettyState struct {
	cfg    PrettyConfig
	indent int
	// seqIndex counts the elements of each open sequence
	seqIndex []int
}
