package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/liabri/zmerald/encode"
	"github.com/liabri/zmerald/ir"
)

// GetRaw returns the expression of a `.[expr]` reference, or "" if v is not
// one.
func GetRaw(v string) string {
	if len(v) < 3 || !strings.HasPrefix(v, ".[") || !strings.HasSuffix(v, "]") {
		return ""
	}
	return v[2 : len(v)-1]
}

// ExpandString replaces each `$[expr]` in v with the text of its result.
// Brackets inside an expression nest and quoted strings may hold `]`.
// Outside quotes `\]` and `\\` escape. An unterminated expression is kept
// literally.
func ExpandString(v string, doc ir.Value, env Env) (string, error) {
	return expandString(v, doc, "$", env)
}

func expandString(v string, doc ir.Value, where string, env Env) (string, error) {
	var out, key strings.Builder
	start := -1
	// depth counts brackets opened inside the expression; quote is the
	// delimiter of the string literal being read, if any
	depth := 0
	var quote byte
	for i := 0; i < len(v); i++ {
		c := v[i]
		if start == -1 {
			if c == '$' && i+1 < len(v) && v[i+1] == '[' {
				start = i
				key.Reset()
				depth, quote = 0, 0
				i++
				continue
			}
			out.WriteByte(c)
			continue
		}
		switch {
		case quote != 0:
			switch {
			case c == '\\' && i+1 < len(v) && v[i+1] == ']':
				i++
				key.WriteByte(']')
			case c == '\\' && i+1 < len(v):
				key.WriteByte(c)
				i++
				key.WriteByte(v[i])
			default:
				if c == quote {
					quote = 0
				}
				key.WriteByte(c)
			}
		case c == '\\':
			if i+1 < len(v) {
				i++
				key.WriteByte(v[i])
				continue
			}
			key.WriteByte(c)
		case c == '"' || c == '\'' || c == '`':
			quote = c
			key.WriteByte(c)
		case c == '[':
			depth++
			key.WriteByte(c)
		case c == ']' && depth > 0:
			depth--
			key.WriteByte(c)
		case c == ']':
			x, err := run(strings.TrimSpace(key.String()), doc, where, env)
			if err != nil {
				return "", err
			}
			s, err := text(x)
			if err != nil {
				return "", err
			}
			out.WriteString(s)
			start = -1
		default:
			key.WriteByte(c)
		}
	}
	if start != -1 {
		out.WriteString(v[start:])
	}
	return out.String(), nil
}

func text(x any) (string, error) {
	switch t := x.(type) {
	case string:
		return t, nil
	case nil:
		return "", nil
	case bool:
		return strconv.FormatBool(t), nil
	}
	v, err := FromAny(x)
	if err != nil {
		return "", err
	}
	return encode.EncodeString(v)
}

// ExpandValue returns a copy of v with every string expanded. Strings of the
// form `.[expr]` are replaced by the value of expr. Expressions see the
// whole of v as the document.
func ExpandValue(v ir.Value, env Env) (ir.Value, error) {
	return expand(v, v, "$", env)
}

func expand(v, doc ir.Value, where string, env Env) (ir.Value, error) {
	switch v.Type {
	case ir.StringType:
		if raw := GetRaw(v.String); raw != "" {
			return eval(raw, doc, where, env)
		}
		s, err := expandString(v.String, doc, where, env)
		if err != nil {
			return ir.Value{}, fmt.Errorf("%s: %w", where, err)
		}
		return ir.FromString(s), nil
	case ir.MapType:
		m := v.Map.Clone()
		for k, val := range v.Map.All() {
			ev, err := expand(val, doc, where+"."+k.KeyString(), env)
			if err != nil {
				return ir.Value{}, err
			}
			m.Insert(k, ev)
		}
		return ir.FromMap(m), nil
	case ir.SeqType:
		seq := make([]ir.Value, len(v.Seq))
		for i := range v.Seq {
			ev, err := expand(v.Seq[i], doc, fmt.Sprintf("%s[%d]", where, i), env)
			if err != nil {
				return ir.Value{}, err
			}
			seq[i] = ev
		}
		return ir.FromSeq(seq), nil
	case ir.OptionType:
		if v.Option != nil {
			ev, err := expand(*v.Option, doc, where, env)
			if err != nil {
				return ir.Value{}, err
			}
			return ir.Some(ev), nil
		}
	}
	return v, nil
}
