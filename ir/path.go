package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path addresses values inside a Value tree. It is written as
// `$.field[0].'quoted.field'`, with `[*]` selecting every element and `..`
// every descendant. The leading `$` may be omitted.
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	sub := false
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Subtree:
			buf.WriteString("..")
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Field != nil:
			if !sub {
				buf.WriteByte('.')
			}
			buf.WriteString(pathField(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
		sub = x.Subtree
	}
	return buf.String()
}

func pathField(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
		return f
	}
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

func ParsePath(p string) (*Path, error) {
	switch {
	case strings.HasPrefix(p, "$"):
		p = p[1:]
	case p != "" && p[0] != '.' && p[0] != '[':
		p = "." + p
	}
	root := &Path{}
	if err := parseFrag(p, root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	var rest string
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			rest = frag[2:]
			if rest != "" && rest[0] != '.' && rest[0] != '[' {
				rest = "." + rest
			}
			break
		}
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 && !parent.Subtree {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// child returns the member of v selected by one path step.
func (v Value) child(p *Path) (Value, error) {
	switch {
	case p.Index != nil:
		if v.Type != SeqType {
			return Value{}, fmt.Errorf("%w: expected Seq, got %s", ErrPath, v.Type)
		}
		i := *p.Index
		if i >= len(v.Seq) {
			return Value{}, fmt.Errorf("%w: index %d out of bounds (len %d)", ErrNotFound, i, len(v.Seq))
		}
		return v.Seq[i], nil
	case p.Field != nil:
		if v.Type != MapType {
			return Value{}, fmt.Errorf("%w: expected Map, got %s", ErrPath, v.Type)
		}
		res, ok := v.Map.GetString(*p.Field)
		if !ok {
			return Value{}, fmt.Errorf("%w: field %q", ErrNotFound, *p.Field)
		}
		return res, nil
	}
	return v, nil
}

// Get returns the single value addressed by path. Options are looked
// through.
func (v Value) Get(path string) (Value, error) {
	p, err := ParsePath(path)
	if err != nil {
		return Value{}, err
	}
	res := v
	for x := p; x != nil; x = x.Next {
		if x.IndexAll || x.Subtree {
			return Value{}, fmt.Errorf("%w: wildcard in %q", ErrPath, path)
		}
		for res.Type == OptionType && res.Option != nil {
			res = *res.Option
		}
		if res, err = res.child(x); err != nil {
			return Value{}, err
		}
	}
	return res, nil
}

// List returns every value addressed by path, which may contain [*] and
// .. wildcards.
func (v Value) List(path string) ([]Value, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return v.list(nil, p), nil
}

func (v Value) list(dst []Value, p *Path) []Value {
	if p == nil {
		return append(dst, v)
	}
	for v.Type == OptionType && v.Option != nil {
		v = *v.Option
	}
	switch {
	case p.Subtree:
		v.Visit(func(c Value) bool {
			dst = c.list(dst, p.Next)
			return true
		})
		return dst
	case p.IndexAll:
		for _, c := range v.members() {
			dst = c.list(dst, p.Next)
		}
		return dst
	case p.Index == nil && p.Field == nil:
		return v.list(dst, p.Next)
	}
	c, err := v.child(p)
	if err != nil {
		return dst
	}
	return c.list(dst, p.Next)
}

func (v Value) members() []Value {
	switch v.Type {
	case SeqType:
		return v.Seq
	case MapType:
		return v.Map.Values()
	case OptionType:
		if v.Option != nil {
			return []Value{*v.Option}
		}
	}
	return nil
}

// Visit calls f on v and, while f returns true, on its descendants in
// pre-order. Present options are looked through.
func (v Value) Visit(f func(Value) bool) {
	for v.Type == OptionType && v.Option != nil {
		v = *v.Option
	}
	if !f(v) {
		return
	}
	for _, c := range v.members() {
		c.Visit(f)
	}
}
