package encode

import (
	"bytes"
	"strings"
)

// MustString encodes v canonically and panics on failure.
func MustString(v any, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
