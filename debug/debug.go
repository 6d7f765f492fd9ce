package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
	Bind   bool
	Eval   bool
	Patch  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("ZMR_DEBUG_PARSE")
	d.Encode = boolEnv("ZMR_DEBUG_ENCODE")
	d.Bind = boolEnv("ZMR_DEBUG_BIND")
	d.Eval = boolEnv("ZMR_DEBUG_EVAL")
	d.Patch = boolEnv("ZMR_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Bind() bool {
	return d.Bind
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
