package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/liabri/zmerald/ir"
)

// Logf writes a line to stderr. Plain Go data arguments are rendered as
// indented JSON and Values compactly.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(x, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = string(d)
		case ir.Value:
			args[i] = x.GoString()
		case *ir.Value:
			if x != nil {
				args[i] = x.GoString()
			}
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		os.Stderr.Write([]byte{'\n'})
	}
}
