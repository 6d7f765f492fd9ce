package parse

import (
	"errors"

	"github.com/liabri/zmerald/token"
)

var (
	errInternal = errors.New("internal parse error")
)

// wrap positions err at pos unless it already carries a position.
func wrap(err error, pos token.Pos) error {
	if err == nil {
		return nil
	}
	return token.AsError(err, pos)
}
