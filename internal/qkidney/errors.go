// errors.go defines sentinel errors for QKidney argument handling.

package qkidney

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrInvalidArgs  = errors.New("invalid qkidney arguments")
	ErrUnknownModel = errors.New("unknown qkidney model")
	ErrUnknownSex   = errors.New("unknown sex")
	ErrUnknownArg   = errors.New("unknown qkidney argument")
	ErrBadValue     = errors.New("malformed argument value")
)

// parseFloat accepts either "." or "," as the decimal separator.
func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.Replace(strings.TrimSpace(s), ",", ".", 1), 64)
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
