package dim

import "errors"

var (
	ErrSyntax        = errors.New("dim: invalid quantity syntax")
	ErrUnknownSymbol = errors.New("dim: unknown unit symbol")
	ErrRange         = errors.New("dim: quantity out of range")
)
