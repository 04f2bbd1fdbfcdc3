package catalog

import "errors"

var (
	ErrUnsupportedFormat = errors.New("catalog: unsupported file format")
	ErrUnknownKey        = errors.New("catalog: unknown key")
	ErrEmpty             = errors.New("catalog: empty catalog")
	ErrInvalidName       = errors.New("catalog: invalid identifier")
	ErrDuplicate         = errors.New("catalog: duplicate declaration")
	ErrRepresentation    = errors.New("catalog: unknown representation")
	ErrCanonical         = errors.New("catalog: invalid canonical sub-unit")
	ErrInvalidFactor     = errors.New("catalog: invalid factor")
	ErrInvalidSymbol     = errors.New("catalog: invalid symbol")
	ErrUnknownUnit       = errors.New("catalog: unknown unit")
	ErrMismatchedRep     = errors.New("catalog: mismatched representation")
	ErrMethodCollision   = errors.New("catalog: method name collision")
)
