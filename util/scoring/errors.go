package scoring

import "errors"

var (
	ErrIncomplete      = errors.New("contract incomplete")
	ErrInvalidNumber   = errors.New("invalid contract level")
	ErrInvalidSuit     = errors.New("invalid contract suit")
	ErrInvalidTrailing = errors.New("invalid trailing characters")
)

var (
	ErrInvalidResult = errors.New("invalid result")
)
