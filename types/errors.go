package types

import "errors"

var (
	ErrInvalidSeat     = errors.New("invalid seat")
	ErrInvalidSuit     = errors.New("invalid contract suit")
	ErrInvalidLevel    = errors.New("contract level must be between 1 and 7")
	ErrInvalidDoubling = errors.New("invalid doubling state")
)
