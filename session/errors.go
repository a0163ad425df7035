package session

import "errors"

var (
	ErrContractNotSet = errors.New("contract not set")
	ErrEntryNotFound  = errors.New("entry not found in session")
	ErrInvalidBoard   = errors.New("board number must be positive")
)
