package scoring

import (
	"fmt"
	"strings"

	"bridgescore/types"
)

// ParseError locates a contract parse failure. Err is one of ErrIncomplete,
// ErrInvalidNumber, ErrInvalidSuit or ErrInvalidTrailing.
type ParseError struct {
	Err   error
	Char  rune   // offending character, zero for ErrIncomplete
	Text  string // unmatched suit text, only for ErrInvalidSuit
	Index int    // rune offset of the offending character
}

func (e *ParseError) Error() string {
	switch e.Err {
	case ErrIncomplete:
		return e.Err.Error()
	case ErrInvalidSuit:
		return fmt.Sprintf("%s %q at %d", e.Err, e.Text, e.Index)
	}
	return fmt.Sprintf("%s %q at %d", e.Err, e.Char, e.Index)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Cursor returns the offset where the input should start being marked
// invalid. Incomplete input is not invalid yet, so it reports false.
func (e *ParseError) Cursor() (int, bool) {
	if e.Err == ErrIncomplete {
		return 0, false
	}
	return e.Index, true
}

func incomplete(at int) *ParseError {
	return &ParseError{Err: ErrIncomplete, Index: at}
}

// ParseContract reads "<level><suit><doubling>", e.g. "4HX" or "3ntxx".
// It consumes one token per stage, left to right.
func ParseContract(text string) (types.Contract, error) {
	chars := []rune(strings.ToUpper(text))
	pos := 0
	next := func() (rune, bool) {
		if pos >= len(chars) {
			return 0, false
		}
		c := chars[pos]
		pos++
		return c, true
	}

	c, ok := next()
	if !ok {
		return types.Contract{}, incomplete(pos)
	}
	if c < '1' || c > '7' {
		return types.Contract{}, &ParseError{Err: ErrInvalidNumber, Char: c, Index: pos - 1}
	}
	level := types.Level(c - '0')

	var suit types.Suit
	c, ok = next()
	if !ok {
		return types.Contract{}, incomplete(pos)
	}
	switch c {
	case 'C':
		suit = types.Clubs
	case 'D':
		suit = types.Diamonds
	case 'H':
		suit = types.Hearts
	case 'S':
		suit = types.Spades
	case 'N':
		t, ok := next()
		if !ok {
			return types.Contract{}, incomplete(pos)
		}
		if t != 'T' {
			return types.Contract{}, &ParseError{Err: ErrInvalidSuit, Char: t, Text: string([]rune{c, t}), Index: pos - 2}
		}
		suit = types.NoTrump
	default:
		return types.Contract{}, &ParseError{Err: ErrInvalidSuit, Char: c, Text: string(c), Index: pos - 1}
	}

	doubling := types.Undoubled
	if c, ok = next(); ok {
		if c != 'X' {
			return types.Contract{}, &ParseError{Err: ErrInvalidTrailing, Char: c, Index: pos - 1}
		}
		doubling = types.Doubled
		if c, ok = next(); ok {
			if c != 'X' {
				return types.Contract{}, &ParseError{Err: ErrInvalidTrailing, Char: c, Index: pos - 1}
			}
			doubling = types.Redoubled
		}
	}
	if c, ok = next(); ok {
		return types.Contract{}, &ParseError{Err: ErrInvalidTrailing, Char: c, Index: pos - 1}
	}

	return types.NewContract(suit, level, doubling)
}
