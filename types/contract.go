package types

import (
	"fmt"
	"strconv"
)

type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
	NoTrump
)

// Suits lists every contract denomination, lowest first.
var Suits = [5]Suit{Clubs, Diamonds, Hearts, Spades, NoTrump}

type Doubling uint8

const (
	Undoubled Doubling = iota
	Doubled
	Redoubled
)

// Doublings lists every doubling state.
var Doublings = [3]Doubling{Undoubled, Doubled, Redoubled}

// Level is the number of tricks beyond six the declarer commits to.
type Level uint8

const (
	MinLevel Level = 1
	MaxLevel Level = 7
)

// Contract is immutable once built. The zero value is not a contract;
// use NewContract or the scoring parser.
type Contract struct {
	suit    Suit
	level   Level
	doubled Doubling
}

func NewContract(suit Suit, level Level, doubled Doubling) (Contract, error) {
	if !suit.Valid() {
		return Contract{}, fmt.Errorf("%w: %d", ErrInvalidSuit, uint8(suit))
	}
	if !level.Valid() {
		return Contract{}, fmt.Errorf("%w: %d", ErrInvalidLevel, uint8(level))
	}
	if !doubled.Valid() {
		return Contract{}, fmt.Errorf("%w: %d", ErrInvalidDoubling, uint8(doubled))
	}
	return Contract{suit: suit, level: level, doubled: doubled}, nil
}

func (c Contract) Suit() Suit         { return c.suit }
func (c Contract) Level() Level       { return c.level }
func (c Contract) Doubling() Doubling { return c.doubled }

// Tricks is the number of tricks needed to make the contract.
func (c Contract) Tricks() int {
	return int(c.level) + 6
}

func (c Contract) IsZero() bool {
	return c.level == 0
}

// String renders the canonical form, e.g. "3NTXX".
func (c Contract) String() string {
	return c.level.String() + c.suit.String() + c.doubled.String()
}

func (s Suit) Valid() bool {
	return s <= NoTrump
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	case NoTrump:
		return "NT"
	}
	return fmt.Sprintf("Suit(%d)", uint8(s))
}

// Name is the long form used in printed charts.
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	case NoTrump:
		return "No Trump"
	}
	return s.String()
}

func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

func (l Level) String() string {
	return strconv.Itoa(int(l))
}

func (d Doubling) Valid() bool {
	return d <= Redoubled
}

func (d Doubling) String() string {
	switch d {
	case Undoubled:
		return ""
	case Doubled:
		return "X"
	case Redoubled:
		return "XX"
	}
	return fmt.Sprintf("Doubling(%d)", uint8(d))
}
