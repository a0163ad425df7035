package types

import (
	"fmt"
	"strings"
)

type Seat uint8

const (
	North Seat = iota
	East
	South
	West
)

// Seats lists every seat in table order.
var Seats = [4]Seat{North, East, South, West}

type Partnership uint8

const (
	NorthSouth Partnership = iota
	EastWest
)

type Vulnerability uint8

const (
	VulNone Vulnerability = iota
	VulNS
	VulEW
	VulAll
)

func (s Seat) String() string {
	switch s {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Seat(%d)", uint8(s))
}

func (s Seat) Valid() bool {
	return s <= West
}

// Partnership returns the side the seat plays for.
func (s Seat) Partnership() Partnership {
	switch s {
	case North, South:
		return NorthSouth
	case East, West:
		return EastWest
	}
	return NorthSouth
}

func (s Seat) Partner() Seat {
	return (s + 2) % 4
}

// ParseSeat accepts a seat initial or full name in any case.
func ParseSeat(text string) (Seat, error) {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case "N", "NORTH":
		return North, nil
	case "E", "EAST":
		return East, nil
	case "S", "SOUTH":
		return South, nil
	case "W", "WEST":
		return West, nil
	}
	return North, fmt.Errorf("%w: %q", ErrInvalidSeat, text)
}

func (p Partnership) String() string {
	switch p {
	case NorthSouth:
		return "NS"
	case EastWest:
		return "EW"
	}
	return fmt.Sprintf("Partnership(%d)", uint8(p))
}

// Other returns the opposing partnership.
func (p Partnership) Other() Partnership {
	if p == NorthSouth {
		return EastWest
	}
	return NorthSouth
}

// VulnerabilityOf combines the two per-side flags.
func VulnerabilityOf(ns, ew bool) Vulnerability {
	switch {
	case ns && ew:
		return VulAll
	case ns:
		return VulNS
	case ew:
		return VulEW
	}
	return VulNone
}

// VulnerabilityForBoard follows the duplicate rotation counted from board 1:
// board 1 none, 2 North-South, 3 East-West, 4 both, then repeating.
func VulnerabilityForBoard(board int) Vulnerability {
	n := board - 1
	return VulnerabilityOf(n&1 == 1, n&2 == 2)
}

func (v Vulnerability) For(p Partnership) bool {
	switch p {
	case NorthSouth:
		return v == VulNS || v == VulAll
	case EastWest:
		return v == VulEW || v == VulAll
	}
	return false
}

func (v Vulnerability) String() string {
	switch v {
	case VulNone:
		return "None"
	case VulNS:
		return "NS"
	case VulEW:
		return "EW"
	case VulAll:
		return "All"
	}
	return fmt.Sprintf("Vulnerability(%d)", uint8(v))
}
