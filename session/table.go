package session

import "bridgescore/types"

// Table holds the player names at the four seats.
type Table struct {
	players [4]string
}

func NewTable() *Table {
	t := &Table{}
	for _, seat := range types.Seats {
		t.players[seat] = seat.String()
	}
	return t
}

func (t *Table) Player(seat types.Seat) string {
	return t.players[seat%4]
}

func (t *Table) SetPlayer(seat types.Seat, name string) {
	t.players[seat%4] = name
}

// Pair returns the two names of a partnership, North or East first.
func (t *Table) Pair(p types.Partnership) (string, string) {
	if p == types.NorthSouth {
		return t.Player(types.North), t.Player(types.South)
	}
	return t.Player(types.East), t.Player(types.West)
}
