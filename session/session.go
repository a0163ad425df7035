package session

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"bridgescore/logging"
	"bridgescore/types"
	"bridgescore/util"
)

const idLength = 6

// Session is the table and the boards played at it, in the order added.
type Session struct {
	id      string
	table   *Table
	entries []*Entry
}

// Totals are score sheet columns. A made contract is credited to the
// declaring side and a penalty to the defenders.
type Totals struct {
	NS     int
	EW     int
	Scored int
}

func New(table *Table) (*Session, error) {
	id, err := util.GenerateShortID(idLength)
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}
	return NewWithID(id, table)
}

func NewWithID(code string, table *Table) (*Session, error) {
	id, err := util.NormalizeShortID(code)
	if err != nil {
		return nil, fmt.Errorf("session id %q: %w", code, err)
	}
	if table == nil {
		table = NewTable()
	}
	logging.Log.WithField("session", id).Debug("session opened")
	return &Session{id: id, table: table}, nil
}

func (s *Session) ID() string    { return s.id }
func (s *Session) Table() *Table { return s.table }

func (s *Session) log() *logrus.Entry {
	return logging.Log.WithField("session", s.id)
}

// Add opens a new board for declarer.
func (s *Session) Add(declarer types.Seat, board int) (*Entry, error) {
	if board <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBoard, board)
	}
	e := NewEntry(s.table, declarer, board)
	s.entries = append(s.entries, e)
	s.log().WithFields(logrus.Fields{
		"entry":    e.ID(),
		"board":    board,
		"declarer": declarer,
		"vul":      e.Vulnerability(),
	}).Debug("board added")
	return e, nil
}

// Entries returns the boards in play order. The slice is a copy.
func (s *Session) Entries() []*Entry {
	out := make([]*Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Session) Find(id uuid.UUID) (*Entry, error) {
	for _, e := range s.entries {
		if e.ID() == id {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
}

func (s *Session) Remove(id uuid.UUID) error {
	for i, e := range s.entries {
		if e.ID() == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.log().WithField("entry", id).Debug("board removed")
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
}

// Totals adds up every board that has a value.
func (s *Session) Totals() Totals {
	var t Totals
	for _, e := range s.entries {
		side, v, ok := e.Credit()
		if !ok {
			continue
		}
		t.Scored++
		switch side {
		case types.NorthSouth:
			t.NS += v
		case types.EastWest:
			t.EW += v
		}
	}
	return t
}
