package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridgescore/types"
)

func TestNewSession(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)
	assert.Len(t, s.ID(), 6)
	assert.NotNil(t, s.Table())
	assert.Empty(t, s.Entries())

	s, err = NewWithID("Club42", nil)
	require.NoError(t, err)
	assert.Equal(t, "club42", s.ID())

	_, err = NewWithID("club-42", nil)
	assert.Error(t, err)
}

func TestSessionAdd(t *testing.T) {
	table := NewTable()
	table.SetPlayer(types.South, "Erin")
	s, err := NewWithID("abc", table)
	require.NoError(t, err)

	e, err := s.Add(types.South, 2)
	require.NoError(t, err)
	assert.Equal(t, "Erin", e.Name())
	assert.True(t, e.IsVulnerable())

	_, err = s.Add(types.North, 0)
	assert.ErrorIs(t, err, ErrInvalidBoard)
	assert.Len(t, s.Entries(), 1)
}

func TestSessionFindRemove(t *testing.T) {
	s, err := NewWithID("abc", nil)
	require.NoError(t, err)

	first, err := s.Add(types.North, 1)
	require.NoError(t, err)
	second, err := s.Add(types.East, 2)
	require.NoError(t, err)

	got, err := s.Find(second.ID())
	require.NoError(t, err)
	assert.Same(t, second, got)

	require.NoError(t, s.Remove(first.ID()))
	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Same(t, second, entries[0])

	_, err = s.Find(first.ID())
	assert.ErrorIs(t, err, ErrEntryNotFound)
	assert.ErrorIs(t, s.Remove(uuid.New()), ErrEntryNotFound)
}

func TestSessionTotals(t *testing.T) {
	s, err := NewWithID("abc", nil)
	require.NoError(t, err)

	record := func(declarer types.Seat, board int, text string, margin int) {
		t.Helper()
		e, err := s.Add(declarer, board)
		require.NoError(t, err)
		e.SetContract(contract(t, text))
		require.NoError(t, e.Record(margin))
	}

	// NS vulnerable on board 2: 4S= is 620 to NS.
	record(types.North, 2, "4S", 0)
	// EW vulnerable on board 3: 3NT-2 is 200 to NS.
	record(types.East, 3, "3NT", -2)
	// Nobody vulnerable on board 1: 1NT+1 is 120 to EW.
	record(types.West, 1, "1NT", 1)

	// No result yet, not counted.
	_, err = s.Add(types.South, 4)
	require.NoError(t, err)

	assert.Equal(t, Totals{NS: 820, EW: 120, Scored: 3}, s.Totals())
}
