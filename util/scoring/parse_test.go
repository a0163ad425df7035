package scoring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridgescore/types"
)

func mustParse(t *testing.T, text string) types.Contract {
	t.Helper()
	c, err := ParseContract(text)
	require.NoError(t, err, text)
	return c
}

func TestParseRoundTrip(t *testing.T) {
	for _, suit := range types.Suits {
		for level := types.MinLevel; level <= types.MaxLevel; level++ {
			for _, doubling := range types.Doublings {
				want, err := types.NewContract(suit, level, doubling)
				require.NoError(t, err)

				text := want.String()
				got := mustParse(t, text)
				assert.Equal(t, want, got, text)
				assert.Equal(t, text, got.String())
			}
		}
	}
}

func TestParseNormalizesCase(t *testing.T) {
	assert.Equal(t, "3NTXX", mustParse(t, "3ntxx").String())
	assert.Equal(t, "4HX", mustParse(t, "4hX").String())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  *ParseError
	}{
		{"9C", &ParseError{Err: ErrInvalidNumber, Char: '9', Index: 0}},
		{"0C", &ParseError{Err: ErrInvalidNumber, Char: '0', Index: 0}},
		{"C4", &ParseError{Err: ErrInvalidNumber, Char: 'C', Index: 0}},
		{"4X", &ParseError{Err: ErrInvalidSuit, Char: 'X', Text: "X", Index: 1}},
		{"4NX", &ParseError{Err: ErrInvalidSuit, Char: 'X', Text: "NX", Index: 1}},
		{"4NTY", &ParseError{Err: ErrInvalidTrailing, Char: 'Y', Index: 3}},
		{"4NTXXX", &ParseError{Err: ErrInvalidTrailing, Char: 'X', Index: 5}},
		{"4NTXY", &ParseError{Err: ErrInvalidTrailing, Char: 'Y', Index: 4}},
		{"4HY", &ParseError{Err: ErrInvalidTrailing, Char: 'Y', Index: 2}},
		{"4H ", &ParseError{Err: ErrInvalidTrailing, Char: ' ', Index: 2}},
		{"2SXX2", &ParseError{Err: ErrInvalidTrailing, Char: '2', Index: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseContract(tt.input)
			var perr *ParseError
			require.True(t, errors.As(err, &perr), "want *ParseError, got %v", err)
			assert.Equal(t, tt.want, perr)
			assert.ErrorIs(t, err, tt.want.Err)
		})
	}
}

func TestParseIncomplete(t *testing.T) {
	for _, input := range []string{"", "4", "4N"} {
		_, err := ParseContract(input)
		assert.ErrorIs(t, err, ErrIncomplete, "input %q", input)
	}
}

func TestParseErrorCursor(t *testing.T) {
	tests := []struct {
		input string
		at    int
		ok    bool
	}{
		{"9C", 0, true},
		{"4X", 1, true},
		{"4NX", 1, true},
		{"4NTY", 3, true},
		{"4NTXXX", 5, true},
		{"4N", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		_, err := ParseContract(tt.input)
		var perr *ParseError
		require.True(t, errors.As(err, &perr), tt.input)

		at, ok := perr.Cursor()
		assert.Equal(t, tt.ok, ok, tt.input)
		if tt.ok {
			assert.Equal(t, tt.at, at, tt.input)
		}
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := ParseContract("4NTY")
	require.Error(t, err)
	assert.Equal(t, `invalid trailing characters 'Y' at 3`, err.Error())

	_, err = ParseContract("4NX")
	require.Error(t, err)
	assert.Equal(t, `invalid contract suit "NX" at 1`, err.Error())

	_, err = ParseContract("4")
	require.Error(t, err)
	assert.Equal(t, "contract incomplete", err.Error())
}
