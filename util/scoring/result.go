package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"bridgescore/types"
)

const totalTricks = 13

// ParseResult reads a result the way score slips write it: "=" for made
// exactly, "+N" or "-N" for over and undertricks, or the number of tricks
// taken by declarer. It returns the margin against the contract level.
func ParseResult(text string, level types.Level) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidResult)
	}

	var margin int
	switch text[0] {
	case '=':
		if len(text) != 1 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidResult, text)
		}
		margin = 0
	case '+', '-':
		n, err := strconv.Atoi(text[1:])
		if err != nil || n < 0 || text[1] == '+' || text[1] == '-' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidResult, text)
		}
		margin = n
		if text[0] == '-' {
			margin = -n
		}
	default:
		taken, err := strconv.Atoi(text)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidResult, text)
		}
		margin = taken - int(level) - 6
	}

	if !ValidMargin(level, margin) {
		return 0, fmt.Errorf("%w: %q is not possible for level %s", ErrInvalidResult, text, level)
	}
	return margin, nil
}

// ValidMargin reports whether declarer could take level+6+margin tricks.
func ValidMargin(level types.Level, margin int) bool {
	taken := int(level) + 6 + margin
	return taken >= 0 && taken <= totalTricks
}

// FormatResult renders a margin as "=", "+N" or "-N".
func FormatResult(margin int) string {
	if margin == 0 {
		return "="
	}
	return fmt.Sprintf("%+d", margin)
}
