package scoring

import (
	"fmt"

	"bridgescore/types"
)

// Score is the rule set for one contract at one vulnerability. It is built
// whole by Derive and never modified afterwards.
type Score struct {
	Contract   types.Contract
	Vulnerable bool

	FirstTrickValue int // first trick, doubling applied
	TrickValue      int // each later trick, doubling applied
	MakingBonus     int // part-score or game bonus
	Insult          int
	SlamBonus       int
	ContractValue   int // everything awarded for making with no overtricks
	Overtrick       int

	FirstUndertrick int
	NextUndertricks int // second and third
	RestUndertricks int // fourth onwards
}

// ChartRow is the value of a made contract at a given number of tricks.
type ChartRow struct {
	Tricks     int
	Overtricks int
	Value      int
}

const (
	partScoreBonus = 50
	gameThreshold  = 100
)

func trickValue(s types.Suit) int {
	switch s {
	case types.Clubs, types.Diamonds:
		return 20
	case types.Hearts, types.Spades, types.NoTrump:
		return 30
	}
	panic(fmt.Sprintf("scoring: unknown suit %d", uint8(s)))
}

func firstTrickValue(s types.Suit) int {
	switch s {
	case types.NoTrump:
		return 40
	case types.Clubs, types.Diamonds, types.Hearts, types.Spades:
		return trickValue(s)
	}
	panic(fmt.Sprintf("scoring: unknown suit %d", uint8(s)))
}

func doublingFactor(d types.Doubling) int {
	switch d {
	case types.Undoubled:
		return 1
	case types.Doubled:
		return 2
	case types.Redoubled:
		return 4
	}
	panic(fmt.Sprintf("scoring: unknown doubling %d", uint8(d)))
}

func insultBonus(d types.Doubling) int {
	switch d {
	case types.Undoubled:
		return 0
	case types.Doubled:
		return 50
	case types.Redoubled:
		return 100
	}
	panic(fmt.Sprintf("scoring: unknown doubling %d", uint8(d)))
}

func gameBonus(vulnerable bool) int {
	if vulnerable {
		return 500
	}
	return 300
}

func slamBonus(level types.Level, vulnerable bool) int {
	switch level {
	case 1, 2, 3, 4, 5:
		return 0
	case 6:
		if vulnerable {
			return 750
		}
		return 500
	case 7:
		if vulnerable {
			return 1500
		}
		return 1000
	}
	panic(fmt.Sprintf("scoring: unknown level %d", uint8(level)))
}

func overtrickValue(s types.Suit, d types.Doubling, vulnerable bool) int {
	switch d {
	case types.Undoubled:
		return trickValue(s)
	case types.Doubled:
		if vulnerable {
			return 200
		}
		return 100
	case types.Redoubled:
		if vulnerable {
			return 400
		}
		return 200
	}
	panic(fmt.Sprintf("scoring: unknown doubling %d", uint8(d)))
}

// undertricks returns the penalty for the first, second and third, and
// fourth and later tricks down.
func undertricks(d types.Doubling, vulnerable bool) (first, next, rest int) {
	switch d {
	case types.Undoubled:
		if vulnerable {
			return 100, 100, 100
		}
		return 50, 50, 50
	case types.Doubled:
		if vulnerable {
			return 200, 300, 300
		}
		return 100, 200, 300
	case types.Redoubled:
		if vulnerable {
			return 400, 600, 600
		}
		return 200, 400, 600
	}
	panic(fmt.Sprintf("scoring: unknown doubling %d", uint8(d)))
}

// Derive computes the rule set for a contract played at the given
// vulnerability. Equal inputs always give equal Scores.
func Derive(c types.Contract, vulnerable bool) Score {
	suit, level, doubling := c.Suit(), c.Level(), c.Doubling()

	factor := doublingFactor(doubling)
	trick := trickValue(suit)
	first := firstTrickValue(suit)

	// Game is decided on trick score alone.
	tricksScore := factor * (first + (int(level)-1)*trick)
	making := partScoreBonus
	if tricksScore >= gameThreshold {
		making = gameBonus(vulnerable)
	}

	s := Score{
		Contract:        c,
		Vulnerable:      vulnerable,
		FirstTrickValue: first * factor,
		TrickValue:      trick * factor,
		MakingBonus:     making,
		Insult:          insultBonus(doubling),
		SlamBonus:       slamBonus(level, vulnerable),
		Overtrick:       overtrickValue(suit, doubling, vulnerable),
	}
	s.ContractValue = tricksScore + s.Insult + s.MakingBonus + s.SlamBonus
	s.FirstUndertrick, s.NextUndertricks, s.RestUndertricks = undertricks(doubling, vulnerable)
	return s
}

// TrickScore is the below-the-line value of the contracted tricks.
func (s Score) TrickScore() int {
	return s.FirstTrickValue + (int(s.Contract.Level())-1)*s.TrickValue
}

// Penalty is the positive number of points conceded for going down.
func (s Score) Penalty(down int) int {
	switch {
	case down <= 0:
		return 0
	case down == 1:
		return s.FirstUndertrick
	case down <= 3:
		return s.FirstUndertrick + (down-1)*s.NextUndertricks
	default:
		return s.FirstUndertrick + 2*s.NextUndertricks + (down-3)*s.RestUndertricks
	}
}

// Evaluate scores a result given as tricks over (positive or zero) or under
// (negative) the contract.
func (s Score) Evaluate(margin int) int {
	if margin < 0 {
		return -s.Penalty(-margin)
	}
	return s.ContractValue + s.Overtrick*margin
}

// Chart lists the value of the made contract for every possible trick count.
func (s Score) Chart() []ChartRow {
	need := s.Contract.Tricks()
	rows := make([]ChartRow, 0, totalTricks+1-need)
	for over := 0; need+over <= totalTricks; over++ {
		rows = append(rows, ChartRow{
			Tricks:     need + over,
			Overtricks: over,
			Value:      s.Evaluate(over),
		})
	}
	return rows
}

// Penalties lists the (negative) values for one to max tricks down.
func (s Score) Penalties(max int) []int {
	if max < 0 {
		max = 0
	}
	values := make([]int, 0, max)
	for down := 1; down <= max; down++ {
		values = append(values, s.Evaluate(-down))
	}
	return values
}

// ScoreContract is Derive followed by Evaluate.
func ScoreContract(c types.Contract, margin int, vulnerable bool) int {
	return Derive(c, vulnerable).Evaluate(margin)
}
