package session

import (
	"github.com/google/uuid"

	"bridgescore/types"
	"bridgescore/util/scoring"
)

// Entry is the record of one board. Its Score is rebuilt whenever the
// contract or the vulnerability changes, and its value is present only
// once both a contract and a result are set.
type Entry struct {
	id       uuid.UUID
	declarer types.Seat
	name     string
	board    int

	nsVulnerable bool
	ewVulnerable bool

	contract    types.Contract
	score       scoring.Score
	hasContract bool

	result    int
	value     int
	hasResult bool
}

// NewEntry starts a board for the declarer currently seated at table.
// Vulnerability defaults from the board number.
func NewEntry(table *Table, declarer types.Seat, board int) *Entry {
	if table == nil {
		table = NewTable()
	}
	vul := types.VulnerabilityForBoard(board)
	return &Entry{
		id:           uuid.New(),
		declarer:     declarer,
		name:         table.Player(declarer),
		board:        board,
		nsVulnerable: vul.For(types.NorthSouth),
		ewVulnerable: vul.For(types.EastWest),
	}
}

func (e *Entry) ID() uuid.UUID           { return e.id }
func (e *Entry) Declarer() types.Seat    { return e.declarer }
func (e *Entry) Name() string            { return e.name }
func (e *Entry) Board() int              { return e.board }
func (e *Entry) HasContract() bool       { return e.hasContract }
func (e *Entry) Side() types.Partnership { return e.declarer.Partnership() }

func (e *Entry) Contract() (types.Contract, bool) {
	return e.contract, e.hasContract
}

func (e *Entry) Score() (scoring.Score, bool) {
	return e.score, e.hasContract
}

func (e *Entry) Result() (int, bool) {
	return e.result, e.hasResult
}

// Value is the signed point value for the declaring side.
func (e *Entry) Value() (int, bool) {
	return e.value, e.hasContract && e.hasResult
}

// Credit is the score-sheet entry for the board: the partnership that gains
// points and how many. A minus score for the declarer is credited to the
// defenders.
func (e *Entry) Credit() (types.Partnership, int, bool) {
	v, ok := e.Value()
	if !ok {
		return e.Side(), 0, false
	}
	if v < 0 {
		return e.Side().Other(), -v, true
	}
	return e.Side(), v, true
}

// IsVulnerable reports the flag of the declarer's partnership.
func (e *Entry) IsVulnerable() bool {
	switch e.declarer.Partnership() {
	case types.NorthSouth:
		return e.nsVulnerable
	case types.EastWest:
		return e.ewVulnerable
	}
	return false
}

func (e *Entry) Vulnerability() types.Vulnerability {
	return types.VulnerabilityOf(e.nsVulnerable, e.ewVulnerable)
}

func (e *Entry) SetContract(c types.Contract) {
	e.contract = c
	e.hasContract = true
	e.rescore()
}

// SetVulnerable overrides the vulnerability of the declarer's side.
func (e *Entry) SetVulnerable(vulnerable bool) {
	switch e.declarer.Partnership() {
	case types.NorthSouth:
		e.nsVulnerable = vulnerable
	case types.EastWest:
		e.ewVulnerable = vulnerable
	}
	e.rescore()
}

// SetVulnerability overrides both sides at once.
func (e *Entry) SetVulnerability(v types.Vulnerability) {
	e.nsVulnerable = v.For(types.NorthSouth)
	e.ewVulnerable = v.For(types.EastWest)
	e.rescore()
}

// Record stores the result as tricks over or under the contract.
func (e *Entry) Record(margin int) error {
	if !e.hasContract {
		return ErrContractNotSet
	}
	e.result = margin
	e.hasResult = true
	e.value = e.score.Evaluate(margin)
	return nil
}

func (e *Entry) rescore() {
	if !e.hasContract {
		return
	}
	e.score = scoring.Derive(e.contract, e.IsVulnerable())
	if e.hasResult {
		e.value = e.score.Evaluate(e.result)
	}
}
