package game

import (
	"fmt"
	"math"
	"time"
)

// PositionCount is the number of stations in a full round.
const PositionCount = 9

// PuttsRequired is the number of sinks needed to complete a position.
const PuttsRequired = 3

// baseAttempts maps position number (1..9) to its base attempt allocation.
// Each station allows one more base attempt than the previous one.
var baseAttempts = [PositionCount + 1]int{0, 3, 4, 5, 6, 7, 8, 9, 10, 11}

// BaseAttempts returns the base attempt allocation for a position number.
// Numbers outside 1..9 are a programming error.
func BaseAttempts(number int) int {
	if number < 1 || number > PositionCount {
		panic(fmt.Sprintf("game: position number %d out of range 1..%d", number, PositionCount))
	}
	return baseAttempts[number]
}

// PuttResult is the outcome of a single recorded putt.
type PuttResult string

const (
	ResultSink PuttResult = "sink"
	ResultMiss PuttResult = "miss"
)

// Putt is one recorded putting attempt. Immutable once created; a
// position's putt log is append-only.
type Putt struct {
	Result     PuttResult `json:"result"`
	RecordedAt time.Time  `json:"timestamp"`
}

// PositionStatus is the lifecycle state of a position.
//
// StatusFailedRestart exists in the domain for forward compatibility but no
// engine transition produces it: restarting discards the whole session
// instead of failing positions in place.
type PositionStatus string

const (
	StatusNotStarted       PositionStatus = "not-started"
	StatusInProgress       PositionStatus = "in-progress"
	StatusSuccess          PositionStatus = "success"
	StatusFailedRestart    PositionStatus = "failed-restart"
	StatusContinuedPenalty PositionStatus = "continued-penalty"
)

// Position is one of the nine putting stations in a round.
//
// Allocation fields (Number, BaseAttemptsAllocated, AttemptsCarriedOver,
// TotalAttemptsAvailable) are fixed at creation. Counters mutate through
// Record until the position completes, after which the engine freezes it.
type Position struct {
	Number                 int            `json:"positionNumber"`
	BaseAttemptsAllocated  int            `json:"baseAttemptsAllocated"`
	AttemptsCarriedOver    int            `json:"attemptsCarriedOver"`
	TotalAttemptsAvailable int            `json:"totalAttemptsAvailable"`
	AttemptsUsed           int            `json:"attemptsUsed"`
	PuttsSunk              int            `json:"puttsInSunk"`
	PositionScore          int            `json:"positionScore"`
	AccuracyRate           int            `json:"accuracyRate"`
	Status                 PositionStatus `json:"status"`
	Putts                  []Putt         `json:"putts"`
	Completed              bool           `json:"completed"`
}

// NewPosition creates a fresh position with the given carryover added to its
// base allocation.
func NewPosition(number, carryover int) *Position {
	base := BaseAttempts(number)
	return &Position{
		Number:                 number,
		BaseAttemptsAllocated:  base,
		AttemptsCarriedOver:    carryover,
		TotalAttemptsAvailable: base + carryover,
		Status:                 StatusNotStarted,
		Putts:                  []Putt{},
	}
}

// Record appends a putt and updates the counters. The engine guarantees no
// call happens after the position completes.
func (p *Position) Record(result PuttResult, at time.Time) {
	p.Putts = append(p.Putts, Putt{Result: result, RecordedAt: at})
	p.AttemptsUsed++
	if result == ResultSink {
		p.PuttsSunk++
	}
	if p.Status == StatusNotStarted {
		p.Status = StatusInProgress
	}
}

// Carryover returns the unused attempts a cleanly completed position passes
// to the next station. Only a Success yields leftovers; a position finished
// under penalty has, by definition, used at least its full allocation.
func (p *Position) Carryover() int {
	if p.Status != StatusSuccess {
		return 0
	}
	if left := p.TotalAttemptsAvailable - p.AttemptsUsed; left > 0 {
		return left
	}
	return 0
}

// Score computes the position score given the session-wide penalty flag.
//
// A clean Success in a penalty-free session is worth a flat +3. Once the
// session is in penalty mode, every completed position — including a later
// clean finish — is scored by overage instead: zero minus one point per
// attempt beyond the position's own allocation.
func (p *Position) Score(sessionPenaltyMode bool) int {
	if p.Status == StatusSuccess && !sessionPenaltyMode {
		return PuttsRequired
	}
	if p.Status == StatusContinuedPenalty || (sessionPenaltyMode && p.Completed) {
		overage := p.AttemptsUsed - p.TotalAttemptsAvailable
		if overage < 0 {
			overage = 0
		}
		return -overage
	}
	return 0
}

// Accuracy returns the sink percentage over attempts used, rounded to the
// nearest integer. Zero when no attempts were taken.
func (p *Position) Accuracy() int {
	if p.AttemptsUsed == 0 {
		return 0
	}
	return int(math.Round(100 * float64(p.PuttsSunk) / float64(p.AttemptsUsed)))
}

// Exhausted reports whether the position has used up its full budget.
func (p *Position) Exhausted() bool {
	return p.AttemptsUsed >= p.TotalAttemptsAvailable
}

// Clone returns a deep copy. The copy shares no state with the receiver,
// including the putt log.
func (p *Position) Clone() *Position {
	c := *p
	c.Putts = make([]Putt, len(p.Putts))
	copy(c.Putts, p.Putts)
	return &c
}
