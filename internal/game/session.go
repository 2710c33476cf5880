package game

import (
	"time"

	"github.com/google/uuid"
)

// Session is one full round through all nine positions.
//
// Positions beyond CurrentNumber are provisional: they are materialized at
// session start with zero carryover, and the slot for position n+1 is
// replaced with a freshly allocated position (carryover applied) at the
// moment position n completes.
type Session struct {
	SessionID     string     `json:"sessionId"`
	StartTime     time.Time  `json:"startTime"`
	EndTime       *time.Time `json:"endTime"`
	PenaltyMode   bool       `json:"penaltyMode"`
	CurrentNumber int        `json:"currentPositionNumber"`
	FinalScore    *int       `json:"finalScore"`
	Positions     []*Position `json:"positions"`
	Summary       *Summary    `json:"sessionSummary"`
}

// Summary is the immutable snapshot computed once at finalization.
type Summary struct {
	FinalScore          int       `json:"finalScore"`
	PositionScores      []int     `json:"positionScores"`
	SuccessfulPositions int       `json:"successfulPositions"`
	PenaltyPositions    []int     `json:"penaltyPositions"`
	DurationMinutes     float64   `json:"duration"`
	Timestamp           time.Time `json:"timestamp"`
}

// NewSession creates a fresh round with all nine positions allocated at zero
// carryover and position 1 active.
func NewSession() *Session {
	positions := make([]*Position, PositionCount)
	for i := range positions {
		positions[i] = NewPosition(i+1, 0)
	}
	return &Session{
		SessionID:     uuid.New().String(),
		StartTime:     time.Now(),
		CurrentNumber: 1,
		Positions:     positions,
	}
}

// Current returns the active position.
func (s *Session) Current() *Position {
	return s.Positions[s.CurrentNumber-1]
}

// Finalized reports whether the round has ended.
func (s *Session) Finalized() bool {
	return s.EndTime != nil
}

// Score sums the scores of completed positions. Incomplete positions
// contribute nothing. Always re-derived from position state, never cached
// while the round is active.
func (s *Session) Score() int {
	total := 0
	for _, p := range s.Positions {
		if p.Completed {
			total += p.PositionScore
		}
	}
	return total
}

// BuildSummary derives the finalization snapshot from current state. The
// engine calls it exactly once, after EndTime is set.
func (s *Session) BuildSummary() Summary {
	scores := make([]int, 0, len(s.Positions))
	successful := 0
	var penalty []int
	for _, p := range s.Positions {
		scores = append(scores, p.PositionScore)
		switch p.Status {
		case StatusSuccess:
			successful++
		case StatusContinuedPenalty:
			penalty = append(penalty, p.Number)
		}
	}

	var duration float64
	if s.EndTime != nil {
		duration = s.EndTime.Sub(s.StartTime).Minutes()
	}

	return Summary{
		FinalScore:          s.Score(),
		PositionScores:      scores,
		SuccessfulPositions: successful,
		PenaltyPositions:    penalty,
		DurationMinutes:     duration,
		Timestamp:           s.StartTime,
	}
}
