package game

import (
	"testing"
	"time"
)

func TestBaseAttemptsTable(t *testing.T) {
	want := []int{3, 4, 5, 6, 7, 8, 9, 10, 11}
	for n := 1; n <= PositionCount; n++ {
		if got := BaseAttempts(n); got != want[n-1] {
			t.Errorf("BaseAttempts(%d) = %d, want %d", n, got, want[n-1])
		}
	}
}

func TestBaseAttemptsOutOfRangePanics(t *testing.T) {
	for _, n := range []int{0, 10, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("BaseAttempts(%d) did not panic", n)
				}
			}()
			BaseAttempts(n)
		}()
	}
}

func TestNewPositionAllocation(t *testing.T) {
	for n := 1; n <= PositionCount; n++ {
		for _, carry := range []int{0, 2, 5} {
			p := NewPosition(n, carry)
			if p.TotalAttemptsAvailable != BaseAttempts(n)+carry {
				t.Errorf("NewPosition(%d, %d).TotalAttemptsAvailable = %d, want %d",
					n, carry, p.TotalAttemptsAvailable, BaseAttempts(n)+carry)
			}
			if p.Status != StatusNotStarted {
				t.Errorf("NewPosition(%d, %d).Status = %q, want %q", n, carry, p.Status, StatusNotStarted)
			}
			if p.AttemptsUsed != 0 || p.PuttsSunk != 0 || p.Completed {
				t.Errorf("NewPosition(%d, %d) counters not zeroed", n, carry)
			}
		}
	}
}

func TestRecordKeepsCountersConsistent(t *testing.T) {
	p := NewPosition(3, 1)
	results := []PuttResult{ResultMiss, ResultSink, ResultMiss, ResultSink}
	sinks := 0
	for i, r := range results {
		p.Record(r, time.Now())
		if r == ResultSink {
			sinks++
		}
		if p.AttemptsUsed != len(p.Putts) {
			t.Fatalf("after putt %d: AttemptsUsed = %d, len(Putts) = %d", i+1, p.AttemptsUsed, len(p.Putts))
		}
		if p.PuttsSunk != sinks {
			t.Fatalf("after putt %d: PuttsSunk = %d, want %d", i+1, p.PuttsSunk, sinks)
		}
	}
	if p.Status != StatusInProgress {
		t.Errorf("Status = %q, want %q", p.Status, StatusInProgress)
	}
}

func TestCarryoverOnlyFromSuccess(t *testing.T) {
	for _, status := range []PositionStatus{StatusNotStarted, StatusInProgress, StatusFailedRestart, StatusContinuedPenalty} {
		p := NewPosition(2, 0)
		p.Status = status
		p.AttemptsUsed = 1
		if got := p.Carryover(); got != 0 {
			t.Errorf("Carryover with status %q = %d, want 0", status, got)
		}
	}

	p := NewPosition(2, 0) // 4 attempts available
	p.Status = StatusSuccess
	p.AttemptsUsed = 3
	if got := p.Carryover(); got != 1 {
		t.Errorf("Carryover = %d, want 1", got)
	}
}

func TestCarryoverNeverNegative(t *testing.T) {
	p := NewPosition(1, 0)
	p.Status = StatusSuccess
	p.AttemptsUsed = 5 // beyond allocation
	if got := p.Carryover(); got != 0 {
		t.Errorf("Carryover = %d, want 0 (clamped)", got)
	}
}

func TestScoreCleanSuccess(t *testing.T) {
	p := NewPosition(1, 0)
	p.Status = StatusSuccess
	p.Completed = true
	p.AttemptsUsed = 3
	if got := p.Score(false); got != 3 {
		t.Errorf("Score = %d, want 3", got)
	}
}

func TestScorePenaltyOverage(t *testing.T) {
	p := NewPosition(1, 0) // 3 attempts available
	p.Status = StatusContinuedPenalty
	p.Completed = true
	p.AttemptsUsed = 4
	if got := p.Score(true); got != -1 {
		t.Errorf("Score = %d, want -1", got)
	}
}

func TestScoreSuccessUnderSessionPenalty(t *testing.T) {
	// A clean finish after the session entered penalty mode scores by
	// overage (zero here), not the flat reward.
	p := NewPosition(5, 0)
	p.Status = StatusSuccess
	p.Completed = true
	p.AttemptsUsed = p.TotalAttemptsAvailable
	if got := p.Score(true); got != 0 {
		t.Errorf("Score = %d, want 0", got)
	}
}

func TestScoreIncomplete(t *testing.T) {
	p := NewPosition(4, 0)
	p.Status = StatusInProgress
	p.AttemptsUsed = 2
	if got := p.Score(false); got != 0 {
		t.Errorf("Score = %d, want 0", got)
	}
	if got := p.Score(true); got != 0 {
		t.Errorf("Score under penalty = %d, want 0", got)
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		used, sunk, want int
	}{
		{0, 0, 0},
		{3, 3, 100},
		{4, 3, 75},
		{3, 1, 33},
		{3, 2, 67},
	}
	for _, tt := range tests {
		p := NewPosition(1, 0)
		p.AttemptsUsed = tt.used
		p.PuttsSunk = tt.sunk
		if got := p.Accuracy(); got != tt.want {
			t.Errorf("Accuracy with %d/%d = %d, want %d", tt.sunk, tt.used, got, tt.want)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := NewPosition(1, 0)
	p.Record(ResultSink, time.Now())

	c := p.Clone()
	p.Record(ResultMiss, time.Now())

	if len(c.Putts) != 1 {
		t.Fatalf("clone putt log len = %d, want 1", len(c.Putts))
	}
	if c.AttemptsUsed != 1 {
		t.Errorf("clone AttemptsUsed = %d, want 1", c.AttemptsUsed)
	}

	c.Putts[0].Result = ResultMiss
	if p.Putts[0].Result != ResultSink {
		t.Error("mutating clone putt log leaked into the original")
	}
}
