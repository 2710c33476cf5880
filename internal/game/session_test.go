package game

import (
	"strings"
	"testing"
	"time"
)

func TestNewSessionShape(t *testing.T) {
	s := NewSession()
	if s.SessionID == "" {
		t.Error("empty SessionID")
	}
	if s.CurrentNumber != 1 {
		t.Errorf("CurrentNumber = %d, want 1", s.CurrentNumber)
	}
	if s.PenaltyMode {
		t.Error("PenaltyMode should start false")
	}
	if len(s.Positions) != PositionCount {
		t.Fatalf("positions = %d, want %d", len(s.Positions), PositionCount)
	}
	for i, p := range s.Positions {
		if p.Number != i+1 {
			t.Errorf("slot %d holds position %d", i, p.Number)
		}
		if p.AttemptsCarriedOver != 0 {
			t.Errorf("position %d starts with carryover %d", p.Number, p.AttemptsCarriedOver)
		}
	}
	if s.EndTime != nil || s.FinalScore != nil || s.Summary != nil {
		t.Error("finalization fields set on a fresh session")
	}
}

func TestBuildSummary(t *testing.T) {
	s := NewSession()
	s.Positions[0].Status = StatusSuccess
	s.Positions[0].Completed = true
	s.Positions[0].PositionScore = 3
	s.Positions[3].Status = StatusContinuedPenalty
	s.Positions[3].Completed = true
	s.Positions[3].PositionScore = -2
	end := s.StartTime.Add(90 * time.Second)
	s.EndTime = &end

	sum := s.BuildSummary()
	if sum.FinalScore != 1 {
		t.Errorf("FinalScore = %d, want 1", sum.FinalScore)
	}
	if sum.SuccessfulPositions != 1 {
		t.Errorf("SuccessfulPositions = %d, want 1", sum.SuccessfulPositions)
	}
	if len(sum.PenaltyPositions) != 1 || sum.PenaltyPositions[0] != 4 {
		t.Errorf("PenaltyPositions = %v, want [4]", sum.PenaltyPositions)
	}
	if sum.DurationMinutes != 1.5 {
		t.Errorf("DurationMinutes = %v, want 1.5", sum.DurationMinutes)
	}
	if !sum.Timestamp.Equal(s.StartTime) {
		t.Error("summary timestamp should be the session start")
	}
	if len(sum.PositionScores) != PositionCount {
		t.Errorf("PositionScores len = %d, want %d", len(sum.PositionScores), PositionCount)
	}
}

func TestRepairCleanSession(t *testing.T) {
	s := NewSession()
	if diags := s.Repair(); len(diags) != 0 {
		t.Errorf("diagnostics on a clean session: %v", diags)
	}
}

func TestRepairMissingPositions(t *testing.T) {
	s := NewSession()
	s.Positions = s.Positions[:6]

	diags := s.Repair()
	if len(diags) == 0 {
		t.Fatal("expected diagnostics")
	}
	if len(s.Positions) != PositionCount {
		t.Fatalf("positions = %d after repair, want %d", len(s.Positions), PositionCount)
	}
	for i, p := range s.Positions {
		if p.Number != i+1 {
			t.Errorf("slot %d holds position %d after repair", i, p.Number)
		}
	}
}

func TestRepairDuplicateNumbers(t *testing.T) {
	s := NewSession()
	s.Positions[4] = NewPosition(3, 0) // slot 5 claims number 3

	diags := s.Repair()
	if len(diags) == 0 {
		t.Fatal("expected diagnostics")
	}
	if s.Positions[4].Number != 5 {
		t.Errorf("slot 5 holds position %d after repair, want 5", s.Positions[4].Number)
	}
}

func TestRepairRecomputesCounters(t *testing.T) {
	s := NewSession()
	p := s.Positions[0]
	p.Record(ResultSink, time.Now())
	p.Record(ResultMiss, time.Now())
	p.AttemptsUsed = 7 // corrupted
	p.PuttsSunk = 5

	diags := s.Repair()
	if len(diags) != 1 || !strings.Contains(diags[0], "counters inconsistent") {
		t.Fatalf("diags = %v, want one counter diagnostic", diags)
	}
	if p.AttemptsUsed != 2 || p.PuttsSunk != 1 {
		t.Errorf("counters = %d/%d after repair, want 2/1", p.AttemptsUsed, p.PuttsSunk)
	}
}

func TestRepairKeepsCompletedData(t *testing.T) {
	// Repair never discards a valid completed position's score.
	s := NewSession()
	s.Positions[0].Status = StatusSuccess
	s.Positions[0].Completed = true
	s.Positions[0].PositionScore = 3
	s.Positions[0].Record(ResultSink, time.Now())
	s.Positions[0].Record(ResultSink, time.Now())
	s.Positions[0].Record(ResultSink, time.Now())
	s.Positions = s.Positions[:7]

	s.Repair()
	if s.Positions[0].PositionScore != 3 || !s.Positions[0].Completed {
		t.Error("repair clobbered a valid completed position")
	}
}
