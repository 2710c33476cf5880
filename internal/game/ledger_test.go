package game

import (
	"context"
	"testing"
)

func TestUndoFullRewind(t *testing.T) {
	e := NewEngine(nil, nil)
	s := e.Session()
	s.Positions[0] = NewPosition(1, 5) // 8 attempts of room

	results := []PuttResult{ResultMiss, ResultSink, ResultMiss, ResultSink}
	for _, r := range results {
		record(t, e, r)
	}

	for i := len(results); i > 0; i-- {
		if !e.CanUndo() {
			t.Fatalf("CanUndo false with %d actions left", i)
		}
		if !e.Undo() {
			t.Fatalf("Undo failed with %d actions left", i)
		}
	}

	p := s.Positions[0]
	if len(p.Putts) != 0 || p.AttemptsUsed != 0 || p.PuttsSunk != 0 {
		t.Errorf("not fully rewound: putts=%d used=%d sunk=%d", len(p.Putts), p.AttemptsUsed, p.PuttsSunk)
	}
	if p.Status != StatusNotStarted {
		t.Errorf("status = %q, want not-started", p.Status)
	}

	// One more is a no-op.
	if e.Undo() {
		t.Error("Undo succeeded on empty stack")
	}
}

func TestRedoReappliesPutt(t *testing.T) {
	e := NewEngine(nil, nil)
	s := e.Session()
	s.Positions[0] = NewPosition(1, 5)

	record(t, e, ResultSink, ResultMiss)
	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if !e.CanRedo() {
		t.Fatal("expected CanRedo after undo")
	}
	if !e.Redo() {
		t.Fatal("redo failed")
	}

	p := s.Positions[0]
	if p.AttemptsUsed != 2 || p.PuttsSunk != 1 {
		t.Errorf("after redo: used=%d sunk=%d, want 2/1", p.AttemptsUsed, p.PuttsSunk)
	}
}

func TestNewActionClearsRedo(t *testing.T) {
	e := NewEngine(nil, nil)
	s := e.Session()
	s.Positions[0] = NewPosition(1, 5)

	record(t, e, ResultMiss, ResultMiss)
	e.Undo()
	record(t, e, ResultSink)

	if e.CanRedo() {
		t.Error("redo stack should be cleared by a new putt")
	}
}

func TestUndoBounded(t *testing.T) {
	e := NewEngine(nil, nil)
	s := e.Session()
	s.Positions[0] = NewPosition(1, 20) // room for > MaxLedgerDepth misses

	for i := 0; i < MaxLedgerDepth+4; i++ {
		record(t, e, ResultMiss)
	}

	undone := 0
	for e.Undo() {
		undone++
	}
	if undone != MaxLedgerDepth {
		t.Errorf("undid %d actions, want %d", undone, MaxLedgerDepth)
	}
	// Four putts remain beyond the ledger horizon.
	if got := s.Positions[0].AttemptsUsed; got != 4 {
		t.Errorf("AttemptsUsed after full rewind = %d, want 4", got)
	}
}

func TestUndoRestoresPenaltyMode(t *testing.T) {
	e := NewEngine(nil, nil)
	record(t, e, ResultMiss, ResultMiss, ResultMiss)
	if err := e.ContinueWithPenalty(); err != nil {
		t.Fatal(err)
	}
	record(t, e, ResultMiss) // snapshot captured penaltyMode=true

	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if !e.Session().PenaltyMode {
		t.Error("penalty mode should survive undoing a post-election putt")
	}

	// Rewinding past the election restores the pre-penalty flag.
	if !e.Undo() {
		t.Fatal("second undo failed")
	}
	if e.Session().PenaltyMode {
		t.Error("penalty mode should rewind with the exhausting putt's snapshot")
	}
}

func TestUndoDissolvesPendingChoice(t *testing.T) {
	e := NewEngine(nil, nil)
	record(t, e, ResultMiss, ResultMiss, ResultMiss)
	if !e.ChoicePending() {
		t.Fatal("expected pending choice")
	}
	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if e.ChoicePending() {
		t.Error("choice should dissolve when the exhausting putt is undone")
	}
	// Recording works again.
	if _, err := e.RecordPutt(context.Background(), ResultSink); err != nil {
		t.Errorf("RecordPutt after undo: %v", err)
	}
}

func TestRedoResurfacesChoice(t *testing.T) {
	e := NewEngine(nil, nil)
	record(t, e, ResultMiss, ResultMiss, ResultMiss)
	e.Undo()
	if !e.Redo() {
		t.Fatal("redo failed")
	}
	if !e.ChoicePending() {
		t.Error("redoing the exhausting putt should re-surface the choice")
	}
}

func TestNoUndoAcrossPositionBoundary(t *testing.T) {
	e := NewEngine(nil, nil)
	record(t, e, ResultSink, ResultSink, ResultSink) // completes position 1

	if e.CanUndo() {
		t.Error("CanUndo true after position completion")
	}
	if e.Undo() {
		t.Error("Undo succeeded across a position boundary")
	}
}

func TestCanUndoFalseOnCompletedPosition(t *testing.T) {
	// Even with entries on the stack, a completed current position blocks
	// undo.
	s := NewSession()
	l := NewLedger()
	l.Push(0, s.Positions[0], false)
	s.Positions[0].Completed = true

	if l.CanUndo(s) {
		t.Error("CanUndo true for a completed position")
	}
	if l.Undo(s) {
		t.Error("Undo succeeded on a completed position")
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := NewSession()
	l := NewLedger()
	p := s.Positions[0]
	p.Record(ResultSink, s.StartTime)

	l.Push(0, p, false)
	p.Record(ResultMiss, s.StartTime)
	p.Putts[0].Result = ResultMiss // mutate the live log

	if !l.Undo(s) {
		t.Fatal("undo failed")
	}
	got := s.Positions[0]
	if len(got.Putts) != 1 {
		t.Fatalf("restored putt log len = %d, want 1", len(got.Putts))
	}
	if got.Putts[0].Result != ResultSink {
		t.Error("snapshot shared putt storage with the live position")
	}
}
