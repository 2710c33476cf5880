package game

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

// fakeStore records calls and can be told to fail archival.
type fakeStore struct {
	saved      int
	archived   int
	cleared    []string
	archiveErr error
}

func (f *fakeStore) SaveCurrent(ctx context.Context, s *Session) error { f.saved++; return nil }
func (f *fakeStore) Archive(ctx context.Context, s *Session) error {
	if f.archiveErr != nil {
		return f.archiveErr
	}
	f.archived++
	return nil
}
func (f *fakeStore) ClearCurrent(ctx context.Context, sessionID string) error {
	f.cleared = append(f.cleared, sessionID)
	return nil
}

func record(t *testing.T, e *Engine, results ...PuttResult) Outcome {
	t.Helper()
	var out Outcome
	for _, r := range results {
		var err error
		out, err = e.RecordPutt(context.Background(), r)
		if err != nil {
			t.Fatalf("RecordPutt(%s): %v", r, err)
		}
	}
	return out
}

func TestCleanSuccess(t *testing.T) {
	e := NewEngine(nil, nil)
	out := record(t, e, ResultSink, ResultSink, ResultSink)

	if out != OutcomeAdvanced {
		t.Fatalf("outcome = %d, want OutcomeAdvanced", out)
	}
	p := e.Session().Positions[0]
	if p.Status != StatusSuccess || !p.Completed {
		t.Errorf("position 1 status = %q completed = %v, want success/true", p.Status, p.Completed)
	}
	if p.PositionScore != 3 {
		t.Errorf("PositionScore = %d, want 3", p.PositionScore)
	}
	if p.AccuracyRate != 100 {
		t.Errorf("AccuracyRate = %d, want 100", p.AccuracyRate)
	}
	if p.Carryover() != 0 {
		t.Errorf("Carryover = %d, want 0 (3 sinks in 3 attempts)", p.Carryover())
	}
	if e.Session().CurrentNumber != 2 {
		t.Errorf("CurrentNumber = %d, want 2", e.Session().CurrentNumber)
	}
	// No carryover: position 2 keeps its base 4.
	if got := e.Session().Positions[1].TotalAttemptsAvailable; got != 4 {
		t.Errorf("position 2 TotalAttemptsAvailable = %d, want 4", got)
	}
}

func TestCarryoverAppliedToNextPosition(t *testing.T) {
	e := NewEngine(nil, nil)
	s := e.Session()
	// Give position 1 headroom so a clean finish leaves leftovers.
	s.Positions[0] = NewPosition(1, 2) // 5 available
	record(t, e, ResultSink, ResultSink, ResultSink)

	if got := s.Positions[0].Carryover(); got != 2 {
		t.Fatalf("Carryover = %d, want 2", got)
	}
	next := s.Positions[1]
	if next.AttemptsCarriedOver != 2 {
		t.Errorf("position 2 AttemptsCarriedOver = %d, want 2", next.AttemptsCarriedOver)
	}
	if next.TotalAttemptsAvailable != 6 {
		t.Errorf("position 2 TotalAttemptsAvailable = %d, want 6", next.TotalAttemptsAvailable)
	}
}

func TestExhaustionSurfacesChoice(t *testing.T) {
	e := NewEngine(nil, nil)
	out := record(t, e, ResultMiss, ResultMiss, ResultMiss)

	if out != OutcomeChoiceRequired {
		t.Fatalf("outcome = %d, want OutcomeChoiceRequired", out)
	}
	if !e.ChoicePending() {
		t.Error("expected ChoicePending")
	}
	// No state change until the choice resolves.
	p := e.Session().Positions[0]
	if p.Status != StatusInProgress || p.Completed {
		t.Errorf("position status = %q completed = %v, want in-progress/false", p.Status, p.Completed)
	}

	// Further putts are refused while the choice is open.
	if _, err := e.RecordPutt(context.Background(), ResultSink); !errors.Is(err, ErrChoicePending) {
		t.Errorf("RecordPutt during choice: err = %v, want ErrChoicePending", err)
	}
}

func TestContinueWithPenalty(t *testing.T) {
	e := NewEngine(nil, nil)
	record(t, e, ResultMiss, ResultSink, ResultSink) // exhausted, 2 sinks

	if err := e.ContinueWithPenalty(); err != nil {
		t.Fatalf("ContinueWithPenalty: %v", err)
	}
	s := e.Session()
	if !s.PenaltyMode {
		t.Error("expected PenaltyMode set")
	}
	if s.Positions[0].Status != StatusContinuedPenalty {
		t.Errorf("status = %q, want continued-penalty", s.Positions[0].Status)
	}

	// Fourth putt sinks the third: overage of one.
	out := record(t, e, ResultSink)
	if out != OutcomeAdvanced {
		t.Fatalf("outcome = %d, want OutcomeAdvanced", out)
	}
	p := s.Positions[0]
	if p.Status != StatusContinuedPenalty || !p.Completed {
		t.Errorf("status = %q completed = %v, want continued-penalty/true", p.Status, p.Completed)
	}
	if p.PositionScore != -1 {
		t.Errorf("PositionScore = %d, want -1", p.PositionScore)
	}
	if p.Carryover() != 0 {
		t.Errorf("Carryover = %d, want 0 for penalty finish", p.Carryover())
	}
}

func TestContinueWithoutPendingChoice(t *testing.T) {
	e := NewEngine(nil, nil)
	if err := e.ContinueWithPenalty(); !errors.Is(err, ErrNoChoicePending) {
		t.Errorf("err = %v, want ErrNoChoicePending", err)
	}
}

func TestSuccessAfterPenaltyScoresByOverage(t *testing.T) {
	e := NewEngine(nil, nil)
	record(t, e, ResultMiss, ResultMiss, ResultMiss)
	if err := e.ContinueWithPenalty(); err != nil {
		t.Fatalf("ContinueWithPenalty: %v", err)
	}
	record(t, e, ResultSink, ResultSink, ResultSink) // completes position 1 at -3

	// Position 2 finishes cleanly but the session is in penalty mode:
	// scored by overage (zero), not +3.
	out := record(t, e, ResultSink, ResultSink, ResultSink)
	if out != OutcomeAdvanced {
		t.Fatalf("outcome = %d, want OutcomeAdvanced", out)
	}
	p := e.Session().Positions[1]
	if p.Status != StatusSuccess {
		t.Errorf("status = %q, want success", p.Status)
	}
	if p.PositionScore != 0 {
		t.Errorf("PositionScore = %d, want 0 (overage formula under session penalty)", p.PositionScore)
	}
	// Carryover still flows from a Success even under session penalty:
	// three sinks in three of four attempts leaves one.
	if got := e.Session().Positions[2].TotalAttemptsAvailable; got != 6 {
		t.Errorf("position 3 TotalAttemptsAvailable = %d, want 6 (base 5 + carryover 1)", got)
	}
}

func TestRestartDiscardsSession(t *testing.T) {
	st := &fakeStore{}
	e := NewEngine(nil, st)
	record(t, e, ResultMiss, ResultMiss, ResultMiss)
	oldID := e.Session().SessionID

	fresh := e.Restart(context.Background())
	if fresh.SessionID == oldID {
		t.Error("restart kept the old session ID")
	}
	if fresh.PenaltyMode || fresh.CurrentNumber != 1 {
		t.Errorf("fresh session penalty=%v current=%d, want false/1", fresh.PenaltyMode, fresh.CurrentNumber)
	}
	if e.ChoicePending() {
		t.Error("choice still pending after restart")
	}
	if st.archived != 0 {
		t.Error("restart must not archive the discarded session")
	}
	if len(st.cleared) != 1 || st.cleared[0] != oldID {
		t.Errorf("cleared = %v, want the discarded session %s", st.cleared, oldID)
	}
	if st.saved == 0 {
		t.Error("fresh session was not saved")
	}
}

func playFullRound(t *testing.T, e *Engine) Outcome {
	t.Helper()
	var out Outcome
	for i := 0; i < PositionCount; i++ {
		out = record(t, e, ResultSink, ResultSink, ResultSink)
	}
	return out
}

func TestSessionFinalization(t *testing.T) {
	st := &fakeStore{}
	e := NewEngine(nil, st)
	out := playFullRound(t, e)

	if out != OutcomeSessionComplete {
		t.Fatalf("outcome = %d, want OutcomeSessionComplete", out)
	}
	s := e.Session()
	if s.EndTime == nil {
		t.Fatal("EndTime not set")
	}
	if s.FinalScore == nil || *s.FinalScore != 27 {
		t.Fatalf("FinalScore = %v, want 27", s.FinalScore)
	}
	if s.Summary == nil {
		t.Fatal("Summary not built")
	}
	if s.Summary.SuccessfulPositions != 9 {
		t.Errorf("SuccessfulPositions = %d, want 9", s.Summary.SuccessfulPositions)
	}
	if len(s.Summary.PenaltyPositions) != 0 {
		t.Errorf("PenaltyPositions = %v, want empty", s.Summary.PenaltyPositions)
	}
	if st.archived != 1 {
		t.Errorf("archived %d times, want 1", st.archived)
	}
	if len(st.cleared) != 1 || st.cleared[0] != s.SessionID {
		t.Errorf("cleared = %v, want [%s]", st.cleared, s.SessionID)
	}

	// No more putts after finalization.
	if _, err := e.RecordPutt(context.Background(), ResultSink); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("RecordPutt after finalize: err = %v, want ErrSessionComplete", err)
	}
}

func TestArchiveFailureKeepsCurrentPointer(t *testing.T) {
	st := &fakeStore{archiveErr: errors.New("backend down")}
	e := NewEngine(nil, st)

	var out Outcome
	var err error
	for i := 0; i < PositionCount; i++ {
		for j := 0; j < PuttsRequired; j++ {
			out, err = e.RecordPutt(context.Background(), ResultSink)
		}
	}
	if out != OutcomeSessionComplete {
		t.Fatalf("outcome = %d, want OutcomeSessionComplete", out)
	}
	if err == nil {
		t.Fatal("expected archive error to surface")
	}
	if len(st.cleared) != 0 {
		t.Error("current pointer cleared despite archive failure")
	}
	// Session is still finalized locally; retry succeeds once the
	// backend recovers.
	if !e.Session().Finalized() {
		t.Error("session should remain finalized in memory")
	}
	st.archiveErr = nil
	if err := e.RetryFinalize(context.Background()); err != nil {
		t.Fatalf("RetryFinalize: %v", err)
	}
	if st.archived != 1 || len(st.cleared) != 1 {
		t.Errorf("after retry: archived=%d cleared=%v", st.archived, st.cleared)
	}
}

func TestSessionScoreIdempotent(t *testing.T) {
	e := NewEngine(nil, nil)
	record(t, e, ResultSink, ResultSink, ResultSink)
	record(t, e, ResultMiss, ResultSink)

	s := e.Session()
	first := s.Score()
	second := s.Score()
	if first != second {
		t.Errorf("Score not idempotent: %d then %d", first, second)
	}
	if first != 3 {
		t.Errorf("Score = %d, want 3 (one completed position, one in flight)", first)
	}
}

func TestSessionJSONRoundTrip(t *testing.T) {
	e := NewEngine(nil, &fakeStore{})
	record(t, e, ResultMiss, ResultMiss, ResultMiss)
	if err := e.ContinueWithPenalty(); err != nil {
		t.Fatal(err)
	}
	record(t, e, ResultSink, ResultSink, ResultSink)

	s := e.Session()
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Session
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// time.Time carries a monotonic reading that JSON strips, so compare
	// the re-serialized form instead of the structs.
	b2, err := json.Marshal(&got)
	if err != nil {
		t.Fatalf("re-marshal: %v", err)
	}
	if !bytes.Equal(b, b2) {
		t.Errorf("round trip mismatch:\n got %s\nwant %s", b2, b)
	}

	if got.SessionID != s.SessionID || got.PenaltyMode != s.PenaltyMode || got.CurrentNumber != s.CurrentNumber {
		t.Error("scalar fields did not round trip")
	}
	if len(got.Positions) != PositionCount {
		t.Fatalf("positions len = %d, want %d", len(got.Positions), PositionCount)
	}
	if !reflect.DeepEqual(got.Positions[0].Putts[0].Result, s.Positions[0].Putts[0].Result) {
		t.Error("putt log did not round trip")
	}
}
