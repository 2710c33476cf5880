package store

import (
	"context"
	"testing"
	"time"

	"github.com/Nighteyez07/disc-golf-putting-tr/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func finalizedSession(t *testing.T, start time.Time) *game.Session {
	t.Helper()
	s := game.NewSession()
	s.StartTime = start
	for _, p := range s.Positions {
		p.Record(game.ResultSink, start)
		p.Record(game.ResultSink, start)
		p.Record(game.ResultSink, start)
		p.Status = game.StatusSuccess
		p.Completed = true
		p.PositionScore = 3
		p.AccuracyRate = 100
	}
	end := start.Add(20 * time.Minute)
	s.EndTime = &end
	score := s.Score()
	s.FinalScore = &score
	sum := s.BuildSummary()
	s.Summary = &sum
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSaveAndLoadCurrent(t *testing.T) {
	st := openTestStore(t)
	repo := st.SessionRepo()
	ctx := context.Background()

	// Empty store: no current session.
	loaded, err := repo.LoadCurrent(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if loaded != nil {
		t.Fatal("expected nil session when none exist")
	}

	s := game.NewSession()
	s.Positions[0].Record(game.ResultSink, time.Now())
	s.Positions[0].Record(game.ResultMiss, time.Now())

	if err := repo.SaveCurrent(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err = repo.LoadCurrent(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected a current session")
	}
	if loaded.SessionID != s.SessionID {
		t.Errorf("SessionID = %q, want %q", loaded.SessionID, s.SessionID)
	}
	if loaded.EndTime != nil || loaded.FinalScore != nil || loaded.Summary != nil {
		t.Error("active session loaded with finalization fields set")
	}
	p := loaded.Positions[0]
	if p.AttemptsUsed != 2 || p.PuttsSunk != 1 || len(p.Putts) != 2 {
		t.Errorf("putt log lost: used=%d sunk=%d putts=%d", p.AttemptsUsed, p.PuttsSunk, len(p.Putts))
	}
	if p.Putts[0].Result != game.ResultSink || p.Putts[1].Result != game.ResultMiss {
		t.Error("putt order not preserved")
	}
}

func TestSaveCurrentUpserts(t *testing.T) {
	st := openTestStore(t)
	repo := st.SessionRepo()
	ctx := context.Background()

	s := game.NewSession()
	if err := repo.SaveCurrent(ctx, s); err != nil {
		t.Fatalf("first save: %v", err)
	}
	s.Positions[0].Record(game.ResultSink, time.Now())
	s.PenaltyMode = true
	if err := repo.SaveCurrent(ctx, s); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, err := repo.LoadCurrent(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !loaded.PenaltyMode {
		t.Error("updated penalty flag not persisted")
	}
	if loaded.Positions[0].AttemptsUsed != 1 {
		t.Error("updated putt log not persisted")
	}
}

func TestClearCurrent(t *testing.T) {
	st := openTestStore(t)
	repo := st.SessionRepo()
	ctx := context.Background()

	s := game.NewSession()
	if err := repo.SaveCurrent(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.ClearCurrent(ctx, s.SessionID); err != nil {
		t.Fatalf("clear: %v", err)
	}

	loaded, err := repo.LoadCurrent(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded != nil {
		t.Error("cleared session still loads as current")
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	st := openTestStore(t)
	repo := st.SessionRepo()
	ctx := context.Background()

	s := finalizedSession(t, time.Now().Add(-time.Hour))
	if err := repo.Archive(ctx, s); err != nil {
		t.Fatalf("archive: %v", err)
	}

	got, err := repo.Get(ctx, s.SessionID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("archived session not found")
	}
	if got.FinalScore == nil || *got.FinalScore != 27 {
		t.Errorf("FinalScore = %v, want 27", got.FinalScore)
	}
	if got.Summary == nil {
		t.Fatal("summary lost")
	}
	if got.Summary.SuccessfulPositions != 9 {
		t.Errorf("SuccessfulPositions = %d, want 9", got.Summary.SuccessfulPositions)
	}
	if got.EndTime == nil {
		t.Fatal("EndTime lost")
	}
}

func TestGetUnknownSession(t *testing.T) {
	st := openTestStore(t)
	got, err := st.SessionRepo().Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Error("expected nil for unknown session")
	}
}

func TestHistoryOrderAndLimit(t *testing.T) {
	st := openTestStore(t)
	repo := st.SessionRepo()
	ctx := context.Background()

	base := time.Now().Add(-24 * time.Hour)
	var ids []string
	for i := 0; i < 5; i++ {
		s := finalizedSession(t, base.Add(time.Duration(i)*time.Hour))
		ids = append(ids, s.SessionID)
		if err := repo.Archive(ctx, s); err != nil {
			t.Fatalf("archive %d: %v", i, err)
		}
	}
	// An active session must not appear in history.
	if err := repo.SaveCurrent(ctx, game.NewSession()); err != nil {
		t.Fatalf("save current: %v", err)
	}

	history, err := repo.History(ctx, 3)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("history len = %d, want 3", len(history))
	}
	// Most recent first.
	for i, want := range []string{ids[4], ids[3], ids[2]} {
		if history[i].SessionID != want {
			t.Errorf("history[%d] = %q, want %q", i, history[i].SessionID, want)
		}
	}
}

func TestDeleteOldest(t *testing.T) {
	st := openTestStore(t)
	repo := st.SessionRepo()
	ctx := context.Background()

	base := time.Now().Add(-24 * time.Hour)
	var ids []string
	for i := 0; i < 4; i++ {
		s := finalizedSession(t, base.Add(time.Duration(i)*time.Hour))
		ids = append(ids, s.SessionID)
		if err := repo.Archive(ctx, s); err != nil {
			t.Fatalf("archive %d: %v", i, err)
		}
	}

	n, err := repo.DeleteOldest(ctx, 2)
	if err != nil {
		t.Fatalf("delete oldest: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted %d, want 2", n)
	}

	history, err := repo.History(ctx, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history len = %d, want 2", len(history))
	}
	if history[0].SessionID != ids[3] || history[1].SessionID != ids[2] {
		t.Error("wrong sessions survived deletion")
	}
}

func TestRestartedRoundNeverResurfaces(t *testing.T) {
	st := openTestStore(t)
	repo := st.SessionRepo()
	ctx := context.Background()

	// Round one autosaves, then the player throws it away.
	e := game.NewEngine(nil, repo)
	if _, err := e.RecordPutt(ctx, game.ResultMiss); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := e.Save(ctx); err != nil {
		t.Fatalf("save round one: %v", err)
	}
	discardedID := e.Session().SessionID
	e.Restart(ctx)

	// Round two plays out and archives, clearing its own pointer.
	for i := 0; i < game.PositionCount*game.PuttsRequired; i++ {
		if _, err := e.RecordPutt(ctx, game.ResultSink); err != nil {
			t.Fatalf("putt %d: %v", i, err)
		}
	}
	if !e.Session().Finalized() {
		t.Fatal("round two did not finalize")
	}

	// The discarded round must not come back as current.
	current, err := repo.LoadCurrent(ctx)
	if err != nil {
		t.Fatalf("load current: %v", err)
	}
	if current != nil {
		t.Fatalf("discarded session %s resurfaced as current", current.SessionID)
	}

	// The discarded row is retired with an end time, never archived with
	// a score.
	discarded, err := repo.Get(ctx, discardedID)
	if err != nil {
		t.Fatalf("get discarded: %v", err)
	}
	if discarded.EndTime == nil {
		t.Fatal("discarded session still looks in-progress")
	}
	if discarded.FinalScore != nil {
		t.Fatal("discarded session must not carry a final score")
	}
}
