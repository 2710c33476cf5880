package game

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	putt "github.com/Nighteyez07/disc-golf-putting-tr/internal/game"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/router"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/screen"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/screens/summary"
)

// fakeRepo satisfies store.SessionRepo with in-memory state and a
// switchable archive failure.
type fakeRepo struct {
	saved      int
	archived   []*putt.Session
	cleared    []string
	archiveErr error
}

func (f *fakeRepo) SaveCurrent(_ context.Context, s *putt.Session) error {
	f.saved++
	return nil
}

func (f *fakeRepo) LoadCurrent(_ context.Context) (*putt.Session, error) {
	return nil, nil
}

func (f *fakeRepo) ClearCurrent(_ context.Context, sessionID string) error {
	f.cleared = append(f.cleared, sessionID)
	return nil
}

func (f *fakeRepo) Archive(_ context.Context, s *putt.Session) error {
	if f.archiveErr != nil {
		return f.archiveErr
	}
	f.archived = append(f.archived, s)
	return nil
}

func (f *fakeRepo) Get(_ context.Context, _ string) (*putt.Session, error) {
	return nil, nil
}

func (f *fakeRepo) History(_ context.Context, _ int) ([]*putt.Session, error) {
	return nil, nil
}

func (f *fakeRepo) DeleteOldest(_ context.Context, _ int) (int, error) {
	return 0, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func press(s screen.Screen, keys ...rune) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		s, cmd = s.Update(keyPress(k))
	}
	return s, cmd
}

func TestSinkKeyRecordsPutt(t *testing.T) {
	scr := New(nil, nil)
	press(scr, 's')

	pos := scr.engine.Session().Current()
	if pos.PuttsSunk != 1 || pos.AttemptsUsed != 1 {
		t.Fatalf("got sunk=%d used=%d, want 1/1", pos.PuttsSunk, pos.AttemptsUsed)
	}
}

func TestThreeSinksAdvancePosition(t *testing.T) {
	scr := New(nil, nil)
	press(scr, 's', 's', 's')

	if got := scr.engine.Session().CurrentNumber; got != 2 {
		t.Fatalf("current position = %d, want 2", got)
	}
}

func TestUndoKeyRevertsPutt(t *testing.T) {
	scr := New(nil, nil)
	press(scr, 's', 'u')

	pos := scr.engine.Session().Current()
	if pos.AttemptsUsed != 0 {
		t.Fatalf("attempts used = %d after undo, want 0", pos.AttemptsUsed)
	}
}

func TestExhaustionOpensChoiceDialog(t *testing.T) {
	scr := New(nil, nil)
	press(scr, 'm', 'm', 'm')

	if !scr.engine.ChoicePending() {
		t.Fatal("expected pending choice after exhausting position 1")
	}

	// Play keys are ignored while the choice is open.
	press(scr, 's')
	if got := scr.engine.Session().Current().AttemptsUsed; got != 3 {
		t.Fatalf("attempts used = %d, putt recorded during choice", got)
	}
}

func TestChoiceContinueEntersPenaltyMode(t *testing.T) {
	scr := New(nil, nil)
	press(scr, 'm', 'm', 'm', 'c')

	sess := scr.engine.Session()
	if !sess.PenaltyMode {
		t.Fatal("expected penalty mode after continue")
	}
	if got := sess.Current().Status; got != putt.StatusContinuedPenalty {
		t.Fatalf("position status = %q, want continued-penalty", got)
	}
}

func TestChoiceRestartDiscardsRound(t *testing.T) {
	scr := New(nil, nil)
	oldID := scr.engine.Session().SessionID
	press(scr, 'm', 'm', 'm', 'r')

	sess := scr.engine.Session()
	if sess.SessionID == oldID {
		t.Fatal("expected a fresh session after restart")
	}
	if sess.CurrentNumber != 1 || sess.Current().AttemptsUsed != 0 {
		t.Fatal("restarted session is not clean")
	}
}

func TestUndoDuringChoiceDissolvesIt(t *testing.T) {
	scr := New(nil, nil)
	press(scr, 'm', 'm', 'm', 'u')

	if scr.engine.ChoicePending() {
		t.Fatal("undo should have dissolved the pending choice")
	}
}

// sinkOut plays three sinks per position through the whole round and
// returns the final command.
func sinkOut(t *testing.T, scr *GameScreen) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	var s screen.Screen = scr
	for i := 0; i < putt.PositionCount*putt.PuttsRequired; i++ {
		s, cmd = s.Update(keyPress('s'))
	}
	return cmd
}

func TestRoundCompletionPushesSummary(t *testing.T) {
	repo := &fakeRepo{}
	scr := New(repo, nil)
	cmd := sinkOut(t, scr)

	if cmd == nil {
		t.Fatal("expected a navigation command after the last sink")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("got %T, want PushScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Fatalf("pushed %T, want summary screen", msg.Screen)
	}

	if len(repo.archived) != 1 {
		t.Fatalf("archived %d sessions, want 1", len(repo.archived))
	}
	if len(repo.cleared) != 1 {
		t.Fatalf("cleared %d current pointers, want 1", len(repo.cleared))
	}
}

func TestArchiveFailureBlocksUntilRetry(t *testing.T) {
	repo := &fakeRepo{archiveErr: errors.New("disk full")}
	scr := New(repo, nil)
	cmd := sinkOut(t, scr)

	if cmd != nil {
		t.Fatal("summary must not be pushed while archival is failing")
	}
	if scr.archiveErr == "" {
		t.Fatal("expected the archive error to surface")
	}
	if !scr.engine.Session().Finalized() {
		t.Fatal("session should be finalized even when archival fails")
	}

	// Play keys stay dead in the blocked state.
	_, cmd = press(scr, 's')
	if cmd != nil {
		t.Fatal("play keys should be ignored while blocked")
	}

	repo.archiveErr = nil
	_, cmd = scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected summary push after successful retry")
	}
	if len(repo.archived) != 1 {
		t.Fatalf("archived %d sessions after retry, want 1", len(repo.archived))
	}
}

func TestAutosaveTickSaves(t *testing.T) {
	repo := &fakeRepo{}
	scr := New(repo, nil)
	press(scr, 's')
	before := repo.saved

	_, cmd := scr.Update(autosaveTickMsg{})
	if repo.saved != before+1 {
		t.Fatalf("saved %d times, want %d", repo.saved, before+1)
	}
	if cmd == nil {
		t.Fatal("autosave must reschedule itself")
	}
}

func TestStatusLineTracksScoreAndPenalty(t *testing.T) {
	scr := New(nil, nil)
	press(scr, 's', 's', 's')

	if got := scr.StatusLine(); got != "Score 3   Position 2/9" {
		t.Fatalf("status line = %q", got)
	}

	press(scr, 'm', 'm', 'm', 'm', 'c')
	if got := scr.StatusLine(); got != "Score 3   Position 2/9   PENALTY" {
		t.Fatalf("status line = %q", got)
	}
}
