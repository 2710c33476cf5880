package home

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	puttgame "github.com/Nighteyez07/disc-golf-putting-tr/internal/game"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/router"
	gamescreen "github.com/Nighteyez07/disc-golf-putting-tr/internal/screens/game"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/screens/history"
)

// fakeRepo hands back a canned current session.
type fakeRepo struct {
	current *puttgame.Session
	cleared []string
}

func (f *fakeRepo) SaveCurrent(_ context.Context, _ *puttgame.Session) error { return nil }
func (f *fakeRepo) LoadCurrent(_ context.Context) (*puttgame.Session, error) {
	return f.current, nil
}
func (f *fakeRepo) ClearCurrent(_ context.Context, sessionID string) error {
	f.cleared = append(f.cleared, sessionID)
	return nil
}
func (f *fakeRepo) Archive(_ context.Context, _ *puttgame.Session) error { return nil }
func (f *fakeRepo) Get(_ context.Context, _ string) (*puttgame.Session, error) {
	return nil, nil
}
func (f *fakeRepo) History(_ context.Context, _ int) ([]*puttgame.Session, error) {
	return nil, nil
}
func (f *fakeRepo) DeleteOldest(_ context.Context, _ int) (int, error) { return 0, nil }

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func down() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyDown}
}

func TestNewRoundPushesGameScreen(t *testing.T) {
	h := New(nil)
	_, cmd := h.Update(enter())
	if cmd == nil {
		t.Fatal("expected a command from NEW ROUND")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("got %T, want PushScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*gamescreen.GameScreen); !ok {
		t.Fatalf("pushed %T, want game screen", msg.Screen)
	}
}

func TestResumeDisabledWithoutCurrentRound(t *testing.T) {
	h := New(&fakeRepo{})

	// Down from NEW ROUND must skip the disabled resume entry.
	h.Update(down())
	_, cmd := h.Update(enter())
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("got %T, want PushScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*history.HistoryScreen); !ok {
		t.Fatalf("pushed %T, want history screen", msg.Screen)
	}
}

func TestResumeOffersUnfinishedRound(t *testing.T) {
	current := puttgame.NewSession()
	h := New(&fakeRepo{current: current})

	h.Update(down())
	_, cmd := h.Update(enter())
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("got %T, want PushScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*gamescreen.GameScreen); !ok {
		t.Fatalf("pushed %T, want game screen", msg.Screen)
	}
}

func TestNewRoundAbandonsUnfinishedRound(t *testing.T) {
	current := puttgame.NewSession()
	repo := &fakeRepo{current: current}
	h := New(repo)

	_, cmd := h.Update(enter())
	cmd() // run the push so the old round gets cleared
	if len(repo.cleared) != 1 || repo.cleared[0] != current.SessionID {
		t.Fatalf("cleared = %v, want the abandoned session", repo.cleared)
	}
}

func TestQuit(t *testing.T) {
	h := New(nil)
	for i := 0; i < 3; i++ {
		h.Update(down())
	}
	_, cmd := h.Update(enter())
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}
