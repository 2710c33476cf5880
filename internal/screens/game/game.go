package game

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	putt "github.com/Nighteyez07/disc-golf-putting-tr/internal/game"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/router"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/screen"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/screens/summary"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/store"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/ui/layout"
)

// autosaveInterval matches the background save cadence of the in-progress
// round. A crash loses at most this much play.
const autosaveInterval = 10 * time.Second

// autosaveTickMsg fires the periodic save of the in-progress round.
type autosaveTickMsg time.Time

// GameScreen runs one putting round: nine positions, three sinks each.
type GameScreen struct {
	engine   *putt.Engine
	sessions store.SessionRepo

	saveErr    string // last autosave failure, shown inline
	archiveErr string // finalization blocked on a failed archive write
	done       bool   // summary pushed, ignore further play keys
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)
var _ screen.StatusProvider = (*GameScreen)(nil)

// New starts a round on the given session. A nil session begins a fresh
// round; a nil repo plays without persistence.
func New(sessions store.SessionRepo, current *putt.Session) *GameScreen {
	var ss putt.SessionStore
	if sessions != nil {
		ss = sessions
	}
	return &GameScreen{
		engine:   putt.NewEngine(current, ss),
		sessions: sessions,
	}
}

func (s *GameScreen) Init() tea.Cmd {
	return autosaveTick()
}

func (s *GameScreen) Title() string {
	return "Round"
}

func (s *GameScreen) StatusLine() string {
	sess := s.engine.Session()
	status := fmt.Sprintf("Score %d   Position %d/%d",
		sess.Score(), sess.CurrentNumber, putt.PositionCount)
	if sess.PenaltyMode {
		status += "   PENALTY"
	}
	return status
}

func (s *GameScreen) KeyHints() []layout.KeyHint {
	if s.archiveErr != "" {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Retry save"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.engine.ChoicePending() {
		return []layout.KeyHint{
			{Key: "C", Description: "Continue with penalty"},
			{Key: "R", Description: "Restart round"},
			{Key: "U", Description: "Undo"},
		}
	}
	return []layout.KeyHint{
		{Key: "S", Description: "Sink"},
		{Key: "M", Description: "Miss"},
		{Key: "U", Description: "Undo"},
		{Key: "R", Description: "Redo"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case autosaveTickMsg:
		return s.handleAutosave()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *GameScreen) handleAutosave() (screen.Screen, tea.Cmd) {
	if err := s.engine.Save(context.Background()); err != nil {
		s.saveErr = err.Error()
	} else {
		s.saveErr = ""
	}
	return s, autosaveTick()
}

func (s *GameScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.done {
		return s, nil
	}

	ctx := context.Background()
	key := msg.String()

	// A finished round stuck on a failed archive write blocks everything
	// until the retry lands or the player backs out.
	if s.archiveErr != "" {
		if key == "enter" {
			if err := s.engine.RetryFinalize(ctx); err != nil {
				s.archiveErr = err.Error()
				return s, nil
			}
			s.archiveErr = ""
			return s.pushSummary()
		}
		return s, nil
	}

	if s.engine.ChoicePending() {
		switch key {
		case "c", "C":
			if err := s.engine.ContinueWithPenalty(); err == nil {
				s.saveNow(ctx)
			}
		case "r", "R":
			s.engine.Restart(ctx)
		case "u", "U":
			s.engine.Undo()
		}
		return s, nil
	}

	switch key {
	case "s", "S":
		return s.recordPutt(ctx, putt.ResultSink)
	case "m", "M":
		return s.recordPutt(ctx, putt.ResultMiss)
	case "u", "U":
		if s.engine.Undo() {
			s.saveNow(ctx)
		}
	case "r", "R":
		if s.engine.Redo() {
			s.saveNow(ctx)
		}
	}
	return s, nil
}

func (s *GameScreen) recordPutt(ctx context.Context, result putt.PuttResult) (screen.Screen, tea.Cmd) {
	outcome, err := s.engine.RecordPutt(ctx, result)
	if outcome == putt.OutcomeSessionComplete {
		if err != nil {
			s.archiveErr = err.Error()
			return s, nil
		}
		return s.pushSummary()
	}
	return s, nil
}

func (s *GameScreen) pushSummary() (screen.Screen, tea.Cmd) {
	s.done = true
	sum := s.engine.Session().Summary
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(sum)}
	}
}

// saveNow persists immediately instead of waiting for the autosave tick, so
// explicit state changes survive a quit right after them.
func (s *GameScreen) saveNow(ctx context.Context) {
	if err := s.engine.Save(ctx); err != nil {
		s.saveErr = err.Error()
	} else {
		s.saveErr = ""
	}
}

func autosaveTick() tea.Cmd {
	return tea.Tick(autosaveInterval, func(t time.Time) tea.Msg {
		return autosaveTickMsg(t)
	})
}
