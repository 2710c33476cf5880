package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Nighteyez07/disc-golf-putting-tr/internal/game"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/router"
)

func testSummary() *game.Summary {
	return &game.Summary{
		FinalScore:          21,
		PositionScores:      []int{3, 3, 0, 3, -1, 3, 3, 3, 3},
		SuccessfulPositions: 8,
		PenaltyPositions:    []int{5},
		DurationMinutes:     18,
		Timestamp:           time.Now(),
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Round Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Round Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "21") {
		t.Error("expected final score in view")
	}
}

func TestSummaryScreen_NilSummary(t *testing.T) {
	s := New(nil)
	if view := s.View(80, 24); view != "" {
		t.Errorf("expected empty view without a summary, got %q", view)
	}
}

func TestSummaryScreen_EnterPopsToRoot(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("got %T, want PopToRootMsg", cmd())
	}
}

func TestSummaryScreen_EscPopsToRoot(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc")
	}
}
