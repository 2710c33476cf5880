package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Nighteyez07/disc-golf-putting-tr/internal/game"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/router"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/screen"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/store"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/ui/layout"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []*game.Session
	Err      error
}

// HistoryScreen lists past rounds, most recent first.
type HistoryScreen struct {
	sessions store.SessionRepo
	rounds   []*game.Session
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(sessions store.SessionRepo) *HistoryScreen {
	return &HistoryScreen{
		sessions: sessions,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.sessions == nil {
			return historyLoadedMsg{}
		}
		rounds, err := s.sessions.History(context.Background(), store.DefaultHistoryLimit)
		return historyLoadedMsg{Sessions: rounds, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.rounds = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.rounds)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Miss.Render("Could not load history: "+s.errMsg))
	}
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading..."))
	}
	if len(s.rounds) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No finished rounds yet. Go sink some putts."))
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Past Rounds"))
	b.WriteString("\n\n")

	for i, r := range s.rounds {
		b.WriteString(s.renderRow(i, r, width))
		b.WriteString("\n")
		if s.expanded[i] {
			b.WriteString(s.renderDetails(r, width))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderRow(i int, r *game.Session, width int) string {
	when := r.StartTime.Format("Jan 2, 2006 3:04 PM")

	score := 0
	if r.FinalScore != nil {
		score = *r.FinalScore
	}

	duration := ""
	if r.Summary != nil {
		duration = fmt.Sprintf("%.0f min", r.Summary.DurationMinutes)
	}

	line := fmt.Sprintf("%-24s  score %4d  %8s", when, score, duration)
	if r.PenaltyMode {
		line += "  " + theme.Penalty.Render("penalty")
	}

	marker := "  "
	style := theme.Unselected
	if i == s.selected {
		marker = "▸ "
		style = theme.Selected
	}
	return "  " + marker + style.Render(line)
}

func (s *HistoryScreen) renderDetails(r *game.Session, width int) string {
	if r.Summary == nil {
		return theme.Hint.Render("      no summary recorded")
	}
	sum := r.Summary

	scores := make([]string, len(sum.PositionScores))
	for i, sc := range sum.PositionScores {
		scores[i] = fmt.Sprintf("%+d", sc)
	}

	lines := []string{
		fmt.Sprintf("positions: %s", strings.Join(scores, " ")),
		fmt.Sprintf("successful: %d/%d", sum.SuccessfulPositions, game.PositionCount),
	}
	if len(sum.PenaltyPositions) > 0 {
		penalty := make([]string, len(sum.PenaltyPositions))
		for i, n := range sum.PenaltyPositions {
			penalty[i] = fmt.Sprintf("%d", n)
		}
		lines = append(lines, "penalty positions: "+strings.Join(penalty, ", "))
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString("      " + theme.Hint.Render(l) + "\n")
	}
	return b.String()
}
