package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Nighteyez07/disc-golf-putting-tr/internal/game"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/router"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/screen"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/ui/layout"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/ui/theme"
)

// SummaryScreen displays the finished round.
type SummaryScreen struct {
	summary *game.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *game.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Round Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// Unwind past the game screen too.
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Round complete!"))
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Width(width).
		Render(fmt.Sprintf("Duration: %.0f min", sum.DurationMinutes)))
	b.WriteString("\n\n")

	score := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("Final score: %d", sum.FinalScore))
	b.WriteString(score)
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Successful positions: %d / %d", sum.SuccessfulPositions, game.PositionCount)
	if len(sum.PenaltyPositions) > 0 {
		statsLine += fmt.Sprintf("        Penalty positions: %s", joinInts(sum.PenaltyPositions))
	}
	b.WriteString(theme.Body.Width(width).Align(lipgloss.Center).Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render("Positions")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		renderPositionScores(sum.PositionScores)))
	b.WriteString("\n")

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}

// renderPositionScores draws a two-row table: position numbers over their
// individual scores.
func renderPositionScores(scores []int) string {
	var nums, vals []string
	for i, sc := range scores {
		cell := fmt.Sprintf("%4d", i+1)
		nums = append(nums, theme.Hint.Render(cell))

		style := theme.Sink
		if sc < 0 {
			style = theme.Miss
		} else if sc == 0 {
			style = theme.Unselected
		}
		vals = append(vals, style.Render(fmt.Sprintf("%+4d", sc)))
	}
	return strings.Join(nums, " ") + "\n" + strings.Join(vals, " ")
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%d", x)
	}
	return strings.Join(parts, ", ")
}
