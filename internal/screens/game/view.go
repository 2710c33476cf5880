package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	putt "github.com/Nighteyez07/disc-golf-putting-tr/internal/game"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/ui/theme"
)

func (s *GameScreen) View(width, height int) string {
	if s.archiveErr != "" {
		return s.renderArchiveError(width, height)
	}

	sess := s.engine.Session()
	pos := sess.Current()

	var b strings.Builder

	b.WriteString(renderPositionStrip(sess, width))
	b.WriteString("\n\n")

	title := fmt.Sprintf("Position %d", pos.Number)
	b.WriteString(theme.Title.Width(width).Render(title))
	b.WriteString("\n")

	attempts := fmt.Sprintf("Attempt %d of %d", pos.AttemptsUsed+1, pos.TotalAttemptsAvailable)
	if pos.Exhausted() {
		attempts = fmt.Sprintf("%d of %d attempts used", pos.AttemptsUsed, pos.TotalAttemptsAvailable)
	}
	if pos.AttemptsCarriedOver > 0 {
		attempts += fmt.Sprintf("  (+%d carried over)", pos.AttemptsCarriedOver)
	}
	b.WriteString(theme.Subtitle.Width(width).Render(attempts))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderPuttLog(pos)))
	b.WriteString("\n\n")

	sunk := fmt.Sprintf("Sunk %d of %d", pos.PuttsSunk, putt.PuttsRequired)
	b.WriteString(theme.Body.Width(width).Align(lipgloss.Center).Render(sunk))
	b.WriteString("\n")

	if sess.PenaltyMode {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Penalty.Render("PENALTY MODE") +
				theme.Hint.Render("  over-budget putts count against the score")))
		b.WriteString("\n")
	}

	if s.engine.ChoicePending() {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderChoiceDialog()))
	}

	if s.saveErr != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("autosave failed: " + s.saveErr))
	}

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}

// renderPositionStrip shows all nine positions with their running scores.
func renderPositionStrip(sess *putt.Session, width int) string {
	cells := make([]string, 0, putt.PositionCount)
	for _, p := range sess.Positions {
		label := fmt.Sprintf("%d", p.Number)
		style := theme.Hint
		switch {
		case p.Number == sess.CurrentNumber && !sess.Finalized():
			style = theme.Selected
			label = "[" + label + "]"
		case p.Completed && p.Status == putt.StatusSuccess:
			style = theme.Sink
			label = fmt.Sprintf("%d:%+d", p.Number, p.PositionScore)
		case p.Completed:
			style = theme.Miss
			label = fmt.Sprintf("%d:%+d", p.Number, p.PositionScore)
		}
		cells = append(cells, style.Render(label))
	}
	strip := strings.Join(cells, "  ")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strip)
}

// renderPuttLog draws the recorded putts as chain hits and lip-outs.
func renderPuttLog(pos *putt.Position) string {
	if len(pos.Putts) == 0 {
		return theme.Hint.Render("no putts yet")
	}
	marks := make([]string, 0, len(pos.Putts))
	for _, p := range pos.Putts {
		if p.Result == putt.ResultSink {
			marks = append(marks, theme.Sink.Render("●"))
		} else {
			marks = append(marks, theme.Miss.Render("○"))
		}
	}
	return strings.Join(marks, " ")
}

func renderChoiceDialog() string {
	lines := []string{
		theme.Penalty.Render("Out of attempts"),
		"",
		theme.Body.Render("C") + theme.Hint.Render("  keep putting, overage counts against you"),
		theme.Body.Render("R") + theme.Hint.Render("  throw the round away and start over"),
	}
	return theme.Card.Render(strings.Join(lines, "\n"))
}

func (s *GameScreen) renderArchiveError(width, height int) string {
	lines := []string{
		theme.Miss.Render("Round finished but could not be saved"),
		"",
		theme.Hint.Render(s.archiveErr),
		"",
		theme.Body.Render("Press Enter to retry. Your round is kept until it saves."),
	}
	card := theme.Card.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
