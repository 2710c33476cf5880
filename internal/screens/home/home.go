package home

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	puttgame "github.com/Nighteyez07/disc-golf-putting-tr/internal/game"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/router"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/screen"
	gamescreen "github.com/Nighteyez07/disc-golf-putting-tr/internal/screens/game"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/screens/history"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/store"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/ui/components"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu     components.Menu
	sessions store.SessionRepo
	resume   *puttgame.Session // unfinished round, nil when none
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(sessions store.SessionRepo) *HomeScreen {
	// Look for an unfinished round so the menu can offer a resume.
	var resume *puttgame.Session
	if sessions != nil {
		resume, _ = sessions.LoadCurrent(context.Background())
	}

	h := &HomeScreen{sessions: sessions, resume: resume}

	items := []components.MenuItem{
		{Label: "NEW ROUND", Action: func() tea.Cmd {
			return func() tea.Msg {
				h.abandonResume()
				return router.PushScreenMsg{Screen: gamescreen.New(sessions, nil)}
			}
		}},
		{Label: "RESUME ROUND", Disabled: resume == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: gamescreen.New(sessions, h.resume)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(sessions)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

// abandonResume retires a lingering unfinished round when the player starts
// a new one, so it never resurfaces as the current session.
func (h *HomeScreen) abandonResume() {
	if h.resume == nil || h.sessions == nil {
		return
	}
	if err := h.sessions.ClearCurrent(context.Background(), h.resume.SessionID); err != nil {
		fmt.Fprintf(os.Stderr, "warning: clear abandoned round: %v\n", err)
	}
	h.resume = nil
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render(logo))
	sections = append(sections, theme.Subtitle.Width(width).
		Render("disc golf putting practice"))

	if h.resume != nil {
		card := theme.Card.Render(fmt.Sprintf(
			"Round in progress\nPosition %d of %d   Score %d",
			h.resume.CurrentNumber, puttgame.PositionCount, h.resume.Score()))
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	}

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	content := strings.Join(sections, "\n\n")
	return lipgloss.PlaceVertical(height, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

const logo = `
 ____  _   _ _____ _____ ____
|  _ \| | | |_   _|_   _|  _ \
| |_) | | | | | |   | | | |_) |
|  __/| |_| | | |   | | |  _ <
|_|    \___/  |_|   |_| |_| \_\
`
