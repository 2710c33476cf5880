package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	puttgame "github.com/Nighteyez07/disc-golf-putting-tr/internal/game"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/router"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/screen"
	gamescreen "github.com/Nighteyez07/disc-golf-putting-tr/internal/screens/game"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/screens/home"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/store"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/ui/layout"
)

// Options carries the collaborators the TUI needs.
type Options struct {
	// Sessions persists rounds. Nil plays without persistence.
	Sessions store.SessionRepo

	// StartRound skips the home menu and opens straight into a round,
	// resuming an unfinished one when present.
	StartRound bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Sessions)
	m := AppModel{
		router: router.New(homeScreen),
	}
	if opts.StartRound {
		var current *puttgame.Session
		if opts.Sessions != nil {
			current, _ = opts.Sessions.LoadCurrent(context.Background())
		}
		m.initCmd = m.router.Push(gamescreen.New(opts.Sessions, current))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens that need esc themselves handle it in Update
			// before this fallback pops.
			if m.router.Depth() > 1 {
				cmd := m.router.Update(msg)
				if cmd != nil {
					return m, cmd
				}
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	status := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.StatusLine()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
