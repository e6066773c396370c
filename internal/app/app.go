package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ekaplan/mathquest/internal/questiongen"
	"github.com/ekaplan/mathquest/internal/quiz"
	"github.com/ekaplan/mathquest/internal/router"
	"github.com/ekaplan/mathquest/internal/screen"
	"github.com/ekaplan/mathquest/internal/screens/arena"
	"github.com/ekaplan/mathquest/internal/screens/welcome"
	"github.com/ekaplan/mathquest/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel wires the screen graph: welcome asks for a name, the
// arena runs the session, and ending a session lands on the
// leaderboard which loops back to a fresh welcome. The leaderboard
// outlives individual sessions.
func newAppModel(gen questiongen.Generator) AppModel {
	board := quiz.NewLeaderboard()

	var newWelcome func() screen.Screen
	newWelcome = func() screen.Screen {
		return welcome.New(func(username string) screen.Screen {
			session, err := quiz.NewSession(username, gen)
			if err != nil {
				// The welcome screen validates the name; a fresh
				// welcome is the safe fallback.
				return newWelcome()
			}
			return arena.New(session, board, newWelcome)
		})
	}

	return AppModel{
		router: router.New(newWelcome()),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
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
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
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
	if active != nil {
		title = active.Title()
	}

	var player string
	var score int
	if sp, ok := active.(screen.ScoreProvider); ok {
		player = sp.Player()
		score = sp.Score()
	}

	header := layout.RenderHeader(title, player, score, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); hints != nil {
			footerHints = hints
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

// Run starts the Bubble Tea program with the given question generator.
func Run(gen questiongen.Generator) error {
	p := tea.NewProgram(newAppModel(gen))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
