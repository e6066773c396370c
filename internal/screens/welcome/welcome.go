package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ekaplan/mathquest/internal/router"
	"github.com/ekaplan/mathquest/internal/screen"
	"github.com/ekaplan/mathquest/internal/ui/components"
	"github.com/ekaplan/mathquest/internal/ui/layout"
	"github.com/ekaplan/mathquest/internal/ui/theme"
)

// WelcomeScreen asks for a player name and starts a quiz session.
type WelcomeScreen struct {
	arenaFactory func(username string) screen.Screen
	input        components.TextInput
	errMsg       string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that hands the entered name to
// arenaFactory and replaces itself with the produced screen.
func New(arenaFactory func(username string) screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		arenaFactory: arenaFactory,
		input:        components.NewTextInput("Your name...", 24),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		name := strings.TrimSpace(w.input.Value())
		if name == "" {
			w.errMsg = "Enter a name to start playing."
			return w, nil
		}
		arenaScreen := w.arenaFactory(name)
		return w, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: arenaScreen}
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	if w.input.Value() != "" {
		w.errMsg = ""
	}
	return w, cmd
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("AI-generated math, four difficulty tiers, one leaderboard.")
	sections = append(sections, tagline)
	sections = append(sections, "")

	prompt := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Who's playing?")
	sections = append(sections, prompt)
	sections = append(sections, w.input.View())

	if w.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, theme.Incorrect.Render(w.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
