// Package leaderboard renders the best scores recorded this run.
package leaderboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ekaplan/mathquest/internal/quiz"
	"github.com/ekaplan/mathquest/internal/router"
	"github.com/ekaplan/mathquest/internal/screen"
	"github.com/ekaplan/mathquest/internal/ui/layout"
	"github.com/ekaplan/mathquest/internal/ui/theme"
)

const maxRows = 10

// LeaderboardScreen shows the top scores. When created with a next
// factory it acts as the end-of-session screen: Enter starts a fresh
// run. With a nil factory it is a read-only overlay dismissed with Esc.
type LeaderboardScreen struct {
	board *quiz.Leaderboard
	next  func() screen.Screen
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

// New creates a LeaderboardScreen over board.
func New(board *quiz.Leaderboard, next func() screen.Screen) *LeaderboardScreen {
	return &LeaderboardScreen{board: board, next: next}
}

func (l *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (l *LeaderboardScreen) Init() tea.Cmd {
	return nil
}

func (l *LeaderboardScreen) KeyHints() []layout.KeyHint {
	if l.next != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Play again"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (l *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "enter" && l.next != nil {
			nextScreen := l.next()
			return l, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: nextScreen}
			}
		}
	}
	return l, nil
}

func (l *LeaderboardScreen) View(width, height int) string {
	entries := l.board.Top(maxRows)

	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Best Scores"))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No finished sessions yet."))
	} else {
		var rows strings.Builder
		for i, e := range entries {
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if i == 0 {
				style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
			}
			rows.WriteString(style.Render(fmt.Sprintf("%2d. %-20s %6d pts", i+1, e.Username, e.Score)))
			rows.WriteString("\n")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rows.String()))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
