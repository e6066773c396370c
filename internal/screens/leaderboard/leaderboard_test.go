package leaderboard

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ekaplan/mathquest/internal/quiz"
	"github.com/ekaplan/mathquest/internal/router"
	"github.com/ekaplan/mathquest/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "stub" }
func (s *stubScreen) Title() string                           { return "" }

func TestViewEmptyBoard(t *testing.T) {
	l := New(quiz.NewLeaderboard(), nil)
	view := l.View(80, 24)
	if !strings.Contains(view, "No finished sessions yet.") {
		t.Error("expected empty-state message")
	}
}

func TestViewRanksByScore(t *testing.T) {
	board := quiz.NewLeaderboard()
	board.Record("Ada", 90)
	board.Record("Grace", 120)

	l := New(board, nil)
	view := l.View(80, 24)

	graceIdx := strings.Index(view, "Grace")
	adaIdx := strings.Index(view, "Ada")
	if graceIdx == -1 || adaIdx == -1 {
		t.Fatal("expected both players in the view")
	}
	if graceIdx > adaIdx {
		t.Error("expected the higher score listed first")
	}
}

func TestEnterStartsNewRun(t *testing.T) {
	l := New(quiz.NewLeaderboard(), func() screen.Screen { return &stubScreen{} })

	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
}

func TestEnterIgnoredForOverlay(t *testing.T) {
	l := New(quiz.NewLeaderboard(), nil)

	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("overlay should not react to enter")
	}
}
