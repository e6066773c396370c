package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ekaplan/mathquest/internal/router"
	"github.com/ekaplan/mathquest/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "arena" }
func (s *stubScreen) Title() string                           { return "Arena" }

func newTestWelcome() (*WelcomeScreen, *[]string) {
	var names []string
	factory := func(username string) screen.Screen {
		names = append(names, username)
		return &stubScreen{}
	}
	return New(factory), &names
}

func TestEnterWithoutNameStays(t *testing.T) {
	w, names := newTestWelcome()

	updated, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("empty name should not produce a command")
	}
	if len(*names) != 0 {
		t.Errorf("factory called %d times, want 0", len(*names))
	}

	view := updated.View(80, 24)
	if !strings.Contains(view, "Enter a name") {
		t.Error("expected a validation message in the view")
	}
}

func TestEnterWithNameReplacesScreen(t *testing.T) {
	w, names := newTestWelcome()
	w.input.Model.SetValue("  Ada  ")

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}

	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replaceMsg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if len(*names) != 1 || (*names)[0] != "Ada" {
		t.Errorf("factory calls = %v, want [Ada] (trimmed)", *names)
	}
}

func TestBannerVisible(t *testing.T) {
	w, _ := newTestWelcome()
	view := w.View(80, 24)
	if !strings.Contains(view, "Q  U  E  S  T") {
		t.Error("expected banner in view")
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome()
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
