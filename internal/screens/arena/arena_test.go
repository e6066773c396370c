package arena

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ekaplan/mathquest/internal/difficulty"
	"github.com/ekaplan/mathquest/internal/quiz"
	"github.com/ekaplan/mathquest/internal/questiongen"
	"github.com/ekaplan/mathquest/internal/router"
	"github.com/ekaplan/mathquest/internal/screen"
)

// stubGenerator serves a canned question and solution, with optional
// error injection.
type stubGenerator struct {
	question    *questiongen.Question
	questionErr error
	solution    *questiongen.Solution
	solutionErr error
}

func (g *stubGenerator) Question(context.Context, difficulty.Level, []string) (*questiongen.Question, error) {
	if g.questionErr != nil {
		return nil, g.questionErr
	}
	return g.question, nil
}

func (g *stubGenerator) Solution(context.Context, string, string) (*questiongen.Solution, error) {
	if g.solutionErr != nil {
		return nil, g.solutionErr
	}
	return g.solution, nil
}

// stubExit is the screen shown after the session ends.
type stubExit struct{}

func (s *stubExit) Init() tea.Cmd                           { return nil }
func (s *stubExit) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubExit) View(int, int) string                    { return "exit" }
func (s *stubExit) Title() string                           { return "" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testArena(t *testing.T) (*ArenaScreen, *stubGenerator, *quiz.Leaderboard) {
	t.Helper()
	gen := &stubGenerator{
		question: &questiongen.Question{
			Text:   "What is 15 * 2?",
			Answer: "30",
			Topic:  "arithmetic",
		},
		solution: &questiongen.Solution{Detailed: "Multiply 15 by 2 to get 30."},
	}
	session, err := quiz.NewSession("Ada", gen)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	board := quiz.NewLeaderboard()
	a := New(session, board, func() screen.Screen { return &stubExit{} })
	return a, gen, board
}

// loadQuestion drives the session to StateAwaitingAnswer the way the
// command pipeline would.
func loadQuestion(t *testing.T, a *ArenaScreen) {
	t.Helper()
	if err := a.session.RequestQuestion(context.Background()); err != nil {
		t.Fatalf("RequestQuestion: %v", err)
	}
	a.Update(questionReadyMsg{})
}

func TestDifficultyMenuStartsQuestion(t *testing.T) {
	a, _, _ := testArena(t)

	// Move to the second entry and select it.
	var scr screen.Screen = a
	scr, _ = scr.Update(keyPress('j'))
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))

	aa := scr.(*ArenaScreen)
	if !aa.busy {
		t.Error("expected busy while the question request is outstanding")
	}
	if cmd == nil {
		t.Fatal("expected a command from menu selection")
	}
	if aa.session.Difficulty != difficulty.Medium {
		t.Errorf("difficulty = %q, want medium", aa.session.Difficulty)
	}
}

func TestBusyIgnoresKeys(t *testing.T) {
	a, _, _ := testArena(t)
	a.busy = true

	_, cmd := a.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("keys while busy should be ignored")
	}
}

func TestSubmitCorrectAnswer(t *testing.T) {
	a, _, _ := testArena(t)
	a.session.SetDifficulty(difficulty.Medium)
	loadQuestion(t, a)

	a.input.Model.SetValue("30")
	var scr screen.Screen = a
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	aa := scr.(*ArenaScreen)
	if aa.session.Outcome != quiz.OutcomeCorrect {
		t.Error("expected correct outcome")
	}
	if aa.session.Score != 30 {
		t.Errorf("score = %d, want 30", aa.session.Score)
	}

	view := aa.View(80, 24)
	if !strings.Contains(view, "Correct!") {
		t.Error("expected feedback in view")
	}
}

func TestFeedbackShowsCapturedPoints(t *testing.T) {
	a, _, _ := testArena(t)
	a.session.SetDifficulty(difficulty.Medium)
	loadQuestion(t, a)

	// A difficulty change after the question was generated applies to
	// the next question; the feedback must show the captured payout.
	a.session.SetDifficulty(difficulty.Harder)

	a.input.Model.SetValue("30")
	var scr screen.Screen = a
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	aa := scr.(*ArenaScreen)
	view := aa.View(80, 24)
	if !strings.Contains(view, "+30 pts") {
		t.Errorf("expected +30 pts in feedback, got:\n%s", view)
	}
}

func TestSubmitEmptyAnswerShowsValidation(t *testing.T) {
	a, _, _ := testArena(t)
	loadQuestion(t, a)

	var scr screen.Screen = a
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	aa := scr.(*ArenaScreen)
	if aa.session.State() != quiz.StateAwaitingAnswer {
		t.Error("empty submission must not advance the state")
	}
	if aa.errMsg == "" {
		t.Error("expected a validation message")
	}
}

func TestQuestionFailureRecovers(t *testing.T) {
	a, _, _ := testArena(t)
	a.busy = true

	var scr screen.Screen = a
	scr, _ = scr.Update(questionReadyMsg{Err: errors.New("provider down")})

	aa := scr.(*ArenaScreen)
	if aa.busy {
		t.Error("busy should clear on failure")
	}
	if aa.errMsg == "" {
		t.Error("expected a recoverable error message")
	}

	view := aa.View(80, 24)
	if !strings.Contains(view, "Pick a difficulty") {
		t.Error("expected the difficulty picker after failure")
	}
}

func TestSolutionFlow(t *testing.T) {
	a, _, _ := testArena(t)
	loadQuestion(t, a)
	a.input.Model.SetValue("30")
	var scr screen.Screen = a
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	// Reveal solution.
	aa := scr.(*ArenaScreen)
	scr, cmd := aa.Update(keyPress('s'))
	aa = scr.(*ArenaScreen)
	if !aa.busy {
		t.Error("expected busy during solution fetch")
	}
	if cmd == nil {
		t.Fatal("expected a command")
	}

	// Simulate fetch completion.
	if err := aa.session.RequestSolution(context.Background()); err != nil {
		t.Fatalf("RequestSolution: %v", err)
	}
	scr, _ = aa.Update(solutionReadyMsg{})
	aa = scr.(*ArenaScreen)

	view := aa.View(80, 24)
	if !strings.Contains(view, "Multiply 15 by 2") {
		t.Error("expected the solution in the view")
	}

	// Next question returns to the picker.
	scr, _ = aa.Update(keyPress('n'))
	aa = scr.(*ArenaScreen)
	if aa.session.State() != quiz.StateNoQuestion {
		t.Error("expected picker after advancing")
	}
}

func TestQuitConfirmEndsSession(t *testing.T) {
	a, _, board := testArena(t)
	a.session.SetDifficulty(difficulty.Hard)
	loadQuestion(t, a)
	a.input.Model.SetValue("30")
	var scr screen.Screen = a
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	// Esc brings up the confirmation; Y ends the session.
	aa := scr.(*ArenaScreen)
	scr, _ = aa.Update(specialKey(tea.KeyEscape))
	aa = scr.(*ArenaScreen)
	if !aa.confirmQuit {
		t.Fatal("expected quit confirmation")
	}

	scr, cmd := aa.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after confirming quit")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}

	if best, _ := board.Best("Ada"); best != 60 {
		t.Errorf("leaderboard best = %d, want 60", best)
	}
}

func TestQuitConfirmDismissed(t *testing.T) {
	a, _, _ := testArena(t)

	var scr screen.Screen = a
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	aa := scr.(*ArenaScreen)
	scr, _ = aa.Update(keyPress('n'))
	aa = scr.(*ArenaScreen)
	if aa.confirmQuit {
		t.Error("expected confirmation dismissed")
	}
}

func TestLeaderboardOverlay(t *testing.T) {
	a, _, _ := testArena(t)

	_, cmd := a.Update(keyPress('l'))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	if _, ok := msg.(router.PushScreenMsg); !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
}

func TestHeaderScore(t *testing.T) {
	a, _, _ := testArena(t)
	if a.Player() != "Ada" {
		t.Errorf("Player = %q, want Ada", a.Player())
	}
	if a.Score() != 0 {
		t.Errorf("Score = %d, want 0", a.Score())
	}
}
