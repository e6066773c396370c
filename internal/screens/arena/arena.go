package arena

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ekaplan/mathquest/internal/difficulty"
	"github.com/ekaplan/mathquest/internal/quiz"
	"github.com/ekaplan/mathquest/internal/router"
	"github.com/ekaplan/mathquest/internal/screen"
	"github.com/ekaplan/mathquest/internal/screens/leaderboard"
	"github.com/ekaplan/mathquest/internal/ui/components"
	"github.com/ekaplan/mathquest/internal/ui/layout"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ArenaScreen drives one quiz session: pick a difficulty, answer the
// generated question, see feedback, optionally reveal the solution,
// move on. Provider calls run in commands; while one is outstanding
// every key except Ctrl+C is ignored so actions never interleave.
type ArenaScreen struct {
	session     *quiz.Session
	board       *quiz.Leaderboard
	exitFactory func() screen.Screen

	menu        components.Menu
	input       components.TextInput
	busy        bool
	busyLabel   string
	spinnerTick int
	errMsg      string
	confirmQuit bool
}

var _ screen.Screen = (*ArenaScreen)(nil)
var _ screen.KeyHintProvider = (*ArenaScreen)(nil)
var _ screen.ScoreProvider = (*ArenaScreen)(nil)

// New creates an ArenaScreen for the given session. exitFactory
// produces the screen shown after the session ends.
func New(session *quiz.Session, board *quiz.Leaderboard, exitFactory func() screen.Screen) *ArenaScreen {
	a := &ArenaScreen{
		session:     session,
		board:       board,
		exitFactory: exitFactory,
		input:       components.NewTextInput("Type your answer...", 64),
	}
	a.menu = a.difficultyMenu()
	return a
}

func (a *ArenaScreen) Title() string {
	return "Arena"
}

func (a *ArenaScreen) Player() string {
	return a.session.Username
}

func (a *ArenaScreen) Score() int {
	return a.session.Score
}

func (a *ArenaScreen) Init() tea.Cmd {
	return a.input.Init()
}

func (a *ArenaScreen) KeyHints() []layout.KeyHint {
	if a.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if a.busy {
		return []layout.KeyHint{
			{Key: "...", Description: "Working"},
		}
	}
	switch a.session.State() {
	case quiz.StateNoQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Difficulty"},
			{Key: "Enter", Description: "New question"},
			{Key: "L", Description: "Leaderboard"},
			{Key: "Esc", Description: "End session"},
		}
	case quiz.StateAwaitingAnswer:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "End session"},
		}
	case quiz.StateScored:
		return []layout.KeyHint{
			{Key: "S", Description: "Show solution"},
			{Key: "N", Description: "Next question"},
			{Key: "Esc", Description: "End session"},
		}
	case quiz.StateSolutionShown:
		return []layout.KeyHint{
			{Key: "N", Description: "Next question"},
			{Key: "Esc", Description: "End session"},
		}
	}
	return nil
}

func (a *ArenaScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		a.busy = false
		if msg.Err != nil {
			a.errMsg = "Couldn't fetch a question. Press Enter to try again."
			return a, nil
		}
		a.errMsg = ""
		a.input.Reset()
		return a, a.input.Init()

	case solutionReadyMsg:
		// Provider failures already left a placeholder solution in the
		// session, so there is nothing to surface here.
		a.busy = false
		return a, nil

	case spinnerTickMsg:
		if !a.busy {
			return a, nil
		}
		a.spinnerTick++
		return a, spinnerCmd()

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if !a.busy && a.session.State() == quiz.StateAwaitingAnswer {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a *ArenaScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if a.busy {
		return a, nil
	}

	if a.confirmQuit {
		switch key {
		case "y", "Y":
			a.confirmQuit = false
			return a, a.endSession()
		case "n", "N", "esc":
			a.confirmQuit = false
		}
		return a, nil
	}

	if key == "esc" {
		a.confirmQuit = true
		return a, nil
	}

	switch a.session.State() {
	case quiz.StateNoQuestion:
		if key == "l" || key == "L" {
			return a, func() tea.Msg {
				return router.PushScreenMsg{Screen: leaderboard.New(a.board, nil)}
			}
		}
		var cmd tea.Cmd
		a.menu, cmd = a.menu.Update(msg)
		return a, cmd

	case quiz.StateAwaitingAnswer:
		if key == "enter" {
			return a.submitAnswer()
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd

	case quiz.StateScored:
		switch key {
		case "s", "S":
			return a, a.requestSolution()
		case "n", "N", "enter":
			return a.advance()
		}

	case quiz.StateSolutionShown:
		switch key {
		case "n", "N", "enter":
			return a.advance()
		}
	}

	return a, nil
}

// difficultyMenu builds the level picker. Selecting an entry locks the
// difficulty in and requests a question.
func (a *ArenaScreen) difficultyMenu() components.Menu {
	items := make([]components.MenuItem, 0, len(difficulty.Levels()))
	for _, level := range difficulty.Levels() {
		level := level
		items = append(items, components.MenuItem{
			Label: levelLabel(level),
			Action: func() tea.Cmd {
				a.session.SetDifficulty(level)
				return a.requestQuestion()
			},
		})
	}
	return components.NewMenu(items)
}

func (a *ArenaScreen) requestQuestion() tea.Cmd {
	a.busy = true
	a.busyLabel = "Generating question..."
	a.errMsg = ""
	session := a.session
	return tea.Batch(spinnerCmd(), func() tea.Msg {
		return questionReadyMsg{Err: session.RequestQuestion(context.Background())}
	})
}

func (a *ArenaScreen) requestSolution() tea.Cmd {
	a.busy = true
	a.busyLabel = "Working out the solution..."
	session := a.session
	return tea.Batch(spinnerCmd(), func() tea.Msg {
		return solutionReadyMsg{Err: session.RequestSolution(context.Background())}
	})
}

func (a *ArenaScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	err := a.session.SubmitAnswer(a.input.Value())
	if err != nil {
		a.errMsg = err.Error()
		return a, nil
	}
	a.errMsg = ""
	a.input.Submit(a.session.Outcome == quiz.OutcomeCorrect)
	return a, nil
}

func (a *ArenaScreen) advance() (screen.Screen, tea.Cmd) {
	if err := a.session.Advance(); err != nil {
		a.errMsg = err.Error()
		return a, nil
	}
	a.errMsg = ""
	a.input.Reset()
	return a, nil
}

// endSession folds the score into the leaderboard and swaps to the
// final standings, which lead back to the welcome screen.
func (a *ArenaScreen) endSession() tea.Cmd {
	a.session.End(a.board)
	board := a.board
	exit := a.exitFactory
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: leaderboard.New(board, exit)}
	}
}

func spinnerCmd() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
