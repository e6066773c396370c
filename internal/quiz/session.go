// Package quiz owns the lifecycle of one quiz run: question in play,
// last-answer outcome, accumulated score, topics already covered, and
// solution-reveal flags. Every user action maps to one method on
// Session; illegal actions return a *ValidationError and leave the
// session untouched.
package quiz

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ekaplan/mathquest/internal/difficulty"
	"github.com/ekaplan/mathquest/internal/eval"
	"github.com/ekaplan/mathquest/internal/llm"
	"github.com/ekaplan/mathquest/internal/questiongen"
)

// State identifies where the session is in its question cycle.
type State int

const (
	StateNoQuestion      State = iota // No question in play
	StateQuestionPending              // Waiting on the provider for a question
	StateAwaitingAnswer               // Question displayed, no answer yet
	StateScored                       // Outcome decided, solution not requested
	StateSolutionLoading              // Waiting on the provider for a solution
	StateSolutionShown                // Solution displayed
)

// Outcome is the result of the current question only.
type Outcome int

const (
	OutcomeUnanswered Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
)

// Session tracks one player's quiz run. It is not safe for concurrent
// use; the UI serializes actions, and independent sessions share
// nothing except the Leaderboard.
type Session struct {
	// ID correlates this session's provider traffic in the event log.
	ID string

	// Username identifies the player. Empty after End.
	Username string

	// Score accumulates points for correct answers. Never decreases
	// within a run.
	Score int

	// Difficulty applies to the next requested question.
	Difficulty difficulty.Level

	// UsedTopics lists topic labels of questions served so far, in
	// order, without duplicates. Steers the generator away from repeats.
	UsedTopics []string

	// Current is the question in play, nil in StateNoQuestion.
	Current *questiongen.Question

	// Outcome is the result of Current, OutcomeUnanswered until a
	// submission lands.
	Outcome Outcome

	// Solution is set once a reveal completes, nil before that.
	Solution *questiongen.Solution

	// SolutionRequested and SolutionVisible gate the lazy solution
	// fetch and its display.
	SolutionRequested bool
	SolutionVisible   bool

	state     State
	level     difficulty.Level // difficulty captured when Current was generated
	usedSet   map[string]bool
	generator questiongen.Generator
}

// NewSession starts a run for username. The username must be non-blank.
func NewSession(username string, gen questiongen.Generator) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}
	return &Session{
		ID:         uuid.NewString(),
		Username:   username,
		Difficulty: difficulty.Easy,
		usedSet:    make(map[string]bool),
		generator:  gen,
	}, nil
}

// State returns the current machine state.
func (s *Session) State() State {
	return s.state
}

// AwardedPoints returns the point value of the question in play, fixed
// at the difficulty it was requested with. Changing Difficulty
// afterwards affects the next question, never the current payout.
func (s *Session) AwardedPoints() int {
	return s.level.Points()
}

// SetDifficulty selects the level for the next question. It has no
// effect on the question currently in play.
func (s *Session) SetDifficulty(level difficulty.Level) {
	s.Difficulty = level
}

// RequestQuestion asks the provider for a fresh question at the
// session's difficulty. On provider failure the session returns to
// StateNoQuestion and the error is safe to surface and retry.
func (s *Session) RequestQuestion(ctx context.Context) error {
	if s.state != StateNoQuestion {
		return ErrQuestionInPlay
	}

	s.state = StateQuestionPending
	q, err := s.generator.Question(llm.WithSession(ctx, s.ID), s.Difficulty, s.UsedTopics)
	if err != nil {
		s.state = StateNoQuestion
		return fmt.Errorf("generate question: %w", err)
	}

	s.Current = q
	s.level = s.Difficulty
	s.Outcome = OutcomeUnanswered
	s.Solution = nil
	s.SolutionRequested = false
	s.SolutionVisible = false
	if q.Topic != "" && !s.usedSet[q.Topic] {
		s.usedSet[q.Topic] = true
		s.UsedTopics = append(s.UsedTopics, q.Topic)
	}
	s.state = StateAwaitingAnswer
	return nil
}

// SubmitAnswer scores the player's answer against the current
// question. A correct answer adds the point value of the difficulty
// the question was generated at. Blank submissions and repeat
// submissions are rejected without a state change.
func (s *Session) SubmitAnswer(answer string) error {
	switch s.state {
	case StateAwaitingAnswer:
	case StateScored, StateSolutionLoading, StateSolutionShown:
		return ErrAlreadyAnswered
	default:
		return ErrNoActiveQuestion
	}

	if strings.TrimSpace(answer) == "" {
		return ErrEmptyAnswer
	}

	if eval.Equivalent(answer, s.Current.Answer) {
		s.Outcome = OutcomeCorrect
		s.Score += s.level.Points()
	} else {
		s.Outcome = OutcomeIncorrect
	}

	s.Solution = nil
	s.SolutionRequested = false
	s.SolutionVisible = false
	s.state = StateScored
	return nil
}

// RequestSolution fetches the worked solution for the scored question.
// Provider failure never blocks the player: a placeholder carrying the
// reference answer is stored instead. Either way the session ends up
// in StateSolutionShown.
func (s *Session) RequestSolution(ctx context.Context) error {
	if s.state != StateScored {
		if s.state == StateSolutionShown {
			return nil
		}
		return ErrNotScored
	}

	s.SolutionRequested = true
	s.state = StateSolutionLoading

	// The math often lives in the formula, so the generator needs both.
	question := s.Current.Text
	if s.Current.Formula != "" {
		question += " " + s.Current.Formula
	}
	sol, err := s.generator.Solution(llm.WithSession(ctx, s.ID), question, s.Current.Answer)
	if err != nil {
		sol = &questiongen.Solution{
			Detailed: fmt.Sprintf("The solution could not be generated right now. The correct answer is %s.", s.Current.Answer),
		}
	}

	s.Solution = sol
	s.SolutionRequested = false
	s.SolutionVisible = true
	s.state = StateSolutionShown
	return nil
}

// Advance discards the current question and all per-question substate,
// returning to StateNoQuestion. The score is kept.
func (s *Session) Advance() error {
	if s.state != StateScored && s.state != StateSolutionShown {
		return ErrNoActiveQuestion
	}
	s.clearQuestion()
	return nil
}

// Skip abandons an unanswered question without scoring it.
func (s *Session) Skip() error {
	if s.state != StateAwaitingAnswer {
		return ErrNoActiveQuestion
	}
	s.clearQuestion()
	return nil
}

// End folds the score into the leaderboard and clears the session.
// Callable from any state.
func (s *Session) End(lb *Leaderboard) {
	if s.Username != "" && lb != nil {
		lb.Record(s.Username, s.Score)
	}
	s.clearQuestion()
	s.Username = ""
	s.Score = 0
	s.UsedTopics = nil
	s.usedSet = make(map[string]bool)
}

func (s *Session) clearQuestion() {
	s.Current = nil
	s.Outcome = OutcomeUnanswered
	s.Solution = nil
	s.SolutionRequested = false
	s.SolutionVisible = false
	s.state = StateNoQuestion
}
