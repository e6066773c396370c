package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/ekaplan/mathquest/internal/difficulty"
	"github.com/ekaplan/mathquest/internal/questiongen"
)

// stubGenerator serves canned questions and solutions, with optional
// error injection.
type stubGenerator struct {
	questions   []*questiongen.Question
	questionErr error
	solution    *questiongen.Solution
	solutionErr error

	questionCalls int
	lastLevel     difficulty.Level
	lastTopics    []string
	lastQuestion  string
	lastAnswer    string
}

func (g *stubGenerator) Question(_ context.Context, level difficulty.Level, usedTopics []string) (*questiongen.Question, error) {
	g.questionCalls++
	g.lastLevel = level
	g.lastTopics = append([]string(nil), usedTopics...)
	if g.questionErr != nil {
		return nil, g.questionErr
	}
	q := g.questions[0]
	if len(g.questions) > 1 {
		g.questions = g.questions[1:]
	}
	return q, nil
}

func (g *stubGenerator) Solution(_ context.Context, question, answer string) (*questiongen.Solution, error) {
	g.lastQuestion = question
	g.lastAnswer = answer
	if g.solutionErr != nil {
		return nil, g.solutionErr
	}
	return g.solution, nil
}

func newTestSession(t *testing.T, gen questiongen.Generator) *Session {
	t.Helper()
	s, err := NewSession("Ada", gen)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func stubQuestion() *questiongen.Question {
	return &questiongen.Question{
		Text:   "What is 15 * 2?",
		Answer: "30",
		Topic:  "arithmetic",
	}
}

func TestNewSession_EmptyUsername(t *testing.T) {
	for _, name := range []string{"", "   ", "\t"} {
		if _, err := NewSession(name, &stubGenerator{}); !errors.Is(err, ErrEmptyUsername) {
			t.Errorf("NewSession(%q) error = %v, want ErrEmptyUsername", name, err)
		}
	}
}

func TestSession_FullRun(t *testing.T) {
	gen := &stubGenerator{
		questions: []*questiongen.Question{stubQuestion()},
		solution:  &questiongen.Solution{Detailed: "15 * 2 = 30.", Shortcut: "Double 15."},
	}
	s := newTestSession(t, gen)
	s.SetDifficulty(difficulty.Medium)

	if err := s.RequestQuestion(context.Background()); err != nil {
		t.Fatalf("RequestQuestion: %v", err)
	}
	if s.State() != StateAwaitingAnswer {
		t.Fatalf("state = %v, want StateAwaitingAnswer", s.State())
	}
	if gen.lastLevel != difficulty.Medium {
		t.Errorf("generator got level %q, want medium", gen.lastLevel)
	}

	if err := s.SubmitAnswer("30"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if s.Outcome != OutcomeCorrect {
		t.Error("expected correct outcome")
	}
	if s.Score != 30 {
		t.Fatalf("score = %d, want 30", s.Score)
	}

	if err := s.RequestSolution(context.Background()); err != nil {
		t.Fatalf("RequestSolution: %v", err)
	}
	if s.Solution == nil || s.Solution.Detailed == "" {
		t.Fatal("expected a solution")
	}
	if !s.SolutionVisible {
		t.Error("expected solution to be visible")
	}

	if err := s.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if s.Current != nil {
		t.Error("expected question cleared after advance")
	}
	if s.Score != 30 {
		t.Errorf("score changed on advance: %d", s.Score)
	}

	lb := NewLeaderboard()
	s.End(lb)
	if best, _ := lb.Best("Ada"); best != 30 {
		t.Errorf("leaderboard best = %d, want 30", best)
	}
	if s.Username != "" || s.Score != 0 {
		t.Error("expected session cleared after end")
	}
}

func TestSubmitAnswer_EmptyRejected(t *testing.T) {
	gen := &stubGenerator{questions: []*questiongen.Question{stubQuestion()}}
	s := newTestSession(t, gen)
	if err := s.RequestQuestion(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := s.SubmitAnswer("   "); !errors.Is(err, ErrEmptyAnswer) {
		t.Fatalf("expected ErrEmptyAnswer, got %v", err)
	}
	if s.State() != StateAwaitingAnswer {
		t.Error("state advanced on rejected submission")
	}
	if s.Outcome != OutcomeUnanswered {
		t.Error("outcome changed on rejected submission")
	}
}

func TestSubmitAnswer_DoubleSubmissionBlocked(t *testing.T) {
	gen := &stubGenerator{questions: []*questiongen.Question{stubQuestion()}}
	s := newTestSession(t, gen)
	s.SetDifficulty(difficulty.Hard)
	if err := s.RequestQuestion(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := s.SubmitAnswer("30"); err != nil {
		t.Fatal(err)
	}
	score := s.Score

	if err := s.SubmitAnswer("30"); !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("expected ErrAlreadyAnswered, got %v", err)
	}
	if s.Score != score {
		t.Errorf("score changed on blocked resubmission: %d -> %d", score, s.Score)
	}
}

func TestSubmitAnswer_IncorrectScoresNothing(t *testing.T) {
	gen := &stubGenerator{questions: []*questiongen.Question{stubQuestion()}}
	s := newTestSession(t, gen)
	s.SetDifficulty(difficulty.Harder)
	if err := s.RequestQuestion(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := s.SubmitAnswer("31"); err != nil {
		t.Fatal(err)
	}
	if s.Outcome != OutcomeIncorrect {
		t.Error("expected incorrect outcome")
	}
	if s.Score != 0 {
		t.Errorf("score = %d, want 0", s.Score)
	}
}

func TestSubmitAnswer_NoQuestion(t *testing.T) {
	s := newTestSession(t, &stubGenerator{})
	if err := s.SubmitAnswer("42"); !errors.Is(err, ErrNoActiveQuestion) {
		t.Fatalf("expected ErrNoActiveQuestion, got %v", err)
	}
}

func TestRequestQuestion_DifficultyCapturedAtRequest(t *testing.T) {
	gen := &stubGenerator{questions: []*questiongen.Question{stubQuestion()}}
	s := newTestSession(t, gen)
	s.SetDifficulty(difficulty.Easy)
	if err := s.RequestQuestion(context.Background()); err != nil {
		t.Fatal(err)
	}

	// Changing difficulty mid-question must not change what the
	// current question pays out.
	s.SetDifficulty(difficulty.Harder)
	if got := s.AwardedPoints(); got != 10 {
		t.Errorf("AwardedPoints = %d, want 10 (easy points)", got)
	}
	if err := s.SubmitAnswer("30"); err != nil {
		t.Fatal(err)
	}
	if s.Score != 10 {
		t.Errorf("score = %d, want 10 (easy points)", s.Score)
	}
}

func TestRequestQuestion_FailureRecoverable(t *testing.T) {
	gen := &stubGenerator{questionErr: errors.New("rate limited")}
	s := newTestSession(t, gen)

	if err := s.RequestQuestion(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if s.State() != StateNoQuestion {
		t.Fatalf("state = %v, want StateNoQuestion after failure", s.State())
	}

	// Retry succeeds once the provider recovers.
	gen.questionErr = nil
	gen.questions = []*questiongen.Question{stubQuestion()}
	if err := s.RequestQuestion(context.Background()); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if s.State() != StateAwaitingAnswer {
		t.Error("expected question in play after retry")
	}
}

func TestRequestQuestion_WhileInPlay(t *testing.T) {
	gen := &stubGenerator{questions: []*questiongen.Question{stubQuestion()}}
	s := newTestSession(t, gen)
	if err := s.RequestQuestion(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := s.RequestQuestion(context.Background()); !errors.Is(err, ErrQuestionInPlay) {
		t.Fatalf("expected ErrQuestionInPlay, got %v", err)
	}
}

func TestRequestQuestion_TopicsAccumulateWithoutDuplicates(t *testing.T) {
	gen := &stubGenerator{
		questions: []*questiongen.Question{
			{Text: "q1", Answer: "1", Topic: "limits"},
			{Text: "q2", Answer: "2", Topic: "limits"},
			{Text: "q3", Answer: "3", Topic: "series"},
		},
	}
	s := newTestSession(t, gen)

	for _, answer := range []string{"1", "2", "3"} {
		if err := s.RequestQuestion(context.Background()); err != nil {
			t.Fatal(err)
		}
		if err := s.SubmitAnswer(answer); err != nil {
			t.Fatal(err)
		}
		if err := s.Advance(); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{"limits", "series"}
	if len(s.UsedTopics) != len(want) {
		t.Fatalf("UsedTopics = %v, want %v", s.UsedTopics, want)
	}
	for i, topic := range want {
		if s.UsedTopics[i] != topic {
			t.Errorf("UsedTopics[%d] = %q, want %q", i, s.UsedTopics[i], topic)
		}
	}

	// The third request saw the first topic.
	if len(gen.lastTopics) != 1 || gen.lastTopics[0] != "limits" {
		t.Errorf("generator saw topics %v, want [limits]", gen.lastTopics)
	}
}

func TestRequestSolution_FailureStoresPlaceholder(t *testing.T) {
	gen := &stubGenerator{
		questions:   []*questiongen.Question{stubQuestion()},
		solutionErr: errors.New("provider down"),
	}
	s := newTestSession(t, gen)
	if err := s.RequestQuestion(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := s.SubmitAnswer("30"); err != nil {
		t.Fatal(err)
	}

	if err := s.RequestSolution(context.Background()); err != nil {
		t.Fatalf("RequestSolution should not fail: %v", err)
	}
	if s.State() != StateSolutionShown {
		t.Fatalf("state = %v, want StateSolutionShown", s.State())
	}
	if s.Solution == nil || s.Solution.Detailed == "" {
		t.Fatal("expected placeholder solution")
	}
}

func TestRequestSolution_IncludesFormula(t *testing.T) {
	gen := &stubGenerator{
		questions: []*questiongen.Question{{
			Text:    "Solve the equation below.",
			Formula: `x^2 - 5x + 6 = 0`,
			Answer:  "x=2, x=3",
			Topic:   "quadratics",
		}},
		solution: &questiongen.Solution{Detailed: "Factor into (x-2)(x-3)."},
	}
	s := newTestSession(t, gen)
	if err := s.RequestQuestion(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := s.SubmitAnswer("x=2, x=3"); err != nil {
		t.Fatal(err)
	}

	if err := s.RequestSolution(context.Background()); err != nil {
		t.Fatal(err)
	}
	want := "Solve the equation below. x^2 - 5x + 6 = 0"
	if gen.lastQuestion != want {
		t.Errorf("generator got question %q, want %q", gen.lastQuestion, want)
	}
	if gen.lastAnswer != "x=2, x=3" {
		t.Errorf("generator got answer %q", gen.lastAnswer)
	}
}

func TestRequestSolution_NoFormulaPassesTextOnly(t *testing.T) {
	gen := &stubGenerator{
		questions: []*questiongen.Question{stubQuestion()},
		solution:  &questiongen.Solution{Detailed: "d"},
	}
	s := newTestSession(t, gen)
	if err := s.RequestQuestion(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := s.SubmitAnswer("30"); err != nil {
		t.Fatal(err)
	}
	if err := s.RequestSolution(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gen.lastQuestion != "What is 15 * 2?" {
		t.Errorf("generator got question %q, want the bare text", gen.lastQuestion)
	}
}

func TestRequestSolution_BeforeScoring(t *testing.T) {
	gen := &stubGenerator{questions: []*questiongen.Question{stubQuestion()}}
	s := newTestSession(t, gen)
	if err := s.RequestQuestion(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := s.RequestSolution(context.Background()); !errors.Is(err, ErrNotScored) {
		t.Fatalf("expected ErrNotScored, got %v", err)
	}
}

func TestAdvance_ClearsPerQuestionState(t *testing.T) {
	gen := &stubGenerator{
		questions: []*questiongen.Question{stubQuestion()},
		solution:  &questiongen.Solution{Detailed: "d"},
	}
	s := newTestSession(t, gen)
	if err := s.RequestQuestion(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := s.SubmitAnswer("30"); err != nil {
		t.Fatal(err)
	}
	if err := s.RequestSolution(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := s.Advance(); err != nil {
		t.Fatal(err)
	}
	if s.Current != nil || s.Solution != nil {
		t.Error("question substate not cleared")
	}
	if s.Outcome != OutcomeUnanswered {
		t.Error("outcome not reset")
	}
	if s.SolutionVisible || s.SolutionRequested {
		t.Error("solution flags not reset")
	}
}

func TestSkip_AbandonsUnansweredQuestion(t *testing.T) {
	gen := &stubGenerator{questions: []*questiongen.Question{stubQuestion()}}
	s := newTestSession(t, gen)
	if err := s.RequestQuestion(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := s.Skip(); err != nil {
		t.Fatal(err)
	}
	if s.State() != StateNoQuestion || s.Score != 0 {
		t.Error("skip should clear the question without scoring")
	}
}

func TestEnd_KeepsLeaderboardMax(t *testing.T) {
	lb := NewLeaderboard()
	gen := &stubGenerator{questions: []*questiongen.Question{stubQuestion()}}

	// First run scores 60.
	s := newTestSession(t, gen)
	s.SetDifficulty(difficulty.Hard)
	if err := s.RequestQuestion(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := s.SubmitAnswer("30"); err != nil {
		t.Fatal(err)
	}
	s.End(lb)

	// Second run scores 10; the recorded best must not drop.
	gen.questions = []*questiongen.Question{stubQuestion()}
	s2 := newTestSession(t, gen)
	s2.SetDifficulty(difficulty.Easy)
	if err := s2.RequestQuestion(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := s2.SubmitAnswer("30"); err != nil {
		t.Fatal(err)
	}
	s2.End(lb)

	if best, _ := lb.Best("Ada"); best != 60 {
		t.Errorf("leaderboard best = %d, want 60", best)
	}
}
