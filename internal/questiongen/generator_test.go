package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ekaplan/mathquest/internal/difficulty"
	"github.com/ekaplan/mathquest/internal/llm"
)

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"question_text": "What is the value of the expression below?",
		"formula": "\\int_0^1 2x\\,dx",
		"answer": "1",
		"topic": "integrals"
	}`)
}

func validSolutionJSON() json.RawMessage {
	return json.RawMessage(`{
		"detailed_solution": "1. The antiderivative of 2x is x^2.\n2. Evaluate from 0 to 1: 1 - 0 = 1.",
		"shortcut_solution": "The integrand is the derivative of x^2, so the integral is x^2 evaluated at the bounds."
	}`)
}

func TestQuestion_Valid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validQuestionJSON(),
	})
	gen := New(mock, DefaultConfig())

	q, err := gen.Question(context.Background(), difficulty.Medium, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text != "What is the value of the expression below?" {
		t.Errorf("unexpected text: %q", q.Text)
	}
	if q.Formula == "" {
		t.Error("expected formula to be set")
	}
	if q.Answer != "1" {
		t.Errorf("expected answer 1, got %q", q.Answer)
	}
	if q.Topic != "integrals" {
		t.Errorf("expected topic integrals, got %q", q.Topic)
	}
}

func TestQuestion_UsedTopicsInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	used := []string{"derivatives", "trigonometry", "limits"}
	_, err := gen.Question(context.Background(), difficulty.Hard, used)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	userMsg := mock.Calls[0].Messages[0].Content
	for _, topic := range used {
		if !strings.Contains(userMsg, topic) {
			t.Errorf("expected user message to contain %q", topic)
		}
	}
	if !strings.Contains(userMsg, "hard") {
		t.Error("expected user message to name the difficulty")
	}
}

func TestQuestion_EmptyAnswerRejected(t *testing.T) {
	raw := json.RawMessage(`{
		"question_text": "What is 2+2?",
		"formula": "",
		"answer": "",
		"topic": "arithmetic"
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Question(context.Background(), difficulty.Easy, nil)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "structural" {
		t.Errorf("expected structural validator, got %q", valErr.Validator)
	}
}

func TestQuestion_LongAnswerRejected(t *testing.T) {
	raw := json.RawMessage(`{
		"question_text": "What is 2+2?",
		"formula": "",
		"answer": "the answer is four because adding two and two gives four, which follows from counting",
		"topic": "arithmetic"
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Question(context.Background(), difficulty.Easy, nil)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "answer-form" {
		t.Errorf("expected answer-form validator, got %q", valErr.Validator)
	}
}

func TestQuestion_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: errors.New("API error"),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Question(context.Background(), difficulty.Easy, nil)
	if err == nil {
		t.Fatal("expected error from provider")
	}
	if !strings.Contains(err.Error(), "LLM generation failed") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestQuestion_ConfigOverrides(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	cfg := DefaultConfig()
	cfg.MaxTokens = 256
	cfg.Temperature = 0.5
	gen := New(mock, cfg)

	_, err := gen.Question(context.Background(), difficulty.Easy, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.Calls[0].MaxTokens != 256 {
		t.Errorf("expected MaxTokens 256, got %d", mock.Calls[0].MaxTokens)
	}
	if mock.Calls[0].Temperature != 0.5 {
		t.Errorf("expected Temperature 0.5, got %f", mock.Calls[0].Temperature)
	}
}

func TestSolution_Valid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSolutionJSON()})
	gen := New(mock, DefaultConfig())

	sol, err := gen.Solution(context.Background(), "What is the integral of 2x from 0 to 1?", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sol.Detailed, "antiderivative") {
		t.Errorf("unexpected detailed solution: %q", sol.Detailed)
	}
	if sol.Shortcut == "" {
		t.Error("expected shortcut to be set")
	}
}

func TestSolution_PromptIncludesQuestionAndAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSolutionJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Solution(context.Background(), "What is 7*8?", "56")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, "What is 7*8?") {
		t.Error("expected user message to contain the question")
	}
	if !strings.Contains(userMsg, "56") {
		t.Error("expected user message to contain the reference answer")
	}
}

func TestSolution_UsesLargerTokenBudget(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSolutionJSON()})
	cfg := DefaultConfig()
	gen := New(mock, cfg)

	_, err := gen.Solution(context.Background(), "q", "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.Calls[0].MaxTokens != cfg.SolutionMaxTokens {
		t.Errorf("expected MaxTokens %d, got %d", cfg.SolutionMaxTokens, mock.Calls[0].MaxTokens)
	}
}
