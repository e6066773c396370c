package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ekaplan/mathquest/internal/difficulty"
	"github.com/ekaplan/mathquest/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	QuestionText string `json:"question_text"`
	Formula      string `json:"formula"`
	Answer       string `json:"answer"`
	Topic        string `json:"topic"`
}

// solutionOutput is the raw LLM solution response.
type solutionOutput struct {
	DetailedSolution string `json:"detailed_solution"`
	ShortcutSolution string `json:"shortcut_solution"`
}

// Question produces a single question at the given difficulty level.
func (g *LLMGenerator) Question(ctx context.Context, level difficulty.Level, usedTopics []string) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	userMsg := buildQuestionMessage(level, usedTopics, g.config)

	req := llm.Request{
		System: questionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	q := &Question{
		Text:    raw.QuestionText,
		Formula: raw.Formula,
		Answer:  raw.Answer,
		Topic:   raw.Topic,
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(q); verr != nil {
			return nil, verr
		}
	}

	return q, nil
}

// Solution produces a worked solution for a previously generated question.
func (g *LLMGenerator) Solution(ctx context.Context, questionText, answer string) (*Solution, error) {
	ctx = llm.WithPurpose(ctx, "solution-gen")

	req := llm.Request{
		System: solutionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSolutionMessage(questionText, answer)},
		},
		Schema:      SolutionSchema,
		MaxTokens:   g.config.SolutionMaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw solutionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	return &Solution{
		Detailed: raw.DetailedSolution,
		Shortcut: raw.ShortcutSolution,
	}, nil
}
