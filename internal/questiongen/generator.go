package questiongen

import (
	"context"

	"github.com/ekaplan/mathquest/internal/difficulty"
)

// Generator produces quiz questions and solutions using an LLM provider.
type Generator interface {
	// Question produces a single question at the given difficulty level.
	// usedTopics lists topic labels already covered in this session; the
	// generator steers away from them. Returns a validated Question or
	// an error. All configured validators run before returning.
	Question(ctx context.Context, level difficulty.Level, usedTopics []string) (*Question, error)

	// Solution produces a worked solution for a previously generated
	// question, given its text and reference answer.
	Solution(ctx context.Context, questionText, answer string) (*Solution, error)
}
