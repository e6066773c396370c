package questiongen

import "github.com/ekaplan/mathquest/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation
// responses.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single math quiz question with a short reference answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the player, in plain prose without LaTeX",
			},
			"formula": map[string]any{
				"type":        "string",
				"description": "An optional LaTeX expression accompanying the question. Empty string when no formula is needed.",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct answer as a short closed-form string, e.g. '12', '1/2', 'pi/4', 'x=3'. Never a sentence.",
			},
			"topic": map[string]any{
				"type":        "string",
				"description": "A short lowercase label for the mathematical area, e.g. 'derivatives', 'trigonometry'",
			},
		},
		"required":             []any{"question_text", "formula", "answer", "topic"},
		"additionalProperties": false,
	},
}

// SolutionSchema defines the JSON schema for LLM solution responses.
var SolutionSchema = &llm.Schema{
	Name:        "quiz-solution",
	Description: "A worked solution for a quiz question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"detailed_solution": map[string]any{
				"type":        "string",
				"description": "The full step-by-step solution, numbered steps, plain text",
			},
			"shortcut_solution": map[string]any{
				"type":        "string",
				"description": "A faster route to the answer when one exists. Empty string otherwise.",
			},
		},
		"required":             []any{"detailed_solution", "shortcut_solution"},
		"additionalProperties": false,
	},
}
