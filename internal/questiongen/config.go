package questiongen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// SolutionMaxTokens is the token budget for solution responses,
	// which run longer than questions.
	SolutionMaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxUsedTopics is the maximum number of covered topics to include
	// in the prompt when steering away from repeats.
	MaxUsedTopics int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&AnswerFormValidator{},
		},
		MaxTokens:         512,
		SolutionMaxTokens: 1024,
		Temperature:       0.7,
		MaxUsedTopics:     12,
	}
}
