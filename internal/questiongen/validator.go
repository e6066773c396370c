package questiongen

import (
	"fmt"
	"strings"
)

// Validator checks a generated question for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error
	// messages and logging), e.g. "structural", "answer-form".
	Name() string

	// Validate checks the question and returns nil if it passes.
	// Returns a ValidationError if the question fails the check.
	Validate(q *Question) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks that all required fields are present.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	if strings.TrimSpace(q.Text) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question text is empty",
			Retryable: true,
		}
	}
	if strings.TrimSpace(q.Answer) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer is empty",
			Retryable: true,
		}
	}
	if strings.TrimSpace(q.Topic) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "topic label is empty",
			Retryable: true,
		}
	}
	return nil
}

// AnswerFormValidator rejects answers too long to be typed back by a
// player. The comparison pipeline expects a short closed-form result,
// not a worked explanation.
type AnswerFormValidator struct {
	// MaxLen is the maximum accepted answer length. Zero means the
	// default of 64.
	MaxLen int
}

func (v *AnswerFormValidator) Name() string { return "answer-form" }

func (v *AnswerFormValidator) Validate(q *Question) *ValidationError {
	maxLen := v.MaxLen
	if maxLen == 0 {
		maxLen = 64
	}
	if len(q.Answer) > maxLen {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer is %d chars, max %d", len(q.Answer), maxLen),
			Retryable: true,
		}
	}
	if strings.Contains(q.Answer, "\n") {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer spans multiple lines",
			Retryable: true,
		}
	}
	return nil
}
