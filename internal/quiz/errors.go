package quiz

// ValidationError reports a user action rejected without any state
// change. The session stays exactly where it was.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

var (
	// ErrEmptyUsername is returned when a session is started without a name.
	ErrEmptyUsername = &ValidationError{Reason: "username must not be empty"}

	// ErrEmptyAnswer is returned when a blank answer is submitted.
	ErrEmptyAnswer = &ValidationError{Reason: "answer must not be empty"}

	// ErrAlreadyAnswered is returned on a second submission for the same question.
	ErrAlreadyAnswered = &ValidationError{Reason: "this question has already been answered"}

	// ErrNoActiveQuestion is returned when an action needs a question in play.
	ErrNoActiveQuestion = &ValidationError{Reason: "no question is active"}

	// ErrQuestionInPlay is returned when a new question is requested
	// while one is still unanswered.
	ErrQuestionInPlay = &ValidationError{Reason: "answer or skip the current question first"}

	// ErrNotScored is returned when a solution is requested before an
	// answer has been submitted.
	ErrNotScored = &ValidationError{Reason: "submit an answer before revealing the solution"}
)
