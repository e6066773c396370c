package questiongen

// Question represents a generated quiz question ready for display.
type Question struct {
	// Text is the question prompt displayed to the player.
	// Plain prose, e.g. "What is the derivative of the function below at x = 2?"
	Text string

	// Formula is an optional LaTeX expression accompanying the text.
	// Empty when the question needs no formula.
	Formula string

	// Answer is the canonical correct answer as a short string.
	// e.g. "12", "1/2", "pi/4", "x=3"
	Answer string

	// Topic is a short label for the mathematical area of the question,
	// e.g. "derivatives" or "trigonometry". Used to steer later
	// questions away from areas already covered in the session.
	Topic string
}

// Solution is the worked solution for a question, produced on demand
// after the player has answered.
type Solution struct {
	// Detailed is the full step-by-step solution.
	Detailed string

	// Shortcut is a faster route to the answer when one exists.
	// Empty when no meaningful shortcut applies.
	Shortcut string
}
