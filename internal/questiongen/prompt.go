package questiongen

import (
	"fmt"
	"strings"

	"github.com/ekaplan/mathquest/internal/difficulty"
)

const questionSystemPrompt = `You are a math quiz master writing questions for an adult audience with high-school mathematics.

Rules:
- Generate a single self-contained math question at the requested difficulty.
- Put prose in "question_text" and any mathematical expression in "formula" as LaTeX. If the question needs no formula, leave "formula" empty.
- The answer must be a short closed-form string such as "12", "1/2", "pi/4" or "x=3". Never a sentence, never an approximation when an exact form exists.
- Use "pi" (the word) rather than a numeric approximation when pi appears in the answer.
- Pick a fresh mathematical area. Do not reuse any topic from the "already covered" list.
- Difficulty guide: easy is one-step arithmetic or algebra; medium needs two or three steps; hard needs a standard technique applied carefully; harder needs insight or combining techniques.`

const solutionSystemPrompt = `You are a math tutor explaining a quiz question the player has just attempted.

Rules:
- Write "detailed_solution" as a numbered step-by-step derivation ending at the given answer.
- Write "shortcut_solution" only when a genuinely faster route exists (symmetry, substitution, a known identity). Otherwise leave it empty.
- Plain text only, no LaTeX.`

// buildQuestionMessage constructs the user message for question generation.
func buildQuestionMessage(level difficulty.Level, usedTopics []string, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Difficulty: %s\n", level)

	b.WriteString("\nAlready covered in this session:\n")
	b.WriteString(buildTopics(usedTopics, cfg.MaxUsedTopics))

	return b.String()
}

// buildSolutionMessage constructs the user message for solution generation.
func buildSolutionMessage(questionText, answer string) string {
	var b strings.Builder

	b.WriteString("Question:\n")
	b.WriteString(questionText)
	fmt.Fprintf(&b, "\n\nCorrect answer: %s\n", answer)

	return b.String()
}

// buildTopics formats covered topics for the prompt, keeping only the
// most recent max entries.
func buildTopics(topics []string, max int) string {
	if len(topics) == 0 {
		return "None"
	}

	if max > 0 && len(topics) > max {
		topics = topics[len(topics)-max:]
	}

	var b strings.Builder
	for i, topic := range topics {
		fmt.Fprintf(&b, "%d. %s\n", i+1, topic)
	}
	return strings.TrimRight(b.String(), "\n")
}
