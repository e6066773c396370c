package arena

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ekaplan/mathquest/internal/difficulty"
	"github.com/ekaplan/mathquest/internal/quiz"
	"github.com/ekaplan/mathquest/internal/ui/theme"
)

func (a *ArenaScreen) View(width, height int) string {
	if a.confirmQuit {
		return renderQuitConfirm(width)
	}
	if a.busy {
		return a.renderBusy(width)
	}

	switch a.session.State() {
	case quiz.StateNoQuestion:
		return a.renderDifficultyPicker(width)
	case quiz.StateAwaitingAnswer:
		return a.renderQuestion(width, false)
	case quiz.StateScored:
		return a.renderQuestion(width, true)
	case quiz.StateSolutionShown:
		return a.renderSolution(width)
	}
	return ""
}

func levelLabel(level difficulty.Level) string {
	return fmt.Sprintf("%-8s %3d pts", level.Label(), level.Points())
}

func (a *ArenaScreen) renderDifficultyPicker(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Pick a difficulty"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, a.menu.View()))

	if a.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(a.errMsg))
	}

	if len(a.session.UsedTopics) > 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Covered so far: " + strings.Join(a.session.UsedTopics, ", ")))
	}

	return b.String()
}

// renderQuestion shows the question card with either the answer input
// (scored=false) or the outcome feedback (scored=true) below it.
func (a *ArenaScreen) renderQuestion(width int, scored bool) string {
	q := a.session.Current
	if q == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	topicLine := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Topic: %s", q.Topic)) +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("   (%s)", a.session.Difficulty.Label()))
	b.WriteString(topicLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n")

	if q.Formula != "" {
		b.WriteString("\n")
		formula := theme.Formula.Render(q.Formula)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(formula)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if scored {
		b.WriteString(a.renderFeedback(width))
	} else {
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + a.input.View())
		b.WriteString(answerLine)
		if a.errMsg != "" {
			b.WriteString("\n\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Error).
				Render(a.errMsg))
		}
	}

	return b.String()
}

func (a *ArenaScreen) renderFeedback(width int) string {
	var b strings.Builder

	if a.session.Outcome == quiz.OutcomeCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("Correct! +%d pts", a.session.AwardedPoints())))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", a.session.Current.Answer)))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("[S] Show solution   [N] Next question"))

	return b.String()
}

func (a *ArenaScreen) renderSolution(width int) string {
	sol := a.session.Solution
	if sol == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Solution"))
	b.WriteString("\n\n")

	bodyWidth := min(width-8, 72)
	detailStyle := lipgloss.NewStyle().
		Width(bodyWidth).
		Foreground(theme.Text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, detailStyle.Render(sol.Detailed)))

	if sol.Shortcut != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("Shortcut"))
		b.WriteString("\n")
		shortcutStyle := lipgloss.NewStyle().
			Width(bodyWidth).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, shortcutStyle.Render(sol.Shortcut)))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("[N] Next question"))

	return b.String()
}

func (a *ArenaScreen) renderBusy(width int) string {
	frame := spinnerFrames[a.spinnerTick%len(spinnerFrames)]
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n\n%s %s", frame, a.busyLabel))
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End this session?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your best score goes on the leaderboard."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}
