package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"newsquiz/internal/session"
	"newsquiz/internal/ui/components"
	"newsquiz/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *QuizScreen) View(width, height int) string {
	switch {
	case s.fetching:
		return s.renderSpinner(width, height, "Fetching article...")
	case s.generating:
		return s.renderSpinner(width, height, "Writing your quiz...")
	}

	switch s.state.Phase() {
	case session.PhaseIdle:
		return s.renderError(width, height)
	case session.PhasePreviewing:
		return s.renderPreview(width, height)
	case session.PhaseQuizReady:
		return s.renderQuestion(width, height)
	case session.PhaseReviewing:
		return s.renderReview(width, height)
	}
	return ""
}

func (s *QuizScreen) renderSpinner(width, height int, label string) string {
	frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s  %s", frame, label))
}

func (s *QuizScreen) renderError(width, height int) string {
	msg := "Something went wrong."
	if s.state.Err != nil {
		msg = s.state.Err.Error()
	}
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Error).
		Render("Could not load the article.\n\n" + msg + "\n\nPress R to retry or Esc to go back.")
}

func (s *QuizScreen) renderPreview(width, height int) string {
	var b strings.Builder

	title := s.state.ArticleTitle
	if title == "" {
		title = s.state.ArticleURL
	}
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.state.ArticleURL))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if s.state.Err != nil {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Error).
			Render("Quiz generation failed: "+s.state.Err.Error()))
		b.WriteString("\n")
		b.WriteString("  " + theme.Hint.Render("Press Enter to try again."))
		b.WriteString("\n\n")
	}

	body := s.preview
	if body == "" {
		body = s.state.ArticleText
	}
	bodyStyle := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(max(width-8, 20)).
		PaddingLeft(4)

	used := lipgloss.Height(b.String())
	avail := height - used - 2
	rendered := bodyStyle.Render(body)
	lines := strings.Split(rendered, "\n")
	if avail > 0 && len(lines) > avail {
		lines = lines[:avail]
		lines = append(lines, theme.Hint.PaddingLeft(4).Render("…"))
	}
	b.WriteString(strings.Join(lines, "\n"))

	return b.String()
}

func (s *QuizScreen) renderQuestion(width, height int) string {
	if len(s.state.Quiz) == 0 {
		return ""
	}

	card := components.NewQuestionCard(s.current+1, len(s.state.Quiz), s.state.Quiz[s.current])
	card.Focused = true
	card.Cursor = s.optCursor
	card.Selected = s.state.Answers[s.current]

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(card.View()))
	b.WriteString("\n")

	answered := session.Answered(s.state)
	bar := components.NewProgressBar(
		fmt.Sprintf("  Answered %d/%d", answered, len(s.state.Quiz)),
		float64(answered)/float64(len(s.state.Quiz)),
		false,
		max(width-20, 20),
	)
	b.WriteString("\n" + bar.View() + "\n")

	if answered == len(s.state.Quiz) {
		b.WriteString("\n  " + theme.Hint.Render("All answered. Press S to submit."))
	}
	if len(s.dropped) > 0 {
		b.WriteString("\n  " + theme.Hint.Render(
			fmt.Sprintf("%d malformed question(s) were discarded.", len(s.dropped))))
	}

	return b.String()
}

func (s *QuizScreen) renderReview(width, height int) string {
	score := session.Score(s.state)
	total := len(s.state.Quiz)

	headline := fmt.Sprintf("You scored %d out of %d", score, total)
	style := theme.Correct
	if score < (total+1)/2 {
		style = theme.Incorrect
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(style.Render(headline)))
	b.WriteString("\n\n")

	if total > 0 {
		card := components.NewQuestionCard(s.current+1, total, s.state.Quiz[s.current])
		card.Reviewed = true
		card.Selected = s.state.Answers[s.current]
		b.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(card.View()))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	return b.String()
}
