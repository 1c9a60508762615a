package history

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"newsquiz/internal/quizgen"
	"newsquiz/internal/router"
	"newsquiz/internal/screen"
	"newsquiz/internal/store"
	"newsquiz/internal/ui/layout"
	"newsquiz/internal/ui/theme"
)

type historyLoadedMsg struct {
	Attempts []*store.Attempt
	Err      error
}

// HistoryScreen lists past quiz attempts with expandable details.
type HistoryScreen struct {
	attemptRepo store.AttemptRepo
	attempts    []*store.Attempt
	selected    int
	expanded    map[int]bool
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(attemptRepo store.AttemptRepo) *HistoryScreen {
	return &HistoryScreen{
		attemptRepo: attemptRepo,
		expanded:    make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		attempts, err := s.attemptRepo.List(context.Background(), 50)
		return historyLoadedMsg{Attempts: attempts, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes yet. Paste an article URL to get started!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.attempts {
		dateStr := a.CreatedAt.Local().Format("Jan 02, 2006 15:04")

		var pct float64
		if a.Total > 0 {
			pct = float64(a.Score) / float64(a.Total) * 100
		}

		title := a.Title
		if title == "" {
			title = a.URL
		}
		title = truncateRunes(title, 48)

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-50s  %d/%d (%.0f%%)",
			prefix, dateStr, title, a.Score, a.Total, pct)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString("  " + style.Render(line))
		b.WriteString("\n")

		if s.expanded[i] {
			s.renderDetails(&b, a)
		}
	}

	return b.String()
}

// truncateRunes shortens s to at most n runes, appending an ellipsis
// when anything was cut. Truncating on runes keeps multibyte titles
// and questions intact.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

// renderDetails expands one attempt into per-question result lines.
func (s *HistoryScreen) renderDetails(b *strings.Builder, a *store.Attempt) {
	var quiz quizgen.QuizSet
	var answers map[int]quizgen.OptionKey
	if err := json.Unmarshal([]byte(a.QuizJSON), &quiz); err != nil {
		b.WriteString("      " + theme.Hint.Render("(details unavailable)") + "\n")
		return
	}
	_ = json.Unmarshal([]byte(a.AnswersJSON), &answers)

	b.WriteString("      " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(a.URL) + "\n")

	for i, item := range quiz {
		chosen, ok := answers[i]
		var mark string
		switch {
		case !ok:
			mark = lipgloss.NewStyle().Foreground(theme.TextDim).Render("–")
		case chosen == item.CorrectAnswer:
			mark = theme.Correct.Render("✓")
		default:
			mark = theme.Incorrect.Render("✗")
		}

		q := truncateRunes(item.Question, 60)
		b.WriteString(fmt.Sprintf("      %s %s\n", mark, q))
	}
}
