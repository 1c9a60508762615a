package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"newsquiz/internal/quizgen"
	"newsquiz/internal/ui/theme"
)

// QuestionCard renders a single quiz question with its A-D options.
// Selection and review state live in the session, so the card is a
// pure view over them.
type QuestionCard struct {
	Number   int // 1-based position in the quiz
	Total    int
	Item     quizgen.Item
	Selected quizgen.OptionKey // "" when unanswered
	Focused  bool              // highlight cursor on this card
	Cursor   int               // focused option index, 0..3
	Reviewed bool              // show correct/incorrect colors
}

// NewQuestionCard creates a card for one quiz item.
func NewQuestionCard(number, total int, item quizgen.Item) QuestionCard {
	return QuestionCard{
		Number: number,
		Total:  total,
		Item:   item,
	}
}

// Update moves the option cursor. Choosing an option is reported
// through SelectedKey; the caller dispatches it to the session.
func (c QuestionCard) Update(msg tea.Msg) (QuestionCard, tea.Cmd) {
	if !c.Focused || c.Reviewed {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(quizgen.OptionKeys)-1 {
			c.Cursor++
		}
	}

	return c, nil
}

// CursorKey returns the option key under the cursor.
func (c QuestionCard) CursorKey() quizgen.OptionKey {
	return quizgen.OptionKeys[c.Cursor]
}

// View renders the question and its options.
func (c QuestionCard) View() string {
	header := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", c.Number, c.Total))
	question := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(c.Item.Question)

	s := header + "\n" + question + "\n\n"

	for i, key := range quizgen.OptionKeys {
		text := c.Item.Options[key]
		prefix := "  "
		if c.Focused && !c.Reviewed && i == c.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, key, text)

		var style lipgloss.Style
		switch {
		case c.Reviewed && key == c.Item.CorrectAnswer:
			style = theme.Correct
		case c.Reviewed && key == c.Selected:
			// Wrong pick; the correct row above is already green.
			style = theme.Incorrect
		case c.Reviewed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case key == c.Selected:
			style = theme.Selected
		case c.Focused && i == c.Cursor:
			style = lipgloss.NewStyle().Foreground(theme.Primary)
		default:
			style = theme.Unselected
		}
		s += style.Render(line) + "\n"
	}

	if c.Reviewed {
		if c.Selected == "" {
			s += "\n" + theme.Hint.Render("Not answered")
		} else if c.Selected == c.Item.CorrectAnswer {
			s += "\n" + theme.Correct.Render("Correct!")
		} else {
			s += "\n" + theme.Incorrect.Render(
				fmt.Sprintf("Incorrect. The answer was %s.", c.Item.CorrectAnswer))
		}
	}

	return s
}
