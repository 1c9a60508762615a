package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"newsquiz/internal/ui/theme"
)

// URLInput wraps bubbles/textinput for entering an article URL.
type URLInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

// NewURLInput creates a new styled URL input.
func NewURLInput() URLInput {
	ti := textinput.New()
	ti.Placeholder = "https://example.com/news/article"
	ti.CharLimit = 2048
	ti.Focus()

	return URLInput{Model: ti}
}

// Init returns the initial command.
func (u URLInput) Init() tea.Cmd {
	return u.Model.Focus()
}

// Update handles messages.
func (u URLInput) Update(msg tea.Msg) (URLInput, tea.Cmd) {
	var cmd tea.Cmd
	u.Model, cmd = u.Model.Update(msg)
	return u, cmd
}

// View renders the input with a validation mark after submission.
func (u URLInput) View() string {
	view := u.Model.View()
	if u.submitted {
		if u.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (u URLInput) Value() string {
	return u.Model.Value()
}

// Submit marks the input as submitted with a validation result.
func (u *URLInput) Submit(valid bool) {
	u.submitted = true
	u.valid = valid
}

// Reset clears the input and validation state.
func (u *URLInput) Reset() {
	u.Model.SetValue("")
	u.submitted = false
	u.valid = false
}
