package home

import (
	"context"
	"encoding/json"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"newsquiz/internal/article"
	"newsquiz/internal/router"
	"newsquiz/internal/screen"
	"newsquiz/internal/screens/history"
	"newsquiz/internal/screens/quiz"
	"newsquiz/internal/session"
	"newsquiz/internal/ui/components"
	"newsquiz/internal/ui/layout"
	"newsquiz/internal/ui/theme"
)

// HomeScreen is the entry screen: menu plus the article URL prompt.
type HomeScreen struct {
	deps quiz.Deps

	menu      components.Menu
	input     components.URLInput
	entering  bool // URL prompt is active
	inputErr  string
	resumable bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps quiz.Deps) *HomeScreen {
	h := &HomeScreen{
		deps:  deps,
		input: components.NewURLInput(),
	}

	// A stored snapshot means there is a session worth resuming.
	if deps.Sessions != nil {
		if data, err := deps.Sessions.LoadSession(context.Background()); err == nil && data != nil {
			h.resumable = true
		}
	}

	items := []components.MenuItem{
		{Label: "NEW QUIZ", Action: func() tea.Cmd {
			h.entering = true
			h.inputErr = ""
			h.input.Reset()
			return h.input.Init()
		}},
		{Label: "RESUME SESSION", Disabled: !h.resumable, Action: func() tea.Cmd {
			return h.resumeCmd()
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Attempts)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.entering {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Fetch article"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.entering {
		return h.updateURLPrompt(msg)
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) updateURLPrompt(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			h.entering = false
			return h, nil
		case "enter":
			raw := strings.TrimSpace(h.input.Value())
			if _, err := article.ParseURL(raw); err != nil {
				h.input.Submit(false)
				h.inputErr = err.Error()
				return h, nil
			}
			h.input.Submit(true)
			h.entering = false
			return h, func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.New(h.deps, raw)}
			}
		}
	}

	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	return h, cmd
}

// resumeCmd restores the stored session and opens the quiz screen on it.
func (h *HomeScreen) resumeCmd() tea.Cmd {
	return func() tea.Msg {
		data, err := h.deps.Sessions.LoadSession(context.Background())
		if err != nil || data == nil {
			return nil
		}

		var snap session.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil
		}

		return router.PushScreenMsg{Screen: quiz.Resume(h.deps, session.Restore(snap))}
	}
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("N E W S Q U I Z")
	subtitle := theme.Subtitle.Width(width).Render("Turn any news article into a quiz")
	sections = append(sections, title, subtitle)

	if h.entering {
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Render("Article URL:")
		box := theme.Card.Width(min(width-8, 80)).Render(prompt + "\n" + h.input.View())
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, box))
		if h.inputErr != "" {
			sections = append(sections, lipgloss.NewStyle().
				Width(width).Align(lipgloss.Center).Foreground(theme.Error).
				Render(h.inputErr))
		}
	} else {
		menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
		sections = append(sections, menu)
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, content)
}
