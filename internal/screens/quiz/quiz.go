package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"newsquiz/internal/article"
	"newsquiz/internal/quizgen"
	"newsquiz/internal/router"
	"newsquiz/internal/screen"
	"newsquiz/internal/session"
	"newsquiz/internal/store"
	"newsquiz/internal/ui/layout"
)

// Deps bundles everything the quiz flow needs.
type Deps struct {
	Fetcher   *article.Fetcher
	Generator *quizgen.Generator
	Sessions  store.SessionRepo
	Attempts  store.AttemptRepo
	Policy    session.Policy
	Questions int
}

// QuizScreen drives one article through fetch, preview, quiz and review.
type QuizScreen struct {
	deps Deps

	state   session.State
	dropped []*quizgen.ItemError
	preview string // rendered article preview, kept outside the session

	fetching   bool
	generating bool
	saved      bool

	current   int // question index being shown
	optCursor int // focused option on the current question

	spinnerFrame int
	errMsg       string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// errNoProvider is surfaced when the user asks for a quiz but the app
// was started without a configured LLM provider.
var errNoProvider = errors.New("no LLM provider is configured; set an API key (e.g. ANTHROPIC_API_KEY) and restart")

// New creates a QuizScreen that fetches the given URL on Init.
func New(deps Deps, url string) *QuizScreen {
	s := &QuizScreen{
		deps:     deps,
		state:    session.NewState(),
		fetching: true,
	}
	s.state.ArticleURL = url
	return s
}

// Resume creates a QuizScreen from a restored session.
func Resume(deps Deps, state session.State) *QuizScreen {
	return &QuizScreen{
		deps:    deps,
		state:   state,
		preview: state.ArticleText,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.fetching {
		return tea.Batch(s.fetchCmd(s.state.ArticleURL), s.spinnerTick())
	}
	return nil
}

func (s *QuizScreen) Title() string {
	switch {
	case s.state.Phase() == session.PhaseReviewing:
		return "Results"
	case s.state.Quiz != nil:
		return "Quiz"
	default:
		return "Article"
	}
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.fetching || s.generating:
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	case s.state.Err != nil && s.state.Quiz == nil && s.state.ArticleText == "":
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	case s.state.Phase() == session.PhasePreviewing:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Make quiz"},
			{Key: "Esc", Description: "Back"},
		}
	case s.state.Phase() == session.PhaseReviewing:
		return []layout.KeyHint{
			{Key: "←→", Description: "Questions"},
			{Key: "Esc", Description: "Done"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Option"},
			{Key: "Enter", Description: "Pick"},
			{Key: "←→", Description: "Questions"},
			{Key: "S", Description: "Submit"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case articleFetchedMsg:
		return s.handleFetched(msg)

	case quizReadyMsg:
		return s.handleQuizReady(msg)

	case attemptSavedMsg:
		if msg.Err != nil {
			s.errMsg = "could not save attempt: " + msg.Err.Error()
			return s, nil
		}
		s.saved = true
		return s, func() tea.Msg { return AttemptRecordedMsg{} }

	case sessionPersistedMsg:
		// Snapshot write failures are not fatal to the quiz itself.
		if msg.Err != nil {
			s.errMsg = "could not save session: " + msg.Err.Error()
		}
		return s, nil

	case spinnerTickMsg:
		if !s.fetching && !s.generating {
			return s, nil
		}
		s.spinnerFrame++
		return s, s.spinnerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleFetched(msg articleFetchedMsg) (screen.Screen, tea.Cmd) {
	s.fetching = false
	if msg.Err != nil {
		s.state = session.Apply(s.state, session.FetchFailed{Err: msg.Err}, s.deps.Policy)
		return s, nil
	}

	s.preview = msg.Article.Preview
	s.state = session.Apply(s.state, session.ArticleFetched{
		URL:   msg.Article.URL,
		Title: msg.Article.Title,
		Text:  msg.Article.Text,
	}, s.deps.Policy)
	return s, s.persistCmd()
}

func (s *QuizScreen) handleQuizReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	s.generating = false
	if msg.Err != nil {
		s.state = session.Apply(s.state, session.GenerateFailed{Err: msg.Err}, s.deps.Policy)
		return s, nil
	}

	s.dropped = msg.Dropped
	s.current = 0
	s.optCursor = 0
	s.state = session.Apply(s.state, session.QuizGenerated{Quiz: msg.Quiz}, s.deps.Policy)
	return s, s.persistCmd()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.fetching || s.generating {
		return s, nil
	}

	switch s.state.Phase() {
	case session.PhaseIdle:
		if key == "r" && s.state.ArticleURL != "" {
			s.fetching = true
			s.state.Err = nil
			return s, tea.Batch(s.fetchCmd(s.state.ArticleURL), s.spinnerTick())
		}

	case session.PhasePreviewing:
		if key == "enter" || key == "g" {
			if s.deps.Generator == nil {
				s.state = session.Apply(s.state, session.GenerateFailed{Err: errNoProvider}, s.deps.Policy)
				return s, nil
			}
			s.generating = true
			return s, tea.Batch(s.generateCmd(s.state.ArticleText), s.spinnerTick())
		}

	case session.PhaseQuizReady:
		return s.handleQuizKey(key)

	case session.PhaseReviewing:
		switch key {
		case "left", "h":
			if s.current > 0 {
				s.current--
			}
		case "right", "l":
			if s.current < len(s.state.Quiz)-1 {
				s.current++
			}
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return s, nil
}

func (s *QuizScreen) handleQuizKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		if s.optCursor > 0 {
			s.optCursor--
		}
	case "down", "j":
		if s.optCursor < len(quizgen.OptionKeys)-1 {
			s.optCursor++
		}
	case "enter", "space":
		s.state = session.Apply(s.state, session.SelectAnswer{
			Index: s.current,
			Key:   quizgen.OptionKeys[s.optCursor],
		}, s.deps.Policy)
		cmd := s.persistCmd()
		// Jump ahead so answering flows question to question.
		if s.current < len(s.state.Quiz)-1 {
			s.current++
			s.syncCursor()
		}
		return s, cmd
	case "left", "h":
		if s.current > 0 {
			s.current--
			s.syncCursor()
		}
	case "right", "l":
		if s.current < len(s.state.Quiz)-1 {
			s.current++
			s.syncCursor()
		}
	case "s":
		s.state = session.Apply(s.state, session.Submit{}, s.deps.Policy)
		s.current = 0
		return s, tea.Batch(s.saveAttemptCmd(), s.clearSessionCmd())
	}
	return s, nil
}

// syncCursor points the option cursor at the already chosen answer, if any.
func (s *QuizScreen) syncCursor() {
	s.optCursor = 0
	if key, ok := s.state.Answers[s.current]; ok {
		for i, k := range quizgen.OptionKeys {
			if k == key {
				s.optCursor = i
				break
			}
		}
	}
}

func (s *QuizScreen) fetchCmd(url string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		art, err := s.deps.Fetcher.Fetch(ctx, url)
		return articleFetchedMsg{Article: art, Err: err}
	}
}

func (s *QuizScreen) generateCmd(text string) tea.Cmd {
	if s.deps.Generator == nil {
		return func() tea.Msg { return quizReadyMsg{Err: errNoProvider} }
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		quiz, dropped, err := s.deps.Generator.Generate(ctx, quizgen.GenerateInput{
			ArticleText:  text,
			NumQuestions: s.deps.Questions,
		})
		return quizReadyMsg{Quiz: quiz, Dropped: dropped, Err: err}
	}
}

func (s *QuizScreen) persistCmd() tea.Cmd {
	if s.deps.Sessions == nil {
		return nil
	}
	snap := session.Capture(s.state)
	return func() tea.Msg {
		data, err := json.Marshal(snap)
		if err != nil {
			return sessionPersistedMsg{Err: err}
		}
		return sessionPersistedMsg{Err: s.deps.Sessions.SaveSession(context.Background(), data)}
	}
}

func (s *QuizScreen) clearSessionCmd() tea.Cmd {
	if s.deps.Sessions == nil {
		return nil
	}
	return func() tea.Msg {
		return sessionPersistedMsg{Err: s.deps.Sessions.ClearSession(context.Background())}
	}
}

func (s *QuizScreen) saveAttemptCmd() tea.Cmd {
	if s.deps.Attempts == nil {
		return nil
	}

	quizJSON, err := json.Marshal(s.state.Quiz)
	if err != nil {
		return func() tea.Msg { return attemptSavedMsg{Err: err} }
	}
	answersJSON, err := json.Marshal(s.state.Answers)
	if err != nil {
		return func() tea.Msg { return attemptSavedMsg{Err: err} }
	}

	attempt := &store.Attempt{
		URL:         s.state.ArticleURL,
		Title:       s.state.ArticleTitle,
		QuizJSON:    string(quizJSON),
		AnswersJSON: string(answersJSON),
		Score:       session.Score(s.state),
		Total:       len(s.state.Quiz),
	}

	return func() tea.Msg {
		return attemptSavedMsg{Err: s.deps.Attempts.Save(context.Background(), attempt)}
	}
}

func (s *QuizScreen) spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
