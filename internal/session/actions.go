package session

import "newsquiz/internal/quizgen"

// Action is a discrete user-triggered event applied to the session state.
// Completion of a fetch or generation also arrives as an action: the
// reducer never performs I/O itself.
type Action interface {
	isAction()
}

// ArticleFetched carries the result of a successful fetch+normalize.
// It resets any previous quiz: a new article begins a new cycle.
type ArticleFetched struct {
	URL   string
	Title string
	Text  string
}

// FetchFailed carries a fetch or normalize failure. State is preserved.
type FetchFailed struct {
	Err error
}

// QuizGenerated carries a successfully extracted quiz.
type QuizGenerated struct {
	Quiz quizgen.QuizSet
}

// GenerateFailed carries a model or extraction failure. State is preserved.
type GenerateFailed struct {
	Err error
}

// SelectAnswer records the chosen option for one question. Ignored after
// submission.
type SelectAnswer struct {
	Index int
	Key   quizgen.OptionKey
}

// Submit locks the answers and moves to review. A no-op when no quiz
// exists.
type Submit struct{}

// Reset returns the session to the idle state.
type Reset struct{}

func (ArticleFetched) isAction() {}
func (FetchFailed) isAction()    {}
func (QuizGenerated) isAction()  {}
func (GenerateFailed) isAction() {}
func (SelectAnswer) isAction()   {}
func (Submit) isAction()         {}
func (Reset) isAction()          {}
