package session

import "newsquiz/internal/quizgen"

// Phase is the current stage of one article/quiz cycle.
type Phase int

const (
	// PhaseIdle means nothing has been fetched yet.
	PhaseIdle Phase = iota
	// PhasePreviewing means article text is fetched but no quiz exists.
	PhasePreviewing
	// PhaseQuizReady means a quiz is generated and answers are still open.
	PhaseQuizReady
	// PhaseReviewing means answers are submitted and the score is final.
	PhaseReviewing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePreviewing:
		return "previewing"
	case PhaseQuizReady:
		return "quiz-ready"
	case PhaseReviewing:
		return "reviewing"
	}
	return "unknown"
}

// Policy holds presentation choices that shape transitions but are not
// hard invariants of the data.
type Policy struct {
	// KeepArticleAfterGenerate leaves the article text in place when a
	// quiz is generated. The default (false) clears it for the exam feel
	// of the quiz screen.
	KeepArticleAfterGenerate bool
}

// State is the complete session record. Every user action rebuilds the
// next State from the previous one via Apply; nothing lives outside it.
type State struct {
	// ArticleURL is the source URL of the current article, if any.
	ArticleURL string

	// ArticleTitle is the extracted article title, if any.
	ArticleTitle string

	// ArticleText is the normalized article body. Set by a successful
	// fetch; cleared on quiz generation unless policy says otherwise.
	ArticleText string

	// Quiz is the generated quiz, nil until generation succeeds.
	Quiz quizgen.QuizSet

	// Submitted locks the answers once true. It never goes back to
	// false except through a new fetch.
	Submitted bool

	// Answers maps question index to the chosen option key. A missing
	// entry means unanswered; an unanswered question never matches any
	// correct answer, so it can never accidentally score.
	Answers map[int]quizgen.OptionKey

	// Err holds the failure from the most recent action, if any. It is
	// informational: failed actions never mutate the fields above.
	Err error
}

// NewState returns the initial empty session state.
func NewState() State {
	return State{}
}

// Phase derives the current phase from the data. It is never stored, so
// state and phase cannot drift apart.
func (s State) Phase() Phase {
	switch {
	case s.Quiz != nil && s.Submitted:
		return PhaseReviewing
	case s.Quiz != nil:
		return PhaseQuizReady
	case s.ArticleText != "":
		return PhasePreviewing
	}
	return PhaseIdle
}

// Answer returns the selected key for question idx and whether one was
// selected at all.
func (s State) Answer(idx int) (quizgen.OptionKey, bool) {
	k, ok := s.Answers[idx]
	return k, ok
}

// cloneAnswers copies the answer map so reducer outputs never alias the
// input state's map.
func cloneAnswers(in map[int]quizgen.OptionKey) map[int]quizgen.OptionKey {
	out := make(map[int]quizgen.OptionKey, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
