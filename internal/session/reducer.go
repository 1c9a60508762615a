package session

import "newsquiz/internal/quizgen"

// Apply computes the next session state for one action. It is a pure
// function: the input state is never mutated, failed actions return it
// unchanged apart from Err, and applying the same action to the same
// state always yields the same result. The caller owns persistence of
// the returned state between actions.
func Apply(state State, action Action, policy Policy) State {
	// Each action starts with a clean error slate.
	state.Err = nil

	switch a := action.(type) {
	case ArticleFetched:
		return State{
			ArticleURL:   a.URL,
			ArticleTitle: a.Title,
			ArticleText:  a.Text,
		}

	case FetchFailed:
		state.Err = a.Err
		return state

	case QuizGenerated:
		if state.ArticleText == "" {
			// Generation without a fetched article has nothing to attach to.
			return state
		}
		next := state
		next.Quiz = a.Quiz
		next.Submitted = false
		next.Answers = make(map[int]quizgen.OptionKey, len(a.Quiz))
		if !policy.KeepArticleAfterGenerate {
			next.ArticleText = ""
		}
		return next

	case GenerateFailed:
		state.Err = a.Err
		return state

	case SelectAnswer:
		if state.Quiz == nil || state.Submitted {
			return state
		}
		if a.Index < 0 || a.Index >= len(state.Quiz) {
			return state
		}
		if !quizgen.ValidKey(a.Key) {
			return state
		}
		next := state
		next.Answers = cloneAnswers(state.Answers)
		next.Answers[a.Index] = a.Key
		return next

	case Submit:
		if state.Quiz == nil {
			return state
		}
		next := state
		next.Submitted = true
		return next

	case Reset:
		return NewState()
	}

	return state
}
