package quiz

import (
	"time"

	"newsquiz/internal/article"
	"newsquiz/internal/quizgen"
)

// articleFetchedMsg is sent when the article fetch completes.
type articleFetchedMsg struct {
	Article *article.Article
	Err     error
}

// quizReadyMsg is sent when quiz generation completes.
type quizReadyMsg struct {
	Quiz    quizgen.QuizSet
	Dropped []*quizgen.ItemError
	Err     error
}

// attemptSavedMsg is sent after the attempt is written to the store.
type attemptSavedMsg struct {
	Err error
}

// sessionPersistedMsg confirms the session snapshot was written.
type sessionPersistedMsg struct {
	Err error
}

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time

// AttemptRecordedMsg is published after a quiz is submitted and saved,
// so the app shell can refresh its attempt counter.
type AttemptRecordedMsg struct{}
