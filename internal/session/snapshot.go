package session

import "newsquiz/internal/quizgen"

// Snapshot is the JSON-serializable form of State handed to the session
// store. The transient Err field is deliberately excluded: errors belong
// to the action that produced them, not to persisted state.
type Snapshot struct {
	ArticleURL   string                    `json:"article_url,omitempty"`
	ArticleTitle string                    `json:"article_title,omitempty"`
	ArticleText  string                    `json:"article_text,omitempty"`
	Quiz         quizgen.QuizSet           `json:"quiz,omitempty"`
	Submitted    bool                      `json:"submitted"`
	Answers      map[int]quizgen.OptionKey `json:"answers,omitempty"`
}

// Capture copies the persistent fields of a State into a Snapshot.
func Capture(s State) Snapshot {
	return Snapshot{
		ArticleURL:   s.ArticleURL,
		ArticleTitle: s.ArticleTitle,
		ArticleText:  s.ArticleText,
		Quiz:         s.Quiz,
		Submitted:    s.Submitted,
		Answers:      cloneAnswers(s.Answers),
	}
}

// Restore rebuilds a State from a stored Snapshot.
func Restore(sn Snapshot) State {
	return State{
		ArticleURL:   sn.ArticleURL,
		ArticleTitle: sn.ArticleTitle,
		ArticleText:  sn.ArticleText,
		Quiz:         sn.Quiz,
		Submitted:    sn.Submitted,
		Answers:      cloneAnswers(sn.Answers),
	}
}
