package session

import (
	"errors"
	"testing"

	"newsquiz/internal/quizgen"
)

func testQuiz() quizgen.QuizSet {
	mk := func(q string, correct quizgen.OptionKey) quizgen.Item {
		return quizgen.Item{
			Question: q,
			Options: map[quizgen.OptionKey]string{
				quizgen.KeyA: "a", quizgen.KeyB: "b",
				quizgen.KeyC: "c", quizgen.KeyD: "d",
			},
			CorrectAnswer: correct,
		}
	}
	return quizgen.QuizSet{
		mk("Q1?", quizgen.KeyA),
		mk("Q2?", quizgen.KeyB),
		mk("Q3?", quizgen.KeyC),
	}
}

func previewingState() State {
	return Apply(NewState(), ArticleFetched{
		URL:   "https://example.com/news/1",
		Title: "Example",
		Text:  "article body",
	}, Policy{})
}

func quizReadyState() State {
	return Apply(previewingState(), QuizGenerated{Quiz: testQuiz()}, Policy{})
}

func TestFetchEntersPreviewing(t *testing.T) {
	s := previewingState()
	if s.Phase() != PhasePreviewing {
		t.Fatalf("expected previewing, got %s", s.Phase())
	}
	if s.ArticleText != "article body" {
		t.Errorf("unexpected article text: %q", s.ArticleText)
	}
}

func TestFetchClearsPreviousQuiz(t *testing.T) {
	s := quizReadyState()
	s = Apply(s, Submit{}, Policy{})

	s = Apply(s, ArticleFetched{URL: "https://example.com/2", Text: "new article"}, Policy{})
	if s.Quiz != nil {
		t.Error("fetch must clear the previous quiz")
	}
	if s.Submitted {
		t.Error("fetch must clear the submitted flag")
	}
	if len(s.Answers) != 0 {
		t.Error("fetch must clear answers")
	}
	if s.Phase() != PhasePreviewing {
		t.Errorf("expected previewing, got %s", s.Phase())
	}
}

func TestFetchFailureLeavesStateUnchanged(t *testing.T) {
	before := previewingState()
	after := Apply(before, FetchFailed{Err: errors.New("dial tcp: timeout")}, Policy{})

	if after.Err == nil {
		t.Fatal("expected error surfaced")
	}
	if after.ArticleText != before.ArticleText {
		t.Error("fetch failure must not touch the article")
	}
	if after.Phase() != PhasePreviewing {
		t.Errorf("expected previewing, got %s", after.Phase())
	}
}

func TestGenerateClearsArticleByDefault(t *testing.T) {
	s := quizReadyState()
	if s.Phase() != PhaseQuizReady {
		t.Fatalf("expected quiz-ready, got %s", s.Phase())
	}
	if s.ArticleText != "" {
		t.Error("default policy clears article text on generation")
	}
}

func TestGenerateKeepArticlePolicy(t *testing.T) {
	s := Apply(previewingState(), QuizGenerated{Quiz: testQuiz()},
		Policy{KeepArticleAfterGenerate: true})
	if s.ArticleText == "" {
		t.Error("keep-article policy must preserve article text")
	}
	if s.Phase() != PhaseQuizReady {
		t.Errorf("expected quiz-ready, got %s", s.Phase())
	}
}

func TestGenerateFailureLeavesStateUnchanged(t *testing.T) {
	before := previewingState()
	after := Apply(before, GenerateFailed{Err: quizgen.ErrEmptyQuiz}, Policy{})

	if !errors.Is(after.Err, quizgen.ErrEmptyQuiz) {
		t.Fatalf("expected ErrEmptyQuiz surfaced, got %v", after.Err)
	}
	if after.ArticleText != before.ArticleText || after.Quiz != nil {
		t.Error("generate failure must not mutate state")
	}
}

func TestSelectAnswer(t *testing.T) {
	s := quizReadyState()
	s = Apply(s, SelectAnswer{Index: 0, Key: quizgen.KeyA}, Policy{})
	s = Apply(s, SelectAnswer{Index: 1, Key: quizgen.KeyD}, Policy{})
	// Changing a selection before submit is allowed.
	s = Apply(s, SelectAnswer{Index: 1, Key: quizgen.KeyB}, Policy{})

	if k, _ := s.Answer(0); k != quizgen.KeyA {
		t.Errorf("expected A for question 0, got %q", k)
	}
	if k, _ := s.Answer(1); k != quizgen.KeyB {
		t.Errorf("expected B for question 1, got %q", k)
	}
	if _, ok := s.Answer(2); ok {
		t.Error("question 2 should be unanswered")
	}
}

func TestSelectAnswerBoundsAndKeys(t *testing.T) {
	s := quizReadyState()
	s = Apply(s, SelectAnswer{Index: -1, Key: quizgen.KeyA}, Policy{})
	s = Apply(s, SelectAnswer{Index: 3, Key: quizgen.KeyA}, Policy{})
	s = Apply(s, SelectAnswer{Index: 0, Key: quizgen.OptionKey("E")}, Policy{})
	if len(s.Answers) != 0 {
		t.Errorf("invalid selections must be ignored, got %d answers", len(s.Answers))
	}
}

func TestSubmitNoOpWithoutQuiz(t *testing.T) {
	for _, s := range []State{NewState(), previewingState()} {
		after := Apply(s, Submit{}, Policy{})
		if after.Submitted {
			t.Errorf("submit from %s must be a no-op", s.Phase())
		}
		if after.Phase() == PhaseReviewing {
			t.Errorf("submit from %s must not enter reviewing", s.Phase())
		}
	}
}

func TestSelectAfterSubmitIgnored(t *testing.T) {
	s := quizReadyState()
	s = Apply(s, SelectAnswer{Index: 0, Key: quizgen.KeyA}, Policy{})
	s = Apply(s, Submit{}, Policy{})
	if s.Phase() != PhaseReviewing {
		t.Fatalf("expected reviewing, got %s", s.Phase())
	}

	after := Apply(s, SelectAnswer{Index: 0, Key: quizgen.KeyD}, Policy{})
	if k, _ := after.Answer(0); k != quizgen.KeyA {
		t.Errorf("answers must be read-only after submit, got %q", k)
	}
	after = Apply(s, SelectAnswer{Index: 1, Key: quizgen.KeyD}, Policy{})
	if _, ok := after.Answer(1); ok {
		t.Error("new answers must be rejected after submit")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	before := quizReadyState()
	before = Apply(before, SelectAnswer{Index: 0, Key: quizgen.KeyA}, Policy{})

	_ = Apply(before, SelectAnswer{Index: 0, Key: quizgen.KeyD}, Policy{})
	if k, _ := before.Answer(0); k != quizgen.KeyA {
		t.Error("Apply mutated its input state")
	}
}

func TestScore(t *testing.T) {
	s := quizReadyState()
	// Correct answers are A, B, C; user picks A, B, D.
	s = Apply(s, SelectAnswer{Index: 0, Key: quizgen.KeyA}, Policy{})
	s = Apply(s, SelectAnswer{Index: 1, Key: quizgen.KeyB}, Policy{})
	s = Apply(s, SelectAnswer{Index: 2, Key: quizgen.KeyD}, Policy{})
	s = Apply(s, Submit{}, Policy{})

	if got := Score(s); got != 2 {
		t.Errorf("expected score 2, got %d", got)
	}
	// Idempotent: recomputing changes nothing.
	if got := Score(s); got != 2 {
		t.Errorf("expected score 2 on recompute, got %d", got)
	}
	if Answered(s) != 3 {
		t.Errorf("expected 3 answered, got %d", Answered(s))
	}
}

func TestScoreUnansweredNeverCounts(t *testing.T) {
	s := quizReadyState()
	s = Apply(s, Submit{}, Policy{})
	if got := Score(s); got != 0 {
		t.Errorf("expected score 0 with no answers, got %d", got)
	}
}

func TestReset(t *testing.T) {
	s := quizReadyState()
	s = Apply(s, Reset{}, Policy{})
	if s.Phase() != PhaseIdle {
		t.Errorf("expected idle after reset, got %s", s.Phase())
	}
}
