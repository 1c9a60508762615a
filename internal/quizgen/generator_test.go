package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"newsquiz/internal/llm"
)

func validQuizJSON() json.RawMessage {
	return json.RawMessage(`[
		{
			"question": "Which city hosted the summit?",
			"options": {"A": "Anchorage", "B": "Geneva", "C": "Vienna", "D": "Helsinki"},
			"correct_answer": "A"
		},
		{
			"question": "Who endorsed the meeting?",
			"options": {"A": "The UN", "B": "India", "C": "The EU", "D": "Japan"},
			"correct_answer": "B"
		}
	]`)
}

func TestGenerate_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	gen := New(mock, DefaultConfig())

	quiz, dropped, err := gen.Generate(context.Background(), GenerateInput{
		ArticleText:  "India endorsed the summit held in Anchorage.",
		NumQuestions: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quiz) != 2 {
		t.Fatalf("expected 2 items, got %d", len(quiz))
	}
	if len(dropped) != 0 {
		t.Errorf("expected no dropped items, got %d", len(dropped))
	}
	if quiz[0].CorrectAnswer != KeyA || quiz[1].CorrectAnswer != KeyB {
		t.Errorf("unexpected correct answers: %q, %q", quiz[0].CorrectAnswer, quiz[1].CorrectAnswer)
	}
}

func TestGenerate_ProseWrappedResponse(t *testing.T) {
	wrapped := "Here is your quiz:\n" + string(validQuizJSON()) + "\nEnjoy!"
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(wrapped)})
	gen := New(mock, DefaultConfig())

	quiz, _, err := gen.Generate(context.Background(), GenerateInput{
		ArticleText:  "some article",
		NumQuestions: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quiz) != 2 {
		t.Errorf("expected 2 items, got %d", len(quiz))
	}
}

func TestGenerate_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	})
	gen := New(mock, DefaultConfig())

	_, _, err := gen.Generate(context.Background(), GenerateInput{
		ArticleText:  "some article",
		NumQuestions: 3,
	})

	var merr *ModelError
	if !errors.As(err, &merr) {
		t.Fatalf("expected ModelError, got %v", err)
	}
	// The underlying cause must survive wrapping so it can be shown verbatim.
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("cause missing from error: %v", err)
	}
}

func TestGenerate_PromptCarriesArticleAndCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	gen := New(mock, DefaultConfig())

	_, _, err := gen.Generate(context.Background(), GenerateInput{
		ArticleText:  "UNIQUE-ARTICLE-MARKER text body",
		NumQuestions: 7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "UNIQUE-ARTICLE-MARKER") {
		t.Error("prompt missing article text")
	}
	if !strings.Contains(msg, "Create 7 multiple-choice questions") {
		t.Error("prompt missing requested count")
	}
	if !strings.Contains(msg, "correct_answer") {
		t.Error("prompt missing schema instructions")
	}
}

func TestGenerate_CountClamped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	gen := New(mock, DefaultConfig())

	_, _, err := gen.Generate(context.Background(), GenerateInput{
		ArticleText:  "article",
		NumQuestions: 99,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Create 10 multiple-choice questions") {
		t.Error("expected count clamped to 10")
	}
}

func TestTruncateArticle(t *testing.T) {
	text := strings.Repeat("word ", 100) // 500 chars
	got := truncateArticle(text, 52)
	if len(got) > 52 {
		t.Errorf("expected at most 52 chars, got %d", len(got))
	}
	if strings.HasSuffix(got, "wor") {
		t.Errorf("truncation split a word: %q", got)
	}
	if truncateArticle("short", 100) != "short" {
		t.Error("short text must pass through unchanged")
	}
}
