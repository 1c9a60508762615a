package quizgen

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func itemJSON(question, correct string) string {
	return fmt.Sprintf(`{
		"question": %q,
		"options": {"A": "Paris", "B": "Berlin", "C": "Madrid", "D": "Rome"},
		"correct_answer": %q
	}`, question, correct)
}

func TestExtract_Clean(t *testing.T) {
	raw := "[" + itemJSON("Which city hosted the summit?", "A") + "]"

	quiz, dropped, err := Extract(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dropped) != 0 {
		t.Errorf("expected no dropped items, got %d", len(dropped))
	}
	if len(quiz) != 1 {
		t.Fatalf("expected 1 item, got %d", len(quiz))
	}
	if quiz[0].CorrectAnswer != KeyA {
		t.Errorf("expected correct answer A, got %q", quiz[0].CorrectAnswer)
	}
	if len(quiz[0].Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(quiz[0].Options))
	}
}

func TestExtract_SurroundingProse(t *testing.T) {
	raw := "Sure! Here you go: [" + itemJSON("Who signed the treaty?", "C") + "] Hope that helps!"

	quiz, _, err := Extract(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quiz) != 1 {
		t.Fatalf("expected exactly 1 item, got %d", len(quiz))
	}
	if quiz[0].Question != "Who signed the treaty?" {
		t.Errorf("unexpected question: %q", quiz[0].Question)
	}
}

func TestExtract_BracketInsideString(t *testing.T) {
	// A ']' inside a string literal must not terminate the array scan.
	raw := `noise [` + itemJSON("What did the report [2024] conclude?", "B") + `] trailing`

	quiz, _, err := Extract(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(quiz[0].Question, "[2024]") {
		t.Errorf("question lost bracketed text: %q", quiz[0].Question)
	}
}

func TestExtract_NestedArrayBeforeClose(t *testing.T) {
	// Nested brackets inside the array must not end the region early.
	raw := `[{"question": "Pick one", "options": {"A": "x [1]", "B": "y", "C": "z", "D": "w"}, "correct_answer": "B"}]`

	quiz, _, err := Extract(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quiz[0].Options[KeyA] != "x [1]" {
		t.Errorf("unexpected option text: %q", quiz[0].Options[KeyA])
	}
}

func TestExtract_NoJSON(t *testing.T) {
	_, _, err := Extract("no json here")
	if !errors.Is(err, ErrNoJSONFound) {
		t.Fatalf("expected ErrNoJSONFound, got %v", err)
	}
}

func TestExtract_Malformed(t *testing.T) {
	_, _, err := Extract("[invalid json")
	if !errors.Is(err, ErrMalformedJSON) {
		t.Fatalf("expected ErrMalformedJSON, got %v", err)
	}
}

func TestExtract_EmptyArray(t *testing.T) {
	_, _, err := Extract("[]")
	if !errors.Is(err, ErrEmptyQuiz) {
		t.Fatalf("expected ErrEmptyQuiz, got %v", err)
	}
}

func TestExtract_PartialSuccess(t *testing.T) {
	// Five items, the third missing correct_answer: four survive, one
	// recorded as dropped. Partial success is success.
	broken := `{"question": "Broken?", "options": {"A": "a", "B": "b", "C": "c", "D": "d"}}`
	raw := "[" + strings.Join([]string{
		itemJSON("Q1?", "A"),
		itemJSON("Q2?", "B"),
		broken,
		itemJSON("Q4?", "C"),
		itemJSON("Q5?", "D"),
	}, ",") + "]"

	quiz, dropped, err := Extract(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quiz) != 4 {
		t.Errorf("expected 4 surviving items, got %d", len(quiz))
	}
	if len(dropped) != 1 {
		t.Fatalf("expected 1 dropped item, got %d", len(dropped))
	}
	if dropped[0].Index != 2 {
		t.Errorf("expected dropped index 2, got %d", dropped[0].Index)
	}
}

func TestExtract_InvalidItems(t *testing.T) {
	cases := []struct {
		name string
		item string
	}{
		{"correct answer not an option", `{"question": "Q?", "options": {"A": "a", "B": "b", "C": "c", "D": "d"}, "correct_answer": "E"}`},
		{"three options", `{"question": "Q?", "options": {"A": "a", "B": "b", "C": "c"}, "correct_answer": "A"}`},
		{"five options", `{"question": "Q?", "options": {"A": "a", "B": "b", "C": "c", "D": "d", "E": "e"}, "correct_answer": "A"}`},
		{"empty question", `{"question": "", "options": {"A": "a", "B": "b", "C": "c", "D": "d"}, "correct_answer": "A"}`},
		{"options not an object", `{"question": "Q?", "options": ["a", "b", "c", "d"], "correct_answer": "A"}`},
		{"non-string option", `{"question": "Q?", "options": {"A": 1, "B": "b", "C": "c", "D": "d"}, "correct_answer": "A"}`},
		{"not an object", `"just a string"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, dropped, err := Extract("[" + tc.item + "]")
			if !errors.Is(err, ErrEmptyQuiz) {
				t.Fatalf("expected ErrEmptyQuiz, got %v", err)
			}
			if len(dropped) != 1 {
				t.Errorf("expected 1 dropped item, got %d", len(dropped))
			}
		})
	}
}

func TestExtract_InvariantHolds(t *testing.T) {
	raw := "[" + strings.Join([]string{
		itemJSON("Q1?", "A"),
		itemJSON("Q2?", "D"),
	}, ",") + "]"

	quiz, _, err := Extract(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, item := range quiz {
		if len(item.Options) != 4 {
			t.Errorf("item %d: expected 4 options, got %d", i, len(item.Options))
		}
		if _, ok := item.Options[item.CorrectAnswer]; !ok {
			t.Errorf("item %d: correct answer %q not in options", i, item.CorrectAnswer)
		}
	}
}
