package quizgen

import (
	"errors"
	"fmt"
)

// Extraction failures. Each kind gets its own sentinel so callers and
// tests can tell "no JSON-shaped region at all" apart from "a region was
// found but did not parse" and "it parsed but nothing survived validation".
var (
	// ErrNoJSONFound means the model output contained no balanced
	// top-level array literal.
	ErrNoJSONFound = errors.New("no JSON array found in model output")

	// ErrMalformedJSON means an array region was located but was not
	// valid JSON.
	ErrMalformedJSON = errors.New("model output contained malformed JSON")

	// ErrEmptyQuiz means the array parsed but zero items survived
	// validation.
	ErrEmptyQuiz = errors.New("no valid quiz items in model output")
)

// ItemError records why a single item was dropped during extraction.
// Item errors are non-fatal: they shorten the quiz, they never abort it.
type ItemError struct {
	Index  int    // position in the model's array
	Reason string // human-readable description
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d dropped: %s", e.Index, e.Reason)
}

// ModelError wraps an upstream LLM failure. The session state is left
// untouched when this surfaces; the cause is shown to the user verbatim.
type ModelError struct {
	Err error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("model request failed: %v", e.Err)
}

func (e *ModelError) Unwrap() error { return e.Err }
