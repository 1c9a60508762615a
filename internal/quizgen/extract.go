package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"
)

// rawItem is the wire shape of a single quiz item as the model emits it.
type rawItem struct {
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
}

// Extract locates the quiz array inside free-form model output and
// validates it item by item. Items that fail validation are dropped and
// reported in the returned ItemError slice; extraction only fails
// outright when nothing JSON-shaped is found (ErrNoJSONFound), the found
// region does not parse (ErrMalformedJSON), or no item survives
// (ErrEmptyQuiz). A shorter-than-requested quiz is a success.
func Extract(raw string) (QuizSet, []*ItemError, error) {
	region, ok := arrayRegion(raw)
	if !ok {
		return nil, nil, ErrNoJSONFound
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(region), &elements); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	var (
		quiz    QuizSet
		dropped []*ItemError
	)
	for i, el := range elements {
		item, err := validateItem(i, el)
		if err != nil {
			dropped = append(dropped, err)
			continue
		}
		quiz = append(quiz, item)
	}

	if len(quiz) == 0 {
		return nil, dropped, ErrEmptyQuiz
	}
	return quiz, dropped, nil
}

// arrayRegion returns the substring from the first top-level '[' through
// its matching ']'. Depth is tracked explicitly so that nested arrays and
// brackets inside string literals never terminate the scan early; the
// model routinely wraps the array in prose despite being told not to.
// When a '[' is found but never closes, the tail is returned anyway so
// the JSON parser can report it as malformed rather than missing.
func arrayRegion(s string) (string, bool) {
	start := strings.IndexByte(s, '[')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	// Unterminated array: hand the tail to the parser for a MalformedJSON.
	return s[start:], true
}

// validateItem checks one array element against the wire contract:
// an object with exactly the three required fields, four options keyed
// A-D, and a correct_answer that names one of them. Nothing is coerced
// or guessed; a bad item is dropped whole.
func validateItem(index int, el json.RawMessage) (Item, *ItemError) {
	drop := func(format string, args ...any) (Item, *ItemError) {
		return Item{}, &ItemError{Index: index, Reason: fmt.Sprintf(format, args...)}
	}

	if err := validateItemSchema(el); err != nil {
		return drop("%v", err)
	}

	var ri rawItem
	if err := json.Unmarshal(el, &ri); err != nil {
		return drop("not a quiz item object: %v", err)
	}

	if strings.TrimSpace(ri.Question) == "" {
		return drop("question is empty")
	}
	if len(ri.Options) != 4 {
		return drop("options has %d entries, want 4", len(ri.Options))
	}

	options := make(map[OptionKey]string, 4)
	for k, v := range ri.Options {
		key := OptionKey(k)
		if !ValidKey(key) {
			return drop("option key %q is not one of A-D", k)
		}
		if strings.TrimSpace(v) == "" {
			return drop("option %s is empty", k)
		}
		options[key] = v
	}

	correct := OptionKey(ri.CorrectAnswer)
	if _, ok := options[correct]; !ok {
		return drop("correct_answer %q is not an option key", ri.CorrectAnswer)
	}

	return Item{
		Question:      ri.Question,
		Options:       options,
		CorrectAnswer: correct,
	}, nil
}
