package quizgen

// OptionKey labels one of the four answer options.
type OptionKey string

// The fixed option label set. The wire format and the UI both use these.
const (
	KeyA OptionKey = "A"
	KeyB OptionKey = "B"
	KeyC OptionKey = "C"
	KeyD OptionKey = "D"
)

// OptionKeys is the label set in display order.
var OptionKeys = []OptionKey{KeyA, KeyB, KeyC, KeyD}

// ValidKey reports whether k is one of the four known labels.
func ValidKey(k OptionKey) bool {
	switch k {
	case KeyA, KeyB, KeyC, KeyD:
		return true
	}
	return false
}

// Item is a single validated quiz question. The JSON tags match the wire
// naming so stored quizzes round-trip in the same shape the model emits.
type Item struct {
	// Question is the question prompt shown to the reader.
	Question string `json:"question"`

	// Options maps each label to its option text. Always exactly four
	// entries, one per label in OptionKeys.
	Options map[OptionKey]string `json:"options"`

	// CorrectAnswer is the label of the correct option. Guaranteed by
	// extraction to be present in Options.
	CorrectAnswer OptionKey `json:"correct_answer"`
}

// OptionText returns the text for the given label, or "" if absent.
func (it Item) OptionText(k OptionKey) string {
	return it.Options[k]
}

// QuizSet is the ordered sequence of items for one generated quiz.
// Its actual length is authoritative: the requested question count is a
// hint to the model, not a guarantee.
type QuizSet []Item

// GenerateInput holds everything needed to generate a quiz.
type GenerateInput struct {
	// ArticleText is the normalized plain-text article body.
	ArticleText string

	// NumQuestions is the number of questions to ask the model for.
	NumQuestions int
}
