package quizgen

// Config controls the behavior of the Generator.
type Config struct {
	// MaxTokens is the token budget for the model response.
	MaxTokens int

	// Temperature controls model output randomness (0.0-1.0).
	Temperature float64

	// MaxArticleChars caps how much article text goes into the prompt.
	// Longer articles are cut at a word boundary.
	MaxArticleChars int

	// MinQuestions and MaxQuestions bound the requested question count.
	MinQuestions int
	MaxQuestions int
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       2048,
		Temperature:     0.7,
		MaxArticleChars: 9000,
		MinQuestions:    1,
		MaxQuestions:    10,
	}
}

// ClampCount forces a requested question count into the configured range.
func (c Config) ClampCount(n int) int {
	if n < c.MinQuestions {
		return c.MinQuestions
	}
	if n > c.MaxQuestions {
		return c.MaxQuestions
	}
	return n
}
