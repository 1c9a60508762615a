package quizgen

import (
	"context"

	"newsquiz/internal/llm"
)

// Generator produces quizzes from article text via the LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// Generate asks the model for a quiz and extracts it from the response.
//
// The request deliberately does not use the provider's structured-output
// mechanism: the wire format is a top-level JSON array, and strict schema
// modes require an object root. The prompt carries the schema instead and
// Extract validates whatever comes back. The returned ItemError slice
// lists items the model produced but validation dropped; the quiz itself
// may therefore be shorter than requested, and the actual length is
// authoritative downstream.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) (QuizSet, []*ItemError, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	input.NumQuestions = g.config.ClampCount(input.NumQuestions)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, nil, &ModelError{Err: err}
	}

	return Extract(string(resp.Content))
}
