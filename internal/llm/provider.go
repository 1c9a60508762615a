package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction every LLM backend implements. Callers
// build a Request, get a Response, and never touch provider SDK types.
type Provider interface {
	// Generate sends one prompt to the model. When the request carries a
	// Schema the provider uses its native structured-output mechanism
	// and the returned Content is validated JSON; without a Schema the
	// Content is the raw text reply.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System sets the model's role and standing constraints.
	System string

	// Messages is the conversation. Quiz generation is single-turn, so
	// this is normally one user message.
	Messages []Message

	// Schema, when set, requests structured output conforming to it.
	// Quiz generation leaves it nil because the quiz wire format has an
	// array root, which strict structured-output modes reject.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema; kebab-case, e.g. "quiz-item".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output: validated JSON when a Schema was
	// requested, otherwise the raw text wrapped as json.RawMessage.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// resolveModel maps a friendly model name to a provider model ID,
// passing unknown names through so direct IDs keep working.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
