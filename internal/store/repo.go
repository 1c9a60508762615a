package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	Purpose string    // filter by purpose ("" = all)
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event as read back from the database.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates token usage per request purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage per model, for cost estimation.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides access to the LLM request event log.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first, filtered by opts.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent returns a single event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]*PurposeUsage, error)

	// LLMUsageByModel aggregates usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]*ModelUsage, error)
}

// Attempt is a completed quiz attempt.
type Attempt struct {
	ID          string
	CreatedAt   time.Time
	URL         string
	Title       string
	QuizJSON    string
	AnswersJSON string
	Score       int
	Total       int
}

// AttemptRepo manages the quiz attempt history.
type AttemptRepo interface {
	// Save stores a completed attempt.
	Save(ctx context.Context, a *Attempt) error

	// List returns attempts newest first, up to limit (0 = unlimited).
	List(ctx context.Context, limit int) ([]*Attempt, error)

	// Get returns an attempt by ID, or nil if not found.
	Get(ctx context.Context, id string) (*Attempt, error)
}

// SessionRepo persists the single resumable session snapshot.
type SessionRepo interface {
	// SaveSession stores the snapshot JSON, replacing any previous one.
	SaveSession(ctx context.Context, data []byte) error

	// LoadSession returns the stored snapshot JSON, or nil if none exists.
	LoadSession(ctx context.Context) ([]byte, error)

	// ClearSession deletes the stored snapshot.
	ClearSession(ctx context.Context) error
}
