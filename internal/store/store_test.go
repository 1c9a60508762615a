package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSchemaCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"llm_events", "attempts", "session_snapshot"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku-4-5-20251001",
		Purpose:      "quiz-gen",
		InputTokens:  1200,
		OutputTokens: 400,
		LatencyMs:    850,
		Success:      true,
		RequestBody:  "[user]\nCreate 5 questions",
		ResponseBody: `[]`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	e := events[0]
	if e.ID == 0 {
		t.Error("expected non-zero ID")
	}
	if e.Purpose != "quiz-gen" {
		t.Errorf("purpose = %q, want quiz-gen", e.Purpose)
	}
	if e.InputTokens != 1200 || e.OutputTokens != 400 {
		t.Errorf("tokens = %d/%d, want 1200/400", e.InputTokens, e.OutputTokens)
	}
	if !e.Success {
		t.Error("expected success")
	}
	if e.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestLLMEventQueryNewestFirstWithLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: "quiz-gen", Success: true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 3})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].ID <= events[1].ID {
		t.Errorf("expected newest first, got IDs %d then %d", events[0].ID, events[1].ID)
	}
}

func TestLLMEventPurposeFilter(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"quiz-gen", "quiz-gen", "summary"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: purpose, Success: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "quiz-gen"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 quiz-gen events, got %d", len(events))
	}
}

func TestLLMEventGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o-mini", Purpose: "quiz-gen",
		Success: false, ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event, got nil")
	}
	if e.ErrorMessage != "rate limited" {
		t.Errorf("error message = %q", e.ErrorMessage)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendEvent := func(purpose, model string, in, out int, latency int64) {
		t.Helper()
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: model, Purpose: purpose,
			InputTokens: in, OutputTokens: out, LatencyMs: latency, Success: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	appendEvent("quiz-gen", "gpt-4o-mini", 100, 50, 200)
	appendEvent("quiz-gen", "gpt-4o-mini", 300, 150, 400)
	appendEvent("summary", "claude-haiku-4-5", 50, 20, 100)

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purpose rows, got %d", len(byPurpose))
	}
	// Ordered by purpose: quiz-gen, summary.
	qg := byPurpose[0]
	if qg.Purpose != "quiz-gen" || qg.Calls != 2 || qg.InputTokens != 400 || qg.OutputTokens != 200 {
		t.Errorf("quiz-gen usage = %+v", qg)
	}
	if qg.AvgLatencyMs != 300 {
		t.Errorf("avg latency = %d, want 300", qg.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 model rows, got %d", len(byModel))
	}
}

func TestAttemptSaveListGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	a := &Attempt{
		URL:         "https://example.com/news/summit",
		Title:       "Climate summit opens",
		QuizJSON:    `[{"question":"Q1","options":{"A":"1","B":"2","C":"3","D":"4"},"correct_answer":"A"}]`,
		AnswersJSON: `{"0":"A"}`,
		Score:       1,
		Total:       1,
	}
	if err := repo.Save(ctx, a); err != nil {
		t.Fatalf("save: %v", err)
	}
	if a.ID == "" {
		t.Fatal("expected generated ID")
	}
	if a.CreatedAt.IsZero() {
		t.Fatal("expected generated timestamp")
	}

	list, err := repo.List(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(list))
	}
	if list[0].Title != "Climate summit opens" {
		t.Errorf("title = %q", list[0].Title)
	}
	if list[0].Score != 1 || list[0].Total != 1 {
		t.Errorf("score = %d/%d", list[0].Score, list[0].Total)
	}

	got, err := repo.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.URL != a.URL {
		t.Fatalf("get returned %+v", got)
	}

	missing, err := repo.Get(ctx, "no-such-id")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing attempt")
	}
}

func TestSessionSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	// Nothing stored yet.
	data, err := repo.LoadSession(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if data != nil {
		t.Fatal("expected nil when no snapshot exists")
	}

	first := []byte(`{"article_url":"https://example.com/a"}`)
	if err := repo.SaveSession(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Saving again replaces, never accumulates rows.
	second := []byte(`{"article_url":"https://example.com/b"}`)
	if err := repo.SaveSession(ctx, second); err != nil {
		t.Fatalf("save again: %v", err)
	}

	data, err = repo.LoadSession(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != string(second) {
		t.Errorf("loaded %s, want %s", data, second)
	}

	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM session_snapshot").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 snapshot row, got %d", count)
	}

	if err := repo.ClearSession(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	data, err = repo.LoadSession(ctx)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if data != nil {
		t.Fatal("expected nil after clear")
	}
}
