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
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
	if s.EventRepo() == nil {
		t.Fatal("expected non-nil event repo")
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

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tables := []string{
		"session_events",
		"step_events",
		"answer_events",
		"hint_events",
		"image_events",
		"llm_request_events",
	}

	for _, table := range tables {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Interleave event types; sequences must be globally increasing.
	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "start"}); err != nil {
		t.Fatalf("append session: %v", err)
	}
	if err := repo.AppendStepEvent(ctx, StepEventData{SessionID: "s1", StepKind: "welcome", LessonPhase: "welcome"}); err != nil {
		t.Fatalf("append step: %v", err)
	}
	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{SessionID: "s1", Phase: "guided_practice", QuestionText: "How many?"}); err != nil {
		t.Fatalf("append answer: %v", err)
	}

	se, err := s.Client().SessionEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query session event: %v", err)
	}
	st, err := s.Client().StepEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query step event: %v", err)
	}
	ae, err := s.Client().AnswerEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query answer event: %v", err)
	}

	if !(se.Sequence < st.Sequence && st.Sequence < ae.Sequence) {
		t.Errorf("sequences not increasing: session=%d step=%d answer=%d",
			se.Sequence, st.Sequence, ae.Sequence)
	}
}

func TestSessionSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seed := []SessionEventData{
		{SessionID: "s1", Action: "start", StudentID: "kid-1", Grade: 1, Subject: "math", Lesson: "counting"},
		{SessionID: "s1", Action: "end", Lesson: "counting", ConceptsCompleted: 3, TotalCorrect: 8, TotalWrong: 2, Completed: true, DurationSecs: 900},
		{SessionID: "s2", Action: "start", StudentID: "kid-2", Grade: 1, Subject: "math", Lesson: "counting"},
		{SessionID: "s2", Action: "end", Lesson: "counting", ConceptsCompleted: 1, TotalCorrect: 2, TotalWrong: 4, DurationSecs: 300},
	}
	for i, data := range seed {
		if err := repo.AppendSessionEvent(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	for i := 0; i < 2; i++ {
		err := repo.AppendHintEvent(ctx, HintEventData{
			SessionID: "s1", HintText: "Try counting on your fingers!", Attempts: i + 1,
		})
		if err != nil {
			t.Fatalf("append hint %d: %v", i, err)
		}
	}

	records, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query summaries: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}

	// Newest first: s2 ended last.
	if records[0].SessionID != "s2" {
		t.Errorf("records[0].SessionID = %q, want s2", records[0].SessionID)
	}
	if records[0].Completed {
		t.Error("s2 should not be completed")
	}
	if records[0].HintCount != 0 {
		t.Errorf("s2 hint count = %d, want 0", records[0].HintCount)
	}

	s1 := records[1]
	if s1.SessionID != "s1" {
		t.Fatalf("records[1].SessionID = %q, want s1", s1.SessionID)
	}
	if s1.ConceptsCompleted != 3 || s1.TotalCorrect != 8 || s1.TotalWrong != 2 {
		t.Errorf("s1 totals = %d/%d/%d, want 3/8/2",
			s1.ConceptsCompleted, s1.TotalCorrect, s1.TotalWrong)
	}
	if !s1.Completed {
		t.Error("s1 should be completed")
	}
	if s1.DurationSecs != 900 {
		t.Errorf("s1 duration = %d, want 900", s1.DurationSecs)
	}
	if s1.HintCount != 2 {
		t.Errorf("s1 hint count = %d, want 2", s1.HintCount)
	}

	// Limit applies.
	records, err = repo.QuerySessionSummaries(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("limited records = %d, want 1", len(records))
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "openai",
			Model:        "gpt-4o",
			Purpose:      "hint",
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    int64(200 * (i + 1)),
			Success:      true,
			RequestBody:  `{"messages":[]}`,
			ResponseBody: `{"text":"ok"}`,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}

	// Newest first.
	if events[0].Sequence < events[1].Sequence || events[1].Sequence < events[2].Sequence {
		t.Error("events not ordered newest first")
	}
	if events[0].InputTokens != 102 {
		t.Errorf("newest input tokens = %d, want 102", events[0].InputTokens)
	}
	if events[0].RequestBody != `{"messages":[]}` {
		t.Errorf("request body = %q", events[0].RequestBody)
	}
	if events[0].ResponseBody != `{"text":"ok"}` {
		t.Errorf("response body = %q", events[0].ResponseBody)
	}

	// Sequence filter.
	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: events[2].Sequence})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 2 {
		t.Errorf("after events = %d, want 2", len(after))
	}

	// Limit.
	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited events = %d, want 1", len(limited))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o", Purpose: "welcome", Success: true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil || len(events) != 1 {
		t.Fatalf("query: %v (%d events)", err, len(events))
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.Purpose != "welcome" {
		t.Errorf("got %+v, want purpose 'welcome'", e)
	}

	// Missing IDs return nil without error.
	e, err = repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if e != nil {
		t.Errorf("expected nil for missing ID, got %+v", e)
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seed := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o", Purpose: "hint", InputTokens: 100, OutputTokens: 40, LatencyMs: 200, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "hint", InputTokens: 120, OutputTokens: 60, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "explanation", InputTokens: 300, OutputTokens: 150, LatencyMs: 500, Success: true},
	}
	for i, data := range seed {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("purposes = %d, want 2", len(usage))
	}

	// Sorted by purpose name.
	if usage[0].Purpose != "explanation" || usage[1].Purpose != "hint" {
		t.Fatalf("order = %q, %q; want explanation, hint", usage[0].Purpose, usage[1].Purpose)
	}

	hint := usage[1]
	if hint.Calls != 2 {
		t.Errorf("hint calls = %d, want 2", hint.Calls)
	}
	if hint.InputTokens != 220 || hint.OutputTokens != 100 {
		t.Errorf("hint tokens = %d/%d, want 220/100", hint.InputTokens, hint.OutputTokens)
	}
	if hint.AvgLatencyMs != 300 {
		t.Errorf("hint avg latency = %d, want 300", hint.AvgLatencyMs)
	}
}

func TestLLMUsageByModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seed := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o", Purpose: "hint", InputTokens: 100, OutputTokens: 40, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "hint", InputTokens: 200, OutputTokens: 80, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "praise", InputTokens: 50, OutputTokens: 20, Success: true},
	}
	for i, data := range seed {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	usage, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("models = %d, want 2", len(usage))
	}

	// Sorted by model name.
	if usage[0].Model != "claude-sonnet-4-5" || usage[1].Model != "gpt-4o" {
		t.Fatalf("order = %q, %q", usage[0].Model, usage[1].Model)
	}
	gpt := usage[1]
	if gpt.Calls != 2 || gpt.InputTokens != 150 || gpt.OutputTokens != 60 {
		t.Errorf("gpt-4o usage = %d calls %d/%d tokens, want 2 calls 150/60",
			gpt.Calls, gpt.InputTokens, gpt.OutputTokens)
	}
}

func TestStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	must(repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "start"}))
	must(repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s2", Action: "start"}))
	must(repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "end", Completed: true}))

	must(repo.AppendStepEvent(ctx, StepEventData{SessionID: "s1", StepKind: "welcome", LessonPhase: "welcome"}))
	must(repo.AppendStepEvent(ctx, StepEventData{SessionID: "s1", StepKind: "introduction", LessonPhase: "teaching", ConceptID: "counting-1-10"}))
	must(repo.AppendStepEvent(ctx, StepEventData{SessionID: "s1", StepKind: "visual", LessonPhase: "teaching", ConceptID: "counting-1-10", HasImage: true}))

	must(repo.AppendAnswerEvent(ctx, AnswerEventData{SessionID: "s1", Phase: "guided_practice", QuestionText: "How many apples?", Correct: true}))
	must(repo.AppendAnswerEvent(ctx, AnswerEventData{SessionID: "s1", Phase: "guided_practice", QuestionText: "How many stars?", Correct: true}))
	must(repo.AppendAnswerEvent(ctx, AnswerEventData{SessionID: "s1", Phase: "independent_practice", QuestionText: "Count the dots", Correct: false}))

	must(repo.AppendHintEvent(ctx, HintEventData{SessionID: "s1", HintText: "Count one at a time!", Attempts: 1}))
	must(repo.AppendHintEvent(ctx, HintEventData{SessionID: "s1", HintText: "Take your time! You can do it! 😊", Silence: true}))

	must(repo.AppendImageEvent(ctx, ImageEventData{SessionID: "s1", Description: "five red apples", URL: "https://img.example/1.png", Success: true, LatencyMs: 1200}))
	must(repo.AppendImageEvent(ctx, ImageEventData{SessionID: "s1", Description: "three cats", Success: false, ErrorMessage: "rate limited"}))

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.SessionsStarted != 2 {
		t.Errorf("sessions started = %d, want 2", stats.SessionsStarted)
	}
	if stats.SessionsEnded != 1 {
		t.Errorf("sessions ended = %d, want 1", stats.SessionsEnded)
	}
	if stats.SessionsCompleted != 1 {
		t.Errorf("sessions completed = %d, want 1", stats.SessionsCompleted)
	}
	if stats.StepsDelivered != 3 {
		t.Errorf("steps = %d, want 3", stats.StepsDelivered)
	}
	if stats.AnswersTotal != 3 {
		t.Errorf("answers = %d, want 3", stats.AnswersTotal)
	}
	if stats.AnswersCorrect != 2 {
		t.Errorf("correct = %d, want 2", stats.AnswersCorrect)
	}
	if stats.HintsGiven != 2 {
		t.Errorf("hints = %d, want 2", stats.HintsGiven)
	}
	if stats.SilenceNudges != 1 {
		t.Errorf("silence nudges = %d, want 1", stats.SilenceNudges)
	}
	if stats.ImagesGenerated != 1 {
		t.Errorf("images generated = %d, want 1", stats.ImagesGenerated)
	}
	if stats.ImagesFailed != 1 {
		t.Errorf("images failed = %d, want 1", stats.ImagesFailed)
	}
}
