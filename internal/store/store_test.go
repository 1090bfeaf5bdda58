package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	s.DB().SetMaxOpenConns(1)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestMigrationsCreateTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{"global_sequence", "llm_request_events", "lesson_events"} {
		var name string
		err := s.DB().QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s := openTestStore(t)
	if err := migrate(context.Background(), s.DB()); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if got != want {
			t.Fatalf("sequence = %d, want %d", got, want)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"lesson", "recommend", "lesson"} {
		errMsg := ""
		if i == 1 {
			errMsg = "boom"
		}
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-3-flash-preview",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    int64(200 * (i + 1)),
			Success:      i != 1,
			ErrorMessage: errMsg,
			RequestBody:  "[user]\nhello",
			ResponseBody: `{"ok":true}`,
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
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Fatalf("expected newest first, got sequences %d, %d", events[0].Sequence, events[1].Sequence)
	}
	if events[1].Success || events[1].ErrorMessage != "boom" {
		t.Fatalf("expected failed recommend event, got %+v", events[1])
	}
	if events[2].RequestBody != "[user]\nhello" {
		t.Fatalf("request body = %q", events[2].RequestBody)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limit: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 events with limit, got %d", len(limited))
	}

	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: events[1].Sequence})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 1 || after[0].ID != events[0].ID {
		t.Fatalf("expected only the newest event after sequence %d, got %+v", events[1].Sequence, after)
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	missing, err := repo.GetLLMEvent(ctx, 42)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "lesson", Success: true}); err != nil {
		t.Fatalf("append: %v", err)
	}
	events, _ := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.Purpose != "lesson" || !e.Success {
		t.Fatalf("unexpected event: %+v", e)
	}
	if time.Since(e.Timestamp) > time.Minute {
		t.Fatalf("timestamp not recent: %v", e.Timestamp)
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	rows := []LLMRequestEventData{
		{Model: "gemini-3-flash-preview", Purpose: "lesson", InputTokens: 100, OutputTokens: 400, LatencyMs: 100},
		{Model: "gemini-3-flash-preview", Purpose: "lesson", InputTokens: 200, OutputTokens: 600, LatencyMs: 300},
		{Model: "gpt-4o-mini", Purpose: "recommend", InputTokens: 10, OutputTokens: 20, LatencyMs: 50},
	}
	for _, r := range rows {
		if err := repo.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	lesson := byPurpose[0]
	if lesson.Purpose != "lesson" || lesson.Calls != 2 || lesson.InputTokens != 300 || lesson.OutputTokens != 1000 || lesson.AvgLatencyMs != 200 {
		t.Fatalf("unexpected lesson usage: %+v", lesson)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("by model: %v", err)
	}
	if len(byModel) != 2 || byModel[1].Model != "gpt-4o-mini" || byModel[1].Calls != 1 {
		t.Fatalf("unexpected model usage: %+v", byModel)
	}
}

func TestLessonEventsAndDailyXP(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, xp := range []int{200, 133} {
		err := repo.AppendLessonEvent(ctx, LessonEventData{
			SessionID: "s1",
			LessonID:  "l1",
			Domain:    "Marketing",
			Topic:     "Market Research Basics",
			Title:     "Market Research Basics",
			Score:     3,
			Total:     3,
			XP:        xp,
		})
		if err != nil {
			t.Fatalf("append lesson: %v", err)
		}
	}

	events, err := repo.QueryLessonEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query lessons: %v", err)
	}
	if len(events) != 2 || events[0].XP != 133 {
		t.Fatalf("unexpected lesson events: %+v", events)
	}

	now := time.Now()
	days, err := repo.DailyXP(ctx, now.AddDate(0, 0, -6), 7)
	if err != nil {
		t.Fatalf("daily xp: %v", err)
	}
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	for i, d := range days[:6] {
		if d.XP != 0 {
			t.Fatalf("day %d: expected 0 XP, got %d", i, d.XP)
		}
	}
	if days[6].XP != 333 {
		t.Fatalf("today: expected 333 XP, got %d", days[6].XP)
	}
	if !days[6].Day.Equal(startOfDay(now)) {
		t.Fatalf("last bucket = %v, want %v", days[6].Day, startOfDay(now))
	}
}

func TestDailyXPZeroDays(t *testing.T) {
	s := openTestStore(t)
	days, err := s.EventRepo().DailyXP(context.Background(), time.Now(), 0)
	if err != nil {
		t.Fatalf("daily xp: %v", err)
	}
	if days != nil {
		t.Fatalf("expected nil, got %v", days)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	_ = repo.AppendLLMRequest(ctx, LLMRequestEventData{Purpose: "lesson"})
	_ = repo.AppendLessonEvent(ctx, LessonEventData{Domain: "Finance", Topic: "Budgeting", XP: 50})

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	llmEvents, _ := repo.QueryLLMEvents(ctx, QueryOpts{})
	lessonEvents, _ := repo.QueryLessonEvents(ctx, QueryOpts{})
	if len(llmEvents) != 0 || len(lessonEvents) != 0 {
		t.Fatalf("expected empty log, got %d llm and %d lesson events", len(llmEvents), len(lessonEvents))
	}

	seq, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if seq != 1 {
		t.Fatalf("expected sequence to restart at 1, got %d", seq)
	}
}

func TestRangeClause(t *testing.T) {
	from := time.UnixMilli(1_700_000_000_000)
	tests := []struct {
		name      string
		opts      QueryOpts
		wantWhere string
		wantArgs  int
	}{
		{"no filters", QueryOpts{}, "", 0},
		{"after only", QueryOpts{After: 3}, " WHERE sequence > ?", 1},
		{"sequence window and start", QueryOpts{After: 3, Before: 9, From: from}, " WHERE sequence > ? AND sequence < ? AND timestamp >= ?", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.opts.rangeClause()
			if where != tt.wantWhere {
				t.Errorf("where = %q, want %q", where, tt.wantWhere)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("args = %v, want %d", args, tt.wantArgs)
			}
		})
	}
}
