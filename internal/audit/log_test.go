package audit

import (
	"path/filepath"
	"testing"

	"github.com/journalhq/trade-journal/assistant-engine/internal/plan"
	"github.com/journalhq/trade-journal/assistant-engine/internal/verify"
	"github.com/journalhq/trade-journal/assistant-engine/internal/vocab"
)

func openTestLog(t *testing.T) *Log {
	t.Helper()
	l, err := NewLog(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestRecordAndListRecent(t *testing.T) {
	l := openTestLog(t)

	p := plan.Plan{
		ID: "plan-1",
		Actions: []plan.Action{
			{Category: vocab.CategoryNavigation, Value: "statistics"},
			{Category: vocab.CategoryDateRange, Value: "ytd"},
		},
	}
	rep := verify.Report{
		PlanID: p.ID,
		Records: []verify.Record{
			{Action: p.Actions[0], Expected: "statistics", Observed: "statistics", Settled: true, Outcome: verify.OutcomeConfirmed},
			{Action: p.Actions[1], Expected: "ytd", Observed: "month", Settled: true, Outcome: verify.OutcomeMismatch},
		},
		OverallSuccess: false,
		SummaryText:    `Problems: date range shows "month" but "ytd" was requested.`,
	}

	if err := l.Record("go to stats for ytd", p, rep); err != nil {
		t.Fatal(err)
	}

	entries, err := l.ListRecent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries: got %d, want 1", len(entries))
	}
	e := entries[0]
	if e.PlanID != "plan-1" || e.RawText != "go to stats for ytd" || e.OverallOK {
		t.Errorf("entry: %+v", e)
	}
	if e.Summary != rep.SummaryText {
		t.Errorf("summary: got %q", e.Summary)
	}
	if len(e.Actions) != 2 {
		t.Fatalf("actions: got %d, want 2", len(e.Actions))
	}
	if e.Actions[0].Category != "navigation" || e.Actions[0].Outcome != "confirmed" || !e.Actions[0].Settled {
		t.Errorf("first action: %+v", e.Actions[0])
	}
	if e.Actions[1].Observed != "month" || e.Actions[1].Outcome != "mismatch" {
		t.Errorf("second action: %+v", e.Actions[1])
	}
}

func TestListRecent_LimitAndOrder(t *testing.T) {
	l := openTestLog(t)

	for i, text := range []string{"first", "second", "third"} {
		p := plan.Plan{ID: string(rune('a' + i))}
		rep := verify.Report{PlanID: p.ID, OverallSuccess: false, SummaryText: "No dashboard command recognized; nothing was changed."}
		if err := l.Record(text, p, rep); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := l.ListRecent(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries: got %d, want 2", len(entries))
	}
	if entries[0].RawText != "third" {
		t.Errorf("newest first expected, got %q", entries[0].RawText)
	}
}

// Observed is stored as NULL when the store could not be read, and comes back
// as the empty string.
func TestRecord_EmptyObservedRoundTrip(t *testing.T) {
	l := openTestLog(t)

	p := plan.Plan{
		ID:      "plan-null",
		Actions: []plan.Action{{Category: vocab.CategoryPnLMode, Value: "net"}},
	}
	rep := verify.Report{
		PlanID: p.ID,
		Records: []verify.Record{
			{Action: p.Actions[0], Expected: "net", Observed: "", Settled: true, Outcome: verify.OutcomeUnconfirmed},
		},
		SummaryText: "Problems: could not confirm P&L mode (no control mounted).",
	}
	if err := l.Record("after fees please", p, rep); err != nil {
		t.Fatal(err)
	}

	entries, err := l.ListRecent(1)
	if err != nil {
		t.Fatal(err)
	}
	if got := entries[0].Actions[0].Observed; got != "" {
		t.Errorf("observed: got %q, want empty", got)
	}
}
