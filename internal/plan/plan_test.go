package plan

import (
	"testing"

	"github.com/journalhq/trade-journal/assistant-engine/internal/intent"
	"github.com/journalhq/trade-journal/assistant-engine/internal/vocab"
)

func candidate(cat vocab.Category, value string, conf float32, spanLen int) intent.Candidate {
	return intent.Candidate{
		Category:   cat,
		Value:      value,
		Confidence: conf,
		Span:       intent.Span{Start: 0, End: spanLen},
		Phrase:     value,
	}
}

func TestResolve_OnePerCategory(t *testing.T) {
	candidates := []intent.Candidate{
		candidate(vocab.CategoryDisplayMode, "r", 0.5, 1),
		candidate(vocab.CategoryDisplayMode, "r multiple", 0.9, 10),
		candidate(vocab.CategoryDisplayMode, "risk multiple", 0.95, 13),
		candidate(vocab.CategoryDateRange, "ytd", 0.9, 3),
	}

	p := Resolve(candidates)

	if len(p.Actions) != 2 {
		t.Fatalf("expected 2 actions, got %d: %v", len(p.Actions), p.Actions)
	}
	display, ok := p.Find(vocab.CategoryDisplayMode)
	if !ok {
		t.Fatal("expected a display mode action")
	}
	if display.Value != vocab.DisplayRMultiple {
		t.Errorf("display value: got %q, want %q", display.Value, vocab.DisplayRMultiple)
	}
}

func TestResolve_TieBreaks(t *testing.T) {
	tests := []struct {
		name       string
		candidates []intent.Candidate
		want       string
	}{
		{
			"higher-confidence-wins",
			[]intent.Candidate{
				candidate(vocab.CategoryDateRange, "quarter", 0.5, 7),
				candidate(vocab.CategoryDateRange, "ytd", 0.9, 3),
			},
			vocab.RangeYTD,
		},
		{
			"longer-span-wins-on-tied-confidence",
			[]intent.Candidate{
				candidate(vocab.CategoryDateRange, "week", 0.7, 4),
				candidate(vocab.CategoryDateRange, "this month", 0.7, 10),
			},
			vocab.RangeMonth,
		},
		{
			"first-seen-wins-on-full-tie",
			[]intent.Candidate{
				candidate(vocab.CategoryPnLMode, "gross", 0.7, 5),
				candidate(vocab.CategoryPnLMode, "netty", 0.7, 5), // invalid, dropped anyway
				candidate(vocab.CategoryPnLMode, "net", 0.7, 5),
			},
			vocab.PnLGross,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Resolve(tt.candidates)
			cat := tt.candidates[0].Category
			action, ok := p.Find(cat)
			if !ok {
				t.Fatalf("expected an action for %s", cat)
			}
			if action.Value != tt.want {
				t.Errorf("value: got %q, want %q", action.Value, tt.want)
			}
		})
	}
}

func TestResolve_FirstSeenTieRequiresEqualSpan(t *testing.T) {
	// Same confidence, later candidate has a longer span: later wins.
	candidates := []intent.Candidate{
		candidate(vocab.CategoryPnLMode, "net", 0.9, 3),
		candidate(vocab.CategoryPnLMode, "gross pnl", 0.9, 9),
	}
	p := Resolve(candidates)
	action, _ := p.Find(vocab.CategoryPnLMode)
	if action.Value != vocab.PnLGross {
		t.Errorf("value: got %q, want %q", action.Value, vocab.PnLGross)
	}
}

func TestResolve_DropsInvalidValues(t *testing.T) {
	candidates := []intent.Candidate{
		candidate(vocab.CategoryDateRange, "fortnight", 0.99, 9),
		candidate(vocab.CategoryDisplayMode, "dollar", 0.8, 6),
	}

	p := Resolve(candidates)

	if _, ok := p.Find(vocab.CategoryDateRange); ok {
		t.Error("unsupported date range should be dropped, dimension left unchanged")
	}
	if _, ok := p.Find(vocab.CategoryDisplayMode); !ok {
		t.Error("valid sibling candidate should survive")
	}
}

func TestResolve_CanonicalizesSynonyms(t *testing.T) {
	// Both spellings must yield the identical action.
	a := Resolve([]intent.Candidate{candidate(vocab.CategoryDateRange, "ytd", 0.9, 3)})
	b := Resolve([]intent.Candidate{candidate(vocab.CategoryDateRange, "year to date", 0.9, 12)})

	actionA, _ := a.Find(vocab.CategoryDateRange)
	actionB, _ := b.Find(vocab.CategoryDateRange)
	if actionA != actionB {
		t.Errorf("synonyms resolved differently: %v vs %v", actionA, actionB)
	}
}

func TestResolve_NavigationFirst(t *testing.T) {
	candidates := []intent.Candidate{
		candidate(vocab.CategoryPnLMode, "net", 0.7, 3),
		candidate(vocab.CategoryDateRange, "ytd", 0.9, 3),
		candidate(vocab.CategoryNavigation, "statistics", 0.8, 10),
	}

	p := Resolve(candidates)

	if len(p.Actions) != 3 {
		t.Fatalf("expected 3 actions, got %d", len(p.Actions))
	}
	if p.Actions[0].Category != vocab.CategoryNavigation {
		t.Errorf("first action: got %s, want navigation", p.Actions[0].Category)
	}
}

func TestResolve_EmptyCandidates(t *testing.T) {
	p := Resolve(nil)
	if len(p.Actions) != 0 {
		t.Errorf("expected empty plan, got %v", p.Actions)
	}
	if p.ID == "" {
		t.Error("plan should still carry an ID")
	}
}
