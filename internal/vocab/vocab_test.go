package vocab

import (
	"testing"
	"time"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		raw      string
		want     string
		wantOK   bool
	}{
		// Already canonical
		{"canonical-dollar", CategoryDisplayMode, "dollar", DisplayDollar, true},
		{"canonical-ytd", CategoryDateRange, "ytd", RangeYTD, true},
		{"canonical-net", CategoryPnLMode, "net", PnLNet, true},
		{"canonical-statistics", CategoryNavigation, "statistics", RouteStatistics, true},

		// Synonyms
		{"synonym-r", CategoryDisplayMode, "r", DisplayRMultiple, true},
		{"synonym-risk-multiple", CategoryDisplayMode, "risk multiple", DisplayRMultiple, true},
		{"synonym-dollars", CategoryDisplayMode, "dollars", DisplayDollar, true},
		{"synonym-percent-sign", CategoryDisplayMode, "%", DisplayPercent, true},
		{"synonym-year-to-date", CategoryDateRange, "year to date", RangeYTD, true},
		{"synonym-this-year", CategoryDateRange, "this year", RangeYTD, true},
		{"synonym-all-time", CategoryDateRange, "all time", RangeAll, true},
		{"synonym-after-fees", CategoryPnLMode, "after fees", PnLNet, true},
		{"synonym-stats", CategoryNavigation, "stats", RouteStatistics, true},

		// Case and whitespace
		{"uppercase", CategoryDateRange, "  YTD ", RangeYTD, true},

		// Custom ranges
		{"custom-range", CategoryDateRange, "custom:2026-04-01:2026-08-23", "custom:2026-04-01:2026-08-23", true},

		// Rejected
		{"unknown-mode", CategoryDisplayMode, "euros", "", false},
		{"unknown-range", CategoryDateRange, "fortnight", "", false},
		{"empty", CategoryPnLMode, "", "", false},
		{"custom-end-before-start", CategoryDateRange, "custom:2026-08-23:2026-04-01", "", false},
		{"custom-malformed", CategoryDateRange, "custom:yesterday:today", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Canonicalize(tt.category, tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("value: got %q, want %q", got, tt.want)
			}
		})
	}
}

// Every accepted synonym for a value must normalize to the same token as
// every other synonym for that value.
func TestCanonicalize_SynonymRoundTrip(t *testing.T) {
	groups := map[string][]string{
		DisplayRMultiple: {"r", "r multiple", "risk multiple", "r_multiple"},
		DisplayDollar:    {"$", "usd", "dollars", "dollar"},
		RangeYTD:         {"ytd", "year to date", "this year"},
		PnLNet:           {"net", "net pnl", "after fees", "net of fees"},
	}
	categories := map[string]Category{
		DisplayRMultiple: CategoryDisplayMode,
		DisplayDollar:    CategoryDisplayMode,
		RangeYTD:         CategoryDateRange,
		PnLNet:           CategoryPnLMode,
	}

	for want, spellings := range groups {
		for _, s := range spellings {
			got, ok := Canonicalize(categories[want], s)
			if !ok {
				t.Errorf("%q: not accepted", s)
				continue
			}
			if got != want {
				t.Errorf("%q: got %q, want %q", s, got, want)
			}
		}
	}
}

func TestCustomRange(t *testing.T) {
	start := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)

	token := CustomRange(start, end)
	if token != "custom:2026-04-01:2026-08-23" {
		t.Fatalf("token: got %q", token)
	}

	gotStart, gotEnd, ok := ParseCustomRange(token)
	if !ok {
		t.Fatal("round-trip parse failed")
	}
	if !gotStart.Equal(start) || !gotEnd.Equal(end) {
		t.Errorf("dates: got %v..%v, want %v..%v", gotStart, gotEnd, start, end)
	}
}

func TestValid(t *testing.T) {
	if !Valid(CategoryDisplayMode, DisplayRMultiple) {
		t.Error("r_multiple should be valid")
	}
	// A synonym is accepted by Canonicalize but is not itself canonical.
	if Valid(CategoryDisplayMode, "r") {
		t.Error("bare r is a synonym, not canonical")
	}
	if Valid(CategoryDateRange, "fortnight") {
		t.Error("fortnight is unsupported")
	}
}
