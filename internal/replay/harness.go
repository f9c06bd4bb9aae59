package replay

// #region imports
import (
	"context"
	"fmt"
	"time"

	"github.com/journalhq/trade-journal/assistant-engine/internal/bridge"
	"github.com/journalhq/trade-journal/assistant-engine/internal/engine"
	"github.com/journalhq/trade-journal/assistant-engine/internal/nav"
	"github.com/journalhq/trade-journal/assistant-engine/internal/verify"
	"github.com/journalhq/trade-journal/assistant-engine/internal/vocab"
)

// #endregion imports

// #region result-types

// MessageResult captures the outcome of replaying one message.
type MessageResult struct {
	Text     string
	Report   verify.Report
	Failures []string // expectation mismatches, empty when all held
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	Messages            int
	Confirmed           int
	Unconfirmed         int
	Mismatches          int
	ExpectationFailures int
}

// #endregion result-types

// #region run

// Run replays a fixture's message sequence through a real engine wired to
// scripted stores and a scripted router, and checks each message's report
// against the fixture's expectations.
func Run(f Fixture) (Summary, []MessageResult, error) {
	ctx := context.Background()

	routes := f.Routes
	if len(routes) == 0 {
		routes = []string{
			vocab.RouteDashboard, vocab.RouteStatistics, vocab.RouteTrades,
			vocab.RouteCalendar, vocab.RouteReports,
		}
	}
	startRoute := f.StartRoute
	if startRoute == "" {
		startRoute = vocab.RouteDashboard
	}
	router := NewScriptedRouter(startRoute, routes)

	registry := bridge.NewRegistry(bridge.NewMemoryChannel())
	for _, fs := range f.Stores {
		if fs.Unmounted {
			continue
		}
		store := NewScriptedStore(vocab.Category(fs.Category), fs.Initial, fs.Accepts)
		if err := registry.Mount(ctx, store); err != nil {
			return Summary{}, nil, fmt.Errorf("mount %s: %w", fs.Category, err)
		}
	}

	// Tight bounds: scripted settlement is immediate, so long waits only
	// slow the run down.
	config := engine.Config{
		Nav:    nav.Config{SettleTimeout: 250 * time.Millisecond},
		Verify: verify.Config{SettleDelay: 10 * time.Millisecond},
	}
	eng := engine.New(router, registry, config)

	if f.Clock != "" {
		pinned, err := time.Parse(time.RFC3339, f.Clock)
		if err != nil {
			return Summary{}, nil, fmt.Errorf("parse clock: %w", err)
		}
		eng.SetClock(func() time.Time { return pinned })
	}

	var summary Summary
	var results []MessageResult
	for _, msg := range f.Messages {
		report, err := eng.Submit(ctx, msg.Text)
		if err != nil {
			return Summary{}, nil, fmt.Errorf("submit %q: %w", msg.Text, err)
		}

		failures := checkExpectations(msg, report)
		results = append(results, MessageResult{Text: msg.Text, Report: report, Failures: failures})

		summary.Messages++
		summary.ExpectationFailures += len(failures)
		for _, r := range report.Records {
			switch r.Outcome {
			case verify.OutcomeConfirmed:
				summary.Confirmed++
			case verify.OutcomeUnconfirmed:
				summary.Unconfirmed++
			case verify.OutcomeMismatch:
				summary.Mismatches++
			}
		}
	}
	return summary, results, nil
}

// #endregion run

// #region expectations

// checkExpectations compares a report against one message's expectations.
func checkExpectations(msg FixtureMessage, report verify.Report) []string {
	var failures []string

	if report.OverallSuccess != msg.ExpectOverall {
		failures = append(failures, fmt.Sprintf(
			"overall: got %v, want %v", report.OverallSuccess, msg.ExpectOverall))
	}

	for _, exp := range msg.Expected {
		rec, found := findRecord(report, vocab.Category(exp.Category))
		if !found {
			failures = append(failures, fmt.Sprintf("%s: no action in plan", exp.Category))
			continue
		}
		if string(rec.Outcome) != exp.Outcome {
			failures = append(failures, fmt.Sprintf(
				"%s: outcome got %s, want %s", exp.Category, rec.Outcome, exp.Outcome))
		}
		if exp.Value != "" && rec.Expected != exp.Value {
			failures = append(failures, fmt.Sprintf(
				"%s: value got %s, want %s", exp.Category, rec.Expected, exp.Value))
		}
	}
	return failures
}

func findRecord(report verify.Report, cat vocab.Category) (verify.Record, bool) {
	for _, r := range report.Records {
		if r.Action.Category == cat {
			return r, true
		}
	}
	return verify.Record{}, false
}

// #endregion expectations
