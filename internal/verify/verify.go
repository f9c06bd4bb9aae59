package verify

// #region imports
import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/journalhq/trade-journal/assistant-engine/internal/bridge"
	"github.com/journalhq/trade-journal/assistant-engine/internal/nav"
	"github.com/journalhq/trade-journal/assistant-engine/internal/plan"
	"github.com/journalhq/trade-journal/assistant-engine/internal/vocab"
)

// #endregion imports

// #region verifier

// Verifier re-reads every targeted store after the settle window and
// compares against the intended canonical values. Success is observed,
// never inferred from "dispatch did not throw".
type Verifier struct {
	registry *bridge.Registry
	router   nav.Router
	config   Config
}

// NewVerifier creates a verifier over the registry and router.
func NewVerifier(registry *bridge.Registry, router nav.Router, config Config) *Verifier {
	return &Verifier{registry: registry, router: router, config: config}
}

// #endregion verifier

// #region verify

// Verify waits out the settle window, then produces one Record per action
// and the aggregate report. Returns ctx.Err() when the wait is abandoned
// because a newer plan superseded this one.
func (v *Verifier) Verify(ctx context.Context, p plan.Plan) (Report, error) {
	select {
	case <-time.After(v.config.SettleDelay):
	case <-ctx.Done():
		return Report{}, ctx.Err()
	}

	records := make([]Record, 0, len(p.Actions))
	for _, a := range p.Actions {
		records = append(records, v.verifyOne(a))
	}

	report := Compose(p.ID, records)
	log.Printf("[VERIFY] plan %s: %s", p.ID, report.SummaryText)
	return report, nil
}

func (v *Verifier) verifyOne(a plan.Action) Record {
	rec := Record{Action: a, Expected: a.Value, Settled: true}

	if a.Category == vocab.CategoryNavigation {
		rec.Observed = v.router.Current()
	} else {
		s, mounted := v.registry.Lookup(a.Category)
		if !mounted {
			rec.Outcome = OutcomeUnconfirmed
			return rec
		}
		observed, err := s.Read()
		if err != nil {
			rec.Outcome = OutcomeUnconfirmed
			return rec
		}
		rec.Observed = observed
	}

	if rec.Observed == rec.Expected {
		rec.Outcome = OutcomeConfirmed
	} else {
		rec.Outcome = OutcomeMismatch
	}
	return rec
}

// #endregion verify

// #region compose

// Compose builds the aggregate report from per-action records. The summary
// enumerates exactly which actions confirmed and which did not.
func Compose(planID string, records []Record) Report {
	var confirmed, failed []string
	for _, r := range records {
		label := r.Action.Category.Label()
		switch r.Outcome {
		case OutcomeConfirmed:
			confirmed = append(confirmed, fmt.Sprintf("%s set to %s", label, r.Expected))
		case OutcomeUnconfirmed:
			failed = append(failed, fmt.Sprintf("could not confirm %s (no control mounted)", label))
		case OutcomeMismatch:
			failed = append(failed, fmt.Sprintf("%s shows %q but %q was requested", label, r.Observed, r.Expected))
		}
	}

	var parts []string
	if len(confirmed) > 0 {
		parts = append(parts, "Done: "+strings.Join(confirmed, ", ")+".")
	}
	if len(failed) > 0 {
		parts = append(parts, "Problems: "+strings.Join(failed, "; ")+".")
	}
	if len(parts) == 0 {
		parts = append(parts, "Nothing to change.")
	}

	return Report{
		PlanID:         planID,
		Records:        records,
		OverallSuccess: len(records) > 0 && len(failed) == 0,
		SummaryText:    strings.Join(parts, " "),
	}
}

// #endregion compose

// #region failure-reports

// NavigationFailureReport covers the whole-plan abort when the route never
// settled: no store writes were attempted, so every action is unconfirmed.
func NavigationFailureReport(p plan.Plan, target, current string) Report {
	records := make([]Record, 0, len(p.Actions))
	for _, a := range p.Actions {
		rec := Record{Action: a, Expected: a.Value, Settled: false, Outcome: OutcomeUnconfirmed}
		if a.Category == vocab.CategoryNavigation {
			rec.Observed = current
		}
		records = append(records, rec)
	}
	return Report{
		PlanID:         p.ID,
		Records:        records,
		OverallSuccess: false,
		SummaryText:    fmt.Sprintf("Navigation to %s did not settle in time; no changes were applied.", target),
	}
}

// NoActionReport is returned when extraction found nothing actionable.
// Unmatched dimensions are left as-is; this is graceful degradation, not
// an error.
func NoActionReport(planID string) Report {
	return Report{
		PlanID:         planID,
		OverallSuccess: false,
		SummaryText:    "No dashboard command recognized; nothing was changed.",
	}
}

// #endregion failure-reports
