package verify

// #region imports
import (
	"time"

	"github.com/journalhq/trade-journal/assistant-engine/internal/plan"
)

// #endregion imports

// #region outcome

// Outcome is the observed result for one action after the settle window.
type Outcome string

const (
	// OutcomeConfirmed: observed value equals the expected canonical value.
	OutcomeConfirmed Outcome = "confirmed"
	// OutcomeUnconfirmed: the category's store was unreadable, typically
	// because its UI region never mounted.
	OutcomeUnconfirmed Outcome = "unconfirmed"
	// OutcomeMismatch: observed differs from expected after settle. This is
	// a defect signal (e.g. a store vocabulary that rejects a canonical
	// token) and is never hidden behind an optimistic success message.
	OutcomeMismatch Outcome = "mismatch"
)

// #endregion outcome

// #region record

// Record is the ground truth for one action: what was intended, what was
// actually observed, and whether the settle window completed.
type Record struct {
	Action   plan.Action
	Expected string
	Observed string // empty when the store was unreadable
	Settled  bool
	Outcome  Outcome
}

// #endregion record

// #region report

// Report is the aggregate result delivered back to the chat layer.
// OverallSuccess is true only when every action was observed to succeed.
type Report struct {
	PlanID         string
	Records        []Record
	OverallSuccess bool
	SummaryText    string
}

// #endregion report

// #region config

// Config bounds the post-write verification re-read.
type Config struct {
	// SettleDelay bounds worst-case asynchronous propagation through
	// rendering before the re-read.
	SettleDelay time.Duration
}

// DefaultConfig returns the standard settle window.
func DefaultConfig() Config {
	return Config{SettleDelay: 150 * time.Millisecond}
}

// #endregion config
