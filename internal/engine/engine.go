package engine

// #region imports
import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/journalhq/trade-journal/assistant-engine/internal/bridge"
	"github.com/journalhq/trade-journal/assistant-engine/internal/intent"
	"github.com/journalhq/trade-journal/assistant-engine/internal/nav"
	"github.com/journalhq/trade-journal/assistant-engine/internal/plan"
	"github.com/journalhq/trade-journal/assistant-engine/internal/verify"
	"github.com/journalhq/trade-journal/assistant-engine/internal/vocab"
)

// #endregion imports

// #region recorder

// Recorder persists submitted messages and their verified outcomes.
// The sqlite command log satisfies this; tests use in-memory fakes.
type Recorder interface {
	Record(raw string, p plan.Plan, rep verify.Report) error
}

// #endregion recorder

// #region config

// Config bundles the two bounded waits of the pipeline.
type Config struct {
	Nav    nav.Config
	Verify verify.Config
}

// DefaultConfig returns standard bounds for both waits.
func DefaultConfig() Config {
	return Config{
		Nav:    nav.DefaultConfig(),
		Verify: verify.DefaultConfig(),
	}
}

// #endregion config

// #region engine

// Engine is the command interpretation and state-synchronization pipeline:
// extract → resolve → navigate → dispatch → verify. One plan applies at a
// time; a newer message abandons the in-flight plan's waits rather than
// merging with it (last-writer-wins at plan granularity).
type Engine struct {
	extractor   *intent.Extractor
	coordinator *nav.Coordinator
	dispatcher  *bridge.Dispatcher
	verifier    *verify.Verifier
	router      nav.Router
	recorder    Recorder

	planMu sync.Mutex // serializes plan application

	inflightMu     sync.Mutex
	cancelInflight context.CancelFunc
}

// New creates a fully wired engine over the given router and store registry.
func New(router nav.Router, registry *bridge.Registry, config Config) *Engine {
	return &Engine{
		extractor:   intent.NewExtractor(),
		coordinator: nav.NewCoordinator(router, config.Nav),
		dispatcher:  bridge.NewDispatcher(registry),
		verifier:    verify.NewVerifier(registry, router, config.Verify),
		router:      router,
	}
}

// SetClock pins the extractor's clock, used by replays and tests to make
// relative date ranges reproducible.
func (e *Engine) SetClock(now func() time.Time) {
	e.extractor = intent.NewExtractorWithClock(now)
}

// SetRecorder attaches a command log. Recording failures are logged, never
// surfaced to the user.
func (e *Engine) SetRecorder(r Recorder) {
	e.recorder = r
}

// #endregion engine

// #region submit

// Submit runs one user message through the whole pipeline and returns the
// verified report. When a newer Submit supersedes this one mid-wait, the
// report is abandoned and context.Canceled is returned; only the newest
// message's report reaches the user.
func (e *Engine) Submit(ctx context.Context, raw string) (verify.Report, error) {
	e.inflightMu.Lock()
	if e.cancelInflight != nil {
		e.cancelInflight()
	}
	runCtx, cancel := context.WithCancel(ctx)
	e.cancelInflight = cancel
	e.inflightMu.Unlock()
	defer cancel()

	e.planMu.Lock()
	defer e.planMu.Unlock()

	candidates := e.extractor.Extract(raw)
	p := plan.Resolve(candidates)
	log.Printf("[ENGINE] plan %s: %d candidates → %d actions", p.ID, len(candidates), len(p.Actions))

	if len(p.Actions) == 0 {
		rep := verify.NoActionReport(p.ID)
		e.record(raw, p, rep)
		return rep, nil
	}

	if navAction, ok := p.Find(vocab.CategoryNavigation); ok {
		if err := e.coordinator.Go(runCtx, navAction.Value); err != nil {
			if errors.Is(err, nav.ErrSettleTimeout) {
				// Abort the rest of the plan: store writes would target a
				// stale page.
				rep := verify.NavigationFailureReport(p, navAction.Value, e.router.Current())
				e.record(raw, p, rep)
				return rep, nil
			}
			return verify.Report{}, err
		}
	}

	e.dispatcher.Apply(runCtx, p)

	rep, err := e.verifier.Verify(runCtx, p)
	if err != nil {
		return verify.Report{}, err
	}
	e.record(raw, p, rep)
	return rep, nil
}

func (e *Engine) record(raw string, p plan.Plan, rep verify.Report) {
	if e.recorder == nil {
		return
	}
	if err := e.recorder.Record(raw, p, rep); err != nil {
		log.Printf("[ENGINE] failed to record plan %s: %v", p.ID, err)
	}
}

// #endregion submit
