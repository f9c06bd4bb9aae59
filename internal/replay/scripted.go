package replay

// #region imports
import (
	"context"
	"sync"

	"github.com/journalhq/trade-journal/assistant-engine/internal/vocab"
)

// #endregion imports

// #region scripted-store

// ScriptedStore is a deterministic in-memory store with an optional
// restricted accepted vocabulary. A restricted store reproduces a dashboard
// control that silently ignores tokens outside its own list — the exact
// defect class the verifier must surface as a mismatch rather than report
// as success.
type ScriptedStore struct {
	mu       sync.Mutex
	category vocab.Category
	value    string
	accepts  map[string]bool // nil accepts everything
}

// NewScriptedStore creates a store holding initial. accepts of nil or empty
// means every value is accepted.
func NewScriptedStore(cat vocab.Category, initial string, accepts []string) *ScriptedStore {
	var set map[string]bool
	if len(accepts) > 0 {
		set = make(map[string]bool, len(accepts))
		for _, a := range accepts {
			set[a] = true
		}
	}
	return &ScriptedStore{category: cat, value: initial, accepts: set}
}

// Category returns the dimension this store owns.
func (s *ScriptedStore) Category() vocab.Category {
	return s.category
}

// Read returns the current value.
func (s *ScriptedStore) Read() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, nil
}

// Write sets the value. Tokens outside the accepted list are ignored
// without error, the way a rendered control ignores an unknown token.
func (s *ScriptedStore) Write(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.accepts != nil && !s.accepts[value] {
		return nil
	}
	s.value = value
	return nil
}

// #endregion scripted-store

// #region scripted-router

// ScriptedRouter settles immediately after navigating to a known route and
// never settles on an unknown one, which drives the timeout path.
type ScriptedRouter struct {
	mu      sync.Mutex
	current string
	known   map[string]bool
	subs    map[int]func(string)
	nextSub int
}

// NewScriptedRouter creates a router at start that knows the given routes.
func NewScriptedRouter(start string, known []string) *ScriptedRouter {
	set := make(map[string]bool, len(known))
	for _, r := range known {
		set[r] = true
	}
	return &ScriptedRouter{current: start, known: set, subs: make(map[int]func(string))}
}

// Current returns the active route.
func (r *ScriptedRouter) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Navigate changes the route and fires the settled signal asynchronously.
// Unknown targets leave the route unchanged and never settle.
func (r *ScriptedRouter) Navigate(_ context.Context, target string) error {
	r.mu.Lock()
	if !r.known[target] {
		r.mu.Unlock()
		return nil
	}
	r.current = target
	subs := make([]func(string), 0, len(r.subs))
	for _, fn := range r.subs {
		subs = append(subs, fn)
	}
	r.mu.Unlock()

	go func() {
		for _, fn := range subs {
			fn(target)
		}
	}()
	return nil
}

// OnRouteSettled registers a settlement callback.
func (r *ScriptedRouter) OnRouteSettled(fn func(route string)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subs, id)
	}
}

// #endregion scripted-router
