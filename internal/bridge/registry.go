package bridge

// #region imports
import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/journalhq/trade-journal/assistant-engine/internal/vocab"
)

// #endregion imports

// #region registry

// Registry tracks which stores are currently mounted and replays pending
// channel actions to stores as they mount. The registry never owns store
// lifetime; the owning UI region mounts and unmounts.
type Registry struct {
	mu      sync.Mutex
	stores  map[vocab.Category]Store
	channel Channel
}

// NewRegistry creates a registry over the given pending-action channel.
func NewRegistry(channel Channel) *Registry {
	return &Registry{
		stores:  make(map[vocab.Category]Store),
		channel: channel,
	}
}

// Channel returns the registry's pending-action channel.
func (r *Registry) Channel() Channel {
	return r.channel
}

// #endregion registry

// #region mount

// Mount registers a store and replays the most recent unconsumed action for
// its category, if one was published before the store existed.
func (r *Registry) Mount(ctx context.Context, s Store) error {
	cat := s.Category()

	r.mu.Lock()
	r.stores[cat] = s
	r.mu.Unlock()

	value, ok, err := r.channel.Consume(ctx, cat)
	if err != nil {
		return fmt.Errorf("mount %s: %w", cat, err)
	}
	if !ok {
		return nil
	}
	log.Printf("[BRIDGE] replay pending %s=%s to newly mounted store", cat, value)
	if err := applyValue(s, value); err != nil {
		return fmt.Errorf("mount %s: replay %q: %w", cat, value, err)
	}
	return nil
}

// Unmount deregisters the store for cat. Actions dispatched while no store
// is mounted park on the channel until the next Mount.
func (r *Registry) Unmount(cat vocab.Category) {
	r.mu.Lock()
	delete(r.stores, cat)
	r.mu.Unlock()
}

// Lookup resolves the currently mounted store for cat.
func (r *Registry) Lookup(cat vocab.Category) (Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stores[cat]
	return s, ok
}

// #endregion mount

// #region apply-value

// applyValue writes value to s unless the store already holds it: writing
// the current value is a successful no-op, which keeps per-action
// application idempotent at the store level.
func applyValue(s Store, value string) error {
	if cur, err := s.Read(); err == nil && cur == value {
		return nil
	}
	return s.Write(value)
}

// #endregion apply-value
