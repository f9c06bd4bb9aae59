package bridge

// #region imports
import (
	"context"
	"sync"

	"github.com/journalhq/trade-journal/assistant-engine/internal/vocab"
)

// #endregion imports

// #region memory-channel

// MemoryChannel is the in-process Channel used when the engine and the
// dashboard stores share one process.
type MemoryChannel struct {
	mu      sync.Mutex
	pending map[vocab.Category]string
}

// NewMemoryChannel creates an empty in-process channel.
func NewMemoryChannel() *MemoryChannel {
	return &MemoryChannel{pending: make(map[vocab.Category]string)}
}

// Publish parks value for cat, replacing any previous pending value.
func (c *MemoryChannel) Publish(_ context.Context, cat vocab.Category, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[cat] = value
	return nil
}

// Consume pops the pending value for cat.
func (c *MemoryChannel) Consume(_ context.Context, cat vocab.Category) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.pending[cat]
	if ok {
		delete(c.pending, cat)
	}
	return value, ok, nil
}

// Pending reads the parked value for cat without consuming it.
func (c *MemoryChannel) Pending(_ context.Context, cat vocab.Category) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.pending[cat]
	return value, ok, nil
}

// #endregion memory-channel
