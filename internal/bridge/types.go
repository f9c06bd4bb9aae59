package bridge

// #region imports
import (
	"context"

	"github.com/journalhq/trade-journal/assistant-engine/internal/plan"
	"github.com/journalhq/trade-journal/assistant-engine/internal/vocab"
)

// #endregion imports

// #region store-interface

// Store is one independently-owned UI state dimension. Stores register on
// mount and deregister on unmount of the owning UI region; the engine holds
// no reference beyond the registry lookup at dispatch time.
type Store interface {
	Category() vocab.Category
	Read() (string, error)
	Write(value string) error
}

// #endregion store-interface

// #region channel-interface

// Channel is the durable, replayable event channel between the dispatcher
// and stores: at most one pending action per category, replayed to the
// store that mounts next. This is what lets a command land correctly when
// the destination page's controls mount after the command was issued.
type Channel interface {
	// Publish parks value for cat, replacing any previous pending value.
	Publish(ctx context.Context, cat vocab.Category, value string) error
	// Consume pops the pending value for cat. ok is false when none is parked.
	Consume(ctx context.Context, cat vocab.Category) (value string, ok bool, err error)
	// Pending reads the parked value for cat without consuming it.
	Pending(ctx context.Context, cat vocab.Category) (value string, ok bool, err error)
}

// #endregion channel-interface

// #region delivery

// Delivery records what happened to one action at dispatch time.
// Exactly one of Delivered or Queued is true on success; neither is true
// when Err is set.
type Delivery struct {
	Action    plan.Action
	Delivered bool // written to a mounted store
	Queued    bool // parked on the channel for the next mount
	Err       error
}

// #endregion delivery
