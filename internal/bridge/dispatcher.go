package bridge

// #region imports
import (
	"context"
	"log"

	"github.com/journalhq/trade-journal/assistant-engine/internal/plan"
	"github.com/journalhq/trade-journal/assistant-engine/internal/vocab"
)

// #endregion imports

// #region dispatcher

// Dispatcher applies a resolved plan to the state stores. Actions whose
// store is mounted are written directly; the rest park on the channel and
// replay when the owning region mounts, so command issuance is decoupled
// from store availability. Navigation actions are not the dispatcher's:
// the coordinator has already handled them by the time Apply runs.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// #endregion dispatcher

// #region apply

// Apply performs exactly one write per category in the plan. Nothing is
// silently dropped: every action comes back Delivered, Queued, or with Err.
func (d *Dispatcher) Apply(ctx context.Context, p plan.Plan) []Delivery {
	var deliveries []Delivery
	for _, a := range p.Actions {
		if a.Category == vocab.CategoryNavigation {
			continue
		}
		deliveries = append(deliveries, d.applyOne(ctx, a))
	}
	return deliveries
}

func (d *Dispatcher) applyOne(ctx context.Context, a plan.Action) Delivery {
	if s, mounted := d.registry.Lookup(a.Category); mounted {
		if err := applyValue(s, a.Value); err != nil {
			log.Printf("[BRIDGE] write %s=%s failed: %v", a.Category, a.Value, err)
			return Delivery{Action: a, Err: err}
		}
		log.Printf("[BRIDGE] wrote %s=%s", a.Category, a.Value)
		return Delivery{Action: a, Delivered: true}
	}

	if err := d.registry.Channel().Publish(ctx, a.Category, a.Value); err != nil {
		return Delivery{Action: a, Err: err}
	}
	log.Printf("[BRIDGE] no store mounted for %s, parked %s on channel", a.Category, a.Value)
	return Delivery{Action: a, Queued: true}
}

// #endregion apply
