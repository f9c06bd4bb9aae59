package nav

// #region imports
import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// #endregion imports

// #region router-interface

// Router abstracts the dashboard's routing subsystem. Current returns the
// active route target; Navigate issues a route change; OnRouteSettled
// registers a callback fired once a destination has mounted its controlled
// state stores and is readable. The returned cancel func removes the
// subscription.
type Router interface {
	Current() string
	Navigate(ctx context.Context, target string) error
	OnRouteSettled(fn func(route string)) (cancel func())
}

// #endregion router-interface

// #region errors

// ErrSettleTimeout reports that a route change was issued but the
// destination never signalled readiness within the bounded wait.
var ErrSettleTimeout = errors.New("navigation did not settle within timeout")

// #endregion errors

// #region config

// Config holds the navigation settlement bound.
type Config struct {
	SettleTimeout time.Duration
}

// DefaultConfig returns the standard settlement bound.
func DefaultConfig() Config {
	return Config{SettleTimeout: 3 * time.Second}
}

// #endregion config

// #region coordinator

// Coordinator issues route changes and waits on the settlement signal
// instead of a tuned delay, so downstream store writes never target a
// stale page.
type Coordinator struct {
	router Router
	config Config
}

// NewCoordinator creates a coordinator over the given router.
func NewCoordinator(router Router, config Config) *Coordinator {
	return &Coordinator{router: router, config: config}
}

// Go navigates to target and blocks until the destination settles.
// Navigating to the current route is a no-op with immediate settlement.
// Returns ErrSettleTimeout when the readiness signal does not arrive in
// time, or ctx.Err() when the plan is abandoned mid-wait.
func (c *Coordinator) Go(ctx context.Context, target string) error {
	if c.router.Current() == target {
		log.Printf("[NAV] already on %s, settled immediately", target)
		return nil
	}

	// Subscribe before issuing the change so a fast settle is not missed.
	settled := make(chan string, 1)
	cancel := c.router.OnRouteSettled(func(route string) {
		select {
		case settled <- route:
		default:
		}
	})
	defer cancel()

	if err := c.router.Navigate(ctx, target); err != nil {
		return fmt.Errorf("navigate to %s: %w", target, err)
	}

	timer := time.NewTimer(c.config.SettleTimeout)
	defer timer.Stop()

	for {
		select {
		case route := <-settled:
			if route == target {
				log.Printf("[NAV] settled on %s", target)
				return nil
			}
			// Settlement for a different route: keep waiting for ours.
		case <-timer.C:
			return fmt.Errorf("navigate to %s: %w", target, ErrSettleTimeout)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// #endregion coordinator
