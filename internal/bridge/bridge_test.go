package bridge

import (
	"context"
	"sync"
	"testing"

	"github.com/journalhq/trade-journal/assistant-engine/internal/plan"
	"github.com/journalhq/trade-journal/assistant-engine/internal/vocab"
)

// countingStore records how many writes actually landed.
type countingStore struct {
	mu       sync.Mutex
	category vocab.Category
	value    string
	writes   int
}

func (s *countingStore) Category() vocab.Category { return s.category }

func (s *countingStore) Read() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, nil
}

func (s *countingStore) Write(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
	s.writes++
	return nil
}

func (s *countingStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func displayPlan(value string) plan.Plan {
	return plan.Plan{
		ID:      "test-plan",
		Actions: []plan.Action{{Category: vocab.CategoryDisplayMode, Value: value}},
	}
}

func TestMemoryChannel(t *testing.T) {
	ctx := context.Background()
	ch := NewMemoryChannel()

	if _, ok, _ := ch.Pending(ctx, vocab.CategoryDateRange); ok {
		t.Fatal("fresh channel should have nothing pending")
	}

	// Second publish replaces the first: at most one pending per category.
	if err := ch.Publish(ctx, vocab.CategoryDateRange, "week"); err != nil {
		t.Fatal(err)
	}
	if err := ch.Publish(ctx, vocab.CategoryDateRange, "ytd"); err != nil {
		t.Fatal(err)
	}

	value, ok, err := ch.Pending(ctx, vocab.CategoryDateRange)
	if err != nil || !ok || value != "ytd" {
		t.Fatalf("pending: got (%q, %v, %v)", value, ok, err)
	}

	value, ok, err = ch.Consume(ctx, vocab.CategoryDateRange)
	if err != nil || !ok || value != "ytd" {
		t.Fatalf("consume: got (%q, %v, %v)", value, ok, err)
	}
	if _, ok, _ := ch.Consume(ctx, vocab.CategoryDateRange); ok {
		t.Fatal("second consume should find nothing")
	}
}

func TestDispatcher_WritesMountedStore(t *testing.T) {
	ctx := context.Background()
	registry := NewRegistry(NewMemoryChannel())
	store := &countingStore{category: vocab.CategoryDisplayMode, value: "dollar"}
	if err := registry.Mount(ctx, store); err != nil {
		t.Fatal(err)
	}

	deliveries := NewDispatcher(registry).Apply(ctx, displayPlan("r_multiple"))

	if len(deliveries) != 1 || !deliveries[0].Delivered {
		t.Fatalf("deliveries: got %+v", deliveries)
	}
	if got, _ := store.Read(); got != "r_multiple" {
		t.Errorf("store value: got %q", got)
	}
}

// Writing the value the store already holds is a successful no-op.
func TestDispatcher_IdempotentApplication(t *testing.T) {
	ctx := context.Background()
	registry := NewRegistry(NewMemoryChannel())
	store := &countingStore{category: vocab.CategoryDisplayMode, value: "dollar"}
	if err := registry.Mount(ctx, store); err != nil {
		t.Fatal(err)
	}
	d := NewDispatcher(registry)

	first := d.Apply(ctx, displayPlan("percent"))
	second := d.Apply(ctx, displayPlan("percent"))

	if !first[0].Delivered || !second[0].Delivered {
		t.Fatalf("both applications should report delivered: %+v / %+v", first, second)
	}
	if got, _ := store.Read(); got != "percent" {
		t.Errorf("store value: got %q", got)
	}
	if store.writeCount() != 1 {
		t.Errorf("write count: got %d, want 1 (re-apply must be a no-op)", store.writeCount())
	}
}

func TestDispatcher_ParksWhenUnmounted(t *testing.T) {
	ctx := context.Background()
	registry := NewRegistry(NewMemoryChannel())
	d := NewDispatcher(registry)

	deliveries := d.Apply(ctx, displayPlan("percent"))

	if len(deliveries) != 1 || !deliveries[0].Queued || deliveries[0].Delivered {
		t.Fatalf("deliveries: got %+v", deliveries)
	}
	value, ok, _ := registry.Channel().Pending(ctx, vocab.CategoryDisplayMode)
	if !ok || value != "percent" {
		t.Fatalf("pending: got (%q, %v)", value, ok)
	}
}

// A store mounting after dispatch replays the parked action.
func TestRegistry_ReplayOnMount(t *testing.T) {
	ctx := context.Background()
	registry := NewRegistry(NewMemoryChannel())
	NewDispatcher(registry).Apply(ctx, displayPlan("r_multiple"))

	store := &countingStore{category: vocab.CategoryDisplayMode, value: "dollar"}
	if err := registry.Mount(ctx, store); err != nil {
		t.Fatal(err)
	}

	if got, _ := store.Read(); got != "r_multiple" {
		t.Errorf("store value after replay: got %q", got)
	}
	if _, ok, _ := registry.Channel().Pending(ctx, vocab.CategoryDisplayMode); ok {
		t.Error("pending action should be consumed by the mount replay")
	}
}

func TestRegistry_UnmountParksLaterActions(t *testing.T) {
	ctx := context.Background()
	registry := NewRegistry(NewMemoryChannel())
	store := &countingStore{category: vocab.CategoryDisplayMode, value: "dollar"}
	if err := registry.Mount(ctx, store); err != nil {
		t.Fatal(err)
	}
	registry.Unmount(vocab.CategoryDisplayMode)

	deliveries := NewDispatcher(registry).Apply(ctx, displayPlan("percent"))

	if !deliveries[0].Queued {
		t.Fatalf("expected queued delivery, got %+v", deliveries[0])
	}
	if got, _ := store.Read(); got != "dollar" {
		t.Errorf("unmounted store must not be written, got %q", got)
	}
}

func TestDispatcher_SkipsNavigation(t *testing.T) {
	ctx := context.Background()
	registry := NewRegistry(NewMemoryChannel())
	p := plan.Plan{
		ID: "test-plan",
		Actions: []plan.Action{
			{Category: vocab.CategoryNavigation, Value: "statistics"},
			{Category: vocab.CategoryDateRange, Value: "ytd"},
		},
	}

	deliveries := NewDispatcher(registry).Apply(ctx, p)

	if len(deliveries) != 1 {
		t.Fatalf("expected 1 delivery (navigation skipped), got %d", len(deliveries))
	}
	if deliveries[0].Action.Category != vocab.CategoryDateRange {
		t.Errorf("delivery category: got %s", deliveries[0].Action.Category)
	}
}
