package main

// #region imports
import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/journalhq/trade-journal/assistant-engine/internal/audit"
	"github.com/journalhq/trade-journal/assistant-engine/internal/bridge"
	"github.com/journalhq/trade-journal/assistant-engine/internal/engine"
	"github.com/journalhq/trade-journal/assistant-engine/internal/vocab"
)

// #endregion imports

// #region main

func main() {
	dbPath := envOr("ASSISTANT_DB", "assistant_log.db")
	natsURL := os.Getenv("ASSISTANT_NATS_URL")

	ctx := context.Background()

	commandLog, err := audit.NewLog(dbPath)
	if err != nil {
		log.Fatalf("failed to open command log: %v", err)
	}
	defer commandLog.Close()

	// Pending-action channel: in-process by default, NATS KV when a
	// gateway consumes actions out of process.
	var channel bridge.Channel = bridge.NewMemoryChannel()
	if natsURL != "" {
		nc, err := nats.Connect(natsURL)
		if err != nil {
			log.Fatalf("failed to connect to NATS at %s: %v", natsURL, err)
		}
		defer nc.Drain()
		js, err := jetstream.New(nc)
		if err != nil {
			log.Fatalf("failed to get JetStream: %v", err)
		}
		channel, err = bridge.NewKVChannel(ctx, js, envOr("ASSISTANT_BUCKET", "assistant_pending"))
		if err != nil {
			log.Fatalf("failed to bind pending-action bucket: %v", err)
		}
	}

	registry := bridge.NewRegistry(channel)
	mountDemoStores(ctx, registry)

	router := newLocalRouter(vocab.RouteDashboard)
	eng := engine.New(router, registry, engine.DefaultConfig())
	eng.SetRecorder(commandLog)

	fmt.Println("Trade-journal assistant ready.")
	fmt.Printf("  Log: %s", dbPath)
	if natsURL != "" {
		fmt.Printf(" | NATS: %s", natsURL)
	}
	fmt.Println()
	fmt.Println("Type a command (or 'quit' to exit):")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("[%s] > ", router.Current())
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if message == "quit" || message == "exit" {
			break
		}

		report, err := eng.Submit(ctx, message)
		if err != nil {
			log.Printf("submit error: %v", err)
			continue
		}

		fmt.Printf("\n%s\n", report.SummaryText)
		for _, r := range report.Records {
			fmt.Printf("  %-12s %-11s expected=%s observed=%s\n",
				r.Action.Category, r.Outcome, r.Expected, valueOrDash(r.Observed))
		}
		fmt.Println()
	}
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion main

// #region demo-stores

// memStore is a plain in-memory store for the demo dashboard dimensions.
type memStore struct {
	mu       sync.Mutex
	category vocab.Category
	value    string
}

func (s *memStore) Category() vocab.Category { return s.category }

func (s *memStore) Read() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, nil
}

func (s *memStore) Write(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
	return nil
}

func mountDemoStores(ctx context.Context, registry *bridge.Registry) {
	stores := []*memStore{
		{category: vocab.CategoryDisplayMode, value: vocab.DisplayDollar},
		{category: vocab.CategoryDateRange, value: vocab.RangeMonth},
		{category: vocab.CategoryPnLMode, value: vocab.PnLNet},
	}
	for _, s := range stores {
		if err := registry.Mount(ctx, s); err != nil {
			log.Fatalf("failed to mount %s store: %v", s.category, err)
		}
	}
}

// #endregion demo-stores

// #region local-router

// localRouter navigates instantly between the dashboard's routes and fires
// the settled signal as soon as the route flips.
type localRouter struct {
	mu      sync.Mutex
	current string
	subs    map[int]func(string)
	nextSub int
}

func newLocalRouter(start string) *localRouter {
	return &localRouter{current: start, subs: make(map[int]func(string))}
}

func (r *localRouter) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

func (r *localRouter) Navigate(_ context.Context, target string) error {
	r.mu.Lock()
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

func (r *localRouter) OnRouteSettled(fn func(route string)) func() {
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

// #endregion local-router
