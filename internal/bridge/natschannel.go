package bridge

// #region imports
import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/journalhq/trade-journal/assistant-engine/internal/vocab"
)

// #endregion imports

// #region kv-channel

// KVChannel backs the pending-action channel with a NATS JetStream
// key-value bucket keyed by category, for deployments where the dashboard
// gateway consumes actions in a separate process. KV last-value-per-key
// semantics match the at-most-one-pending-action contract directly.
type KVChannel struct {
	kv jetstream.KeyValue
}

// NewKVChannel binds to (or creates) the pending-action bucket.
func NewKVChannel(ctx context.Context, js jetstream.JetStream, bucket string) (*KVChannel, error) {
	kv, err := js.KeyValue(ctx, bucket)
	if err == nil {
		return &KVChannel{kv: kv}, nil
	}
	kv, err = js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      bucket,
		Description: "assistant pending actions, one key per category",
		History:     1,
	})
	if err != nil {
		return nil, fmt.Errorf("create bucket %s: %w", bucket, err)
	}
	return &KVChannel{kv: kv}, nil
}

// Publish parks value for cat, replacing any previous pending value.
func (c *KVChannel) Publish(ctx context.Context, cat vocab.Category, value string) error {
	if _, err := c.kv.Put(ctx, string(cat), []byte(value)); err != nil {
		return fmt.Errorf("publish %s: %w", cat, err)
	}
	return nil
}

// Consume pops the pending value for cat.
func (c *KVChannel) Consume(ctx context.Context, cat vocab.Category) (string, bool, error) {
	entry, err := c.kv.Get(ctx, string(cat))
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("consume %s: %w", cat, err)
	}
	if err := c.kv.Delete(ctx, string(cat)); err != nil {
		return "", false, fmt.Errorf("consume %s: %w", cat, err)
	}
	return string(entry.Value()), true, nil
}

// Pending reads the parked value for cat without consuming it.
func (c *KVChannel) Pending(ctx context.Context, cat vocab.Category) (string, bool, error) {
	entry, err := c.kv.Get(ctx, string(cat))
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("pending %s: %w", cat, err)
	}
	return string(entry.Value()), true, nil
}

// #endregion kv-channel
