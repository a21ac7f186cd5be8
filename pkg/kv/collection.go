package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Collection persists a whole slice of T as one JSON value under a fixed
// key, the way the storefront mirrors each client store.
type Collection[T any] struct {
	store Store
	key   string
}

// NewCollection creates a collection bound to a key.
func NewCollection[T any](store Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// Load reads the stored snapshot. An absent key or an unparseable value
// yields an empty collection: corrupt state must degrade, never crash
// startup.
func (c *Collection[T]) Load(ctx context.Context) []T {
	raw, err := c.store.Get(ctx, c.key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

// Save replaces the stored snapshot.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %q snapshot: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("failed to persist %q snapshot: %w", c.key, err)
	}
	return nil
}
