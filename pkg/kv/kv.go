// Package kv is the persistence port for the storefront's client-state
// stores (cart, wishlist, reviews, onboarding flag). It mirrors the
// contract of browser local storage: whole values stored under fixed
// string keys, replaced wholesale on every write.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no value exists under the requested key.
var ErrNotFound = errors.New("kv: key not found")

// Store is a durable key-value store for JSON-encoded snapshots.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
