// Package cart holds the storefront cart: a ledger of product-id to
// quantity mirrored to durable key-value storage after every mutation.
package cart

import (
	"context"
	"sync"

	"github.com/lina-design/storefront/internal/cart/domain"
	catalog "github.com/lina-design/storefront/internal/catalog/domain"
	"github.com/lina-design/storefront/pkg/kv"
)

// StorageKey is the fixed key the ledger snapshot lives under.
const StorageKey = "cart"

// Store owns the cart snapshot. Mutations are read-modify-write over the
// current snapshot under a lock, then mirrored to storage.
type Store struct {
	mu         sync.Mutex
	entries    []domain.Entry
	collection *kv.Collection[domain.Entry]
}

// NewStore loads the persisted ledger. Corrupt or absent stored state
// yields an empty cart.
func NewStore(ctx context.Context, storage kv.Store) *Store {
	collection := kv.NewCollection[domain.Entry](storage, StorageKey)
	return &Store{
		entries:    collection.Load(ctx),
		collection: collection,
	}
}

// UpdateQuantity applies a quantity delta and persists the new ledger.
// The returned snapshot is valid even when persistence fails; the error
// reports the failed mirror write.
func (s *Store) UpdateQuantity(ctx context.Context, product catalog.Product, delta int) ([]domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = domain.UpdateQuantity(s.entries, product, delta)
	return s.snapshot(), s.collection.Save(ctx, s.entries)
}

// Remove drops a product from the ledger and persists.
func (s *Store) Remove(ctx context.Context, id string) ([]domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = domain.Remove(s.entries, id)
	return s.snapshot(), s.collection.Save(ctx, s.entries)
}

// Entries returns the current ledger snapshot.
func (s *Store) Entries() []domain.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Total sums price times quantity over the current ledger.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Total(s.entries)
}

// Count sums quantities over the current ledger.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Count(s.entries)
}

func (s *Store) snapshot() []domain.Entry {
	out := make([]domain.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
