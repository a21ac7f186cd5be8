// Package wishlist holds the storefront wishlist: a set of products
// with toggle semantics, mirrored to key-value storage on every change.
package wishlist

import (
	"context"
	"sync"

	catalog "github.com/lina-design/storefront/internal/catalog/domain"
	"github.com/lina-design/storefront/internal/wishlist/domain"
	"github.com/lina-design/storefront/pkg/kv"
)

// StorageKey is the fixed key the wishlist snapshot lives under.
const StorageKey = "wishlist"

// Store owns the wishlist snapshot.
type Store struct {
	mu         sync.Mutex
	products   []catalog.Product
	collection *kv.Collection[catalog.Product]
}

// NewStore loads the persisted wishlist; corrupt or absent state yields
// an empty set.
func NewStore(ctx context.Context, storage kv.Store) *Store {
	collection := kv.NewCollection[catalog.Product](storage, StorageKey)
	return &Store{
		products:   collection.Load(ctx),
		collection: collection,
	}
}

// Toggle flips membership for the product and persists the new set.
func (s *Store) Toggle(ctx context.Context, product catalog.Product) ([]catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = domain.Toggle(s.products, product)
	return s.snapshot(), s.collection.Save(ctx, s.products)
}

// Products returns the current wishlist snapshot.
func (s *Store) Products() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Contains reports whether the product id is wishlisted.
func (s *Store) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Contains(s.products, id)
}

func (s *Store) snapshot() []catalog.Product {
	out := make([]catalog.Product, len(s.products))
	copy(out, s.products)
	return out
}
