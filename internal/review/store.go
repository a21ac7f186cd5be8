// Package review holds the append-only product review log, mirrored to
// key-value storage on every append.
package review

import (
	"context"
	"sync"
	"time"

	"github.com/lina-design/storefront/internal/review/domain"
	"github.com/lina-design/storefront/pkg/kv"
)

// StorageKey is the fixed key the review log lives under.
const StorageKey = "reviews"

// Store owns the review log snapshot.
type Store struct {
	mu         sync.Mutex
	reviews    []domain.Review
	collection *kv.Collection[domain.Review]
}

// NewStore loads the persisted log; corrupt or absent state yields an
// empty log.
func NewStore(ctx context.Context, storage kv.Store) *Store {
	collection := kv.NewCollection[domain.Review](storage, StorageKey)
	return &Store{
		reviews:    collection.Load(ctx),
		collection: collection,
	}
}

// Append adds a review to the front of the log and persists. A blank
// comment leaves the log untouched and reports added false.
func (s *Store) Append(ctx context.Context, productID, userName string, rating int, comment string) (added bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reviews, added := domain.Append(s.reviews, productID, userName, rating, comment, time.Now())
	if !added {
		return false, nil
	}

	s.reviews = reviews
	return true, s.collection.Save(ctx, s.reviews)
}

// For returns the reviews for one product, most recent first.
func (s *Store) For(productID string) []domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.For(s.reviews, productID)
}
