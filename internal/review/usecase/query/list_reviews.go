package query

import (
	"github.com/lina-design/storefront/internal/review"
	"github.com/lina-design/storefront/internal/review/domain"
)

// ListReviewsQuery represents the query for one product's reviews
type ListReviewsQuery struct {
	ProductID string
}

// ListReviewsHandler handles review read queries
type ListReviewsHandler struct {
	store *review.Store
}

// NewListReviewsHandler creates a new list reviews handler
func NewListReviewsHandler(store *review.Store) *ListReviewsHandler {
	return &ListReviewsHandler{store: store}
}

// Handle returns the product's reviews, most recent first
func (h *ListReviewsHandler) Handle(q ListReviewsQuery) []domain.Review {
	return h.store.For(q.ProductID)
}
