package query

import (
	catalog "github.com/lina-design/storefront/internal/catalog/domain"
	"github.com/lina-design/storefront/internal/wishlist"
)

// ListWishlistHandler handles wishlist read queries
type ListWishlistHandler struct {
	store *wishlist.Store
}

// NewListWishlistHandler creates a new list wishlist handler
func NewListWishlistHandler(store *wishlist.Store) *ListWishlistHandler {
	return &ListWishlistHandler{store: store}
}

// Handle returns the current wishlist snapshot
func (h *ListWishlistHandler) Handle() []catalog.Product {
	products := h.store.Products()
	if products == nil {
		products = []catalog.Product{}
	}
	return products
}
