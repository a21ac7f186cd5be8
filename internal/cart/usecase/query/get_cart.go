package query

import (
	"github.com/lina-design/storefront/internal/cart"
	"github.com/lina-design/storefront/internal/cart/domain"
)

// CartView is the cart as the storefront renders it
type CartView struct {
	Entries []domain.Entry `json:"entries"`
	Total   float64        `json:"total"`
	Count   int            `json:"count"`
}

// GetCartHandler handles cart read queries
type GetCartHandler struct {
	store *cart.Store
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(store *cart.Store) *GetCartHandler {
	return &GetCartHandler{store: store}
}

// Handle returns the current cart snapshot with its total and badge count
func (h *GetCartHandler) Handle() CartView {
	entries := h.store.Entries()
	if entries == nil {
		entries = []domain.Entry{}
	}
	return CartView{
		Entries: entries,
		Total:   domain.Total(entries),
		Count:   domain.Count(entries),
	}
}
